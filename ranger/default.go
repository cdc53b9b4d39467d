package ranger

import (
	"context"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/http/middleware"
	"github.com/xy-planning-network/trailhead/http/req"
	"github.com/xy-planning-network/trailhead/http/router"
	"github.com/xy-planning-network/trailhead/http/template"
	"github.com/xy-planning-network/trailhead/logger"
	"golang.org/x/time/rate"
)

const (
	// Base URL defaults
	BaseURLEnvVar  = "BASE_URL"
	corsEnvVar     = "CORS_ORIGIN"
	defaultBaseURL = "http://" + DefaultHost + DefaultPort

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Maintenance defaults
	maintModeEnvVar = "MAINTENANCE_MODE"

	// Rate limit defaults
	rateLimitEnvVar      = "RATE_LIMIT"
	rateLimitBurstEnvVar = "RATE_LIMIT_BURST"

	// Request defaults
	maxBodyBytesEnvVar = "MAX_BODY_BYTES"

	// Template defaults
	templateDirEnvVar  = "TEMPLATE_DIR"
	defaultTemplateDir = "."

	// Web server defaults
	DefaultHost               = "localhost"
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second
)

// defaultOpts sets up every component of a *Ranger not configured by the options passed to New.
//
// Components depending on others are constructed in followups,
// once the options passed to New have had a chance to set those others.
func defaultOpts() []RangerOption {
	return []RangerOption{
		WithEnv(""),
		WithContext(context.Background()),
		func(rng *Ranger) (OptFollowup, error) {
			return func() error {
				if rng.l == nil {
					rng.l = logger.NewLogger(logger.WithEnv(rng.env))
				}

				if rng.url == nil {
					rng.url = trailhead.EnvVarOrURL(BaseURLEnvVar, defaultBaseURL)
				}

				if rng.parser == nil {
					rng.parser = defaultParser()
				}

				if rng.visitors == nil {
					rng.visitors = defaultVisitors()
				}

				if rng.renderer == nil {
					rng.renderer = defaultRenderer(rng)
				}

				if rng.srv == nil {
					rng.srv = defaultServer(rng.ctx)
				}

				if rng.Router == nil {
					rng.Router = defaultRouter(rng)
					rng.srv.Handler = rng.Router
				}

				return nil
			}, nil
		},
	}
}

// defaultParser constructs a *req.Parser limiting bodies to MAX_BODY_BYTES, if set.
func defaultParser() *req.Parser {
	return req.NewParser(req.WithMaxBodyBytes(int64(trailhead.EnvVarOrInt(maxBodyBytesEnvVar, 0))))
}

// defaultVisitors constructs the *middleware.Visitors rate limiting requests
// to RATE_LIMIT per second with bursts of RATE_LIMIT_BURST.
func defaultVisitors() *middleware.Visitors {
	limit := trailhead.EnvVarOrInt(rateLimitEnvVar, int(middleware.DefaultRateLimit))
	burst := trailhead.EnvVarOrInt(rateLimitBurstEnvVar, middleware.DefaultRateLimitBurst)

	return middleware.NewVisitors(middleware.WithLimit(rate.Limit(limit), burst))
}

// defaultRenderer constructs a *template.Renderer reading templates from TEMPLATE_DIR.
//
// defaultRenderer makes available these functions in an HTML template:
//
//   - "bound"
//   - "env"
//   - "isDevelopment"
//   - "isProduction"
//   - "nonce"
//   - "rootURL"
func defaultRenderer(rng *Ranger) *template.Renderer {
	dir := trailhead.EnvVarOrString(templateDirEnvVar, defaultTemplateDir)
	p := template.NewParser(
		template.WithFS(os.DirFS(dir)),
		template.WithFn(template.Env(rng.env)),
		template.WithFn("isDevelopment", rng.env.IsDevelopment),
		template.WithFn("isProduction", rng.env.IsProduction),
		template.WithFn(template.Nonce()),
		template.WithFn(template.RootURL(rng.url)),
	)

	return template.NewRenderer(p)
}

// defaultRouter constructs a *router.Router applying, to every request,
// in order:
//
//   - middleware.RateLimit
//   - middleware.RequestID
//   - middleware.InjectIPAddress
//   - middleware.CORS, if CORS_ORIGIN is set
//   - middleware.InjectParams
//   - middleware.LogRequest
//
// If MAINTENANCE_MODE is true, every request is routed to MaintModeHandler.
func defaultRouter(rng *Ranger) *router.Router {
	logReq := middleware.LogRequest(rng.l)
	rt := router.New(rng.env, logReq)
	rt.OnEveryRequest(
		middleware.RateLimit(rng.visitors),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.CORS(trailhead.EnvVarOrString(corsEnvVar, "")),
		middleware.InjectParams(rng.parser, rng.l),
		logReq,
	)

	rt.HandleNotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	if trailhead.EnvVarOrBool(maintModeEnvVar, false) {
		rng.l.Info("maintenance mode enabled", nil)
		rt.CatchAll(MaintModeHandler(rng.renderer, rng.l))
	}

	return rt
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context) *http.Server {
	port := trailhead.EnvVarOrString(portEnvVar, DefaultPort)
	if port[0] != ':' {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		IdleTimeout:  trailhead.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  trailhead.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: trailhead.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}
