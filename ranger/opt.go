package ranger

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/http/req"
	"github.com/xy-planning-network/trailhead/http/router"
	"github.com/xy-planning-network/trailhead/http/template"
	"github.com/xy-planning-network/trailhead/logger"
)

// A RangerOption configures a *Ranger either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some RangerOptions require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithEnv is an example of the first.
// An unexported field on the passed in *Ranger is updated with the enclosed value.
//
// WithRouter is an example of the second.
// An unexported field on the passed in *Ranger
// is updated only when the closure it returns is called.
type RangerOption func(rng *Ranger) (OptFollowup, error)
type OptFollowup func() error

// WithContext exposes the provided context.Context to the trailhead app.
// Every request handled is derived from it,
// and cancelling it stops (*Ranger).Guide.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if ctx == nil {
			return nil, fmt.Errorf("%w: nil context.Context", trailhead.ErrBadAny)
		}

		rng.ctx, rng.cancel = context.WithCancel(ctx)
		if rng.srv != nil {
			rng.srv.BaseContext = func(net.Listener) context.Context { return rng.ctx }
		}

		return nil, nil
	}
}

// WithEnv casts the provided string into a valid Environment,
// or, reads from the ENVIRONMENT environment variable a valid Environment.
// WithEnv then exposes that Environment to the trailhead app.
//
// If both fail, the default Environment is set to Development.
func WithEnv(envVar string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		e := trailhead.Environment(envVar)
		if e.Valid() != nil {
			e = trailhead.EnvVarOrEnv(environmentEnvVar, trailhead.Development)
		}

		rng.env = e
		debug(rng, fmt.Sprintf("using env %s", e))

		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the trailhead app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if l == nil {
			return nil, fmt.Errorf("%w: nil logger.Logger", trailhead.ErrBadAny)
		}

		rng.l = l
		debug(rng, fmt.Sprintf("using logger %T", l))

		return nil, nil
	}
}

// WithParser exposes the provided *req.Parser to the trailhead app.
// Every request routed by the default router binds its params with it.
func WithParser(p *req.Parser) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if p == nil {
			return nil, fmt.Errorf("%w: nil *req.Parser", trailhead.ErrBadAny)
		}

		rng.parser = p
		debug(rng, "using custom request parser")

		return nil, nil
	}
}

// WithRenderer exposes the provided *template.Renderer to the trailhead app.
func WithRenderer(rd *template.Renderer) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if rd == nil {
			return nil, fmt.Errorf("%w: nil *template.Renderer", trailhead.ErrBadAny)
		}

		rng.renderer = rd
		debug(rng, "using custom template renderer")

		return nil, nil
	}
}

// WithRouter constructs a followup option that, when called,
// exposes the *router.Router to the trailhead app.
func WithRouter(r *router.Router) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if r == nil {
			return nil, fmt.Errorf("%w: nil *router.Router", trailhead.ErrBadAny)
		}

		return func() error {
			rng.Router = r
			rng.srv.Handler = r
			debug(rng, fmt.Sprintf("using router %T", r))

			return nil
		}, nil
	}
}

// WithServer exposes the *http.Server to the trailhead app.
// The *http.Server's Handler is replaced by the *Ranger's router.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if s == nil {
			return nil, fmt.Errorf("%w: nil *http.Server", trailhead.ErrBadAny)
		}

		old := rng.srv
		rng.srv = s
		if old != nil {
			rng.srv.Handler = old.Handler
		}

		if s.BaseContext == nil && rng.ctx != nil {
			s.BaseContext = func(net.Listener) context.Context { return rng.ctx }
		}

		debug(rng, fmt.Sprintf("using server at %s", s.Addr))

		return nil, nil
	}
}

// WithURL sets the base URL the trailhead app is served over.
func WithURL(u *url.URL) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if u == nil {
			return nil, fmt.Errorf("%w: nil *url.URL", trailhead.ErrBadAny)
		}

		rng.url = u
		debug(rng, fmt.Sprintf("using base URL %s", u))

		return nil, nil
	}
}

// debug logs msg if the *Ranger has a logger set up.
func debug(rng *Ranger, msg string) {
	if rng.l != nil {
		rng.l.Debug(msg, nil)
	}
}
