package ranger

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	// TODO(dlk): configurable env files
	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/http/middleware"
	"github.com/xy-planning-network/trailhead/http/req"
	"github.com/xy-planning-network/trailhead/http/router"
	"github.com/xy-planning-network/trailhead/http/template"
	"github.com/xy-planning-network/trailhead/logger"
)

// A Ranger manages and exposes all components of a trailhead app to one another.
type Ranger struct {
	*router.Router

	ctx      context.Context
	cancel   context.CancelFunc
	env      trailhead.Environment
	l        logger.Logger
	parser   *req.Parser
	renderer *template.Renderer
	srv      *http.Server
	url      *url.URL
	visitors *middleware.Visitors
}

// New constructs a Ranger from the provided options.
// Default options are applied first followed by the options passed into New.
// Options supplied to New overwrite default configurations.
func New(opts ...RangerOption) (*Ranger, error) {
	r := new(Ranger)
	followups := make([]OptFollowup, 0)

	// NOTE(dlk): calling an option configures the *Ranger under construction.
	// Some options require data from other options.
	// These options, therefore, must delay configuring the *Ranger
	// until either (1) user supplied RangerOptions or (2) default RangerOptions
	// configure the *Ranger first.
	// They return an OptFollowup to be called after the initial set of options are run.
	for _, opt := range append(defaultOpts(), opts...) {
		fn, err := opt(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", trailhead.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", trailhead.ErrBadConfig, err)
		}
	}

	return r, nil
}

// Action adapts fn into an http.HandlerFunc logging with the *Ranger's logger.
// See router.Action.
func (r *Ranger) Action(fn router.ActionFunc) http.HandlerFunc { return router.Action(fn, r.l) }

func (r *Ranger) Env() trailhead.Environment     { return r.env }
func (r *Ranger) Logger() logger.Logger          { return r.l }
func (r *Ranger) Parser() *req.Parser            { return r.parser }
func (r *Ranger) Renderer() *template.Renderer   { return r.renderer }
func (r *Ranger) Server() *http.Server           { return r.srv }
func (r *Ranger) URL() *url.URL                  { return r.url }
func (r *Ranger) Visitors() *middleware.Visitors { return r.visitors }

// Guide begins the web server.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
// - cancelling the context.Context set with WithContext
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (r *Ranger) Guide() error {
	ctx, stop := signal.NotifyContext(
		r.ctx,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer stop()

	r.srv.Handler = r.Router

	errCh := make(chan error, 1)
	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", r.srv.Addr), nil)
		if err := r.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("could not listen: %w", err)
		}

		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			r.l.Error(err.Error(), nil)
			return err
		}

		return nil

	case <-ctx.Done():
		r.l.Info("received shutdown signal", nil)
	}

	return r.Shutdown()
}

// Shutdown shutdowns the web server.
func (r *Ranger) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	if err := r.srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	if r.cancel != nil {
		r.cancel()
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}
