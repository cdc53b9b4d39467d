package middleware

import (
	"errors"
	"net/http"

	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/http/req"
	"github.com/xy-planning-network/trailhead/logger"
	"github.com/xy-planning-network/trailhead/params"
)

// InjectParams binds the values a request carries with p
// and stashes the resulting *params.Params in the request's context,
// where params.FromContext retrieves them.
//
// A request whose values cannot be parsed is answered with a 400,
// or a 413 if its body is too large, and logged as a warning with ls, if not nil.
func InjectParams(p *req.Parser, ls logger.Logger) Adapter {
	if p == nil {
		p = req.NewParser()
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ps, err := p.Params(r)
			if err != nil {
				if ls != nil {
					ls.Warn("failed binding request params", &logger.LogContext{Error: err, Request: r})
				}

				status := http.StatusBadRequest
				if errors.Is(err, trailhead.ErrNotValid) {
					status = http.StatusRequestEntityTooLarge
				}

				http.Error(w, http.StatusText(status), status)
				return
			}

			h.ServeHTTP(w, r.WithContext(params.NewContext(r.Context(), ps)))
		})
	}
}
