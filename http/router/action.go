package router

import (
	"errors"
	"net/http"

	"github.com/xy-planning-network/trailhead/cast"
	"github.com/xy-planning-network/trailhead/http/middleware"
	"github.com/xy-planning-network/trailhead/http/req"
	"github.com/xy-planning-network/trailhead/logger"
	"github.com/xy-planning-network/trailhead/params"
)

// An ActionFunc handles a request using the parameters bound to it.
type ActionFunc func(w http.ResponseWriter, r *http.Request, p *params.Params) error

// Action adapts fn into an [http.HandlerFunc].
//
// The *params.Params fn receives are those middleware.InjectParams bound to the request,
// or none at all if that middleware did not run.
//
// Errors fn returns are translated into responses:
//   - a missing or ambiguous parameter, or one failing to cast, responds 404
//   - a params struct failing validation responds 400
//   - anything else responds 500 and is logged with l
//
// Responses for the first two carry the error in the middleware.MessageHeader.
func Action(fn ActionFunc, l logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := params.FromContext(r.Context())
		if !ok {
			p = params.New()
		}

		err := fn(w, r, p)
		if err == nil {
			return
		}

		status := StatusOf(err)
		switch status {
		case http.StatusNotFound, http.StatusBadRequest:
			w.Header().Set(middleware.MessageHeader, err.Error())
		default:
			if l != nil {
				l.Error(err.Error(), &logger.LogContext{Error: err, Request: r, Params: p})
			}
		}

		http.Error(w, http.StatusText(status), status)
	}
}

// StatusOf maps err onto the HTTP status code Action responds with.
func StatusOf(err error) int {
	var castErr *cast.Error
	var valErr req.ValidationErrors
	switch {
	case errors.Is(err, params.ErrMissingParameter),
		errors.Is(err, params.ErrAmbiguousParameter),
		errors.As(err, &castErr):
		return http.StatusNotFound

	case errors.As(err, &valErr):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
