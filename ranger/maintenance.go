package ranger

import (
	"net/http"

	"github.com/xy-planning-network/trailhead/http/template"
	"github.com/xy-planning-network/trailhead/logger"
)

const (
	maintTmpl       = "tmpl/maintenance.tmpl"
	maintRetryAfter = "600"
)

// MaintModeHandler responds to every request with a 503,
// asking clients to retry in ten minutes.
//
// If a "tmpl/maintenance.tmpl" template exists, it is rendered as the body.
func MaintModeHandler(rd *template.Renderer, l logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", maintRetryAfter)

		if rd == nil || !rd.Parser().Exists(maintTmpl) {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusServiceUnavailable)
		if err := rd.Render(w, maintTmpl, nil); err != nil && l != nil {
			l.Error(err.Error(), &logger.LogContext{Error: err, Request: r})
		}
	}
}
