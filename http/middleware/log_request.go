package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/felixge/httpsnoop"
	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/logger"
	"github.com/xy-planning-network/trailhead/params"
)

// A LogRequestRecord describes a request LogRequest handled and the response it got.
type LogRequestRecord struct {
	BodySize       int    `json:"bodySize"`
	Duration       string `json:"duration"`
	Host           string `json:"host"`
	ID             string `json:"id,omitempty"`
	IPAddr         string `json:"ipAddr,omitempty"`
	Method         string `json:"method"`
	Path           string `json:"path"`
	Protocol       string `json:"protocol"`
	Referrer       string `json:"referrer,omitempty"`
	ReqContentType string `json:"reqContentType,omitempty"`
	Scheme         string `json:"scheme,omitempty"`
	Status         int    `json:"status"`
	URI            string `json:"uri"`
	UserAgent      string `json:"userAgent,omitempty"`
}

// LogRequest logs a LogRequestRecord for each request once it is handled
// using the enclosed implementation of logger.Logger.
//
// LogRequest scrubs the values for query params trailhead.IsMasked reports on,
// and, if InjectParams ran first, includes the masked summary of the request's params.
//
// if logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(h, w, r)
			record := newLogRequestRecord(r, m)

			strs := []string{record.Method, record.URI, fmt.Sprint(record.Status)}
			if record.IPAddr != "" {
				strs = append([]string{record.IPAddr}, strs...)
			}

			lc := &logger.LogContext{Data: map[string]any{"request": record}}
			if p, ok := params.FromContext(r.Context()); ok {
				lc.Params = p
			}

			ls.Info(strings.Join(strs, " "), lc)
		})
	}
}

func newLogRequestRecord(r *http.Request, m httpsnoop.Metrics) LogRequestRecord {
	uri := r.URL.Path
	q := r.URL.Query()
	for k := range q {
		if trailhead.IsMasked(k) {
			trailhead.Mask(q, k)
		}
	}

	if query := q.Encode(); query != "" {
		uri += "?" + query
	}

	record := LogRequestRecord{
		BodySize:       int(m.Written),
		Duration:       m.Duration.String(),
		Host:           r.Host,
		Method:         r.Method,
		Path:           r.URL.Path,
		Protocol:       r.Proto,
		Referrer:       r.Referer(),
		ReqContentType: r.Header.Get("Content-Type"),
		Scheme:         r.URL.Scheme,
		Status:         m.Code,
		URI:            uri,
		UserAgent:      r.UserAgent(),
	}

	if id, ok := r.Context().Value(trailhead.RequestIDKey).(string); ok {
		record.ID = id
	}

	if ip, ok := r.Context().Value(trailhead.IpAddrKey).(string); ok {
		record.IPAddr = ip
	}

	return record
}
