package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultRateLimit      rate.Limit = 5
	DefaultRateLimitBurst int        = 20

	visitorTTL = 60 * time.Minute
)

// A Visitor tracks a rate limiter and last seen time.
type Visitor struct {
	LastSeen time.Time
	Limiter  *rate.Limiter
}

// A Visitors maps a Visitor to an IP address.
type Visitors struct {
	val   map[string]Visitor
	limit rate.Limit
	burst int
	sync.Mutex
}

// The VisitorsOptFn applies functional options to a *Visitors when constructing it.
type VisitorsOptFn func(*Visitors)

// WithLimit sets the rate newly created visitors are limited to, with bursts of up to burst.
// Non-positive values leave the defaults.
func WithLimit(limit rate.Limit, burst int) VisitorsOptFn {
	return func(vs *Visitors) {
		if limit > 0 {
			vs.limit = limit
		}

		if burst > 0 {
			vs.burst = burst
		}
	}
}

// NewVisitors constructs a *Visitors.
//
// By default, newly created visitors are limited to 5 requests every second with bursts of up to 20.
func NewVisitors(opts ...VisitorsOptFn) *Visitors {
	vs := &Visitors{
		val:   make(map[string]Visitor),
		limit: DefaultRateLimit,
		burst: DefaultRateLimitBurst,
	}

	for _, opt := range opts {
		opt(vs)
	}

	return vs
}

// Fetch retrieves the Visitor for the given ip creating a new Visitor if not seen.
func (vs *Visitors) Fetch(ip string) Visitor {
	vs.Lock()
	defer vs.Unlock()

	v, ok := vs.val[ip]
	if !ok {
		v = Visitor{Limiter: rate.NewLimiter(vs.limit, vs.burst)}
	}

	v.LastSeen = time.Now().UTC()
	vs.val[ip] = v
	return v
}

// Len returns the number of visitors tracked.
func (vs *Visitors) Len() int {
	vs.Lock()
	defer vs.Unlock()

	return len(vs.val)
}

// cleanup deletes a Visitor from Visitors if they have not been seen in over an hour.
func (vs *Visitors) cleanup() {
	vs.Lock()
	defer vs.Unlock()
	for ip, v := range vs.val {
		if time.Since(v.LastSeen) > visitorTTL {
			delete(vs.val, ip)
		}
	}
}

// RateLimit encloses the Visitors map and serves the http.Handler
//
// NOTE: implementation found here:
// https://www.alexedwards.net/blog/how-to-rate-limit-http-requests
//
// If we need anything more sophisticated, https://github.com/didip/tollbooth is
// likely a better option.
func RateLimit(visitors *Visitors) Adapter {
	if visitors == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !visitors.Fetch(ClientIP(r)).Limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			visitors.cleanup()
			h.ServeHTTP(w, r)
		})
	}
}
