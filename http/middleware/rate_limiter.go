package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/xy-planning-network/rango"
	"golang.org/x/time/rate"
)

const visitorTTL = 60 * time.Minute

// A Visitor tracks a rate limiter and last seen time.
type Visitor struct {
	LastSeen time.Time
	Limiter  *rate.Limiter
}

// A Visitors maps a Visitor to an IP address.
type Visitors struct {
	burst int
	limit rate.Limit
	val   map[string]Visitor
	sync.Mutex
}

// NewVisitors constructs a *Visitors whose newly seen visitors are limited
// to limit requests every second with bursts of up to burst.
//
// A limit or burst that is not positive falls back to 5 requests every second with bursts of up to 20.
func NewVisitors(limit rate.Limit, burst int) *Visitors {
	if limit <= 0 || burst <= 0 {
		limit, burst = 5, 20
	}

	return &Visitors{burst: burst, limit: limit, val: make(map[string]Visitor)}
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

// RateLimit encloses the Visitors map and serves the http.Handler,
// writing 429 to visitors exceeding their limit.
//
// Visitors are told apart by the IP address InjectIPAddress sets in the *http.Request.Context
// or, failing that, GetIPAddress.
//
// NOTE: implementation found here:
// https://www.alexedwards.net/blog/how-to-rate-limit-http-requests
func RateLimit(visitors *Visitors) Adapter {
	if visitors == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, ok := r.Context().Value(rango.IpAddrKey).(string)
			if !ok {
				ip = GetIPAddress(r.Header)
			}

			if !visitors.Fetch(ip).Limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			visitors.cleanup()
			h.ServeHTTP(w, r)
		})
	}
}
