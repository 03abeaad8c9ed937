package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

// unmatchedRoute labels requests no mux.Route matched.
const unmatchedRoute = "unmatched"

// HTTPMetrics tallies the requests a server handles, by route.
type HTTPMetrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewHTTPMetrics constructs *HTTPMetrics, registering each collector with reg.
// If reg is nil, the collectors are left unregistered.
func NewHTTPMetrics(reg prometheus.Registerer) (*HTTPMetrics, error) {
	m := &HTTPMetrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rango",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Requests handled, by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "rango",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Time spent handling requests, by method and route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	if reg == nil {
		return m, nil
	}

	if err := reg.Register(m.Requests); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}

		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		m.Requests = existing
	}

	if err := reg.Register(m.Duration); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}

		existing, ok := are.ExistingCollector.(*prometheus.HistogramVec)
		if !ok {
			return nil, err
		}
		m.Duration = existing
	}

	return m, nil
}

// Metrics observes every request passing through it with m.
// Routes are labeled by their mux path template so slugs do not explode cardinality.
//
// If m is nil, NoopAdapter returns and this middleware does nothing.
func Metrics(m *HTTPMetrics) Adapter {
	if m == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)
			h.ServeHTTP(sw, r)

			route := routeTemplate(r)
			m.Requests.WithLabelValues(r.Method, route, strconv.Itoa(sw.Status())).Inc()
			m.Duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unmatchedRoute
	}

	tmpl, err := route.GetPathTemplate()
	if err != nil {
		return unmatchedRoute
	}

	return tmpl
}
