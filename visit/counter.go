package visit

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// A Counter records page views in a Store with a configurable clock and Policy.
type Counter struct {
	now     func() time.Time
	policy  Policy
	metrics *Metrics
}

// A CounterOpt configures a *Counter when constructing a new one.
type CounterOpt func(*Counter)

// WithClock sets the function a Counter calls for the current time.
func WithClock(now func() time.Time) CounterOpt {
	return func(c *Counter) {
		if now != nil {
			c.now = now
		}
	}
}

// WithPolicy sets the Policy a Counter decides new visits with.
func WithPolicy(p Policy) CounterOpt {
	return func(c *Counter) {
		if p != nil {
			c.policy = p
		}
	}
}

// WithMetrics reports the outcome of every page view a Counter records.
func WithMetrics(m *Metrics) CounterOpt {
	return func(c *Counter) {
		c.metrics = m
	}
}

// NewCounter constructs a *Counter.
// By default, a Counter uses time.Now and CalendarDay.
func NewCounter(opts ...CounterOpt) *Counter {
	c := &Counter{now: time.Now, policy: CalendarDay}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Count records a page view in s, returning the resulting number of visits.
//
// Cf. HandleWith.
func (c *Counter) Count(s Store) (int, error) {
	var before int
	first := s.Get(LastVisitKey) == nil
	if c.metrics != nil {
		before, _ = readVisits(s.Get(VisitsKey))
	}

	visits, err := HandleWith(s, c.now(), c.policy)
	if c.metrics == nil {
		return visits, err
	}

	switch {
	case err != nil:
		c.metrics.Failed.Inc()
	case first, visits > before:
		c.metrics.Began.Inc()
	default:
		c.metrics.Repeated.Inc()
	}

	return visits, err
}

// Metrics tallies the page views Counters record.
type Metrics struct {
	Began    prometheus.Counter
	Repeated prometheus.Counter
	Failed   prometheus.Counter
}

// NewMetrics constructs *Metrics, registering each collector with reg.
// If reg is nil, the collectors are left unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Began: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rango",
			Subsystem: "visits",
			Name:      "began_total",
			Help:      "Page views that began a new visit.",
		}),
		Repeated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rango",
			Subsystem: "visits",
			Name:      "repeated_total",
			Help:      "Page views belonging to a visit already counted.",
		}),
		Failed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rango",
			Subsystem: "visits",
			Name:      "failed_total",
			Help:      "Page views whose session held unreadable visit data.",
		}),
	}

	if reg == nil {
		return m, nil
	}

	for _, c := range []*prometheus.Counter{&m.Began, &m.Repeated, &m.Failed} {
		if err := reg.Register(*c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return nil, err
			}

			existing, ok := are.ExistingCollector.(prometheus.Counter)
			if !ok {
				return nil, err
			}

			*c = existing
		}
	}

	return m, nil
}
