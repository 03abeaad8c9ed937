package ranger

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/http/middleware"
	"github.com/xy-planning-network/rango/http/session"
	"github.com/xy-planning-network/rango/logger"
	"github.com/xy-planning-network/rango/postgres"
	"github.com/xy-planning-network/rango/store"
)

// A RangerOption configures a *Ranger under construction.
// Components a RangerOption does not set are filled in with defaults by New.
type RangerOption func(rng *Ranger) error

// WithContext exposes the provided context.Context to the rango app.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) error {
		if ctx == nil {
			return fmt.Errorf("%w: nil context", ErrBadConfig)
		}

		rng.ctx = ctx
		return nil
	}
}

// WithDB exposes the provided *postgres.DB to the rango app.
//
// WithDB assumes a connection has already been established and migrations run.
func WithDB(db *postgres.DB) RangerOption {
	return func(rng *Ranger) error {
		rng.db = db
		return nil
	}
}

// WithEnv casts the provided string into a valid rango.Environment,
// or, reads from the ENVIRONMENT environment variable a valid rango.Environment.
//
// If both fail, the default rango.Environment is Development.
func WithEnv(envVar string) RangerOption {
	return func(rng *Ranger) error {
		e := rango.Environment(envVar)
		if e.Valid() != nil {
			e = rango.EnvVarOrEnv(environmentEnvVar, rango.Development)
		}

		rng.env = e
		return nil
	}
}

// WithIdempotencyCache sets where responses to form submissions are cached.
func WithIdempotencyCache(c middleware.IdempotencyCacher) RangerOption {
	return func(rng *Ranger) error {
		rng.idem = c
		return nil
	}
}

// WithLogger exposes the provided logger.Logger to the rango app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) error {
		rng.l = l
		return nil
	}
}

// WithRegistry sets the *prometheus.Registry rango's metrics are registered with and served from.
func WithRegistry(reg *prometheus.Registry) RangerOption {
	return func(rng *Ranger) error {
		rng.registry = reg
		return nil
	}
}

// WithServer exposes the *http.Server to the rango app.
// New sets its Handler.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) error {
		rng.srv = s
		return nil
	}
}

// WithSessionStore exposes the session.SessionStorer to the rango app.
func WithSessionStore(s session.SessionStorer) RangerOption {
	return func(rng *Ranger) error {
		rng.sessions = s
		return nil
	}
}

// WithStore exposes the store.Store to the rango app.
// A Ranger with a store.Store does not connect to a database itself.
func WithStore(s store.Store) RangerOption {
	return func(rng *Ranger) error {
		rng.store = s
		return nil
	}
}
