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

	"github.com/getsentry/sentry-go"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/auth"
	"github.com/xy-planning-network/rango/handler"
	"github.com/xy-planning-network/rango/http/middleware"
	"github.com/xy-planning-network/rango/http/resp"
	"github.com/xy-planning-network/rango/http/router"
	"github.com/xy-planning-network/rango/http/session"
	"github.com/xy-planning-network/rango/http/template"
	"github.com/xy-planning-network/rango/logger"
	"github.com/xy-planning-network/rango/postgres"
	"github.com/xy-planning-network/rango/store"
	"github.com/xy-planning-network/rango/visit"
)

const (
	maintModeEnvVar = "MAINTENANCE_MODE"
	shutdownTimeout = 5 * time.Second
)

// A Ranger manages and exposes all components of a rango app to one another.
type Ranger struct {
	*resp.Responder
	*router.Router

	cancel   context.CancelFunc
	ctx      context.Context
	db       *postgres.DB
	env      rango.Environment
	idem     middleware.IdempotencyCacher
	l        logger.Logger
	registry *prometheus.Registry
	sessions session.SessionStorer
	srv      *http.Server
	store    store.Store
	url      *url.URL
}

// New constructs a Ranger from the provided options.
// Options are applied first; New then fills in every component they left unset.
func New(opts ...RangerOption) (*Ranger, error) {
	rng := new(Ranger)
	for _, opt := range opts {
		if err := opt(rng); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
		}
	}

	if rng.ctx == nil {
		rng.ctx = context.Background()
	}
	rng.ctx, rng.cancel = context.WithCancel(rng.ctx)

	if rng.env == "" {
		rng.env = rango.EnvVarOrEnv(environmentEnvVar, rango.Development)
	}

	if rng.l == nil {
		rng.l = DefaultLogger(rng.env)
	}

	rng.url = rango.EnvVarOrURL(BaseURLEnvVar, defaultBaseURL)

	if rng.store == nil {
		if rng.db == nil {
			db, err := ConnectDB(rng.env)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
			}

			rng.db = db
		}

		rng.store = store.New(rng.db)
	}

	appTitle := rango.EnvVarOrString(AppTitleEnvVar, defaultAppTitle)
	if rng.sessions == nil {
		s, err := defaultSessionStore(rng.env, appTitle)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
		}

		rng.sessions = s
	}

	if rng.idem == nil {
		rng.idem = defaultIdempotencyCache(rng.ctx, rng.l)
	}

	if rng.registry == nil {
		rng.registry = defaultRegistry()
	}

	visits, err := visit.NewMetrics(rng.registry)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
	}

	httpMetrics, err := middleware.NewHTTPMetrics(rng.registry)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
	}

	contact := rango.EnvVarOrString(ContactUsEnvVar, defaultContactUs)
	rng.Responder = defaultResponder(rng.env, rng.l, rng.url, contact)

	authSvc, err := auth.NewService(rng.store)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
	}

	h, err := handler.New(
		rng.Responder,
		rng.store,
		authSvc,
		handler.WithCounter(defaultCounter(visits)),
		handler.WithGatherer(rng.registry),
		handler.WithIdempotencyCache(rng.idem),
		handler.WithLogger(rng.l),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
	}

	rng.Router = defaultRouter(rng.env, rng.l, rng.url, rng.Responder, []middleware.Adapter{
		middleware.ForceHTTPS(rng.env),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(rng.l),
		middleware.Metrics(httpMetrics),
		middleware.CORS(rng.url.String()),
		middleware.InjectSession(rng.sessions, rng.l),
		middleware.CurrentUser(rng.Responder, rng.store.UserByID),
	})
	h.Routes(rng.Router)

	if rng.srv == nil {
		rng.srv = defaultServer(rng.ctx)
	}

	rng.srv.Handler = rng.Router
	if rango.EnvVarOrBool(maintModeEnvVar, false) {
		rng.l.Warn("maintenance mode is on, every request receives 503", nil)
		rng.srv.Handler = MaintModeHandler(template.NewParser(), rng.l, contact)
	}

	return rng, nil
}

// Cancel returns the context.CancelFunc that stops Guide.
func (rng *Ranger) Cancel() context.CancelFunc { return rng.cancel }

func (rng *Ranger) EmitDB() *postgres.DB                    { return rng.db }
func (rng *Ranger) EmitLogger() logger.Logger               { return rng.l }
func (rng *Ranger) EmitRegistry() *prometheus.Registry      { return rng.registry }
func (rng *Ranger) EmitSessionStore() session.SessionStorer { return rng.sessions }
func (rng *Ranger) EmitStore() store.Store                  { return rng.store }

// Guide begins the web server.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
// - calling the context.CancelFunc from (*Ranger).Cancel
func (rng *Ranger) Guide() error {
	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			rng.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			rng.cancel()
		case <-rng.ctx.Done():
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		rng.l.Info(fmt.Sprintf("running web server at %s", rng.srv.Addr), nil)
		if err := rng.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("could not listen: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		rng.l.Error(err.Error(), &logger.LogContext{Error: err})
		rng.cancel()
		if shutdownErr := rng.Shutdown(); shutdownErr != nil {
			return fmt.Errorf("%w: %w", err, shutdownErr)
		}

		return err
	case <-rng.ctx.Done():
		return rng.Shutdown()
	}
}

// Shutdown shuts down the web server and closes the database connection.
func (rng *Ranger) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	rng.l.Info("shutting down web server", nil)
	err := rng.srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	if rng.db != nil {
		sqlDB, err := rng.db.DB().DB()
		if err == nil {
			err = sqlDB.Close()
		}

		if err != nil {
			return fmt.Errorf("could not close database: %w", err)
		}
	}

	sentry.Flush(2 * time.Second)
	rng.l.Info("web server shutdown successfully", nil)
	return nil
}

// MaintModeHandler responds to every request with 503 and a Retry-After header.
// HTML requests also receive the maintenance page.
func MaintModeHandler(p template.Parser, l logger.Logger, contact string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "600")

		tmpl, err := p.Parse(maintTmpl)
		if err != nil {
			l.Error(err.Error(), &logger.LogContext{Error: err, Request: r})
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusServiceUnavailable)
		if err := tmpl.Execute(w, map[string]any{"Contact": contact}); err != nil {
			l.Error(err.Error(), &logger.LogContext{Error: err, Request: r})
		}
	})
}
