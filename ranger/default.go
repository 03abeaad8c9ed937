package ranger

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/http/middleware"
	"github.com/xy-planning-network/rango/http/resp"
	"github.com/xy-planning-network/rango/http/router"
	"github.com/xy-planning-network/rango/http/session"
	"github.com/xy-planning-network/rango/http/template"
	"github.com/xy-planning-network/rango/logger"
	"github.com/xy-planning-network/rango/postgres"
	"github.com/xy-planning-network/rango/store"
	"github.com/xy-planning-network/rango/visit"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// Default HTML template files
	defaultTmplDir      = "tmpl"
	defaultErrTmpl      = defaultTmplDir + "/error.tmpl"
	defaultLayoutDir    = defaultTmplDir + "/layout"
	defaultAuthedTmpl   = defaultLayoutDir + "/authed.tmpl"
	defaultUnauthedTmpl = defaultLayoutDir + "/unauthed.tmpl"
	maintTmpl           = defaultTmplDir + "/maintenance.tmpl"

	contactUsErr = "Uh oh! We've run into an issue. Please contact us at %s."

	visitWindowEnvVar = "VISIT_ROLLING_WINDOW"
	redisPingTimeout  = 2 * time.Second
)

// ConnectDB connects to the Postgres database configured for env
// and runs rango's migrations.
func ConnectDB(env rango.Environment) (*postgres.DB, error) {
	return postgres.Connect(NewPostgresConfig(env), store.Migrations(), env)
}

// DefaultLogger constructs a logger.Logger configured for env.
// When SENTRY_DSN is set, errors are also reported to Sentry.
func DefaultLogger(env rango.Environment) logger.Logger {
	l := logger.New(
		logger.WithEnv(env.String()),
		logger.WithLevel(logger.NewLogLevel(os.Getenv(logLevelEnvVar))),
	)

	if dsn := os.Getenv(sentryDsnEnvVar); dsn != "" {
		sl := logger.NewSentryLogger(l, dsn)
		sl.Debug("using SentryLogger for app logger", nil)
		return sl
	}

	return l
}

// defaultCounter constructs the *visit.Counter the index and about pages count visits with.
//
// Visits are counted per calendar day unless VISIT_ROLLING_WINDOW sets a window.
func defaultCounter(m *visit.Metrics) *visit.Counter {
	opts := []visit.CounterOpt{visit.WithMetrics(m)}
	if d := rango.EnvVarOrDuration(visitWindowEnvVar, 0); d > 0 {
		opts = append(opts, visit.WithPolicy(visit.Rolling(d)))
	}

	return visit.NewCounter(opts...)
}

// defaultIdempotencyCache connects to the Redis backend at REDIS_URL.
// If REDIS_URL is unset or unreachable, responses are cached in memory.
func defaultIdempotencyCache(ctx context.Context, l logger.Logger) middleware.IdempotencyCacher {
	raw := os.Getenv(redisURLEnvVar)
	if raw == "" {
		l.Debug("caching idempotent responses in memory", nil)
		return middleware.NewIdemResMap()
	}

	opts, err := redis.ParseURL(raw)
	if err != nil {
		err = fmt.Errorf("%w: %s: %s", ErrBadConfig, redisURLEnvVar, err)
		l.Warn(err.Error(), &logger.LogContext{Error: err})
		return middleware.NewIdemResMap()
	}

	cache := middleware.NewRedisCache(opts)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := cache.Ping(pingCtx); err != nil {
		l.Warn("cannot reach Redis, caching idempotent responses in memory", &logger.LogContext{Error: err})
		return middleware.NewIdemResMap()
	}

	return cache
}

// defaultRegistry constructs a *prometheus.Registry collecting runtime metrics.
func defaultRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// defaultResponder configures the *resp.Responder to be used by http.Handlers.
func defaultResponder(env rango.Environment, l logger.Logger, baseURL *url.URL, contact string) *resp.Responder {
	p := template.NewParser(template.WithFn(template.Env(env)))

	return resp.NewResponder(
		resp.WithAuthTemplate(defaultAuthedTmpl),
		resp.WithContactErrMsg(fmt.Sprintf(contactUsErr, contact)),
		resp.WithErrTemplate(defaultErrTmpl),
		resp.WithLogger(l),
		resp.WithParser(p),
		resp.WithRootUrl(baseURL.String()),
		resp.WithUnauthTemplate(defaultUnauthedTmpl),
	)
}

// defaultRouter constructs the *router.Router serving rango,
// applying mws to every request.
func defaultRouter(
	env rango.Environment,
	l logger.Logger,
	baseURL *url.URL,
	responder *resp.Responder,
	mws []middleware.Adapter,
) *router.Router {
	rt := router.New(env, l)
	rt.OnEveryRequest(mws...)
	rt.HandleNotFound(func(wx http.ResponseWriter, rx *http.Request) {
		if strings.Contains(rx.Header.Get("Accept"), "text/html") && rx.URL.Path != baseURL.Path {
			responder.Redirect(wx, rx, resp.ToRoot())
			return
		}

		wx.WriteHeader(http.StatusNotFound)
	})

	return rt
}

// defaultSessionStore constructs a SessionStorer to be used for storing session data.
//
// defaultSessionStore relies on these env vars:
//   - SESSION_AUTH_KEY
//   - SESSION_ENCRYPTION_KEY
//   - SESSION_REDIS_URI, optional
//   - SESSION_REDIS_PASSWORD, optional
//
// Both KEY env vars must be valid hex encoded values; cf. [encoding/hex].
func defaultSessionStore(env rango.Environment, appName string) (session.SessionStorer, error) {
	cfg := session.Config{
		AuthKey:     os.Getenv(SessionAuthKeyEnvVar),
		EncryptKey:  os.Getenv(SessionEncryptKeyEnvVar),
		Env:         env,
		SessionName: sessionName(appName),
	}

	args := []session.ServiceOpt{session.WithMaxAge(sessionMaxAge)}
	if uri := os.Getenv(sessionRedisURIEnvVar); uri != "" {
		args = append(args, session.WithRedis(uri, os.Getenv(sessionRedisPasswordEnvVar)))
	} else {
		args = append(args, session.WithCookie())
	}

	return session.NewStoreService(cfg, args...)
}

// sessionName derives the cookie name sessions are stored under from the app's title.
func sessionName(appName string) string {
	appName = cases.Lower(language.English).String(strings.TrimSpace(appName))
	appName = regexp.MustCompile(`[,':]`).ReplaceAllString(appName, "")
	appName = regexp.MustCompile(`\s+`).ReplaceAllString(appName, "-")

	return "rango-" + appName
}

// defaultServer constructs a default *http.Server.
func defaultServer(ctx context.Context) *http.Server {
	port := rango.EnvVarOrString(portEnvVar, DefaultPort)
	if port[0] != ':' {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		IdleTimeout:  rango.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  rango.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: rango.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}
