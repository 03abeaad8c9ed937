package ranger_test

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/http/middleware"
	"github.com/xy-planning-network/rango/http/session"
	"github.com/xy-planning-network/rango/http/template"
	tt "github.com/xy-planning-network/rango/http/template/templatetest"
	"github.com/xy-planning-network/rango/logger"
	"github.com/xy-planning-network/rango/ranger"
	"github.com/xy-planning-network/rango/store/mock"
)

func newRanger(t *testing.T, opts ...ranger.RangerOption) (*ranger.Ranger, *bytes.Buffer) {
	t.Helper()
	t.Setenv(ranger.BaseURLEnvVar, "http://localhost:8000")

	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(log.New(b, "", 0)), logger.WithLevel(logger.LogLevelDebug))

	s := mock.NewMockStore(gomock.NewController(t))
	s.EXPECT().TopCategories(gomock.Any(), gomock.Any()).Return([]rango.Category{}, nil).AnyTimes()
	s.EXPECT().TopPages(gomock.Any(), gomock.Any()).Return([]rango.Page{}, nil).AnyTimes()

	rng, err := ranger.New(append([]ranger.RangerOption{
		ranger.WithEnv(rango.Testing.String()),
		ranger.WithIdempotencyCache(middleware.NewIdemResMap()),
		ranger.WithLogger(l),
		ranger.WithRegistry(prometheus.NewRegistry()),
		ranger.WithServer(new(http.Server)),
		ranger.WithSessionStore(session.NewStub(0)),
		ranger.WithStore(s),
	}, opts...)...)
	require.Nil(t, err)

	return rng, b
}

func serve(rng *ranger.Ranger, method, target, accept string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, target, nil)
	r.Header.Set("X-Forwarded-Proto", "https")
	if accept != "" {
		r.Header.Set("Accept", accept)
	}

	w := httptest.NewRecorder()
	rng.ServeHTTP(w, r)

	return w
}

func TestNew(t *testing.T) {
	// Arrange
	rng, b := newRanger(t)

	// Act
	w := serve(rng, http.MethodGet, "/about/", "text/html")

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `<span id="visits">1</span>`)
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
	require.Contains(t, b.String(), "GET /about/ 200")
	require.Equal(t, rango.Testing, rng.Env)
	require.NotNil(t, rng.EmitStore())
	require.Nil(t, rng.EmitDB())

	// Act
	w = serve(rng, http.MethodGet, "/metrics", "")

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "rango_visits_began_total 1")
	require.Contains(t, w.Body.String(), `rango_http_requests_total{method="GET",route="/about/",status="200"} 1`)
}

func TestNewIndex(t *testing.T) {
	// Arrange
	rng, _ := newRanger(t)

	// Act
	w := serve(rng, http.MethodGet, "/", "text/html")

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `<span id="visits">1</span>`)
}

func TestNewForcesHTTPS(t *testing.T) {
	// Arrange
	rng, _ := newRanger(t)
	r := httptest.NewRequest(http.MethodGet, "http://localhost:8000/about/", nil)
	w := httptest.NewRecorder()

	// Act
	rng.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusPermanentRedirect, w.Code)
	require.Equal(t, "https://localhost:8000/about/", w.Header().Get("Location"))
}

func TestNewNotFound(t *testing.T) {
	// Arrange
	rng, _ := newRanger(t)

	// Act
	w := serve(rng, http.MethodGet, "/nowhere/", "text/html")

	// Assert
	require.Equal(t, http.StatusFound, w.Code)
	require.Contains(t, w.Header().Get("Location"), "http://localhost:8000")

	// Act
	w = serve(rng, http.MethodGet, "/nowhere/", "application/json")

	// Assert
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewRequiresAuth(t *testing.T) {
	// Arrange
	rng, _ := newRanger(t)

	// Act
	w := serve(rng, http.MethodGet, "/restricted/", "text/html")

	// Assert
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	require.Contains(t, w.Header().Get("Location"), "/login/?next=%2Frestricted%2F")
}

func TestNewBadSessionKeys(t *testing.T) {
	// Arrange
	t.Setenv(ranger.SessionAuthKeyEnvVar, "not hex")
	t.Setenv(ranger.SessionEncryptKeyEnvVar, "not hex")
	s := mock.NewMockStore(gomock.NewController(t))

	// Act
	rng, err := ranger.New(
		ranger.WithEnv(rango.Testing.String()),
		ranger.WithLogger(logger.New(logger.WithLogger(log.New(new(bytes.Buffer), "", 0)))),
		ranger.WithRegistry(prometheus.NewRegistry()),
		ranger.WithStore(s),
	)

	// Assert
	require.ErrorIs(t, err, ranger.ErrBadConfig)
	require.Nil(t, rng)
}

func TestWithContext(t *testing.T) {
	// Act
	_, err := ranger.New(ranger.WithContext(nil)) //nolint:staticcheck

	// Assert
	require.ErrorIs(t, err, ranger.ErrBadConfig)
}

func TestMaintModeHandler(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(log.New(b, "", 0)))
	handler := ranger.MaintModeHandler(template.NewParser(), l, "test@example.com")
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	// Act
	handler.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, "600", w.Result().Header.Get("Retry-After"))
	require.Contains(t, w.Body.String(), "Rango is down for maintenance")
	require.Contains(t, w.Body.String(), "test@example.com")

	// Arrange
	msg := "Sorry for the inconvenience"
	handler = ranger.MaintModeHandler(tt.NewParser(tt.NewMockFile("tmpl/maintenance.tmpl", []byte(msg))), l, "")
	r = httptest.NewRequest(http.MethodPost, "/maint-mode-test", nil)
	w = httptest.NewRecorder()

	// Act
	handler.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, "600", w.Result().Header.Get("Retry-After"))
	require.Equal(t, msg, w.Body.String())
}

func TestNewMaintenanceMode(t *testing.T) {
	// Arrange
	t.Setenv("MAINTENANCE_MODE", "true")
	srv := new(http.Server)
	newRanger(t, ranger.WithServer(srv))
	w := httptest.NewRecorder()

	// Act
	srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/about/", nil))

	// Assert
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestNewPostgresConfig(t *testing.T) {
	t.Run("URL", func(t *testing.T) {
		// Arrange
		t.Setenv("DATABASE_URL", "postgres://rango@db:5432/rango")

		// Act
		cfg := ranger.NewPostgresConfig(rango.Production)

		// Assert
		require.False(t, cfg.IsTestDB)
		require.Equal(t, "postgres://rango@db:5432/rango", cfg.URL)
	})

	t.Run("Parts", func(t *testing.T) {
		// Arrange
		t.Setenv("DATABASE_URL", "")
		t.Setenv("DATABASE_NAME", "rango")
		t.Setenv("DATABASE_USER", "tango")

		// Act
		cfg := ranger.NewPostgresConfig(rango.Development)

		// Assert
		require.Equal(t, "localhost", cfg.Host)
		require.Equal(t, "5432", cfg.Port)
		require.Equal(t, "rango", cfg.Name)
		require.Equal(t, "tango", cfg.User)
		require.Equal(t, "prefer", cfg.SSLMode)
	})

	t.Run("Testing", func(t *testing.T) {
		// Arrange
		t.Setenv("DATABASE_TEST_URL", "")
		t.Setenv("DATABASE_TEST_NAME", "rango_test")

		// Act
		cfg := ranger.NewPostgresConfig(rango.Testing)

		// Assert
		require.True(t, cfg.IsTestDB)
		require.Equal(t, "rango_test", cfg.Name)
	})
}
