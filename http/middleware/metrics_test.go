package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rango/http/middleware"
)

func TestNewHTTPMetrics(t *testing.T) {
	// Arrange
	reg := prometheus.NewRegistry()

	// Act
	first, err := middleware.NewHTTPMetrics(reg)
	require.Nil(t, err)

	second, err := middleware.NewHTTPMetrics(reg)

	// Assert
	require.Nil(t, err)
	require.Same(t, first.Requests, second.Requests)
	require.Same(t, first.Duration, second.Duration)
}

func TestMetrics(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		// Act
		middleware.Metrics(nil)(teapotHandler()).ServeHTTP(w, r)

		// Assert
		require.Equal(t, http.StatusTeapot, w.Code)
	})

	t.Run("Route-Template", func(t *testing.T) {
		// Arrange
		m, err := middleware.NewHTTPMetrics(nil)
		require.Nil(t, err)

		router := mux.NewRouter()
		router.Handle("/category/{slug}/", teapotHandler()).Methods(http.MethodGet)
		router.Use(mux.MiddlewareFunc(middleware.Metrics(m)))

		for _, slug := range []string{"python", "django"} {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/category/"+slug+"/", nil)

			// Act
			router.ServeHTTP(w, r)

			// Assert
			require.Equal(t, http.StatusTeapot, w.Code)
		}

		require.Equal(t, float64(2), testutil.ToFloat64(m.Requests.WithLabelValues(http.MethodGet, "/category/{slug}/", "418")))
		require.Equal(t, 1, testutil.CollectAndCount(m.Duration))
	})

	t.Run("Unmatched", func(t *testing.T) {
		// Arrange
		m, err := middleware.NewHTTPMetrics(nil)
		require.Nil(t, err)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/nowhere/", nil)

		// Act
		middleware.Metrics(m)(noopHandler()).ServeHTTP(w, r)

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, float64(1), testutil.ToFloat64(m.Requests.WithLabelValues(http.MethodGet, "unmatched", "200")))
	})
}
