package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rango/http/middleware"
)

func TestCORS(t *testing.T) {
	// Arrange + Act
	actual := middleware.CORS("")

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com/about/", nil)
	r.Header.Set("Origin", "https://example.com")

	// Act
	middleware.CORS("https://example.com")(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusTeapot, w.Code)
	require.Equal(t, "https://example.com", w.Header().Get("Access-Control-Allow-Origin"))

	// Arrange
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "https://example.com/about/", nil)
	r.Header.Set("Origin", "https://elsewhere.com")

	// Act
	middleware.CORS("https://example.com")(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
