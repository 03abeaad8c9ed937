package ranger

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rango/http/middleware"
	"github.com/xy-planning-network/rango/logger"
)

func TestSessionName(t *testing.T) {
	for _, tc := range []struct {
		name     string
		appName  string
		expected string
	}{
		{"Default", defaultAppTitle, "rango-rango"},
		{"Punctuation", "Bob's Links: Python", "rango-bobs-links-python"},
		{"Whitespace", "  Tango   with Django ", "rango-tango-with-django"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, sessionName(tc.appName))
		})
	}
}

func TestDefaultIdempotencyCache(t *testing.T) {
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(log.New(b, "", 0)))

	t.Run("Unset", func(t *testing.T) {
		// Arrange
		t.Setenv(redisURLEnvVar, "")

		// Act
		c := defaultIdempotencyCache(context.Background(), l)

		// Assert
		require.IsType(t, middleware.IdemResMap{}, c)
	})

	t.Run("Bad-URL", func(t *testing.T) {
		// Arrange
		t.Setenv(redisURLEnvVar, "mysql://nope")

		// Act
		c := defaultIdempotencyCache(context.Background(), l)

		// Assert
		require.IsType(t, middleware.IdemResMap{}, c)
		require.Contains(t, b.String(), redisURLEnvVar)
	})
}

func TestDefaultServer(t *testing.T) {
	// Arrange
	t.Setenv(portEnvVar, "9000")
	t.Setenv(serverReadTimeoutEnvVar, "")

	// Act
	srv := defaultServer(context.Background())

	// Assert
	require.Equal(t, ":9000", srv.Addr)
	require.Equal(t, DefaultServerReadTimeout, srv.ReadTimeout)
	require.NotNil(t, srv.BaseContext)
}
