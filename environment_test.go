package rango_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rango"
)

func TestEnvironmentValid(t *testing.T) {
	require.Nil(t, rango.Development.Valid())
	require.Nil(t, rango.Production.Valid())
	require.ErrorIs(t, rango.Environment("nope").Valid(), rango.ErrNotValid)
}

func TestEnvVarOrEnv(t *testing.T) {
	t.Setenv("RANGO_TEST_ENV", "")
	require.Equal(t, rango.Development, rango.EnvVarOrEnv("RANGO_TEST_ENV", rango.Development))

	t.Setenv("RANGO_TEST_ENV", "staging")
	require.Equal(t, rango.Staging, rango.EnvVarOrEnv("RANGO_TEST_ENV", rango.Development))

	t.Setenv("RANGO_TEST_ENV", "moon")
	require.Equal(t, rango.Testing, rango.EnvVarOrEnv("RANGO_TEST_ENV", rango.Testing))
}

func TestEnvVarOrScalars(t *testing.T) {
	t.Setenv("RANGO_TEST_BOOL", "TRUE")
	require.True(t, rango.EnvVarOrBool("RANGO_TEST_BOOL", false))

	t.Setenv("RANGO_TEST_BOOL", "maybe")
	require.False(t, rango.EnvVarOrBool("RANGO_TEST_BOOL", false))

	t.Setenv("RANGO_TEST_DUR", "3s")
	require.Equal(t, 3*time.Second, rango.EnvVarOrDuration("RANGO_TEST_DUR", time.Second))

	t.Setenv("RANGO_TEST_DUR", "soon")
	require.Equal(t, time.Second, rango.EnvVarOrDuration("RANGO_TEST_DUR", time.Second))

	t.Setenv("RANGO_TEST_INT", "12")
	require.Equal(t, 12, rango.EnvVarOrInt("RANGO_TEST_INT", 1))

	t.Setenv("RANGO_TEST_INT", "twelve")
	require.Equal(t, 1, rango.EnvVarOrInt("RANGO_TEST_INT", 1))

	t.Setenv("RANGO_TEST_STR", "")
	require.Equal(t, "def", rango.EnvVarOrString("RANGO_TEST_STR", "def"))
}

func TestEnvVarOrURL(t *testing.T) {
	t.Setenv("RANGO_TEST_URL", "")
	require.Equal(t, "http://localhost:3000/", rango.EnvVarOrURL("RANGO_TEST_URL", "http://localhost:3000/path").String())

	t.Setenv("RANGO_TEST_URL", "https://rango.example.com")
	require.Equal(t, "https://rango.example.com", rango.EnvVarOrURL("RANGO_TEST_URL", "http://localhost:3000").String())

	require.Nil(t, rango.EnvVarOrURL("RANGO_TEST_URL", "not a url"))
}
