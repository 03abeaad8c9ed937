package ranger

import (
	"os"
	"time"

	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/postgres"
)

const (
	// App metadata
	AppTitleEnvVar   = "APP_TITLE"
	defaultAppTitle  = "Rango"
	ContactUsEnvVar  = "CONTACT_US_EMAIL"
	defaultContactUs = "hello@rango.example.com"

	// Base URL defaults
	BaseURLEnvVar = "BASE_URL"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar  = "LOG_LEVEL"
	sentryDsnEnvVar = "SENTRY_DSN"

	// Database defaults
	dbHostEnvVar     = "DATABASE_HOST"
	defaultDBHost    = "localhost"
	dbNameEnvVar     = "DATABASE_NAME"
	dbPassEnvVar     = "DATABASE_PASSWORD"
	dbPortEnvVar     = "DATABASE_PORT"
	defaultDBPort    = "5432"
	dbSSLModeEnvVar  = "DATABASE_SSLMODE"
	defaultDBSSLMode = "prefer"
	dbURLEnvVar      = "DATABASE_URL"
	dbUserEnvVar     = "DATABASE_USER"

	// Idempotency cache defaults
	redisURLEnvVar = "REDIS_URL"

	// Web server defaults
	DefaultHost               = "localhost"
	DefaultPort               = ":8000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second

	// Session defaults
	SessionAuthKeyEnvVar       = "SESSION_AUTH_KEY"
	SessionEncryptKeyEnvVar    = "SESSION_ENCRYPTION_KEY"
	sessionRedisURIEnvVar      = "SESSION_REDIS_URI"
	sessionRedisPasswordEnvVar = "SESSION_REDIS_PASSWORD"
	sessionMaxAge              = 3600 * 24 * 14

	// Test defaults
	dbTestHostEnvVar     = "DATABASE_TEST_HOST"
	defaultDBTestHost    = "localhost"
	dbTestNameEnvVar     = "DATABASE_TEST_NAME"
	dbTestPassEnvVar     = "DATABASE_TEST_PASSWORD"
	dbTestPortEnvVar     = "DATABASE_TEST_PORT"
	defaultDBTestPort    = "5432"
	dbTestURLEnvVar      = "DATABASE_TEST_URL"
	dbTestUserEnvVar     = "DATABASE_TEST_USER"
	dbTestSSLModeEnvVar  = "DATABASE_TEST_SSLMODE"
	defaultDBTestSSLMode = "prefer"
)

var defaultBaseURL = "http://" + DefaultHost + DefaultPort

// NewPostgresConfig constructs a *postgres.CxnConfig appropriate to the given environment.
// Confer the DATABASE env vars for usage.
func NewPostgresConfig(env rango.Environment) *postgres.CxnConfig {
	switch {
	case env.IsTesting() && os.Getenv(dbTestURLEnvVar) != "":
		return &postgres.CxnConfig{IsTestDB: true, URL: os.Getenv(dbTestURLEnvVar)}

	case env.IsTesting():
		return &postgres.CxnConfig{
			Host:     rango.EnvVarOrString(dbTestHostEnvVar, defaultDBTestHost),
			IsTestDB: true,
			Name:     os.Getenv(dbTestNameEnvVar),
			Password: os.Getenv(dbTestPassEnvVar),
			Port:     rango.EnvVarOrString(dbTestPortEnvVar, defaultDBTestPort),
			SSLMode:  rango.EnvVarOrString(dbTestSSLModeEnvVar, defaultDBTestSSLMode),
			User:     os.Getenv(dbTestUserEnvVar),
		}

	case os.Getenv(dbURLEnvVar) != "":
		return &postgres.CxnConfig{IsTestDB: false, URL: os.Getenv(dbURLEnvVar)}

	default:
		return &postgres.CxnConfig{
			Host:     rango.EnvVarOrString(dbHostEnvVar, defaultDBHost),
			IsTestDB: false,
			Name:     os.Getenv(dbNameEnvVar),
			Password: os.Getenv(dbPassEnvVar),
			Port:     rango.EnvVarOrString(dbPortEnvVar, defaultDBPort),
			SSLMode:  rango.EnvVarOrString(dbSSLModeEnvVar, defaultDBSSLMode),
			User:     os.Getenv(dbUserEnvVar),
		}
	}
}
