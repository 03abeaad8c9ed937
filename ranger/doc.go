/*
Package ranger initializes and manages a rango app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type,
constructed with [New] and any number of [RangerOption].
Whatever the options leave unset, [New] builds from environment variables:
the logger, the database connection and [store.Store],
the session store, the idempotency cache, the Prometheus registry,
the [resp.Responder], and finally the [router.Router] serving every page.

[*Ranger.Guide] begins a rango app's web server.
By default, [*Ranger.Guide] listens on [DefaultPort] (:8000).

Stop that web server with [*Ranger.Shutdown],
call the context.CancelFunc returned by [*Ranger.Cancel],
or send a signal [*Ranger.Guide] listens for.

# Configuration

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - APP_TITLE: a short title for the application; default: Rango
  - BASE_URL: the base URL the application runs on; default: http://localhost:8000
  - CONTACT_US_EMAIL: the email address shown on error pages
  - DATABASE_HOST: the host the database is running on; default: localhost
  - DATABASE_NAME: the name of the database
  - DATABASE_PASSWORD: the password for authenticating a connection to the database
  - DATABASE_PORT: the port the database is listening on; default: 5432
  - DATABASE_SSLMODE: the sslmode of the database connection; default: prefer
  - DATABASE_URL: the fully-qualified connection string for connecting to the database; replaces all other DATABASE_* env vars
  - DATABASE_USER: the user for authenticating a connection to the database
  - DATABASE_TEST_*: the same, used when ENVIRONMENT is TESTING
  - ENVIRONMENT: the environment the application is running in; cf. [rango.Environment]
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - MAINTENANCE_MODE: when true, every request receives 503 and the maintenance page
  - PORT: the port the application should listen on; default: :8000
  - REDIS_URL: the Redis server caching responses to form submissions; default: in memory
  - SENTRY_DSN: the Sentry project errors are reported to
  - SERVER_IDLE_TIMEOUT: the timeout, as understood by [time.ParseDuration], for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout for writing HTTP responses; default: 5s
  - SESSION_AUTH_KEY: a hex-encoded key for authenticating cookies; cf. [encoding/hex]
  - SESSION_ENCRYPTION_KEY: a hex-encoded key for encrypting cookies; cf. [encoding/hex]
  - SESSION_REDIS_URI: the Redis server sessions are stored in; default: cookies
  - SESSION_REDIS_PASSWORD: the password for SESSION_REDIS_URI
  - VISIT_ROLLING_WINDOW: when set, a new visit is counted after this duration instead of each calendar day
*/
package ranger
