package middleware

import (
	"fmt"
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/logger"
)

// ReportPanic recovers panics raised by the next handler,
// logs them with l and responds with 500.
//
// Outside of development, panics are also reported to Sentry.
func ReportPanic(env rango.Environment, l logger.Logger) Adapter {
	if l == nil {
		l = logger.New()
	}

	return func(handler http.Handler) http.Handler {
		if !env.IsDevelopment() {
			sh := sentryhttp.New(sentryhttp.Options{
				Repanic:         true,
				WaitForDelivery: true,
				Timeout:         2 * time.Second,
			})
			handler = sh.Handle(handler)
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}

					err := fmt.Errorf("%w: recovered from panic: %v", rango.ErrUnexpected, rec)
					l.Error(err.Error(), &logger.LogContext{Error: err, Request: r})
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()

			handler.ServeHTTP(w, r)
		})
	}
}
