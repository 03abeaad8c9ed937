package middleware

import (
	"context"
	"net/http"

	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/http/session"
	"github.com/xy-planning-network/rango/logger"
)

// InjectSession stores the session associated with the *http.Request in *http.Request.Context
// under rango.SessionKey.
//
// A session that cannot be read, like one signed with rotated keys, is replaced by a new one
// and the failure is logged with l, if not nil.
//
// If store is nil, NoopAdapter returns and this middleware does nothing.
func InjectSession(store session.SessionStorer, l logger.Logger) Adapter {
	if store == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := store.GetSession(r)
			if err != nil && l != nil {
				l.Warn("replacing unreadable session", &logger.LogContext{Error: err, Request: r})
			}

			ctx := context.WithValue(r.Context(), rango.SessionKey, s)
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
