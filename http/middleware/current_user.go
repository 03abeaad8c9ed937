package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/http/resp"
	"github.com/xy-planning-network/rango/http/session"
)

// UserStorer defines how to retrieve a rango.User by an ID in the context of middleware.
type UserStorer func(ctx context.Context, id uint) (rango.User, error)

// CurrentUser pulls the user ID out of the session.Session stored in the *http.Request.Context
// and stores the rango.User it belongs to in the *http.Request.Context under rango.CurrentUserKey.
//
// A request whose session holds no user ID passes on untouched;
// access control middlewares decide what to do with it.
//
// A *resp.Responder is needed to handle cases a CurrentUser cannot be retrieved or does not have access.
// CurrentUser checks whether the "Accept" MIME type is "application/json"
// and writes a status code if so.
// If it isn't, CurrentUser redirects to the Responder's root URL.
//
// If d or storer are nil, NoopAdapter returns and this middleware does nothing.
func CurrentUser(d *resp.Responder, storer UserStorer) Adapter {
	if d == nil || storer == nil {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := r.Context().Value(rango.SessionKey).(session.Session)
			if !ok {
				handleErr(w, r, http.StatusUnauthorized, d, nil)
				return
			}

			uid, err := s.UserID()
			if errors.Is(err, session.ErrNoUser) {
				handler.ServeHTTP(w, r)
				return
			}

			if err != nil {
				if err := s.Delete(w, r); err != nil {
					handleErr(w, r, http.StatusInternalServerError, d, err)
					return
				}

				handleErr(w, r, http.StatusUnauthorized, d, err)
				return
			}

			user, err := storer(r.Context(), uid)
			if err != nil {
				if err := s.DeregisterUser(w, r); err != nil {
					handleErr(w, r, http.StatusInternalServerError, d, err)
					return
				}

				handleErr(w, r, http.StatusUnauthorized, d, err)
				return
			}

			if !user.HasAccess() {
				if err := s.DeregisterUser(w, r); err != nil {
					handleErr(w, r, http.StatusInternalServerError, d, err)
					return
				}

				handleErr(w, r, http.StatusUnauthorized, d, nil)
				return
			}

			w.Header().Add("Cache-Control", "no-store")
			w.Header().Add("Pragma", "no-cache")

			ctx := context.WithValue(r.Context(), rango.CurrentUserKey, user)
			handler.ServeHTTP(w, r.Clone(ctx))
		})
	}
}

// RequireUnauthed returns a middleware.Adapter that checks whether a user is authenticated
// and requires they not be authenticated.
// When they are not authenticated, RequireUnauthed hands off to the next part of the middleware chain.
//
// Authenticated means a rango.User is set in the request context under rango.CurrentUserKey.
//
// When the user is authenticated, and the request's "Accept" header has "application/json" in it,
// RequireUnauthed writes 400 to the client.
// If the request does not have that value in it's header,
// RequireUnauthed redirects to the user's HomePath.
func RequireUnauthed() Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cu, ok := r.Context().Value(rango.CurrentUserKey).(rango.User); ok {
				if acceptsJson(r.Header) {
					w.WriteHeader(http.StatusBadRequest)
					return
				}

				http.Redirect(w, r, cu.HomePath(), http.StatusTemporaryRedirect)
				return
			}

			handler.ServeHTTP(w, r)
		})
	}
}

// RequireAuthed returns a middleware.Adapter that checks whether a user is authenticated,
// and requires they be authenticated.
// When the user is authenticated, then RequireAuthed hands off to the next part of the middleware chain.
//
// When the user is not authenticated, and the request's "Accept" header has "application/json" in it,
// RequireAuthed writes 401 to the client.
// If the request does not have that value in it's header,
// RequireAuthed redirects to the provided login URL.
//
// The URL originally requested is appended to as a "next" query param
// when the request method is GET and the endpoint is not the logoff URL.
func RequireAuthed(loginUrl, logoffUrl string) Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := r.Context().Value(rango.CurrentUserKey).(rango.User); !ok {
				if acceptsJson(r.Header) {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}

				u := loginUrl
				if r.Method == http.MethodGet && r.URL.Path != logoffUrl {
					u += "?next=" + url.QueryEscape(r.URL.RequestURI())
				}

				http.Redirect(w, r, u, http.StatusTemporaryRedirect)
				return
			}

			handler.ServeHTTP(w, r)
		})
	}
}

// acceptsJson asserts whether any "Accept" header is exactly "application/json".
func acceptsJson(header http.Header) bool {
	for _, v := range header.Values("Accept") {
		if strings.Compare(v, "application/json") == 0 {
			return true
		}
	}

	return false
}

// handleErr helps CurrentUser error paths by writing responses reflecting the
// "Accept" type of the *http.Request.
func handleErr(w http.ResponseWriter, r *http.Request, code int, d *resp.Responder, err error) {
	if acceptsJson(r.Header) {
		d.Json(w, r, resp.Err(err), resp.Code(code))
		return
	}

	d.Redirect(w, r, resp.Err(err))
}
