package middleware

import (
	"net/http"
	"strings"

	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/http/resp"
	"github.com/xy-planning-network/rango/http/session"
)

// An AuthorizeApplicator constructs Adapters that apply custom authorization rules
// for users, as specified by type T.
type AuthorizeApplicator[T any] struct {
	d *resp.Responder
}

// NewAuthorizeApplicator constructs an AuthorizeApplicator for type T.
// Apply methods for the constructed AuthorizeApplicator will use the Responder for redirects.
// Apply methods will use rango.CurrentUserKey to pull a user out of the request Context.
func NewAuthorizeApplicator[T any](d *resp.Responder) AuthorizeApplicator[T] {
	return AuthorizeApplicator[T]{d}
}

// Apply wraps a custom function validating the authorization of a user,
// whose type is specified by T.
//
// The provided custom function returns either true and an empty string,
// meaning the user is authorized, or false and a valid URL as a string.
//
// If the custom function returns true,
// Apply passes the request to the next handler in the middleware stack.
//
// If the custom function returns false, or no user is found,
// Apply takes one of two actions depending on the "Accept" HTTP header of the request.
//   - By default, Apply writes 401.
//   - If "text/html" leads the "Accept" header, though,
//     Apply sets a "no access" flash on the session
//     and redirects to the URL the custom function returns.
//
// If fn is nil, Apply returns a NoopAdapter.
func (aa AuthorizeApplicator[T]) Apply(fn func(user T) (string, bool)) Adapter {
	if fn == nil {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			doRedirect := acceptsTextHtml(r.Header)

			val, ok := r.Context().Value(rango.CurrentUserKey).(T)
			if !ok {
				if doRedirect {
					aa.redirect(w, r)
					return
				}

				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if url, ok := fn(val); !ok {
				if doRedirect {
					aa.redirect(w, r, resp.Url(url))
					return
				}

				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			handler.ServeHTTP(w, r)
		})
	}
}

// redirect flashes session.NoAccessMsg and redirects,
// by default to the root URL.
func (aa AuthorizeApplicator[T]) redirect(w http.ResponseWriter, r *http.Request, fns ...resp.Fn) {
	f := session.Flash{Class: session.FlashWarning, Msg: session.NoAccessMsg}
	if err := aa.d.Redirect(w, r, append([]resp.Fn{resp.Flash(f)}, fns...)...); err != nil {
		aa.d.Err(w, r, err)
	}
}

// acceptsTextHtml asserts whether the requests accepts rendered HTML or not.
func acceptsTextHtml(header http.Header) bool {
	return strings.HasPrefix(header.Get("Accept"), "text/html")
}
