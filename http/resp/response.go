package resp

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/xy-planning-network/rango/http/session"
)

// A Fn is a functional option that mutates the state of the Response.
type Fn func(Responder, *Response) error

// A Response is the internal object a Responder response method builds while applying all
// functional options.
type Response struct {
	w     http.ResponseWriter
	r     *http.Request
	code  int
	data  any
	tmpls []string
	url   *url.URL
	user  any
}

// Authed prepends all templates with the base authenticated template and adds resp.user from the session.
//
// If no user can be retrieved from the session, it is assumed a user is not logged in and returns ErrNoUser.
//
// If WithAuthTemplate was not called setting up the Responder, ErrBadConfig returns.
func Authed() Fn {
	return func(d Responder, r *Response) error {
		if d.templates.authed == "" {
			return fmt.Errorf("%w: no authed tmpl", ErrBadConfig)
		}

		if err := populateUser(d, r); err != nil {
			return err
		}

		if len(r.tmpls) > 0 {
			if r.tmpls[0] == d.templates.authed {
				return nil
			}

			if r.tmpls[0] == d.templates.unauthed {
				r.tmpls[0] = d.templates.authed
				return nil
			}
		}

		r.tmpls = append([]string{d.templates.authed}, r.tmpls...)
		return nil
	}
}

// Code sets the response status code.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		r.code = c
		return nil
	}
}

// Data stores the provided value for writing to the client.
//
// Used with Responder.Html and Responder.Json.
func Data(d any) Fn {
	return func(_ Responder, r *Response) error {
		r.data = d
		return nil
	}
}

// Err sets the status code http.StatusInternalServerError and logs the error.
func Err(e error) Fn {
	return func(d Responder, r *Response) error {
		if e != nil {
			d.logger.Error(e.Error(), newLogContext(r.r, e, r.data, r.user))
		}

		return Code(http.StatusInternalServerError)(d, r)
	}
}

// Flash sets a flash message in the session with the passed in class and msg.
func Flash(flash session.Flash) Fn {
	return func(d Responder, r *Response) error {
		s, err := d.Session(r.r.Context())
		if err != nil {
			return err
		}

		return s.SetFlash(r.w, r.r, flash)
	}
}

// GenericErr combines Err() and Flash() to log the passed in error
// and set a generic error flash in the session
// using either the string set by WithContactErrMsg or session.DefaultErrMsg.
func GenericErr(e error) Fn {
	return func(d Responder, r *Response) error {
		if err := Err(e)(d, r); err != nil {
			return err
		}

		msg := session.DefaultErrMsg
		if d.contactErrMsg != "" {
			msg = d.contactErrMsg
		}

		return Flash(session.Flash{Class: session.FlashError, Msg: msg})(d, r)
	}
}

// Layout prepends the base authenticated template when the request carries a user
// and the base unauthenticated template otherwise.
func Layout() Fn {
	return func(d Responder, r *Response) error {
		if err := populateUser(d, r); err == nil {
			return Authed()(d, r)
		}

		return Unauthed()(d, r)
	}
}

// Param adds the query parameter to the response's URL.
//
// Used with Responder.Redirect.
func Param(key, val string) Fn {
	return func(_ Responder, r *Response) error {
		if r.url == nil {
			return fmt.Errorf("%w: Url() has not been called", ErrMissingData)
		}

		q := r.url.Query()
		q.Add(key, val)
		r.url.RawQuery = q.Encode()
		return nil
	}
}

// Success sets the status code to http.StatusOK
// and sets a session.FlashSuccess flash in the session with the passed in msg.
func Success(msg string) Fn {
	return func(d Responder, r *Response) error {
		if err := Code(http.StatusOK)(d, r); err != nil {
			return err
		}

		return Flash(session.Flash{Class: session.FlashSuccess, Msg: msg})(d, r)
	}
}

// Tmpls appends to the templates to be rendered.
//
// Used with Responder.Html.
func Tmpls(fps ...string) Fn {
	return func(_ Responder, r *Response) error {
		r.tmpls = append(r.tmpls, fps...)
		return nil
	}
}

// ToRoot sets the response's URL to the Responder's root URL.
func ToRoot() Fn {
	return func(d Responder, r *Response) error {
		if d.rootUrl == nil {
			r.url = nil
			return nil
		}

		u := *d.rootUrl
		r.url = &u
		return nil
	}
}

// Unauthed prepends all templates with the base unauthenticated template.
// If the first template is the base authenticated template, this overwrites it.
//
// If WithUnauthTemplate was not called setting up the Responder, ErrBadConfig returns.
func Unauthed() Fn {
	return func(d Responder, r *Response) error {
		if d.templates.unauthed == "" {
			return fmt.Errorf("%w: no unauthed tmpl", ErrBadConfig)
		}

		if len(r.tmpls) > 0 {
			if r.tmpls[0] == d.templates.unauthed {
				return nil
			}

			if r.tmpls[0] == d.templates.authed {
				r.tmpls[0] = d.templates.unauthed
				return nil
			}
		}

		r.tmpls = append([]string{d.templates.unauthed}, r.tmpls...)
		return nil
	}
}

// User stores the user in the *Response.
//
// Used with Responder.Html and Responder.Json.
// When used with Json, the user is assigned to the "currentUser" key.
func User(u any) Fn {
	return func(_ Responder, r *Response) error {
		r.user = u
		return nil
	}
}

// Url parses the raw URL string and sets it in the *Response if successful.
// A path beginning with "/" is resolved against the Responder's root URL.
//
// Used with Responder.Redirect.
func Url(u string) Fn {
	return func(d Responder, r *Response) error {
		if strings.HasPrefix(u, "/") && d.rootUrl != nil {
			rel, err := url.Parse(u)
			if err != nil {
				return fmt.Errorf("%w: u is not a valid path: %v", ErrInvalid, err)
			}

			r.url = d.rootUrl.ResolveReference(rel)
			return nil
		}

		parsed, err := url.ParseRequestURI(u)
		if err != nil {
			return fmt.Errorf("%w: u is not a valid URL: %v", ErrInvalid, err)
		}

		r.url = parsed
		return nil
	}
}

// Warn sets a flash warning in the session and logs the warning.
func Warn(msg string) Fn {
	return func(d Responder, r *Response) error {
		d.logger.Warn(msg, newLogContext(r.r, nil, r.data, r.user))

		return Flash(session.Flash{Class: session.FlashWarning, Msg: msg})(d, r)
	}
}
