package resp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	html "html/template"
	"net/http"
	"net/url"
	"path"
	"sync"

	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/http/session"
	"github.com/xy-planning-network/rango/http/template"
	"github.com/xy-planning-network/rango/logger"
)

const responderFrames = 0

// Responder maintains reusable pieces for responding to HTTP requests.
// It exposes many common methods for writing structured data as an HTTP response.
// These are the forms of response Responder can execute:
//
//	Html
//	Json
//	Redirect
//
// Most oftentimes, setting up a single instance of a Responder suffices for an application.
//
// When handling a specific HTTP request, calling code supplies additional data, structure,
// and so forth through Fn functions.
type Responder struct {
	logger logger.Logger

	// Initialized template parser
	parser template.Parser

	// Pool of *bytes.Buffer to prerender responses into
	pool *sync.Pool

	// Error message to use for "contact us" style client-side error messages,
	// i.e., those set in a session.Flash
	contactErrMsg string

	// Root URL the responder is listening on, also used when in an error state
	rootUrl *url.URL

	templates struct {
		// Root template to render when user is authenticated
		authed string

		// Root template to render when an error occurs
		// and no other response can be formed
		err string

		// Root template to render when user is not authenticated
		unauthed string
	}
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	d := &Responder{
		pool: &sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(l.Skip() + responderFrames)
	}

	if d.parser != nil {
		// NOTE: currentUser is replaced per request in Html;
		// registering it here lets every template parse.
		d.parser.AddFn(template.CurrentUser(nil))
		d.parser.AddFn(template.Nonce())
		d.parser.AddFn(template.RootUrl(d.rootUrl))
	}

	return d
}

// CurrentUser retrieves the rango.User set in the context.
//
// If the context.Context has no value for rango.CurrentUserKey, ErrNotFound returns.
func (doer Responder) CurrentUser(ctx context.Context) (rango.User, error) {
	val := ctx.Value(rango.CurrentUserKey)
	if val == nil {
		return rango.User{}, fmt.Errorf("%w: no user found with %q", ErrNotFound, rango.CurrentUserKey)
	}

	u, ok := val.(rango.User)
	if !ok {
		return rango.User{}, fmt.Errorf("%w: is not rango.User, is %T", ErrInvalid, val)
	}

	return u, nil
}

// Err wraps http.Error(), logging the error causing the failure state.
//
// Use in exceptional circumstances when no Redirect or Html can occur.
func (doer *Responder) Err(w http.ResponseWriter, r *http.Request, err error, opts ...Fn) {
	rr, nested := doer.do(w, r, append(opts, Err(err))...)
	switch {
	case nested == nil:
	case err == nil:
		err = nested
	default:
		err = fmt.Errorf("%w: %w", err, nested)
	}

	var msg string
	if err != nil {
		msg = err.Error()
	}

	code := http.StatusInternalServerError
	if rr != nil && rr.code != 0 {
		code = rr.code
	}

	http.Error(w, msg, code)
}

// ErrPage logs err and renders the error template with a 500 status code.
// err always returns.
//
// Use when a handler cannot form the page it was asked for.
func (doer *Responder) ErrPage(w http.ResponseWriter, r *http.Request, err error) error {
	if err == nil {
		err = fmt.Errorf("%w: ErrPage called without an error", ErrMissingData)
	}

	return doer.handleHtmlError(w, r, err)
}

// Html composes together HTML templates set in *Responder
// and configured by Layout, Authed, Unauthed, Tmpls and other such calls.
//
// Any error forming the response renders the error template with a 500 status code.
func (doer *Responder) Html(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return doer.handleHtmlError(w, r, err)
	}

	if doer.parser == nil {
		return doer.handleHtmlError(w, r, fmt.Errorf("%w: no parser configured", ErrBadConfig))
	}

	if len(rr.tmpls) == 0 {
		return doer.handleHtmlError(w, r, fmt.Errorf("%w: no templates to render", ErrMissingData))
	}

	if rr.tmpls[0] == doer.templates.authed {
		// NOTE: a user is required for the authenticated layout,
		// guarding against misuse like Html(Tmpls(authedTmpl, otherTmpl)).
		if err := populateUser(*doer, rr); err != nil {
			return doer.handleHtmlError(w, r, err)
		}
	} else {
		_ = populateUser(*doer, rr)
	}

	tmpl, err := doer.parser.Parse(rr.tmpls...)
	if err != nil {
		return doer.handleHtmlError(w, r, fmt.Errorf("cannot parse: %w", err))
	}

	user := rr.user
	tmpl = tmpl.Funcs(html.FuncMap{"currentUser": func() any { return user }})

	rd := struct {
		Data    any
		Flashes []session.Flash
	}{Data: rr.data}

	s, err := doer.Session(r.Context())
	switch {
	case err == nil:
		rd.Flashes = s.Flashes(w, r)
	case !errors.Is(err, ErrNotFound):
		return doer.handleHtmlError(w, r, fmt.Errorf("can't retrieve session: %w", err))
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	if err := tmpl.ExecuteTemplate(b, path.Base(rr.tmpls[0]), rd); err != nil {
		return doer.handleHtmlError(w, r, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if rr.code != 0 {
		w.WriteHeader(rr.code)
	}

	if _, err := b.WriteTo(w); err != nil {
		doer.logger.Error(err.Error(), newLogContext(r, err, nil, rr.user))
		return err
	}

	return nil
}

type jsonSchema struct {
	D any `json:"data,omitempty"`
	U any `json:"currentUser,omitempty"`
}

// Json responds with data in JSON format, collating it from User(), Data() and setting appropriate headers.
//
// When standard 2xx codes are supplied, the JSON schema will look like this:
//
//	{
//		"currentUser": {},
//		"data": {}
//	}
//
// Otherwise, "currentUser" is elided.
func (doer *Responder) Json(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	if rr.code == 0 {
		rr.code = http.StatusOK
	}

	payload := jsonSchema{D: rr.data}
	if rr.code >= http.StatusOK && rr.code <= http.StatusNoContent {
		payload.U = rr.user
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	if err := json.NewEncoder(b).Encode(payload); err != nil {
		doer.Err(w, r, err)
		return err
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(rr.code)
	if _, err := b.WriteTo(w); err != nil {
		return err
	}

	return nil
}

// Redirect calls http.Redirect, given Url() set the redirect destination.
// If Url() is not passed in opts, then ToRoot() sets the redirect destination.
//
// The default response status code is 302.
//
// If Code() set the status code to something other than standard redirect 3xx statuses,
// Redirect overwrites the status code with an appropriate 3xx status code.
func (doer *Responder) Redirect(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, append([]Fn{ToRoot()}, opts...)...)
	if err != nil {
		return err
	}

	if rr.url == nil {
		return fmt.Errorf("%w: cannot redirect, no resp.url", ErrMissingData)
	}

	switch {
	case rr.code >= http.StatusMultipleChoices && rr.code <= http.StatusPermanentRedirect:
	case rr.code >= http.StatusBadRequest && rr.code < http.StatusInternalServerError:
		rr.code = http.StatusSeeOther
	case rr.code >= http.StatusInternalServerError:
		rr.code = http.StatusTemporaryRedirect
	default:
		rr.code = http.StatusFound
	}

	http.Redirect(w, r, rr.url.String(), rr.code)
	return nil
}

// Session retrieves the session set in the context as a session.Session.
//
// If the context.Context has no value for rango.SessionKey, ErrNotFound returns.
func (doer Responder) Session(ctx context.Context) (session.Session, error) {
	val := ctx.Value(rango.SessionKey)
	if val == nil {
		return session.Session{}, fmt.Errorf("%w: no session found with %q", ErrNotFound, rango.SessionKey)
	}

	s, ok := val.(session.Session)
	if !ok {
		return session.Session{}, fmt.Errorf("%w: is not session.Session, is %T", ErrInvalid, val)
	}

	return s, nil
}

// do applies all options to the passed in http.ResponseWriter and *http.Request.
//
// Calling code ought to pass Options in the correct order.
// An option requiring something set by another one should come after.
// do nonetheless retries options returning errors until all succeed or
// a set of options unable to succeed is reached.
func (doer *Responder) do(w http.ResponseWriter, r *http.Request, opts ...Fn) (*Response, error) {
	resp := &Response{
		w:     w,
		r:     r,
		tmpls: make([]string, 0),
	}

	redos := make([]Fn, 0)
	for _, opt := range opts {
		select {
		case <-r.Context().Done():
			return nil, fmt.Errorf("%w", ErrDone)
		default:
			if err := opt(*doer, resp); err != nil {
				redos = append(redos, opt)
			}
		}
	}

	for i := -1; i != len(redos); {
		select {
		case <-r.Context().Done():
			return nil, fmt.Errorf("%w", ErrDone)
		default:
			// NOTE: redo shrinks redos whenever an option succeeds;
			// stop once a pass makes no progress.
			i = len(redos)
			redos = doer.redo(resp, redos...)
		}
	}

	var err error
	for _, opt := range redos {
		nested := opt(*doer, resp)
		if err == nil {
			err = nested
			continue
		}

		err = fmt.Errorf("%w: %w", err, nested)
	}

	return resp, err
}

// handleHtmlError logs err and specially renders the error template set on the Responder.
// err returns even when the error template renders.
func (doer *Responder) handleHtmlError(w http.ResponseWriter, r *http.Request, err error) error {
	doer.logger.Error(err.Error(), newLogContext(r, err, nil, nil))

	if doer.templates.err == "" || doer.parser == nil {
		err = fmt.Errorf(
			"%w: no error template provided, encountered while handling: %s",
			ErrBadConfig,
			err,
		)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return err
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	tmpl, nested := doer.parser.Parse(doer.templates.err)
	if nested != nil {
		err = fmt.Errorf("%w: %w", err, nested)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return err
	}

	nested = tmpl.Execute(b, map[string]any{"Contact": doer.contactErrMsg, "Error": err})
	if nested != nil {
		err = fmt.Errorf("%w: %w", err, nested)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	b.WriteTo(w)

	return err
}

// redo applies as many Options as it can, returning those Options that continue to throw an error.
func (doer *Responder) redo(r *Response, opts ...Fn) []Fn {
	bad := make([]Fn, 0)
	for _, opt := range opts {
		if err := opt(*doer, r); err != nil {
			bad = append(bad, opt)
		}
	}

	return bad
}
