package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/auth"
	"github.com/xy-planning-network/rango/http/resp"
	"github.com/xy-planning-network/rango/http/session"
	"github.com/xy-planning-network/rango/logger"
)

const usernameTakenMsg = "A user with that username already exists."

func (h *Handler) getRegister(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"form": auth.RegisterForm{}, "errors": map[string]string{}, "registered": false}
	h.Html(w, r, resp.Unauthed(), resp.Tmpls(registerTmpl), resp.Data(data))
}

// postRegister creates an account,
// re-rendering the form with errors when that cannot be done.
func (h *Handler) postRegister(w http.ResponseWriter, r *http.Request) {
	var form auth.RegisterForm
	errs, err := h.parseForm(r, &form)
	if err != nil {
		h.ErrPage(w, r, err)
		return
	}

	registered := false
	if len(errs) == 0 {
		user, err := h.auth.Register(r.Context(), form)
		switch {
		case errors.Is(err, rango.ErrExists):
			errs["username"] = usernameTakenMsg
		case err != nil:
			h.ErrPage(w, r, err)
			return
		default:
			registered = true
			h.logger.Info(fmt.Sprintf("registered user %d", user.ID), &logger.LogContext{User: user})
		}
	}

	form.Password = ""
	data := map[string]any{"form": form, "errors": errs, "registered": registered}
	h.Html(w, r, resp.Unauthed(), resp.Tmpls(registerTmpl), resp.Data(data))
}

func (h *Handler) getLogin(w http.ResponseWriter, r *http.Request) {
	h.Html(w, r, resp.Unauthed(), resp.Tmpls(loginTmpl), resp.Data(map[string]any{"username": "", "next": r.URL.Query().Get("next")}))
}

// postLogin authenticates the submitted credentials, registering the User in the session.
// On success, postLogin redirects to the "next" query param or the index.
func (h *Handler) postLogin(w http.ResponseWriter, r *http.Request) {
	var form auth.LoginForm
	errs, err := h.parseForm(r, &form)
	if err != nil {
		h.ErrPage(w, r, err)
		return
	}

	var user rango.User
	if len(errs) == 0 {
		user, err = h.auth.Authenticate(r.Context(), form.Username, form.Password)
	}

	if len(errs) > 0 || errors.Is(err, auth.ErrBadCreds) {
		h.logger.Warn(fmt.Sprintf("invalid login details for %q", form.Username), &logger.LogContext{Request: r})
		h.Html(
			w, r,
			resp.Unauthed(),
			resp.Tmpls(loginTmpl),
			resp.Code(http.StatusUnauthorized),
			resp.Flash(session.Flash{Class: session.FlashError, Msg: session.BadCredsMsg}),
			resp.Data(map[string]any{"username": form.Username, "next": r.URL.Query().Get("next")}),
		)
		return
	}

	if err != nil {
		h.ErrPage(w, r, err)
		return
	}

	s, err := h.Session(r.Context())
	if err != nil {
		h.ErrPage(w, r, err)
		return
	}

	if err := s.RegisterUser(w, r, user.ID); err != nil {
		h.ErrPage(w, r, err)
		return
	}

	h.Redirect(w, r, resp.Url(nextPath(r)))
}

// logout removes the User from the session and redirects to the index.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	s, err := h.Session(r.Context())
	if err != nil {
		h.ErrPage(w, r, err)
		return
	}

	if err := s.DeregisterUser(w, r); err != nil {
		h.ErrPage(w, r, err)
		return
	}

	h.Redirect(w, r, resp.Url(IndexURL))
}

func (h *Handler) restricted(w http.ResponseWriter, r *http.Request) {
	h.Html(w, r, resp.Authed(), resp.Tmpls(restrictedTmpl))
}

// nextPath reads the local path to continue to after logging in.
// Anything that could resolve to another host falls back to the index.
func nextPath(r *http.Request) string {
	next := r.URL.Query().Get("next")
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return IndexURL
	}

	if strings.ContainsFunc(next, func(c rune) bool { return c == '\\' || unicode.IsControl(c) }) {
		return IndexURL
	}

	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil || u.Path == LogoutURL {
		return IndexURL
	}

	return next
}
