package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/http/session"
)

const testKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func newService(t *testing.T) session.Service {
	t.Helper()
	svc, err := session.NewStoreService(session.Config{
		Env:         rango.Testing,
		SessionName: "rango",
		AuthKey:     testKey,
		EncryptKey:  testKey,
	})
	require.Nil(t, err)

	return svc
}

// carry copies the cookies set on w onto a fresh request.
func carry(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}

	return r
}

func TestNewStoreService(t *testing.T) {
	for _, tc := range []struct {
		name string
		cfg  session.Config
	}{
		{"bad-env", session.Config{Env: "NOPE", SessionName: "rango", AuthKey: testKey, EncryptKey: testKey}},
		{"no-name", session.Config{Env: rango.Testing, AuthKey: testKey, EncryptKey: testKey}},
		{"bad-auth-key", session.Config{Env: rango.Testing, SessionName: "rango", AuthKey: "not hex", EncryptKey: testKey}},
		{"bad-encrypt-key", session.Config{Env: rango.Testing, SessionName: "rango", AuthKey: testKey, EncryptKey: "not hex"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			svc, err := session.NewStoreService(tc.cfg)

			// Assert
			require.NotNil(t, err)
			require.Zero(t, svc)
		})
	}

	// Act
	_, err := session.NewStoreService(
		session.Config{Env: rango.Testing, SessionName: "rango", AuthKey: testKey, EncryptKey: testKey},
		session.WithMaxAge(0),
	)

	// Assert
	require.ErrorIs(t, err, rango.ErrBadConfig)
}

func TestServiceRoundTrip(t *testing.T) {
	// Arrange
	svc := newService(t)
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	w := httptest.NewRecorder()

	s, err := svc.GetSession(r)
	require.Nil(t, err)

	// Act
	s.Put("visits", 3)
	s.Put("last_visit", "2024-05-01 09:15:00.000000")
	require.Nil(t, s.Save(w, r))

	// Assert
	s, err = newService(t).GetSession(carry(t, w))
	require.Nil(t, err)
	require.Equal(t, 3, s.Get("visits"))
	require.Equal(t, "2024-05-01 09:15:00.000000", s.Get("last_visit"))
}

func TestSessionUser(t *testing.T) {
	// Arrange
	svc := newService(t)
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	w := httptest.NewRecorder()
	s, err := svc.GetSession(r)
	require.Nil(t, err)

	// Act
	_, err = s.UserID()

	// Assert
	require.ErrorIs(t, err, session.ErrNoUser)

	// Act
	require.Nil(t, s.RegisterUser(w, r, 7))

	// Assert
	s, err = svc.GetSession(carry(t, w))
	require.Nil(t, err)
	id, err := s.UserID()
	require.Nil(t, err)
	require.EqualValues(t, 7, id)

	// Act
	w = httptest.NewRecorder()
	require.Nil(t, s.DeregisterUser(w, r))

	// Assert
	_, err = s.UserID()
	require.ErrorIs(t, err, session.ErrNoUser)

	// Act
	s.Put("rango-session-user", "7")
	_, err = s.UserID()

	// Assert
	require.ErrorIs(t, err, session.ErrNotValid)
	require.ErrorIs(t, err, rango.ErrNotValid)
}

func TestSessionFlashes(t *testing.T) {
	// Arrange
	svc := newService(t)
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	w := httptest.NewRecorder()
	s, err := svc.GetSession(r)
	require.Nil(t, err)
	flash := session.Flash{Class: session.FlashError, Msg: session.BadCredsMsg}

	// Act
	require.Nil(t, s.SetFlash(w, r, flash))

	// Assert
	r = carry(t, w)
	s, err = svc.GetSession(r)
	require.Nil(t, err)
	require.Equal(t, []session.Flash{flash}, s.Flashes(httptest.NewRecorder(), r))
	require.Empty(t, s.Flashes(httptest.NewRecorder(), r))
}

func TestStub(t *testing.T) {
	// Arrange
	stub := session.NewStub(1)
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	s, err := stub.GetSession(r)
	require.Nil(t, err)
	require.Nil(t, s.Set(httptest.NewRecorder(), r, "visits", 2))

	// Assert
	id, err := stub.Session().UserID()
	require.Nil(t, err)
	require.EqualValues(t, 1, id)
	require.Equal(t, 2, stub.Session().Get("visits"))

	// Act
	_, err = session.NewStub(0).Session().UserID()

	// Assert
	require.ErrorIs(t, err, session.ErrNoUser)
}
