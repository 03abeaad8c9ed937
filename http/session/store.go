package session

import (
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/boj/redistore"
	gorilla "github.com/gorilla/sessions"
	"github.com/xy-planning-network/rango"
)

const defaultMaxAge = 86400 * 14 // 2 weeks

// The SessionStorer defines methods for retrieving the Session for the given *http.Request.
type SessionStorer interface {
	GetSession(r *http.Request) (Session, error)
}

// A Service wraps a gorilla.Store to manage constructing a new one
// and accessing the sessions contained in it.
//
// Service implements SessionStorer.
type Service struct {
	// The authentication key.
	ak []byte

	// The encryption key.
	ek []byte

	// The name this Service's sessions are stored under.
	// Also used as the name of the cookie.
	sn string

	// The environment the Service is operating within.
	env rango.Environment

	// The number of seconds a session is valid.
	maxAge int

	// how the Service actually implements storing sessions.
	store gorilla.Store
}

// A Config provides the values required to construct a Service.
type Config struct {
	Env rango.Environment

	// The name sessions are stored under.
	SessionName string

	// Hex-encoded key
	AuthKey string

	// Hex-encoded key
	EncryptKey string
}

func (c Config) valid() error {
	if err := c.Env.Valid(); err != nil {
		return err
	}

	if c.SessionName == "" {
		return fmt.Errorf("%w: SessionName cannot be %q", rango.ErrBadConfig, c.SessionName)
	}

	return nil
}

// NewStoreService initiates a data store for user web sessions
// with the provided config.
// If no backing storage is provided through a functional option,
// like WithRedis, NewStoreService stores sessions in cookies.
func NewStoreService(cfg Config, opts ...ServiceOpt) (Service, error) {
	if err := cfg.valid(); err != nil {
		return Service{}, err
	}

	var err error
	gob.Register(Flash{})

	s := Service{
		env:    cfg.Env,
		maxAge: defaultMaxAge,
		sn:     cfg.SessionName,
	}

	s.ak, err = hex.DecodeString(cfg.AuthKey)
	if err != nil {
		return Service{}, fmt.Errorf("%w: authentication key is not valid: %s", rango.ErrBadConfig, err)
	}

	s.ek, err = hex.DecodeString(cfg.EncryptKey)
	if err != nil {
		return Service{}, fmt.Errorf("%w: encryption key is not valid: %s", rango.ErrBadConfig, err)
	}

	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return Service{}, fmt.Errorf("%w: %s", rango.ErrBadConfig, err)
		}
	}

	if s.store == nil {
		if err := WithCookie()(&s); err != nil {
			return Service{}, fmt.Errorf("%w: %s", rango.ErrBadConfig, err)
		}
	}

	return s, nil
}

// GetSession retrieves the Session for the *http.Request,
// or creates a brand new one.
func (s Service) GetSession(r *http.Request) (Session, error) {
	session, err := s.store.Get(r, s.sn)
	return Session{s: session}, err
}

// A ServiceOpt configures the provided *Service,
// returning an error if unable to.
type ServiceOpt func(*Service) error

// WithCookie configures the Service to back session storage with cookies.
func WithCookie() ServiceOpt {
	return func(s *Service) error {
		var c *gorilla.CookieStore
		if len(s.ek) > 0 {
			c = gorilla.NewCookieStore(s.ak, s.ek)
		} else {
			c = gorilla.NewCookieStore(s.ak)
		}

		c.Options.Secure = !(s.env.IsDevelopment() || s.env.IsTesting())
		c.Options.HttpOnly = true
		c.MaxAge(s.maxAge)
		s.store = c
		return nil
	}
}

// WithMaxAge sets the time-to-live of a session.
//
// Call before other options so this value is available.
// Otherwise, the Service uses defaultMaxAge.
func WithMaxAge(secs int) ServiceOpt {
	return func(s *Service) error {
		if secs <= 0 {
			return fmt.Errorf("max age must be positive, got %d", secs)
		}
		s.maxAge = secs
		return nil
	}
}

// WithRedis configures the Service to back session storage with Redis.
//
// To authenticate to the Redis server, provide pass, otherwise its zero-value is acceptable.
func WithRedis(uri, pass string) ServiceOpt {
	return func(s *Service) error {
		r, err := redistore.NewRediStore(10, "tcp", uri, pass, s.ak, s.ek)
		if err != nil {
			return fmt.Errorf("failed initializing Redis: %s", err)
		}

		r.Options.Secure = !(s.env.IsDevelopment() || s.env.IsTesting())
		r.Options.HttpOnly = true
		r.SetMaxAge(s.maxAge)
		s.store = r
		return nil
	}
}

// A Stub is an in-memory gorilla.Store holding a single session.
// It is shared by every request it serves, so values persist across requests.
type Stub struct {
	s *gorilla.Session
}

// NewStub constructs a *Stub.
// If userID is not zero, the session is logged in as that user.
func NewStub(userID uint) *Stub {
	gob.Register(Flash{})
	s := new(Stub)
	s.s = gorilla.NewSession(s, "stub")
	s.s.Options = &gorilla.Options{Path: "/", MaxAge: defaultMaxAge}
	if userID != 0 {
		s.s.Values[userSessionKey] = userID
	}

	return s
}

// GetSession implements SessionStorer.
func (s *Stub) GetSession(r *http.Request) (Session, error) { return Session{s.s}, nil }

// Session exposes the Session s stores.
func (s *Stub) Session() Session { return Session{s.s} }

func (s *Stub) Get(r *http.Request, name string) (*gorilla.Session, error)               { return s.s, nil }
func (s *Stub) New(r *http.Request, name string) (*gorilla.Session, error)               { return s.s, nil }
func (s *Stub) Save(r *http.Request, w http.ResponseWriter, sess *gorilla.Session) error { return nil }
