package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/store"
	"golang.org/x/crypto/bcrypt"
)

var _ AuthService = new(Service)

// Service is an implementation of the AuthService interface defined in this package.
type Service struct {
	cost  int
	store store.Store
}

// A ServiceOpt configures a Service.
type ServiceOpt func(*Service)

// WithCost sets the bcrypt cost used to hash passwords.
// Costs outside bcrypt's bounds are ignored.
func WithCost(cost int) ServiceOpt {
	return func(s *Service) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.cost = cost
		}
	}
}

// NewService constructs a *Service backed by s.
func NewService(s store.Store, opts ...ServiceOpt) (*Service, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: store cannot be nil", rango.ErrBadConfig)
	}

	svc := &Service{cost: bcrypt.DefaultCost, store: s}
	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// Authenticate returns the User whose username and password match.
// Otherwise, ErrBadCreds returns.
func (s *Service) Authenticate(ctx context.Context, username, password string) (rango.User, error) {
	user, err := s.store.UserByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, rango.ErrNotFound) {
		return rango.User{}, ErrBadCreds
	}

	if err != nil {
		return rango.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		return rango.User{}, ErrBadCreds
	}

	return user, nil
}

// Register creates a User and their UserProfile from form.
// If the username is taken, an error wrapping rango.ErrExists returns.
func (s *Service) Register(ctx context.Context, form RegisterForm) (rango.User, error) {
	username := strings.TrimSpace(form.Username)
	if username == "" || form.Password == "" {
		return rango.User{}, fmt.Errorf("%w: username and password are required", rango.ErrMissingData)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), s.cost)
	if err != nil {
		return rango.User{}, fmt.Errorf("%w: %s", rango.ErrNotValid, err)
	}

	user := rango.User{
		Username: username,
		Email:    strings.TrimSpace(form.Email),
		Password: hash,
		Profile: &rango.UserProfile{
			Website: form.Website,
			Picture: form.Picture,
		},
	}
	if err := s.store.CreateUser(ctx, &user); err != nil {
		return rango.User{}, err
	}

	return user, nil
}
