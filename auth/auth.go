package auth

import (
	"context"

	"github.com/xy-planning-network/rango"
)

// An AuthService registers and authenticates Users.
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (rango.User, error)
	Register(ctx context.Context, form RegisterForm) (rango.User, error)
}

// A RegisterForm is the data a visitor submits to create an account.
type RegisterForm struct {
	Username string `schema:"username" validate:"required,max=150"`
	Email    string `schema:"email" validate:"omitempty,email"`
	Password string `schema:"password" validate:"required,min=8"`
	Website  string `schema:"website" validate:"omitempty,url"`
	Picture  string `schema:"picture" validate:"omitempty,url"`
}

// A LoginForm is the data a visitor submits to log in.
type LoginForm struct {
	Username string `schema:"username" validate:"required"`
	Password string `schema:"password" validate:"required"`
}
