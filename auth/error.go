package auth

import "errors"

var (
	// ErrBadCreds is returned when a username and password do not match a User.
	ErrBadCreds = errors.New("invalid username or password")
)
