package session

import (
	"errors"
	"fmt"

	"github.com/xy-planning-network/rango"
)

var (
	// ErrNoUser means no user is registered in the session.
	ErrNoUser = errors.New("no user registered in session")

	// ErrNotValid means the session holds a value of an unexpected type.
	ErrNotValid = fmt.Errorf("%w: session value", rango.ErrNotValid)
)
