package resp

import (
	"errors"

	"github.com/xy-planning-network/rango"
)

var (
	ErrBadConfig   = rango.ErrBadConfig
	ErrDone        = errors.New("request ctx done")
	ErrInvalid     = rango.ErrNotValid
	ErrMissingData = rango.ErrMissingData
	ErrNotFound    = rango.ErrNotFound
	ErrNoUser      = errors.New("no user")
)
