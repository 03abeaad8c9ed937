package ranger

import "github.com/xy-planning-network/rango"

var (
	ErrBadConfig = rango.ErrBadConfig
	ErrNotValid  = rango.ErrNotValid
)
