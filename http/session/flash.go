package session

import (
	"net/http"
)

const (
	// Default Flash Class
	FlashError   = "error"
	FlashInfo    = "info"
	FlashSuccess = "success"
	FlashWarning = "warning"

	// Default Flash Msg
	BadCredsMsg   = "Invalid login details supplied."
	BadInputMsg   = "Hmm... check your form, something isn't correct."
	DefaultErrMsg = "Uh oh! We've run into an issue."
	NoAccessMsg   = "Oops, sending you back somewhere safe."
)

// A FlashSessionable reads and writes one-time messages shown on the next rendered page.
type FlashSessionable interface {
	Flashes(w http.ResponseWriter, r *http.Request) []Flash
	SetFlash(w http.ResponseWriter, r *http.Request, flash Flash) error
}

// A Flash is a one-time message rendered in a page's banner.
type Flash struct {
	Class string `json:"class"`
	Msg   string `json:"msg"`
}
