package logger

import (
	"bytes"
	"encoding"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
)

const maskedVal = "xxxxxx"

// sensitiveFormKeys are masked when a request's form is logged.
var sensitiveFormKeys = []string{"password", "confirm_password"}

var _ encoding.TextMarshaler = LogContext{}

// LogUser is the interface exposing attributes of a user to a LogContext.
type LogUser interface {
	GetID() uint
	GetEmail() string
}

// A LogContext provides additional information for a [Logger] method
// that cannot be tersely captured in the message itself.
type LogContext struct {
	// Caller overrides the call site with the provided value.
	// Caller is not logged in the text of a LogContext.
	Caller string

	// Data is any information pertinent at the time of the logging event.
	Data map[string]any

	// Error is the error that may or may not have instigated a logging event.
	Error error

	// Request is the *http.Request open during the logging event, if any.
	Request *http.Request

	// User is the user whose session was active during the logging event.
	User LogUser
}

// MarshalText converts LogContext into a JSON representation,
// eliminating zero-value fields or fields not requiring logging.
//
// MarshalText implements [encoding.TextMarshaler].
func (lc LogContext) MarshalText() ([]byte, error) {
	m := make(map[string]any)
	if lc.Data != nil {
		m["data"] = lc.Data
	}

	if lc.Error != nil {
		m["error"] = lc.Error.Error()
	}

	if lc.Request != nil {
		r := make(map[string]any)
		r["method"] = lc.Request.Method
		r["url"] = lc.Request.URL.String()
		r["header"] = lc.Request.Header
		if ct := lc.Request.Header.Get("Content-Type"); ct == "application/json" && lc.Request.Body != nil {
			j := make(map[string]any)
			b := new(bytes.Buffer)
			tee := io.TeeReader(lc.Request.Body, b)
			if err := json.NewDecoder(tee).Decode(&j); err == nil {
				r["json"] = j
			}
			lc.Request.Body.Close()
			lc.Request.Body = io.NopCloser(b)
		}

		if lc.Request.PostForm != nil {
			r["form"] = maskForm(lc.Request.PostForm)
		}

		m["request"] = r
	}

	if lc.User != nil {
		u := make(map[string]any)
		if id := lc.User.GetID(); id != 0 {
			u["id"] = id
		}
		if email := lc.User.GetEmail(); email != "" {
			u["email"] = email
		}
		if len(u) > 0 {
			m["user"] = u
		}
	}

	return json.Marshal(m)
}

// String stringifies LogContext as a JSON representation of it.
func (lc LogContext) String() string {
	b, err := lc.MarshalText()
	if err != nil {
		return ""
	}
	return string(b)
}

// CurrentCaller retrieves the caller for the caller of CurrentCaller,
// formatted for use as LogContext.Caller.
//
//	spawn() {          <- returns this call site
//		go func() {
//			CurrentCaller()
//		}()
//	}
func CurrentCaller() string {
	return callSite(2)
}

func maskForm(vals url.Values) url.Values {
	masked := make(url.Values, len(vals))
	for k, v := range vals {
		masked[k] = v
	}
	for _, k := range sensitiveFormKeys {
		if _, ok := masked[k]; ok {
			masked[k] = []string{maskedVal}
		}
	}

	return masked
}
