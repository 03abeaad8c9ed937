package middleware

import (
	"fmt"
	"net/http"

	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/logger"
)

// A LogRequestRecord describes an HTTP request LogRequest served.
type LogRequestRecord struct {
	BodySize       int    `json:"bodySize"`
	Host           string `json:"host"`
	ID             string `json:"id"`
	IPAddr         string `json:"ipAddr,omitempty"`
	Method         string `json:"method"`
	Path           string `json:"path"`
	Protocol       string `json:"protocol"`
	Referrer       string `json:"referrer,omitempty"`
	ReqContentType string `json:"reqContentType,omitempty"`
	Scheme         string `json:"scheme,omitempty"`
	Status         int    `json:"status"`
	URI            string `json:"uri"`
	UserAgent      string `json:"userAgent,omitempty"`
}

// LogRequest logs a LogRequestRecord for every request once it is served
// using the enclosed implementation of logger.Logger.
//
// LogRequest scrubs the query param values for the following keys:
// - password
//
// If logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			h.ServeHTTP(sw, r)

			uri := r.URL.Path
			q := r.URL.Query()
			rango.Mask(q, "password")
			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			rec := LogRequestRecord{
				BodySize:       sw.size,
				Host:           r.Host,
				Method:         r.Method,
				Path:           r.URL.Path,
				Protocol:       r.Proto,
				Referrer:       r.Referer(),
				ReqContentType: r.Header.Get("Content-Type"),
				Scheme:         r.URL.Scheme,
				Status:         sw.Status(),
				URI:            uri,
				UserAgent:      r.UserAgent(),
			}

			if id, ok := r.Context().Value(rango.RequestIDKey).(string); ok {
				rec.ID = id
			}

			if ip, ok := r.Context().Value(rango.IpAddrKey).(string); ok {
				rec.IPAddr = ip
			}

			ls.Info(
				fmt.Sprintf("%s %s %d", rec.Method, rec.URI, rec.Status),
				&logger.LogContext{Caller: "http/middleware", Data: map[string]any{"request": rec}},
			)
		})
	}
}

// A statusWriter records the status code and body size written through it.
type statusWriter struct {
	http.ResponseWriter
	code int
	size int
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w}
}

// Status returns the status code written, http.StatusOK if none was.
func (sw *statusWriter) Status() int {
	if sw.code == 0 {
		return http.StatusOK
	}

	return sw.code
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if sw.code == 0 {
		sw.code = http.StatusOK
	}

	n, err := sw.ResponseWriter.Write(b)
	sw.size += n
	return n, err
}

func (sw *statusWriter) WriteHeader(code int) {
	if sw.code == 0 {
		sw.code = code
	}

	sw.ResponseWriter.WriteHeader(code)
}

// Unwrap exposes the underlying http.ResponseWriter to an http.ResponseController.
func (sw *statusWriter) Unwrap() http.ResponseWriter { return sw.ResponseWriter }
