package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/http/middleware"
)

func TestGetIPAddress(t *testing.T) {
	tcs := []struct {
		name     string
		hm       http.Header
		expected string
	}{
		{"No-Match", make(http.Header), "0.0.0.0"},
		{
			"Only-Private-IP",
			func() http.Header {
				h := make(http.Header)
				h.Set("X-Forwarded-For", "192.168.0.0")
				return h
			}(),
			"0.0.0.0",
		},
		{
			"Only-Public-IP",
			func() http.Header {
				h := make(http.Header)
				h.Set("X-Forwarded-For", "1.1.1.1")
				return h
			}(),
			"1.1.1.1",
		},
		{
			"Get-Before-Proxy",
			func() http.Header {
				h := make(http.Header)
				h.Set("X-Real-Ip", "10.0.0.1,1.1.1.1")
				return h
			}(),
			"1.1.1.1",
		},
		{
			"Get-First-Public",
			func() http.Header {
				h := make(http.Header)
				h.Set("X-Real-Ip", "10.255.255.255,8.8.8.8,1.1.1.1,172.16.0.0")
				return h
			}(),
			"1.1.1.1",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, middleware.GetIPAddress(tc.hm))
		})
	}
}

func TestInjectIPAddress(t *testing.T) {
	tcs := []struct {
		name     string
		header   string
		remote   string
		expected string
	}{
		{"Forwarded", "1.1.1.1", "10.0.0.1:4242", "1.1.1.1"},
		{"Remote-Addr", "", "8.8.8.8:4242", "8.8.8.8"},
		{"Unknown", "", "not-an-addr", "0.0.0.0"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
			r.RemoteAddr = tc.remote
			if tc.header != "" {
				r.Header.Set("X-Forwarded-For", tc.header)
			}

			var actual string

			// Act
			middleware.InjectIPAddress()(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
				actual, _ = rx.Context().Value(rango.IpAddrKey).(string)
			})).ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.expected, actual)
		})
	}
}
