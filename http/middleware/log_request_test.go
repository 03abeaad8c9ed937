package middleware_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/http/middleware"
	"github.com/xy-planning-network/rango/logger"
)

func TestLogRequest(t *testing.T) {
	// Arrange + Act
	actual := middleware.LogRequest(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	// Arrange
	ip := "192.168.0.0"
	testID := "test-id"
	useragent := "rango/test"
	content := "application/x-www-form-urlencoded"
	referrer := "example.com/referrer"
	respBody := "test"
	newExpected := func(expected middleware.LogRequestRecord) middleware.LogRequestRecord {
		expected.BodySize = len(respBody)
		expected.Host = "example.com"
		expected.ID = testID
		expected.Protocol = "HTTP/1.1"
		expected.Referrer = referrer
		expected.ReqContentType = content
		expected.Status = http.StatusOK
		expected.UserAgent = useragent

		return expected
	}

	tcs := []struct {
		name     string
		method   string
		ip       string
		url      *url.URL
		expected middleware.LogRequestRecord
	}{
		{
			"Zero-Value",
			http.MethodGet,
			"",
			&url.URL{Path: "/"},
			newExpected(middleware.LogRequestRecord{
				Method: http.MethodGet,
				Path:   "/",
				URI:    "/",
			}),
		},
		{
			"With-IP",
			http.MethodPost,
			ip,
			&url.URL{Path: "/add_category/"},
			newExpected(middleware.LogRequestRecord{
				IPAddr: ip,
				Method: http.MethodPost,
				Path:   "/add_category/",
				URI:    "/add_category/",
			}),
		},
		{
			"With-Query-Params",
			http.MethodGet,
			ip,
			&url.URL{Path: "/category/python/", RawQuery: "param=true"},
			newExpected(middleware.LogRequestRecord{
				IPAddr: ip,
				Method: http.MethodGet,
				Path:   "/category/python/",
				URI:    "/category/python/?param=true",
			}),
		},
		{
			"With-Query-Params-Hid",
			http.MethodGet,
			ip,
			&url.URL{Scheme: "http", Host: "example.com", Path: "/", RawQuery: "param=true&password=hunter2"},
			newExpected(middleware.LogRequestRecord{
				IPAddr: ip,
				Method: http.MethodGet,
				Path:   "/",
				URI:    "/?param=true&password=" + rango.LogMaskVal,
				Scheme: "http",
			}),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			l := newLogger()
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, tc.url.String(), new(bytes.Reader))
			r = r.Clone(context.WithValue(r.Context(), rango.RequestIDKey, testID))

			r.Header.Set("User-Agent", useragent)
			r.Header.Set("Content-Type", content)
			r.Header.Set("Referer", referrer)

			if tc.ip != "" {
				r = r.Clone(context.WithValue(r.Context(), rango.IpAddrKey, tc.ip))
			}

			// Act
			middleware.LogRequest(l)(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
				fmt.Fprint(wx, respBody)
			})).ServeHTTP(w, r)

			// Assert
			require.Len(t, l.ctxs, 1)
			require.Equal(t, tc.expected, l.ctxs[0].Data["request"])
			require.Equal(t, fmt.Sprintf("%s %s %d", tc.method, tc.expected.URI, http.StatusOK), l.String())
		})
	}

	t.Run("Status", func(t *testing.T) {
		// Arrange
		l := newLogger()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		// Act
		middleware.LogRequest(l)(teapotHandler()).ServeHTTP(w, r)

		// Assert
		require.Equal(t, http.StatusTeapot, l.ctxs[0].Data["request"].(middleware.LogRequestRecord).Status)
	})
}

type testLogger struct {
	*bytes.Buffer
	ctxs []*logger.LogContext
}

func newLogger() *testLogger { return &testLogger{Buffer: new(bytes.Buffer)} }

func (tl *testLogger) log(msg string, ctx *logger.LogContext) {
	fmt.Fprint(tl, msg)
	tl.ctxs = append(tl.ctxs, ctx)
}

func (tl *testLogger) Debug(msg string, ctx *logger.LogContext) { tl.log(msg, ctx) }
func (tl *testLogger) Error(msg string, ctx *logger.LogContext) { tl.log(msg, ctx) }
func (tl *testLogger) Fatal(msg string, ctx *logger.LogContext) { tl.log(msg, ctx) }
func (tl *testLogger) Info(msg string, ctx *logger.LogContext)  { tl.log(msg, ctx) }
func (tl *testLogger) Warn(msg string, ctx *logger.LogContext)  { tl.log(msg, ctx) }
func (tl *testLogger) LogLevel() logger.LogLevel                { return logger.LogLevelDebug }
