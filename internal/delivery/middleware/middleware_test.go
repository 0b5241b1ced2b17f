package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mahalla/config"
	deliverycontext "mahalla/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "propagates client id", header: "req-123", wantSame: true},
		{name: "generates when missing", header: ""},
		{name: "replaces oversized id", header: strings.Repeat("x", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})
			require.NoError(t, handler(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, ctxID)
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
				assert.NotEmpty(t, got)
			}
		})
	}
}

func TestLoggerMiddleware_LogsServerErrorsOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	mw := NewLoggerMiddleware(logger, &config.Config{}, "/health")

	e := echo.New()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/emergency", nil), httptest.NewRecorder())
	_ = mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
	assert.Empty(t, buf.String())

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/emergency", nil), httptest.NewRecorder())
	_ = mw.Handle(func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway) })(c)
	assert.Contains(t, buf.String(), "status=502")
}

func TestLoggerMiddleware_SkipsPaths(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true
	mw := NewLoggerMiddleware(logger, cfg, "/health")

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())
	c.SetPath("/health")

	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Empty(t, buf.String())
}
