package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"mahalla/config"
	"mahalla/internal/delivery/http/view"
	domainerrors "mahalla/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	renderer, err := view.NewRenderer(&config.Config{Emergency: &config.EmergencyConfig{TimeZone: "UTC"}}, logger)
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "api validation error with details",
			path:       "/api/v1/emergency/broadcasts",
			err:        domainerrors.ErrValidationFailed.WithDetails("title: required"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `"details":"title: required"`,
		},
		{
			name:       "api forbidden hides details",
			path:       "/api/v1/emergency/statistics",
			err:        domainerrors.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantBody:   `"code":"FORBIDDEN"`,
		},
		{
			name:       "api unknown error",
			path:       "/api/v1/emergency/statistics",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"code":"INTERNAL_ERROR"`,
		},
		{
			name:       "page forbidden renders error view",
			path:       "/emergency",
			err:        domainerrors.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantBody:   "нет прав доступа",
		},
		{
			name:       "page not found",
			path:       "/missing",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   domainerrors.ErrNotFound.Message(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(t)
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, tt.path, nil), rec)

			e.HTTPErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := newTestEcho(t)
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/emergency", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	e.HTTPErrorHandler(errors.New("late"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
