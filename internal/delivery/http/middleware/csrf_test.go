package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"mahalla/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSRFMiddleware(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.CSRF = "test-csrf-secret"

	e := echo.New()
	e.Use(NewCSRFMiddleware(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).Handle())
	e.GET("/form", func(c echo.Context) error {
		return c.String(http.StatusOK, CSRFToken(c))
	})
	e.POST("/form", func(c echo.Context) error {
		return c.String(http.StatusOK, "sent")
	})

	getRec := httptest.NewRecorder()
	e.ServeHTTP(getRec, httptest.NewRequest(http.MethodGet, "/form", nil))
	require.Equal(t, http.StatusOK, getRec.Code)
	token := getRec.Body.String()
	require.NotEmpty(t, token)
	cookies := getRec.Result().Cookies()
	require.NotEmpty(t, cookies)

	t.Run("rejects missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/form", strings.NewReader("title=x"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		for _, cookie := range cookies {
			req.AddCookie(cookie)
		}
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("accepts form token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		form := url.Values{CSRFFieldName: {token}, "title": {"x"}}
		req := httptest.NewRequest(http.MethodPost, "/form", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		for _, cookie := range cookies {
			req.AddCookie(cookie)
		}
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "sent", rec.Body.String())
	})
}
