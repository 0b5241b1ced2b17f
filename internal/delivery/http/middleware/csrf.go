package middleware

import (
	"crypto/sha256"
	"log/slog"
	"net/http"

	"mahalla/config"

	"github.com/gorilla/csrf"
	"github.com/labstack/echo/v4"
)

// CSRFFieldName is the hidden form field carrying the token.
const CSRFFieldName = "csrf_token"

// CSRFMiddleware protects the page forms against cross-site request forgery.
type CSRFMiddleware struct {
	protect func(http.Handler) http.Handler
	secure  bool
}

// NewCSRFMiddleware derives the 32-byte key from the configured CSRF secret.
func NewCSRFMiddleware(cfg *config.Config, logger *slog.Logger) *CSRFMiddleware {
	key := sha256.Sum256([]byte(cfg.SecretKey.CSRF))

	return &CSRFMiddleware{
		protect: csrf.Protect(key[:],
			csrf.Secure(cfg.HTTP.Secure),
			csrf.Path("/"),
			csrf.FieldName(CSRFFieldName),
			csrf.SameSite(csrf.SameSiteLaxMode),
			csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.Warn("CSRF validation failed",
					slog.String("path", r.URL.Path),
					slog.Any("reason", csrf.FailureReason(r)),
				)
				http.Error(w, "❌ Форма устарела, обновите страницу и попробуйте снова", http.StatusForbidden)
			})),
		),
		secure: cfg.HTTP.Secure,
	}
}

// Handle returns the echo middleware. Plain HTTP deployments skip the TLS-only referer check.
func (m *CSRFMiddleware) Handle() echo.MiddlewareFunc {
	protect := echo.WrapMiddleware(m.protect)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		protected := protect(next)

		return func(c echo.Context) error {
			if !m.secure {
				c.SetRequest(csrf.PlaintextHTTPRequest(c.Request()))
			}

			return protected(c)
		}
	}
}

// CSRFToken returns the masked token for the current request.
func CSRFToken(c echo.Context) string {
	return csrf.Token(c.Request())
}
