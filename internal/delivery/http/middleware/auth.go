package middleware

import (
	"strings"

	"mahalla/config"
	deliverycontext "mahalla/internal/delivery/context"
	"mahalla/internal/domain/entity"
	domainerrors "mahalla/internal/domain/errors"
	"mahalla/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for operator authentication and feature permissions.
type AuthMiddleware struct {
	tokens      service.TokenValidator
	permissions service.PermissionChecker
	cookieName  string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokens service.TokenValidator, permissions service.PermissionChecker, cfg *config.Config) *AuthMiddleware {
	m := &AuthMiddleware{tokens: tokens, permissions: permissions}
	if cfg.Auth != nil {
		m.cookieName = cfg.Auth.CookieName
	}

	return m
}

// Authenticate validates the access token from the Authorization header or, for browsers,
// the session cookie.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c)
		if err != nil {
			return err
		}
		if token == "" && m.cookieName != "" {
			if cookie, cookieErr := c.Cookie(m.cookieName); cookieErr == nil {
				token = cookie.Value
			}
		}

		return m.authenticate(c, token, next)
	}
}

// AuthenticateBearer validates the access token from the Authorization header only.
func (m *AuthMiddleware) AuthenticateBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c)
		if err != nil {
			return err
		}

		return m.authenticate(c, token, next)
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context, token string, next echo.HandlerFunc) error {
	if token == "" {
		return domainerrors.ErrUnauthorized.WithDetails("access token is missing")
	}

	claims, err := m.tokens.ValidateToken(token)
	if err != nil {
		return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
	}

	operator := &entity.Operator{ID: claims.OperatorID, Role: entity.Role(claims.Role)}
	deliverycontext.SetOperator(c, operator)

	logger := deliverycontext.GetLogger(c.Request().Context())
	if logger != nil {
		ctx := deliverycontext.WithLogger(c.Request().Context(), logger.With("operator_id", operator.ID))
		c.SetRequest(c.Request().WithContext(ctx))
	}

	return next(c)
}

// RequirePermission is a middleware factory that checks the operator's role grants the feature.
// It must be used AFTER one of the Authenticate middlewares.
func (m *AuthMiddleware) RequirePermission(feature entity.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			operator := deliverycontext.GetOperator(c)
			if operator == nil {
				return domainerrors.ErrUnauthorized
			}

			if !m.permissions.HasPermission(operator.Role.String(), string(feature)) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// bearerToken returns the token of a Bearer Authorization header, or "" when the header is absent.
func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", nil
	}

	token := strings.TrimPrefix(authHeader, bearerPrefix)
	if token == authHeader {
		return "", domainerrors.ErrUnauthorized.WithDetails("invalid token format, must be Bearer token")
	}

	return token, nil
}
