package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "mahalla/internal/delivery/context"
	"mahalla/internal/delivery/http/response"
	"mahalla/internal/delivery/http/view"
	domainerrors "mahalla/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const apiPathPrefix = "/api/"

// ErrorMiddleware handles errors in the HTTP pipeline. API routes get the JSON envelope,
// pages get the error view.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

type httpFailure struct {
	status  int
	code    string
	message string
	details any
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	failure := m.classify(err, c)

	if strings.HasPrefix(c.Request().URL.Path, apiPathPrefix) {
		_ = response.Error(c, failure.status, failure.code, failure.message, failure.details)

		return
	}

	page := &view.Page{
		View:     view.ViewError,
		Title:    "Ошибка",
		Operator: deliverycontext.GetOperator(c),
		Content:  view.ErrorContent{Status: failure.status, Message: failure.message},
	}
	if renderErr := c.Render(failure.status, string(view.ViewError), page); renderErr != nil {
		m.logger.Error("Failed to render error page", slog.Any("error", renderErr))
		_ = c.String(failure.status, failure.message)
	}
}

func (m *ErrorMiddleware) classify(err error, c echo.Context) httpFailure {
	// Attempt to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}

		var details any
		if d := appErr.Details(); d != "" {
			details = d
		}

		return httpFailure{status: appErr.HTTPCode(), code: appErr.ErrorCode(), message: appErr.Message(), details: details}
	}

	// Check if it is an Echo HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		if httpErr.Code == http.StatusNotFound {
			message = domainerrors.ErrNotFound.Message()
		}

		return httpFailure{status: httpErr.Code, code: "HTTP_ERROR", message: message}
	}

	// Default to internal error, do not expose internal details
	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	return httpFailure{
		status:  http.StatusInternalServerError,
		code:    domainerrors.ErrInternalError.ErrorCode(),
		message: domainerrors.ErrInternalError.Message(),
	}
}
