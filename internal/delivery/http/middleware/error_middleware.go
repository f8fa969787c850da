package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"catalog/internal/delivery/http/response"
	domainerrors "catalog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every error that escapes a handler as the shared
// response envelope. Domain errors carry their own HTTP status and business
// code; anything unclassified becomes a logged 500 with no error text in
// the body.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.render(c, appErr.HTTPCode(), appErr.Message(), appErr.ErrorCode(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		m.render(c, httpErr.Code, message, "HTTP_ERROR", message)

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
	m.render(c, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR", "")
}

func (m *ErrorMiddleware) render(c echo.Context, httpCode int, message string, errorCode string, details string) {
	c.JSON(httpCode, response.Response{
		Success: false,
		Code:    httpCode,
		Message: message,
		Error: &response.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}
