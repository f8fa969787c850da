// Package context carries request-scoped values between the delivery layer
// and the services below it.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey keys request-scoped values so they cannot collide with keys
// set by other packages.
type ContextKey string

const (
	// KeyRequestID stores the request correlation id.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger stores the logger carrying the request id attribute.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is the correlation header honored on requests and
	// echoed on responses.
	HeaderXRequestID = "X-Request-Id"
)

// SetRequestID records the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// WithRequestID attaches the request id to a context.Context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestID reads the request id back from a context.Context, or returns
// the empty string when the request never went through the middleware.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithLogger attaches the request-scoped logger to a context.Context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to the
// given logger for code paths that run outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
