// Package context carries request-scoped values between the delivery layer
// and the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header the request id is read from and
// echoed back on.
const HeaderXRequestID = "X-Request-Id"

const keyRequestID = "request_id"

type contextKey string

const keyLogger contextKey = "logger"

// BindRequestID stores the request id on the echo context so handlers and
// the error handler can report it.
func BindRequestID(c echo.Context, requestID string) {
	c.Set(keyRequestID, requestID)
}

// RequestID returns the id bound to this request, or "" when the request
// never went through the request-id middleware.
func RequestID(c echo.Context) string {
	id, _ := c.Get(keyRequestID).(string)

	return id
}

// WithLogger returns a context carrying the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// LoggerOrDefault returns the request-scoped logger, falling back to the
// provided logger for calls that did not originate from an HTTP request.
func LoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok {
		return logger
	}

	return fallback
}
