package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "nexprev/internal/delivery/context"
	"nexprev/internal/delivery/http/response"
	domainerrors "nexprev/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPCode(), response.Response{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &response.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
		})

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		// Unknown routes surface through Echo as bare 404s; translate them
		// into the domain taxonomy instead of the generic HTTP_ERROR shape.
		if httpErr.Code == http.StatusNotFound {
			c.JSON(http.StatusNotFound, response.Response{
				Success: false,
				Code:    http.StatusNotFound,
				Message: domainerrors.ErrNotFound.Message(),
				Error: &response.ErrorInfo{
					Code:    domainerrors.ErrNotFound.ErrorCode(),
					Details: c.Request().Method + " " + c.Request().URL.Path,
				},
			})

			return
		}

		message, _ := httpErr.Message.(string)
		if message == "" {
			message = http.StatusText(httpErr.Code)
		}
		c.JSON(httpErr.Code, response.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error: &response.ErrorInfo{
				Code:    "HTTP_ERROR",
				Details: message,
			},
		})

		return
	}

	// Default to internal error, log and return a generic message
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"request_id", deliverycontext.RequestID(c),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	c.JSON(http.StatusInternalServerError, response.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: domainerrors.ErrInternalError.Message(),
		Error: &response.ErrorInfo{
			Code:    domainerrors.ErrInternalError.ErrorCode(),
			Details: err.Error(),
		},
	})
}
