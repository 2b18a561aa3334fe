package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "verdeluxe/internal/delivery/context"
	"verdeluxe/internal/delivery/http/response"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
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

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		details := appErr.Details()
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			// Internal details stay in the log.
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
			details = ""
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		// Request loggers wrap plain handler errors into a 500 HTTPError.
		if httpErr.Internal != nil && httpErr.Code >= http.StatusInternalServerError {
			m.unhandled(c, logger, httpErr.Internal)

			return
		}

		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	m.unhandled(c, logger, err)
}

func (m *ErrorMiddleware) unhandled(c echo.Context, logger *slog.Logger, err error) {
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
