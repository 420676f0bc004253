package http

import (
	"errors"
	"log/slog"
	"net/http"

	"salesdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Message string `json:"message"`
}

// statusFor maps domain errors onto HTTP status codes. Anything unknown is a
// server error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidAssignment):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorHandler returns the echo error handler that renders every failure as
// {"message": ...}. Internal errors are logged and hidden from the caller.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := describe(err)
		if status == http.StatusInternalServerError {
			logger.Error("request failed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, errorResponse{Message: message})
		}
		if writeErr != nil {
			logger.Warn("failed to write error response", "error", writeErr)
		}
	}
}

func describe(err error) (int, string) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound:
			return http.StatusNotFound, "Route not found"
		case http.StatusInternalServerError:
			return http.StatusInternalServerError, "Server error"
		default:
			if msg, ok := httpErr.Message.(string); ok {
				return httpErr.Code, msg
			}
			return httpErr.Code, http.StatusText(httpErr.Code)
		}
	}

	status := statusFor(err)
	if status == http.StatusInternalServerError {
		return status, "Server error"
	}
	return status, err.Error()
}
