package http

import (
	"errors"
	"log/slog"
	"net/http"

	"lockerbooking/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// statusFor maps the application error taxonomy onto HTTP status codes. A
// failed precondition wins over whatever caused it, so one caused by a
// missing record is still a 400.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrConcurrentExecution):
		return http.StatusConflict
	case errors.Is(err, errs.ErrPreconditionFailed):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errs.IsValidation(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrTransport), errors.Is(err, errs.ErrCacheFetch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorHandler renders every error returned by a handler as an Error body.
// Internal failures are logged and hidden from the client.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		body := Error{Message: err.Error()}

		var he *echo.HTTPError
		var ve validator.ValidationErrors
		switch {
		case errors.As(err, &ve):
			body.Code = http.StatusBadRequest
			body.Message = "invalid request"
			body.Fields = fieldErrors(ve)
		case errors.As(err, &he):
			body.Code = he.Code
			if msg, ok := he.Message.(string); ok {
				body.Message = msg
			} else {
				body.Message = http.StatusText(he.Code)
			}
		default:
			body.Code = statusFor(err)
		}

		if body.Code >= http.StatusInternalServerError && body.Code != http.StatusBadGateway {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method, "path", c.Path(), "error", err)
			body.Message = http.StatusText(body.Code)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(body.Code)
		} else {
			writeErr = c.JSON(body.Code, body)
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}

func badRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, message)
}
