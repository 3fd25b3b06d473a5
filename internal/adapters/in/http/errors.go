package http

import (
	"errors"
	"net/http"

	"shoppingcart/internal/generated/servers"
	"shoppingcart/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps use case errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrGateway):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrPersistence):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a servers.Error. Client errors carry the cause in the
// message; server errors are logged and answered with message alone.
func (s *Server) fail(ctx echo.Context, message string, err error) error {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		s.logger.WithError(err).WithField("path", ctx.Path()).Error(message)
	} else {
		message += ": " + err.Error()
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}
