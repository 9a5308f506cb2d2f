package http

import (
	"errors"
	"net/http"

	"trippy/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrUnavailable), errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"error": ...}. Internal errors are logged and
// replaced by a generic message.
func (s *Server) respondError(c echo.Context, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		return c.JSON(status, errorResponse{Error: "internal server error"})
	}

	var exhausted *errs.NoEligibleResourceError
	if errors.As(err, &exhausted) {
		s.metrics.SelectorExhausted.WithLabelValues(exhausted.Resource).Inc()
	}

	if status == http.StatusUnauthorized {
		return c.JSON(status, errorResponse{Error: "unauthorized"})
	}
	return c.JSON(status, errorResponse{Error: err.Error()})
}
