package http

import (
	"strings"

	"trippy/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const subjectKey = "auth.subject"

// TokenParser validates a bearer token and returns its subject.
type TokenParser interface {
	Parse(raw string) (string, error)
}

// BearerAuth requires a valid "Authorization: Bearer <jwt>" header and stores
// the token subject on the context.
func (s *Server) BearerAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		scheme, raw, ok := strings.Cut(c.Request().Header.Get(echo.HeaderAuthorization), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || raw == "" {
			return s.respondError(c, errs.ErrUnauthorized)
		}

		subject, err := s.tokens.Parse(strings.TrimSpace(raw))
		if err != nil {
			return s.respondError(c, err)
		}

		c.Set(subjectKey, subject)
		return next(c)
	}
}

// authorize checks that the authenticated subject acts on its own account.
func authorize(c echo.Context, username string) error {
	subject, _ := c.Get(subjectKey).(string)
	if subject == "" || subject != strings.TrimSpace(username) {
		return errs.ErrUnauthorized
	}
	return nil
}
