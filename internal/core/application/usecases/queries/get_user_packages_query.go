package queries

import (
	"errors"
	"strings"

	"trippy/internal/pkg/errs"
	"trippy/internal/pkg/guard"
)

var (
	ErrGetUserPackagesQueryIsNotConstructed = errors.New(
		"GetUserPackagesQuery must be created via NewGetUserPackagesQuery constructor",
	)
)

// GetUserPackagesQuery lists the packages a user has ordered.
type GetUserPackagesQuery struct {
	username string
	guard    guard.ConstructorGuard
}

// NewGetUserPackagesQuery creates the query.
func NewGetUserPackagesQuery(username string) (GetUserPackagesQuery, error) {
	if strings.TrimSpace(username) == "" {
		return GetUserPackagesQuery{}, errs.NewValueIsRequiredError("username")
	}
	return GetUserPackagesQuery{username: username, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetUserPackagesQueryIsNotConstructed)
}

// Username returns the order owner.
func (q GetUserPackagesQuery) Username() string {
	return q.username
}
