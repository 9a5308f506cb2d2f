package queries

import (
	"errors"
	"strings"

	"trippy/internal/pkg/errs"
	"trippy/internal/pkg/guard"
)

var (
	ErrAuthenticateUserQueryIsNotConstructed = errors.New(
		"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
	)
)

// AuthenticateUserQuery checks a username and password pair.
//
// Example:
//
//	query, _ := NewAuthenticateUserQuery("alice", "s3cret")
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrUnauthorized) {
//	    // wrong name or password, indistinguishably
//	}
type AuthenticateUserQuery struct {
	username string
	password string
	guard    guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates the query. Both fields are required.
func NewAuthenticateUserQuery(username, password string) (AuthenticateUserQuery, error) {
	username = strings.TrimSpace(username)
	var err error
	if username == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("username"))
	}
	if password == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("password"))
	}
	if err != nil {
		return AuthenticateUserQuery{}, err
	}
	return AuthenticateUserQuery{username: username, password: password, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Username returns the claimed username.
func (q AuthenticateUserQuery) Username() string {
	return q.username
}

// Password returns the candidate password.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}

// AuthenticateUserQueryResponse carries the bearer token for an authenticated user.
type AuthenticateUserQueryResponse struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}
