package queries

import (
	"context"
	"errors"

	"trippy/internal/core/domain/model/user"
	"trippy/internal/pkg/errs"
)

// AuthenticateUserQueryHandler verifies credentials and issues a token.
//
// An unknown username and a wrong password both return errs.ErrUnauthorized. For an
// unknown username the handler still runs one derivation against a throwaway
// credential so both paths cost the same.
type AuthenticateUserQueryHandler struct {
	users  UserReader
	tokens TokenIssuer
	decoy  user.Credential
}

// NewAuthenticateUserQueryHandler creates the handler.
func NewAuthenticateUserQueryHandler(users UserReader, tokens TokenIssuer) (AuthenticateUserQueryHandler, error) {
	decoy, err := user.DeriveCredential("decoy")
	if err != nil {
		return AuthenticateUserQueryHandler{}, err
	}
	return AuthenticateUserQueryHandler{users: users, tokens: tokens, decoy: decoy}, nil
}

// Handle returns a token for a matching username and password.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticateUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	u, err := h.users.Get(ctx, query.Username())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		_ = h.decoy.Verify(query.Password())
		return AuthenticateUserQueryResponse{}, errs.ErrUnauthorized
	case err != nil:
		return AuthenticateUserQueryResponse{}, err
	}

	if !u.Authenticate(query.Password()) {
		return AuthenticateUserQueryResponse{}, errs.ErrUnauthorized
	}

	token, err := h.tokens.Issue(u.Name())
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	return AuthenticateUserQueryResponse{Username: u.Name(), Token: token}, nil
}
