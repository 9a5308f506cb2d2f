package commands

import (
	"context"

	"trippy/internal/core/domain/model/user"
)

// RegisterUserCommandHandler derives a credential and stores the new user.
// A taken username surfaces as errs.ErrConflict from the repository.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for registrations.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the user in one transaction.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	u, err := user.NewUser(cmd.Username(), cmd.Password())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
