package commands

import (
	"errors"
	"strings"

	"trippy/internal/pkg/errs"
	"trippy/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
)

// RegisterUserCommand represents a sign-up request.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand("alice", "s3cret")
//	if err != nil {
//	    return fmt.Errorf("invalid registration: %w", err)
//	}
//
//	handler := NewRegisterUserCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrConflict) {
//	    // username already taken
//	}
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a registration command.
// Username and password are both required.
func NewRegisterUserCommand(username, password string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Username returns the requested username.
func (c RegisterUserCommand) Username() string {
	return c.username
}

// Password returns the plaintext password. It is only held until derivation.
func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c *RegisterUserCommand) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}
