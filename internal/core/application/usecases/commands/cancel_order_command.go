package commands

import (
	"errors"

	"trippy/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand removes the order identified by (username, package).
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	username  string
	packageID int64

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a cancellation command.
func NewCancelOrderCommand(username string, packageID int64) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setUsername(&cmd.username, username),
		setResourceID(&cmd.packageID, "package id", packageID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// Username returns the order owner.
func (c CancelOrderCommand) Username() string {
	return c.username
}

// PackageID returns the booked package.
func (c CancelOrderCommand) PackageID() int64 {
	return c.packageID
}
