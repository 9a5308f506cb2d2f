package commands

import (
	"errors"
	"fmt"
	"strings"

	"trippy/internal/core/domain/model/kernel"
	"trippy/internal/pkg/errs"
	"trippy/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a customer booking a package.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "alice", 7)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, selector)
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // alice already booked package 7
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	username  string
	packageID int64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a booking command.
// Validates the order id, the username and that the package id is positive.
func NewCreateOrderCommand(orderID kernel.UUID, username string, packageID int64) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUsername(username),
		cmd.setPackageID(packageID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Username returns the ordering customer.
func (c CreateOrderCommand) Username() string {
	return c.username
}

// PackageID returns the package being booked.
func (c CreateOrderCommand) PackageID() int64 {
	return c.packageID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *CreateOrderCommand) setPackageID(packageID int64) error {
	if packageID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("package id", fmt.Errorf("%d is not greater than 0", packageID))
	}
	c.packageID = packageID
	return nil
}
