package commands

import (
	"errors"
	"strings"

	"trippy/internal/core/domain/model/kernel"
	"trippy/internal/pkg/errs"
	"trippy/internal/pkg/guard"
)

var (
	ErrReassignGuideCommandIsNotConstructed = errors.New(
		"ReassignGuideCommand must be created via NewReassignGuideCommand constructor",
	)
)

// ReassignGuideCommand asks for a different guide on the user's order for a destination.
//
// Example:
//
//	cmd, err := NewReassignGuideCommand("alice", "Paris")
//	if err != nil {
//	    return err
//	}
//	guide, err := handler.Handle(ctx, cmd)
type ReassignGuideCommand struct { //nolint:recvcheck //using for validation
	username    string
	destination kernel.Destination

	guard guard.ConstructorGuard
}

// NewReassignGuideCommand creates a guide swap command.
func NewReassignGuideCommand(username, destination string) (ReassignGuideCommand, error) {
	cmd := ReassignGuideCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setUsername(&cmd.username, username),
		setDestination(&cmd.destination, destination),
	); err != nil {
		return ReassignGuideCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignGuideCommand) Validate() error {
	return c.guard.Validate(ErrReassignGuideCommandIsNotConstructed)
}

// Username returns the order owner.
func (c ReassignGuideCommand) Username() string {
	return c.username
}

// Destination returns the destination that identifies the order.
func (c ReassignGuideCommand) Destination() kernel.Destination {
	return c.destination
}

func setUsername(dst *string, username string) error {
	if strings.TrimSpace(username) == "" {
		return errs.NewValueIsRequiredError("username")
	}
	*dst = username
	return nil
}

func setDestination(dst *kernel.Destination, destination string) error {
	d, err := kernel.NewDestination(destination)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}
