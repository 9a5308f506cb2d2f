package commands

import (
	"errors"

	"trippy/internal/core/domain/model/kernel"
	"trippy/internal/pkg/guard"
)

var (
	ErrReassignFlightCommandIsNotConstructed = errors.New(
		"ReassignFlightCommand must be created via NewReassignFlightCommand constructor",
	)
)

// ReassignFlightCommand pins a caller-chosen flight to the user's order for a destination.
type ReassignFlightCommand struct { //nolint:recvcheck //using for validation
	username    string
	destination kernel.Destination
	flightID    int64

	guard guard.ConstructorGuard
}

// NewReassignFlightCommand creates a flight swap command.
func NewReassignFlightCommand(username, destination string, flightID int64) (ReassignFlightCommand, error) {
	cmd := ReassignFlightCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setUsername(&cmd.username, username),
		setDestination(&cmd.destination, destination),
		setResourceID(&cmd.flightID, "flight id", flightID),
	); err != nil {
		return ReassignFlightCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignFlightCommand) Validate() error {
	return c.guard.Validate(ErrReassignFlightCommandIsNotConstructed)
}

// Username returns the order owner.
func (c ReassignFlightCommand) Username() string {
	return c.username
}

// Destination returns the destination that identifies the order.
func (c ReassignFlightCommand) Destination() kernel.Destination {
	return c.destination
}

// FlightID returns the flight to pin.
func (c ReassignFlightCommand) FlightID() int64 {
	return c.flightID
}
