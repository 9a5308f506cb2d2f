package commands

import (
	"errors"
	"fmt"

	"trippy/internal/core/domain/model/kernel"
	"trippy/internal/pkg/errs"
	"trippy/internal/pkg/guard"
)

var (
	ErrReassignHotelCommandIsNotConstructed = errors.New(
		"ReassignHotelCommand must be created via NewReassignHotelCommand constructor",
	)
)

// ReassignHotelCommand pins a caller-chosen hotel to the user's order for a destination.
// The hotel id usually comes from a prior available-hotel lookup.
type ReassignHotelCommand struct { //nolint:recvcheck //using for validation
	username    string
	destination kernel.Destination
	hotelID     int64

	guard guard.ConstructorGuard
}

// NewReassignHotelCommand creates a hotel swap command.
func NewReassignHotelCommand(username, destination string, hotelID int64) (ReassignHotelCommand, error) {
	cmd := ReassignHotelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setUsername(&cmd.username, username),
		setDestination(&cmd.destination, destination),
		setResourceID(&cmd.hotelID, "hotel id", hotelID),
	); err != nil {
		return ReassignHotelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignHotelCommand) Validate() error {
	return c.guard.Validate(ErrReassignHotelCommandIsNotConstructed)
}

// Username returns the order owner.
func (c ReassignHotelCommand) Username() string {
	return c.username
}

// Destination returns the destination that identifies the order.
func (c ReassignHotelCommand) Destination() kernel.Destination {
	return c.destination
}

// HotelID returns the hotel to pin.
func (c ReassignHotelCommand) HotelID() int64 {
	return c.hotelID
}

func setResourceID(dst *int64, name string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is not greater than 0", id))
	}
	*dst = id
	return nil
}
