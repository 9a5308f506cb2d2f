package order

import (
	"errors"
	"fmt"
	"strings"

	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/model/kernel"
	"trippy/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a customer's booking of one package. It is the aggregate root for the
// resources pinned to that booking.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Username and package id are set and never change
//   - Hotel and guide start as a copy of the package's references and may be nil
//   - Flight id is always positive
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// username owns the order; (username, packageID) is unique
	username string

	// packageID is the booked package
	packageID int64

	// hotelID is the pinned hotel (nil if the package had none)
	hotelID *int64

	// guideID is the pinned guide (nil if the package had none)
	guideID *int64

	// flightID is the pinned flight
	flightID int64

	isConstructed bool
}

// NewOrder books pkg for username, pinning the package's current hotel and guide
// and the chosen flight.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - username: The ordering customer (required)
//   - pkg: The package being booked; its hotel and guide references are copied
//   - flightID: The flight drawn for this order (must be positive)
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), "alice", pkg, flight.ID)
//	if err != nil {
//	    // Handle validation error
//	}
//
// The copied references are independent of pkg: editing the package afterwards does
// not change o.
func NewOrder(id kernel.UUID, username string, pkg *catalog.Package, flightID int64) (*Order, error) {
	if pkg == nil {
		return nil, errs.NewValueIsRequiredError("package")
	}

	o := &Order{isConstructed: true}
	if err := errors.Join(
		o.setID(id),
		o.setUsername(username),
		o.setPackageID(pkg.ID),
		o.setFlightID(flightID),
	); err != nil {
		return nil, err
	}

	o.hotelID = copyID(pkg.HotelID)
	o.guideID = copyID(pkg.GuideID)
	return o, nil
}

// RestoreOrder rebuilds an Order from persisted state.
func RestoreOrder(
	id kernel.UUID,
	username string,
	packageID int64,
	hotelID, guideID *int64,
	flightID int64,
) (*Order, error) {
	o := &Order{isConstructed: true}
	if err := errors.Join(
		o.setID(id),
		o.setUsername(username),
		o.setPackageID(packageID),
		o.setFlightID(flightID),
	); err != nil {
		return nil, err
	}

	o.hotelID = copyID(hotelID)
	o.guideID = copyID(guideID)
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Username returns the owning customer.
func (o *Order) Username() string {
	return o.username
}

// PackageID returns the booked package.
func (o *Order) PackageID() int64 {
	return o.packageID
}

// HotelID returns the pinned hotel, or nil.
func (o *Order) HotelID() *int64 {
	return copyID(o.hotelID)
}

// GuideID returns the pinned guide, or nil.
func (o *Order) GuideID() *int64 {
	return copyID(o.guideID)
}

// FlightID returns the pinned flight.
func (o *Order) FlightID() int64 {
	return o.flightID
}

// ReassignGuide pins a different guide.
func (o *Order) ReassignGuide(guideID int64) error {
	if err := positive("guide id", guideID); err != nil {
		return err
	}
	o.guideID = &guideID
	return nil
}

// ReassignHotel pins a different hotel.
func (o *Order) ReassignHotel(hotelID int64) error {
	if err := positive("hotel id", hotelID); err != nil {
		return err
	}
	o.hotelID = &hotelID
	return nil
}

// ReassignFlight pins a different flight.
func (o *Order) ReassignFlight(flightID int64) error {
	return o.setFlightID(flightID)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return errs.NewValueIsRequiredError("username")
	}
	o.username = username
	return nil
}

func (o *Order) setPackageID(packageID int64) error {
	if err := positive("package id", packageID); err != nil {
		return err
	}
	o.packageID = packageID
	return nil
}

func (o *Order) setFlightID(flightID int64) error {
	if err := positive("flight id", flightID); err != nil {
		return err
	}
	o.flightID = flightID
	return nil
}

func positive(name string, v int64) error {
	if v <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is not greater than 0", v))
	}
	return nil
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
