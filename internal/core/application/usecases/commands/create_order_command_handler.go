package commands

import (
	"context"

	"trippy/internal/core/domain/model/order"
	"trippy/internal/core/domain/services"
)

// CreateOrderCommandHandler books a package for a customer.
//
// The new order pins the package's current hotel and guide and a flight drawn from
// the whole flight pool. Duplicate bookings are rejected by storage as errs.ErrConflict.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewAvailabilitySelector(nil))
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), "alice", 7)
//
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Println(o.FlightID())
type CreateOrderCommandHandler struct {
	uowFactory BookingUoWFactory
	selector   services.AvailabilitySelector
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory BookingUoWFactory,
	selector services.AvailabilitySelector,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		selector:   selector,
	}
}

// Handle creates the order in one transaction.
// Returns errs.ErrObjectNotFound for an unknown package and errs.ErrUnavailable when
// there is no flight to pin.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()
	pkg, err := catalogRepo.GetPackage(ctx, cmd.PackageID())
	if err != nil {
		return nil, err
	}

	flights, err := catalogRepo.ListFlights(ctx)
	if err != nil {
		return nil, err
	}

	flight, err := h.selector.PickFlight(flights, nil)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Username(), pkg, flight.ID)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
