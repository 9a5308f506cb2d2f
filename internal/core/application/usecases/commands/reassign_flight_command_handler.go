package commands

import (
	"context"

	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/services"
)

// ReassignFlightCommandHandler pins the requested flight to an order.
type ReassignFlightCommandHandler struct {
	uowFactory BookingUoWFactory
	locator    services.OrderLocator
}

// NewReassignFlightCommandHandler creates a handler for flight swaps.
func NewReassignFlightCommandHandler(uowFactory BookingUoWFactory) ReassignFlightCommandHandler {
	return ReassignFlightCommandHandler{
		uowFactory: uowFactory,
		locator:    services.NewOrderLocator(),
	}
}

// Handle resolves the flight, pins it and returns it.
// Returns errs.ErrObjectNotFound for an unknown order or flight.
func (h *ReassignFlightCommandHandler) Handle(ctx context.Context, cmd ReassignFlightCommand) (catalog.Flight, error) {
	if err := cmd.Validate(); err != nil {
		return catalog.Flight{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return catalog.Flight{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()
	orderRepo := uow.OrderRepository()

	o, _, err := h.locator.LocateByDestination(ctx, catalogRepo, orderRepo, cmd.Username(), cmd.Destination())
	if err != nil {
		return catalog.Flight{}, err
	}

	flight, err := catalogRepo.GetFlight(ctx, cmd.FlightID())
	if err != nil {
		return catalog.Flight{}, err
	}

	if err = o.ReassignFlight(flight.ID); err != nil {
		return catalog.Flight{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return catalog.Flight{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return catalog.Flight{}, err
	}

	return flight, nil
}
