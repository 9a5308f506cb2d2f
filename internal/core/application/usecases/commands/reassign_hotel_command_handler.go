package commands

import (
	"context"

	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/services"
)

// ReassignHotelCommandHandler pins the requested hotel to an order. No draw is made:
// the caller already chose the hotel.
type ReassignHotelCommandHandler struct {
	uowFactory BookingUoWFactory
	locator    services.OrderLocator
}

// NewReassignHotelCommandHandler creates a handler for hotel swaps.
func NewReassignHotelCommandHandler(uowFactory BookingUoWFactory) ReassignHotelCommandHandler {
	return ReassignHotelCommandHandler{
		uowFactory: uowFactory,
		locator:    services.NewOrderLocator(),
	}
}

// Handle resolves the hotel, pins it and returns it.
// Returns errs.ErrObjectNotFound for an unknown order or hotel.
func (h *ReassignHotelCommandHandler) Handle(ctx context.Context, cmd ReassignHotelCommand) (catalog.Hotel, error) {
	if err := cmd.Validate(); err != nil {
		return catalog.Hotel{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return catalog.Hotel{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()
	orderRepo := uow.OrderRepository()

	o, _, err := h.locator.LocateByDestination(ctx, catalogRepo, orderRepo, cmd.Username(), cmd.Destination())
	if err != nil {
		return catalog.Hotel{}, err
	}

	hotel, err := catalogRepo.GetHotel(ctx, cmd.HotelID())
	if err != nil {
		return catalog.Hotel{}, err
	}

	if err = o.ReassignHotel(hotel.ID); err != nil {
		return catalog.Hotel{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return catalog.Hotel{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return catalog.Hotel{}, err
	}

	return hotel, nil
}
