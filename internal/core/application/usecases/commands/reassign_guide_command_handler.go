package commands

import (
	"context"

	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/services"
)

// ReassignGuideCommandHandler swaps the guide on an order for one the order does not
// already hold.
//
// Returns errs.ErrObjectNotFound when the destination or the order is unknown and
// errs.ErrUnavailable when no other guide exists.
type ReassignGuideCommandHandler struct {
	uowFactory BookingUoWFactory
	selector   services.AvailabilitySelector
	locator    services.OrderLocator
}

// NewReassignGuideCommandHandler creates a handler for guide swaps.
func NewReassignGuideCommandHandler(
	uowFactory BookingUoWFactory,
	selector services.AvailabilitySelector,
) ReassignGuideCommandHandler {
	return ReassignGuideCommandHandler{
		uowFactory: uowFactory,
		selector:   selector,
		locator:    services.NewOrderLocator(),
	}
}

// Handle draws a new guide, pins it to the order and returns it.
func (h *ReassignGuideCommandHandler) Handle(ctx context.Context, cmd ReassignGuideCommand) (catalog.Guide, error) {
	if err := cmd.Validate(); err != nil {
		return catalog.Guide{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return catalog.Guide{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()
	orderRepo := uow.OrderRepository()

	o, _, err := h.locator.LocateByDestination(ctx, catalogRepo, orderRepo, cmd.Username(), cmd.Destination())
	if err != nil {
		return catalog.Guide{}, err
	}

	guides, err := catalogRepo.ListGuides(ctx)
	if err != nil {
		return catalog.Guide{}, err
	}

	var excluded []int64
	if current := o.GuideID(); current != nil {
		excluded = append(excluded, *current)
	}

	guide, err := h.selector.PickGuide(guides, excluded)
	if err != nil {
		return catalog.Guide{}, err
	}

	if err = o.ReassignGuide(guide.ID); err != nil {
		return catalog.Guide{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return catalog.Guide{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return catalog.Guide{}, err
	}

	return guide, nil
}
