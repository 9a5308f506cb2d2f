package queries

import (
	"context"

	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/services"
	"trippy/internal/core/ports"
)

// GetAvailableHotelQueryHandler draws one hotel at a destination outside the exclusion list.
type GetAvailableHotelQueryHandler struct {
	catalog  ports.CatalogRepository
	selector services.AvailabilitySelector
}

// NewGetAvailableHotelQueryHandler creates the handler.
func NewGetAvailableHotelQueryHandler(
	catalogRepo ports.CatalogRepository,
	selector services.AvailabilitySelector,
) GetAvailableHotelQueryHandler {
	return GetAvailableHotelQueryHandler{catalog: catalogRepo, selector: selector}
}

// Handle loads the destination's hotels and draws once.
func (h GetAvailableHotelQueryHandler) Handle(ctx context.Context, query GetAvailableHotelQuery) (catalog.Hotel, error) {
	if err := query.Validate(); err != nil {
		return catalog.Hotel{}, err
	}

	hotels, err := h.catalog.ListHotelsByDestination(ctx, query.Destination().String())
	if err != nil {
		return catalog.Hotel{}, err
	}

	return h.selector.PickHotel(hotels, query.ExcludeIDs())
}
