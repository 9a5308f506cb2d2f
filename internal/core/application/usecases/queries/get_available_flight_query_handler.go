package queries

import (
	"context"

	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/services"
	"trippy/internal/core/ports"
)

// GetAvailableFlightQueryHandler draws one flight outside the exclusion list.
type GetAvailableFlightQueryHandler struct {
	catalog  ports.CatalogRepository
	selector services.AvailabilitySelector
}

// NewGetAvailableFlightQueryHandler creates the handler.
func NewGetAvailableFlightQueryHandler(
	catalogRepo ports.CatalogRepository,
	selector services.AvailabilitySelector,
) GetAvailableFlightQueryHandler {
	return GetAvailableFlightQueryHandler{catalog: catalogRepo, selector: selector}
}

// Handle loads the flight pool and draws once.
func (h GetAvailableFlightQueryHandler) Handle(ctx context.Context, query GetAvailableFlightQuery) (catalog.Flight, error) {
	if err := query.Validate(); err != nil {
		return catalog.Flight{}, err
	}

	flights, err := h.catalog.ListFlights(ctx)
	if err != nil {
		return catalog.Flight{}, err
	}

	return h.selector.PickFlight(flights, query.ExcludeIDs())
}
