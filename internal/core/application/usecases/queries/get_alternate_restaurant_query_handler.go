package queries

import (
	"context"

	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/services"
	"trippy/internal/core/ports"
)

// GetAlternateRestaurantQueryHandler draws a restaurant at a destination whose name
// differs from the previous one.
type GetAlternateRestaurantQueryHandler struct {
	catalog  ports.CatalogRepository
	selector services.AvailabilitySelector
}

// NewGetAlternateRestaurantQueryHandler creates the handler.
func NewGetAlternateRestaurantQueryHandler(
	catalogRepo ports.CatalogRepository,
	selector services.AvailabilitySelector,
) GetAlternateRestaurantQueryHandler {
	return GetAlternateRestaurantQueryHandler{catalog: catalogRepo, selector: selector}
}

// Handle loads the destination's restaurants and draws once.
func (h GetAlternateRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetAlternateRestaurantQuery,
) (catalog.Restaurant, error) {
	if err := query.Validate(); err != nil {
		return catalog.Restaurant{}, err
	}

	restaurants, err := h.catalog.ListRestaurantsByDestination(ctx, query.Destination().String())
	if err != nil {
		return catalog.Restaurant{}, err
	}

	return h.selector.PickRestaurant(restaurants, query.PreviousName())
}
