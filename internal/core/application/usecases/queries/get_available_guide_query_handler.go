package queries

import (
	"context"

	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/services"
	"trippy/internal/core/ports"
)

// GetAvailableGuideQueryHandler draws one guide outside the exclusion list.
// Returns errs.ErrUnavailable when every guide is excluded.
type GetAvailableGuideQueryHandler struct {
	catalog  ports.CatalogRepository
	selector services.AvailabilitySelector
}

// NewGetAvailableGuideQueryHandler creates the handler.
func NewGetAvailableGuideQueryHandler(
	catalogRepo ports.CatalogRepository,
	selector services.AvailabilitySelector,
) GetAvailableGuideQueryHandler {
	return GetAvailableGuideQueryHandler{catalog: catalogRepo, selector: selector}
}

// Handle loads the guide pool and draws once.
func (h GetAvailableGuideQueryHandler) Handle(ctx context.Context, query GetAvailableGuideQuery) (catalog.Guide, error) {
	if err := query.Validate(); err != nil {
		return catalog.Guide{}, err
	}

	guides, err := h.catalog.ListGuides(ctx)
	if err != nil {
		return catalog.Guide{}, err
	}

	return h.selector.PickGuide(guides, query.ExcludeIDs())
}
