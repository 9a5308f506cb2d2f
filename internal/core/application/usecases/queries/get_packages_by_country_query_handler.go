package queries

import (
	"context"

	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/services"
	"trippy/internal/core/ports"
)

// GetPackagesByCountryQueryHandler returns the composed packages of a country.
type GetPackagesByCountryQueryHandler struct {
	catalog  ports.CatalogRepository
	composer services.AttachmentComposer
}

// NewGetPackagesByCountryQueryHandler creates the handler.
func NewGetPackagesByCountryQueryHandler(
	catalogRepo ports.CatalogRepository,
	faults services.FaultRecorder,
) GetPackagesByCountryQueryHandler {
	return GetPackagesByCountryQueryHandler{
		catalog:  catalogRepo,
		composer: services.NewAttachmentComposer(catalogRepo, faults),
	}
}

// Handle lists and composes the packages. An unknown country yields an empty list.
func (h GetPackagesByCountryQueryHandler) Handle(
	ctx context.Context,
	query GetPackagesByCountryQuery,
) ([]*catalog.Package, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pkgs, err := h.catalog.ListPackagesByCountry(ctx, query.Country())
	if err != nil {
		return nil, err
	}

	return composeAll(ctx, h.composer, pkgs)
}
