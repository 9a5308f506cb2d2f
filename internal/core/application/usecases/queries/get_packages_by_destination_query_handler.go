package queries

import (
	"context"

	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/services"
	"trippy/internal/core/ports"
)

// GetPackagesByDestinationQueryHandler returns the composed packages of a destination.
type GetPackagesByDestinationQueryHandler struct {
	catalog  ports.CatalogRepository
	composer services.AttachmentComposer
}

// NewGetPackagesByDestinationQueryHandler creates the handler.
func NewGetPackagesByDestinationQueryHandler(
	catalogRepo ports.CatalogRepository,
	faults services.FaultRecorder,
) GetPackagesByDestinationQueryHandler {
	return GetPackagesByDestinationQueryHandler{
		catalog:  catalogRepo,
		composer: services.NewAttachmentComposer(catalogRepo, faults),
	}
}

// Handle lists and composes the packages.
func (h GetPackagesByDestinationQueryHandler) Handle(
	ctx context.Context,
	query GetPackagesByDestinationQuery,
) ([]*catalog.Package, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pkgs, err := h.catalog.ListPackagesByDestination(ctx, query.Destination().String())
	if err != nil {
		return nil, err
	}

	return composeAll(ctx, h.composer, pkgs)
}
