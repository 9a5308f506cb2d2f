package queries

import (
	"context"

	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/services"
	"trippy/internal/core/ports"
)

// GetPopularPackagesQueryHandler returns composed packages ranked by sales.
type GetPopularPackagesQueryHandler struct {
	catalog  ports.CatalogRepository
	composer services.AttachmentComposer
}

// NewGetPopularPackagesQueryHandler creates the handler. faults receives dangling
// attachment references found while composing and may be nil.
func NewGetPopularPackagesQueryHandler(
	catalogRepo ports.CatalogRepository,
	faults services.FaultRecorder,
) GetPopularPackagesQueryHandler {
	return GetPopularPackagesQueryHandler{
		catalog:  catalogRepo,
		composer: services.NewAttachmentComposer(catalogRepo, faults),
	}
}

// Handle returns up to query.Limit() composed packages, best sellers first.
func (h GetPopularPackagesQueryHandler) Handle(
	ctx context.Context,
	query GetPopularPackagesQuery,
) ([]*catalog.Package, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pkgs, err := h.catalog.ListPopularPackages(ctx, query.Limit(), query.ExcludeIDs())
	if err != nil {
		return nil, err
	}

	return composeAll(ctx, h.composer, pkgs)
}

func composeAll(ctx context.Context, composer services.AttachmentComposer, pkgs []*catalog.Package) ([]*catalog.Package, error) {
	out := make([]*catalog.Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		if err := composer.ComposePackage(ctx, pkg); err != nil {
			return nil, err
		}
		out = append(out, pkg)
	}
	return out, nil
}
