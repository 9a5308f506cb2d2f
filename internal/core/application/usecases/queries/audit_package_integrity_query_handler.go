package queries

import (
	"context"

	"trippy/internal/core/domain/services"
	"trippy/internal/core/ports"
)

// AuditPackageIntegrityQueryHandler composes every package and reports the
// references that point at missing rows. It records nothing itself; the caller
// decides what to do with the faults.
type AuditPackageIntegrityQueryHandler struct {
	catalog  ports.CatalogRepository
	composer services.AttachmentComposer
}

// NewAuditPackageIntegrityQueryHandler creates the handler.
func NewAuditPackageIntegrityQueryHandler(catalogRepo ports.CatalogRepository) AuditPackageIntegrityQueryHandler {
	return AuditPackageIntegrityQueryHandler{
		catalog:  catalogRepo,
		composer: services.NewAttachmentComposer(catalogRepo, nil),
	}
}

// Handle runs one audit pass.
func (h AuditPackageIntegrityQueryHandler) Handle(
	ctx context.Context,
	query AuditPackageIntegrityQuery,
) (AuditPackageIntegrityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuditPackageIntegrityQueryResponse{}, err
	}

	pkgs, err := h.catalog.ListAllPackages(ctx)
	if err != nil {
		return AuditPackageIntegrityQueryResponse{}, err
	}

	resp := AuditPackageIntegrityQueryResponse{}
	for _, pkg := range pkgs {
		if err = ctx.Err(); err != nil {
			return AuditPackageIntegrityQueryResponse{}, err
		}

		faults, composeErr := h.composer.Compose(ctx, pkg)
		if composeErr != nil {
			return AuditPackageIntegrityQueryResponse{}, composeErr
		}
		resp.PackagesChecked++
		resp.Faults = append(resp.Faults, faults...)
	}

	return resp, nil
}
