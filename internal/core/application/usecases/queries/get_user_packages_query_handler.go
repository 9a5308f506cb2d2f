package queries

import (
	"context"

	"trippy/internal/core/domain/services"
	"trippy/internal/core/ports"
)

// GetUserPackagesQueryHandler returns a user's ordered packages, composed.
//
// An order pointing at a deleted package is kept in the result with an empty
// Package so callers can still show and cancel it.
type GetUserPackagesQueryHandler struct {
	orders   OrderReader
	composer services.AttachmentComposer
}

// NewGetUserPackagesQueryHandler creates the handler.
func NewGetUserPackagesQueryHandler(
	orders OrderReader,
	attachments ports.AttachmentReader,
	faults services.FaultRecorder,
) GetUserPackagesQueryHandler {
	return GetUserPackagesQueryHandler{
		orders:   orders,
		composer: services.NewAttachmentComposer(attachments, faults),
	}
}

// Handle lists and composes the user's ordered packages in storage order.
func (h GetUserPackagesQueryHandler) Handle(
	ctx context.Context,
	query GetUserPackagesQuery,
) ([]ports.OrderedPackage, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.composer.ComposeOrderPackages(ctx, h.orders, query.Username())
}
