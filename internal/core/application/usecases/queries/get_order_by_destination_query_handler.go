package queries

import (
	"context"

	"trippy/internal/core/domain/services"
)

// GetOrderByDestinationQueryHandler resolves (username, destination) to an order.
// The first package for the destination by id is used.
type GetOrderByDestinationQueryHandler struct {
	packages services.PackageFinder
	orders   services.OrderFinder
	locator  services.OrderLocator
}

// NewGetOrderByDestinationQueryHandler creates the handler.
func NewGetOrderByDestinationQueryHandler(
	packages services.PackageFinder,
	orders services.OrderFinder,
) GetOrderByDestinationQueryHandler {
	return GetOrderByDestinationQueryHandler{
		packages: packages,
		orders:   orders,
		locator:  services.NewOrderLocator(),
	}
}

// Handle returns the order or errs.ObjectNotFoundError.
func (h GetOrderByDestinationQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByDestinationQuery,
) (GetOrderByDestinationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByDestinationQueryResponse{}, err
	}

	o, pkg, err := h.locator.LocateByDestination(ctx, h.packages, h.orders, query.Username(), query.Destination())
	if err != nil {
		return GetOrderByDestinationQueryResponse{}, err
	}

	return GetOrderByDestinationQueryResponse{
		OrderID:     o.ID().String(),
		Username:    o.Username(),
		PackageID:   o.PackageID(),
		Destination: pkg.Destination,
		HotelID:     o.HotelID(),
		GuideID:     o.GuideID(),
		FlightID:    o.FlightID(),
	}, nil
}
