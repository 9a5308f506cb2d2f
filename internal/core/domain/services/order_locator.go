package services

import (
	"context"

	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/model/kernel"
	"trippy/internal/core/domain/model/order"
)

// PackageFinder resolves the package a destination refers to.
type PackageFinder interface {
	FirstPackageByDestination(ctx context.Context, destination string) (*catalog.Package, error)
}

// OrderFinder looks an order up by its natural key.
type OrderFinder interface {
	GetByUserAndPackage(ctx context.Context, username string, packageID int64) (*order.Order, error)
}

// OrderLocator finds the order a user placed for a destination.
//
// Orders are addressed by (username, destination) at the edge while they are keyed
// by (username, package). The locator bridges the two by taking the first package
// for the destination, ordered by id. A user holding orders for two packages with
// the same destination can only reach the lower-id one this way.
type OrderLocator struct{}

// NewOrderLocator creates a new OrderLocator instance.
func NewOrderLocator() OrderLocator {
	return OrderLocator{}
}

// LocateByDestination returns the user's order for destination together with the
// package it was resolved through. Either lookup failing yields its NotFound error.
func (OrderLocator) LocateByDestination(
	ctx context.Context,
	packages PackageFinder,
	orders OrderFinder,
	username string,
	destination kernel.Destination,
) (*order.Order, *catalog.Package, error) {
	if err := destination.Validate(); err != nil {
		return nil, nil, err
	}

	pkg, err := packages.FirstPackageByDestination(ctx, destination.String())
	if err != nil {
		return nil, nil, err
	}

	o, err := orders.GetByUserAndPackage(ctx, username, pkg.ID)
	if err != nil {
		return nil, nil, err
	}
	return o, pkg, nil
}
