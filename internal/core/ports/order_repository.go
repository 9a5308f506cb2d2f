package ports

import (
	"context"

	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/model/kernel"
	"trippy/internal/core/domain/model/order"
)

// OrderedPackage is one row of a user's orders joined to their packages.
// Package is empty when the order references a package that no longer exists.
type OrderedPackage struct {
	OrderID   kernel.UUID
	PackageID int64
	Package   kernel.Optional[*catalog.Package]
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	// A second order for the same (username, package) fails with errs.ErrConflict.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the pinned resources of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByUserAndPackage retrieves the order identified by its natural key.
	// Returns errs.ObjectNotFoundError if it does not exist.
	GetByUserAndPackage(ctx context.Context, username string, packageID int64) (*order.Order, error)

	// ListPackagesForUser left-joins the user's orders to their packages in
	// natural storage order.
	ListPackagesForUser(ctx context.Context, username string) ([]OrderedPackage, error)

	// Delete removes the order identified by its natural key and returns the number
	// of rows removed. Removing nothing is not an error.
	Delete(ctx context.Context, username string, packageID int64) (int64, error)
}
