// Package ports defines repository interfaces for the booking domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"trippy/internal/core/domain/model/catalog"
)

// AttachmentReader resolves the sub-resources a package references.
// Each lookup returns an errs.ObjectNotFoundError when the row does not exist.
type AttachmentReader interface {
	GetHotel(ctx context.Context, id int64) (catalog.Hotel, error)
	GetGuide(ctx context.Context, id int64) (catalog.Guide, error)
	GetCarRental(ctx context.Context, id int64) (catalog.CarRental, error)
}

// CatalogRepository defines read access to the catalog reference data.
// Packages are returned uncomposed; attachments are resolved by the composer.
type CatalogRepository interface {
	AttachmentReader

	// GetPackage retrieves a package by id.
	// Returns errs.ObjectNotFoundError if it does not exist.
	GetPackage(ctx context.Context, id int64) (*catalog.Package, error)

	// GetFlight retrieves a flight by id.
	GetFlight(ctx context.Context, id int64) (catalog.Flight, error)

	// ListPopularPackages returns up to limit packages ranked by sales count
	// descending, skipping excludeIDs. Ties are broken by id.
	//
	// Example:
	//   page1, _ := repo.ListPopularPackages(ctx, 3, nil)
	//   page2, _ := repo.ListPopularPackages(ctx, 3, idsOf(page1))
	ListPopularPackages(ctx context.Context, limit int, excludeIDs []int64) ([]*catalog.Package, error)

	// ListPackagesByCountry returns every package in country, ordered by id.
	ListPackagesByCountry(ctx context.Context, country string) ([]*catalog.Package, error)

	// ListPackagesByDestination returns every package for destination, ordered by id.
	ListPackagesByDestination(ctx context.Context, destination string) ([]*catalog.Package, error)

	// FirstPackageByDestination returns the lowest-id package for destination.
	FirstPackageByDestination(ctx context.Context, destination string) (*catalog.Package, error)

	// ListAllPackages returns every package, ordered by id.
	ListAllPackages(ctx context.Context) ([]*catalog.Package, error)

	// ListGuides returns the full guide pool.
	ListGuides(ctx context.Context) ([]catalog.Guide, error)

	// ListHotelsByDestination returns the hotel pool for destination.
	ListHotelsByDestination(ctx context.Context, destination string) ([]catalog.Hotel, error)

	// ListFlights returns the full flight pool.
	ListFlights(ctx context.Context) ([]catalog.Flight, error)

	// ListRestaurantsByDestination returns the restaurant pool for destination.
	ListRestaurantsByDestination(ctx context.Context, destination string) ([]catalog.Restaurant, error)
}
