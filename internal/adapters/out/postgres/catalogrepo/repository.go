package catalogrepo

import (
	"context"
	"errors"

	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormCatalogRepository implements ports.CatalogRepository using GORM.
// Catalog rows are reference data; this repository only reads them.
//
// Example:
//
//	repo := catalogrepo.NewGormCatalogRepository(db)
//	popular, err := repo.ListPopularPackages(ctx, 3, []int64{12})
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a repository bound to db, which may be a transaction.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) GetPackage(ctx context.Context, id int64) (*catalog.Package, error) {
	var dto PackageDTO
	if err := first(ctx, r.db, &dto, "package", id); err != nil {
		return nil, err
	}
	return PackageToDomain(dto), nil
}

func (r *GormCatalogRepository) GetHotel(ctx context.Context, id int64) (catalog.Hotel, error) {
	var dto HotelDTO
	if err := first(ctx, r.db, &dto, "hotel", id); err != nil {
		return catalog.Hotel{}, err
	}
	return hotelToDomain(dto), nil
}

func (r *GormCatalogRepository) GetGuide(ctx context.Context, id int64) (catalog.Guide, error) {
	var dto GuideDTO
	if err := first(ctx, r.db, &dto, "guide", id); err != nil {
		return catalog.Guide{}, err
	}
	return guideToDomain(dto), nil
}

func (r *GormCatalogRepository) GetCarRental(ctx context.Context, id int64) (catalog.CarRental, error) {
	var dto CarRentalDTO
	if err := first(ctx, r.db, &dto, "car_rental", id); err != nil {
		return catalog.CarRental{}, err
	}
	return carRentalToDomain(dto), nil
}

func (r *GormCatalogRepository) GetFlight(ctx context.Context, id int64) (catalog.Flight, error) {
	var dto FlightDTO
	if err := first(ctx, r.db, &dto, "flight", id); err != nil {
		return catalog.Flight{}, err
	}
	return flightToDomain(dto), nil
}

func (r *GormCatalogRepository) ListPopularPackages(
	ctx context.Context,
	limit int,
	excludeIDs []int64,
) ([]*catalog.Package, error) {
	q := r.db.WithContext(ctx).Order("num_of_sales DESC").Order("id ASC").Limit(limit)
	if len(excludeIDs) > 0 {
		q = q.Where("id <> ALL(?)", pq.Array(excludeIDs))
	}

	var dtos []PackageDTO
	if err := q.Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, PackageToDomain), nil
}

func (r *GormCatalogRepository) ListPackagesByCountry(ctx context.Context, country string) ([]*catalog.Package, error) {
	var dtos []PackageDTO
	if err := r.db.WithContext(ctx).Where("country = ?", country).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, PackageToDomain), nil
}

func (r *GormCatalogRepository) ListPackagesByDestination(
	ctx context.Context,
	destination string,
) ([]*catalog.Package, error) {
	var dtos []PackageDTO
	if err := r.db.WithContext(ctx).Where("destination = ?", destination).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, PackageToDomain), nil
}

func (r *GormCatalogRepository) FirstPackageByDestination(
	ctx context.Context,
	destination string,
) (*catalog.Package, error) {
	var dto PackageDTO
	err := r.db.WithContext(ctx).Where("destination = ?", destination).Order("id").First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", destination)
		}
		return nil, err
	}
	return PackageToDomain(dto), nil
}

func (r *GormCatalogRepository) ListAllPackages(ctx context.Context) ([]*catalog.Package, error) {
	var dtos []PackageDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, PackageToDomain), nil
}

func (r *GormCatalogRepository) ListGuides(ctx context.Context) ([]catalog.Guide, error) {
	var dtos []GuideDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, guideToDomain), nil
}

func (r *GormCatalogRepository) ListHotelsByDestination(ctx context.Context, destination string) ([]catalog.Hotel, error) {
	var dtos []HotelDTO
	if err := r.db.WithContext(ctx).Where("destination = ?", destination).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, hotelToDomain), nil
}

func (r *GormCatalogRepository) ListFlights(ctx context.Context) ([]catalog.Flight, error) {
	var dtos []FlightDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, flightToDomain), nil
}

func (r *GormCatalogRepository) ListRestaurantsByDestination(
	ctx context.Context,
	destination string,
) ([]catalog.Restaurant, error) {
	var dtos []RestaurantDTO
	if err := r.db.WithContext(ctx).Where("destination = ?", destination).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, restaurantToDomain), nil
}

func first(ctx context.Context, db *gorm.DB, dest any, name string, id int64) error {
	if err := db.WithContext(ctx).First(dest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError(name, id)
		}
		return err
	}
	return nil
}
