package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"trippy/internal/adapters/out/postgres/pgerror"
	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/model/kernel"
	"trippy/internal/core/domain/model/order"
	"trippy/internal/core/ports"
	"trippy/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
//
// Orders are addressed by their natural key (username, package id). The
// unique index on that pair is the only guard against duplicates; Add maps
// its violation to errs.ErrConflict.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a repository bound to db, which may be a transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order. A second order for the same user and package
// returns an errs.ObjectAlreadyExistsError.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerror.IsUniqueViolation(err, UniqueUserPackageIndex) {
			return errs.NewObjectAlreadyExistsErrorWithCause("order", naturalKey(dto.Username, dto.PackageID), err)
		}
		return err
	}

	return nil
}

// Update writes the pinned resources of an existing order. Nil ids are written as NULL.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("hotel_id", "guide_id", "flight_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return nil
}

func (r *GormOrderRepository) GetByUserAndPackage(
	ctx context.Context,
	username string,
	packageID int64,
) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).First(&dto, "username = ? AND package_id = ?", username, packageID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", naturalKey(username, packageID))
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) ListPackagesForUser(ctx context.Context, username string) ([]ports.OrderedPackage, error) {
	var rows []orderedPackageRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			o.id AS order_id,
			o.package_id,
			p.id AS pkg_id,
			p.title,
			p.country,
			p.destination,
			p.duration,
			p.price,
			p.description,
			p.num_of_sales,
			p.hotel_id,
			p.guide_id,
			p.car_rental_id
		FROM orders o
		LEFT JOIN packages p ON p.id = o.package_id
		WHERE o.username = ?
	`, username).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]ports.OrderedPackage, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.OrderID[:])
		if idErr != nil {
			return nil, idErr
		}

		entry := ports.OrderedPackage{OrderID: id, PackageID: row.PackageID}
		if row.PkgID != nil {
			entry.Package = kernel.Some(packageFromRow(row))
		}
		out = append(out, entry)
	}

	return out, nil
}

// Delete removes the order and returns the number of rows removed.
func (r *GormOrderRepository) Delete(ctx context.Context, username string, packageID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("username = ? AND package_id = ?", username, packageID).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func packageFromRow(row orderedPackageRow) *catalog.Package {
	return &catalog.Package{
		ID:          *row.PkgID,
		Title:       deref(row.Title),
		Country:     deref(row.Country),
		Destination: deref(row.Destination),
		Duration:    deref(row.Duration),
		Price:       deref(row.Price),
		Description: deref(row.Description),
		Sales:       deref(row.NumOfSales),
		HotelID:     row.HotelID,
		GuideID:     row.GuideID,
		CarRentalID: row.CarRentalID,
	}
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

func naturalKey(username string, packageID int64) string {
	return fmt.Sprintf("%s/%d", username, packageID)
}
