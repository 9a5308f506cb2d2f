package orderrepo

import (
	"trippy/internal/core/domain/model/kernel"
	"trippy/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// UniqueUserPackageIndex is the unique index over (username, package_id).
const UniqueUserPackageIndex = "idx_orders_username_package"

// OrderDTO is the persistence representation of order.Order.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"not null;uniqueIndex:idx_orders_username_package"`
	PackageID int64     `gorm:"not null;uniqueIndex:idx_orders_username_package"`
	HotelID   *int64
	GuideID   *int64
	FlightID  int64
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:        o.ID().Value(),
		Username:  o.Username(),
		PackageID: o.PackageID(),
		HotelID:   o.HotelID(),
		GuideID:   o.GuideID(),
		FlightID:  o.FlightID(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.Username, dto.PackageID, dto.HotelID, dto.GuideID, dto.FlightID)
}

// orderedPackageRow is one row of orders LEFT JOIN packages. The package
// columns are all NULL when the referenced package is gone.
type orderedPackageRow struct {
	OrderID     uuid.UUID `gorm:"column:order_id"`
	PackageID   int64     `gorm:"column:package_id"`
	PkgID       *int64    `gorm:"column:pkg_id"`
	Title       *string   `gorm:"column:title"`
	Country     *string   `gorm:"column:country"`
	Destination *string   `gorm:"column:destination"`
	Duration    *int      `gorm:"column:duration"`
	Price       *float64  `gorm:"column:price"`
	Description *string   `gorm:"column:description"`
	NumOfSales  *int64    `gorm:"column:num_of_sales"`
	HotelID     *int64    `gorm:"column:hotel_id"`
	GuideID     *int64    `gorm:"column:guide_id"`
	CarRentalID *int64    `gorm:"column:car_rental_id"`
}
