package postgres

import (
	"trippy/internal/adapters/out/postgres/catalogrepo"
	"trippy/internal/adapters/out/postgres/orderrepo"
	"trippy/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every table the service owns, in migration order.
func Models() []any {
	return []any{
		&catalogrepo.HotelDTO{},
		&catalogrepo.GuideDTO{},
		&catalogrepo.CarRentalDTO{},
		&catalogrepo.FlightDTO{},
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.PackageDTO{},
		&catalogrepo.InfoDTO{},
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
	}
}

// Migrate creates or updates the tables. It never seeds catalog rows.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
