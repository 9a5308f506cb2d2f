package catalogrepo

import (
	"time"

	"trippy/internal/core/domain/model/catalog"
)

// HotelDTO is the persistence representation of catalog.Hotel.
type HotelDTO struct {
	ID          int64 `gorm:"primaryKey"`
	Name        string
	Price       float64
	Phone       string
	Address     string
	Destination string `gorm:"index"`
}

func (HotelDTO) TableName() string {
	return "hotels"
}

// GuideDTO is the persistence representation of catalog.Guide.
type GuideDTO struct {
	ID    int64 `gorm:"primaryKey"`
	Name  string
	Phone string
	Email string
}

func (GuideDTO) TableName() string {
	return "guides"
}

// CarRentalDTO is the persistence representation of catalog.CarRental.
type CarRentalDTO struct {
	ID    int64 `gorm:"primaryKey"`
	Name  string
	Price float64
}

func (CarRentalDTO) TableName() string {
	return "car_rentals"
}

// FlightDTO is the persistence representation of catalog.Flight.
type FlightDTO struct {
	ID           int64 `gorm:"primaryKey"`
	Carrier      string
	FlightNumber string
	Origin       string
	Destination  string
	DepartureAt  time.Time
	ArrivalAt    time.Time
}

func (FlightDTO) TableName() string {
	return "flights"
}

// RestaurantDTO is the persistence representation of catalog.Restaurant.
type RestaurantDTO struct {
	ID          int64 `gorm:"primaryKey"`
	Name        string
	Destination string `gorm:"index"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// PackageDTO is the persistence representation of catalog.Package.
// The attachment columns carry no foreign key constraints: a dangling
// reference is reported by the composer, not rejected by storage.
type PackageDTO struct {
	ID          int64 `gorm:"primaryKey"`
	Title       string
	Country     string `gorm:"index"`
	Destination string `gorm:"index"`
	Duration    int
	Price       float64
	Description string
	NumOfSales  int64  `gorm:"column:num_of_sales;index"`
	HotelID     *int64 `gorm:"column:hotel_id"`
	GuideID     *int64 `gorm:"column:guide_id"`
	CarRentalID *int64 `gorm:"column:car_rental_id"`
}

func (PackageDTO) TableName() string {
	return "packages"
}

// InfoDTO is a named block of company information text.
type InfoDTO struct {
	Name    string `gorm:"column:info_name;primaryKey"`
	Content string `gorm:"column:info_content"`
}

func (InfoDTO) TableName() string {
	return "infos"
}

func hotelToDomain(dto HotelDTO) catalog.Hotel {
	return catalog.Hotel{
		ID:          dto.ID,
		Name:        dto.Name,
		Price:       dto.Price,
		Phone:       dto.Phone,
		Address:     dto.Address,
		Destination: dto.Destination,
	}
}

func guideToDomain(dto GuideDTO) catalog.Guide {
	return catalog.Guide{ID: dto.ID, Name: dto.Name, Phone: dto.Phone, Email: dto.Email}
}

func carRentalToDomain(dto CarRentalDTO) catalog.CarRental {
	return catalog.CarRental{ID: dto.ID, Name: dto.Name, Price: dto.Price}
}

func flightToDomain(dto FlightDTO) catalog.Flight {
	return catalog.Flight{
		ID:           dto.ID,
		Carrier:      dto.Carrier,
		FlightNumber: dto.FlightNumber,
		Origin:       dto.Origin,
		Destination:  dto.Destination,
		DepartureAt:  dto.DepartureAt,
		ArrivalAt:    dto.ArrivalAt,
	}
}

func restaurantToDomain(dto RestaurantDTO) catalog.Restaurant {
	return catalog.Restaurant{ID: dto.ID, Name: dto.Name, Destination: dto.Destination}
}

// PackageToDomain maps a row to an uncomposed catalog.Package.
func PackageToDomain(dto PackageDTO) *catalog.Package {
	return &catalog.Package{
		ID:          dto.ID,
		Title:       dto.Title,
		Country:     dto.Country,
		Destination: dto.Destination,
		Duration:    dto.Duration,
		Price:       dto.Price,
		Description: dto.Description,
		Sales:       dto.NumOfSales,
		HotelID:     dto.HotelID,
		GuideID:     dto.GuideID,
		CarRentalID: dto.CarRentalID,
	}
}

func mapAll[D any, T any](dtos []D, fn func(D) T) []T {
	out := make([]T, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, fn(dto))
	}
	return out
}
