package catalog

import "time"

// Hotel is a lodging option tied to a destination.
type Hotel struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	Destination string  `json:"destination"`
}

// Guide is a tour guide. Guides are not tied to a destination.
type Guide struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// CarRental is a car hire offer bundled with a package.
type CarRental struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Flight is an opaque bookable flight. The core selects flights only by id.
type Flight struct {
	ID           int64     `json:"id"`
	Carrier      string    `json:"carrier"`
	FlightNumber string    `json:"flight_number"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	DepartureAt  time.Time `json:"departure_at"`
	ArrivalAt    time.Time `json:"arrival_at"`
}

// Restaurant is a dining suggestion for a destination.
type Restaurant struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Destination string `json:"destination"`
}

// GuideID returns the identity used for exclusion.
func GuideID(g Guide) int64 { return g.ID }

// HotelID returns the identity used for exclusion.
func HotelID(h Hotel) int64 { return h.ID }

// FlightID returns the identity used for exclusion.
func FlightID(f Flight) int64 { return f.ID }

// RestaurantName returns the identity used for exclusion. Restaurants are
// excluded by name, not by id.
func RestaurantName(r Restaurant) string { return r.Name }
