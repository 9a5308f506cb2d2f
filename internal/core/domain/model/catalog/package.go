package catalog

import "trippy/internal/core/domain/model/kernel"

// Package is a bookable bundle of a hotel, a guide and a car rental.
//
// HotelID, GuideID and CarRentalID are the stored references; any of them may be nil.
// Hotel, Guide and CarRental are populated by composition and are never persisted.
// After composition each resolved attachment matches its id; a reference that points
// at a missing row leaves the attachment empty.
type Package struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Country     string  `json:"country"`
	Destination string  `json:"destination"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Sales       int64   `json:"num_of_sales"`

	HotelID     *int64 `json:"hotel_id"`
	GuideID     *int64 `json:"guide_id"`
	CarRentalID *int64 `json:"car_rental_id"`

	Hotel     kernel.Optional[Hotel]     `json:"hotel"`
	Guide     kernel.Optional[Guide]     `json:"guide"`
	CarRental kernel.Optional[CarRental] `json:"car_rental"`
}

// IsComposed reports whether every non-nil reference resolved to an attachment.
func (p *Package) IsComposed() bool {
	for _, kind := range AttachmentKinds() {
		if kind.ForeignKey(p) != nil && !kind.IsResolved(p) {
			return false
		}
	}
	return true
}
