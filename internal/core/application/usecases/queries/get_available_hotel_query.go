package queries

import (
	"errors"

	"trippy/internal/core/domain/model/kernel"
	"trippy/internal/pkg/guard"
)

var (
	ErrGetAvailableHotelQueryIsNotConstructed = errors.New(
		"GetAvailableHotelQuery must be created via NewGetAvailableHotelQuery constructor",
	)
)

// GetAvailableHotelQuery asks for a hotel at a destination outside the exclusion list.
type GetAvailableHotelQuery struct {
	destination kernel.Destination
	excludeIDs  []int64
	guard       guard.ConstructorGuard
}

// NewGetAvailableHotelQuery creates the query. The destination is required.
func NewGetAvailableHotelQuery(destination string, excludeIDs []int64) (GetAvailableHotelQuery, error) {
	d, err := kernel.NewDestination(destination)
	if err != nil {
		return GetAvailableHotelQuery{}, err
	}
	return GetAvailableHotelQuery{
		destination: d,
		excludeIDs:  append([]int64(nil), excludeIDs...),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableHotelQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableHotelQueryIsNotConstructed)
}

// Destination returns the destination filter.
func (q GetAvailableHotelQuery) Destination() kernel.Destination {
	return q.destination
}

// ExcludeIDs returns the hotel ids to skip.
func (q GetAvailableHotelQuery) ExcludeIDs() []int64 {
	return q.excludeIDs
}
