package queries

import (
	"errors"

	"trippy/internal/core/domain/model/kernel"
	"trippy/internal/pkg/guard"
)

var (
	ErrGetAlternateRestaurantQueryIsNotConstructed = errors.New(
		"GetAlternateRestaurantQuery must be created via NewGetAlternateRestaurantQuery constructor",
	)
)

// GetAlternateRestaurantQuery asks for a restaurant at a destination other than the
// one the caller was last shown. Restaurants are told apart by name.
type GetAlternateRestaurantQuery struct {
	destination  kernel.Destination
	previousName string
	guard        guard.ConstructorGuard
}

// NewGetAlternateRestaurantQuery creates the query. An empty previousName is compared like any other name.
func NewGetAlternateRestaurantQuery(destination, previousName string) (GetAlternateRestaurantQuery, error) {
	d, err := kernel.NewDestination(destination)
	if err != nil {
		return GetAlternateRestaurantQuery{}, err
	}
	return GetAlternateRestaurantQuery{
		destination:  d,
		previousName: previousName,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAlternateRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetAlternateRestaurantQueryIsNotConstructed)
}

// Destination returns the destination filter.
func (q GetAlternateRestaurantQuery) Destination() kernel.Destination {
	return q.destination
}

// PreviousName returns the restaurant name to skip.
func (q GetAlternateRestaurantQuery) PreviousName() string {
	return q.previousName
}
