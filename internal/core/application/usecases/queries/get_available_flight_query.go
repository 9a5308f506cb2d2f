package queries

import (
	"errors"

	"trippy/internal/pkg/guard"
)

var (
	ErrGetAvailableFlightQueryIsNotConstructed = errors.New(
		"GetAvailableFlightQuery must be created via NewGetAvailableFlightQuery constructor",
	)
)

// GetAvailableFlightQuery asks for any flight outside the exclusion list.
type GetAvailableFlightQuery struct {
	excludeIDs []int64
	guard      guard.ConstructorGuard
}

// NewGetAvailableFlightQuery creates the query.
func NewGetAvailableFlightQuery(excludeIDs []int64) GetAvailableFlightQuery {
	return GetAvailableFlightQuery{
		excludeIDs: append([]int64(nil), excludeIDs...),
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableFlightQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableFlightQueryIsNotConstructed)
}

// ExcludeIDs returns the flight ids to skip.
func (q GetAvailableFlightQuery) ExcludeIDs() []int64 {
	return q.excludeIDs
}
