package queries

import (
	"errors"

	"trippy/internal/pkg/guard"
)

var (
	ErrGetAvailableGuideQueryIsNotConstructed = errors.New(
		"GetAvailableGuideQuery must be created via NewGetAvailableGuideQuery constructor",
	)
)

// GetAvailableGuideQuery asks for any guide outside the exclusion list.
type GetAvailableGuideQuery struct {
	excludeIDs []int64
	guard      guard.ConstructorGuard
}

// NewGetAvailableGuideQuery creates the query.
func NewGetAvailableGuideQuery(excludeIDs []int64) GetAvailableGuideQuery {
	return GetAvailableGuideQuery{
		excludeIDs: append([]int64(nil), excludeIDs...),
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableGuideQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableGuideQueryIsNotConstructed)
}

// ExcludeIDs returns the guide ids to skip.
func (q GetAvailableGuideQuery) ExcludeIDs() []int64 {
	return q.excludeIDs
}
