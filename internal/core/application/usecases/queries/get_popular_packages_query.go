package queries

import (
	"errors"

	"trippy/internal/pkg/errs"
	"trippy/internal/pkg/guard"
)

const (
	// DefaultPopularLimit is the page size used when none is requested.
	DefaultPopularLimit = 3
	// MaxPopularLimit caps a single page.
	MaxPopularLimit = 50
)

var (
	ErrGetPopularPackagesQueryIsNotConstructed = errors.New(
		"GetPopularPackagesQuery must be created via NewGetPopularPackagesQuery constructor",
	)
)

// GetPopularPackagesQuery pages through packages by sales count. Callers pass the ids
// they have already shown so the next page skips them.
//
// Example:
//
//	first, _ := NewGetPopularPackagesQuery(0, nil)
//	page, _ := handler.Handle(ctx, first)
//
//	next, _ := NewGetPopularPackagesQuery(0, idsOf(page))
type GetPopularPackagesQuery struct {
	limit      int
	excludeIDs []int64
	guard      guard.ConstructorGuard
}

// NewGetPopularPackagesQuery creates the query. A zero limit selects DefaultPopularLimit.
func NewGetPopularPackagesQuery(limit int, excludeIDs []int64) (GetPopularPackagesQuery, error) {
	if limit == 0 {
		limit = DefaultPopularLimit
	}
	if limit < 1 || limit > MaxPopularLimit {
		return GetPopularPackagesQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPopularLimit)
	}
	return GetPopularPackagesQuery{
		limit:      limit,
		excludeIDs: append([]int64(nil), excludeIDs...),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPopularPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetPopularPackagesQueryIsNotConstructed)
}

// Limit returns the page size.
func (q GetPopularPackagesQuery) Limit() int {
	return q.limit
}

// ExcludeIDs returns the package ids to skip.
func (q GetPopularPackagesQuery) ExcludeIDs() []int64 {
	return q.excludeIDs
}
