package services

import (
	"math/rand/v2"

	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/pkg/errs"
)

// Resource names reported in NoEligibleResourceError and metric labels.
const (
	ResourceGuide      = "guide"
	ResourceHotel      = "hotel"
	ResourceFlight     = "flight"
	ResourceRestaurant = "restaurant"
)

// SelectionPolicy picks one index out of n eligible candidates. n is always positive
// and the result must lie in [0, n).
type SelectionPolicy interface {
	Choose(n int) int
}

// UniformRandomPolicy draws every eligible candidate with equal probability.
type UniformRandomPolicy struct{}

// Choose returns a uniformly random index in [0, n).
func (UniformRandomPolicy) Choose(n int) int {
	return rand.IntN(n) //nolint:gosec // selection fairness, not secrecy
}

// AvailabilitySelector hands out one resource from a candidate pool that the caller
// does not already hold.
//
// Business rules:
//   - Excluded identities are never returned
//   - An empty eligible set yields errs.ErrUnavailable, never a fallback candidate
//   - Each call is one independent draw; there are no retries
//
// Example:
//
//	selector := services.NewAvailabilitySelector(nil)
//	guide, err := selector.PickGuide(guides, []int64{currentGuideID})
//	if errors.Is(err, errs.ErrUnavailable) {
//	    // every guide is excluded
//	}
type AvailabilitySelector struct {
	policy SelectionPolicy
}

// NewAvailabilitySelector creates a selector. A nil policy selects uniformly at random.
func NewAvailabilitySelector(policy SelectionPolicy) AvailabilitySelector {
	if policy == nil {
		policy = UniformRandomPolicy{}
	}
	return AvailabilitySelector{policy: policy}
}

// PickExcluding filters candidates whose key is in excluded and lets the selector's
// policy choose among the rest.
func PickExcluding[T any, K comparable](
	s AvailabilitySelector,
	resource string,
	candidates []T,
	key func(T) K,
	excluded []K,
) (T, error) {
	var zero T

	skip := make(map[K]struct{}, len(excluded))
	for _, k := range excluded {
		skip[k] = struct{}{}
	}

	eligible := make([]T, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := skip[key(c)]; ok {
			continue
		}
		eligible = append(eligible, c)
	}

	if len(eligible) == 0 {
		return zero, errs.NewNoEligibleResourceError(resource)
	}

	policy := s.policy
	if policy == nil {
		policy = UniformRandomPolicy{}
	}

	idx := policy.Choose(len(eligible))
	if idx < 0 || idx >= len(eligible) {
		return zero, errs.NewValueIsOutOfRangeError("selection index", idx, 0, len(eligible)-1)
	}
	return eligible[idx], nil
}

// PickGuide draws a guide whose id is not in excludedIDs.
func (s AvailabilitySelector) PickGuide(guides []catalog.Guide, excludedIDs []int64) (catalog.Guide, error) {
	return PickExcluding(s, ResourceGuide, guides, catalog.GuideID, excludedIDs)
}

// PickHotel draws a hotel whose id is not in excludedIDs. Callers pass hotels
// already filtered by destination.
func (s AvailabilitySelector) PickHotel(hotels []catalog.Hotel, excludedIDs []int64) (catalog.Hotel, error) {
	return PickExcluding(s, ResourceHotel, hotels, catalog.HotelID, excludedIDs)
}

// PickFlight draws a flight whose id is not in excludedIDs.
func (s AvailabilitySelector) PickFlight(flights []catalog.Flight, excludedIDs []int64) (catalog.Flight, error) {
	return PickExcluding(s, ResourceFlight, flights, catalog.FlightID, excludedIDs)
}

// PickRestaurant draws a restaurant whose name differs from previousName.
// The comparison is plain equality, so an empty previousName excludes unnamed restaurants.
func (s AvailabilitySelector) PickRestaurant(
	restaurants []catalog.Restaurant,
	previousName string,
) (catalog.Restaurant, error) {
	return PickExcluding(s, ResourceRestaurant, restaurants, catalog.RestaurantName, []string{previousName})
}
