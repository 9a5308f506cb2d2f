package queries

import (
	"errors"
	"strings"

	"trippy/internal/pkg/errs"
	"trippy/internal/pkg/guard"
)

var (
	ErrGetPackagesByCountryQueryIsNotConstructed = errors.New(
		"GetPackagesByCountryQuery must be created via NewGetPackagesByCountryQuery constructor",
	)
)

// GetPackagesByCountryQuery lists the packages offered in one country.
type GetPackagesByCountryQuery struct {
	country string
	guard   guard.ConstructorGuard
}

// NewGetPackagesByCountryQuery creates the query. The country is required.
func NewGetPackagesByCountryQuery(country string) (GetPackagesByCountryQuery, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return GetPackagesByCountryQuery{}, errs.NewValueIsRequiredError("country")
	}
	return GetPackagesByCountryQuery{country: country, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPackagesByCountryQuery) Validate() error {
	return q.guard.Validate(ErrGetPackagesByCountryQueryIsNotConstructed)
}

// Country returns the country filter.
func (q GetPackagesByCountryQuery) Country() string {
	return q.country
}
