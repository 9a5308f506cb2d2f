package queries

import (
	"errors"

	"trippy/internal/core/domain/model/kernel"
	"trippy/internal/pkg/guard"
)

var (
	ErrGetPackagesByDestinationQueryIsNotConstructed = errors.New(
		"GetPackagesByDestinationQuery must be created via NewGetPackagesByDestinationQuery constructor",
	)
)

// GetPackagesByDestinationQuery lists the packages for one destination.
type GetPackagesByDestinationQuery struct {
	destination kernel.Destination
	guard       guard.ConstructorGuard
}

// NewGetPackagesByDestinationQuery creates the query.
func NewGetPackagesByDestinationQuery(destination string) (GetPackagesByDestinationQuery, error) {
	d, err := kernel.NewDestination(destination)
	if err != nil {
		return GetPackagesByDestinationQuery{}, err
	}
	return GetPackagesByDestinationQuery{destination: d, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPackagesByDestinationQuery) Validate() error {
	return q.guard.Validate(ErrGetPackagesByDestinationQueryIsNotConstructed)
}

// Destination returns the destination filter.
func (q GetPackagesByDestinationQuery) Destination() kernel.Destination {
	return q.destination
}
