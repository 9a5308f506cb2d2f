package queries

import (
	"errors"
	"strings"

	"trippy/internal/core/domain/model/kernel"
	"trippy/internal/pkg/errs"
	"trippy/internal/pkg/guard"
)

var (
	ErrGetOrderByDestinationQueryIsNotConstructed = errors.New(
		"GetOrderByDestinationQuery must be created via NewGetOrderByDestinationQuery constructor",
	)
)

// GetOrderByDestinationQuery finds a user's order through its package's destination.
type GetOrderByDestinationQuery struct {
	username    string
	destination kernel.Destination
	guard       guard.ConstructorGuard
}

// NewGetOrderByDestinationQuery creates the query.
func NewGetOrderByDestinationQuery(username, destination string) (GetOrderByDestinationQuery, error) {
	d, err := kernel.NewDestination(destination)
	if strings.TrimSpace(username) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("username"))
	}
	if err != nil {
		return GetOrderByDestinationQuery{}, err
	}
	return GetOrderByDestinationQuery{username: username, destination: d, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByDestinationQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByDestinationQueryIsNotConstructed)
}

// Username returns the order owner.
func (q GetOrderByDestinationQuery) Username() string {
	return q.username
}

// Destination returns the destination that identifies the order.
func (q GetOrderByDestinationQuery) Destination() kernel.Destination {
	return q.destination
}

// GetOrderByDestinationQueryResponse is the read model of one order.
type GetOrderByDestinationQueryResponse struct {
	OrderID     string `json:"order_id"`
	Username    string `json:"username"`
	PackageID   int64  `json:"package_id"`
	Destination string `json:"destination"`
	HotelID     *int64 `json:"hotel_id"`
	GuideID     *int64 `json:"guide_id"`
	FlightID    int64  `json:"flight_id"`
}
