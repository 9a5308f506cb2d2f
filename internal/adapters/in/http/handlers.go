package http

import (
	"context"

	"trippy/internal/core/application/usecases/commands"
	"trippy/internal/core/application/usecases/queries"
	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/model/order"
	"trippy/internal/core/ports"
)

// Use case contracts consumed by the server. The command and query handlers
// satisfy them; tests substitute mocks.
type (
	CompanyInfoHandler interface {
		Handle(ctx context.Context, query queries.GetCompanyInfoQuery) (queries.GetCompanyInfoQueryResponse, error)
	}

	PopularPackagesHandler interface {
		Handle(ctx context.Context, query queries.GetPopularPackagesQuery) ([]*catalog.Package, error)
	}

	PackagesByCountryHandler interface {
		Handle(ctx context.Context, query queries.GetPackagesByCountryQuery) ([]*catalog.Package, error)
	}

	PackagesByDestinationHandler interface {
		Handle(ctx context.Context, query queries.GetPackagesByDestinationQuery) ([]*catalog.Package, error)
	}

	AvailableGuideHandler interface {
		Handle(ctx context.Context, query queries.GetAvailableGuideQuery) (catalog.Guide, error)
	}

	AvailableHotelHandler interface {
		Handle(ctx context.Context, query queries.GetAvailableHotelQuery) (catalog.Hotel, error)
	}

	AvailableFlightHandler interface {
		Handle(ctx context.Context, query queries.GetAvailableFlightQuery) (catalog.Flight, error)
	}

	AlternateRestaurantHandler interface {
		Handle(ctx context.Context, query queries.GetAlternateRestaurantQuery) (catalog.Restaurant, error)
	}

	RegisterUserHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterUserCommand) error
	}

	AuthenticateUserHandler interface {
		Handle(ctx context.Context, query queries.AuthenticateUserQuery) (queries.AuthenticateUserQueryResponse, error)
	}

	UserPackagesHandler interface {
		Handle(ctx context.Context, query queries.GetUserPackagesQuery) ([]ports.OrderedPackage, error)
	}

	OrderByDestinationHandler interface {
		Handle(
			ctx context.Context,
			query queries.GetOrderByDestinationQuery,
		) (queries.GetOrderByDestinationQueryResponse, error)
	}

	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (int64, error)
	}

	ReassignGuideHandler interface {
		Handle(ctx context.Context, cmd commands.ReassignGuideCommand) (catalog.Guide, error)
	}

	ReassignHotelHandler interface {
		Handle(ctx context.Context, cmd commands.ReassignHotelCommand) (catalog.Hotel, error)
	}

	ReassignFlightHandler interface {
		Handle(ctx context.Context, cmd commands.ReassignFlightCommand) (catalog.Flight, error)
	}
)

// Handlers groups every use case the server routes to.
type Handlers struct {
	CompanyInfo           CompanyInfoHandler
	PopularPackages       PopularPackagesHandler
	PackagesByCountry     PackagesByCountryHandler
	PackagesByDestination PackagesByDestinationHandler
	AvailableGuide        AvailableGuideHandler
	AvailableHotel        AvailableHotelHandler
	AvailableFlight       AvailableFlightHandler
	AlternateRestaurant   AlternateRestaurantHandler
	RegisterUser          RegisterUserHandler
	AuthenticateUser      AuthenticateUserHandler
	UserPackages          UserPackagesHandler
	OrderByDestination    OrderByDestinationHandler
	CreateOrder           CreateOrderHandler
	CancelOrder           CancelOrderHandler
	ReassignGuide         ReassignGuideHandler
	ReassignHotel         ReassignHotelHandler
	ReassignFlight        ReassignFlightHandler
}
