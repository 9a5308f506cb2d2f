package cmd

import (
	"trippy/internal/adapters/in/http"
	"trippy/internal/adapters/out/postgres"
	"trippy/internal/core/application/usecases/commands"
	"trippy/internal/core/application/usecases/queries"
	"trippy/internal/core/domain/services"
	"trippy/internal/core/ports"
	"trippy/internal/jobs"
	"trippy/internal/pkg/logger"
	"trippy/internal/pkg/metrics"
	"trippy/internal/pkg/token"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	selector   services.AvailabilitySelector
	tokens     *token.Issuer
	metrics    *metrics.Metrics
	logger     logger.Logger
	faults     LoggingFaultRecorder
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, log logger.Logger) (CompositionRoot, error) {
	tokens, err := token.NewIssuer(config.JWTSecret, config.JWTTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	m := metrics.NewMetrics("trippy")
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		selector:   services.NewAvailabilitySelector(nil),
		tokens:     tokens,
		metrics:    m,
		logger:     log,
		faults:     NewLoggingFaultRecorder(log, m),
	}, nil
}

func (c *CompositionRoot) bookingUoWFactory() commands.BookingUoWFactory {
	return FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.bookingUoWFactory(), c.selector)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateReassignGuideCommandHandler() commands.ReassignGuideCommandHandler {
	return commands.NewReassignGuideCommandHandler(c.bookingUoWFactory(), c.selector)
}

func (c *CompositionRoot) CreateReassignHotelCommandHandler() commands.ReassignHotelCommandHandler {
	return commands.NewReassignHotelCommandHandler(c.bookingUoWFactory())
}

func (c *CompositionRoot) CreateReassignFlightCommandHandler() commands.ReassignFlightCommandHandler {
	return commands.NewReassignFlightCommandHandler(c.bookingUoWFactory())
}

func (c *CompositionRoot) CreateGetCompanyInfoQueryHandler() queries.GetCompanyInfoQueryHandler {
	return queries.NewGetCompanyInfoQueryHandler(c.gormDB)
}

// Read-only handlers run outside a transaction, so they share a unit of work
// that never begins one.
func (c *CompositionRoot) readers() ports.UnitOfWork {
	return c.uowFactory.Create()
}

func (c *CompositionRoot) CreateAuditPackageIntegrityQueryHandler() queries.AuditPackageIntegrityQueryHandler {
	uow := c.readers()
	return queries.NewAuditPackageIntegrityQueryHandler(uow.CatalogRepository())
}

func (c *CompositionRoot) CreateAuthenticateUserQueryHandler() (queries.AuthenticateUserQueryHandler, error) {
	uow := c.readers()
	return queries.NewAuthenticateUserQueryHandler(uow.UserRepository(), c.tokens)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAuditPackageIntegrityQueryHandler(),
		c.faults,
		c.config.IntegrityAuditSchedule,
		c.logger,
	)
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() (*http.Server, error) {
	uow := c.readers()
	catalogRepo := uow.CatalogRepository()
	orderRepo := uow.OrderRepository()

	authenticate, err := c.CreateAuthenticateUserQueryHandler()
	if err != nil {
		return nil, err
	}

	createOrder := c.CreateCreateOrderCommandHandler()
	cancelOrder := c.CreateCancelOrderCommandHandler()
	registerUser := c.CreateRegisterUserCommandHandler()
	reassignGuide := c.CreateReassignGuideCommandHandler()
	reassignHotel := c.CreateReassignHotelCommandHandler()
	reassignFlight := c.CreateReassignFlightCommandHandler()

	handlers := http.Handlers{
		CompanyInfo:           c.CreateGetCompanyInfoQueryHandler(),
		PopularPackages:       queries.NewGetPopularPackagesQueryHandler(catalogRepo, c.faults),
		PackagesByCountry:     queries.NewGetPackagesByCountryQueryHandler(catalogRepo, c.faults),
		PackagesByDestination: queries.NewGetPackagesByDestinationQueryHandler(catalogRepo, c.faults),
		AvailableGuide:        queries.NewGetAvailableGuideQueryHandler(catalogRepo, c.selector),
		AvailableHotel:        queries.NewGetAvailableHotelQueryHandler(catalogRepo, c.selector),
		AvailableFlight:       queries.NewGetAvailableFlightQueryHandler(catalogRepo, c.selector),
		AlternateRestaurant:   queries.NewGetAlternateRestaurantQueryHandler(catalogRepo, c.selector),
		RegisterUser:          &registerUser,
		AuthenticateUser:      authenticate,
		UserPackages:          queries.NewGetUserPackagesQueryHandler(orderRepo, catalogRepo, c.faults),
		OrderByDestination:    queries.NewGetOrderByDestinationQueryHandler(catalogRepo, orderRepo),
		CreateOrder:           &createOrder,
		CancelOrder:           &cancelOrder,
		ReassignGuide:         &reassignGuide,
		ReassignHotel:         &reassignHotel,
		ReassignFlight:        &reassignFlight,
	}

	return http.NewServer(handlers, c.tokens, c.metrics, c.logger), nil
}

func (c *CompositionRoot) RouterConfig() http.RouterConfig {
	return http.RouterConfig{AllowedOrigins: c.config.CORSAllowedOrigins}
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
