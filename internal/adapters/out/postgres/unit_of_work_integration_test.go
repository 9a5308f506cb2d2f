package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "trippy/internal/adapters/out/postgres"
	"trippy/internal/adapters/out/postgres/catalogrepo"
	"trippy/internal/core/application/usecases/commands"
	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/model/kernel"
	"trippy/internal/core/domain/model/order"
	"trippy/internal/core/domain/model/user"
	"trippy/internal/core/domain/services"
	"trippy/internal/core/ports"
	"trippy/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work and the booking
// handlers against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, users, packages, hotels, guides, car_rentals, flights, restaurants, infos",
	).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.CatalogRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.UserRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	u, err := user.NewUser("alice", "s3cret")
	suite.Require().NoError(err)
	o := createTestOrder("alice", 1)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UserRepository().Add(ctx, u))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	inTx, err := uow.OrderRepository().GetByUserAndPackage(ctx, "alice", 1)
	suite.Require().NoError(err)
	suite.True(o.IsEqual(inTx))

	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.UserRepository().Get(ctx, "alice")
	suite.Require().NoError(err)
	_, err = fresh.OrderRepository().GetByUserAndPackage(ctx, "alice", 1)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, createTestOrder("alice", 1)))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().GetByUserAndPackage(ctx, "alice", 1)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DuplicateOrderInsideTransaction_ReturnsConflict() {
	ctx := context.Background()
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, createTestOrder("alice", 1)))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	err := uow.OrderRepository().Add(ctx, createTestOrder("alice", 1))

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

// TestBookingScenario places an order for a package and swaps its guide twice
// with a two-guide pool, so every draw after the first has exactly one candidate.
func (suite *UnitOfWorkIntegrationTestSuite) TestBookingScenario() {
	ctx := context.Background()
	one := int64(1)
	suite.seed(
		&catalogrepo.HotelDTO{ID: 1, Name: "Ritz", Destination: "Paris"},
		&catalogrepo.GuideDTO{ID: 1, Name: "Jean"},
		&catalogrepo.CarRentalDTO{ID: 1, Name: "Hertz"},
		&catalogrepo.FlightDTO{ID: 5, Carrier: "AF", FlightNumber: "AF1"},
		&catalogrepo.PackageDTO{
			ID: 1, Title: "Paris Getaway", Destination: "Paris",
			HotelID: &one, GuideID: &one, CarRentalID: &one,
		},
	)

	booking := bookingFactory{factory: suite.factory}
	selector := services.NewAvailabilitySelector(nil)

	createHandler := commands.NewCreateOrderCommandHandler(booking, selector)
	createCmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "alice", 1)
	suite.Require().NoError(err)

	created, err := createHandler.Handle(ctx, createCmd)
	suite.Require().NoError(err)
	suite.Equal(int64(1), *created.HotelID())
	suite.Equal(int64(1), *created.GuideID())
	suite.Equal(int64(5), created.FlightID())

	suite.seed(&catalogrepo.GuideDTO{ID: 2, Name: "Marie"})

	reassign := commands.NewReassignGuideCommandHandler(booking, selector)
	reassignCmd, err := commands.NewReassignGuideCommand("alice", "Paris")
	suite.Require().NoError(err)

	guide, err := reassign.Handle(ctx, reassignCmd)
	suite.Require().NoError(err)
	suite.Equal(int64(2), guide.ID)
	suite.Equal(int64(2), *suite.storedOrder("alice", 1).GuideID())

	guide, err = reassign.Handle(ctx, reassignCmd)
	suite.Require().NoError(err)
	suite.Equal(int64(1), guide.ID)
	suite.Equal(int64(1), *suite.storedOrder("alice", 1).GuideID())

	again, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "alice", 1)
	suite.Require().NoError(err)
	_, err = createHandler.Handle(ctx, again)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	tpl, err := suite.factory.Create().CatalogRepository().GetPackage(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(int64(1), *tpl.GuideID, "reassignment must not touch the package template")
}

func (suite *UnitOfWorkIntegrationTestSuite) seed(rows ...any) {
	for _, row := range rows {
		suite.Require().NoError(suite.db.Create(row).Error)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) storedOrder(username string, packageID int64) *order.Order {
	o, err := suite.factory.Create().OrderRepository().GetByUserAndPackage(context.Background(), username, packageID)
	suite.Require().NoError(err)
	return o
}

type bookingFactory struct {
	factory ports.UnitOfWorkFactory
}

func (b bookingFactory) Create() commands.BookingUoW {
	return b.factory.Create()
}

func createTestOrder(username string, packageID int64) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), username, &catalog.Package{ID: packageID}, 7)
	if err != nil {
		panic(err)
	}
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
