package catalogrepo_test

import (
	"context"
	"testing"
	"time"

	"trippy/internal/adapters/out/postgres/catalogrepo"
	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CatalogRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *catalogrepo.GormCatalogRepository
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&catalogrepo.HotelDTO{},
		&catalogrepo.GuideDTO{},
		&catalogrepo.CarRentalDTO{},
		&catalogrepo.FlightDTO{},
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.PackageDTO{},
	))
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE hotels, guides, car_rentals, flights, restaurants, packages",
	).Error)
	suite.repository = catalogrepo.NewGormCatalogRepository(suite.db)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetPackage_ExistingRow_ReturnsUncomposedPackage() {
	ctx := context.Background()
	hotelID := int64(10)
	suite.create(&catalogrepo.HotelDTO{ID: hotelID, Name: "Hilton", Destination: "Paris"})
	suite.create(&catalogrepo.PackageDTO{
		ID: 1, Title: "Paris Getaway", Country: "France", Destination: "Paris",
		Duration: 5, Price: 1200, NumOfSales: 42, HotelID: &hotelID,
	})

	pkg, err := suite.repository.GetPackage(ctx, 1)

	suite.Require().NoError(err)
	suite.Equal("Paris Getaway", pkg.Title)
	suite.Equal(int64(42), pkg.Sales)
	suite.Require().NotNil(pkg.HotelID)
	suite.Equal(hotelID, *pkg.HotelID)
	suite.Nil(pkg.GuideID)
	suite.False(pkg.Hotel.IsPresent())
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGet_MissingRows_ReturnNotFound() {
	ctx := context.Background()

	testCases := []struct {
		name string
		get  func() error
	}{
		{"package", func() error { _, err := suite.repository.GetPackage(ctx, 99); return err }},
		{"hotel", func() error { _, err := suite.repository.GetHotel(ctx, 99); return err }},
		{"guide", func() error { _, err := suite.repository.GetGuide(ctx, 99); return err }},
		{"car rental", func() error { _, err := suite.repository.GetCarRental(ctx, 99); return err }},
		{"flight", func() error { _, err := suite.repository.GetFlight(ctx, 99); return err }},
		{"first by destination", func() error {
			_, err := suite.repository.FirstPackageByDestination(ctx, "Atlantis")
			return err
		}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.get()
			var notFound *errs.ObjectNotFoundError
			suite.Require().ErrorAs(err, &notFound)
		})
	}
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestListPopularPackages_RanksBySalesAndSkipsExcluded() {
	ctx := context.Background()
	for _, dto := range []catalogrepo.PackageDTO{
		{ID: 1, Title: "A", NumOfSales: 10},
		{ID: 2, Title: "B", NumOfSales: 50},
		{ID: 3, Title: "C", NumOfSales: 30},
		{ID: 4, Title: "D", NumOfSales: 30},
		{ID: 5, Title: "E", NumOfSales: 5},
	} {
		suite.create(&dto)
	}

	page1, err := suite.repository.ListPopularPackages(ctx, 3, nil)
	suite.Require().NoError(err)
	suite.Equal([]int64{2, 3, 4}, ids(page1))

	page2, err := suite.repository.ListPopularPackages(ctx, 3, ids(page1))
	suite.Require().NoError(err)
	suite.Equal([]int64{1, 5}, ids(page2))

	page3, err := suite.repository.ListPopularPackages(ctx, 3, []int64{1, 2, 3, 4, 5})
	suite.Require().NoError(err)
	suite.Empty(page3)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestListPackagesByCountryAndDestination() {
	ctx := context.Background()
	suite.create(&catalogrepo.PackageDTO{ID: 3, Country: "France", Destination: "Nice"})
	suite.create(&catalogrepo.PackageDTO{ID: 1, Country: "France", Destination: "Paris"})
	suite.create(&catalogrepo.PackageDTO{ID: 2, Country: "Italy", Destination: "Rome"})
	suite.create(&catalogrepo.PackageDTO{ID: 4, Country: "France", Destination: "Paris"})

	france, err := suite.repository.ListPackagesByCountry(ctx, "France")
	suite.Require().NoError(err)
	suite.Equal([]int64{1, 3, 4}, ids(france))

	paris, err := suite.repository.ListPackagesByDestination(ctx, "Paris")
	suite.Require().NoError(err)
	suite.Equal([]int64{1, 4}, ids(paris))

	first, err := suite.repository.FirstPackageByDestination(ctx, "Paris")
	suite.Require().NoError(err)
	suite.Equal(int64(1), first.ID)

	none, err := suite.repository.ListPackagesByCountry(ctx, "Spain")
	suite.Require().NoError(err)
	suite.Empty(none)

	all, err := suite.repository.ListAllPackages(ctx)
	suite.Require().NoError(err)
	suite.Equal([]int64{1, 2, 3, 4}, ids(all))
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestResourcePools() {
	ctx := context.Background()
	departure := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	suite.create(&catalogrepo.GuideDTO{ID: 1, Name: "Jean", Email: "jean@example.com"})
	suite.create(&catalogrepo.GuideDTO{ID: 2, Name: "Marie"})
	suite.create(&catalogrepo.HotelDTO{ID: 1, Name: "Ritz", Destination: "Paris"})
	suite.create(&catalogrepo.HotelDTO{ID: 2, Name: "Colosseo", Destination: "Rome"})
	suite.create(&catalogrepo.FlightDTO{
		ID: 7, Carrier: "AF", FlightNumber: "AF1234", Origin: "JFK", Destination: "CDG",
		DepartureAt: departure, ArrivalAt: departure.Add(7 * time.Hour),
	})
	suite.create(&catalogrepo.RestaurantDTO{ID: 1, Name: "Le Petit", Destination: "Paris"})
	suite.create(&catalogrepo.CarRentalDTO{ID: 3, Name: "Hertz", Price: 45})

	guides, err := suite.repository.ListGuides(ctx)
	suite.Require().NoError(err)
	suite.Equal([]catalog.Guide{
		{ID: 1, Name: "Jean", Email: "jean@example.com"},
		{ID: 2, Name: "Marie"},
	}, guides)

	hotels, err := suite.repository.ListHotelsByDestination(ctx, "Paris")
	suite.Require().NoError(err)
	suite.Require().Len(hotels, 1)
	suite.Equal("Ritz", hotels[0].Name)

	flights, err := suite.repository.ListFlights(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(flights, 1)
	suite.Equal("AF1234", flights[0].FlightNumber)
	suite.True(departure.Equal(flights[0].DepartureAt))

	flight, err := suite.repository.GetFlight(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal("CDG", flight.Destination)

	restaurants, err := suite.repository.ListRestaurantsByDestination(ctx, "Paris")
	suite.Require().NoError(err)
	suite.Equal([]catalog.Restaurant{{ID: 1, Name: "Le Petit", Destination: "Paris"}}, restaurants)

	rental, err := suite.repository.GetCarRental(ctx, 3)
	suite.Require().NoError(err)
	suite.Equal("Hertz", rental.Name)
}

func (suite *CatalogRepositoryIntegrationTestSuite) create(value any) {
	suite.Require().NoError(suite.db.Create(value).Error)
}

func ids(pkgs []*catalog.Package) []int64 {
	out := make([]int64, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, p.ID)
	}
	return out
}

func TestCatalogRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryIntegrationTestSuite))
}
