package commands_test

import (
	"context"

	"trippy/internal/core/application/usecases/commands"
	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/model/order"
	"trippy/internal/core/domain/model/user"
	"trippy/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) GetHotel(ctx context.Context, id int64) (catalog.Hotel, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Hotel), args.Error(1)
}

func (m *MockCatalogRepository) GetGuide(ctx context.Context, id int64) (catalog.Guide, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Guide), args.Error(1)
}

func (m *MockCatalogRepository) GetCarRental(ctx context.Context, id int64) (catalog.CarRental, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.CarRental), args.Error(1)
}

func (m *MockCatalogRepository) GetPackage(ctx context.Context, id int64) (*catalog.Package, error) {
	args := m.Called(ctx, id)
	pkg, _ := args.Get(0).(*catalog.Package)
	return pkg, args.Error(1)
}

func (m *MockCatalogRepository) GetFlight(ctx context.Context, id int64) (catalog.Flight, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Flight), args.Error(1)
}

func (m *MockCatalogRepository) ListPopularPackages(ctx context.Context, limit int, excludeIDs []int64) ([]*catalog.Package, error) {
	args := m.Called(ctx, limit, excludeIDs)
	pkgs, _ := args.Get(0).([]*catalog.Package)
	return pkgs, args.Error(1)
}

func (m *MockCatalogRepository) ListPackagesByCountry(ctx context.Context, country string) ([]*catalog.Package, error) {
	args := m.Called(ctx, country)
	pkgs, _ := args.Get(0).([]*catalog.Package)
	return pkgs, args.Error(1)
}

func (m *MockCatalogRepository) ListPackagesByDestination(ctx context.Context, destination string) ([]*catalog.Package, error) {
	args := m.Called(ctx, destination)
	pkgs, _ := args.Get(0).([]*catalog.Package)
	return pkgs, args.Error(1)
}

func (m *MockCatalogRepository) FirstPackageByDestination(ctx context.Context, destination string) (*catalog.Package, error) {
	args := m.Called(ctx, destination)
	pkg, _ := args.Get(0).(*catalog.Package)
	return pkg, args.Error(1)
}

func (m *MockCatalogRepository) ListAllPackages(ctx context.Context) ([]*catalog.Package, error) {
	args := m.Called(ctx)
	pkgs, _ := args.Get(0).([]*catalog.Package)
	return pkgs, args.Error(1)
}

func (m *MockCatalogRepository) ListGuides(ctx context.Context) ([]catalog.Guide, error) {
	args := m.Called(ctx)
	guides, _ := args.Get(0).([]catalog.Guide)
	return guides, args.Error(1)
}

func (m *MockCatalogRepository) ListHotelsByDestination(ctx context.Context, destination string) ([]catalog.Hotel, error) {
	args := m.Called(ctx, destination)
	hotels, _ := args.Get(0).([]catalog.Hotel)
	return hotels, args.Error(1)
}

func (m *MockCatalogRepository) ListFlights(ctx context.Context) ([]catalog.Flight, error) {
	args := m.Called(ctx)
	flights, _ := args.Get(0).([]catalog.Flight)
	return flights, args.Error(1)
}

func (m *MockCatalogRepository) ListRestaurantsByDestination(ctx context.Context, destination string) ([]catalog.Restaurant, error) {
	args := m.Called(ctx, destination)
	restaurants, _ := args.Get(0).([]catalog.Restaurant)
	return restaurants, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByUserAndPackage(ctx context.Context, username string, packageID int64) (*order.Order, error) {
	args := m.Called(ctx, username, packageID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListPackagesForUser(ctx context.Context, username string) ([]ports.OrderedPackage, error) {
	args := m.Called(ctx, username)
	rows, _ := args.Get(0).([]ports.OrderedPackage)
	return rows, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, username string, packageID int64) (int64, error) {
	args := m.Called(ctx, username, packageID)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, name string) (*user.User, error) {
	args := m.Called(ctx, name)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

// MockUoW satisfies every unit of work flavour the handlers depend on.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	args := m.Called()
	return args.Get(0).(commands.BookingUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type firstPolicy struct{}

func (firstPolicy) Choose(int) int { return 0 }

func ptr(v int64) *int64 { return &v }
