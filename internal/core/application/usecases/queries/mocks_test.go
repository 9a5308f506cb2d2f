package queries_test

import (
	"context"

	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/model/order"
	"trippy/internal/core/domain/model/user"
	"trippy/internal/core/ports"
	"trippy/internal/pkg/errs"

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

type MockUserReader struct{ mock.Mock }

func (m *MockUserReader) Get(ctx context.Context, name string) (*user.User, error) {
	args := m.Called(ctx, name)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

type firstPolicy struct{}

func (firstPolicy) Choose(int) int { return 0 }

func ptr(v int64) *int64 { return &v }

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) GetByUserAndPackage(ctx context.Context, username string, packageID int64) (*order.Order, error) {
	args := m.Called(ctx, username, packageID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderReader) ListPackagesForUser(ctx context.Context, username string) ([]ports.OrderedPackage, error) {
	args := m.Called(ctx, username)
	rows, _ := args.Get(0).([]ports.OrderedPackage)
	return rows, args.Error(1)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(username string) (string, error) {
	args := m.Called(username)
	return args.String(0), args.Error(1)
}

type recordingFaults struct {
	faults []*errs.IntegrityFaultError
}

func (r *recordingFaults) RecordIntegrityFault(_ context.Context, f *errs.IntegrityFaultError) {
	r.faults = append(r.faults, f)
}
