package http

import (
	"context"

	"trippy/internal/core/application/usecases/commands"
	"trippy/internal/core/application/usecases/queries"
	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockPopularPackages struct{ mock.Mock }

func (m *MockPopularPackages) Handle(ctx context.Context, query queries.GetPopularPackagesQuery) ([]*catalog.Package, error) {
	args := m.Called(ctx, query)
	pkgs, _ := args.Get(0).([]*catalog.Package)
	return pkgs, args.Error(1)
}

type MockAuthenticateUser struct{ mock.Mock }

func (m *MockAuthenticateUser) Handle(
	ctx context.Context,
	query queries.AuthenticateUserQuery,
) (queries.AuthenticateUserQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.AuthenticateUserQueryResponse), args.Error(1)
}

type MockCreateOrder struct{ mock.Mock }

func (m *MockCreateOrder) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockCancelOrder struct{ mock.Mock }

func (m *MockCancelOrder) Handle(ctx context.Context, cmd commands.CancelOrderCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

type MockReassignGuide struct{ mock.Mock }

func (m *MockReassignGuide) Handle(ctx context.Context, cmd commands.ReassignGuideCommand) (catalog.Guide, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(catalog.Guide), args.Error(1)
}

type MockAvailableGuide struct{ mock.Mock }

func (m *MockAvailableGuide) Handle(ctx context.Context, query queries.GetAvailableGuideQuery) (catalog.Guide, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(catalog.Guide), args.Error(1)
}

type MockAvailableHotel struct{ mock.Mock }

func (m *MockAvailableHotel) Handle(ctx context.Context, query queries.GetAvailableHotelQuery) (catalog.Hotel, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(catalog.Hotel), args.Error(1)
}

type MockAvailableFlight struct{ mock.Mock }

func (m *MockAvailableFlight) Handle(ctx context.Context, query queries.GetAvailableFlightQuery) (catalog.Flight, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(catalog.Flight), args.Error(1)
}
