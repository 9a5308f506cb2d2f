package commands_test

import (
	"errors"
	"testing"

	"trippy/internal/core/application/usecases/commands"
	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/model/kernel"
	"trippy/internal/core/domain/model/order"
	"trippy/internal/core/domain/services"
	"trippy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderHandler(factory commands.BookingUoWFactory) commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(factory, services.NewAvailabilitySelector(firstPolicy{}))
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "alice", 1)
	pkg := &catalog.Package{ID: 1, HotelID: ptr(10), GuideID: ptr(20), CarRentalID: ptr(30)}
	flights := []catalog.Flight{{ID: 5}, {ID: 6}}

	catalogRepo := new(MockCatalogRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetPackage", ctx, int64(1)).Return(pkg, nil).Once(),
		catalogRepo.On("ListFlights", ctx).Return(flights, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(factory)
	o, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, o.ID().IsEqual(cmd.OrderID()))
	assert.Equal(t, "alice", o.Username())
	assert.Equal(t, int64(10), *o.HotelID())
	assert.Equal(t, int64(20), *o.GuideID())
	assert.Equal(t, int64(5), o.FlightID())
	catalogRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_PinsPackageSnapshot(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "alice", 1)
	pkg := &catalog.Package{ID: 1, HotelID: ptr(10), GuideID: ptr(20)}

	catalogRepo := new(MockCatalogRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("CatalogRepository").Return(catalogRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	catalogRepo.On("GetPackage", ctx, int64(1)).Return(pkg, nil)
	catalogRepo.On("ListFlights", ctx).Return([]catalog.Flight{{ID: 5}}, nil)

	var stored *order.Order
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*order.Order) }).
		Return(nil)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow)

	h := newCreateOrderHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	*pkg.HotelID = 99
	pkg.GuideID = ptr(98)

	require.NotNil(t, stored)
	assert.Equal(t, int64(10), *stored.HotelID())
	assert.Equal(t, int64(20), *stored.GuideID())
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockBookingUoWFactory)
	h := newCreateOrderHandler(factory)

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "alice", 1)

	uow := new(MockUoW)
	factory := new(MockBookingUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := newCreateOrderHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}

func TestCreateOrderCommandHandler_Handle_PackageNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "alice", 42)

	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetPackage", ctx, int64(42)).
			Return(nil, errs.NewObjectNotFoundError("package", int64(42))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NoFlights(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "alice", 1)

	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetPackage", ctx, int64(1)).Return(&catalog.Package{ID: 1}, nil).Once(),
		catalogRepo.On("ListFlights", ctx).Return([]catalog.Flight{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnavailable)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DuplicateOrder(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "alice", 1)

	catalogRepo := new(MockCatalogRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetPackage", ctx, int64(1)).Return(&catalog.Package{ID: 1}, nil).Once(),
		catalogRepo.On("ListFlights", ctx).Return([]catalog.Flight{{ID: 5}}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Return(errs.NewObjectAlreadyExistsError("order", "alice/1")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "alice", 1)

	catalogRepo := new(MockCatalogRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetPackage", ctx, int64(1)).Return(&catalog.Package{ID: 1}, nil).Once(),
		catalogRepo.On("ListFlights", ctx).Return([]catalog.Flight{{ID: 5}}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(factory)
	o, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	assert.Nil(t, o)
}
