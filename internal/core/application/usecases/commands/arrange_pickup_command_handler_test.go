package commands_test

import (
	"testing"
	"time"

	"parcelnet/internal/core/application/usecases/commands"
	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/order"
	"parcelnet/internal/core/domain/model/task"
	"parcelnet/internal/core/domain/model/zone"
	"parcelnet/internal/core/ports"
	"parcelnet/internal/pkg/errs"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatchFixture struct {
	order     *order.Order
	seller    *ports.Seller
	zone      *zone.ShipperZone
	shipper   *ports.Shipper
	orderRepo *MockOrderRepository
	offices   *MockOfficeRepository
	taskRepo  *MockTaskRepository
	zones     *MockZoneRepository
	shippers  *MockShipperRegistry
	sellers   *MockSellerDirectory
	uow       *MockDispatchUoW
	factory   *MockDispatchUoWFactory
}

func newDispatchFixture(t *testing.T) *dispatchFixture {
	t.Helper()

	f := &dispatchFixture{
		order:     newOrderFixture(t).order,
		orderRepo: new(MockOrderRepository),
		offices:   new(MockOfficeRepository),
		taskRepo:  new(MockTaskRepository),
		zones:     new(MockZoneRepository),
		shippers:  new(MockShipperRegistry),
		sellers:   new(MockSellerDirectory),
		uow:       new(MockDispatchUoW),
		factory:   new(MockDispatchUoWFactory),
	}

	location := newGeoPoint(t, 0.5, 0.5)
	f.seller = &ports.Seller{ID: f.order.SellerID(), Name: "Shopfront", Location: &location}

	boundary := orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}
	z, err := zone.NewShipperZone(kernel.NewUUID(), "district-1", boundary, true)
	require.NoError(t, err)
	f.zone = z

	f.shipper = &ports.Shipper{
		ID:          kernel.NewUUID(),
		ZoneID:      z.ID(),
		VehicleType: "bike",
		Active:      true,
	}

	f.uow.On("Begin", mock.Anything).Return(nil)
	f.uow.On("Rollback", mock.Anything).Return(nil)
	f.uow.On("OrderRepository").Return(f.orderRepo)
	f.uow.On("OfficeRepository").Return(f.offices)
	f.uow.On("TaskRepository").Return(f.taskRepo)
	f.uow.On("ZoneRepository").Return(f.zones)
	f.uow.On("ShipperRegistry").Return(f.shippers)
	f.uow.On("SellerDirectory").Return(f.sellers)
	f.factory.On("Create").Return(f.uow)

	return f
}

func TestArrangePickupCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newDispatchFixture(t)
	cmd, err := commands.NewArrangePickupCommand([]kernel.UUID{f.order.ID()})
	require.NoError(t, err)

	f.orderRepo.On("Get", mock.Anything, f.order.ID()).Return(f.order, nil).Once()
	f.sellers.On("Get", mock.Anything, f.order.SellerID()).Return(f.seller, nil).Once()
	f.zones.On("FindContaining", mock.Anything, *f.seller.Location).Return(f.zone, nil).Once()
	f.shippers.On("FindActiveInZone", mock.Anything, f.zone.ID(), "bike").Return(f.shipper, nil).Once()
	f.taskRepo.On("Add", mock.Anything, mock.MatchedBy(func(st *task.ShipperTask) bool {
		return st.TaskType() == task.TypePickup &&
			st.Status() == task.Pending &&
			st.ShipperID().IsEqual(f.shipper.ID) &&
			st.OrderID().IsEqual(f.order.ID())
	})).Return(nil).Once()
	f.orderRepo.On("Update", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
		return o.Status() == order.InTransit && o.CurrentType() == order.EventWaitingPickup
	})).Return(nil).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewArrangePickupCommandHandler(f.factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, result.Arranged, 1)
	assert.Empty(t, result.Failed)
	assert.True(t, result.Arranged[0].ShipperID.IsEqual(f.shipper.ID))
	assert.True(t, result.Arranged[0].ZoneID.IsEqual(f.zone.ID()))
	f.taskRepo.AssertExpectations(t)
	f.orderRepo.AssertExpectations(t)
}

func TestArrangePickupCommandHandler_Handle_FailureReasons(t *testing.T) {
	ctx := t.Context()

	t.Run("should report missing seller location", func(t *testing.T) {
		f := newDispatchFixture(t)
		cmd, _ := commands.NewArrangePickupCommand([]kernel.UUID{f.order.ID()})

		f.orderRepo.On("Get", mock.Anything, f.order.ID()).Return(f.order, nil).Once()
		f.sellers.On("Get", mock.Anything, f.order.SellerID()).
			Return(&ports.Seller{ID: f.order.SellerID()}, nil).Once()

		h := commands.NewArrangePickupCommandHandler(f.factory)
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, commands.FailSellerLocationMissing, result.Failed[0].Reason)
	})

	t.Run("should report uncovered location", func(t *testing.T) {
		f := newDispatchFixture(t)
		cmd, _ := commands.NewArrangePickupCommand([]kernel.UUID{f.order.ID()})

		f.orderRepo.On("Get", mock.Anything, f.order.ID()).Return(f.order, nil).Once()
		f.sellers.On("Get", mock.Anything, f.order.SellerID()).Return(f.seller, nil).Once()
		f.zones.On("FindContaining", mock.Anything, *f.seller.Location).
			Return(nil, errs.NewObjectNotFoundError("zone", "point")).Once()

		h := commands.NewArrangePickupCommandHandler(f.factory)
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, commands.FailNoZoneForLocation, result.Failed[0].Reason)
	})

	t.Run("should report zone without shippers", func(t *testing.T) {
		f := newDispatchFixture(t)
		cmd, _ := commands.NewArrangePickupCommand([]kernel.UUID{f.order.ID()})

		f.orderRepo.On("Get", mock.Anything, f.order.ID()).Return(f.order, nil).Once()
		f.sellers.On("Get", mock.Anything, f.order.SellerID()).Return(f.seller, nil).Once()
		f.zones.On("FindContaining", mock.Anything, *f.seller.Location).Return(f.zone, nil).Once()
		f.shippers.On("FindActiveInZone", mock.Anything, f.zone.ID(), "bike").
			Return(nil, errs.NewObjectNotFoundError("shipper", f.zone.ID())).Once()

		h := commands.NewArrangePickupCommandHandler(f.factory)
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, commands.FailNoShipperAvailable, result.Failed[0].Reason)
	})

	t.Run("should report non pending order", func(t *testing.T) {
		f := newDispatchFixture(t)
		require.NoError(t, f.order.ArrangePickup(kernel.NewUUID(), time.Now()))
		cmd, _ := commands.NewArrangePickupCommand([]kernel.UUID{f.order.ID()})

		f.orderRepo.On("Get", mock.Anything, f.order.ID()).Return(f.order, nil).Once()

		h := commands.NewArrangePickupCommandHandler(f.factory)
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, commands.FailOrderNotPending, result.Failed[0].Reason)
	})

	t.Run("should report unknown order", func(t *testing.T) {
		f := newDispatchFixture(t)
		missingID := kernel.NewUUID()
		cmd, _ := commands.NewArrangePickupCommand([]kernel.UUID{missingID})

		f.orderRepo.On("Get", mock.Anything, missingID).
			Return(nil, errs.NewObjectNotFoundError("order", missingID)).Once()

		h := commands.NewArrangePickupCommandHandler(f.factory)
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, commands.FailOrderNotFound, result.Failed[0].Reason)
	})
}

func TestArrangePickupCommandHandler_Handle_IndependentOrders(t *testing.T) {
	ctx := t.Context()
	f := newDispatchFixture(t)
	good := f.order
	badID := kernel.NewUUID()
	cmd, err := commands.NewArrangePickupCommand([]kernel.UUID{badID, good.ID()})
	require.NoError(t, err)

	f.orderRepo.On("Get", mock.Anything, badID).
		Return(nil, errs.NewObjectNotFoundError("order", badID)).Once()
	f.orderRepo.On("Get", mock.Anything, good.ID()).Return(good, nil).Once()
	f.sellers.On("Get", mock.Anything, good.SellerID()).Return(f.seller, nil).Once()
	f.zones.On("FindContaining", mock.Anything, *f.seller.Location).Return(f.zone, nil).Once()
	f.shippers.On("FindActiveInZone", mock.Anything, f.zone.ID(), "bike").Return(f.shipper, nil).Once()
	f.taskRepo.On("Add", mock.Anything, mock.AnythingOfType("*task.ShipperTask")).Return(nil).Once()
	f.orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewArrangePickupCommandHandler(f.factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Len(t, result.Arranged, 1)
	assert.Len(t, result.Failed, 1)
}
