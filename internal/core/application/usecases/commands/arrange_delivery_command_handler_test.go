package commands_test

import (
	"testing"
	"time"

	"parcelnet/internal/core/application/usecases/commands"
	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/order"
	"parcelnet/internal/core/domain/model/task"
	"parcelnet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// arriveAtAllStops appends an arrival at every route step so the order
// qualifies for delivery arrangement.
func arriveAtAllStops(t *testing.T, o *order.Order) {
	t.Helper()
	for _, step := range o.RoutePlan() {
		officeID := step.To
		require.NoError(t, o.ApplyEvent(order.EventArrival, &officeID, nil, "", nil, time.Now()))
	}
}

func TestArrangeDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newDispatchFixture(t)
	arriveAtAllStops(t, f.order)
	deliveryOffice := newDeliveryOffice(t, kernel.NewUUID(), kernel.NewUUID())
	cmd, err := commands.NewArrangeDeliveryCommand([]kernel.UUID{f.order.ID()})
	require.NoError(t, err)

	f.orderRepo.On("Get", mock.Anything, f.order.ID()).Return(f.order, nil).Once()
	f.offices.On("Get", mock.Anything, f.order.DeliveryOfficeID()).Return(deliveryOffice, nil).Once()
	f.zones.On("FindContaining", mock.Anything, deliveryOffice.Location()).Return(f.zone, nil).Once()
	f.shippers.On("FindActiveInZone", mock.Anything, f.zone.ID(), "bike").Return(f.shipper, nil).Once()
	f.taskRepo.On("Add", mock.Anything, mock.MatchedBy(func(st *task.ShipperTask) bool {
		return st.TaskType() == task.TypeDelivery &&
			st.Status() == task.Pending &&
			st.ShipperID().IsEqual(f.shipper.ID) &&
			st.OrderID().IsEqual(f.order.ID())
	})).Return(nil).Once()
	f.orderRepo.On("Update", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
		return o.CurrentType() == order.EventWaitingDelivery
	})).Return(nil).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewArrangeDeliveryCommandHandler(f.factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, result.Arranged, 1)
	assert.Empty(t, result.Failed)
	assert.True(t, result.Arranged[0].ShipperID.IsEqual(f.shipper.ID))
	assert.True(t, result.Arranged[0].ZoneID.IsEqual(f.zone.ID()))
	f.taskRepo.AssertExpectations(t)
	f.orderRepo.AssertExpectations(t)
}

func TestArrangeDeliveryCommandHandler_Handle_FailureReasons(t *testing.T) {
	ctx := t.Context()

	t.Run("should report order short of its delivery office", func(t *testing.T) {
		f := newDispatchFixture(t)
		cmd, _ := commands.NewArrangeDeliveryCommand([]kernel.UUID{f.order.ID()})

		f.orderRepo.On("Get", mock.Anything, f.order.ID()).Return(f.order, nil).Once()

		h := commands.NewArrangeDeliveryCommandHandler(f.factory)
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, commands.FailOrderNotAtDeliveryOffice, result.Failed[0].Reason)
	})

	t.Run("should report already arranged delivery", func(t *testing.T) {
		f := newDispatchFixture(t)
		arriveAtAllStops(t, f.order)
		require.NoError(t, f.order.ArrangeDelivery(kernel.NewUUID(), time.Now()))
		cmd, _ := commands.NewArrangeDeliveryCommand([]kernel.UUID{f.order.ID()})

		f.orderRepo.On("Get", mock.Anything, f.order.ID()).Return(f.order, nil).Once()

		h := commands.NewArrangeDeliveryCommandHandler(f.factory)
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, commands.FailDeliveryAlreadyArranged, result.Failed[0].Reason)
	})

	t.Run("should report uncovered delivery office", func(t *testing.T) {
		f := newDispatchFixture(t)
		arriveAtAllStops(t, f.order)
		deliveryOffice := newDeliveryOffice(t, kernel.NewUUID(), kernel.NewUUID())
		cmd, _ := commands.NewArrangeDeliveryCommand([]kernel.UUID{f.order.ID()})

		f.orderRepo.On("Get", mock.Anything, f.order.ID()).Return(f.order, nil).Once()
		f.offices.On("Get", mock.Anything, f.order.DeliveryOfficeID()).Return(deliveryOffice, nil).Once()
		f.zones.On("FindContaining", mock.Anything, deliveryOffice.Location()).
			Return(nil, errs.NewObjectNotFoundError("zone", "point")).Once()

		h := commands.NewArrangeDeliveryCommandHandler(f.factory)
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, commands.FailNoZoneForLocation, result.Failed[0].Reason)
	})

	t.Run("should report zone without shippers", func(t *testing.T) {
		f := newDispatchFixture(t)
		arriveAtAllStops(t, f.order)
		deliveryOffice := newDeliveryOffice(t, kernel.NewUUID(), kernel.NewUUID())
		cmd, _ := commands.NewArrangeDeliveryCommand([]kernel.UUID{f.order.ID()})

		f.orderRepo.On("Get", mock.Anything, f.order.ID()).Return(f.order, nil).Once()
		f.offices.On("Get", mock.Anything, f.order.DeliveryOfficeID()).Return(deliveryOffice, nil).Once()
		f.zones.On("FindContaining", mock.Anything, deliveryOffice.Location()).Return(f.zone, nil).Once()
		f.shippers.On("FindActiveInZone", mock.Anything, f.zone.ID(), "bike").
			Return(nil, errs.NewObjectNotFoundError("shipper", f.zone.ID())).Once()

		h := commands.NewArrangeDeliveryCommandHandler(f.factory)
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, commands.FailNoShipperAvailable, result.Failed[0].Reason)
	})

	t.Run("should report unknown order", func(t *testing.T) {
		f := newDispatchFixture(t)
		missingID := kernel.NewUUID()
		cmd, _ := commands.NewArrangeDeliveryCommand([]kernel.UUID{missingID})

		f.orderRepo.On("Get", mock.Anything, missingID).
			Return(nil, errs.NewObjectNotFoundError("order", missingID)).Once()

		h := commands.NewArrangeDeliveryCommandHandler(f.factory)
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, commands.FailOrderNotFound, result.Failed[0].Reason)
	})
}
