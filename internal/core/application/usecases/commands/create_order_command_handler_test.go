package commands_test

import (
	"testing"

	"parcelnet/internal/core/application/usecases/commands"
	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/order"
	"parcelnet/internal/core/domain/services"
	"parcelnet/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateOrderCommand(t *testing.T, pickupProvince, deliveryProvince kernel.UUID, pickupWard, deliveryWard *kernel.UUID) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Product{{SKU: "SKU-1", Name: "Ceramic mug", Qty: 1}},
		true, decimal.NewFromInt(150000), decimal.NewFromInt(32000), 0.8,
		pickupWard, pickupProvince, deliveryWard, deliveryProvince,
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommand_Validation(t *testing.T) {
	province := kernel.NewUUID()

	t.Run("should fail without products", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, false, decimal.Zero, decimal.Zero, 1,
			nil, province, nil, province,
		)
		require.ErrorIs(t, err, commands.ErrProductsAreRequired)
	})

	t.Run("should fail with non positive weight", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Product{{SKU: "S", Name: "N", Qty: 1}},
			false, decimal.Zero, decimal.Zero, 0,
			nil, province, nil, province,
		)
		require.ErrorIs(t, err, commands.ErrWeightIsInvalid)
	})

	t.Run("should fail with negative cod amount", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Product{{SKU: "S", Name: "N", Qty: 1}},
			true, decimal.NewFromInt(-1), decimal.Zero, 1,
			nil, province, nil, province,
		)
		require.ErrorIs(t, err, commands.ErrMoneyIsInvalid)
	})

	t.Run("should fail handler on unconstructed command", func(t *testing.T) {
		factory := new(MockIntakeUoWFactory)
		h := commands.NewCreateOrderCommandHandler(factory, services.NewRoutePlanner())

		_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

		require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestCreateOrderCommandHandler_Handle_SameProvince(t *testing.T) {
	ctx := t.Context()
	province := kernel.NewUUID()
	pickupWard := kernel.NewUUID()
	deliveryWard := kernel.NewUUID()
	cmd := validCreateOrderCommand(t, province, province, &pickupWard, &deliveryWard)

	pickupOffice := newDeliveryOffice(t, province, pickupWard)
	deliveryOffice := newDeliveryOffice(t, province, deliveryWard)
	hub := newHub(t, province)

	officeRepo := new(MockOfficeRepository)
	officeRepo.On("FindDeliveryOfficeForWard", ctx, pickupWard).Return(pickupOffice, nil).Once()
	officeRepo.On("FindDeliveryOfficeForWard", ctx, deliveryWard).Return(deliveryOffice, nil).Once()
	officeRepo.On("FindHubForProvince", ctx, province).Return(hub, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
		plan := o.RoutePlan()
		return len(plan) == 2 &&
			plan[0].From.IsEqual(pickupOffice.ID()) &&
			plan[0].To.IsEqual(hub.ID()) &&
			plan[1].To.IsEqual(deliveryOffice.ID()) &&
			o.Status() == order.Pending
	})).Return(nil).Once()

	uow := new(MockIntakeUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OfficeRepository").Return(officeRepo)
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockIntakeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewRoutePlanner())
	_, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	officeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CrossProvince(t *testing.T) {
	ctx := t.Context()
	fromProvince := kernel.NewUUID()
	toProvince := kernel.NewUUID()
	pickupWard := kernel.NewUUID()
	deliveryWard := kernel.NewUUID()
	cmd := validCreateOrderCommand(t, fromProvince, toProvince, &pickupWard, &deliveryWard)

	pickupOffice := newDeliveryOffice(t, fromProvince, pickupWard)
	deliveryOffice := newDeliveryOffice(t, toProvince, deliveryWard)
	fromHub := newHub(t, fromProvince)
	toHub := newHub(t, toProvince)
	sorting := newSortingCenter(t)

	officeRepo := new(MockOfficeRepository)
	officeRepo.On("FindDeliveryOfficeForWard", ctx, pickupWard).Return(pickupOffice, nil).Once()
	officeRepo.On("FindDeliveryOfficeForWard", ctx, deliveryWard).Return(deliveryOffice, nil).Once()
	officeRepo.On("FindHubForProvince", ctx, fromProvince).Return(fromHub, nil).Once()
	officeRepo.On("FindHubForProvince", ctx, toProvince).Return(toHub, nil).Once()
	officeRepo.On("FindSortingCenter", ctx).Return(sorting, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
		plan := o.RoutePlan()
		return len(plan) == 4 &&
			plan[1].To.IsEqual(sorting.ID()) &&
			plan[2].To.IsEqual(toHub.ID()) &&
			plan[3].To.IsEqual(deliveryOffice.ID())
	})).Return(nil).Once()

	uow := new(MockIntakeUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OfficeRepository").Return(officeRepo)
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockIntakeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewRoutePlanner())
	_, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	officeRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_OfficeCascade(t *testing.T) {
	ctx := t.Context()
	province := kernel.NewUUID()
	pickupWard := kernel.NewUUID()
	deliveryWard := kernel.NewUUID()
	cmd := validCreateOrderCommand(t, province, province, &pickupWard, &deliveryWard)

	provinceOffice := newDeliveryOffice(t, province, kernel.NewUUID())
	deliveryOffice := newDeliveryOffice(t, province, deliveryWard)
	hub := newHub(t, province)
	notFound := errs.NewObjectNotFoundError("office", pickupWard)

	officeRepo := new(MockOfficeRepository)
	officeRepo.On("FindDeliveryOfficeForWard", ctx, pickupWard).Return(nil, notFound).Once()
	officeRepo.On("FindDeliveryOfficeForProvince", ctx, province).Return(provinceOffice, nil).Once()
	officeRepo.On("FindDeliveryOfficeForWard", ctx, deliveryWard).Return(deliveryOffice, nil).Once()
	officeRepo.On("FindHubForProvince", ctx, province).Return(hub, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	uow := new(MockIntakeUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OfficeRepository").Return(officeRepo)
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockIntakeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewRoutePlanner())
	_, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	officeRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_TopologyIncomplete(t *testing.T) {
	ctx := t.Context()
	province := kernel.NewUUID()
	pickupWard := kernel.NewUUID()
	deliveryWard := kernel.NewUUID()
	cmd := validCreateOrderCommand(t, province, province, &pickupWard, &deliveryWard)

	pickupOffice := newDeliveryOffice(t, province, pickupWard)
	deliveryOffice := newDeliveryOffice(t, province, deliveryWard)

	officeRepo := new(MockOfficeRepository)
	officeRepo.On("FindDeliveryOfficeForWard", ctx, pickupWard).Return(pickupOffice, nil).Once()
	officeRepo.On("FindDeliveryOfficeForWard", ctx, deliveryWard).Return(deliveryOffice, nil).Once()
	officeRepo.On("FindHubForProvince", ctx, province).
		Return(nil, errs.NewObjectNotFoundError("hub", province)).Once()

	uow := new(MockIntakeUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OfficeRepository").Return(officeRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockIntakeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewRoutePlanner())
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrTopologyIncomplete)
	assert.True(t, uow.AssertNotCalled(t, "Commit", ctx))
}

func TestCreateOrderCommandHandler_Handle_OfficeNotFound(t *testing.T) {
	ctx := t.Context()
	province := kernel.NewUUID()
	cmd := validCreateOrderCommand(t, province, province, nil, nil)
	notFound := errs.NewObjectNotFoundError("office", province)

	officeRepo := new(MockOfficeRepository)
	officeRepo.On("FindDeliveryOfficeForProvince", ctx, province).Return(nil, notFound).Once()
	officeRepo.On("FindHubForProvince", ctx, province).Return(nil, notFound).Once()
	officeRepo.On("FindSortingCenter", ctx).Return(nil, notFound).Once()

	uow := new(MockIntakeUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OfficeRepository").Return(officeRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockIntakeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewRoutePlanner())
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrOfficeNotFound)
}
