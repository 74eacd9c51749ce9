package commands

import (
	"context"
	"errors"
	"time"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/office"
	"parcelnet/internal/core/domain/model/order"
	"parcelnet/internal/core/domain/services"
	"parcelnet/internal/core/ports"
	"parcelnet/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order placement:
// it resolves the pickup and delivery offices from the administrative areas,
// plans the route once, and persists the new order with its initial event.
//
// Office resolution cascades per side: delivery office by ward, then
// delivery office by province, then distribution hub by province, then the
// sorting center. A failed cascade fails the whole command; a missing hub
// or sorting center on the route fails it too. No partial order is stored.
type CreateOrderCommandHandler struct {
	uowFactory IntakeUoWFactory
	planner    services.RoutePlanner
}

// CreateOrderResult returns the identifiers a caller needs to follow the
// shipment after placement.
type CreateOrderResult struct {
	OrderID      kernel.UUID
	TrackingCode string
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory IntakeUoWFactory, planner services.RoutePlanner) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
	}
}

// Handle processes the order placement command. The route plan is computed
// exactly once here and stored immutably with the order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	officeRepo := uow.OfficeRepository()

	pickup, err := h.resolveOffice(ctx, officeRepo, cmd.PickupWardID(), cmd.PickupProvinceID())
	if err != nil {
		return CreateOrderResult{}, err
	}
	delivery, err := h.resolveOffice(ctx, officeRepo, cmd.DeliveryWardID(), cmd.DeliveryProvinceID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	plan, err := h.planRoute(ctx, officeRepo, cmd, pickup, delivery)
	if err != nil {
		return CreateOrderResult{}, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.SellerID(), cmd.CustomerID(),
		cmd.Products(), cmd.IsCOD(), cmd.CODAmount(), cmd.ShipFee(), cmd.TotalWeight(),
		pickup.ID(), delivery.ID(), plan, time.Now(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:      newOrder.ID(),
		TrackingCode: newOrder.TrackingCode(),
	}, nil
}

func (h *CreateOrderCommandHandler) planRoute(
	ctx context.Context,
	officeRepo ports.OfficeRepository,
	cmd CreateOrderCommand,
	pickup, delivery *office.Office,
) (order.RoutePlan, error) {
	fromHub, err := officeRepo.FindHubForProvince(ctx, cmd.PickupProvinceID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, services.ErrTopologyIncomplete
		}
		return nil, err
	}

	var toHub, sortingCenter *office.Office
	if !cmd.PickupProvinceID().IsEqual(cmd.DeliveryProvinceID()) {
		toHub, err = officeRepo.FindHubForProvince(ctx, cmd.DeliveryProvinceID())
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, services.ErrTopologyIncomplete
			}
			return nil, err
		}
		sortingCenter, err = officeRepo.FindSortingCenter(ctx)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, services.ErrTopologyIncomplete
			}
			return nil, err
		}
	}

	return h.planner.Plan(pickup, delivery, fromHub, toHub, sortingCenter)
}

// resolveOffice walks the assignment cascade for one side of the shipment.
func (h *CreateOrderCommandHandler) resolveOffice(
	ctx context.Context,
	officeRepo ports.OfficeRepository,
	wardID *kernel.UUID,
	provinceID kernel.UUID,
) (*office.Office, error) {
	if wardID != nil {
		o, err := officeRepo.FindDeliveryOfficeForWard(ctx, *wardID)
		if err == nil {
			return o, nil
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
	}

	o, err := officeRepo.FindDeliveryOfficeForProvince(ctx, provinceID)
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	o, err = officeRepo.FindHubForProvince(ctx, provinceID)
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	o, err = officeRepo.FindSortingCenter(ctx)
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	return nil, services.ErrOfficeNotFound
}
