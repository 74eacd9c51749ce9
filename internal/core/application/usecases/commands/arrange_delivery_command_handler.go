package commands

import (
	"context"
	"errors"
	"time"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/order"
	"parcelnet/internal/core/domain/model/task"
	"parcelnet/internal/pkg/errs"
)

// deliveryVehicleType is the vehicle class last-mile work is dispatched to.
const deliveryVehicleType = "bike"

const (
	// FailOrderNotAtDeliveryOffice means the parcel has not completed its
	// route yet.
	FailOrderNotAtDeliveryOffice FailReason = "order_not_at_delivery_office"
	// FailDeliveryAlreadyArranged means a delivery shipper was already
	// assigned to the order.
	FailDeliveryAlreadyArranged FailReason = "delivery_already_arranged"
)

// ArrangeDeliveryCommandHandler assigns last-mile work to shippers, the
// delivery counterpart of pickup arrangement. Per order: require a
// confirmed arrival at the final route office, resolve the delivery
// office's location, find the zone containing it, find an active bike
// shipper in that zone, create a pending delivery task, and append a
// waiting_delivery event.
//
// Each order runs in its own transaction; one order's failure never rolls
// back or blocks the others.
type ArrangeDeliveryCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewArrangeDeliveryCommandHandler creates a handler for delivery arrangement.
func NewArrangeDeliveryCommandHandler(uowFactory DispatchUoWFactory) ArrangeDeliveryCommandHandler {
	return ArrangeDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch and reports per-order outcomes. The returned
// error covers only command-level problems; per-order failures land in the
// result's Failed list.
func (h *ArrangeDeliveryCommandHandler) Handle(ctx context.Context, cmd ArrangeDeliveryCommand) (ArrangePickupResult, error) {
	if err := cmd.Validate(); err != nil {
		return ArrangePickupResult{}, err
	}

	result := ArrangePickupResult{}
	for _, orderID := range cmd.OrderIDs() {
		arranged, reason := h.arrangeOne(ctx, orderID)
		if reason != "" {
			result.Failed = append(result.Failed, FailedOrder{OrderID: orderID, Reason: reason})
			continue
		}
		result.Arranged = append(result.Arranged, arranged)
	}

	return result, nil
}

func (h *ArrangeDeliveryCommandHandler) arrangeOne(ctx context.Context, orderID kernel.UUID) (ArrangedOrder, FailReason) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ArrangedOrder{}, FailInternal
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	arrived, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ArrangedOrder{}, FailOrderNotFound
		}
		return ArrangedOrder{}, FailInternal
	}
	if !arrived.RoutePlan().IsFullyArrived(arrived.Events()) {
		return ArrangedOrder{}, FailOrderNotAtDeliveryOffice
	}
	if arrived.HasScanned(order.EventWaitingDelivery, nil, nil) {
		return ArrangedOrder{}, FailDeliveryAlreadyArranged
	}

	deliveryOffice, err := uow.OfficeRepository().Get(ctx, arrived.DeliveryOfficeID())
	if err != nil {
		return ArrangedOrder{}, FailInternal
	}

	dispatchZone, err := uow.ZoneRepository().FindContaining(ctx, deliveryOffice.Location())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ArrangedOrder{}, FailNoZoneForLocation
		}
		return ArrangedOrder{}, FailInternal
	}

	shipper, err := uow.ShipperRegistry().FindActiveInZone(ctx, dispatchZone.ID(), deliveryVehicleType)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ArrangedOrder{}, FailNoShipperAvailable
		}
		return ArrangedOrder{}, FailInternal
	}

	now := time.Now()
	zoneID := dispatchZone.ID()
	deliveryTask, err := task.NewShipperTask(
		kernel.NewUUID(), shipper.ID, arrived.ID(),
		task.TypeDelivery, shipper.VehicleType, &zoneID, now,
	)
	if err != nil {
		return ArrangedOrder{}, FailInternal
	}

	if err = arrived.ArrangeDelivery(shipper.ID, now); err != nil {
		return ArrangedOrder{}, FailInternal
	}

	if err = uow.TaskRepository().Add(ctx, deliveryTask); err != nil {
		return ArrangedOrder{}, FailInternal
	}
	if err = orderRepo.Update(ctx, arrived); err != nil {
		return ArrangedOrder{}, FailInternal
	}
	if err = uow.Commit(ctx); err != nil {
		return ArrangedOrder{}, FailInternal
	}

	return ArrangedOrder{
		OrderID:   arrived.ID(),
		ShipperID: shipper.ID,
		TaskID:    deliveryTask.ID(),
		ZoneID:    zoneID,
	}, ""
}
