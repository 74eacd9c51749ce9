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

// pickupVehicleType is the vehicle class pickup work is dispatched to.
const pickupVehicleType = "bike"

// FailReason explains why pickup could not be arranged for one order.
type FailReason string

const (
	// FailOrderNotFound means the order id resolved to nothing.
	FailOrderNotFound FailReason = "order_not_found"
	// FailOrderNotPending means the order already left the pending status.
	FailOrderNotPending FailReason = "order_not_pending"
	// FailSellerLocationMissing means the seller has no registered pickup point.
	FailSellerLocationMissing FailReason = "seller_location_missing"
	// FailNoZoneForLocation means no zone polygon contains the seller's point.
	FailNoZoneForLocation FailReason = "no_zone_for_location"
	// FailNoShipperAvailable means the zone has no active bike shipper.
	FailNoShipperAvailable FailReason = "no_shipper_available"
	// FailInternal covers storage and transaction errors.
	FailInternal FailReason = "internal_error"
)

// ArrangedOrder is one successful assignment in the batch result.
type ArrangedOrder struct {
	OrderID   kernel.UUID
	ShipperID kernel.UUID
	TaskID    kernel.UUID
	ZoneID    kernel.UUID
}

// FailedOrder is one failed assignment in the batch result.
type FailedOrder struct {
	OrderID kernel.UUID
	Reason  FailReason
}

// ArrangePickupResult separates successful assignments from failures.
// Every order of the batch appears in exactly one of the two lists.
type ArrangePickupResult struct {
	Arranged []ArrangedOrder
	Failed   []FailedOrder
}

// ArrangePickupCommandHandler assigns pickup work to shippers by
// geospatial zone lookup. Per order: resolve the seller's registered
// point, find the zone containing it, find an active bike shipper in that
// zone, create a pending pickup task, and move the order to in_transit
// with a waiting_pickup event.
//
// Each order runs in its own transaction; one order's failure never rolls
// back or blocks the others.
type ArrangePickupCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewArrangePickupCommandHandler creates a handler for pickup arrangement.
func NewArrangePickupCommandHandler(uowFactory DispatchUoWFactory) ArrangePickupCommandHandler {
	return ArrangePickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch and reports per-order outcomes. The returned
// error covers only command-level problems; per-order failures land in the
// result's Failed list.
func (h *ArrangePickupCommandHandler) Handle(ctx context.Context, cmd ArrangePickupCommand) (ArrangePickupResult, error) {
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

func (h *ArrangePickupCommandHandler) arrangeOne(ctx context.Context, orderID kernel.UUID) (ArrangedOrder, FailReason) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ArrangedOrder{}, FailInternal
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	pending, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ArrangedOrder{}, FailOrderNotFound
		}
		return ArrangedOrder{}, FailInternal
	}
	if pending.Status() != order.Pending {
		return ArrangedOrder{}, FailOrderNotPending
	}

	seller, err := uow.SellerDirectory().Get(ctx, pending.SellerID())
	if err != nil || seller.Location == nil {
		return ArrangedOrder{}, FailSellerLocationMissing
	}

	dispatchZone, err := uow.ZoneRepository().FindContaining(ctx, *seller.Location)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ArrangedOrder{}, FailNoZoneForLocation
		}
		return ArrangedOrder{}, FailInternal
	}

	shipper, err := uow.ShipperRegistry().FindActiveInZone(ctx, dispatchZone.ID(), pickupVehicleType)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ArrangedOrder{}, FailNoShipperAvailable
		}
		return ArrangedOrder{}, FailInternal
	}

	now := time.Now()
	zoneID := dispatchZone.ID()
	pickupTask, err := task.NewShipperTask(
		kernel.NewUUID(), shipper.ID, pending.ID(),
		task.TypePickup, shipper.VehicleType, &zoneID, now,
	)
	if err != nil {
		return ArrangedOrder{}, FailInternal
	}

	if err = pending.ArrangePickup(shipper.ID, now); err != nil {
		return ArrangedOrder{}, FailInternal
	}

	if err = uow.TaskRepository().Add(ctx, pickupTask); err != nil {
		return ArrangedOrder{}, FailInternal
	}
	if err = orderRepo.Update(ctx, pending); err != nil {
		return ArrangedOrder{}, FailInternal
	}
	if err = uow.Commit(ctx); err != nil {
		return ArrangedOrder{}, FailInternal
	}

	return ArrangedOrder{
		OrderID:   pending.ID(),
		ShipperID: shipper.ID,
		TaskID:    pickupTask.ID(),
		ZoneID:    zoneID,
	}, ""
}
