package commands

import (
	"context"
	"errors"
	"time"

	"parcelnet/internal/core/domain/model/order"
	"parcelnet/internal/core/domain/model/task"
	"parcelnet/internal/core/ports"
	"parcelnet/internal/pkg/errs"
)

// ErrNoTaskForShipper is returned when the scanning shipper holds no active
// task of the required type for the order.
var ErrNoTaskForShipper = errors.New("shipper has no active task for this order")

// SubmitShipperScanCommandHandler handles shipper handheld scans. The scan
// is authorized by the shipper's active task for the order: a pickup scan
// needs a pickup task, delivery scans a delivery task. On success the event
// is appended to the order and the task advances:
//   - pickup completes the pickup task in the same write
//   - delivery_attempt starts the delivery task if it is still pending
//   - delivered completes the delivery task
type SubmitShipperScanCommandHandler struct {
	uowFactory ScanUoWFactory
}

// NewSubmitShipperScanCommandHandler creates a handler for shipper scans.
func NewSubmitShipperScanCommandHandler(uowFactory ScanUoWFactory) SubmitShipperScanCommandHandler {
	return SubmitShipperScanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipper scan and returns the order with the event
// applied, retrying transparently on concurrent event-log writes.
func (h *SubmitShipperScanCommandHandler) Handle(ctx context.Context, cmd SubmitShipperScanCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < maxScanAttempts; attempt++ {
		scanned, err := h.attempt(ctx, cmd)
		if err == nil {
			return scanned, nil
		}
		if !errors.Is(err, ports.ErrConcurrencyConflict) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func (h *SubmitShipperScanCommandHandler) attempt(ctx context.Context, cmd SubmitShipperScanCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	scanned, err := orderRepo.GetByTrackingCode(ctx, cmd.TrackingCode())
	if err != nil {
		return nil, err
	}

	taskRepo := uow.TaskRepository()
	activeTask, err := taskRepo.GetActiveForOrder(ctx, scanned.ID(), cmd.ShipperID(), taskTypeForScan(cmd.EventType()))
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrNoTaskForShipper
		}
		return nil, err
	}

	now := time.Now()
	shipperID := cmd.ShipperID()
	if err = scanned.ApplyEvent(cmd.EventType(), nil, &shipperID, cmd.Note(), cmd.ProofImages(), now); err != nil {
		return nil, err
	}

	if err = h.advanceTask(activeTask, cmd, now); err != nil {
		return nil, err
	}

	if err = taskRepo.Update(ctx, activeTask); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, scanned); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return scanned, nil
}

func (h *SubmitShipperScanCommandHandler) advanceTask(activeTask *task.ShipperTask, cmd SubmitShipperScanCommand, now time.Time) error {
	switch cmd.EventType() {
	case order.EventPickup, order.EventDelivered:
		return activeTask.Complete(cmd.Note(), now)
	case order.EventDeliveryAttempt:
		if activeTask.Status() == task.Pending {
			return activeTask.Start(now)
		}
		return nil
	default:
		return nil
	}
}

// taskTypeForScan maps a shipper scan onto the task that authorizes it.
func taskTypeForScan(eventType order.EventType) task.Type {
	if eventType == order.EventPickup {
		return task.TypePickup
	}
	return task.TypeDelivery
}
