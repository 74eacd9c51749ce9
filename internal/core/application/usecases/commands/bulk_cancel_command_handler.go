package commands

import (
	"context"
	"errors"
	"time"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/pkg/errs"
)

// SkippedOrder is an order the bulk cancel left untouched, with the status
// that made it uncancellable. Orders that resolve to nothing are reported
// with status "not_found".
type SkippedOrder struct {
	OrderID kernel.UUID
	Status  string
}

// BulkCancelResult separates cancelled orders from skipped ones.
type BulkCancelResult struct {
	Cancelled []kernel.UUID
	Skipped   []SkippedOrder
}

// BulkCancelCommandHandler cancels pending orders in bulk. Orders already
// in motion, delivered, or previously cancelled are never touched; they
// are reported in Skipped with their actual status. Each order runs in its
// own transaction so one failure never blocks the rest of the batch.
type BulkCancelCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewBulkCancelCommandHandler creates a handler for bulk cancellation.
func NewBulkCancelCommandHandler(uowFactory OrderUoWFactory) BulkCancelCommandHandler {
	return BulkCancelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch and reports per-order outcomes.
func (h *BulkCancelCommandHandler) Handle(ctx context.Context, cmd BulkCancelCommand) (BulkCancelResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkCancelResult{}, err
	}

	result := BulkCancelResult{}
	for _, orderID := range cmd.OrderIDs() {
		status, cancelled := h.cancelOne(ctx, orderID, cmd.Note())
		if cancelled {
			result.Cancelled = append(result.Cancelled, orderID)
			continue
		}
		result.Skipped = append(result.Skipped, SkippedOrder{OrderID: orderID, Status: status})
	}

	return result, nil
}

func (h *BulkCancelCommandHandler) cancelOne(ctx context.Context, orderID kernel.UUID, note string) (string, bool) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "internal_error", false
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	pending, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "not_found", false
		}
		return "internal_error", false
	}

	if err = pending.Cancel(note, time.Now()); err != nil {
		return pending.Status().String(), false
	}

	if err = orderRepo.Update(ctx, pending); err != nil {
		return "internal_error", false
	}
	if err = uow.Commit(ctx); err != nil {
		return "internal_error", false
	}

	return "", true
}
