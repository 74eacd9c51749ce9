package commands

import (
	"context"
	"errors"
	"time"

	"parcelnet/internal/core/domain/model/order"
	"parcelnet/internal/core/domain/services"
	"parcelnet/internal/core/ports"
)

// maxScanAttempts bounds the transparent retries on concurrent event-log
// writes before the conflict is surfaced to the caller.
const maxScanAttempts = 3

// SubmitScanCommandHandler handles office terminal scans: it loads the
// order by tracking code, checks the scan against the route plan, appends
// the event, and writes the order back under optimistic concurrency.
//
// Validation and mutation happen against the same snapshot of the event
// log; a concurrent writer invalidates the snapshot, the conditional
// update fails, and the whole read-validate-apply cycle is retried on a
// fresh read. No scan is ever applied against a stale log.
type SubmitScanCommandHandler struct {
	uowFactory OrderUoWFactory
	validator  services.RouteValidator
}

// NewSubmitScanCommandHandler creates a handler for office terminal scans.
func NewSubmitScanCommandHandler(uowFactory OrderUoWFactory, validator services.RouteValidator) SubmitScanCommandHandler {
	return SubmitScanCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
	}
}

// Handle processes the scan and returns the order with the event applied,
// for callers that publish or display the fresh state. Validation failures
// come back as the domain sentinels (wrong office, duplicate scan, route
// complete) with no state change; only version conflicts are retried.
func (h *SubmitScanCommandHandler) Handle(ctx context.Context, cmd SubmitScanCommand) (*order.Order, error) {
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

func (h *SubmitScanCommandHandler) attempt(ctx context.Context, cmd SubmitScanCommand) (*order.Order, error) {
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

	if err = h.validator.Validate(scanned.RoutePlan(), scanned.Events(), cmd.OfficeID(), cmd.EventType()); err != nil {
		return nil, err
	}

	officeID := cmd.OfficeID()
	if err = scanned.ApplyEvent(cmd.EventType(), &officeID, nil, cmd.Note(), nil, time.Now()); err != nil {
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
