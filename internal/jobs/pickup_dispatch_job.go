package jobs

import (
	"context"
	"log/slog"

	"parcelnet/internal/core/application/usecases/commands"
	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// PendingOrderSource lists orders still waiting for a pickup shipper.
type PendingOrderSource interface {
	GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)
}

// PickupDispatchJob periodically sweeps pending orders and tries to
// arrange pickup for each of them. Orders that cannot be arranged yet
// (no shipper free, seller location missing) stay pending and are
// retried on the next run.
type PickupDispatchJob struct {
	source  PendingOrderSource
	handler commands.ArrangePickupCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPickupDispatchJob creates a job that dispatches pickup shippers
// to pending orders every ten seconds.
func NewPickupDispatchJob(
	source PendingOrderSource,
	handler commands.ArrangePickupCommandHandler,
	logger *slog.Logger,
) *PickupDispatchJob {
	return &PickupDispatchJob{
		source:  source,
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pickup_dispatch_job"),
	}
}

// Start schedules the pickup dispatch sweep.
func (j *PickupDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		j.runOnce(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pickup dispatch job started (running every ten seconds)")
	return nil
}

// Stop stops the pickup dispatch job.
func (j *PickupDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pickup dispatch job stopped")
}

func (j *PickupDispatchJob) runOnce(ctx context.Context) {
	pending, err := j.source.GetAllInPendingStatus(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pickup dispatch job failed to list pending orders", "error", err)
		return
	}
	if len(pending) == 0 {
		return
	}

	orderIDs := make([]kernel.UUID, 0, len(pending))
	for _, pendingOrder := range pending {
		orderIDs = append(orderIDs, pendingOrder.ID())
	}

	cmd, err := commands.NewArrangePickupCommand(orderIDs)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pickup dispatch job built an invalid command", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pickup dispatch job failed", "error", err)
		return
	}

	if len(result.Arranged) > 0 {
		j.logger.InfoContext(ctx, "Pickup dispatch job arranged orders",
			"arranged", len(result.Arranged),
			"failed", len(result.Failed),
		)
	}
}
