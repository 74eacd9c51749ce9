package ports

import (
	"context"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/task"
)

// TaskRepository defines the persistence contract for shipper tasks.
type TaskRepository interface {
	// Add persists a new shipper task.
	Add(ctx context.Context, aggregate *task.ShipperTask) error

	// Update persists changes to an existing shipper task.
	Update(ctx context.Context, aggregate *task.ShipperTask) error

	// Get retrieves a task by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*task.ShipperTask, error)

	// GetActiveForOrder retrieves the shipper's non-terminal task of the
	// given type for the order, or errs.ErrObjectNotFound when none exists.
	// Shipper scans are authorized by possession of such a task.
	GetActiveForOrder(ctx context.Context, orderID, shipperID kernel.UUID, taskType task.Type) (*task.ShipperTask, error)
}
