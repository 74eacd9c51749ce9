package ports

import (
	"context"
	"errors"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/order"
)

// ErrConcurrencyConflict is returned by Update when the stored aggregate
// version no longer matches the version the caller read. The caller is
// expected to re-read, re-validate, and retry.
var ErrConcurrencyConflict = errors.New("order was modified concurrently")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// conditional on the aggregate's version still matching storage; a
	// mismatch returns ErrConcurrencyConflict and nothing is written.
	// On success the aggregate's version is advanced.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTrackingCode retrieves an order by its external tracking code.
	// Scanning clients identify shipments by tracking code only.
	GetByTrackingCode(ctx context.Context, trackingCode string) (*order.Order, error)

	// GetAllInPendingStatus retrieves orders still awaiting pickup
	// arrangement. Used by the pickup dispatch job.
	GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)
}
