package commands

import (
	"errors"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/pkg/guard"
)

var ErrBulkCancelCommandIsNotConstructed = errors.New(
	"BulkCancelCommand must be created via NewBulkCancelCommand constructor",
)

// BulkCancelCommand represents a batch request to cancel orders. Only
// orders still pending are cancellable; the rest are reported back with
// their current status.
type BulkCancelCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	note     string

	guard guard.ConstructorGuard
}

// NewBulkCancelCommand creates a command to cancel the given orders.
func NewBulkCancelCommand(orderIDs []kernel.UUID, note string) (BulkCancelCommand, error) {
	if len(orderIDs) == 0 {
		return BulkCancelCommand{}, ErrOrderIDsAreRequired
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return BulkCancelCommand{}, err
		}
	}

	return BulkCancelCommand{
		orderIDs: orderIDs,
		note:     note,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkCancelCommand) Validate() error {
	return c.guard.Validate(ErrBulkCancelCommandIsNotConstructed)
}

// OrderIDs returns the orders to cancel.
func (c BulkCancelCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// Note returns the cancellation remark recorded on each cancelled order.
func (c BulkCancelCommand) Note() string {
	return c.note
}
