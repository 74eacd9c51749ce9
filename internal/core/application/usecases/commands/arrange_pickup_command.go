package commands

import (
	"errors"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/pkg/guard"
)

var (
	ErrArrangePickupCommandIsNotConstructed = errors.New(
		"ArrangePickupCommand must be created via NewArrangePickupCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order id is required")
)

// ArrangePickupCommand represents a batch request to assign pickup shippers
// to pending orders.
type ArrangePickupCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewArrangePickupCommand creates a command to arrange pickup for the
// given orders. Requires at least one valid order id.
func NewArrangePickupCommand(orderIDs []kernel.UUID) (ArrangePickupCommand, error) {
	if len(orderIDs) == 0 {
		return ArrangePickupCommand{}, ErrOrderIDsAreRequired
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return ArrangePickupCommand{}, err
		}
	}

	return ArrangePickupCommand{
		orderIDs: orderIDs,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ArrangePickupCommand) Validate() error {
	return c.guard.Validate(ErrArrangePickupCommandIsNotConstructed)
}

// OrderIDs returns the orders to arrange pickup for.
func (c ArrangePickupCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}
