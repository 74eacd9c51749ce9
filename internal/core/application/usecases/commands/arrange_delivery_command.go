package commands

import (
	"errors"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/pkg/guard"
)

var (
	ErrArrangeDeliveryCommandIsNotConstructed = errors.New(
		"ArrangeDeliveryCommand must be created via NewArrangeDeliveryCommand constructor",
	)
)

// ArrangeDeliveryCommand represents a batch request to assign last-mile
// shippers to orders that have arrived at their delivery office.
type ArrangeDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewArrangeDeliveryCommand creates a command to arrange delivery for the
// given orders. Requires at least one valid order id.
func NewArrangeDeliveryCommand(orderIDs []kernel.UUID) (ArrangeDeliveryCommand, error) {
	if len(orderIDs) == 0 {
		return ArrangeDeliveryCommand{}, ErrOrderIDsAreRequired
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return ArrangeDeliveryCommand{}, err
		}
	}

	return ArrangeDeliveryCommand{
		orderIDs: orderIDs,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ArrangeDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrArrangeDeliveryCommandIsNotConstructed)
}

// OrderIDs returns the orders to arrange delivery for.
func (c ArrangeDeliveryCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}
