package commands

import (
	"errors"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/pkg/guard"
)

var ErrMarkOrdersPrintedCommandIsNotConstructed = errors.New(
	"MarkOrdersPrintedCommand must be created via NewMarkOrdersPrintedCommand constructor",
)

// MarkOrdersPrintedCommand represents a request to flag orders as having
// their shipping labels generated. Label rendering happens elsewhere; this
// core only records the fact.
type MarkOrdersPrintedCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrdersPrintedCommand creates a command to mark orders printed.
func NewMarkOrdersPrintedCommand(orderIDs []kernel.UUID) (MarkOrdersPrintedCommand, error) {
	if len(orderIDs) == 0 {
		return MarkOrdersPrintedCommand{}, ErrOrderIDsAreRequired
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return MarkOrdersPrintedCommand{}, err
		}
	}

	return MarkOrdersPrintedCommand{
		orderIDs: orderIDs,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrdersPrintedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrdersPrintedCommandIsNotConstructed)
}

// OrderIDs returns the orders to mark printed.
func (c MarkOrdersPrintedCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}
