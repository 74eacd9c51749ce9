package order

import (
	"fmt"

	"parcelnet/internal/pkg/errs"
)

// Status represents the coarse lifecycle state of an order. It is derived
// deterministically from the shipment event log rather than set directly:
// arrival and departure scans imply InTransit, a delivered event implies
// Delivered, a cancelled event implies Cancelled.
//
// State transitions:
//
//	Pending ──> InTransit ──> Delivered
//	   │
//	   └──> Cancelled
//
// Transitions are one-directional; cancellation is only possible while the
// order is still Pending.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Only Pending orders can be cancelled or arranged for pickup.
	Pending

	// InTransit indicates the parcel is moving through the network:
	// a pickup task was assigned or an office scan was recorded.
	InTransit

	// Delivered indicates the parcel reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the seller cancelled the order before pickup.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, InTransit, Delivered, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanCancel reports whether an order in this status may still be cancelled.
// Only Pending orders are cancellable; once a shipper task is assigned the
// parcel is physically in motion.
func (s Status) CanCancel() bool {
	return s == Pending
}

// deriveStatus maps an applied event type onto the coarse status it implies.
// Event types that carry no coarse-status meaning leave the status unchanged.
func (s Status) deriveStatus(eventType EventType) Status {
	switch eventType {
	case EventArrival, EventDeparture:
		return InTransit
	case EventDelivered:
		return Delivered
	case EventCancelled:
		return Cancelled
	default:
		return s
	}
}
