package order

import (
	"errors"
	"time"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/pkg/errs"
)

// EventType identifies a shipment scan or lifecycle event.
type EventType string

const (
	// EventCreated is recorded once when the order is placed.
	EventCreated EventType = "created"
	// EventWaitingPickup is recorded when a pickup task is assigned to a shipper.
	EventWaitingPickup EventType = "waiting_pickup"
	// EventPickup is recorded by the shipper collecting the parcel from the seller.
	EventPickup EventType = "pickup"
	// EventArrival is recorded by an office terminal when the parcel checks in.
	EventArrival EventType = "arrival"
	// EventDeparture is recorded by an office terminal when the parcel checks out.
	EventDeparture EventType = "departure"
	// EventDeliveryAttempt is recorded by the shipper on each delivery try.
	EventDeliveryAttempt EventType = "delivery_attempt"
	// EventWaitingDelivery is recorded when the parcel awaits the final leg.
	EventWaitingDelivery EventType = "waiting_delivery"
	// EventDelivered is recorded by the shipper on successful hand-off.
	EventDelivered EventType = "delivered"
	// EventReturned is recorded when the parcel is sent back to the seller.
	EventReturned EventType = "returned"
	// EventCancelled is recorded when the seller cancels a pending order.
	EventCancelled EventType = "cancelled"
	// EventLost is recorded when the parcel is declared lost.
	EventLost EventType = "lost"
	// EventDamaged is recorded when the parcel is declared damaged.
	EventDamaged EventType = "damaged"
)

func getValidEventTypes() map[EventType]struct{} {
	return map[EventType]struct{}{
		EventCreated:         {},
		EventWaitingPickup:   {},
		EventPickup:          {},
		EventArrival:         {},
		EventDeparture:       {},
		EventDeliveryAttempt: {},
		EventWaitingDelivery: {},
		EventDelivered:       {},
		EventReturned:        {},
		EventCancelled:       {},
		EventLost:            {},
		EventDamaged:         {},
	}
}

// Validate checks that the event type belongs to the known taxonomy.
func (t EventType) Validate() error {
	if _, ok := getValidEventTypes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("event type", errors.New(string(t)))
	}
	return nil
}

// String returns the persisted representation of the event type.
func (t EventType) String() string {
	return string(t)
}

// IsOfficeScoped reports whether the event is recorded against an office
// and participates in (eventType, officeID) duplicate detection.
func (t EventType) IsOfficeScoped() bool {
	return t == EventArrival || t == EventDeparture || t == EventReturned
}

// IsShipperScoped reports whether the event is recorded against a shipper.
// delivery_attempt is shipper-scoped but deliberately exempt from duplicate
// detection: multiple attempts are expected and legitimate.
func (t EventType) IsShipperScoped() bool {
	return t == EventPickup || t == EventDeliveryAttempt || t == EventDelivered
}

// IsRouteValidated reports whether the event must be checked against the
// route plan before being applied. Only office terminal scans are; shipper
// and lifecycle events are validated by task possession instead.
func (t EventType) IsRouteValidated() bool {
	return t == EventArrival || t == EventDeparture
}

// Event is a single entry of the append-only shipment event log.
// OfficeID is set for office-scoped events, ShipperID for shipper-scoped
// ones; lifecycle events carry neither. Events are never mutated or removed
// once written.
type Event struct {
	EventType   EventType
	OfficeID    *kernel.UUID
	ShipperID   *kernel.UUID
	Note        string
	ProofImages []string
	Timestamp   time.Time
}

// Validate checks the event's type and references.
func (e Event) Validate() error {
	if err := e.EventType.Validate(); err != nil {
		return err
	}
	if e.OfficeID != nil {
		if err := e.OfficeID.Validate(); err != nil {
			return err
		}
	}
	if e.ShipperID != nil {
		if err := e.ShipperID.Validate(); err != nil {
			return err
		}
	}
	if e.Timestamp.IsZero() {
		return errs.NewValueIsRequiredError("event timestamp")
	}
	return nil
}
