package order

import (
	"errors"
	"time"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/pkg/errs"
	"parcelnet/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrDuplicateScan is returned when an identical scan already exists in the event log.
	ErrDuplicateScan = errors.New("identical scan already recorded")
	// ErrInvalidStatusForCancel is returned when cancelling an order that is no longer pending.
	ErrInvalidStatusForCancel = errors.New("only pending orders can be cancelled")
	// ErrOrderNotPending is returned when arranging pickup for an order that is not pending.
	ErrOrderNotPending = errors.New("only pending orders can be arranged for pickup")
	// ErrOrderNotAtDeliveryOffice is returned when arranging delivery before the
	// parcel has arrived at the final office of its route.
	ErrOrderNotAtDeliveryOffice = errors.New("order has not arrived at its delivery office")
	// ErrProductsAreRequired is returned when attempting to create an order without products.
	ErrProductsAreRequired = errs.NewValueIsRequiredError("products")
)

// Product is a line item of the order.
type Product struct {
	SKU  string
	Name string
	Qty  int
}

// shipment is the embedded shipment document of an order: the office
// endpoints, the tracking code, the mirror of the latest event type, and
// the append-only event log.
type shipment struct {
	pickupOfficeID   kernel.UUID
	deliveryOfficeID kernel.UUID
	trackingCode     string
	currentType      EventType
	events           []Event
}

// Order is the aggregate root for a shipment order. It owns the immutable
// route plan, the embedded shipment with its append-only event log, and the
// derived coarse status.
//
// Order follows these invariants:
//   - the event log only grows; prior events are never mutated or removed
//   - shipment currentType mirrors the type of the latest appended event
//   - status is derived from events (arrival/departure -> InTransit,
//     delivered -> Delivered, cancelled -> Cancelled)
//   - the route plan is fixed at creation
//   - version counts persisted mutations and backs optimistic concurrency
type Order struct {
	id         kernel.UUID
	sellerID   kernel.UUID
	customerID kernel.UUID

	products    []Product
	cod         bool
	codAmount   decimal.Decimal
	shipFee     decimal.Decimal
	totalWeight float64

	status  Status
	printed bool

	routePlan RoutePlan
	shipment  shipment

	version int

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order with a generated tracking code and an
// initial "created" event stamped at issuedAt. The route plan must already
// be validated by the planner; NewOrder re-checks its chain invariants.
func NewOrder(
	id, sellerID, customerID kernel.UUID,
	products []Product,
	cod bool,
	codAmount, shipFee decimal.Decimal,
	totalWeight float64,
	pickupOfficeID, deliveryOfficeID kernel.UUID,
	routePlan RoutePlan,
	issuedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		sellerID.Validate(),
		customerID.Validate(),
		pickupOfficeID.Validate(),
		deliveryOfficeID.Validate(),
		routePlan.Validate(),
	); err != nil {
		return nil, err
	}

	if len(products) == 0 {
		return nil, ErrProductsAreRequired
	}

	if !cod {
		codAmount = decimal.Zero
	}

	o := &Order{
		id:          id,
		sellerID:    sellerID,
		customerID:  customerID,
		products:    products,
		cod:         cod,
		codAmount:   codAmount,
		shipFee:     shipFee,
		totalWeight: totalWeight,
		status:      Pending,
		routePlan:   routePlan,
		shipment: shipment{
			pickupOfficeID:   pickupOfficeID,
			deliveryOfficeID: deliveryOfficeID,
			trackingCode:     NewTrackingCode(sellerID, issuedAt),
			currentType:      EventCreated,
			events: []Event{{
				EventType: EventCreated,
				Timestamp: issuedAt,
			}},
		},
		guard: guard.NewConstructorGuard(),
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts the full event log, derived status, tracking
// code, and version as stored. Used by repository implementations only.
func RestoreOrder(
	id, sellerID, customerID kernel.UUID,
	products []Product,
	cod bool,
	codAmount, shipFee decimal.Decimal,
	totalWeight float64,
	status Status,
	printed bool,
	routePlan RoutePlan,
	pickupOfficeID, deliveryOfficeID kernel.UUID,
	trackingCode string,
	currentType EventType,
	events []Event,
	version int,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		sellerID.Validate(),
		customerID.Validate(),
		status.Validate(),
		pickupOfficeID.Validate(),
		deliveryOfficeID.Validate(),
		currentType.Validate(),
	); err != nil {
		return nil, err
	}

	if trackingCode == "" {
		return nil, errs.NewValueIsRequiredError("tracking code")
	}

	return &Order{
		id:          id,
		sellerID:    sellerID,
		customerID:  customerID,
		products:    products,
		cod:         cod,
		codAmount:   codAmount,
		shipFee:     shipFee,
		totalWeight: totalWeight,
		status:      status,
		printed:     printed,
		routePlan:   routePlan,
		shipment: shipment{
			pickupOfficeID:   pickupOfficeID,
			deliveryOfficeID: deliveryOfficeID,
			trackingCode:     trackingCode,
			currentType:      currentType,
			events:           events,
		},
		version: version,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// SellerID returns the seller's identifier.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// CustomerID returns the customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Products returns a copy of the order's line items.
func (o *Order) Products() []Product {
	products := make([]Product, len(o.products))
	copy(products, o.products)
	return products
}

// IsCOD reports whether the order collects cash on delivery.
func (o *Order) IsCOD() bool {
	return o.cod
}

// CODAmount returns the cash-on-delivery amount, zero for non-COD orders.
func (o *Order) CODAmount() decimal.Decimal {
	return o.codAmount
}

// ShipFee returns the shipping fee.
func (o *Order) ShipFee() decimal.Decimal {
	return o.shipFee
}

// TotalWeight returns the parcel weight in kilograms.
func (o *Order) TotalWeight() float64 {
	return o.totalWeight
}

// Status returns the coarse derived status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Printed reports whether a shipping label was generated for the order.
func (o *Order) Printed() bool {
	return o.printed
}

// RoutePlan returns a copy of the immutable route plan.
func (o *Order) RoutePlan() RoutePlan {
	plan := make(RoutePlan, len(o.routePlan))
	copy(plan, o.routePlan)
	return plan
}

// PickupOfficeID returns the office the parcel enters the network at.
func (o *Order) PickupOfficeID() kernel.UUID {
	return o.shipment.pickupOfficeID
}

// DeliveryOfficeID returns the office the parcel leaves the network at.
func (o *Order) DeliveryOfficeID() kernel.UUID {
	return o.shipment.deliveryOfficeID
}

// TrackingCode returns the externally visible shipment identifier.
func (o *Order) TrackingCode() string {
	return o.shipment.trackingCode
}

// CurrentType returns the type of the latest appended event.
func (o *Order) CurrentType() EventType {
	return o.shipment.currentType
}

// Events returns a copy of the append-only event log.
func (o *Order) Events() []Event {
	events := make([]Event, len(o.shipment.events))
	copy(events, o.shipment.events)
	return events
}

// Version returns the optimistic-concurrency token: the count of persisted
// mutations of this aggregate.
func (o *Order) Version() int {
	return o.version
}

// HasScanned reports whether an identical scan already exists in the log.
// Office-scoped events (arrival, departure, returned) are duplicates by
// (eventType, officeID); shipper-scoped pickup and delivered by
// (eventType, shipperID); delivery_attempt is never a duplicate because
// multiple attempts are expected; every other type is a duplicate by type
// alone.
func (o *Order) HasScanned(eventType EventType, officeID, shipperID *kernel.UUID) bool {
	for _, ev := range o.shipment.events {
		if ev.EventType != eventType {
			continue
		}

		if eventType.IsOfficeScoped() {
			if officeID != nil && ev.OfficeID != nil && ev.OfficeID.IsEqual(*officeID) {
				return true
			}
			continue
		}

		if eventType.IsShipperScoped() {
			if eventType == EventDeliveryAttempt {
				continue
			}
			if shipperID != nil && ev.ShipperID != nil && ev.ShipperID.IsEqual(*shipperID) {
				return true
			}
			continue
		}

		return true
	}
	return false
}

// ApplyEvent appends a validated scan to the event log, mirrors it into
// currentType, and derives the coarse status. Route consistency must be
// checked by the caller beforehand; ApplyEvent only enforces duplicate
// detection and event well-formedness. Prior events are never touched.
func (o *Order) ApplyEvent(
	eventType EventType,
	officeID, shipperID *kernel.UUID,
	note string,
	proofImages []string,
	now time.Time,
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := eventType.Validate(); err != nil {
		return err
	}

	if o.HasScanned(eventType, officeID, shipperID) {
		return ErrDuplicateScan
	}

	event := Event{
		EventType:   eventType,
		OfficeID:    officeID,
		ShipperID:   shipperID,
		Note:        note,
		ProofImages: proofImages,
		Timestamp:   now,
	}
	if err := event.Validate(); err != nil {
		return err
	}

	o.shipment.events = append(o.shipment.events, event)
	o.shipment.currentType = eventType
	o.status = o.status.deriveStatus(eventType)
	return nil
}

// ArrangePickup assigns the order to a pickup shipper: the order leaves
// Pending, becomes InTransit, and a waiting_pickup event referencing the
// shipper is appended. Pickup precedes route-plan consumption, so no route
// validation applies here.
func (o *Order) ArrangePickup(shipperID kernel.UUID, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := shipperID.Validate(); err != nil {
		return err
	}
	if o.status != Pending {
		return ErrOrderNotPending
	}

	if err := o.ApplyEvent(EventWaitingPickup, nil, &shipperID, "shipper assigned for pickup", nil, now); err != nil {
		return err
	}

	o.status = InTransit
	return nil
}

// ArrangeDelivery assigns the last-mile leg to a delivery shipper once the
// parcel has arrived at the final office of its route. A waiting_delivery
// event referencing the shipper is appended; arranging twice surfaces the
// duplicate-scan rejection of the event log.
func (o *Order) ArrangeDelivery(shipperID kernel.UUID, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := shipperID.Validate(); err != nil {
		return err
	}
	if !o.routePlan.IsFullyArrived(o.shipment.events) {
		return ErrOrderNotAtDeliveryOffice
	}

	return o.ApplyEvent(EventWaitingDelivery, nil, &shipperID, "shipper assigned for delivery", nil, now)
}

// Cancel cancels a still-pending order, appending a cancelled event.
// Orders already in motion cannot be cancelled through this path.
func (o *Order) Cancel(note string, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.status.CanCancel() {
		return ErrInvalidStatusForCancel
	}

	return o.ApplyEvent(EventCancelled, nil, nil, note, nil, now)
}

// MarkPrinted records that a shipping label was generated for the order.
func (o *Order) MarkPrinted() {
	o.printed = true
}

// SyncVersion advances the optimistic-concurrency token after a successful
// persistence write. Repository implementations call this once per stored
// mutation; domain code never does.
func (o *Order) SyncVersion() {
	o.version++
}
