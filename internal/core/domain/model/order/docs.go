// Package order provides domain entities and business logic for shipment
// orders in the parcel network. It implements the Order aggregate root with
// its embedded shipment, append-only event log, and immutable route plan.
//
// The package includes:
//   - Order: The aggregate root that owns the shipment event log and status
//   - Status: The coarse order state derived deterministically from events
//   - EventType / Event: The scan event taxonomy and append-only log entries
//   - RoutePlan / RouteStep: The immutable multi-hop route a parcel traverses
//
// Key business rules:
//   - The event log is append-only; events are never mutated or removed
//   - shipment currentType always mirrors the latest appended event's type
//   - Coarse status is derived: arrival/departure imply in transit, delivered
//     and cancelled are terminal
//   - Duplicate scans are detected per event scope (office, shipper, system)
//   - The route plan is computed once at creation and never recomputed
package order
