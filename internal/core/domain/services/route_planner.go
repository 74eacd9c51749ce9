package services

import (
	"errors"

	"parcelnet/internal/core/domain/model/office"
	"parcelnet/internal/core/domain/model/order"
)

// Planner errors.
var (
	// ErrOfficeNotFound is returned when a pickup or delivery office required
	// for planning is missing.
	ErrOfficeNotFound = errors.New("office not found")
	// ErrTopologyIncomplete is returned when the hub or sorting center the
	// route must pass through does not exist. Order creation must fail rather
	// than store a partial plan.
	ErrTopologyIncomplete = errors.New("office topology is incomplete")
)

// RoutePlanner is a domain service that computes the immutable route plan a
// parcel follows through the office network. The plan depends only on the
// offices resolved by the caller; the planner itself touches no storage.
//
// Business rules:
//   - pickup and delivery in the same province: two steps through the
//     shared provincial hub
//   - different provinces: four steps through both hubs and the sorting
//     center between them
//   - step orders are sequential and 1-based; each step departs from the
//     previous step's destination
//
// Example usage:
//
//	planner := NewRoutePlanner()
//	plan, err := planner.Plan(pickupOffice, deliveryOffice, fromHub, toHub, sortingCenter)
//	if errors.Is(err, ErrTopologyIncomplete) {
//	    // Hub or sorting center missing; do not create the order
//	    return
//	}
type RoutePlanner struct{}

// NewRoutePlanner creates a new RoutePlanner instance.
func NewRoutePlanner() RoutePlanner {
	return RoutePlanner{}
}

// Plan computes the route from pickup to delivery. fromHub is the hub of
// the pickup office's province, toHub of the delivery office's province.
// sortingCenter and toHub may be nil when both offices share a province.
func (p RoutePlanner) Plan(
	pickup, delivery, fromHub, toHub, sortingCenter *office.Office,
) (order.RoutePlan, error) {
	if pickup == nil || delivery == nil {
		return nil, ErrOfficeNotFound
	}
	if err := errors.Join(pickup.Validate(), delivery.Validate()); err != nil {
		return nil, err
	}
	if fromHub == nil {
		return nil, ErrTopologyIncomplete
	}
	if err := fromHub.Validate(); err != nil {
		return nil, err
	}

	if pickup.SameProvince(delivery) {
		return p.sameProvincePlan(pickup, delivery, fromHub)
	}
	return p.crossProvincePlan(pickup, delivery, fromHub, toHub, sortingCenter)
}

func (p RoutePlanner) sameProvincePlan(pickup, delivery, hub *office.Office) (order.RoutePlan, error) {
	plan := order.RoutePlan{
		{From: pickup.ID(), To: hub.ID(), Kind: order.StepPickup, Order: 1},
		{From: hub.ID(), To: delivery.ID(), Kind: order.StepHub, Order: 2},
	}
	return plan, plan.Validate()
}

func (p RoutePlanner) crossProvincePlan(
	pickup, delivery, fromHub, toHub, sortingCenter *office.Office,
) (order.RoutePlan, error) {
	if toHub == nil || sortingCenter == nil {
		return nil, ErrTopologyIncomplete
	}
	if err := errors.Join(toHub.Validate(), sortingCenter.Validate()); err != nil {
		return nil, err
	}

	plan := order.RoutePlan{
		{From: pickup.ID(), To: fromHub.ID(), Kind: order.StepPickup, Order: 1},
		{From: fromHub.ID(), To: sortingCenter.ID(), Kind: order.StepHub, Order: 2},
		{From: sortingCenter.ID(), To: toHub.ID(), Kind: order.StepSorting, Order: 3},
		{From: toHub.ID(), To: delivery.ID(), Kind: order.StepDelivery, Order: 4},
	}
	return plan, plan.Validate()
}
