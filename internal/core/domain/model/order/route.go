package order

import (
	"errors"
	"fmt"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/pkg/errs"
)

// StepKind classifies a route step by the leg of the journey it covers.
type StepKind string

const (
	// StepPickup is the first leg: pickup office to its provincial hub.
	StepPickup StepKind = "pickup"
	// StepHub is a hub-originated leg: hub to delivery office (intra-province)
	// or hub to sorting center (cross-province).
	StepHub StepKind = "hub"
	// StepSorting is the sorting center to destination hub leg.
	StepSorting StepKind = "sorting"
	// StepDelivery is the final leg: destination hub to delivery office.
	StepDelivery StepKind = "delivery"
)

// Validate checks that the kind is one of the known legs.
func (k StepKind) Validate() error {
	switch k {
	case StepPickup, StepHub, StepSorting, StepDelivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("route step kind", errors.New(string(k)))
	}
}

// RouteStep is a directed hop between two offices. Order is 1-based and
// strictly increasing within a plan.
type RouteStep struct {
	From  kernel.UUID
	To    kernel.UUID
	Kind  StepKind
	Order int
}

// Validate checks the step's references and kind.
func (s RouteStep) Validate() error {
	if err := errors.Join(
		s.From.Validate(),
		s.To.Validate(),
		s.Kind.Validate(),
	); err != nil {
		return err
	}
	if s.Order < 1 {
		return errs.NewValueIsInvalidErrorWithCause("route step order",
			fmt.Errorf("%d is not 1-based", s.Order))
	}
	return nil
}

// RoutePlan is the immutable ordered sequence of directed hops a shipment
// must traverse. It is computed once at order creation and never recomputed,
// even if the office topology changes later: a parcel already in motion
// follows the route it was planned on.
type RoutePlan []RouteStep

// Validate checks the chain invariants: every step valid, orders sequential
// starting at 1 with no gaps, and step[i].To == step[i+1].From.
func (p RoutePlan) Validate() error {
	for i, step := range p {
		if err := step.Validate(); err != nil {
			return err
		}
		if step.Order != i+1 {
			return errs.NewValueIsInvalidErrorWithCause("route plan",
				fmt.Errorf("step %d has order %d", i, step.Order))
		}
		if i > 0 && !p[i-1].To.IsEqual(step.From) {
			return errs.NewValueIsInvalidErrorWithCause("route plan",
				fmt.Errorf("step %d does not depart from step %d's destination", i+1, i))
		}
	}
	return nil
}

// IsEmpty reports whether the plan has no steps.
func (p RoutePlan) IsEmpty() bool {
	return len(p) == 0
}

// ContainsOffice reports whether the office appears as a From or To of any
// step. Comparison is on office identity only.
func (p RoutePlan) ContainsOffice(officeID kernel.UUID) bool {
	for _, step := range p {
		if step.From.IsEqual(officeID) || step.To.IsEqual(officeID) {
			return true
		}
	}
	return false
}

// IsFullyArrived reports whether the parcel has a confirmed arrival at the
// final office of the plan, which is the precondition for last-mile
// delivery dispatch.
func (p RoutePlan) IsFullyArrived(events []Event) bool {
	return !p.IsEmpty() && p.LastCompletedStepIndex(events) == len(p)-1
}

// LastCompletedStepIndex returns the highest step index whose destination
// has a recorded arrival event, or -1 if the parcel has not been confirmed
// at any step destination yet. This is the cursor the scan validator orders
// arrivals and departures against.
func (p RoutePlan) LastCompletedStepIndex(events []Event) int {
	last := -1
	for _, ev := range events {
		if ev.EventType != EventArrival || ev.OfficeID == nil {
			continue
		}
		for i, step := range p {
			if step.To.IsEqual(*ev.OfficeID) && i > last {
				last = i
			}
		}
	}
	return last
}
