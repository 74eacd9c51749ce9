package services

import (
	"errors"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/order"
)

// Validator errors. Command handlers map these onto API responses; none of
// them mutates the order.
var (
	// ErrNoRoutePlan is returned when validating a scan against an order
	// that has no route plan.
	ErrNoRoutePlan = errors.New("order has no route plan")
	// ErrOfficeNotOnRoute is returned when the scanning office appears
	// nowhere on the plan.
	ErrOfficeNotOnRoute = errors.New("office is not on the route")
	// ErrWrongOfficeForArrival is returned when the parcel checks in at an
	// office out of route order.
	ErrWrongOfficeForArrival = errors.New("wrong office for arrival")
	// ErrWrongOfficeForDeparture is returned when the parcel checks out of
	// an office out of route order.
	ErrWrongOfficeForDeparture = errors.New("wrong office for departure")
	// ErrRouteAlreadyComplete is returned when an arrival is scanned after
	// the parcel reached the final route destination.
	ErrRouteAlreadyComplete = errors.New("route is already complete")
)

// RouteValidator is a domain service that checks office terminal scans
// against the order's route plan before they are applied. It is pure: it
// reads the plan and the event log and never mutates either.
//
// Only arrival and departure scans are route-validated. The validation
// cursor is the highest route step whose destination already has a
// recorded arrival; the next legitimate scan follows from that cursor.
// Office identity is compared on UUID alone.
type RouteValidator struct{}

// NewRouteValidator creates a new RouteValidator instance.
func NewRouteValidator() RouteValidator {
	return RouteValidator{}
}

// Validate checks whether officeID may record eventType given the plan and
// the event log so far. Non-route-validated event types pass immediately.
func (v RouteValidator) Validate(
	plan order.RoutePlan,
	events []order.Event,
	officeID kernel.UUID,
	eventType order.EventType,
) error {
	if !eventType.IsRouteValidated() {
		return nil
	}

	if plan.IsEmpty() {
		return ErrNoRoutePlan
	}
	if !plan.ContainsOffice(officeID) {
		return ErrOfficeNotOnRoute
	}

	last := plan.LastCompletedStepIndex(events)

	if eventType == order.EventArrival {
		return v.validateArrival(plan, officeID, last)
	}
	return v.validateDeparture(plan, officeID, last)
}

func (v RouteValidator) validateArrival(plan order.RoutePlan, officeID kernel.UUID, last int) error {
	// Before any confirmed step the parcel is either still at the route
	// origin or checking in at the first leg's destination. Only an arrival
	// at a step destination advances the cursor.
	if last == -1 {
		if plan[0].From.IsEqual(officeID) || plan[0].To.IsEqual(officeID) {
			return nil
		}
		return ErrWrongOfficeForArrival
	}

	if last == len(plan)-1 {
		return ErrRouteAlreadyComplete
	}

	if plan[last+1].To.IsEqual(officeID) {
		return nil
	}
	return ErrWrongOfficeForArrival
}

func (v RouteValidator) validateDeparture(plan order.RoutePlan, officeID kernel.UUID, last int) error {
	var expected kernel.UUID
	switch {
	case last == -1:
		expected = plan[0].From
	case last == len(plan)-1:
		// Fully arrived: the only departure left is out of the final office.
		expected = plan[len(plan)-1].To
	default:
		expected = plan[last+1].From
	}

	if expected.IsEqual(officeID) {
		return nil
	}
	return ErrWrongOfficeForDeparture
}
