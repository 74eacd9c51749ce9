package task

import (
	"errors"
	"time"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/pkg/errs"
	"parcelnet/internal/pkg/guard"
)

// Domain errors for shipper task operations.
var (
	// ErrShipperTaskIsNotConstructed is returned when a ShipperTask was not
	// created through the NewShipperTask or RestoreShipperTask factory methods.
	ErrShipperTaskIsNotConstructed = errors.New("ShipperTask must be created via NewShipperTask constructor")
	// ErrTaskIsTerminal is returned when transitioning a task that already
	// reached a final status.
	ErrTaskIsTerminal = errors.New("task is already in a terminal status")
	// ErrTaskNotPending is returned when starting a task that is not pending.
	ErrTaskNotPending = errors.New("only pending tasks can be started")
)

// Type classifies what a shipper is sent out to do with a parcel.
type Type string

const (
	// TypePickup collects the parcel from the seller.
	TypePickup Type = "pickup"
	// TypeDelivery hands the parcel to the customer.
	TypeDelivery Type = "delivery"
	// TypeReturnPickup collects a returned parcel from the customer.
	TypeReturnPickup Type = "return_pickup"
	// TypeReturnDelivery brings a returned parcel back to the seller.
	TypeReturnDelivery Type = "return_delivery"
)

// Validate checks that the type is one of the known task kinds.
func (t Type) Validate() error {
	switch t {
	case TypePickup, TypeDelivery, TypeReturnPickup, TypeReturnDelivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("task type", errors.New(string(t)))
	}
}

// String returns the persisted representation of the task type.
func (t Type) String() string {
	return string(t)
}

// ShipperTask is the work assignment aggregate: one shipper, one order,
// one leg of physical handling. Several tasks may exist for the same order
// over its lifetime; callers decide when a new one is warranted.
type ShipperTask struct {
	id        kernel.UUID
	shipperID kernel.UUID
	orderID   kernel.UUID
	taskType  Type
	status    Status

	vehicleType string
	zoneID      *kernel.UUID
	note        string

	assignedAt  time.Time
	startedAt   *time.Time
	completedAt *time.Time

	guard guard.ConstructorGuard
}

// NewShipperTask creates a Pending task assigning the shipper to the order.
func NewShipperTask(
	id, shipperID, orderID kernel.UUID,
	taskType Type,
	vehicleType string,
	zoneID *kernel.UUID,
	assignedAt time.Time,
) (*ShipperTask, error) {
	if err := errors.Join(
		id.Validate(),
		shipperID.Validate(),
		orderID.Validate(),
		taskType.Validate(),
	); err != nil {
		return nil, err
	}

	if zoneID != nil {
		if err := zoneID.Validate(); err != nil {
			return nil, err
		}
	}

	return &ShipperTask{
		id:          id,
		shipperID:   shipperID,
		orderID:     orderID,
		taskType:    taskType,
		status:      Pending,
		vehicleType: vehicleType,
		zoneID:      zoneID,
		assignedAt:  assignedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreShipperTask reconstructs a ShipperTask from persistent storage.
// Used by repository implementations only.
func RestoreShipperTask(
	id, shipperID, orderID kernel.UUID,
	taskType Type,
	status Status,
	vehicleType string,
	zoneID *kernel.UUID,
	note string,
	assignedAt time.Time,
	startedAt, completedAt *time.Time,
) (*ShipperTask, error) {
	if err := errors.Join(
		id.Validate(),
		shipperID.Validate(),
		orderID.Validate(),
		taskType.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &ShipperTask{
		id:          id,
		shipperID:   shipperID,
		orderID:     orderID,
		taskType:    taskType,
		status:      status,
		vehicleType: vehicleType,
		zoneID:      zoneID,
		note:        note,
		assignedAt:  assignedAt,
		startedAt:   startedAt,
		completedAt: completedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the ShipperTask instance was properly constructed.
func (t *ShipperTask) Validate() error {
	if t == nil {
		return ErrShipperTaskIsNotConstructed
	}
	return t.guard.Validate(ErrShipperTaskIsNotConstructed)
}

// IsEqual compares two tasks by their unique identifiers.
func (t *ShipperTask) IsEqual(other *ShipperTask) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the task's unique identifier.
func (t *ShipperTask) ID() kernel.UUID {
	return t.id
}

// ShipperID returns the assigned shipper's identifier.
func (t *ShipperTask) ShipperID() kernel.UUID {
	return t.shipperID
}

// OrderID returns the order the task handles.
func (t *ShipperTask) OrderID() kernel.UUID {
	return t.orderID
}

// TaskType returns what the shipper is sent out to do.
func (t *ShipperTask) TaskType() Type {
	return t.taskType
}

// Status returns the task's lifecycle state.
func (t *ShipperTask) Status() Status {
	return t.status
}

// VehicleType returns the vehicle class the shipper was matched on.
func (t *ShipperTask) VehicleType() string {
	return t.vehicleType
}

// ZoneID returns the geographic zone the task was dispatched in, if any.
func (t *ShipperTask) ZoneID() *kernel.UUID {
	return t.zoneID
}

// Note returns the free-form remark attached on a transition.
func (t *ShipperTask) Note() string {
	return t.note
}

// AssignedAt returns when the task was created for the shipper.
func (t *ShipperTask) AssignedAt() time.Time {
	return t.assignedAt
}

// StartedAt returns when the shipper started the task, nil if never started.
func (t *ShipperTask) StartedAt() *time.Time {
	return t.startedAt
}

// CompletedAt returns when the task reached a terminal status, nil otherwise.
func (t *ShipperTask) CompletedAt() *time.Time {
	return t.completedAt
}

// Start moves a pending task to in progress.
func (t *ShipperTask) Start(now time.Time) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.status != Pending {
		return ErrTaskNotPending
	}

	t.status = InProgress
	t.startedAt = &now
	return nil
}

// Complete finishes the task. A still-pending task may complete directly:
// a pickup confirmed in a single handheld scan never passes through
// InProgress.
func (t *ShipperTask) Complete(note string, now time.Time) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.status.IsTerminal() {
		return ErrTaskIsTerminal
	}

	t.status = Completed
	t.note = note
	t.completedAt = &now
	return nil
}

// Fail marks the task as unfinishable, keeping the reason in the note.
func (t *ShipperTask) Fail(note string, now time.Time) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.status.IsTerminal() {
		return ErrTaskIsTerminal
	}

	t.status = Failed
	t.note = note
	t.completedAt = &now
	return nil
}

// Cancel withdraws the task before completion.
func (t *ShipperTask) Cancel(note string, now time.Time) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.status.IsTerminal() {
		return ErrTaskIsTerminal
	}

	t.status = Cancelled
	t.note = note
	t.completedAt = &now
	return nil
}
