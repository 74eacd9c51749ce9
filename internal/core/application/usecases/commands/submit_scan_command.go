package commands

import (
	"errors"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/order"
	"parcelnet/internal/pkg/guard"
)

var (
	ErrSubmitScanCommandIsNotConstructed = errors.New(
		"SubmitScanCommand must be created via NewSubmitScanCommand constructor",
	)
	ErrTrackingCodeIsRequired = errors.New("tracking code is required")
	ErrEventTypeNotOfficeScan = errors.New("event type is not an office scan")
)

// SubmitScanCommand represents a scan submitted by an office terminal.
// Office terminals identify shipments by tracking code and record arrival,
// departure, or returned events against their own office.
type SubmitScanCommand struct { //nolint:recvcheck //using for validation
	trackingCode string
	officeID     kernel.UUID
	eventType    order.EventType
	note         string

	guard guard.ConstructorGuard
}

// NewSubmitScanCommand creates a command for an office terminal scan.
// The event type must be an office-scoped one; shipper handhelds use
// SubmitShipperScanCommand instead.
func NewSubmitScanCommand(
	trackingCode string,
	officeID kernel.UUID,
	eventType order.EventType,
	note string,
) (SubmitScanCommand, error) {
	cmd := SubmitScanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingCode(trackingCode),
		cmd.setOfficeID(officeID),
		cmd.setEventType(eventType),
	); err != nil {
		return SubmitScanCommand{}, err
	}

	cmd.note = note
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitScanCommand) Validate() error {
	return c.guard.Validate(ErrSubmitScanCommandIsNotConstructed)
}

// TrackingCode returns the external shipment identifier being scanned.
func (c SubmitScanCommand) TrackingCode() string {
	return c.trackingCode
}

// OfficeID returns the scanning office.
func (c SubmitScanCommand) OfficeID() kernel.UUID {
	return c.officeID
}

// EventType returns the scan's event type.
func (c SubmitScanCommand) EventType() order.EventType {
	return c.eventType
}

// Note returns the optional remark attached to the scan.
func (c SubmitScanCommand) Note() string {
	return c.note
}

func (c *SubmitScanCommand) setTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return ErrTrackingCodeIsRequired
	}

	c.trackingCode = trackingCode
	return nil
}

func (c *SubmitScanCommand) setOfficeID(officeID kernel.UUID) error {
	if err := officeID.Validate(); err != nil {
		return err
	}

	c.officeID = officeID
	return nil
}

func (c *SubmitScanCommand) setEventType(eventType order.EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	if !eventType.IsOfficeScoped() {
		return ErrEventTypeNotOfficeScan
	}

	c.eventType = eventType
	return nil
}
