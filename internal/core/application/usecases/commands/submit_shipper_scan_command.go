package commands

import (
	"errors"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/order"
	"parcelnet/internal/pkg/guard"
)

var (
	ErrSubmitShipperScanCommandIsNotConstructed = errors.New(
		"SubmitShipperScanCommand must be created via NewSubmitShipperScanCommand constructor",
	)
	ErrEventTypeNotShipperScan = errors.New("event type is not a shipper scan")
)

// SubmitShipperScanCommand represents a scan submitted from a shipper's
// handheld: pickup, delivery_attempt, or delivered, optionally with proof
// images. Shipper scans bypass route validation; they are authorized by
// possession of an active task for the order instead.
type SubmitShipperScanCommand struct { //nolint:recvcheck //using for validation
	trackingCode string
	shipperID    kernel.UUID
	eventType    order.EventType
	note         string
	proofImages  []string

	guard guard.ConstructorGuard
}

// NewSubmitShipperScanCommand creates a command for a shipper handheld scan.
func NewSubmitShipperScanCommand(
	trackingCode string,
	shipperID kernel.UUID,
	eventType order.EventType,
	note string,
	proofImages []string,
) (SubmitShipperScanCommand, error) {
	cmd := SubmitShipperScanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingCode(trackingCode),
		cmd.setShipperID(shipperID),
		cmd.setEventType(eventType),
	); err != nil {
		return SubmitShipperScanCommand{}, err
	}

	cmd.note = note
	cmd.proofImages = proofImages
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitShipperScanCommand) Validate() error {
	return c.guard.Validate(ErrSubmitShipperScanCommandIsNotConstructed)
}

// TrackingCode returns the external shipment identifier being scanned.
func (c SubmitShipperScanCommand) TrackingCode() string {
	return c.trackingCode
}

// ShipperID returns the shipper submitting the scan.
func (c SubmitShipperScanCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

// EventType returns the scan's event type.
func (c SubmitShipperScanCommand) EventType() order.EventType {
	return c.eventType
}

// Note returns the optional remark attached to the scan.
func (c SubmitShipperScanCommand) Note() string {
	return c.note
}

// ProofImages returns photo references supporting the scan, if any.
func (c SubmitShipperScanCommand) ProofImages() []string {
	return c.proofImages
}

func (c *SubmitShipperScanCommand) setTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return ErrTrackingCodeIsRequired
	}

	c.trackingCode = trackingCode
	return nil
}

func (c *SubmitShipperScanCommand) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	c.shipperID = shipperID
	return nil
}

func (c *SubmitShipperScanCommand) setEventType(eventType order.EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	if !eventType.IsShipperScoped() {
		return ErrEventTypeNotShipperScan
	}

	c.eventType = eventType
	return nil
}
