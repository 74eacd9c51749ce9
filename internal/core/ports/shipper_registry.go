package ports

import (
	"context"

	"parcelnet/internal/core/domain/model/kernel"
)

// Shipper is the registry's read model of a field rider: just enough to
// dispatch work. Shipper accounts are managed outside this core.
type Shipper struct {
	ID          kernel.UUID
	ZoneID      kernel.UUID
	VehicleType string
	Active      bool
}

// ShipperRegistry defines the read contract over registered shippers.
type ShipperRegistry interface {
	// Get retrieves a shipper by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*Shipper, error)

	// FindActiveInZone retrieves the first active shipper of the vehicle
	// type registered to the zone, or errs.ErrObjectNotFound when the zone
	// has none. First match; no load balancing across the zone.
	FindActiveInZone(ctx context.Context, zoneID kernel.UUID, vehicleType string) (*Shipper, error)
}
