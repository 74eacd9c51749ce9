package ports

import (
	"context"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/zone"
)

// ZoneRepository defines the read contract over shipper zones.
type ZoneRepository interface {
	// Get retrieves a zone by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*zone.ShipperZone, error)

	// FindContaining retrieves the active zone whose boundary contains the
	// point, or errs.ErrObjectNotFound when no zone covers it.
	FindContaining(ctx context.Context, point kernel.GeoPoint) (*zone.ShipperZone, error)
}
