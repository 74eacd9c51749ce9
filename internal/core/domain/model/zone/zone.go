// Package zone contains the ShipperZone aggregate: a named geographic area
// with a polygon boundary used to match seller locations to the shippers
// serving that area.
package zone

import (
	"errors"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/pkg/errs"
	"parcelnet/internal/pkg/guard"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ErrShipperZoneIsNotConstructed is returned when a ShipperZone was not
// created through the NewShipperZone factory method.
var ErrShipperZoneIsNotConstructed = errors.New("ShipperZone must be created via NewShipperZone constructor")

// ShipperZone is a dispatch area. Its boundary is a polygon or
// multipolygon; a seller located inside the boundary is served by the
// shippers registered to the zone.
type ShipperZone struct {
	id       kernel.UUID
	name     string
	geometry orb.Geometry
	active   bool

	guard guard.ConstructorGuard
}

// NewShipperZone creates a zone with the given boundary. Only polygon and
// multipolygon geometries are accepted.
func NewShipperZone(id kernel.UUID, name string, geometry orb.Geometry, active bool) (*ShipperZone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("zone name")
	}

	switch geometry.(type) {
	case orb.Polygon, orb.MultiPolygon:
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("zone geometry",
			errors.New("boundary must be a polygon or multipolygon"))
	}

	return &ShipperZone{
		id:       id,
		name:     name,
		geometry: geometry,
		active:   active,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the ShipperZone instance was properly constructed.
func (z *ShipperZone) Validate() error {
	if z == nil {
		return ErrShipperZoneIsNotConstructed
	}
	return z.guard.Validate(ErrShipperZoneIsNotConstructed)
}

// ID returns the zone's unique identifier.
func (z *ShipperZone) ID() kernel.UUID {
	return z.id
}

// Name returns the zone's display name.
func (z *ShipperZone) Name() string {
	return z.name
}

// Geometry returns the zone boundary.
func (z *ShipperZone) Geometry() orb.Geometry {
	return z.geometry
}

// IsActive reports whether the zone currently accepts dispatches.
func (z *ShipperZone) IsActive() bool {
	return z.active
}

// Contains reports whether the point lies inside the zone boundary.
// Points on the boundary count as inside.
func (z *ShipperZone) Contains(point kernel.GeoPoint) bool {
	switch g := z.geometry.(type) {
	case orb.Polygon:
		return planar.PolygonContains(g, point.Orb())
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(g, point.Orb())
	default:
		return false
	}
}
