// Package zonerepo provides read-side persistence for shipper zones. Zone
// boundaries are stored as GeoJSON documents and containment is evaluated
// in process against the decoded geometry.
package zonerepo

import (
	"encoding/json"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/zone"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// ZoneDTO represents the database structure for shipper zone rows.
type ZoneDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Geometry json.RawMessage `gorm:"type:jsonb"`
	Active   bool            `gorm:"index"`
}

// TableName specifies the database table name for shipper zones.
func (ZoneDTO) TableName() string {
	return "shipper_zones"
}

// fromDomain converts a shipper zone to its database representation.
func fromDomain(entity *zone.ShipperZone) (ZoneDTO, error) {
	geometry, err := geojson.NewGeometry(entity.Geometry()).MarshalJSON()
	if err != nil {
		return ZoneDTO{}, err
	}

	return ZoneDTO{
		ID:       entity.ID().Bytes(),
		Name:     entity.Name(),
		Geometry: geometry,
		Active:   entity.IsActive(),
	}, nil
}

// toDomain converts a database DTO to a shipper zone.
func toDomain(dto ZoneDTO) (*zone.ShipperZone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	geometry, err := geojson.UnmarshalGeometry(dto.Geometry)
	if err != nil {
		return nil, err
	}

	return zone.NewShipperZone(id, dto.Name, geometry.Geometry(), dto.Active)
}
