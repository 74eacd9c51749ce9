// Package shipperrepo provides the read-side registry of field shippers.
// Shipper accounts are managed by a separate system; this repository only
// reads the replicated rows for dispatch decisions.
package shipperrepo

import (
	"context"
	"errors"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/ports"
	"parcelnet/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShipperDTO represents the database structure for registered shippers.
type ShipperDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ZoneID      uuid.UUID `gorm:"type:uuid;index"`
	VehicleType string    `gorm:"index"`
	Active      bool      `gorm:"index"`
}

// TableName specifies the database table name for shippers.
func (ShipperDTO) TableName() string {
	return "shippers"
}

func toShipper(dto ShipperDTO) (*ports.Shipper, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	zoneID, err := kernel.UUIDFromBytes(dto.ZoneID[:])
	if err != nil {
		return nil, err
	}

	return &ports.Shipper{
		ID:          id,
		ZoneID:      zoneID,
		VehicleType: dto.VehicleType,
		Active:      dto.Active,
	}, nil
}

// GormShipperRegistry implements ShipperRegistry using GORM.
type GormShipperRegistry struct {
	db *gorm.DB
}

// NewGormShipperRegistry creates a new GORM shipper registry.
func NewGormShipperRegistry(db *gorm.DB) *GormShipperRegistry {
	return &GormShipperRegistry{db: db}
}

// Get retrieves a shipper by ID.
func (r *GormShipperRegistry) Get(ctx context.Context, id kernel.UUID) (*ports.Shipper, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipperDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipper", id.String())
		}
		return nil, err
	}

	return toShipper(dto)
}

// FindActiveInZone retrieves the first active shipper of the vehicle type
// registered to the zone. First match in id order; no load balancing.
func (r *GormShipperRegistry) FindActiveInZone(ctx context.Context, zoneID kernel.UUID, vehicleType string) (*ports.Shipper, error) {
	if err := zoneID.Validate(); err != nil {
		return nil, err
	}

	var dto ShipperDTO
	err := r.db.WithContext(ctx).
		Where("zone_id = ? AND vehicle_type = ? AND active", zoneID.Bytes(), vehicleType).
		Order("id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipper",
				vehicleType+" in zone "+zoneID.String())
		}
		return nil, err
	}

	return toShipper(dto)
}
