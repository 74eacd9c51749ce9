// Package sellerrepo provides the read-side directory of merchant accounts.
// Seller profiles live in a separate commerce system; pickup dispatch only
// needs the registered pickup point.
package sellerrepo

import (
	"context"
	"errors"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/ports"
	"parcelnet/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SellerDTO represents the database structure for seller accounts. Lon and
// Lat are null when the seller never registered a pickup point.
type SellerDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	WardID *uuid.UUID `gorm:"type:uuid;index"`
	Lon    *float64
	Lat    *float64
}

// TableName specifies the database table name for sellers.
func (SellerDTO) TableName() string {
	return "sellers"
}

func toSeller(dto SellerDTO) (*ports.Seller, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var wardID *kernel.UUID
	if dto.WardID != nil {
		wID, wardErr := kernel.UUIDFromBytes((*dto.WardID)[:])
		if wardErr != nil {
			return nil, wardErr
		}
		wardID = &wID
	}

	var location *kernel.GeoPoint
	if dto.Lon != nil && dto.Lat != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Lon, *dto.Lat)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	return &ports.Seller{
		ID:       id,
		Name:     dto.Name,
		WardID:   wardID,
		Location: location,
	}, nil
}

// GormSellerDirectory implements SellerDirectory using GORM.
type GormSellerDirectory struct {
	db *gorm.DB
}

// NewGormSellerDirectory creates a new GORM seller directory.
func NewGormSellerDirectory(db *gorm.DB) *GormSellerDirectory {
	return &GormSellerDirectory{db: db}
}

// Get retrieves a seller by ID.
func (r *GormSellerDirectory) Get(ctx context.Context, id kernel.UUID) (*ports.Seller, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SellerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("seller", id.String())
		}
		return nil, err
	}

	return toSeller(dto)
}
