package zonerepo

import (
	"context"
	"errors"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/zone"
	"parcelnet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormZoneRepository implements ZoneRepository using GORM.
type GormZoneRepository struct {
	db *gorm.DB
}

// NewGormZoneRepository creates a new GORM shipper zone repository.
func NewGormZoneRepository(db *gorm.DB) *GormZoneRepository {
	return &GormZoneRepository{db: db}
}

// Add saves a zone. Not part of the read port; used by seeding tooling and
// tests.
func (r *GormZoneRepository) Add(ctx context.Context, entity *zone.ShipperZone) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(entity)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a zone by ID.
func (r *GormZoneRepository) Get(ctx context.Context, id kernel.UUID) (*zone.ShipperZone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ZoneDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("zone", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindContaining retrieves the first active zone whose boundary contains the
// point. Containment is evaluated against the decoded geometry; zones are
// scanned in name order so overlaps resolve deterministically.
func (r *GormZoneRepository) FindContaining(ctx context.Context, point kernel.GeoPoint) (*zone.ShipperZone, error) {
	if err := point.Validate(); err != nil {
		return nil, err
	}

	var dtos []ZoneDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos, "active").Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		z, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		if z.Contains(point) {
			return z, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("zone", point.String())
}
