// Package officerepo provides read-side persistence for the office
// directory. Offices are reference data maintained by back-office tooling;
// this repository only ever reads them.
package officerepo

import (
	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/office"

	"github.com/google/uuid"
)

// OfficeDTO represents the database structure for office directory rows.
type OfficeDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ParentID   *uuid.UUID `gorm:"type:uuid;index"`
	Code       string     `gorm:"uniqueIndex"`
	Name       string
	OfficeType string     `gorm:"index"`
	RegionID   *uuid.UUID `gorm:"type:uuid;index"`
	ProvinceID *uuid.UUID `gorm:"type:uuid;index"`
	WardID     *uuid.UUID `gorm:"type:uuid;index"`
	Lon        float64
	Lat        float64
	Active     bool `gorm:"index"`
}

// TableName specifies the database table name for office entities.
func (OfficeDTO) TableName() string {
	return "offices"
}

// toDomain converts a database DTO to an office domain entity.
func toDomain(dto OfficeDTO) (*office.Office, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parentID, err := kernelUUIDPtr(dto.ParentID)
	if err != nil {
		return nil, err
	}
	regionID, err := kernelUUIDPtr(dto.RegionID)
	if err != nil {
		return nil, err
	}
	provinceID, err := kernelUUIDPtr(dto.ProvinceID)
	if err != nil {
		return nil, err
	}
	wardID, err := kernelUUIDPtr(dto.WardID)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Lon, dto.Lat)
	if err != nil {
		return nil, err
	}

	return office.RestoreOffice(
		id, parentID,
		dto.Code, dto.Name,
		office.Type(dto.OfficeType),
		regionID, provinceID, wardID,
		location,
		dto.Active,
	)
}

// fromDomain converts an office domain entity to its database representation.
func fromDomain(entity *office.Office) OfficeDTO {
	return OfficeDTO{
		ID:         entity.ID().Bytes(),
		ParentID:   uuidPtr(entity.ParentID()),
		Code:       entity.Code(),
		Name:       entity.Name(),
		OfficeType: entity.OfficeType().String(),
		RegionID:   uuidPtr(entity.RegionID()),
		ProvinceID: uuidPtr(entity.ProvinceID()),
		WardID:     uuidPtr(entity.WardID()),
		Lon:        entity.Location().Lon(),
		Lat:        entity.Location().Lat(),
		Active:     entity.IsActive(),
	}
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelUUIDPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
