// Package taskrepo provides data transfer objects and mapping functions for
// shipper task persistence.
package taskrepo

import (
	"time"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/task"

	"github.com/google/uuid"
)

// TaskDTO represents the database structure for persisting shipper tasks.
type TaskDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipperID   uuid.UUID `gorm:"type:uuid;index"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	TaskType    string    `gorm:"index"`
	Status      int       `gorm:"index"`
	VehicleType string
	ZoneID      *uuid.UUID `gorm:"type:uuid;index"`
	Note        string
	AssignedAt  time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// TableName specifies the database table name for shipper tasks.
func (TaskDTO) TableName() string {
	return "shipper_tasks"
}

// fromDomain converts a shipper task aggregate to its database representation.
func fromDomain(aggregate *task.ShipperTask) TaskDTO {
	var zoneID *uuid.UUID
	if id := aggregate.ZoneID(); id != nil {
		raw := id.Bytes()
		zoneID = &raw
	}

	return TaskDTO{
		ID:          aggregate.ID().Bytes(),
		ShipperID:   aggregate.ShipperID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		TaskType:    string(aggregate.TaskType()),
		Status:      int(aggregate.Status()),
		VehicleType: aggregate.VehicleType(),
		ZoneID:      zoneID,
		Note:        aggregate.Note(),
		AssignedAt:  aggregate.AssignedAt(),
		StartedAt:   aggregate.StartedAt(),
		CompletedAt: aggregate.CompletedAt(),
	}
}

// toDomain converts a database DTO to a shipper task aggregate.
func toDomain(dto TaskDTO) (*task.ShipperTask, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shipperID, err := kernel.UUIDFromBytes(dto.ShipperID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var zoneID *kernel.UUID
	if dto.ZoneID != nil {
		zID, zoneErr := kernel.UUIDFromBytes((*dto.ZoneID)[:])
		if zoneErr != nil {
			return nil, zoneErr
		}
		zoneID = &zID
	}

	return task.RestoreShipperTask(
		id, shipperID, orderID,
		task.Type(dto.TaskType),
		task.Status(dto.Status),
		dto.VehicleType,
		zoneID,
		dto.Note,
		dto.AssignedAt,
		dto.StartedAt, dto.CompletedAt,
	)
}
