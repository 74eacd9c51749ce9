package taskrepo

import (
	"context"
	"errors"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/task"
	"parcelnet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTaskRepository implements TaskRepository using GORM.
type GormTaskRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTaskRepository creates a new GORM shipper task repository.
func NewGormTaskRepository(db *gorm.DB, tracker aggregateTracker) *GormTaskRepository {
	return &GormTaskRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipper task to the database.
func (r *GormTaskRepository) Add(ctx context.Context, aggregate *task.ShipperTask) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipper task to the database.
func (r *GormTaskRepository) Update(ctx context.Context, aggregate *task.ShipperTask) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TaskDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("task", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipper task by ID.
func (r *GormTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.ShipperTask, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("task", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveForOrder retrieves the shipper's pending or in-progress task of
// the given type for an order.
func (r *GormTaskRepository) GetActiveForOrder(
	ctx context.Context,
	orderID, shipperID kernel.UUID,
	taskType task.Type,
) (*task.ShipperTask, error) {
	if err := errors.Join(orderID.Validate(), shipperID.Validate(), taskType.Validate()); err != nil {
		return nil, err
	}

	var dto TaskDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND shipper_id = ? AND task_type = ? AND status IN ?",
			orderID.Bytes(), shipperID.Bytes(), string(taskType),
			[]int{int(task.Pending), int(task.InProgress)}).
		Order("assigned_at").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("task",
				"active "+string(taskType)+" for order "+orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
