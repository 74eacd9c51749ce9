package officerepo

import (
	"context"
	"errors"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/office"
	"parcelnet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOfficeRepository implements OfficeRepository using GORM.
type GormOfficeRepository struct {
	db *gorm.DB
}

// NewGormOfficeRepository creates a new GORM office repository.
func NewGormOfficeRepository(db *gorm.DB) *GormOfficeRepository {
	return &GormOfficeRepository{db: db}
}

// Add saves an office to the directory. Not part of the read port; used by
// seeding tooling and tests.
func (r *GormOfficeRepository) Add(ctx context.Context, entity *office.Office) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an office by ID.
func (r *GormOfficeRepository) Get(ctx context.Context, id kernel.UUID) (*office.Office, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfficeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("office", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindHubForProvince retrieves the active distribution hub of a province.
func (r *GormOfficeRepository) FindHubForProvince(ctx context.Context, provinceID kernel.UUID) (*office.Office, error) {
	if err := provinceID.Validate(); err != nil {
		return nil, err
	}

	return r.findFirst(ctx, "hub for province "+provinceID.String(),
		"office_type = ? AND province_id = ? AND active",
		office.DistributionHub.String(), provinceID.Bytes())
}

// FindSortingCenter retrieves the active national sorting center.
func (r *GormOfficeRepository) FindSortingCenter(ctx context.Context) (*office.Office, error) {
	return r.findFirst(ctx, "sorting center", "office_type = ? AND active", office.SortingCenter.String())
}

// FindDeliveryOfficeForWard retrieves the active delivery office of a ward.
func (r *GormOfficeRepository) FindDeliveryOfficeForWard(ctx context.Context, wardID kernel.UUID) (*office.Office, error) {
	if err := wardID.Validate(); err != nil {
		return nil, err
	}

	return r.findFirst(ctx, "delivery office for ward "+wardID.String(),
		"office_type = ? AND ward_id = ? AND active",
		office.DeliveryOffice.String(), wardID.Bytes())
}

// FindDeliveryOfficeForProvince retrieves any active delivery office in a
// province. Fallback when no ward-level office covers the address.
func (r *GormOfficeRepository) FindDeliveryOfficeForProvince(ctx context.Context, provinceID kernel.UUID) (*office.Office, error) {
	if err := provinceID.Validate(); err != nil {
		return nil, err
	}

	return r.findFirst(ctx, "delivery office for province "+provinceID.String(),
		"office_type = ? AND province_id = ? AND active",
		office.DeliveryOffice.String(), provinceID.Bytes())
}

func (r *GormOfficeRepository) findFirst(ctx context.Context, label, condition string, args ...any) (*office.Office, error) {
	var dto OfficeDTO
	err := r.db.WithContext(ctx).Where(condition, args...).Order("code").First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("office", label)
		}
		return nil, err
	}

	return toDomain(dto)
}
