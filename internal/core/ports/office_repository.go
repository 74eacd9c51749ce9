package ports

import (
	"context"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/office"
)

// OfficeRepository defines the read contract over the office directory.
// The directory is maintained elsewhere; route planning and order intake
// only ever read it.
type OfficeRepository interface {
	// Get retrieves an office by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*office.Office, error)

	// FindHubForProvince retrieves the active distribution hub serving the
	// province, or errs.ErrObjectNotFound when the province has none.
	FindHubForProvince(ctx context.Context, provinceID kernel.UUID) (*office.Office, error)

	// FindSortingCenter retrieves the active national sorting center.
	FindSortingCenter(ctx context.Context) (*office.Office, error)

	// FindDeliveryOfficeForWard retrieves the active delivery office
	// covering the ward.
	FindDeliveryOfficeForWard(ctx context.Context, wardID kernel.UUID) (*office.Office, error)

	// FindDeliveryOfficeForProvince retrieves any active delivery office in
	// the province. Fallback when no ward-level office exists.
	FindDeliveryOfficeForProvince(ctx context.Context, provinceID kernel.UUID) (*office.Office, error)
}
