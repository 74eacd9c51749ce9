package queries

import (
	"errors"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/pkg/guard"
)

var ErrGetOfficeOrdersQueryIsNotConstructed = errors.New(
	"GetOfficeOrdersQuery must be created via NewGetOfficeOrdersQuery constructor",
)

// GetOfficeOrdersQuery retrieves all orders whose shipment touches an
// office: parcels picked up there, delivered from there, or routed through
// it on any leg. Backs office terminal work queues.
type GetOfficeOrdersQuery struct {
	officeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOfficeOrdersQuery creates a query for the given office.
func NewGetOfficeOrdersQuery(officeID kernel.UUID) (GetOfficeOrdersQuery, error) {
	if err := officeID.Validate(); err != nil {
		return GetOfficeOrdersQuery{}, err
	}

	return GetOfficeOrdersQuery{
		officeID: officeID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOfficeOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOfficeOrdersQueryIsNotConstructed)
}

// OfficeID returns the office being queried.
func (q GetOfficeOrdersQuery) OfficeID() kernel.UUID {
	return q.officeID
}

// GetOfficeOrdersQueryResponse represents one order on an office's work
// queue.
type GetOfficeOrdersQueryResponse struct {
	ID           kernel.UUID
	TrackingCode string
	Status       string
	CurrentType  string
}
