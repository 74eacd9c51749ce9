package queries

import (
	"context"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOfficeOrdersQueryHandler lists orders routed through an office. An
// order qualifies when the office is its pickup point, its delivery point,
// or an endpoint of any route plan step. Terminal and final states are
// excluded; the queue only shows parcels still moving.
type GetOfficeOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOfficeOrdersQueryHandler creates a handler for office work queues.
func NewGetOfficeOrdersQueryHandler(db *gorm.DB) GetOfficeOrdersQueryHandler {
	return GetOfficeOrdersQueryHandler{db: db}
}

// Handle executes the work queue query. Results are sorted by tracking code
// for stable terminal output.
func (h GetOfficeOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOfficeOrdersQuery,
) ([]GetOfficeOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	officeID := query.OfficeID().Bytes()
	orders := make([]GetOfficeOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code,
			status,
			current_type
		FROM orders
		WHERE status IN (?, ?)
		  AND (
			pickup_office_id = ?
			OR delivery_office_id = ?
			OR EXISTS (
				SELECT 1 FROM jsonb_array_elements(route_plan) AS step
				WHERE step->>'from' = ? OR step->>'to' = ?
			)
		  )
		ORDER BY tracking_code
	`, order.Pending, order.InTransit,
		officeID, officeID,
		officeID.String(), officeID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id           uuid.UUID
			trackingCode string
			status       int
			currentType  string
		)
		if err = rows.Scan(&id, &trackingCode, &status, &currentType); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetOfficeOrdersQueryResponse{
			ID:           orderID,
			TrackingCode: trackingCode,
			Status:       order.Status(status).String(),
			CurrentType:  currentType,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
