package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"parcelnet/internal/core/domain/model/order"
	"parcelnet/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// trackedEvent mirrors the JSONB layout of one shipment event row. Shipper
// identifiers and proof images stay internal; the tracking view only
// exposes the event type, the office, the note, and the time.
type trackedEvent struct {
	EventType string     `json:"event_type"`
	OfficeID  *uuid.UUID `json:"office_id"`
	Note      string     `json:"note"`
	Timestamp time.Time  `json:"timestamp"`
}

// TrackOrderQueryHandler resolves a tracking code to the shipment's public
// timeline. Reads the order row directly; no aggregate reconstruction.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for tracking lookups.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the tracking lookup. Returns errs.ErrObjectNotFound when
// no shipment carries the code.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_code,
			status,
			current_type,
			events
		FROM orders
		WHERE tracking_code = ?
	`, query.TrackingCode()).Row()

	var (
		trackingCode string
		status       int
		currentType  string
		eventsRaw    []byte
	)
	if err := row.Scan(&trackingCode, &status, &currentType, &eventsRaw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.TrackingCode())
		}
		return TrackOrderQueryResponse{}, err
	}

	var events []trackedEvent
	if err := json.Unmarshal(eventsRaw, &events); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	timeline := make([]TrackOrderEventResponse, 0, len(events))
	for _, e := range events {
		entry := TrackOrderEventResponse{
			EventType: e.EventType,
			Note:      e.Note,
			Timestamp: e.Timestamp,
		}
		if e.OfficeID != nil {
			entry.OfficeID = e.OfficeID.String()
		}
		timeline = append(timeline, entry)
	}

	return TrackOrderQueryResponse{
		TrackingCode: trackingCode,
		Status:       order.Status(status).String(),
		CurrentType:  currentType,
		Events:       timeline,
	}, nil
}
