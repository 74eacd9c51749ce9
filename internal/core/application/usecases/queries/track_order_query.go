package queries

import (
	"errors"
	"time"

	"parcelnet/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// ErrTrackingCodeIsRequired is returned when the tracking code is empty.
var ErrTrackingCodeIsRequired = errors.New("tracking code is required")

// TrackOrderQuery retrieves the public tracking view of a shipment by its
// tracking code: current status, the latest event type, and the full event
// timeline.
type TrackOrderQuery struct {
	trackingCode string

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query for the given tracking code.
func NewTrackOrderQuery(trackingCode string) (TrackOrderQuery, error) {
	if trackingCode == "" {
		return TrackOrderQuery{}, ErrTrackingCodeIsRequired
	}

	return TrackOrderQuery{
		trackingCode: trackingCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// TrackingCode returns the code being tracked.
func (q TrackOrderQuery) TrackingCode() string {
	return q.trackingCode
}

// TrackOrderEventResponse is one entry of the tracking timeline. OfficeID is
// empty for events not recorded at an office.
type TrackOrderEventResponse struct {
	EventType string
	OfficeID  string
	Note      string
	Timestamp time.Time
}

// TrackOrderQueryResponse represents the tracking view of one shipment.
type TrackOrderQueryResponse struct {
	TrackingCode string
	Status       string
	CurrentType  string
	Events       []TrackOrderEventResponse
}
