package kernel

import (
	"fmt"

	"parcelnet/internal/pkg/errs"
	"parcelnet/internal/pkg/guard"

	"github.com/paulmach/orb"
)

const (
	// MinLongitude is the smallest valid longitude in degrees.
	MinLongitude = -180.0
	// MaxLongitude is the largest valid longitude in degrees.
	MaxLongitude = 180.0
	// MinLatitude is the smallest valid latitude in degrees.
	MinLatitude = -90.0
	// MaxLatitude is the largest valid latitude in degrees.
	MaxLatitude = 90.0
)

// ErrGeoPointIsNotConstructed indicates that a GeoPoint was not created
// through NewGeoPoint and is a zero value.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("GeoPoint must be created via NewGeoPoint")

// GeoPoint is a value object representing a WGS84 longitude/latitude pair.
// It is immutable; all office and seller locations as well as shipper zone
// containment checks are expressed in terms of GeoPoint.
//
// Example usage:
//
//	point, err := kernel.NewGeoPoint(105.8342, 21.0278)
//	if err != nil {
//	    // handle out-of-range coordinates
//	}
//	fmt.Println(point) // "(105.834200, 21.027800)"
type GeoPoint struct {
	lon   float64
	lat   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint after validating that the longitude is
// within [-180, 180] and the latitude within [-90, 90] degrees.
func NewGeoPoint(lon, lat float64) (GeoPoint, error) {
	if lon < MinLongitude || lon > MaxLongitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", lon, MinLongitude, MaxLongitude)
	}
	if lat < MinLatitude || lat > MaxLatitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", lat, MinLatitude, MaxLatitude)
	}

	return GeoPoint{
		lon:   lon,
		lat:   lat,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Lon returns the longitude in degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Orb converts the point to its orb representation for geometry operations
// such as point-in-polygon containment.
func (p GeoPoint) Orb() orb.Point {
	return orb.Point{p.lon, p.lat}
}

// IsEqual compares two points by coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lon == other.lon && p.lat == other.lat
}

// String returns a "(lon, lat)" representation, useful for logs.
func (p GeoPoint) String() string {
	return fmt.Sprintf("(%f, %f)", p.lon, p.lat)
}

// Validate checks that the point was created via NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}
