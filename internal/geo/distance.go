// Package geo evaluates device proximity to reminder geofences.
package geo

import (
	"math"

	"georemind/internal/domain/entity"

	"github.com/paulmach/orb"
)

// EarthRadiusMeters is the mean Earth radius used by Distance.
const EarthRadiusMeters = 6371000.0

// boundPaddingDegrees absorbs float rounding at the edge of a bound.
const boundPaddingDegrees = 1e-9

// Distance returns the great-circle distance in meters between two points
// using the haversine formula. Points are orb points, i.e. (lng, lat) in degrees.
func Distance(p1, p2 orb.Point) float64 {
	lat1Rad := degreesToRadians(p1.Lat())
	lat2Rad := degreesToRadians(p2.Lat())
	deltaLat := degreesToRadians(p2.Lat() - p1.Lat())
	deltaLng := degreesToRadians(p2.Lon() - p1.Lon())

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// IsTriggered reports whether the position lies inside the reminder's geofence.
// The boundary is inclusive.
func IsTriggered(reminder *entity.LocationReminder, position entity.Position) bool {
	return Distance(position.Point(), reminder.Point()) <= reminder.Radius
}

// BoundAround returns a lat/lng box containing every point within radius meters
// of center. ok is false when the box would cross a pole or the antimeridian;
// callers should then fall back to Distance alone.
func BoundAround(center orb.Point, radius float64) (bound orb.Bound, ok bool) {
	angular := radius / EarthRadiusMeters
	latDelta := radiansToDegrees(angular)

	minLat := center.Lat() - latDelta
	maxLat := center.Lat() + latDelta
	if minLat < -90 || maxLat > 90 {
		return orb.Bound{}, false
	}

	cosLat := math.Cos(degreesToRadians(center.Lat()))
	if math.Sin(angular) >= cosLat {
		return orb.Bound{}, false
	}
	lngDelta := radiansToDegrees(math.Asin(math.Sin(angular) / cosLat))

	minLng := center.Lon() - lngDelta
	maxLng := center.Lon() + lngDelta
	if minLng < -180 || maxLng > 180 {
		return orb.Bound{}, false
	}

	return orb.Bound{
		Min: orb.Point{minLng - boundPaddingDegrees, minLat - boundPaddingDegrees},
		Max: orb.Point{maxLng + boundPaddingDegrees, maxLat + boundPaddingDegrees},
	}, true
}

// MayTrigger is a cheap pre-check for IsTriggered. A false result guarantees
// IsTriggered is false; a true result still needs the haversine check.
func MayTrigger(reminder *entity.LocationReminder, position entity.Position) bool {
	bound, ok := BoundAround(reminder.Point(), reminder.Radius)
	if !ok {
		return true
	}

	return bound.Contains(position.Point())
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func radiansToDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
