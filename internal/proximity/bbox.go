package proximity

import (
	"math"

	"github.com/UnknownOlympus/openants/internal/models"
)

// BoundingBox returns a window that contains every point within radiusMeters
// of center. It may contain more; callers still filter with Distance.
// Near the poles or across the antimeridian the longitude span widens to the full range.
func BoundingBox(center models.Coordinates, radiusMeters float64) models.BoundingBox {
	latDelta := radiusMeters / EarthRadiusMeters * 180 / math.Pi

	box := models.BoundingBox{
		MinLatitude:  math.Max(center.Latitude-latDelta, -90),
		MaxLatitude:  math.Min(center.Latitude+latDelta, 90),
		MinLongitude: -180,
		MaxLongitude: 180,
	}
	if box.MinLatitude <= -90 || box.MaxLatitude >= 90 {
		return box
	}

	// The widest longitude span is at the box edge closest to a pole.
	maxAbsLat := math.Max(math.Abs(box.MinLatitude), math.Abs(box.MaxLatitude))
	lngDelta := latDelta / math.Cos(degreesToRadians(maxAbsLat))
	if center.Longitude-lngDelta < -180 || center.Longitude+lngDelta > 180 {
		return box
	}

	box.MinLongitude = center.Longitude - lngDelta
	box.MaxLongitude = center.Longitude + lngDelta

	return box
}
