package models

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidCoordinates is returned when a coordinate is NaN, infinite or out of range.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Coordinates represents a geographical point defined by its latitude and longitude.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`  // Latitude of the geographical point.
	Longitude float64 `json:"longitude"` // Longitude of the geographical point.
}

// Validate checks that latitude is within [-90, 90] and longitude within [-180, 180].
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return fmt.Errorf("%w: NaN value", ErrInvalidCoordinates)
	}
	if math.IsInf(c.Latitude, 0) || math.IsInf(c.Longitude, 0) {
		return fmt.Errorf("%w: infinite value", ErrInvalidCoordinates)
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude %f out of [-90, 90]", ErrInvalidCoordinates, c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %f out of [-180, 180]", ErrInvalidCoordinates, c.Longitude)
	}
	return nil
}

// LocationSample is a single reading from a device location service.
// Only the newest sample per user is kept.
type LocationSample struct {
	Coordinates
	Accuracy  float64   `json:"accuracy,omitempty"` // Accuracy radius in meters, 0 when unknown.
	Timestamp time.Time `json:"timestamp"`          // When the reading was taken.
}

// Validate checks the coordinate and that accuracy is not negative.
func (s LocationSample) Validate() error {
	if err := s.Coordinates.Validate(); err != nil {
		return err
	}
	if s.Accuracy < 0 || math.IsNaN(s.Accuracy) {
		return fmt.Errorf("%w: accuracy must be >= 0", ErrInvalidCoordinates)
	}
	return nil
}

// BoundingBox is an axis-aligned latitude/longitude window.
type BoundingBox struct {
	MinLatitude  float64
	MaxLatitude  float64
	MinLongitude float64
	MaxLongitude float64
}
