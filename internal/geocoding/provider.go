package geocoding

import (
	"context"
	"errors"

	"github.com/UnknownOlympus/openants/internal/models"
)

// ErrEmptyAddress is returned by every provider when the address is blank.
var ErrEmptyAddress = errors.New("address is empty")

// Provider resolves a typed place description into coordinates. It is used
// when a user shares a city or address instead of a device location.
type Provider interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
}
