package proximity_test

import (
	"math"
	"testing"

	"github.com/UnknownOlympus/openants/internal/models"
	"github.com/UnknownOlympus/openants/internal/proximity"
	"github.com/stretchr/testify/assert"
)

var london = models.Coordinates{Latitude: 51.5074, Longitude: -0.1276}

func TestDistance_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      models.Coordinates
		want      float64
		tolerance float64
	}{
		{
			name: "same point",
			a:    london, b: london,
			want: 0, tolerance: 0,
		},
		{
			name: "London to a point 0.01 deg north",
			a:    london, b: models.Coordinates{Latitude: 51.5174, Longitude: -0.1276},
			want: 1112, tolerance: 1,
		},
		{
			name: "London to a point 1 deg north",
			a:    london, b: models.Coordinates{Latitude: 52.5074, Longitude: -0.1276},
			want: 111195, tolerance: 1,
		},
		{
			name: "New York to Los Angeles",
			a:    models.Coordinates{Latitude: 40.7128, Longitude: -74.0060},
			b:    models.Coordinates{Latitude: 34.0522, Longitude: -118.2437},
			want: 3944000, tolerance: 50000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := proximity.Distance(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, tt.tolerance)
		})
	}
}

func TestDistance_Identity(t *testing.T) {
	points := []models.Coordinates{
		{Latitude: 0, Longitude: 0},
		{Latitude: 90, Longitude: 180},
		{Latitude: -90, Longitude: -180},
		{Latitude: 25.033, Longitude: 121.565},
		london,
	}
	for _, p := range points {
		assert.Zero(t, proximity.Distance(p, p), "distance(%v, %v)", p, p)
	}
}

func TestDistance_Symmetry(t *testing.T) {
	pairs := [][2]models.Coordinates{
		{{Latitude: 25, Longitude: 121}, {Latitude: 26, Longitude: 122}},
		{london, {Latitude: -33.8688, Longitude: 151.2093}},
		{{Latitude: 0, Longitude: 179.9}, {Latitude: 0, Longitude: -179.9}},
	}
	for _, p := range pairs {
		d1 := proximity.Distance(p[0], p[1])
		d2 := proximity.Distance(p[1], p[0])
		assert.InEpsilon(t, d1, d2, 1e-6)
	}
}

func TestDistance_SameMeridian(t *testing.T) {
	for _, delta := range []float64{0.001, 0.5, 1, 10, 45} {
		a := models.Coordinates{Latitude: 10, Longitude: 30}
		b := models.Coordinates{Latitude: 10 + delta, Longitude: 30}
		want := delta * (math.Pi / 180) * proximity.EarthRadiusMeters
		assert.InEpsilon(t, want, proximity.Distance(a, b), 1e-9)
	}
}

func TestDistance_NonNegative(t *testing.T) {
	a := models.Coordinates{Latitude: -45, Longitude: 170}
	b := models.Coordinates{Latitude: 45, Longitude: -170}
	assert.GreaterOrEqual(t, proximity.Distance(a, b), 0.0)
}
