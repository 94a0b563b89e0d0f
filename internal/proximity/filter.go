package proximity

import "github.com/UnknownOlympus/openants/internal/models"

// Nearby is a candidate admitted by FilterByRadius.
type Nearby struct {
	Candidate      models.Candidate
	DistanceMeters float64
	Index          int // position of the candidate in the unfiltered input
}

// FilterByRadius returns the candidates whose distance from ref is at most
// radiusMeters, in input order. A radius <= 0 admits nothing.
func FilterByRadius(ref models.Coordinates, candidates []models.Candidate, radiusMeters float64) []Nearby {
	if radiusMeters <= 0 || len(candidates) == 0 {
		return []Nearby{}
	}

	filtered := make([]Nearby, 0, len(candidates))
	for idx, c := range candidates {
		dist := Distance(ref, c.Position)
		if dist <= radiusMeters {
			filtered = append(filtered, Nearby{Candidate: c, DistanceMeters: dist, Index: idx})
		}
	}

	return filtered
}
