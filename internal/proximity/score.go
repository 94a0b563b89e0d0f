package proximity

import (
	"math"

	"github.com/UnknownOlympus/openants/internal/models"
)

const (
	// ScoreCeiling is the score of a co-located candidate.
	ScoreCeiling = 100
	// ScoreFloor is the lowest score ever reported.
	ScoreFloor = 50
)

// Palette is the ordered set of badge colors assigned to candidates.
var Palette = []string{"indigo", "emerald", "amber", "rose", "sky", "violet"}

// Score maps a distance to a match score that decays linearly from 100 at
// distance 0 to 50 at maxRadiusMeters, and never drops below 50.
// maxRadiusMeters must be the radius used to filter the candidate; a
// mismatched radius gives a misleading score and is not corrected here.
func Score(distanceMeters, maxRadiusMeters float64) int {
	if maxRadiusMeters <= 0 {
		return ScoreFloor
	}

	raw := math.Round(ScoreCeiling - (distanceMeters/maxRadiusMeters)*(ScoreCeiling-ScoreFloor))
	switch {
	case raw < ScoreFloor:
		return ScoreFloor
	case raw > ScoreCeiling:
		return ScoreCeiling
	}

	return int(raw)
}

// ColorTag picks a palette entry by position in the unsorted input list.
func ColorTag(index int) string {
	n := len(Palette)
	return Palette[((index%n)+n)%n]
}

// ScoreAll annotates every admitted candidate with its score and color tag.
func ScoreAll(nearby []Nearby, maxRadiusMeters float64) []models.ScoredCandidate {
	scored := make([]models.ScoredCandidate, len(nearby))
	for i, n := range nearby {
		scored[i] = models.ScoredCandidate{
			Candidate:      n.Candidate,
			DistanceMeters: n.DistanceMeters,
			MatchScore:     Score(n.DistanceMeters, maxRadiusMeters),
			ColorTag:       ColorTag(n.Index),
		}
	}

	return scored
}
