package proximity

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/UnknownOlympus/openants/internal/models"
)

// SortKey selects the ordering applied by Rank.
type SortKey string

const (
	// SortByMatchScore orders by match score, highest first.
	SortByMatchScore SortKey = "match"
	// SortByDistance orders by distance, closest first.
	SortByDistance SortKey = "distance"
	// SortByMutualConnections orders by mutual connection count, highest first.
	SortByMutualConnections SortKey = "mutual"
)

// ErrUnknownSortKey is returned by ParseSortKey for unsupported values.
var ErrUnknownSortKey = errors.New("unknown sort key")

// ParseSortKey converts a wire value into a SortKey. Empty input means SortByMatchScore.
func ParseSortKey(raw string) (SortKey, error) {
	switch SortKey(raw) {
	case "", SortByMatchScore:
		return SortByMatchScore, nil
	case SortByDistance:
		return SortByDistance, nil
	case SortByMutualConnections:
		return SortByMutualConnections, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, raw)
	}
}

// Rank returns a stably sorted copy of scored. The input slice is not modified.
// An unknown key leaves the copy in input order.
func Rank(scored []models.ScoredCandidate, by SortKey) []models.ScoredCandidate {
	ranked := slices.Clone(scored)
	if ranked == nil {
		ranked = []models.ScoredCandidate{}
	}

	switch by {
	case SortByMatchScore:
		slices.SortStableFunc(ranked, func(a, b models.ScoredCandidate) int {
			return cmp.Compare(b.MatchScore, a.MatchScore)
		})
	case SortByDistance:
		slices.SortStableFunc(ranked, func(a, b models.ScoredCandidate) int {
			return cmp.Compare(a.DistanceMeters, b.DistanceMeters)
		})
	case SortByMutualConnections:
		slices.SortStableFunc(ranked, func(a, b models.ScoredCandidate) int {
			return cmp.Compare(b.MutualConnections, a.MutualConnections)
		})
	}

	return ranked
}

// NearbyCandidates filters candidates around ref, scores them against the same radius
// and ranks the result.
func NearbyCandidates(
	ref models.Coordinates,
	candidates []models.Candidate,
	radiusMeters float64,
	by SortKey,
) []models.ScoredCandidate {
	return Rank(ScoreAll(FilterByRadius(ref, candidates, radiusMeters), radiusMeters), by)
}
