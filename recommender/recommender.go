// Package recommender picks the catalog fingerprint closest to a query fingerprint.
package recommender

import (
	"fmt"
	"math"
	"movie-rec/domain"
	"movie-rec/errors"
)

// Recommend returns the index entry with the smallest mean absolute difference to query.
// Entries are visited in insertion order and only a strictly smaller distance replaces
// the current best, so the earliest entry wins ties. An empty index yields OK == false.
func Recommend(query domain.Fingerprint, index *domain.FingerprintIndex) (domain.Recommendation, error) {
	best := domain.Recommendation{Score: math.Inf(1)}
	genres := query.Genres()
	for _, entry := range index.Entries() {
		score, err := Distance(query, entry.Fingerprint, genres)
		if err != nil {
			return domain.Recommendation{}, fmt.Errorf("catalog id %s: %w", entry.ID, err)
		}
		if score < best.Score {
			best = domain.Recommendation{ID: entry.ID, Score: score, OK: true}
		}
	}
	if !best.OK {
		return domain.Recommendation{}, nil
	}
	return best, nil
}

// Distance is the mean of |query[g] - other[g]| over genres.
// Both fingerprints must carry exactly the same genres, and genres must be drawn from them.
func Distance(query, other domain.Fingerprint, genres []string) (float64, error) {
	if len(query) != len(other) {
		return 0, fmt.Errorf("%w: %d genres against %d", errors.ErrContractViolation, len(query), len(other))
	}
	if len(genres) == 0 {
		return 0, nil
	}
	var sum float64
	for _, genre := range genres {
		value, ok := other[genre]
		if !ok {
			return 0, fmt.Errorf("%w: genre %q missing", errors.ErrContractViolation, genre)
		}
		score, ok := query[genre]
		if !ok {
			return 0, fmt.Errorf("%w: genre %q missing from query", errors.ErrContractViolation, genre)
		}
		sum += math.Abs(score - value)
	}
	return sum / float64(len(genres)), nil
}
