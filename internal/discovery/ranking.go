package discovery

import (
	"sort"

	"github.com/gdugdh24/mpit2026-discovery/internal/domain"
)

// Rank scores every candidate by mutual interests with the viewer and returns
// them best first. Equal scores keep their input order. When both sides have
// a location the distance is attached too, but it does not affect the order.
func Rank(candidates []domain.Profile, viewer domain.Profile) []domain.RecommendationResult {
	viewerInterests := InterestSet(viewer.InterestsText)

	results := make([]domain.RecommendationResult, 0, len(candidates))
	for _, candidate := range candidates {
		shared := intersect(viewerInterests, InterestSet(candidate.InterestsText))
		sort.Strings(shared)

		result := domain.RecommendationResult{
			Profile:             candidate,
			RecommendationScore: len(shared),
			SharedInterests:     shared,
		}
		if viewer.Location != nil && candidate.Location != nil {
			d := Distance(viewer.Location, candidate.Location)
			result.DistanceKm = &d
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RecommendationScore > results[j].RecommendationScore
	})
	return results
}
