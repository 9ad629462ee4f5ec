// Package recommend turns a profile into a prioritized, deduplicated set of
// support strategies. It is pure: no I/O, no state, and it never fails for
// any well-typed profile.
package recommend

import (
	"sort"

	"github.com/nmorrow/spectra/internal/catalog"
	"github.com/nmorrow/spectra/internal/domain"
)

const (
	// PriorityMetricCount is how many of the lowest-scoring metrics drive
	// strategy selection.
	PriorityMetricCount = 3

	// StrategiesPerBucket caps how many strategies are taken from each
	// (metric, audience, level) bucket.
	StrategiesPerBucket = 2
)

// RankedMetric pairs a metric with its score for priority sorting.
type RankedMetric struct {
	Metric domain.Metric
	Score  int
}

// PriorityMetrics returns the lowest-scoring metrics of the profile,
// ascending by score, at most PriorityMetricCount of them. Ties break on
// canonical metric order (domain.Metrics), which makes repeated calls with
// the same profile deterministic.
func PriorityMetrics(profile domain.Profile) []RankedMetric {
	ranked := make([]RankedMetric, 0, len(domain.Metrics))
	for _, m := range domain.Metrics {
		if score, ok := profile[m]; ok {
			ranked = append(ranked, RankedMetric{Metric: m, Score: score})
		}
	}

	// Stable sort over canonical order = canonical tie-break.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score < ranked[j].Score
	})

	if len(ranked) > PriorityMetricCount {
		ranked = ranked[:PriorityMetricCount]
	}
	return ranked
}

// Generate derives the recommendation set for a profile. Strategies are
// gathered from the priority metrics in discovery order and deduplicated by
// text within each audience; the first occurrence keeps its source tag.
// An empty profile yields two empty lists.
func Generate(profile domain.Profile) domain.RecommendationSet {
	set := domain.RecommendationSet{
		Caregiver: []domain.Strategy{},
		Educator:  []domain.Strategy{},
	}
	if len(profile) == 0 {
		return set
	}

	seen := map[domain.Audience]map[string]bool{
		domain.AudienceCaregiver: {},
		domain.AudienceEducator:  {},
	}

	for _, rm := range PriorityMetrics(profile) {
		level := domain.SupportLevelFor(rm.Score)
		for _, aud := range domain.Audiences {
			bucket := catalog.StrategiesFor(rm.Metric, aud, level)
			if len(bucket) > StrategiesPerBucket {
				bucket = bucket[:StrategiesPerBucket]
			}
			for _, s := range bucket {
				if seen[aud][s.Text] {
					continue
				}
				seen[aud][s.Text] = true
				switch aud {
				case domain.AudienceCaregiver:
					set.Caregiver = append(set.Caregiver, s)
				case domain.AudienceEducator:
					set.Educator = append(set.Educator, s)
				}
			}
		}
	}
	return set
}
