package recommend

import (
	"testing"

	"github.com/nmorrow/spectra/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_EmptyProfileYieldsEmptyLists(t *testing.T) {
	set := Generate(domain.Profile{})

	assert.Empty(t, set.Caregiver)
	assert.Empty(t, set.Educator)
	assert.NotNil(t, set.Caregiver)
	assert.NotNil(t, set.Educator)
}

func TestPriorityMetrics_PicksThreeLowest(t *testing.T) {
	profile := domain.Profile{
		domain.MetricFocus:     1,
		domain.MetricSocial:    4,
		domain.MetricSensory:   0,
		domain.MetricMotor:     5,
		domain.MetricRoutine:   3,
		domain.MetricEmotional: 2,
	}

	ranked := PriorityMetrics(profile)
	require.Len(t, ranked, PriorityMetricCount)
	assert.Equal(t, domain.MetricSensory, ranked[0].Metric)
	assert.Equal(t, domain.MetricFocus, ranked[1].Metric)
	assert.Equal(t, domain.MetricEmotional, ranked[2].Metric)
}

// Ties between equal scores break on canonical metric declaration order,
// so the selection is fully deterministic.
func TestPriorityMetrics_TieBreakIsCanonicalOrder(t *testing.T) {
	profile := domain.DefaultProfile() // all six share the same score

	ranked := PriorityMetrics(profile)
	require.Len(t, ranked, PriorityMetricCount)
	assert.Equal(t, domain.MetricFocus, ranked[0].Metric)
	assert.Equal(t, domain.MetricSocial, ranked[1].Metric)
	assert.Equal(t, domain.MetricSensory, ranked[2].Metric)
}

func TestGenerate_DeterministicAcrossCalls(t *testing.T) {
	profile := domain.DefaultProfile()

	first := Generate(profile)
	second := Generate(profile)
	assert.Equal(t, first, second)
}

func TestGenerate_TruncatesEachBucketToTwo(t *testing.T) {
	// Only Focus is present, so its single bucket is the only contributor.
	// The authored high-need caregiver bucket for Focus holds three entries.
	profile := domain.Profile{domain.MetricFocus: 0}

	set := Generate(profile)
	assert.Len(t, set.Caregiver, StrategiesPerBucket)
	assert.Len(t, set.Educator, StrategiesPerBucket)
}

func TestGenerate_DeduplicatesSharedTextAcrossMetrics(t *testing.T) {
	// Focus and Routine both carry the visual-schedule strategy at high
	// need; only the first discovery survives.
	profile := domain.Profile{
		domain.MetricFocus:     0,
		domain.MetricSocial:    5,
		domain.MetricSensory:   5,
		domain.MetricMotor:     5,
		domain.MetricRoutine:   0,
		domain.MetricEmotional: 5,
	}

	set := Generate(profile)
	counts := make(map[string]int)
	for _, s := range set.Caregiver {
		counts[s.Text]++
	}
	assert.Equal(t, 1, counts["Use a visual schedule to make the day's flow predictable."])
	for text, n := range counts {
		assert.Equal(t, 1, n, "duplicate caregiver strategy %q", text)
	}
}

func TestGenerate_NoDuplicatesForRepresentativeProfiles(t *testing.T) {
	profiles := map[string]domain.Profile{
		"all-low":  uniformProfile(0),
		"all-high": uniformProfile(domain.MaxScore),
		"mixed": {
			domain.MetricFocus:     1,
			domain.MetricSocial:    4,
			domain.MetricSensory:   0,
			domain.MetricMotor:     5,
			domain.MetricRoutine:   3,
			domain.MetricEmotional: 2,
		},
	}

	for name, profile := range profiles {
		set := Generate(profile)
		for _, aud := range domain.Audiences {
			seen := make(map[string]bool)
			for _, s := range set.ForAudience(aud) {
				assert.False(t, seen[s.Text], "%s/%s: duplicate %q", name, aud, s.Text)
				seen[s.Text] = true
			}
		}
	}
}

func TestGenerate_OrderFollowsPriorityMetrics(t *testing.T) {
	// Sensory (0) outranks Focus (1), so sensory strategies come first.
	profile := domain.Profile{
		domain.MetricFocus:     1,
		domain.MetricSocial:    5,
		domain.MetricSensory:   0,
		domain.MetricMotor:     5,
		domain.MetricRoutine:   5,
		domain.MetricEmotional: 5,
	}

	set := Generate(profile)
	require.NotEmpty(t, set.Caregiver)
	assert.Equal(t, "Build a calm-down space at home with low light and familiar textures.", set.Caregiver[0].Text)
}

func TestGenerate_NeverPanicsAtExtremes(t *testing.T) {
	assert.NotPanics(t, func() {
		Generate(uniformProfile(0))
		Generate(uniformProfile(domain.MaxScore))
		Generate(domain.Profile{})
		Generate(domain.Profile{domain.MetricFocus: -3, domain.MetricSocial: 99})
	})
}

func uniformProfile(score int) domain.Profile {
	p := make(domain.Profile, len(domain.Metrics))
	for _, m := range domain.Metrics {
		p[m] = score
	}
	return p
}
