package catalog

import (
	"strings"
	"testing"

	"github.com/nmorrow/spectra/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe_CoversEveryMetricAndScore(t *testing.T) {
	for _, m := range domain.Metrics {
		for s := 0; s <= domain.MaxScore; s++ {
			text := Describe(m, s)
			assert.NotEmpty(t, text, "%s score %d", m, s)
			assert.NotEqual(t, FallbackDescription, text, "%s score %d", m, s)
		}
	}
}

func TestDescribe_FallsBackOutOfBounds(t *testing.T) {
	assert.Equal(t, FallbackDescription, Describe(domain.MetricFocus, -1))
	assert.Equal(t, FallbackDescription, Describe(domain.MetricFocus, domain.MaxScore+1))
	assert.Equal(t, FallbackDescription, Describe(domain.Metric("Nope"), 2))
}

func TestDescribe_NeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		Describe(domain.MetricFocus, -1000)
		Describe(domain.Metric(""), 1000)
	})
}

func TestStrategiesFor_EveryBucketIsAuthored(t *testing.T) {
	levels := []domain.SupportLevel{
		domain.SupportHighNeed, domain.SupportModerate, domain.SupportIndependent,
	}
	for _, m := range domain.Metrics {
		for _, a := range domain.Audiences {
			for _, l := range levels {
				bucket := StrategiesFor(m, a, l)
				require.NotEmpty(t, bucket, "%s/%s/%s", m, a, l)
				for _, s := range bucket {
					assert.NotEmpty(t, strings.TrimSpace(s.Text), "%s/%s/%s", m, a, l)
					assert.NotEmpty(t, s.Source, "%s/%s/%s: strategy without attribution", m, a, l)
				}
			}
		}
	}
}

func TestStrategiesFor_UnknownLookupsYieldNil(t *testing.T) {
	assert.Nil(t, StrategiesFor(domain.Metric("Nope"), domain.AudienceCaregiver, domain.SupportModerate))
	assert.Nil(t, StrategiesFor(domain.MetricFocus, domain.Audience("nobody"), domain.SupportModerate))
}

func TestStrategySources_AreFromTheKnownSet(t *testing.T) {
	known := map[domain.Source]bool{
		domain.SourceCDC:        true,
		domain.SourceAAP:        true,
		domain.SourceUnderstood: true,
		domain.SourceNASP:       true,
		domain.SourceCHADD:      true,
	}
	levels := []domain.SupportLevel{
		domain.SupportHighNeed, domain.SupportModerate, domain.SupportIndependent,
	}
	for _, m := range domain.Metrics {
		for _, a := range domain.Audiences {
			for _, l := range levels {
				for _, s := range StrategiesFor(m, a, l) {
					assert.True(t, known[s.Source], "%s/%s/%s: unknown source %q", m, a, l, s.Source)
				}
			}
		}
	}
}
