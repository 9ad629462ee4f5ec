package export

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/nmorrow/spectra/internal/catalog"
	"github.com/nmorrow/spectra/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exportTime = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

func mixedProfile() domain.Profile {
	return domain.Profile{
		domain.MetricFocus:     1,
		domain.MetricSocial:    4,
		domain.MetricSensory:   0,
		domain.MetricMotor:     5,
		domain.MetricRoutine:   3,
		domain.MetricEmotional: 2,
	}
}

func TestCSV_SectionMarkersInFixedOrder(t *testing.T) {
	out := CSV(mixedProfile(), "", exportTime)

	markers := []string{
		"=== METRICS ===",
		"=== SUPPORT STRATEGIES ===",
		"=== RESOURCES FOR PARENTS & CAREGIVERS ===",
		"=== RESOURCES FOR EDUCATORS ===",
	}
	prev := -1
	for _, marker := range markers {
		idx := strings.Index(out, marker)
		require.NotEqual(t, -1, idx, "missing section %q", marker)
		assert.Greater(t, idx, prev, "section %q out of order", marker)
		prev = idx
	}
}

func TestCSV_OneRowPerMetricWithScoreAndLevel(t *testing.T) {
	profile := mixedProfile()
	out := CSV(profile, "", exportTime)

	for _, m := range domain.Metrics {
		score := profile[m]
		want := fmt.Sprintf(`"%s","%d","%s",`, m, score, domain.SupportLevelFor(score).Label())
		assert.Contains(t, out, want, "metric %s", m)
		assert.Equal(t, 1, strings.Count(out, `"`+string(m)+`",`), "metric %s should have exactly one row", m)
	}
	assert.Contains(t, out, "Metric,Score,Level,Description")
}

func TestCSV_TitleAndDateLines(t *testing.T) {
	out := CSV(mixedProfile(), "Alex", exportTime)
	lines := strings.Split(out, "\n")

	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "Neurodiversity Profile - Alex", lines[0])
	assert.Equal(t, "Generated: 2026-03-14", lines[1])
	assert.Equal(t, "", lines[2])
}

func TestCSV_StrategiesAreNumberedAndDeduplicated(t *testing.T) {
	// Focus and Routine at high need share the visual-schedule strategy.
	profile := domain.Profile{
		domain.MetricFocus:     0,
		domain.MetricSocial:    5,
		domain.MetricSensory:   5,
		domain.MetricMotor:     5,
		domain.MetricRoutine:   0,
		domain.MetricEmotional: 5,
	}
	out := CSV(profile, "", exportTime)

	assert.Contains(t, out, `"1. `)
	assert.Equal(t, 1, strings.Count(out, "Use a visual schedule to make the day's flow predictable."))
}

func TestCSV_DoublesEmbeddedQuotes(t *testing.T) {
	assert.Equal(t, `"say ""hi"""`, quote(`say "hi"`))
}

func TestCSV_IncludesAllStaticResources(t *testing.T) {
	out := CSV(mixedProfile(), "", exportTime)

	for _, r := range append(append([]catalog.Resource{}, catalog.CaregiverResources...), catalog.EducatorResources...) {
		assert.Contains(t, out, `"`+r.Name+`","`+r.URL+`","`+r.Description+`"`)
	}
	assert.Equal(t, 2, strings.Count(out, "Resource,URL,Description"))
}

func TestPlaintext_BlocksInCanonicalOrder(t *testing.T) {
	profile := mixedProfile()
	out := Plaintext(profile)

	blocks := strings.Split(out, "\n\n")
	require.Len(t, blocks, len(domain.Metrics))
	for i, m := range domain.Metrics {
		want := fmt.Sprintf("%s: %d\n  %s", m, profile[m], catalog.Describe(m, profile[m]))
		assert.Equal(t, want, blocks[i])
	}
}
