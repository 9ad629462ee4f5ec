package formatter

import (
	"strings"
	"testing"

	"github.com/nmorrow/spectra/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderMeter_FillProportions(t *testing.T) {
	assert.Contains(t, RenderMeter(0, 10), strings.Repeat(emptyBlock, 10))
	assert.Contains(t, RenderMeter(domain.MaxScore, 10), strings.Repeat(filledBlock, 10))
	assert.Contains(t, RenderMeter(3, 10), "3/5")
}

func TestRenderMeter_ClampsOutOfRangeScores(t *testing.T) {
	assert.Contains(t, RenderMeter(-3, 10), "0/5")
	assert.Contains(t, RenderMeter(99, 10), "5/5")
}

func TestDisplayName_StripsAngleBracketsAndTruncates(t *testing.T) {
	assert.Equal(t, "bAlex/b", DisplayName("<b>Alex</b>"))
	assert.Equal(t, "Alex", DisplayName("  Alex  "))

	long := strings.Repeat("a", 100)
	assert.Len(t, DisplayName(long), maxDisplayNameLen)
}

func TestFormatProfile_ShowsEveryMetricInOrder(t *testing.T) {
	out := FormatProfile(domain.DefaultProfile())

	prev := -1
	for _, m := range domain.Metrics {
		idx := strings.Index(out, string(m))
		assert.Greater(t, idx, prev, "metric %s out of order", m)
		prev = idx
	}
}

func TestFormatRecommendations_EmptyLists(t *testing.T) {
	out := FormatRecommendations(domain.RecommendationSet{})
	assert.Contains(t, out, "No suggestions.")
}

func TestFormatRecommendations_ShowsSourceTags(t *testing.T) {
	set := domain.RecommendationSet{
		Caregiver: []domain.Strategy{{Text: "Do the thing.", Source: domain.SourceCDC}},
	}
	out := FormatRecommendations(set)
	assert.Contains(t, out, "Do the thing.")
	assert.Contains(t, out, "[CDC]")
}
