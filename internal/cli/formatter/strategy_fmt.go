package formatter

import (
	"fmt"
	"strings"

	"github.com/nmorrow/spectra/internal/domain"
)

// FormatRecommendations renders both audience strategy lists with source
// attributions.
func FormatRecommendations(set domain.RecommendationSet) string {
	var b strings.Builder
	b.WriteString(Header("For Parents & Caregivers") + "\n")
	b.WriteString(formatStrategies(set.Caregiver))
	b.WriteString("\n" + Header("For Educators") + "\n")
	b.WriteString(formatStrategies(set.Educator))
	return b.String()
}

func formatStrategies(strategies []domain.Strategy) string {
	if len(strategies) == 0 {
		return StyleDim.Render("No suggestions.") + "\n"
	}
	var b strings.Builder
	for i, s := range strategies {
		b.WriteString(fmt.Sprintf("%2d. %s %s\n",
			i+1,
			StyleFg.Render(s.Text),
			StyleDim.Render("["+string(s.Source)+"]"),
		))
	}
	return b.String()
}
