package formatter

import (
	"fmt"
	"strings"

	"github.com/nmorrow/spectra/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderMeter renders a score meter like [███░░░] 3/5, colored by the
// score's support level.
func RenderMeter(score, width int) string {
	if score < 0 {
		score = 0
	}
	if score > domain.MaxScore {
		score = domain.MaxScore
	}
	if width < domain.MaxScore {
		width = domain.MaxScore
	}

	filled := score * width / domain.MaxScore
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := LevelStyle(domain.SupportLevelFor(score))
	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), score, domain.MaxScore)
}
