package formatter

import (
	"fmt"
	"strings"

	"github.com/nmorrow/spectra/internal/catalog"
	"github.com/nmorrow/spectra/internal/domain"
)

const meterWidth = 10

// FormatProfile renders the six metrics with meters, levels and
// descriptions, in canonical order.
func FormatProfile(profile domain.Profile) string {
	var b strings.Builder
	b.WriteString(Header("Profile") + "\n")
	for _, m := range domain.Metrics {
		score := profile[m]
		// Pad before styling so ANSI escapes don't skew the column width.
		name := fmt.Sprintf("%-10s", string(m))
		b.WriteString(fmt.Sprintf("%s %s %s  %s\n",
			domain.MetricEmoji[m],
			MetricStyle(m).Render(name),
			RenderMeter(score, meterWidth),
			LevelIndicator(domain.SupportLevelFor(score)),
		))
		b.WriteString("   " + StyleDim.Render(catalog.Describe(m, score)) + "\n")
	}
	return b.String()
}

// FormatSnapshotList renders saved snapshots as one line each.
func FormatSnapshotList(snapshots []*domain.Snapshot) string {
	if len(snapshots) == 0 {
		return StyleDim.Render("No saved snapshots.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header("Snapshots") + "\n")
	for _, s := range snapshots {
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			StyleDim.Render(s.CreatedAt.Local().Format("2006-01-02 15:04")),
			StyleBold.Render(s.Name),
			StyleDim.Render(s.ID),
		))
	}
	return b.String()
}
