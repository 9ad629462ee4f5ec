// Package export renders a profile into the file formats offered to users:
// a spreadsheet-friendly CSV report and a plaintext summary. Both are
// one-way; nothing in the app reads these formats back.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/nmorrow/spectra/internal/catalog"
	"github.com/nmorrow/spectra/internal/domain"
	"github.com/nmorrow/spectra/internal/recommend"
)

// Section markers, in the order they appear in the file.
const (
	sectionMetrics            = "=== METRICS ==="
	sectionStrategies         = "=== SUPPORT STRATEGIES ==="
	sectionCaregiverResources = "=== RESOURCES FOR PARENTS & CAREGIVERS ==="
	sectionEducatorResources  = "=== RESOURCES FOR EDUCATORS ==="
)

// quote wraps a CSV cell in double quotes, doubling embedded quotes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// CSV renders the full CSV report for a profile. The name, when non-blank,
// appears in the title line. now feeds the generation-date line so output is
// reproducible in tests.
func CSV(profile domain.Profile, name string, now time.Time) string {
	var b strings.Builder

	title := "Neurodiversity Profile"
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		title += " - " + trimmed
	}
	b.WriteString(title + "\n")
	b.WriteString("Generated: " + now.Format("2006-01-02") + "\n\n")

	b.WriteString(sectionMetrics + "\n")
	b.WriteString("Metric,Score,Level,Description\n")
	for _, m := range domain.Metrics {
		score := profile[m]
		row := []string{
			quote(string(m)),
			quote(fmt.Sprintf("%d", score)),
			quote(domain.SupportLevelFor(score).Label()),
			quote(catalog.Describe(m, score)),
		}
		b.WriteString(strings.Join(row, ",") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionStrategies + "\n")
	for i, text := range dedupedStrategyTexts(profile) {
		b.WriteString(quote(fmt.Sprintf("%d. %s", i+1, text)) + "\n")
	}
	b.WriteString("\n")

	writeResources(&b, sectionCaregiverResources, catalog.CaregiverResources)
	b.WriteString("\n")
	writeResources(&b, sectionEducatorResources, catalog.EducatorResources)

	return b.String()
}

// dedupedStrategyTexts flattens both audience lists into one text list,
// caregiver first, dropping repeats across audiences.
func dedupedStrategyTexts(profile domain.Profile) []string {
	set := recommend.Generate(profile)
	seen := make(map[string]bool)
	var texts []string
	for _, list := range [][]domain.Strategy{set.Caregiver, set.Educator} {
		for _, s := range list {
			if seen[s.Text] {
				continue
			}
			seen[s.Text] = true
			texts = append(texts, s.Text)
		}
	}
	return texts
}

func writeResources(b *strings.Builder, marker string, resources []catalog.Resource) {
	b.WriteString(marker + "\n")
	b.WriteString("Resource,URL,Description\n")
	for _, r := range resources {
		b.WriteString(quote(r.Name) + "," + quote(r.URL) + "," + quote(r.Description) + "\n")
	}
}
