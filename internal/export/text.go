package export

import (
	"fmt"
	"strings"

	"github.com/nmorrow/spectra/internal/catalog"
	"github.com/nmorrow/spectra/internal/domain"
)

// Plaintext renders the profile as simple metric blocks in canonical order:
//
//	Focus: 3
//	  Holds attention for typical tasks with occasional reminders.
//
// Blocks are separated by blank lines.
func Plaintext(profile domain.Profile) string {
	blocks := make([]string, 0, len(domain.Metrics))
	for _, m := range domain.Metrics {
		score := profile[m]
		blocks = append(blocks, fmt.Sprintf("%s: %d\n  %s", m, score, catalog.Describe(m, score)))
	}
	return strings.Join(blocks, "\n\n")
}
