package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nmorrow/spectra/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// MetricStyle returns a style in the metric's signature color.
func MetricStyle(m domain.Metric) lipgloss.Style {
	if tag, ok := domain.MetricColor[m]; ok {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(tag))
	}
	return StyleFg
}

// LevelStyle returns the style used for a support level: red for high
// support, yellow for moderate, green for independent.
func LevelStyle(l domain.SupportLevel) lipgloss.Style {
	switch l {
	case domain.SupportHighNeed:
		return StyleRed
	case domain.SupportModerate:
		return StyleYellow
	case domain.SupportIndependent:
		return StyleGreen
	default:
		return StyleDim
	}
}

// LevelIndicator returns a colored level marker such as "● High Support".
func LevelIndicator(l domain.SupportLevel) string {
	return LevelStyle(l).Render("● " + l.Label())
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}
