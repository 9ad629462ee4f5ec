package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nmorrow/spectra/internal/catalog"
	"github.com/nmorrow/spectra/internal/cli/formatter"
	"github.com/nmorrow/spectra/internal/domain"
	"github.com/nmorrow/spectra/internal/recommend"
	"github.com/nmorrow/spectra/internal/share"
)

// uiMode selects between the two presentation states: Editing (sliders
// mutable) and Viewing (read-only, entered via a share link).
type uiMode int

const (
	modeEditing uiMode = iota
	modeViewing
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Increase key.Binding
	Decrease key.Binding
	Reset    key.Binding
	Share    key.Binding
	Edit     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous metric")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next metric")),
		Increase: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "raise score")),
		Decrease: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "lower score")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset to defaults")),
		Share:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "show share link")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit a fresh profile")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// profileModel is the bubbletea model behind both UI modes. The
// recommendation set is recomputed synchronously on every profile change, so
// the strategy panel is never stale.
type profileModel struct {
	app        *App
	mode       uiMode
	profile    domain.Profile
	sharedName string
	cursor     int
	recs       domain.RecommendationSet
	keys       keyMap
	status     string
	quitting   bool
}

func newEditorModel(app *App) profileModel {
	profile := domain.DefaultProfile()
	return profileModel{
		app:     app,
		mode:    modeEditing,
		profile: profile,
		recs:    recommend.Generate(profile),
		keys:    defaultKeyMap(),
	}
}

func newViewerModel(app *App, payload *share.Payload) profileModel {
	profile := payload.Profile.Normalize()
	return profileModel{
		app:        app,
		mode:       modeViewing,
		profile:    profile,
		sharedName: formatter.DisplayName(payload.Name),
		recs:       recommend.Generate(profile),
		keys:       defaultKeyMap(),
	}
}

func (m profileModel) Init() tea.Cmd { return nil }

func (m profileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeEditing:
		return m.updateEditing(keyMsg)
	case modeViewing:
		return m.updateViewing(keyMsg)
	}
	return m, nil
}

func (m profileModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(domain.Metrics)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Increase):
		m.adjust(+1)
	case key.Matches(msg, m.keys.Decrease):
		m.adjust(-1)
	case key.Matches(msg, m.keys.Reset):
		m.profile = domain.DefaultProfile()
		m.recs = recommend.Generate(m.profile)
		m.status = "Profile reset to defaults."
	case key.Matches(msg, m.keys.Share):
		m.status = share.Encode(m.app.BaseURL, m.profile, "")
	}
	return m, nil
}

func (m profileModel) updateViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Read-only: the only way out is the explicit edit action, which starts
	// from defaults rather than carrying the viewed profile over.
	if key.Matches(msg, m.keys.Edit) {
		m.mode = modeEditing
		m.sharedName = ""
		m.profile = domain.DefaultProfile()
		m.recs = recommend.Generate(m.profile)
		m.cursor = 0
		m.status = "Now editing a fresh profile."
	}
	return m, nil
}

// adjust shifts the selected metric's score by delta, clamped to the scale,
// and recomputes the recommendation set.
func (m *profileModel) adjust(delta int) {
	metric := domain.Metrics[m.cursor]
	next := m.profile[metric] + delta
	if !domain.IsValidScore(next) {
		return
	}
	m.profile[metric] = next
	m.recs = recommend.Generate(m.profile)
	m.status = ""
}

func (m profileModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.titleLine() + "\n\n")

	for i, metric := range domain.Metrics {
		marker := "  "
		if m.mode == modeEditing && i == m.cursor {
			marker = formatter.StyleHeader.Render("▸ ")
		}
		score := m.profile[metric]
		name := fmt.Sprintf("%-10s", string(metric))
		b.WriteString(fmt.Sprintf("%s%s %s %s  %s\n",
			marker,
			domain.MetricEmoji[metric],
			formatter.MetricStyle(metric).Render(name),
			formatter.RenderMeter(score, 10),
			formatter.LevelIndicator(domain.SupportLevelFor(score)),
		))
	}

	selected := domain.Metrics[m.cursor]
	b.WriteString("\n" + formatter.StyleDim.Render(catalog.Describe(selected, m.profile[selected])) + "\n")

	b.WriteString("\n" + formatter.FormatRecommendations(m.recs))

	if m.status != "" {
		b.WriteString("\n" + formatter.StyleYellow.Render(m.status) + "\n")
	}
	b.WriteString("\n" + m.helpLine() + "\n")
	return b.String()
}

func (m profileModel) titleLine() string {
	if m.mode == modeViewing {
		who := "Shared profile"
		if m.sharedName != "" {
			who = m.sharedName + "'s profile"
		}
		return formatter.StyleBold.Render(who) + formatter.StyleDim.Render("  (read-only)")
	}
	return formatter.StyleBold.Render("Neurodiversity profile")
}

func (m profileModel) helpLine() string {
	var bindings []key.Binding
	if m.mode == modeViewing {
		bindings = []key.Binding{m.keys.Edit, m.keys.Quit}
	} else {
		bindings = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Increase, m.keys.Decrease, m.keys.Reset, m.keys.Share, m.keys.Quit}
	}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, fmt.Sprintf("%s %s", formatter.StyleBold.Render(h.Key), formatter.StyleDim.Render(h.Desc)))
	}
	return strings.Join(parts, formatter.StyleDim.Render("  ·  "))
}

// runEditor starts the interactive editor at the default profile.
func runEditor(app *App) error {
	return runProfileTUI(newEditorModel(app))
}

// runProfileTUI runs a profile model to completion.
func runProfileTUI(m profileModel) error {
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}
	return nil
}
