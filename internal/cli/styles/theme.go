// Package styles renders scenario runs, float area state and geometry results
// for the terminal.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette names one color per thing the dock views show: the chrome around
// them, the two float area states, the two overlay kinds, the edge zone and
// scenario verdicts.
type Palette struct {
	Background string
	Panel      string
	Text       string
	Muted      string
	Frame      string

	Idle     string
	Dragging string
	Owned    string
	Borrowed string
	Edge     string
	Interior string

	Pass string
	Fail string
}

// Theme holds the palette as lipgloss colors plus the styles built from it.
type Theme struct {
	Background lipgloss.Color
	Panel      lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Frame      lipgloss.Color

	Idle     lipgloss.Color
	Dragging lipgloss.Color
	Owned    lipgloss.Color
	Borrowed lipgloss.Color
	Edge     lipgloss.Color
	Interior lipgloss.Color

	Pass lipgloss.Color
	Fail lipgloss.Color

	// Text
	Title     lipgloss.Style
	Normal    lipgloss.Style
	Subtle    lipgloss.Style
	AreaName  lipgloss.Style
	Candidate lipgloss.Style

	// Verdicts and zones
	PassStyle     lipgloss.Style
	FailStyle     lipgloss.Style
	EdgeStyle     lipgloss.Style
	InteriorStyle lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style
	ConfigKey  lipgloss.Style

	// AreaBox frames one float area; its border follows the area state.
	AreaBox   lipgloss.Style
	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

// DefaultPalette returns the dark palette used by every command. Idle areas
// are slate, a live drag session is amber, owned overlays are blue and
// borrowed ones violet.
func DefaultPalette() Palette {
	return Palette{
		Background: "#0f1115",
		Panel:      "#262a33",
		Text:       "#e6e8ee",
		Muted:      "#8a90a0",
		Frame:      "#3a3f4b",

		Idle:     "#64748b",
		Dragging: "#f5a524",
		Owned:    "#60a5fa",
		Borrowed: "#a78bfa",
		Edge:     "#fb7185",
		Interior: "#34d399",

		Pass: "#34d399",
		Fail: "#f43f5e",
	}
}

// NewTheme creates the default Theme.
func NewTheme() *Theme {
	return NewThemeFromPalette(DefaultPalette())
}

// NewThemeFromPalette creates a Theme from p.
func NewThemeFromPalette(p Palette) *Theme {
	t := &Theme{
		Background: lipgloss.Color(p.Background),
		Panel:      lipgloss.Color(p.Panel),
		Text:       lipgloss.Color(p.Text),
		Muted:      lipgloss.Color(p.Muted),
		Frame:      lipgloss.Color(p.Frame),

		Idle:     lipgloss.Color(p.Idle),
		Dragging: lipgloss.Color(p.Dragging),
		Owned:    lipgloss.Color(p.Owned),
		Borrowed: lipgloss.Color(p.Borrowed),
		Edge:     lipgloss.Color(p.Edge),
		Interior: lipgloss.Color(p.Interior),

		Pass: lipgloss.Color(p.Pass),
		Fail: lipgloss.Color(p.Fail),
	}

	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	t.Normal = lipgloss.NewStyle().Foreground(t.Text)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.AreaName = lipgloss.NewStyle().Foreground(t.Owned).Bold(true)
	// Candidate sizes share the dragging color: they only exist during a drag.
	t.Candidate = lipgloss.NewStyle().Foreground(t.Dragging).Bold(true)

	t.PassStyle = lipgloss.NewStyle().Foreground(t.Pass)
	t.FailStyle = lipgloss.NewStyle().Foreground(t.Fail)
	t.EdgeStyle = lipgloss.NewStyle().Foreground(t.Edge)
	t.InteriorStyle = lipgloss.NewStyle().Foreground(t.Interior)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Dragging).
		Padding(0, 1)
	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Panel).
		Padding(0, 1)
	t.ConfigKey = lipgloss.NewStyle().Foreground(t.Owned)

	t.AreaBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Idle).
		Padding(0, 1)
	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Frame).
		Padding(1, 2)
	t.BoxHeader = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Frame).
		MarginBottom(1)
}
