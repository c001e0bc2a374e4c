package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockarea/internal/ui/dock"
)

// AccentBadge renders a highlighted badge.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge in the panel color.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

func (t *Theme) filledBadge(text string, bg lipgloss.Color) string {
	return lipgloss.NewStyle().
		Foreground(t.Background).
		Background(bg).
		Padding(0, 1).
		Render(text)
}

// PassBadge renders PASS or FAIL.
func (t *Theme) PassBadge(passed bool) string {
	if passed {
		return t.filledBadge("PASS", t.Pass)
	}
	return t.filledBadge("FAIL", t.Fail)
}

// StateColor is the color of a float area state, as reported by State.String.
func (t *Theme) StateColor(state string) lipgloss.Color {
	if state == dock.StateDragging.String() {
		return t.Dragging
	}
	return t.Idle
}

// StateBadge renders a float area state.
func (t *Theme) StateBadge(state string) string {
	return t.filledBadge(state, t.StateColor(state))
}

// OverlayBadge renders whether an area owns its overlay or borrows an
// enclosing container's.
func (t *Theme) OverlayBadge(owned bool) string {
	if owned {
		return t.filledBadge("owned", t.Owned)
	}
	return t.filledBadge("borrowed", t.Borrowed)
}
