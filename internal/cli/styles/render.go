package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockarea/internal/domain/entity"
	"github.com/bnema/dockarea/internal/infrastructure/config"
	"github.com/bnema/dockarea/internal/simulate"
)

// Renderer renders command output with a theme.
type Renderer struct {
	theme *Theme
}

// NewRenderer creates a new renderer.
func NewRenderer(theme *Theme) *Renderer {
	return &Renderer{theme: theme}
}

// RenderResult renders one scenario run: step log, area states and failures.
func (r *Renderer) RenderResult(res *simulate.Result) string {
	t := r.theme
	var b strings.Builder

	b.WriteString(t.PassBadge(res.Passed()))
	b.WriteString(" ")
	b.WriteString(t.Title.Render(res.Name))
	b.WriteString("\n\n")

	if len(res.Steps) > 0 {
		b.WriteString(r.RenderSteps(res.Steps))
		b.WriteString("\n\n")
	}

	for _, area := range res.Areas {
		b.WriteString(r.RenderArea(area))
		b.WriteString("\n")
	}

	for _, f := range res.Failures {
		b.WriteString(t.FailStyle.Render("  ✗ " + f))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderSteps renders the step log as a table.
func (r *Renderer) RenderSteps(steps []simulate.StepResult) string {
	columns := StepTableColumns()
	rows := StepRows(steps)
	tbl := NewStyledTable(r.theme, columns, rows, tableWidth(columns), tableHeight(len(rows)))
	return tbl.View()
}

// RenderArea renders the state of one float area. The frame takes the color
// of the area state.
func (r *Renderer) RenderArea(area simulate.AreaResult) string {
	t := r.theme

	overlay := t.Subtle.Render("overlay hidden")
	if area.OverlayVisible {
		overlay = t.Subtle.Render("overlay at ") + t.Candidate.Render(FormatRect(area.OverlayRect))
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		t.AreaName.Render(area.ID), " ",
		t.StateBadge(area.State), " ",
		t.OverlayBadge(area.OverlayOwned), " ",
		overlay,
		t.Subtle.Render(fmt.Sprintf(", %d pending", area.Pending)),
	)

	body := t.Subtle.Render("no placements")
	if len(area.Placements) > 0 {
		columns := PlacementTableColumns()
		rows := PlacementRows(area)
		body = NewStyledTable(t, columns, rows, tableWidth(columns), tableHeight(len(rows))).View()
	}

	return t.AreaBox.
		BorderForeground(t.StateColor(area.State)).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body))
}

// RenderSummary renders the pass/fail count of several runs.
func (r *Renderer) RenderSummary(results []*simulate.Result) string {
	passed := 0
	for _, res := range results {
		if res.Passed() {
			passed++
		}
	}
	failed := len(results) - passed

	line := fmt.Sprintf("%d passed, %d failed", passed, failed)
	if failed > 0 {
		return r.theme.FailStyle.Render(line)
	}
	return r.theme.PassStyle.Render(line)
}

// RenderSize renders a candidate size computation.
func (r *Renderer) RenderSize(widget, container entity.Rect, floating bool, width, height int) string {
	t := r.theme
	origin := "docked"
	if floating {
		origin = "floating"
	}
	return fmt.Sprintf("%s %s %s %s\n%s %s",
		t.Subtle.Render("widget"), t.Normal.Render(fmt.Sprintf("%dx%d", widget.W, widget.H)),
		t.MutedBadge(origin),
		t.Subtle.Render(fmt.Sprintf("in %dx%d", container.W, container.H)),
		t.Subtle.Render("candidate"), t.Candidate.Render(fmt.Sprintf("%dx%d", width, height)),
	)
}

// RenderEdge renders an edge zone test.
func (r *Renderer) RenderEdge(p entity.Point, rect entity.Rect, margin int, inEdge bool) string {
	t := r.theme
	zone := t.InteriorStyle.Render("interior")
	if inEdge {
		zone = t.EdgeStyle.Render("edge zone")
	}
	return fmt.Sprintf("%s %s %s",
		t.Normal.Render(fmt.Sprintf("(%d, %d)", p.X, p.Y)),
		t.Subtle.Render(fmt.Sprintf("in %s margin %d:", FormatRect(rect), margin)),
		zone,
	)
}

// RenderConfig renders the effective configuration.
func (r *Renderer) RenderConfig(path string, cfg *config.Config) string {
	t := r.theme
	if path == "" {
		path = "(defaults, no config file)"
	}

	rows := [][2]string{
		{"dock.edge_size", fmt.Sprintf("%d", cfg.Dock.EdgeSize)},
		{"dock.golden_ratio", fmt.Sprintf("%g", cfg.Dock.GoldenRatio)},
		{"dock.max_fraction", fmt.Sprintf("%g", cfg.Dock.MaxFraction)},
		{"dock.edge_padding", fmt.Sprintf("%d", cfg.Dock.EdgePadding)},
		{"logging.level", cfg.Logging.Level},
		{"logging.format", cfg.Logging.Format},
	}
	if cfg.Logging.File != "" {
		rows = append(rows,
			[2]string{"logging.file", cfg.Logging.File},
			[2]string{"logging.max_size_mb", fmt.Sprintf("%d", cfg.Logging.MaxSizeMB)},
		)
	}

	var b strings.Builder
	b.WriteString(t.BoxHeader.Render(path))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(t.ConfigKey.Render(fmt.Sprintf("%-18s", row[0])))
		b.WriteString(t.Normal.Render(row[1]))
		b.WriteString("\n")
	}
	return t.Box.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderCreated renders the confirmation of a written config file.
func (r *Renderer) RenderCreated(path string) string {
	return r.theme.PassStyle.Render("✓ ") + r.theme.Normal.Render("Created "+path)
}

// RenderError renders an error message.
func (r *Renderer) RenderError(err error) string {
	return r.theme.FailStyle.Render("✗ " + err.Error())
}
