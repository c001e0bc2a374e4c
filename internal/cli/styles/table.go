package styles

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockarea/internal/domain/entity"
	"github.com/bnema/dockarea/internal/simulate"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Frame).
		BorderBottom(true).
		Foreground(theme.Owned).
		Bold(true)
	// Static output: the cursor row looks like any other.
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Bold(false)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	// The bordered header is taller than the default one.
	t.SetHeight(height)
	return t
}

// PlacementTableColumns returns columns for an area's placement table.
func PlacementTableColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Widget", Width: 24},
		{Title: "Region", Width: 10},
		{Title: "Rect", Width: 24},
	}
}

// PlacementRows converts an area's placements to table rows, bottom to top.
func PlacementRows(area simulate.AreaResult) []table.Row {
	rows := make([]table.Row, 0, len(area.Placements))
	for i, p := range area.Placements {
		rows = append(rows, table.Row{
			strconv.Itoa(i),
			string(p.ID),
			p.Region.String(),
			FormatRect(p.Rect),
		})
	}
	return rows
}

// StepTableColumns returns columns for a scenario's step log.
func StepTableColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Action", Width: 8},
		{Title: "Handled", Width: 8},
		{Title: "Drop", Width: 6},
		{Title: "Settled", Width: 8},
	}
}

// StepRows converts step results to table rows.
func StepRows(steps []simulate.StepResult) []table.Row {
	rows := make([]table.Row, 0, len(steps))
	for _, s := range steps {
		drop := s.DropAction
		if drop == "" {
			drop = "-"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(s.Index),
			s.Action,
			strconv.FormatBool(s.Handled),
			drop,
			strconv.Itoa(s.Settled),
		})
	}
	return rows
}

// FormatRect renders a rect as x,y wxh.
func FormatRect(r entity.Rect) string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.W, r.H)
}

// tableHeight fits a static table to its rows plus the bordered header.
func tableHeight(rows int) int {
	return max(rows, 1) + 2
}

func tableWidth(columns []table.Column) int {
	w := 0
	for _, c := range columns {
		w += c.Width + 2
	}
	return w
}
