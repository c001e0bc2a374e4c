package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockarea/internal/cli/styles"
	"github.com/bnema/dockarea/internal/domain/entity"
	"github.com/bnema/dockarea/internal/infrastructure/config"
	"github.com/bnema/dockarea/internal/simulate"
	"github.com/bnema/dockarea/internal/ui/dock"
	"github.com/bnema/dockarea/internal/ui/layout"
)

func sampleResult(failures ...string) *simulate.Result {
	return &simulate.Result{
		Name: "drop panel",
		Steps: []simulate.StepResult{
			{Index: 0, Action: "enter", Handled: true, DropAction: "move"},
			{Index: 1, Action: "settle", Handled: true, Settled: 1},
		},
		Areas: []simulate.AreaResult{{
			ID:           "main-area",
			State:        "idle",
			OverlayOwned: true,
			Placements: []layout.Placement{
				{ID: "panel-a", Rect: entity.Rect{X: 340, Y: 275, W: 185, H: 300}, Region: layout.RegionFloating},
			},
		}},
		Failures: failures,
	}
}

func TestRenderer_RenderResult(t *testing.T) {
	r := styles.NewRenderer(styles.NewTheme())

	out := r.RenderResult(sampleResult())
	require.Contains(t, out, "PASS")
	require.Contains(t, out, "drop panel")
	require.Contains(t, out, "main-area")
	require.Contains(t, out, "panel-a")
	require.Contains(t, out, "340,275 185x300")
	require.Contains(t, out, "settle")

	out = r.RenderResult(sampleResult("main-area: panel-a not placed"))
	require.Contains(t, out, "FAIL")
	require.Contains(t, out, "panel-a not placed")
}

func TestRenderer_RenderSummary(t *testing.T) {
	r := styles.NewRenderer(styles.NewTheme())

	out := r.RenderSummary([]*simulate.Result{sampleResult(), sampleResult("x")})
	assert.Contains(t, out, "1 passed, 1 failed")
}

func TestRenderer_RenderSizeAndEdge(t *testing.T) {
	r := styles.NewRenderer(styles.NewTheme())

	out := r.RenderSize(entity.Rect{W: 100, H: 300}, entity.Rect{W: 800, H: 600}, false, 185, 300)
	assert.Contains(t, out, "100x300")
	assert.Contains(t, out, "185x300")
	assert.Contains(t, out, "docked")

	out = r.RenderEdge(entity.Point{X: 5, Y: 5}, entity.Rect{W: 800, H: 600}, 40, true)
	assert.Contains(t, out, "edge zone")
	out = r.RenderEdge(entity.Point{X: 400, Y: 300}, entity.Rect{W: 800, H: 600}, 40, false)
	assert.Contains(t, out, "interior")
}

func TestRenderer_RenderConfig(t *testing.T) {
	r := styles.NewRenderer(styles.NewTheme())

	out := r.RenderConfig("", config.DefaultConfig())
	assert.Contains(t, out, "no config file")
	assert.Contains(t, out, "dock.edge_size")
	assert.Contains(t, out, "0.618")

	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
}

func TestPlacementRows(t *testing.T) {
	rows := styles.PlacementRows(sampleResult().Areas[0])

	require.Len(t, rows, 1)
	assert.Equal(t, "0", rows[0][0])
	assert.Equal(t, "panel-a", rows[0][1])
	assert.Equal(t, "floating", rows[0][2])
}

func TestTheme_DockColors(t *testing.T) {
	theme := styles.NewTheme()

	assert.Equal(t, theme.Dragging, theme.StateColor(dock.StateDragging.String()))
	assert.Equal(t, theme.Idle, theme.StateColor(dock.StateIdle.String()))
	assert.NotEqual(t, theme.Idle, theme.Dragging)
	assert.NotEqual(t, theme.Owned, theme.Borrowed)

	assert.Contains(t, theme.OverlayBadge(true), "owned")
	assert.Contains(t, theme.OverlayBadge(false), "borrowed")
	assert.Contains(t, theme.StateBadge("dragging"), "dragging")
}

func TestRenderer_RenderAreaShowsOverlayKind(t *testing.T) {
	r := styles.NewRenderer(styles.NewTheme())

	out := r.RenderArea(simulate.AreaResult{
		ID:             "inner",
		State:          "dragging",
		OverlayVisible: true,
		OverlayRect:    entity.Rect{X: 110, Y: 300, W: 200, H: 124},
		Pending:        1,
	})
	assert.Contains(t, out, "inner")
	assert.Contains(t, out, "dragging")
	assert.Contains(t, out, "borrowed")
	assert.Contains(t, out, "110,300 200x124")
	assert.Contains(t, out, "1 pending")
}
