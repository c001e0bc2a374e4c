package dock_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dockarea/internal/domain/entity"
	"github.com/bnema/dockarea/internal/ui/dock"
)

func TestCandidateSize_TallWidgetGetsGoldenWidth(t *testing.T) {
	w, h := dock.CandidateSize(100, 300, 800, 600, false)

	assert.Equal(t, 185, w)
	assert.Equal(t, 300, h)
}

func TestCandidateSize_WideStripIsClampedToContainer(t *testing.T) {
	// 1000x50 becomes 1000x618, then scales down until both halves fit.
	w, h := dock.CandidateSize(1000, 50, 800, 600, false)

	assert.Equal(t, 400, w)
	assert.Equal(t, 247, h)
	assert.InDelta(t, dock.GoldenRatio, float64(h)/float64(w), 0.01)
}

func TestCandidateSize_FloatingKeepsOwnProportion(t *testing.T) {
	w, h := dock.CandidateSize(200, 100, 800, 600, true)
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)
}

func TestCandidateSize_ClampRecomputesThroughRatio(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		containerW   int
		floating     bool
		wantW, wantH int
	}{
		// Width clamped to 400, height recomputed as 400 * 0.618.
		{name: "wide floating panel", w: 1600, h: 400, containerW: 800, floating: true, wantW: 400, wantH: 247},
		// Height clamped to 300 gives 485 wide, so width is clamped again.
		{name: "tall floating panel", w: 100, h: 500, containerW: 800, floating: true, wantW: 400, wantH: 247},
		// Height clamped to 300, width recomputed as 300 / 0.618.
		{name: "tall floating panel in wide container", w: 100, h: 900, containerW: 1200, floating: true, wantW: 485, wantH: 300},
		{name: "docked strip", w: 1000, h: 50, containerW: 800, floating: false, wantW: 400, wantH: 247},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := dock.CandidateSize(tt.w, tt.h, tt.containerW, 600, tt.floating)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestCandidateSize_RoundsHalfUp(t *testing.T) {
	// 150 * 0.618 = 92.7
	w, h := dock.CandidateSize(150, 10, 1000, 1000, false)
	assert.Equal(t, 150, w)
	assert.Equal(t, 93, h)
}

func TestCandidateSize_DegenerateInput(t *testing.T) {
	w, h := dock.CandidateSize(0, 0, 800, 600, false)
	assert.Equal(t, 0, w)
	assert.Equal(t, 0, h)

	w, h = dock.CandidateSize(-5, 100, 800, 600, false)
	assert.Equal(t, 62, w)
	assert.Equal(t, 100, h)
}

func TestCandidateSize_AlwaysWithinHalfContainer(t *testing.T) {
	sizes := []int{1, 7, 50, 99, 160, 333, 601, 999, 1500, 4096}
	containers := []int{1, 3, 80, 401, 800, 1001, 1920}

	for _, w := range sizes {
		for _, h := range sizes {
			for _, cw := range containers {
				for _, ch := range containers {
					for _, floating := range []bool{false, true} {
						gw, gh := dock.CandidateSize(w, h, cw, ch, floating)
						if !assert.LessOrEqual(t, float64(gw), float64(cw)/2) ||
							!assert.LessOrEqual(t, float64(gh), float64(ch)/2) {
							t.Fatalf("w=%d h=%d cw=%d ch=%d floating=%v -> %dx%d", w, h, cw, ch, floating, gw, gh)
						}
					}
				}
			}
		}
	}
}

func TestCandidateSize_ForcedRatioWithinRounding(t *testing.T) {
	sizes := []int{40, 100, 260, 500, 1000, 2400}

	for _, w := range sizes {
		for _, h := range sizes {
			gw, gh := dock.CandidateSize(w, h, 3000, 3000, false)
			if gw == 0 || gh == 0 {
				continue
			}
			short, long := float64(min(gw, gh)), float64(max(gw, gh))
			// Rounding moves each side by at most half a pixel.
			tolerance := 1.0 / long
			assert.LessOrEqual(t, math.Abs(short/long-dock.GoldenRatio), tolerance, "w=%d h=%d", w, h)
		}
	}
}

func TestSizer_CustomRatioAndFraction(t *testing.T) {
	s := dock.Sizer{Ratio: 0.5, MaxFraction: 0.25}

	w, h := s.CandidateSize(100, 10, 1000, 1000, false)
	assert.Equal(t, 100, w)
	assert.Equal(t, 50, h)

	w, h = s.CandidateSize(2000, 10, 1000, 1000, false)
	assert.Equal(t, 250, w)
	assert.Equal(t, 125, h)
}

func TestPlacementOffsets(t *testing.T) {
	container := entity.Rect{X: 20, Y: 30, W: 800, H: 600}

	got := dock.PlacementOffsets(container, 185, 300, 10, 5, 4)

	assert.Equal(t, entity.Insets{Left: 30, Top: 35, Right: 611, Bottom: 296}, got)
}
