package dock

import (
	"math"

	"github.com/bnema/dockarea/internal/domain/entity"
)

// Sizing defaults.
const (
	GoldenRatio = 0.618
	MaxFraction = 0.5
)

// Sizer computes the size a panel gets when it starts floating.
type Sizer struct {
	// Ratio is the height/width proportion forced on panels that arrive from a
	// docked arrangement.
	Ratio float64
	// MaxFraction caps each dimension to this share of the container.
	MaxFraction float64
}

// DefaultSizer uses the golden ratio and half the container.
func DefaultSizer() Sizer {
	return Sizer{Ratio: GoldenRatio, MaxFraction: MaxFraction}
}

// CandidateSize computes a floating size with the default sizer.
func CandidateSize(widgetW, widgetH, containerW, containerH int, floating bool) (width, height int) {
	return DefaultSizer().CandidateSize(widgetW, widgetH, containerW, containerH, floating)
}

// CandidateSize turns the measured size of a dragged widget into the size of the
// floating panel it will become.
//
// A widget that is not already floating usually had only one dimension chosen by
// its previous owner, so the other one is derived from the larger one through
// Ratio. Whatever its origin, a dimension larger than MaxFraction of the
// container is clamped and the other one recomputed through Ratio.
func (s Sizer) CandidateSize(widgetW, widgetH, containerW, containerH int, floating bool) (width, height int) {
	ratio := s.Ratio
	if ratio <= 0 {
		ratio = GoldenRatio
	}
	fraction := s.MaxFraction
	if fraction <= 0 || fraction > 1 {
		fraction = MaxFraction
	}

	w := float64(max(widgetW, 0))
	h := float64(max(widgetH, 0))

	if !floating {
		if h > w/ratio {
			w = h * ratio
		} else {
			h = w * ratio
		}
	}

	maxW := math.Floor(float64(max(containerW, 0)) * fraction)
	maxH := math.Floor(float64(max(containerH, 0)) * fraction)

	if w > maxW {
		w = maxW
		h = w * ratio
	}
	if h > maxH {
		h = maxH
		w = h / ratio
	}
	// A tall panel recomputed from the height can overshoot the width again.
	if w > maxW {
		w = maxW
		h = w * ratio
	}

	return roundHalfUp(w), roundHalfUp(h)
}

// PlacementOffsets precomputes the bounds used on every drag-over tick.
// Left/Top turn a client pointer position into the overlay's local top-left
// corner; Right/Bottom are the largest local top-left coordinates that keep a
// width×height overlay inside the container minus padding.
func PlacementOffsets(container entity.Rect, width, height, imageOffsetX, imageOffsetY, padding int) entity.Insets {
	return entity.Insets{
		Left:   container.X + imageOffsetX,
		Top:    container.Y + imageOffsetY,
		Right:  container.W - width - padding,
		Bottom: container.H - height - padding,
	}
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
