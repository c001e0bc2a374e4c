package dock

import (
	"github.com/bnema/dockarea/internal/domain/entity"
	"github.com/bnema/dockarea/internal/ui/layout"
)

// Session is the state of one drag gesture over a float area.
// It is created on drag-enter and dropped on leave or drop.
type Session struct {
	Widget   layout.Widget
	Floating bool

	// ContainerRect is the area's bounding box when the drag entered.
	ContainerRect entity.Rect

	CandidateWidth  int
	CandidateHeight int

	ImageOffsetX int
	ImageOffsetY int

	Offsets entity.Insets
	Padding int
}

// OverlayRect returns where the overlay goes for pointer p, in client coordinates.
func (s *Session) OverlayRect(p entity.Point) entity.Rect {
	x := clamp(p.X-s.Offsets.Left, s.Padding, s.Offsets.Right)
	y := clamp(p.Y-s.Offsets.Top, s.Padding, s.Offsets.Bottom)

	local := entity.Rect{X: x, Y: y, W: s.CandidateWidth, H: s.CandidateHeight}
	return local.Translate(s.ContainerRect.X, s.ContainerRect.Y)
}

// InEdge reports whether p is in the edge zone of the captured container.
func (s *Session) InEdge(p entity.Point, margin int) bool {
	return IsEdge(p, s.ContainerRect, margin)
}
