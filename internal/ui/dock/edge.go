package dock

import "github.com/bnema/dockarea/internal/domain/entity"

// EdgeSize is the default width, in pixels, of the band along each container
// edge that is reserved for an enclosing docking container.
const EdgeSize = 40

// IsEdge reports whether p is closer than margin to any edge of r.
// A pointer exactly margin pixels from an edge is interior.
func IsEdge(p entity.Point, r entity.Rect, margin int) bool {
	return p.X-r.X < margin ||
		r.Right()-p.X < margin ||
		p.Y-r.Y < margin ||
		r.Bottom()-p.Y < margin
}
