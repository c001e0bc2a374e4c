package simulate

import (
	"fmt"

	"github.com/bnema/dockarea/internal/domain/entity"
	"github.com/bnema/dockarea/internal/ui/layout"
)

// Result is the outcome of one scenario run.
type Result struct {
	Name  string
	Steps []StepResult
	Areas []AreaResult
	// Failures lists the expectations that did not hold.
	Failures []string
}

// Passed reports whether every expectation held.
func (r *Result) Passed() bool { return len(r.Failures) == 0 }

// Area returns the final state of the area with the given id.
func (r *Result) Area(id string) (AreaResult, bool) {
	for _, a := range r.Areas {
		if a.ID == id {
			return a, true
		}
	}
	return AreaResult{}, false
}

// StepResult records how the host reacted to one step.
type StepResult struct {
	Index   int
	Action  string
	Handled bool
	// DropAction is the accepted action for drag events.
	DropAction string
	// Settled counts deferred callbacks run by a settle step.
	Settled int
}

// AreaResult is the final state of one float area.
type AreaResult struct {
	ID             string
	State          string
	OverlayVisible bool
	OverlayOwned   bool
	OverlayRect    entity.Rect
	Pending        int
	// Placements is the layout content, bottom to top.
	Placements []layout.Placement
}

func formatRect(r entity.Rect) string {
	return fmt.Sprintf("[%d, %d, %d, %d]", r.X, r.Y, r.W, r.H)
}
