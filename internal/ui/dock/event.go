package dock

import (
	"context"

	"github.com/bnema/dockarea/internal/domain/entity"
	"github.com/bnema/dockarea/internal/ui/layout"
)

// WidgetMIME is the drag payload key under which a dragged widget travels.
const WidgetMIME = "application/vnd.dockarea.widget"

// DropAction is the drop intent negotiated between source and target.
type DropAction int

const (
	DropNone DropAction = iota
	DropCopy
	DropLink
	DropMove
)

// String implements fmt.Stringer.
func (a DropAction) String() string {
	switch a {
	case DropCopy:
		return "copy"
	case DropLink:
		return "link"
	case DropMove:
		return "move"
	default:
		return "none"
	}
}

// DragEventKind identifies which drag event is being delivered.
type DragEventKind int

const (
	DragEnter DragEventKind = iota
	DragOver
	DragLeave
	Drop
)

// String implements fmt.Stringer.
func (k DragEventKind) String() string {
	switch k {
	case DragEnter:
		return "drag-enter"
	case DragOver:
		return "drag-over"
	case DragLeave:
		return "drag-leave"
	case Drop:
		return "drop"
	default:
		return "unknown"
	}
}

// MimeData is the payload carried by a drag, keyed by MIME-like type.
type MimeData map[string]any

// GetData returns the payload stored under mime, or nil.
func (m MimeData) GetData(mime string) any {
	if m == nil {
		return nil
	}
	return m[mime]
}

// HasData reports whether a payload is stored under mime.
func (m MimeData) HasData(mime string) bool {
	_, ok := m[mime]
	return ok
}

// DragImage describes the image that follows the pointer during a drag.
// OffsetX/OffsetY locate the pointer relative to the image's top-left corner.
type DragImage struct {
	OffsetX int
	OffsetY int
	Height  int
}

// DragEvent is a pointer-driven drag event delivered by the host.
// Handlers write the accepted intent to DropAction.
type DragEvent struct {
	Kind           DragEventKind
	ClientX        int
	ClientY        int
	ProposedAction DropAction
	DropAction     DropAction
	MimeData       MimeData
	// RelatedTarget is the widget the pointer moved to (leave) or from (enter).
	RelatedTarget layout.Widget
	// DragImage is nil when the host shows no drag image.
	DragImage *DragImage
	// Synthetic marks a leave sent by a nested area whose overlay took over.
	// The receiver hides its overlay but keeps its session.
	Synthetic bool
}

// Position returns the pointer position.
func (e *DragEvent) Position() entity.Point {
	return entity.Point{X: e.ClientX, Y: e.ClientY}
}

// DraggedWidget resolves the widget carried by the event payload, or nil.
func (e *DragEvent) DraggedWidget() layout.Widget {
	if e == nil {
		return nil
	}
	w, _ := e.MimeData.GetData(WidgetMIME).(layout.Widget)
	return w
}

// NewWidgetDrag builds the payload a drag source attaches for w.
func NewWidgetDrag(w layout.Widget) MimeData {
	return MimeData{WidgetMIME: w}
}

// DragHandler receives drag events. Each method reports whether the event was handled;
// unhandled events continue to the next enclosing handler.
type DragHandler interface {
	HandleDragEnter(ctx context.Context, ev *DragEvent) bool
	HandleDragOver(ctx context.Context, ev *DragEvent) bool
	HandleDragLeave(ctx context.Context, ev *DragEvent) bool
	HandleDrop(ctx context.Context, ev *DragEvent) bool
}

// DispatchDrag routes ev to the handler method matching its kind.
func DispatchDrag(ctx context.Context, h DragHandler, ev *DragEvent) bool {
	switch ev.Kind {
	case DragEnter:
		return h.HandleDragEnter(ctx, ev)
	case DragOver:
		return h.HandleDragOver(ctx, ev)
	case DragLeave:
		return h.HandleDragLeave(ctx, ev)
	case Drop:
		return h.HandleDrop(ctx, ev)
	default:
		return false
	}
}

// EventSink delivers a drag event to target and whatever encloses it.
// The float area uses it to notify its parent.
type EventSink interface {
	DispatchDragEvent(ctx context.Context, target layout.Widget, ev *DragEvent) bool
}
