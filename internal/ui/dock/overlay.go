package dock

import (
	"context"

	"github.com/bnema/dockarea/internal/domain/entity"
	"github.com/bnema/dockarea/internal/logging"
	"github.com/bnema/dockarea/internal/ui/layout"
)

// OverlayHandle is an overlay surface together with its visibility. Every area
// holding the same surface shares one handle, so a hide by one holder is seen
// by the others.
type OverlayHandle struct {
	surface layout.OverlaySurface
	visible bool
}

// NewOverlayHandle wraps a hidden surface.
func NewOverlayHandle(surface layout.OverlaySurface) *OverlayHandle {
	return &OverlayHandle{surface: surface}
}

// Surface returns the wrapped surface.
func (h *OverlayHandle) Surface() layout.OverlaySurface { return h.surface }

// Visible reports whether the surface is currently shown.
func (h *OverlayHandle) Visible() bool { return h.visible }

// Overlay controls the drop preview rectangle of one float area.
//
// An owned overlay was created by the area and is destroyed with it. A borrowed
// overlay belongs to an enclosing container: the area may move and toggle it,
// and suppresses its transitions while it does, but never destroys it.
type Overlay struct {
	handle       *OverlayHandle
	owned        bool
	noTransition bool

	// owner and events are used to collapse the parent's overlay on first show.
	owner  layout.Widget
	events EventSink
}

// NewOverlay wraps surface in a fresh handle. owned is fixed for the overlay's lifetime.
func NewOverlay(owner layout.Widget, surface layout.OverlaySurface, owned bool, events EventSink) *Overlay {
	return NewSharedOverlay(owner, NewOverlayHandle(surface), owned, events)
}

// NewSharedOverlay controls a surface through a handle other holders may share.
func NewSharedOverlay(owner layout.Widget, handle *OverlayHandle, owned bool, events EventSink) *Overlay {
	return &Overlay{
		handle: handle,
		owned:  owned,
		owner:  owner,
		events: events,
	}
}

// Show places the overlay at r (client coordinates). Geometry is applied on every
// call; the visibility transition only happens when the surface was hidden,
// whichever holder hid it.
func (o *Overlay) Show(ctx context.Context, r entity.Rect) {
	if !o.owned {
		o.setNoTransition(true)
	}
	o.handle.surface.SetGeometry(r)
	if o.handle.visible {
		return
	}

	o.handle.visible = true
	o.handle.surface.SetVisible(true)

	if o.owned {
		o.collapseParent(ctx)
	}
	logging.FromContext(ctx).Trace().
		Bool("owned", o.owned).
		Int("x", r.X).Int("y", r.Y).Int("w", r.W).Int("h", r.H).
		Msg("overlay shown")
}

// Hide conceals the overlay. It does nothing when already hidden.
func (o *Overlay) Hide(ctx context.Context) {
	if !o.owned {
		o.setNoTransition(false)
	}
	if !o.handle.visible {
		return
	}
	o.handle.visible = false
	o.handle.surface.SetVisible(false)
	logging.FromContext(ctx).Trace().Bool("owned", o.owned).Msg("overlay hidden")
}

// ClearTransitionSuppression re-enables transitions on a borrowed overlay.
func (o *Overlay) ClearTransitionSuppression() {
	if o.owned {
		return
	}
	o.setNoTransition(false)
}

// Visible reports whether the surface is shown.
func (o *Overlay) Visible() bool { return o.handle.visible }

// Owned reports whether the overlay was created by its area.
func (o *Overlay) Owned() bool { return o.owned }

// NoTransition reports whether this area currently suppresses transitions.
func (o *Overlay) NoTransition() bool { return o.noTransition }

// Surface returns the underlying surface.
func (o *Overlay) Surface() layout.OverlaySurface { return o.handle.surface }

// Handle returns the shared handle, for a nested area to borrow.
func (o *Overlay) Handle() *OverlayHandle { return o.handle }

// Release destroys an owned surface. Borrowed surfaces are left to their owner.
func (o *Overlay) Release() {
	if !o.owned {
		return
	}
	o.handle.visible = false
	o.handle.surface.Destroy()
}

// forgetVisibility marks an owned overlay hidden without touching the surface,
// so the next Show performs a full transition. Shared visibility of a borrowed
// surface is left alone.
func (o *Overlay) forgetVisibility() {
	if o.owned {
		o.handle.visible = false
	}
}

func (o *Overlay) setNoTransition(on bool) {
	if o.noTransition == on {
		return
	}
	o.noTransition = on
	o.handle.surface.SetNoTransition(on)
}

// collapseParent sends a synthetic drag-leave to the owner's parent so an
// enclosing container hides whatever overlay it is showing. The enclosing
// container keeps its session.
func (o *Overlay) collapseParent(ctx context.Context) {
	if o.owner == nil || o.events == nil {
		return
	}
	parent := o.owner.Parent()
	if parent == nil {
		return
	}
	o.events.DispatchDragEvent(ctx, parent, &DragEvent{Kind: DragLeave, Synthetic: true})
}
