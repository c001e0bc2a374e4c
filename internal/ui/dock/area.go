// Package dock implements the drag-and-drop engine of a floating-panel docking area.
//
// A FloatArea accepts panels dragged from anywhere in the widget tree and turns
// them into free-floating panels handed to its layout. While a drag is over the
// area it previews the landing spot with an overlay, and it yields to an
// enclosing container when the pointer reaches the area's edge zone.
package dock

import (
	"context"

	"github.com/bnema/dockarea/internal/domain/entity"
	"github.com/bnema/dockarea/internal/logging"
	"github.com/bnema/dockarea/internal/ui/layout"
)

// State is the drag state of a float area.
type State int

const (
	StateIdle State = iota
	StateDragging
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// deferredPlacement is a dropped widget waiting for the layout to settle.
type deferredPlacement struct {
	widget  layout.Widget
	pointer entity.Point
	session Session
	token   *layout.SettleToken
}

// FloatArea is the docking engine embedded in a float area widget.
// All methods must be called from the host's event thread.
type FloatArea struct {
	widget layout.Widget
	layout layout.Layout

	overlay  *Overlay
	sizer    Sizer
	edgeSize int
	padding  int

	session  *Session
	pending  map[entity.WidgetID][]*deferredPlacement
	disposed bool
}

// NewFloatArea creates the engine for widget, delegating placement to lay.
func NewFloatArea(ctx context.Context, widget layout.Widget, lay layout.Layout, opts Options) *FloatArea {
	opts = opts.withDefaults()

	handle, owned := opts.Overlay, false
	if handle == nil {
		handle, owned = NewOverlayHandle(opts.NewOverlay()), true
	}

	fa := &FloatArea{
		widget:   widget,
		layout:   lay,
		overlay:  NewSharedOverlay(widget, handle, owned, opts.Events),
		sizer:    opts.Sizer,
		edgeSize: opts.EdgeSize,
		padding:  opts.EdgePadding,
		pending:  make(map[entity.WidgetID][]*deferredPlacement),
	}

	logging.FromContext(ctx).Debug().
		Str("area", string(widget.ID())).
		Bool("owns_overlay", owned).
		Int("edge_size", fa.edgeSize).
		Msg("float area created")

	return fa
}

// Widget returns the area's host widget.
func (fa *FloatArea) Widget() layout.Widget { return fa.widget }

// Overlay returns the area's overlay controller.
func (fa *FloatArea) Overlay() *Overlay { return fa.overlay }

// State reports whether a drag session is active.
func (fa *FloatArea) State() State {
	if fa.session != nil {
		return StateDragging
	}
	return StateIdle
}

// Session returns a copy of the active session.
func (fa *FloatArea) Session() (Session, bool) {
	if fa.session == nil {
		return Session{}, false
	}
	return *fa.session, true
}

// PendingPlacements returns how many drops wait for the layout to settle.
func (fa *FloatArea) PendingPlacements() int {
	n := 0
	for _, list := range fa.pending {
		n += len(list)
	}
	return n
}

// HandleDragEvent routes ev by kind. It satisfies the host's generic handler shape.
func (fa *FloatArea) HandleDragEvent(ctx context.Context, ev *DragEvent) bool {
	return DispatchDrag(ctx, fa, ev)
}

// HandleDragEnter starts a drag session when ev carries a widget that may float here.
func (fa *FloatArea) HandleDragEnter(ctx context.Context, ev *DragEvent) bool {
	log := logging.FromContext(ctx)
	if fa.disposed {
		return false
	}

	widget := ev.DraggedWidget()
	if widget == nil {
		log.Debug().Str("area", string(fa.widget.ID())).Msg("drag-enter without widget payload")
		return false
	}
	ctx = logging.WithWidgetID(ctx, string(widget.ID()))
	log = logging.FromContext(ctx)

	// A widget cannot be dropped into itself or its own descendants.
	if layout.IsAncestorOrSelf(widget, fa.widget) {
		log.Debug().
			Str("area", string(fa.widget.ID())).
			Msg("drag-enter rejected: widget contains area")
		return false
	}

	rect := fa.widget.Bounds()

	var imgX, imgY, imgHeight int
	if img := ev.DragImage; img != nil {
		imgX, imgY, imgHeight = img.OffsetX, img.OffsetY, img.Height
	}

	measured := widget.Bounds()
	height := measured.H
	if height <= 0 {
		height = imgHeight
	}

	floating := layout.HasAncestorWithCapability(widget, layout.CapabilityDialog)
	w, h := fa.sizer.CandidateSize(measured.W, height, rect.W, rect.H, floating)

	fa.session = &Session{
		Widget:          widget,
		Floating:        floating,
		ContainerRect:   rect,
		CandidateWidth:  w,
		CandidateHeight: h,
		ImageOffsetX:    imgX,
		ImageOffsetY:    imgY,
		Offsets:         PlacementOffsets(rect, w, h, imgX, imgY, fa.padding),
		Padding:         fa.padding,
	}
	fa.overlay.forgetVisibility()

	log.Debug().
		Str("area", string(fa.widget.ID())).
		Bool("floating", floating).
		Int("width", w).
		Int("height", h).
		Msg("drag session started")

	fa.HandleDragOver(ctx, ev)
	return true
}

// HandleDragOver moves the overlay with the pointer. Inside the edge zone the
// overlay is hidden and the event is left for an enclosing container.
func (fa *FloatArea) HandleDragOver(ctx context.Context, ev *DragEvent) bool {
	s := fa.session
	if s == nil {
		return false
	}

	p := ev.Position()
	if s.InEdge(p, fa.edgeSize) {
		fa.overlay.Hide(ctx)
		return false
	}

	fa.overlay.Show(ctx, s.OverlayRect(p))
	ev.DropAction = ev.ProposedAction
	return true
}

// HandleDragLeave ends the session when the pointer leaves the area's subtree.
// Moving between the area's own descendants is ignored. A synthetic leave from a
// nested area only hides the overlay: the drag is still inside this area and may
// come back through the nested area's edge zone.
func (fa *FloatArea) HandleDragLeave(ctx context.Context, ev *DragEvent) bool {
	if ev.Synthetic {
		if fa.session == nil {
			return false
		}
		fa.overlay.Hide(ctx)
		logging.FromContext(ctx).Trace().Str("area", string(fa.widget.ID())).Msg("overlay collapsed by nested area")
		return true
	}
	if ev.RelatedTarget != nil && layout.Contains(fa.widget, ev.RelatedTarget) {
		return false
	}

	fa.overlay.Hide(ctx)
	if fa.session == nil {
		return false
	}
	fa.session = nil

	logging.FromContext(ctx).Debug().Str("area", string(fa.widget.ID())).Msg("drag session left")
	return true
}

// HandleDrop detaches the dragged widget and schedules its placement once the
// layout has settled.
func (fa *FloatArea) HandleDrop(ctx context.Context, ev *DragEvent) bool {
	log := logging.FromContext(ctx)

	fa.overlay.Hide(ctx)
	fa.overlay.ClearTransitionSuppression()

	s := fa.session
	if s == nil {
		return false
	}
	// The gesture is over either way.
	fa.session = nil

	p := ev.Position()
	if s.InEdge(p, fa.edgeSize) {
		log.Debug().Str("area", string(fa.widget.ID())).Msg("drop in edge zone deferred to ancestor")
		return false
	}

	widget := ev.DraggedWidget()
	if widget == nil {
		ev.DropAction = DropNone
		return false
	}
	ctx = logging.WithWidgetID(ctx, string(widget.ID()))
	log = logging.FromContext(ctx)

	// Detach now so the source container can reflow before placement.
	widget.Unparent()
	fa.schedulePlacement(ctx, widget, p, *s)
	fa.widget.QueueRedraw()

	ev.DropAction = ev.ProposedAction

	log.Debug().
		Str("area", string(fa.widget.ID())).
		Int("x", p.X).Int("y", p.Y).
		Msg("widget dropped")
	return true
}

// HandleMessage forwards update and raise requests to the layout.
func (fa *FloatArea) HandleMessage(ctx context.Context, msg Message) bool {
	if fa.disposed {
		return false
	}
	switch m := msg.(type) {
	case UpdateWidgetMsg:
		fa.layout.UpdateWidget(m.Widget, m.X, m.Y, m.W, m.H)
		return true
	case RaiseWidgetMsg:
		fa.layout.RaiseWidget(m.Widget, m.Event)
		return true
	default:
		logging.FromContext(ctx).Trace().Str("area", string(fa.widget.ID())).Msg("message not handled")
		return false
	}
}

// AddWidget hands widget to the layout, in the backdrop region when
// opts.Placement is "backdrop" and in the floating region otherwise.
func (fa *FloatArea) AddWidget(ctx context.Context, widget layout.Widget, opts layout.AddOptions) {
	region := opts.RegionFor()
	fa.layout.AddWidget(widget, opts, region)

	logging.FromContext(logging.WithWidgetID(ctx, string(widget.ID()))).Debug().
		Str("area", string(fa.widget.ID())).
		Stringer("region", region).
		Msg("widget added")
}

// RemoveWidget removes widget from the layout and cancels any placement still
// pending for it.
func (fa *FloatArea) RemoveWidget(ctx context.Context, widget layout.Widget) {
	fa.cancelPending(widget.ID())
	fa.layout.RemoveWidget(widget)

	logging.FromContext(logging.WithWidgetID(ctx, string(widget.ID()))).Debug().
		Str("area", string(fa.widget.ID())).
		Msg("widget removed")
}

// Dispose tears the area down. Pending placements are cancelled and an owned
// overlay is destroyed.
func (fa *FloatArea) Dispose(ctx context.Context) {
	if fa.disposed {
		return
	}
	fa.disposed = true
	for id := range fa.pending {
		fa.cancelPending(id)
	}
	fa.session = nil
	fa.overlay.Hide(ctx)
	fa.overlay.Release()

	logging.FromContext(ctx).Debug().Str("area", string(fa.widget.ID())).Msg("float area disposed")
}

func (fa *FloatArea) schedulePlacement(ctx context.Context, widget layout.Widget, p entity.Point, s Session) {
	dp := &deferredPlacement{widget: widget, pointer: p, session: s}

	token := fa.layout.RunAfterSettle(func() { fa.place(ctx, dp) })
	if token == nil {
		token = layout.NewSettleToken()
	}
	dp.token = token

	id := widget.ID()
	fa.pending[id] = append(fa.pending[id], dp)
}

// place runs after the layout settles. The area is re-measured because
// detaching the widget may have resized it.
func (fa *FloatArea) place(ctx context.Context, dp *deferredPlacement) {
	log := logging.FromContext(ctx)

	if fa.disposed || dp.token.Cancelled() || !fa.takePending(dp) {
		log.Debug().Msg("stale placement skipped")
		return
	}
	if dp.widget.Parent() != nil {
		log.Debug().Msg("widget re-parented before placement")
		return
	}

	box := fa.widget.Bounds()
	opts := layout.AddOptions{
		Left:   dp.pointer.X - dp.session.ImageOffsetX - box.X,
		Top:    dp.pointer.Y - dp.session.ImageOffsetY - box.Y,
		Width:  dp.session.CandidateWidth,
		Height: dp.session.CandidateHeight,
	}
	fa.layout.AddWidget(dp.widget, opts, layout.RegionFloating)

	log.Debug().
		Str("area", string(fa.widget.ID())).
		Int("left", opts.Left).Int("top", opts.Top).
		Int("width", opts.Width).Int("height", opts.Height).
		Msg("dropped widget placed")
}

func (fa *FloatArea) takePending(dp *deferredPlacement) bool {
	id := dp.widget.ID()
	list := fa.pending[id]
	for i, cur := range list {
		if cur == dp {
			list = append(list[:i], list[i+1:]...)
			if len(list) == 0 {
				delete(fa.pending, id)
			} else {
				fa.pending[id] = list
			}
			return true
		}
	}
	return false
}

func (fa *FloatArea) cancelPending(id entity.WidgetID) {
	for _, dp := range fa.pending[id] {
		dp.token.Cancel()
	}
	delete(fa.pending, id)
}
