package dispatcher_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockarea/internal/domain/entity"
	"github.com/bnema/dockarea/internal/ui/dispatcher"
	"github.com/bnema/dockarea/internal/ui/dock"
	"github.com/bnema/dockarea/internal/ui/layout"
)

// fakeHandler records what it receives and answers with fixed results.
type fakeHandler struct {
	claim    bool
	kinds    []dock.DragEventKind
	messages []dock.Message
	onMsg    func()
}

func (h *fakeHandler) record(ev *dock.DragEvent) bool {
	h.kinds = append(h.kinds, ev.Kind)
	return h.claim
}

func (h *fakeHandler) HandleDragEnter(_ context.Context, ev *dock.DragEvent) bool {
	return h.record(ev)
}

func (h *fakeHandler) HandleDragOver(_ context.Context, ev *dock.DragEvent) bool {
	return h.record(ev)
}

func (h *fakeHandler) HandleDragLeave(_ context.Context, ev *dock.DragEvent) bool {
	return h.record(ev)
}

func (h *fakeHandler) HandleDrop(_ context.Context, ev *dock.DragEvent) bool {
	return h.record(ev)
}

func (h *fakeHandler) HandleMessage(_ context.Context, msg dock.Message) bool {
	h.messages = append(h.messages, msg)
	if h.onMsg != nil {
		h.onMsg()
	}
	return true
}

func TestDispatcher_BubblesToFirstClaimingHandler(t *testing.T) {
	ctx := context.Background()
	root := layout.NewNode("root", entity.Rect{W: 100, H: 100})
	mid := layout.NewNode("mid", entity.Rect{W: 100, H: 100})
	leaf := layout.NewNode("leaf", entity.Rect{W: 10, H: 10})
	root.Append(mid)
	mid.Append(leaf)

	rootH := &fakeHandler{claim: true}
	midH := &fakeHandler{claim: false}

	d := dispatcher.NewDispatcher(ctx)
	d.Register(root, rootH)
	d.Register(mid, midH)

	assert.True(t, d.DispatchDragEvent(ctx, leaf, &dock.DragEvent{Kind: dock.DragOver}))
	assert.Equal(t, []dock.DragEventKind{dock.DragOver}, midH.kinds)
	assert.Equal(t, []dock.DragEventKind{dock.DragOver}, rootH.kinds)

	midH.claim = true
	assert.True(t, d.DispatchDragEvent(ctx, leaf, &dock.DragEvent{Kind: dock.Drop}))
	assert.Len(t, rootH.kinds, 1)
}

func TestDispatcher_UnclaimedEvent(t *testing.T) {
	ctx := context.Background()
	root := layout.NewNode("root", entity.Rect{W: 100, H: 100})
	d := dispatcher.NewDispatcher(ctx)

	assert.False(t, d.DispatchDragEvent(ctx, root, &dock.DragEvent{Kind: dock.DragEnter}))
	assert.False(t, d.DispatchDragEvent(ctx, nil, &dock.DragEvent{Kind: dock.DragEnter}))

	h := &fakeHandler{claim: true}
	d.Register(root, h)
	d.Unregister(root)
	assert.False(t, d.DispatchDragEvent(ctx, root, &dock.DragEvent{Kind: dock.DragEnter}))
	assert.Empty(t, h.kinds)
}

func TestDispatcher_FlushDeliversInOrder(t *testing.T) {
	ctx := context.Background()
	area := layout.NewNode("area", entity.Rect{W: 100, H: 100})
	stray := layout.NewNode("stray", entity.Rect{})
	panel := layout.NewNode("panel", entity.Rect{W: 10, H: 10})

	h := &fakeHandler{}
	d := dispatcher.NewDispatcher(ctx)
	d.Register(area, h)

	first := dock.UpdateWidgetMsg{Widget: panel, X: 1, Y: 2, W: 3, H: 4}
	second := dock.RaiseWidgetMsg{Widget: panel}
	d.Post(area, first)
	d.Post(stray, dock.OtherMsg{Name: "lost"})
	d.Post(area, second)
	require.Equal(t, 3, d.Queued())

	assert.Equal(t, 2, d.Flush(ctx))
	assert.Equal(t, []dock.Message{first, second}, h.messages)
	assert.Equal(t, 0, d.Queued())
}

func TestDispatcher_MessagesPostedDuringFlushWait(t *testing.T) {
	ctx := context.Background()
	area := layout.NewNode("area", entity.Rect{W: 100, H: 100})
	d := dispatcher.NewDispatcher(ctx)

	h := &fakeHandler{}
	h.onMsg = func() {
		if len(h.messages) == 1 {
			d.Post(area, dock.OtherMsg{Name: "again"})
		}
	}
	d.Register(area, h)
	d.Post(area, dock.OtherMsg{Name: "first"})

	assert.Equal(t, 1, d.Flush(ctx))
	assert.Equal(t, 1, d.Queued())
	assert.Equal(t, 1, d.Flush(ctx))
	assert.Len(t, h.messages, 2)
}

// nestedAreas is an outer 1000x800 area holding an inner 600x500 area at (100,100),
// with a panel parked in a sidebar outside both.
type nestedAreas struct {
	d            *dispatcher.Dispatcher
	outer, inner *dock.FloatArea
	outerNode    *layout.Node
	content      *layout.Node
	panel        *layout.Node
	surface      *layout.RectSurface
}

// newNestedAreas builds the tree. With borrowInner the inner area shares the outer
// area's overlay instead of owning one.
func newNestedAreas(t *testing.T, borrowInner bool) *nestedAreas {
	t.Helper()
	ctx := context.Background()

	root := layout.NewNode("root", entity.Rect{W: 1400, H: 800})
	outer := layout.NewNode("outer", entity.Rect{W: 1000, H: 800})
	inner := layout.NewNode("inner", entity.Rect{X: 100, Y: 100, W: 600, H: 500})
	content := layout.NewNode("content", entity.Rect{X: 100, Y: 100, W: 600, H: 500})
	sidebar := layout.NewNode("sidebar", entity.Rect{X: 1000, W: 400, H: 800})
	panel := layout.NewNode("panel", entity.Rect{X: 1000, W: 200, H: 200})

	outer.AddCapability(layout.CapabilityDockArea)
	inner.AddCapability(layout.CapabilityDockArea)
	inner.Append(content)
	outer.Append(inner)
	sidebar.Append(panel)
	root.Append(outer, sidebar)

	d := dispatcher.NewDispatcher(ctx)
	surface := layout.NewRectSurface()
	n := &nestedAreas{
		d: d,
		outer: dock.NewFloatArea(ctx, outer, layout.NewFloatLayout(), dock.Options{
			Events:     d,
			NewOverlay: func() layout.OverlaySurface { return surface },
		}),
		outerNode: outer,
		content:   content,
		panel:     panel,
		surface:   surface,
	}
	innerOpts := dock.Options{Events: d}
	if borrowInner {
		innerOpts.Overlay = n.outer.Overlay().Handle()
	}
	n.inner = dock.NewFloatArea(ctx, inner, layout.NewFloatLayout(), innerOpts)
	d.Register(outer, n.outer)
	d.Register(inner, n.inner)
	return n
}

func widgetDrag(kind dock.DragEventKind, x, y int, w layout.Widget) *dock.DragEvent {
	return &dock.DragEvent{
		Kind:           kind,
		ClientX:        x,
		ClientY:        y,
		ProposedAction: dock.DropMove,
		MimeData:       dock.NewWidgetDrag(w),
	}
}

// enterBoth drags the panel into the outer area first, then on into the inner one,
// the order a pointer crossing the outer area produces.
func (n *nestedAreas) enterBoth(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	require.True(t, n.d.DispatchDragEvent(ctx, n.outerNode, widgetDrag(dock.DragEnter, 60, 300, n.panel)))
	require.True(t, n.d.DispatchDragEvent(ctx, n.content, widgetDrag(dock.DragEnter, 400, 300, n.panel)))
}

func TestDispatcher_InnerOverlayCollapsesOuter(t *testing.T) {
	n := newNestedAreas(t, false)
	n.enterBoth(t)

	assert.True(t, n.inner.Overlay().Visible())
	assert.False(t, n.outer.Overlay().Visible())
	// The drag is still over the outer area.
	assert.Equal(t, dock.StateDragging, n.outer.State())
	assert.Equal(t, dock.StateDragging, n.inner.State())
}

func TestDispatcher_EdgeZoneDelegatesToOuterArea(t *testing.T) {
	for _, borrow := range []bool{false, true} {
		name := "owned inner overlay"
		if borrow {
			name = "borrowed inner overlay"
		}
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			n := newNestedAreas(t, borrow)
			n.enterBoth(t)

			over := widgetDrag(dock.DragOver, 110, 300, n.panel)
			assert.True(t, n.d.DispatchDragEvent(ctx, n.content, over))
			assert.Equal(t, dock.DropMove, over.DropAction)
			assert.True(t, n.outer.Overlay().Visible())
			assert.True(t, n.surface.IsVisible())
			assert.Equal(t, 110, n.surface.Geometry().X)

			// Back into the inner area's interior: the inner preview takes over.
			assert.True(t, n.d.DispatchDragEvent(ctx, n.content, widgetDrag(dock.DragOver, 400, 300, n.panel)))
			assert.True(t, n.inner.Overlay().Visible())
			assert.Equal(t, !borrow, !n.outer.Overlay().Visible())

			require.True(t, n.d.DispatchDragEvent(ctx, n.content, widgetDrag(dock.DragOver, 110, 300, n.panel)))
			drop := widgetDrag(dock.Drop, 110, 300, n.panel)
			assert.True(t, n.d.DispatchDragEvent(ctx, n.content, drop))
			assert.Nil(t, n.panel.Parent())
			assert.Equal(t, 0, n.inner.PendingPlacements())
			assert.Equal(t, 1, n.outer.PendingPlacements())
			assert.Equal(t, dock.StateIdle, n.inner.State())
			assert.Equal(t, dock.StateIdle, n.outer.State())
		})
	}
}

func TestDispatcher_FlushForwardsToFloatArea(t *testing.T) {
	ctx := context.Background()
	area := layout.NewNode("area", entity.Rect{W: 800, H: 600})
	panel := layout.NewNode("panel", entity.Rect{W: 100, H: 100})
	lay := layout.NewFloatLayout()
	fa := dock.NewFloatArea(ctx, area, lay, dock.Options{})
	fa.AddWidget(ctx, panel, layout.AddOptions{Left: 10, Top: 10})

	d := dispatcher.NewDispatcher(ctx)
	d.Register(area, fa)
	d.Post(area, dock.UpdateWidgetMsg{Widget: panel, X: 50, Y: 60, W: 200, H: 150})

	assert.Equal(t, 1, d.Flush(ctx))
	r, ok := lay.Geometry(panel.ID())
	require.True(t, ok)
	assert.Equal(t, entity.Rect{X: 50, Y: 60, W: 200, H: 150}, r)
}
