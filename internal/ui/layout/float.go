package layout

import (
	"sync"

	"github.com/bnema/dockarea/internal/domain/entity"
)

// floatItem is a single widget placed by a FloatLayout.
type floatItem struct {
	widget Widget
	rect   entity.Rect // relative to the layout's container
	region Region
}

// pendingSettle is a continuation waiting for the next Settle.
type pendingSettle struct {
	token *SettleToken
	fn    func()
}

// Placement describes one placed widget, as reported by FloatLayout.Order.
type Placement struct {
	ID     entity.WidgetID
	Rect   entity.Rect
	Region Region
}

// FloatLayout is an in-memory Layout. Backdrop widgets always stack below
// floating ones; within a region, later entries are on top.
type FloatLayout struct {
	items    map[entity.WidgetID]*floatItem
	backdrop []entity.WidgetID
	floating []entity.WidgetID
	pending  []pendingSettle
	passes   int

	mu sync.RWMutex
}

// NewFloatLayout creates an empty layout.
func NewFloatLayout() *FloatLayout {
	return &FloatLayout{
		items: make(map[entity.WidgetID]*floatItem),
	}
}

// AddWidget implements Layout. Adding a widget that is already placed moves it
// to the requested region and geometry and raises it.
func (fl *FloatLayout) AddWidget(w Widget, opts AddOptions, region Region) {
	if w == nil {
		return
	}

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		b := w.Bounds()
		if width <= 0 {
			width = b.W
		}
		if height <= 0 {
			height = b.H
		}
	}

	fl.mu.Lock()
	defer fl.mu.Unlock()

	id := w.ID()
	fl.removeLocked(id)
	fl.items[id] = &floatItem{
		widget: w,
		rect:   entity.NewRect(opts.Left, opts.Top, width, height),
		region: region,
	}
	if region == RegionBackdrop {
		fl.backdrop = append(fl.backdrop, id)
	} else {
		fl.floating = append(fl.floating, id)
	}
}

// RemoveWidget implements Layout.
func (fl *FloatLayout) RemoveWidget(w Widget) {
	if w == nil {
		return
	}
	fl.mu.Lock()
	defer fl.mu.Unlock()
	fl.removeLocked(w.ID())
}

// UpdateWidget implements Layout. Unknown widgets are ignored.
func (fl *FloatLayout) UpdateWidget(w Widget, x, y, width, height int) {
	if w == nil {
		return
	}
	fl.mu.Lock()
	defer fl.mu.Unlock()

	item, ok := fl.items[w.ID()]
	if !ok {
		return
	}
	item.rect = entity.NewRect(x, y, width, height)
}

// RaiseWidget implements Layout. The widget moves to the top of its own region;
// a backdrop widget never rises above floating ones.
func (fl *FloatLayout) RaiseWidget(w Widget, _ *PointerEvent) {
	if w == nil {
		return
	}
	fl.mu.Lock()
	defer fl.mu.Unlock()

	id := w.ID()
	item, ok := fl.items[id]
	if !ok {
		return
	}
	if item.region == RegionBackdrop {
		fl.backdrop = append(removeID(fl.backdrop, id), id)
		return
	}
	fl.floating = append(removeID(fl.floating, id), id)
}

// RunAfterSettle implements Layout.
func (fl *FloatLayout) RunAfterSettle(fn func()) *SettleToken {
	token := NewSettleToken()

	fl.mu.Lock()
	fl.pending = append(fl.pending, pendingSettle{token: token, fn: fn})
	fl.mu.Unlock()

	return token
}

// Settle ends the current positioning pass and runs, in FIFO order, every
// continuation queued before the call. Continuations queued while settling wait
// for the next pass. It returns how many continuations ran.
func (fl *FloatLayout) Settle() int {
	fl.mu.Lock()
	queue := fl.pending
	fl.pending = nil
	fl.passes++
	fl.mu.Unlock()

	ran := 0
	for _, p := range queue {
		if p.token.Run(p.fn) {
			ran++
		}
	}
	return ran
}

// Pending returns the number of continuations waiting for the next Settle.
func (fl *FloatLayout) Pending() int {
	fl.mu.RLock()
	defer fl.mu.RUnlock()
	return len(fl.pending)
}

// Passes returns how many times Settle ran.
func (fl *FloatLayout) Passes() int {
	fl.mu.RLock()
	defer fl.mu.RUnlock()
	return fl.passes
}

// Geometry returns the placed rect of a widget.
func (fl *FloatLayout) Geometry(id entity.WidgetID) (entity.Rect, bool) {
	fl.mu.RLock()
	defer fl.mu.RUnlock()

	item, ok := fl.items[id]
	if !ok {
		return entity.Rect{}, false
	}
	return item.rect, true
}

// Widget returns a placed widget by ID.
func (fl *FloatLayout) Widget(id entity.WidgetID) (Widget, bool) {
	fl.mu.RLock()
	defer fl.mu.RUnlock()

	item, ok := fl.items[id]
	if !ok {
		return nil, false
	}
	return item.widget, true
}

// Order returns every placement bottom to top.
func (fl *FloatLayout) Order() []Placement {
	fl.mu.RLock()
	defer fl.mu.RUnlock()

	out := make([]Placement, 0, len(fl.items))
	for _, ids := range [][]entity.WidgetID{fl.backdrop, fl.floating} {
		for _, id := range ids {
			item := fl.items[id]
			out = append(out, Placement{ID: id, Rect: item.rect, Region: item.region})
		}
	}
	return out
}

// Len returns the number of placed widgets.
func (fl *FloatLayout) Len() int {
	fl.mu.RLock()
	defer fl.mu.RUnlock()
	return len(fl.items)
}

func (fl *FloatLayout) removeLocked(id entity.WidgetID) {
	item, ok := fl.items[id]
	if !ok {
		return
	}
	delete(fl.items, id)
	if item.region == RegionBackdrop {
		fl.backdrop = removeID(fl.backdrop, id)
		return
	}
	fl.floating = removeID(fl.floating, id)
}

func removeID(ids []entity.WidgetID, id entity.WidgetID) []entity.WidgetID {
	for i, cur := range ids {
		if cur == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
