package simulate

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/dockarea/internal/domain/entity"
	"github.com/bnema/dockarea/internal/logging"
	"github.com/bnema/dockarea/internal/ui/dispatcher"
	"github.com/bnema/dockarea/internal/ui/dock"
	"github.com/bnema/dockarea/internal/ui/layout"
)

// world is the live state of one scenario run.
type world struct {
	nodes    map[string]*layout.Node
	areas    map[string]*areaState
	order    []string // area ids in declaration order
	overlays map[string]sharedOverlay
	events   *dispatcher.Dispatcher
}

// sharedOverlay is a named surface borrowed by several areas.
type sharedOverlay struct {
	handle  *dock.OverlayHandle
	surface *layout.RectSurface
}

type areaState struct {
	area    *dock.FloatArea
	layout  *layout.FloatLayout
	surface *layout.RectSurface
}

// ErrFinished is returned by Player.Step once every step has been applied.
var ErrFinished = errors.New("scenario finished")

// Player applies a scenario one step at a time.
type Player struct {
	ctx    context.Context
	sc     *Scenario
	w      *world
	steps  []StepResult
	next   int
	closed bool
}

// NewPlayer builds the scenario's widget tree. opts configures every float
// area; its Overlay, NewOverlay and Events fields are managed by the player.
func NewPlayer(ctx context.Context, sc *Scenario, opts dock.Options) (*Player, error) {
	ctx = logging.WithComponent(ctx, "simulate")

	w, err := build(ctx, sc, opts)
	if err != nil {
		return nil, err
	}
	return &Player{ctx: ctx, sc: sc, w: w}, nil
}

// Scenario returns the scenario being played.
func (p *Player) Scenario() *Scenario { return p.sc }

// Next returns the index of the step Step will apply.
func (p *Player) Next() int { return p.next }

// Done reports whether every step has been applied.
func (p *Player) Done() bool { return p.next >= len(p.sc.Steps) }

// Step applies the next step.
func (p *Player) Step() (StepResult, error) {
	if p.closed || p.Done() {
		return StepResult{}, ErrFinished
	}

	i := p.next
	st := p.sc.Steps[i]
	sr, err := p.w.apply(p.ctx, st)
	if err != nil {
		return sr, fmt.Errorf("step %d (%s): %w", i, st.Action, err)
	}
	sr.Index = i
	p.steps = append(p.steps, sr)
	p.next++

	logging.FromContext(p.ctx).Debug().
		Int("step", i).
		Str("action", st.Action).
		Bool("handled", sr.Handled).
		Msg("step applied")
	return sr, nil
}

// Areas returns the current state of every float area, in declaration order.
func (p *Player) Areas() []AreaResult {
	areas := make([]AreaResult, 0, len(p.w.order))
	for _, id := range p.w.order {
		areas = append(areas, p.w.snapshot(id))
	}
	return areas
}

// Result reports the steps applied so far and checks the expectations against
// the current state.
func (p *Player) Result() *Result {
	return &Result{
		Name:     p.sc.Name,
		Steps:    append([]StepResult(nil), p.steps...),
		Areas:    p.Areas(),
		Failures: p.w.check(p.sc.Expect),
	}
}

// Restart rebuilds the widget tree with opts and replays the steps applied so
// far. The receiver is closed once the new player has caught up.
func (p *Player) Restart(opts dock.Options) (*Player, error) {
	w, err := build(p.ctx, p.sc, opts)
	if err != nil {
		return nil, err
	}
	np := &Player{ctx: p.ctx, sc: p.sc, w: w}
	for np.next < p.next {
		if _, err := np.Step(); err != nil {
			np.Close()
			return nil, fmt.Errorf("replay: %w", err)
		}
	}
	p.Close()
	return np, nil
}

// Close disposes every float area.
func (p *Player) Close() {
	if p.closed {
		return
	}
	p.closed = true
	for _, id := range p.w.order {
		p.w.areas[id].area.Dispose(p.ctx)
	}
}

// Run plays every step of sc and returns the final state.
func Run(ctx context.Context, sc *Scenario, opts dock.Options) (*Result, error) {
	p, err := NewPlayer(ctx, sc, opts)
	if err != nil {
		return nil, err
	}
	defer p.Close()

	for !p.Done() {
		if _, err := p.Step(); err != nil {
			return nil, err
		}
	}
	return p.Result(), nil
}

// RunAll runs scenarios concurrently, at most limit at a time (limit <= 0 means
// no limit). Results keep the input order.
func RunAll(ctx context.Context, scenarios []*Scenario, opts dock.Options, limit int) ([]*Result, error) {
	results := make([]*Result, len(scenarios))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, sc := range scenarios {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Run(gctx, sc, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", sc.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func build(ctx context.Context, sc *Scenario, opts dock.Options) (*world, error) {
	w := &world{
		nodes:    make(map[string]*layout.Node, len(sc.Widgets)),
		areas:    make(map[string]*areaState),
		overlays: make(map[string]sharedOverlay),
		events:   dispatcher.NewDispatcher(ctx),
	}

	for _, spec := range sc.Widgets {
		bounds, err := rectFrom(spec.Bounds)
		if err != nil {
			return nil, fmt.Errorf("widget %q: %w", spec.ID, err)
		}
		n := layout.NewNode(entity.WidgetID(spec.ID), bounds)
		if spec.Dialog {
			n.AddCapability(layout.CapabilityDialog)
		}
		if spec.Area {
			n.AddCapability(layout.CapabilityDockArea)
		}
		w.nodes[spec.ID] = n
	}
	for _, spec := range sc.Widgets {
		if spec.Parent != "" {
			w.nodes[spec.Parent].Append(w.nodes[spec.ID])
		}
	}

	for _, spec := range sc.Widgets {
		if !spec.Area {
			continue
		}
		st := &areaState{layout: layout.NewFloatLayout()}

		areaOpts := opts
		areaOpts.Events = w.events
		areaOpts.Overlay = nil
		switch owner, isArea := w.areas[spec.Overlay]; {
		case spec.Overlay == "":
			st.surface = layout.NewRectSurface()
			areaOpts.NewOverlay = func() layout.OverlaySurface { return st.surface }
		case isArea:
			// Nested areas borrow the surface of an enclosing area.
			st.surface = owner.surface
			areaOpts.Overlay = owner.area.Overlay().Handle()
		default:
			shared, ok := w.overlays[spec.Overlay]
			if !ok {
				surface := layout.NewRectSurface()
				shared = sharedOverlay{handle: dock.NewOverlayHandle(surface), surface: surface}
				w.overlays[spec.Overlay] = shared
			}
			st.surface = shared.surface
			areaOpts.Overlay = shared.handle
		}

		node := w.nodes[spec.ID]
		st.area = dock.NewFloatArea(ctx, node, st.layout, areaOpts)
		w.events.Register(node, st.area)
		w.areas[spec.ID] = st
		w.order = append(w.order, spec.ID)
	}

	for _, spec := range sc.Widgets {
		if spec.Place == nil {
			continue
		}
		r, err := rectFrom(spec.Place)
		if err != nil {
			return nil, fmt.Errorf("widget %q: %w", spec.ID, err)
		}
		add := layout.AddOptions{Left: r.X, Top: r.Y, Width: r.W, Height: r.H}
		if spec.Backdrop {
			add.Placement = layout.PlacementBackdrop
		}
		w.areas[spec.Parent].area.AddWidget(ctx, w.nodes[spec.ID], add)
	}
	return w, nil
}

// widget returns the node for id, or nil when id is empty.
func (w *world) widget(id string) layout.Widget {
	if id == "" {
		return nil
	}
	return w.nodes[id]
}

func (w *world) apply(ctx context.Context, st Step) (StepResult, error) {
	sr := StepResult{Action: st.Action}

	switch st.Action {
	case ActionEnter, ActionOver, ActionLeave, ActionDrop:
		ev := w.dragEvent(st)
		sr.Handled = w.events.DispatchDragEvent(ctx, w.nodes[st.Target], ev)
		sr.DropAction = ev.DropAction.String()

	case ActionSettle:
		for _, id := range w.order {
			sr.Settled += w.areas[id].layout.Settle()
		}
		sr.Handled = sr.Settled > 0

	case ActionUpdate:
		r, err := rectFrom(st.Rect)
		if err != nil {
			return sr, err
		}
		w.events.Post(w.nodes[st.Target], dock.UpdateWidgetMsg{
			Widget: w.nodes[st.Widget], X: r.X, Y: r.Y, W: r.W, H: r.H,
		})
		sr.Handled = w.events.Flush(ctx) > 0

	case ActionRaise:
		w.events.Post(w.nodes[st.Target], dock.RaiseWidgetMsg{
			Widget: w.nodes[st.Widget],
			Event:  &layout.PointerEvent{ClientX: st.X, ClientY: st.Y},
		})
		sr.Handled = w.events.Flush(ctx) > 0

	case ActionRemove:
		area, ok := w.areas[st.Target]
		if !ok {
			return sr, fmt.Errorf("%q is not an area", st.Target)
		}
		area.area.RemoveWidget(ctx, w.nodes[st.Widget])
		sr.Handled = true

	case ActionResize:
		r, err := rectFrom(st.Rect)
		if err != nil {
			return sr, err
		}
		w.nodes[st.Target].SetBounds(r)
		sr.Handled = true

	default:
		return sr, fmt.Errorf("unknown action %q", st.Action)
	}
	return sr, nil
}

func (w *world) dragEvent(st Step) *dock.DragEvent {
	kinds := map[string]dock.DragEventKind{
		ActionEnter: dock.DragEnter,
		ActionOver:  dock.DragOver,
		ActionLeave: dock.DragLeave,
		ActionDrop:  dock.Drop,
	}
	ev := &dock.DragEvent{
		Kind:           kinds[st.Action],
		ClientX:        st.X,
		ClientY:        st.Y,
		ProposedAction: dock.DropMove,
		RelatedTarget:  w.widget(st.Related),
	}
	if st.Widget != "" {
		ev.MimeData = dock.NewWidgetDrag(w.nodes[st.Widget])
	}
	if len(st.Image) >= 2 {
		ev.DragImage = &dock.DragImage{OffsetX: st.Image[0], OffsetY: st.Image[1]}
		if len(st.Image) == 3 {
			ev.DragImage.Height = st.Image[2]
		}
	}
	return ev
}

func (w *world) snapshot(id string) AreaResult {
	st := w.areas[id]
	ar := AreaResult{
		ID:             id,
		State:          st.area.State().String(),
		OverlayVisible: st.area.Overlay().Visible(),
		OverlayOwned:   st.area.Overlay().Owned(),
		Pending:        st.area.PendingPlacements(),
		Placements:     st.layout.Order(),
	}
	if ar.OverlayVisible {
		ar.OverlayRect = st.surface.Geometry()
	}
	return ar
}

func (w *world) check(expect []Expectation) []string {
	var failures []string
	for _, e := range expect {
		lay := w.areas[e.Area].layout
		got, placed := lay.Geometry(entity.WidgetID(e.Widget))

		if e.Absent {
			if placed {
				failures = append(failures, fmt.Sprintf("%s: %s placed at %s, want absent", e.Area, e.Widget, formatRect(got)))
			}
			continue
		}
		want, _ := rectFrom(e.Rect)
		switch {
		case !placed:
			failures = append(failures, fmt.Sprintf("%s: %s not placed, want %s", e.Area, e.Widget, formatRect(want)))
		case got != want:
			failures = append(failures, fmt.Sprintf("%s: %s at %s, want %s", e.Area, e.Widget, formatRect(got), formatRect(want)))
		}
	}
	return failures
}
