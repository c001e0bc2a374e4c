package dispatcher

import (
	"context"
	"sync"

	"github.com/bnema/dockarea/internal/domain/entity"
	"github.com/bnema/dockarea/internal/logging"
	"github.com/bnema/dockarea/internal/ui/dock"
	"github.com/bnema/dockarea/internal/ui/layout"
)

// MessageHandler receives typed messages posted to a widget.
type MessageHandler interface {
	HandleMessage(ctx context.Context, msg dock.Message) bool
}

type envelope struct {
	target layout.Widget
	msg    dock.Message
}

// Dispatcher routes drag events and messages to the handlers registered on
// widgets. Drag events bubble from the target towards the root until a handler
// claims them.
type Dispatcher struct {
	drag     map[entity.WidgetID]dock.DragHandler
	messages map[entity.WidgetID]MessageHandler
	queue    []envelope

	mu sync.RWMutex
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(ctx context.Context) *Dispatcher {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating drag dispatcher")

	return &Dispatcher{
		drag:     make(map[entity.WidgetID]dock.DragHandler),
		messages: make(map[entity.WidgetID]MessageHandler),
	}
}

// Register binds handler to widget. A handler that also implements
// MessageHandler receives messages posted to widget.
func (d *Dispatcher) Register(widget layout.Widget, handler dock.DragHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := widget.ID()
	d.drag[id] = handler
	if mh, ok := handler.(MessageHandler); ok {
		d.messages[id] = mh
	}
}

// Unregister removes every handler bound to widget.
func (d *Dispatcher) Unregister(widget layout.Widget) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.drag, widget.ID())
	delete(d.messages, widget.ID())
}

// DispatchDragEvent implements dock.EventSink. It offers ev to target and then
// to each ancestor, stopping at the first handler that returns true.
func (d *Dispatcher) DispatchDragEvent(ctx context.Context, target layout.Widget, ev *dock.DragEvent) bool {
	log := logging.FromContext(ctx)

	for cur := target; cur != nil; cur = cur.Parent() {
		d.mu.RLock()
		h, ok := d.drag[cur.ID()]
		d.mu.RUnlock()
		if !ok {
			continue
		}
		if dock.DispatchDrag(ctx, h, ev) {
			log.Trace().
				Stringer("kind", ev.Kind).
				Str("handler", string(cur.ID())).
				Msg("drag event handled")
			return true
		}
	}

	log.Trace().Stringer("kind", ev.Kind).Msg("drag event unhandled")
	return false
}

// Post queues msg for target. Messages are delivered by Flush.
func (d *Dispatcher) Post(target layout.Widget, msg dock.Message) {
	d.mu.Lock()
	d.queue = append(d.queue, envelope{target: target, msg: msg})
	d.mu.Unlock()
}

// Queued returns the number of messages waiting for Flush.
func (d *Dispatcher) Queued() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.queue)
}

// Flush delivers the queued messages in posting order and returns how many
// were handled. Messages posted during a flush wait for the next one.
func (d *Dispatcher) Flush(ctx context.Context) int {
	log := logging.FromContext(ctx)

	d.mu.Lock()
	queue := d.queue
	d.queue = nil
	d.mu.Unlock()

	handled := 0
	for _, env := range queue {
		d.mu.RLock()
		h, ok := d.messages[env.target.ID()]
		d.mu.RUnlock()
		if !ok {
			log.Debug().Str("target", string(env.target.ID())).Msg("message target has no handler")
			continue
		}
		if h.HandleMessage(ctx, env.msg) {
			handled++
		}
	}
	return handled
}
