package dock

import "github.com/bnema/dockarea/internal/ui/layout"

// Message is a typed notification addressed to a float area.
// The set of variants is closed.
type Message interface {
	isMessage()
}

// UpdateWidgetMsg asks the area to move and resize a floating widget.
type UpdateWidgetMsg struct {
	Widget layout.Widget
	X, Y   int
	W, H   int
}

// RaiseWidgetMsg asks the area to bring a floating widget to the front.
// Event is the pointer event that triggered it, e.g. a title bar click.
type RaiseWidgetMsg struct {
	Widget layout.Widget
	Event  *layout.PointerEvent
}

// OtherMsg carries any notification the area does not act on.
type OtherMsg struct {
	Name string
}

func (UpdateWidgetMsg) isMessage() {}
func (RaiseWidgetMsg) isMessage()  {}
func (OtherMsg) isMessage()        {}
