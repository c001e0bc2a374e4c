package layout

import "github.com/bnema/dockarea/internal/domain/entity"

// Region selects where the layout places an added widget.
type Region int

const (
	// RegionFloating is the general floating layer.
	RegionFloating Region = iota
	// RegionBackdrop is the always-bottom, non-floating slot.
	RegionBackdrop
)

// String implements fmt.Stringer.
func (r Region) String() string {
	switch r {
	case RegionBackdrop:
		return "backdrop"
	default:
		return "floating"
	}
}

// PlacementBackdrop is the AddOptions.Placement value that selects RegionBackdrop.
const PlacementBackdrop = "backdrop"

// AddOptions controls how a widget is added to a layout.
// Left/Top are relative to the layout's container; zero Width/Height
// leave sizing to the layout.
type AddOptions struct {
	Placement string
	Left      int
	Top       int
	Width     int
	Height    int
}

// RegionFor resolves the target region from the placement discriminator.
func (o AddOptions) RegionFor() Region {
	if o.Placement == PlacementBackdrop {
		return RegionBackdrop
	}
	return RegionFloating
}

// PointerEvent is the originating pointer event of a raise request.
type PointerEvent struct {
	ClientX int
	ClientY int
	Button  int
}

// Position returns the pointer position.
func (e PointerEvent) Position() entity.Point {
	return entity.Point{X: e.ClientX, Y: e.ClientY}
}

// Layout positions and orders the widgets floating inside an area.
// It is the only writer of floating geometry and stacking order.
type Layout interface {
	AddWidget(w Widget, opts AddOptions, region Region)
	RemoveWidget(w Widget)
	UpdateWidget(w Widget, x, y, width, height int)
	RaiseWidget(w Widget, ev *PointerEvent)

	// RunAfterSettle queues fn to run once the current positioning pass settles.
	// The returned token may be cancelled before that happens.
	RunAfterSettle(fn func()) *SettleToken
}
