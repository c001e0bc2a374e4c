package dock

import "github.com/bnema/dockarea/internal/ui/layout"

// Options configures a FloatArea.
type Options struct {
	// EdgeSize is the edge zone width. Zero means EdgeSize.
	EdgeSize int
	// EdgePadding keeps the overlay this far inside the container.
	EdgePadding int
	// Sizer computes candidate sizes. The zero value means DefaultSizer.
	Sizer Sizer

	// Overlay shares a surface owned by an enclosing container, usually the
	// Overlay().Handle() of the enclosing area. When nil the area creates its
	// own surface with NewOverlay.
	Overlay *OverlayHandle
	// NewOverlay creates an owned surface. Nil means layout.NewRectSurface.
	NewOverlay func() layout.OverlaySurface

	// Events reaches the area's parent; used to collapse the parent's overlay.
	Events EventSink
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		EdgeSize: EdgeSize,
		Sizer:    DefaultSizer(),
	}
}

func (o Options) withDefaults() Options {
	if o.EdgeSize <= 0 {
		o.EdgeSize = EdgeSize
	}
	if o.EdgePadding < 0 {
		o.EdgePadding = 0
	}
	if o.Sizer == (Sizer{}) {
		o.Sizer = DefaultSizer()
	}
	if o.NewOverlay == nil {
		o.NewOverlay = func() layout.OverlaySurface { return layout.NewRectSurface() }
	}
	return o
}
