package layout

import (
	"sync"

	"github.com/bnema/dockarea/internal/domain/entity"
)

// OverlaySurface is the positional-feedback rectangle shown while a panel is dragged.
// Geometry is in client coordinates so one surface can be shared by nested areas.
type OverlaySurface interface {
	SetGeometry(r entity.Rect)
	SetVisible(visible bool)
	// SetNoTransition disables animated transitions so the surface can jump
	// between nested areas instantly.
	SetNoTransition(noTransition bool)
	Destroy()
}

// RectSurface is an in-memory OverlaySurface. It records every state change so
// hosts without a renderer (and tests) can inspect what a real surface would show.
type RectSurface struct {
	mu           sync.RWMutex
	geometry     entity.Rect
	visible      bool
	noTransition bool
	destroyed    bool
	shows        int
	hides        int
}

// NewRectSurface creates a hidden surface.
func NewRectSurface() *RectSurface {
	return &RectSurface{}
}

// SetGeometry implements OverlaySurface.
func (s *RectSurface) SetGeometry(r entity.Rect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.geometry = r
}

// SetVisible implements OverlaySurface. Each call counts as one visibility transition.
func (s *RectSurface) SetVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = visible
	if visible {
		s.shows++
	} else {
		s.hides++
	}
}

// SetNoTransition implements OverlaySurface.
func (s *RectSurface) SetNoTransition(noTransition bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.noTransition = noTransition
}

// Destroy implements OverlaySurface.
func (s *RectSurface) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destroyed = true
	s.visible = false
}

// Geometry returns the last geometry set.
func (s *RectSurface) Geometry() entity.Rect {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.geometry
}

// IsVisible reports the current visibility.
func (s *RectSurface) IsVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visible
}

// NoTransition reports whether transitions are suppressed.
func (s *RectSurface) NoTransition() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.noTransition
}

// Destroyed reports whether Destroy was called.
func (s *RectSurface) Destroyed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.destroyed
}

// Transitions returns how many times the surface was shown and hidden.
func (s *RectSurface) Transitions() (shows, hides int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shows, s.hides
}
