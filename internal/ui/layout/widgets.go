// Package layout defines the widget, layout and overlay contracts the docking engine
// works against, plus in-memory reference implementations of each.
// The contracts keep the engine testable without a toolkit runtime.
package layout

import (
	"github.com/bnema/dockarea/internal/domain/entity"
)

// Capability is a bitmask of roles a widget can advertise to its descendants.
type Capability uint32

// Capability flags.
const (
	// CapabilityDialog marks the chrome that wraps a floating panel.
	CapabilityDialog Capability = 1 << iota
	// CapabilityDockArea marks a container that accepts dropped panels.
	CapabilityDockArea
)

// Widget is the base interface the docking engine needs from a host widget.
type Widget interface {
	// Identity
	ID() entity.WidgetID

	// Parent management
	Parent() Widget
	Unparent()

	// Geometry - bounding box in client coordinates
	Bounds() entity.Rect

	// Capabilities advertised to descendants
	HasCapability(c Capability) bool

	// QueueRedraw schedules a visual refresh of the widget.
	QueueRedraw()
}

// HasAncestorWithCapability reports whether any strict ancestor of w advertises c.
func HasAncestorWithCapability(w Widget, c Capability) bool {
	if w == nil {
		return false
	}
	for p := w.Parent(); p != nil; p = p.Parent() {
		if p.HasCapability(c) {
			return true
		}
	}
	return false
}

// IsAncestorOrSelf reports whether candidate is w itself or one of its ancestors.
func IsAncestorOrSelf(candidate, w Widget) bool {
	if candidate == nil || w == nil {
		return false
	}
	for cur := w; cur != nil; cur = cur.Parent() {
		if cur.ID() == candidate.ID() {
			return true
		}
	}
	return false
}

// Contains reports whether w lies in root's subtree (root included).
func Contains(root, w Widget) bool {
	return IsAncestorOrSelf(root, w)
}
