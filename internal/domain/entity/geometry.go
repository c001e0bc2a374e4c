// Package entity defines the value types shared by the docking engine and its hosts.
package entity

// Point is a position in client coordinates.
type Point struct {
	X, Y int
}

// Rect represents a widget's on-screen position and size in client coordinates.
// X and Y are the top-left corner; W and H are never negative for measured widgets.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect builds a rect, clamping negative sizes to zero.
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies inside the rect (right/bottom edges exclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Translate returns the rect moved by dx, dy.
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Insets holds four edge distances, in the order CSS uses them.
type Insets struct {
	Left, Top, Right, Bottom int
}
