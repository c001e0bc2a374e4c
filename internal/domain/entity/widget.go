package entity

import "github.com/google/uuid"

// WidgetID uniquely identifies a widget within a host.
type WidgetID string

// NewWidgetID returns a fresh random widget ID.
func NewWidgetID() WidgetID {
	return WidgetID(uuid.NewString())
}

// String implements fmt.Stringer.
func (id WidgetID) String() string { return string(id) }
