package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Edges(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}

	assert.Equal(t, 110, r.Right())
	assert.Equal(t, 70, r.Bottom())
	cx, cy := r.Center()
	assert.Equal(t, 60, cx)
	assert.Equal(t, 45, cy)
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, r.Contains(Point{X: 0, Y: 0}))
	assert.True(t, r.Contains(Point{X: 9, Y: 9}))
	assert.False(t, r.Contains(Point{X: 10, Y: 5}))
	assert.False(t, r.Contains(Point{X: -1, Y: 5}))
}

func TestNewRect_ClampsNegativeSize(t *testing.T) {
	r := NewRect(5, 5, -3, 4)

	assert.Equal(t, 0, r.W)
	assert.Equal(t, 4, r.H)
	assert.True(t, r.Empty())
}

func TestRect_Translate(t *testing.T) {
	r := Rect{X: 1, Y: 2, W: 3, H: 4}.Translate(10, -2)

	assert.Equal(t, Rect{X: 11, Y: 0, W: 3, H: 4}, r)
}

func TestNewWidgetID_Unique(t *testing.T) {
	a := NewWidgetID()
	b := NewWidgetID()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
