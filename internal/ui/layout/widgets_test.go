package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dockarea/internal/domain/entity"
	"github.com/bnema/dockarea/internal/ui/layout"
)

func TestHasAncestorWithCapability(t *testing.T) {
	root := layout.NewNode("root", entity.Rect{})
	dialog := layout.NewNode("dialog", entity.Rect{})
	dialog.AddCapability(layout.CapabilityDialog)
	panel := layout.NewNode("panel", entity.Rect{})
	loose := layout.NewNode("loose", entity.Rect{})
	root.Append(dialog, loose)
	dialog.Append(panel)

	assert.True(t, layout.HasAncestorWithCapability(panel, layout.CapabilityDialog))
	assert.False(t, layout.HasAncestorWithCapability(loose, layout.CapabilityDialog))
	// The widget's own capability does not count.
	assert.False(t, layout.HasAncestorWithCapability(dialog, layout.CapabilityDialog))
	assert.False(t, layout.HasAncestorWithCapability(nil, layout.CapabilityDialog))
}

func TestIsAncestorOrSelf(t *testing.T) {
	root := layout.NewNode("root", entity.Rect{})
	mid := layout.NewNode("mid", entity.Rect{})
	leaf := layout.NewNode("leaf", entity.Rect{})
	other := layout.NewNode("other", entity.Rect{})
	root.Append(mid, other)
	mid.Append(leaf)

	assert.True(t, layout.IsAncestorOrSelf(root, leaf))
	assert.True(t, layout.IsAncestorOrSelf(mid, leaf))
	assert.True(t, layout.IsAncestorOrSelf(leaf, leaf))
	assert.False(t, layout.IsAncestorOrSelf(leaf, mid))
	assert.False(t, layout.IsAncestorOrSelf(other, leaf))

	assert.True(t, layout.Contains(mid, leaf))
	assert.False(t, layout.Contains(mid, other))
	assert.False(t, layout.Contains(mid, nil))
}

func TestAddOptions_RegionFor(t *testing.T) {
	assert.Equal(t, layout.RegionBackdrop, layout.AddOptions{Placement: "backdrop"}.RegionFor())
	assert.Equal(t, layout.RegionFloating, layout.AddOptions{}.RegionFor())
	assert.Equal(t, layout.RegionFloating, layout.AddOptions{Placement: "anything"}.RegionFor())
	assert.Equal(t, "backdrop", layout.RegionBackdrop.String())
	assert.Equal(t, "floating", layout.RegionFloating.String())
}
