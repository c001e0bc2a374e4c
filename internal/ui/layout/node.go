package layout

import (
	"github.com/bnema/dockarea/internal/domain/entity"
)

// Node is an in-memory Widget with explicit parent/child links.
// Hosts without a toolkit (the simulator, tests) build their widget tree from nodes.
type Node struct {
	id           entity.WidgetID
	bounds       entity.Rect
	capabilities Capability
	parent       *Node
	children     []*Node
	redraws      int
}

// NewNode creates a detached node. An empty id is replaced by a generated one.
func NewNode(id entity.WidgetID, bounds entity.Rect) *Node {
	if id == "" {
		id = entity.NewWidgetID()
	}
	return &Node{id: id, bounds: bounds}
}

// ID implements Widget.
func (n *Node) ID() entity.WidgetID { return n.id }

// Parent implements Widget.
func (n *Node) Parent() Widget {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// ParentNode returns the parent as a *Node, or nil.
func (n *Node) ParentNode() *Node { return n.parent }

// Unparent implements Widget. It is a no-op on a detached node.
func (n *Node) Unparent() {
	if n.parent == nil {
		return
	}
	n.parent.Remove(n)
}

// Bounds implements Widget.
func (n *Node) Bounds() entity.Rect { return n.bounds }

// SetBounds updates the node's client-space bounding box.
func (n *Node) SetBounds(r entity.Rect) { n.bounds = r }

// HasCapability implements Widget.
func (n *Node) HasCapability(c Capability) bool { return n.capabilities&c != 0 }

// AddCapability advertises c to descendants.
func (n *Node) AddCapability(c Capability) { n.capabilities |= c }

// QueueRedraw implements Widget.
func (n *Node) QueueRedraw() { n.redraws++ }

// Redraws returns how many redraws were queued.
func (n *Node) Redraws() int { return n.redraws }

// Append adds children, moving them out of any previous parent.
func (n *Node) Append(children ...*Node) {
	for _, child := range children {
		if child == nil || child == n {
			continue
		}
		child.Unparent()
		child.parent = n
		n.children = append(n.children, child)
	}
}

// Remove detaches child if it is a direct child of n.
func (n *Node) Remove(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Children returns a copy of the direct children.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Find returns the node with id in n's subtree, or nil.
func (n *Node) Find(id entity.WidgetID) *Node {
	if n.id == id {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// HitTest returns the deepest node in n's subtree whose bounds contain p.
// Later children are on top of earlier ones.
func (n *Node) HitTest(p entity.Point) *Node {
	if !n.bounds.Contains(p) {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := n.children[i].HitTest(p); hit != nil {
			return hit
		}
	}
	return n
}
