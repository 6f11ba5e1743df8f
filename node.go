package motion

import "math"

// Node is one element of a staggered-reveal hierarchy: a sentence, a word, a
// character, a card. A single flat struct is used for groups and leaves alike.
//
// The exported timing fields may be edited freely until the tree is frozen by
// NewSchedule (and therefore NewReveal); after that, structural changes panic.
type Node struct {
	// ID identifies the node within its tree. Must be unique per tree.
	ID string

	// LocalDelay is an extra delay in seconds on top of the node's stagger
	// slot. Negative values are treated as 0.
	LocalDelay float64
	// Duration of the entrance in seconds. Zero means an instantaneous jump.
	Duration float64
	// Easing shapes the entrance curve.
	Easing Easing
	// Props is the start and target appearance.
	Props PropertySet

	// UserData is carried through untouched for painters.
	UserData any

	parent   *Node
	children []*Node
	frozen   bool
}

// NewGroup creates a node that only orders and delays its children.
func NewGroup(id string) *Node {
	return &Node{ID: id, Props: Still()}
}

// NewNode creates an animated node. A negative or NaN duration is normalized
// to 0, which makes the node jump straight to its target when it starts.
func NewNode(id string, duration float64, easing Easing, props PropertySet) *Node {
	return &Node{
		ID:       id,
		Duration: normalizeDuration(duration),
		Easing:   easing,
		Props:    props,
	}
}

func normalizeDuration(d float64) float64 {
	if math.IsNaN(d) || d < 0 {
		return 0
	}
	return d
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, child is an ancestor of this node (cycle), or either
// tree is frozen.
func (n *Node) AddChild(child *Node) {
	index := len(n.children)
	if child != nil && child.parent == n {
		index--
	}
	n.AddChildAt(child, index)
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("motion: cannot add nil child")
	}
	n.checkMutable("AddChildAt")
	child.checkMutable("AddChildAt")
	if isAncestor(child, n) {
		panic("motion: adding child would create a cycle")
	}
	limit := len(n.children)
	if child.parent == n {
		limit--
	}
	if index < 0 || index > limit {
		panic("motion: child index out of range")
	}
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	child.parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
}

// RemoveChild detaches child from this node.
// Panics if child is not a child of n.
func (n *Node) RemoveChild(child *Node) {
	n.checkMutable("RemoveChild")
	if child.parent != n {
		panic("motion: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.parent = nil
}

// Children returns the child list in declared order. The returned slice MUST
// NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Index returns the node's position among its siblings, or 0 for a root.
func (n *Node) Index() int {
	if n.parent == nil {
		return 0
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return 0
}

// Depth returns the number of ancestors (0 for a root).
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Walk visits n and its descendants depth-first in declared order. Returning
// false from fn skips the node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Frozen reports whether the tree has been handed to a Schedule.
func (n *Node) Frozen() bool {
	return n.frozen
}

// --- Lifecycle ---

// StateAt returns the lifecycle state at t seconds after the owning trigger
// fired, for a node whose effective delay is delay. Non-finite and negative
// clock values read as Pending.
func (n *Node) StateAt(t, delay float64) State {
	if !finite(t) || t < delay {
		return StatePending
	}
	if d := normalizeDuration(n.Duration); d == 0 || t >= delay+d {
		return StateSettled
	}
	return StateAnimating
}

// SampleAt returns the node's properties at t seconds after its trigger
// fired. It has no side effects and may be called any number of times per
// frame.
func (n *Node) SampleAt(t, delay float64) Props {
	switch n.StateAt(t, delay) {
	case StatePending:
		return n.Props.From
	case StateSettled:
		return n.Props.To
	}
	p := (t - delay) / n.Duration
	return n.Props.At(n.Easing.Progress(p))
}

// --- Helpers ---

// checkMutable panics when the node belongs to a frozen tree.
func (n *Node) checkMutable(op string) {
	if n.frozen {
		panic("motion: " + op + " on node " + n.ID + " of a frozen tree")
	}
}

// freeze marks the whole subtree as frozen.
func (n *Node) freeze() {
	n.Walk(func(c *Node) bool {
		c.frozen = true
		return true
	})
}

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
