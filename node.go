package deck

// HitShape is used for custom hit testing regions.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// PointerContext carries pointer event data.
type PointerContext struct {
	Node     *Node
	UserData any
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
}

// nodeIDCounter is a plain counter (deck is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a retained-mode element of the deck's view. A node has a layout
// position (X, Y) owned by the view and a translation (TranslateX,
// TranslateY) owned by animations, mirroring how a page separates layout from
// transforms.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Layout
	X, Y          float64
	Width, Height float64

	// Animated properties
	TranslateX, TranslateY float64
	Alpha                  float64

	// Appearance
	Color     Color
	Label     string
	TextColor Color
	Font      *Font // nil draws with the debug font
	// Rows is a vertical ticker; only the row under the node's origin is
	// drawn, selected by TranslateY in steps of RowHeight.
	Rows      []string
	RowHeight float64

	// Visibility & interaction
	Visible      bool
	Interactable bool
	HitShape     HitShape

	UserData any

	OnClick        func(PointerContext)
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)

	disposed bool
}

// NewNode creates a visible node with full alpha and a white tint.
func NewNode(name string) *Node {
	return &Node{
		ID:        nextNodeID(),
		Name:      name,
		Alpha:     1,
		Color:     ColorWhite,
		TextColor: ColorWhite,
		Visible:   true,
	}
}

// NewBox creates a solid-color node of the given size.
func NewBox(name string, w, h float64, c Color) *Node {
	n := NewNode(name)
	n.Width = w
	n.Height = h
	n.Color = c
	return n
}

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("deck: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("deck: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("deck: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Tweens targeting a disposed
// node stop on their next update.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.HitShape = nil
	n.UserData = nil
	n.OnClick = nil
	n.OnPointerEnter = nil
	n.OnPointerLeave = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// WorldPosition returns the node's origin in view coordinates: the sum of
// layout position and translation over the node and its ancestors.
func (n *Node) WorldPosition() (x, y float64) {
	for p := n; p != nil; p = p.Parent {
		x += p.X + p.TranslateX
		y += p.Y + p.TranslateY
	}
	return x, y
}

// WorldToLocal converts view coordinates into this node's local space.
func (n *Node) WorldToLocal(wx, wy float64) (float64, float64) {
	ox, oy := n.WorldPosition()
	return wx - ox, wy - oy
}

// WorldAlpha returns the product of alpha over the node and its ancestors.
func (n *Node) WorldAlpha() float64 {
	a := 1.0
	for p := n; p != nil; p = p.Parent {
		a *= p.Alpha
	}
	return a
}

// containsLocal tests whether (lx, ly) falls inside the node's hit region.
// Uses HitShape if set; otherwise the node's size.
func (n *Node) containsLocal(lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	if n.Width == 0 && n.Height == 0 {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// visibleRow returns the index into Rows currently shown by the ticker.
func (n *Node) visibleRow() int {
	if len(n.Rows) == 0 || n.RowHeight <= 0 {
		return 0
	}
	row := int(-n.TranslateY/n.RowHeight + 0.5)
	if row < 0 {
		return 0
	}
	if row >= len(n.Rows) {
		return len(n.Rows) - 1
	}
	return row
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
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
