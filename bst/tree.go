package bst

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/dsakit/traversal"
)

// Tree is a binary search tree of unique ints. Use New to construct.
type Tree struct {
	root *Node
	size int

	bounded  bool
	min, max int

	err error // first option error, surfaced by New
}

var nodeShape = traversal.Shape[*Node]{
	Nil:      func(n *Node) bool { return n == nil },
	Children: func(n *Node) (*Node, *Node) { return n.left, n.right },
}

// New returns an empty tree configured by opts.
func New(opts ...Option) (*Tree, error) {
	t := &Tree{}
	for _, opt := range opts {
		opt(t)
	}
	if t.err != nil {
		return nil, t.err
	}

	return t, nil
}

// Root returns the root node, nil when empty.
func (t *Tree) Root() *Node { return t.root }

// Len returns the number of stored values.
func (t *Tree) Len() int { return t.size }

// Bounds returns the configured range and whether one is set.
func (t *Tree) Bounds() (min, max int, ok bool) { return t.min, t.max, t.bounded }

// Reset drops every node.
func (t *Tree) Reset() {
	t.root, t.size = nil, 0
}

// Insert adds v as a new leaf.
// Fails with ErrRange (bounded trees only) or ErrDuplicate; the tree is then
// unchanged.
func (t *Tree) Insert(v int) error {
	if t.bounded && (v < t.min || v > t.max) {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrRange, v, t.min, t.max)
	}

	link := &t.root
	for *link != nil {
		cur := *link
		switch {
		case v < cur.Value:
			link = &cur.left
		case v > cur.Value:
			link = &cur.right
		default:
			return fmt.Errorf("%w: %d", ErrDuplicate, v)
		}
	}
	*link = &Node{Value: v}
	t.size++

	return nil
}

// Delete removes v. A node with two children takes the value of its in-order
// successor, and the successor is removed from the right subtree.
// Returns ErrNotFound, without changes, when v is absent.
func (t *Tree) Delete(v int) error {
	var removed bool
	t.root, removed = deleteNode(t.root, v)
	if !removed {
		return fmt.Errorf("%w: %d", ErrNotFound, v)
	}
	t.size--

	return nil
}

func deleteNode(n *Node, v int) (*Node, bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch {
	case v < n.Value:
		n.left, removed = deleteNode(n.left, v)
		return n, removed
	case v > n.Value:
		n.right, removed = deleteNode(n.right, v)
		return n, removed
	}

	// n holds v
	if n.left == nil {
		return n.right, true
	}
	if n.right == nil {
		return n.left, true
	}
	succ := FindMin(n.right)
	n.Value = succ.Value
	n.right, _ = deleteNode(n.right, succ.Value)

	return n, true
}

// FindMin descends left from n until no left child remains.
// Returns nil for a nil subtree; callers guard empty input.
func FindMin(n *Node) *Node {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}

	return n
}

// findMax mirrors FindMin on the right spine.
func findMax(n *Node) *Node {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}

	return n
}

// Min returns the smallest value, ErrNotFound when empty.
func (t *Tree) Min() (int, error) {
	n := FindMin(t.root)
	if n == nil {
		return 0, fmt.Errorf("%w: tree is empty", ErrNotFound)
	}

	return n.Value, nil
}

// Max returns the largest value, ErrNotFound when empty.
func (t *Tree) Max() (int, error) {
	n := findMax(t.root)
	if n == nil {
		return 0, fmt.Errorf("%w: tree is empty", ErrNotFound)
	}

	return n.Value, nil
}

// Find returns the node holding v and the number of comparisons made.
// The node is nil when v is absent.
func (t *Tree) Find(v int) (*Node, int) {
	steps := 0
	for n := t.root; n != nil; {
		steps++
		switch {
		case v < n.Value:
			n = n.left
		case v > n.Value:
			n = n.right
		default:
			return n, steps
		}
	}

	return nil, steps
}

// Contains reports whether v is stored.
func (t *Tree) Contains(v int) bool {
	n, _ := t.Find(v)
	return n != nil
}

// Height returns the number of nodes on the longest root-to-leaf path
// (0 for an empty tree).
func (t *Tree) Height() int {
	return height(t.root)
}

func height(n *Node) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}

// All yields stored values in order o.
func (t *Tree) All(o traversal.Order) iter.Seq[int] {
	return func(yield func(int) bool) {
		traversal.Walk(t.root, o, nodeShape, func(n *Node) bool {
			return yield(n.Value)
		})
	}
}

// Traverse returns stored values in order o.
func (t *Tree) Traverse(o traversal.Order) []int {
	return slices.Collect(t.All(o))
}
