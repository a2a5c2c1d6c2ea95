package fixedtree

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/dsakit/traversal"
)

// Tree is a complete binary tree of fixed depth with editable slot values.
// The zero value is not usable; construct with New.
type Tree struct {
	root   *Node
	rows   [][]*Node // breadth-first rows, rows[d] has 2^d slots
	levels int
	min    int
	max    int
}

var nodeShape = traversal.Shape[*Node]{
	Nil:      func(n *Node) bool { return n == nil },
	Children: func(n *Node) (*Node, *Node) { return n.left, n.right },
}

// New allocates a complete binary tree of exactly levels rows, all slots
// empty, accepting values in the inclusive range [min, max].
// levels <= 0 yields a tree without a root; every query on it is empty and
// InsertBST reports ErrNoSpace.
func New(levels, min, max int) (*Tree, error) {
	if min >= max {
		return nil, fmt.Errorf("%w: got [%d, %d]", ErrInvalidBounds, min, max)
	}
	if levels > MaxLevels {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLevels, levels)
	}
	t := &Tree{min: min, max: max}
	if levels <= 0 {
		return t, nil
	}
	t.levels = levels

	// breadth-first expansion: each pass turns the current frontier into
	// the next row by giving every node two fresh children.
	t.root = &Node{tree: t}
	frontier := []*Node{t.root}
	t.rows = append(t.rows, frontier)
	for d := 1; d < levels; d++ {
		next := make([]*Node, 0, 2*len(frontier))
		for _, cur := range frontier {
			cur.left = &Node{depth: d, index: len(next), tree: t}
			cur.right = &Node{depth: d, index: len(next) + 1, tree: t}
			next = append(next, cur.left, cur.right)
		}
		t.rows = append(t.rows, next)
		frontier = next
	}

	return t, nil
}

// Root returns the root slot, nil for an empty tree.
func (t *Tree) Root() *Node { return t.root }

// Depth returns the number of rows.
func (t *Tree) Depth() int { return t.levels }

// Bounds returns the inclusive value range.
func (t *Tree) Bounds() (min, max int) { return t.min, t.max }

// Slots returns the total number of slots, filled or not.
func (t *Tree) Slots() int { return (1 << t.levels) - 1 }

// Len returns the number of populated slots.
func (t *Tree) Len() int {
	n := 0
	for _, row := range t.rows {
		for _, s := range row {
			if s.filled {
				n++
			}
		}
	}

	return n
}

// At returns the slot at row depth, column index (both zero-based).
func (t *Tree) At(depth, index int) (*Node, error) {
	if depth < 0 || depth >= t.levels || index < 0 || index >= len(t.rows[depth]) {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrPosition, depth, index)
	}

	return t.rows[depth][index], nil
}

// Levels returns the slots grouped by row, root row first.
// The outer and inner slices are copies; the nodes are shared.
func (t *Tree) Levels() [][]*Node {
	out := make([][]*Node, len(t.rows))
	for i, row := range t.rows {
		out[i] = slices.Clone(row)
	}

	return out
}

// Find returns the slot holding v, or nil.
func (t *Tree) Find(v int) *Node {
	for _, row := range t.rows {
		for _, s := range row {
			if s.filled && s.value == v {
				return s
			}
		}
	}

	return nil
}

// Contains reports whether any slot holds v.
func (t *Tree) Contains(v int) bool {
	return t.Find(v) != nil
}

// SetValue overwrites n's value with v.
// Fails with ErrRange outside [Min, Max] and with ErrDuplicate when v is held
// by a different slot; assigning a slot its current value succeeds.
func (t *Tree) SetValue(n *Node, v int) error {
	if n == nil || n.tree != t {
		return ErrForeignNode
	}
	if err := t.checkRange(v); err != nil {
		return err
	}
	if holder := t.Find(v); holder != nil && holder != n {
		return fmt.Errorf("%w: %d at (%d, %d)", ErrDuplicate, v, holder.depth, holder.index)
	}
	n.set(v)

	return nil
}

// ClearValue empties n and reports whether it held a value.
// A nil or foreign node is ignored.
func (t *Tree) ClearValue(n *Node) bool {
	if n == nil || n.tree != t || !n.filled {
		return false
	}
	n.clear()

	return true
}

// Reset empties every slot; the shape is kept.
func (t *Tree) Reset() {
	for _, row := range t.rows {
		for _, s := range row {
			s.clear()
		}
	}
}

// InsertBST validates v against the range and the whole tree, then places it
// from the root by binary-search-tree rules (see InsertShaped).
// Returns the slot that received v.
func (t *Tree) InsertBST(v int) (*Node, error) {
	if err := t.checkRange(v); err != nil {
		return nil, err
	}
	if t.root == nil {
		return nil, ErrNoSpace
	}
	if t.Contains(v) {
		return nil, fmt.Errorf("%w: %d", ErrDuplicate, v)
	}

	return t.InsertShaped(t.root, v)
}

// InsertShaped places v in the subtree rooted at n obeying BST ordering
// without growing the shape: an empty slot is filled, an equal value fails
// with ErrDuplicate, and descending into a missing child fails with
// ErrNoSpace. Range is not checked here.
func (t *Tree) InsertShaped(n *Node, v int) (*Node, error) {
	if n == nil || n.tree != t {
		return nil, ErrForeignNode
	}
	for {
		if !n.filled {
			n.set(v)
			return n, nil
		}
		if v == n.value {
			return nil, fmt.Errorf("%w: %d", ErrDuplicate, v)
		}
		next := n.right
		if v < n.value {
			next = n.left
		}
		if next == nil {
			return nil, fmt.Errorf("%w: %d below (%d, %d)", ErrNoSpace, v, n.depth, n.index)
		}
		n = next
	}
}

// All yields populated values in order o. Iteration may stop early.
func (t *Tree) All(o traversal.Order) iter.Seq[int] {
	return func(yield func(int) bool) {
		traversal.Walk(t.root, o, nodeShape, func(n *Node) bool {
			if !n.filled {
				return true
			}
			return yield(n.value)
		})
	}
}

// Traverse returns populated values in order o; empty slots are skipped.
func (t *Tree) Traverse(o traversal.Order) []int {
	return slices.Collect(t.All(o))
}

func (t *Tree) checkRange(v int) error {
	if v < t.min || v > t.max {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrRange, v, t.min, t.max)
	}

	return nil
}
