package bst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dsakit/errkind"
)

// Sentinel errors for BST operations.
var (
	// ErrRange indicates a value outside the bounds set by WithBounds.
	ErrRange = fmt.Errorf("bst: %w", errkind.ErrRange)

	// ErrDuplicate indicates the value is already stored.
	ErrDuplicate = fmt.Errorf("bst: %w", errkind.ErrDuplicate)

	// ErrNotFound indicates a delete or lookup of an absent value,
	// or Min/Max on an empty tree.
	ErrNotFound = fmt.Errorf("bst: %w", errkind.ErrNotFound)

	// ErrInvalidBounds indicates WithBounds received min >= max.
	ErrInvalidBounds = errors.New("bst: min must be less than max")
)

// Node is an occupied tree node. Fields are read-only for callers; the tree
// owns all links.
type Node struct {
	Value       int
	left, right *Node
}

// Left returns the left child or nil.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}

	return n.left
}

// Right returns the right child or nil.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}

	return n.right
}

// Option configures a Tree at construction.
type Option func(*Tree)

// WithBounds restricts accepted values to the inclusive range [min, max].
// An invalid range is reported by New as ErrInvalidBounds.
func WithBounds(min, max int) Option {
	return func(t *Tree) {
		if min >= max {
			t.err = fmt.Errorf("%w: got [%d, %d]", ErrInvalidBounds, min, max)
			return
		}
		t.bounded, t.min, t.max = true, min, max
	}
}
