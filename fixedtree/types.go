package fixedtree

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dsakit/errkind"
)

// MaxLevels bounds the depth accepted by New (2^16-1 slots).
const MaxLevels = 16

// Sentinel errors for fixed-shape tree operations.
var (
	// ErrInvalidBounds indicates min >= max at construction.
	ErrInvalidBounds = errors.New("fixedtree: min must be less than max")

	// ErrInvalidLevels indicates a depth above MaxLevels.
	ErrInvalidLevels = fmt.Errorf("fixedtree: levels must not exceed %d", MaxLevels)

	// ErrRange indicates a value outside the tree's inclusive bounds.
	ErrRange = fmt.Errorf("fixedtree: %w", errkind.ErrRange)

	// ErrDuplicate indicates the value is already held by another slot.
	ErrDuplicate = fmt.Errorf("fixedtree: %w", errkind.ErrDuplicate)

	// ErrNoSpace indicates the BST descent reached a missing child.
	ErrNoSpace = fmt.Errorf("fixedtree: %w", errkind.ErrNoSpace)

	// ErrPosition indicates a (depth, index) pair outside the shape.
	ErrPosition = fmt.Errorf("fixedtree: position %w", errkind.ErrNotFound)

	// ErrForeignNode indicates a nil node or a node owned by another tree.
	ErrForeignNode = errors.New("fixedtree: node does not belong to this tree")
)

// Node is one slot of the fixed shape. Its children are wired once by New;
// only the value changes afterwards.
type Node struct {
	value  int
	filled bool

	left, right *Node

	depth, index int   // logical position: row and column within the row
	tree         *Tree // owner, guards against cross-tree edits
}

// Value returns the slot's value and whether the slot is populated.
func (n *Node) Value() (int, bool) {
	if n == nil {
		return 0, false
	}

	return n.value, n.filled
}

// Empty reports whether the slot holds no value.
func (n *Node) Empty() bool {
	return n == nil || !n.filled
}

// Left returns the left child, nil on the last row.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}

	return n.left
}

// Right returns the right child, nil on the last row.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}

	return n.right
}

// Position returns the slot's row (0 = root) and column within that row.
func (n *Node) Position() (depth, index int) {
	return n.depth, n.index
}

func (n *Node) set(v int) {
	n.value, n.filled = v, true
}

func (n *Node) clear() {
	n.value, n.filled = 0, false
}
