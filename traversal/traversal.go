// Package traversal defines the three depth-first visiting orders shared by
// the tree engines, and a generic recursive walker that both trees use to
// expose their traversals as iterators.
//
// Orders:
//
//   - InOrder   (LNR): left subtree, node, right subtree.
//   - PreOrder  (NLR): node, left subtree, right subtree.
//   - PostOrder (LRN): left subtree, right subtree, node.
//
// Walking is a pure read: it never mutates the tree and can be restarted
// any number of times with identical results.
//
// Complexity: O(N) time, O(H) stack where H is the tree height.
package traversal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOrder is returned by ParseOrder for an unrecognized name.
var ErrUnknownOrder = errors.New("traversal: unknown order")

// Order selects a depth-first visiting order.
type Order uint8

const (
	InOrder Order = iota
	PreOrder
	PostOrder
)

var orderNames = map[string]Order{
	"inorder":   InOrder,
	"in":        InOrder,
	"lnr":       InOrder,
	"preorder":  PreOrder,
	"pre":       PreOrder,
	"nlr":       PreOrder,
	"postorder": PostOrder,
	"post":      PostOrder,
	"lrn":       PostOrder,
}

// Orders lists every supported order in display sequence.
func Orders() []Order {
	return []Order{InOrder, PreOrder, PostOrder}
}

// ParseOrder maps a case-insensitive name ("inorder", "pre", "LRN", ...)
// to its Order. Hyphens and underscores are ignored ("in-order" works).
func ParseOrder(name string) (Order, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "").Replace(key)
	if o, ok := orderNames[key]; ok {
		return o, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}

// Valid reports whether o is one of the three defined orders.
func (o Order) Valid() bool {
	return o <= PostOrder
}

// String returns "inorder", "preorder" or "postorder".
func (o Order) String() string {
	switch o {
	case InOrder:
		return "inorder"
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}

// Shape tells Walk how to navigate a binary node type N.
type Shape[N any] struct {
	// Nil reports whether n is the absent child.
	Nil func(n N) bool
	// Children returns the left and right child of a non-nil n.
	Children func(n N) (left, right N)
}

// Walk visits every node reachable from root in order o, calling yield for
// each. It stops as soon as yield returns false and reports whether the
// walk ran to completion. An invalid order visits nothing.
func Walk[N any](root N, o Order, s Shape[N], yield func(N) bool) bool {
	if !o.Valid() {
		return true
	}

	return walk(root, o, s, yield)
}

func walk[N any](n N, o Order, s Shape[N], yield func(N) bool) bool {
	if s.Nil(n) {
		return true
	}
	left, right := s.Children(n)

	switch o {
	case PreOrder:
		return yield(n) && walk(left, o, s, yield) && walk(right, o, s, yield)
	case PostOrder:
		return walk(left, o, s, yield) && walk(right, o, s, yield) && yield(n)
	default:
		return walk(left, o, s, yield) && yield(n) && walk(right, o, s, yield)
	}
}
