package bst_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dsakit/bst"
	"github.com/katalvlaran/dsakit/traversal"
)

// ExampleTree_Delete removes a root with two children; the in-order
// successor (8) takes its place.
//
//	    5              8
//	   / \            /
//	  3   8   ==>    3
//	 /              /
//	1              1
func ExampleTree_Delete() {
	tr, _ := bst.New()
	for _, v := range []int{5, 3, 8, 1} {
		_ = tr.Insert(v)
	}
	fmt.Println("before:", tr.Traverse(traversal.InOrder))

	_ = tr.Delete(5)
	fmt.Println("after: ", tr.Traverse(traversal.InOrder))
	fmt.Println("root:  ", tr.Root().Value)

	// Output:
	// before: [1 3 5 8]
	// after:  [1 3 8]
	// root:   8
}

// ExampleTree_Insert demonstrates the duplicate and range failures of a
// bounded tree.
func ExampleTree_Insert() {
	tr, _ := bst.New(bst.WithBounds(1, 50))

	for _, v := range []int{20, 20, 99} {
		err := tr.Insert(v)
		switch {
		case errors.Is(err, bst.ErrDuplicate):
			fmt.Println(v, "duplicate")
		case errors.Is(err, bst.ErrRange):
			fmt.Println(v, "out of range")
		default:
			fmt.Println(v, "inserted")
		}
	}

	// Output:
	// 20 inserted
	// 20 duplicate
	// 99 out of range
}
