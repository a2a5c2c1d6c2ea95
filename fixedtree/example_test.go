package fixedtree_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dsakit/fixedtree"
	"github.com/katalvlaran/dsakit/traversal"
)

// ExampleTree_SetValue fills a two-level tree by hand and prints all three
// traversals.
//
//	  5
//	 / \
//	3   8
func ExampleTree_SetValue() {
	tr, _ := fixedtree.New(2, 1, 10)

	root, _ := tr.At(0, 0)
	left, _ := tr.At(1, 0)
	right, _ := tr.At(1, 1)
	_ = tr.SetValue(root, 5)
	_ = tr.SetValue(left, 3)
	_ = tr.SetValue(right, 8)

	for _, o := range traversal.Orders() {
		fmt.Println(o, tr.Traverse(o))
	}

	// Output:
	// inorder [3 5 8]
	// preorder [5 3 8]
	// postorder [3 8 5]
}

// ExampleTree_InsertBST shows the "no space" outcome that distinguishes a
// shaped insert from a real BST insert.
func ExampleTree_InsertBST() {
	tr, _ := fixedtree.New(2, 1, 99)

	for _, v := range []int{40, 20, 60, 10} {
		n, err := tr.InsertBST(v)
		switch {
		case errors.Is(err, fixedtree.ErrNoSpace):
			fmt.Printf("%d: no space\n", v)
		case err != nil:
			fmt.Printf("%d: %v\n", v, err)
		default:
			d, i := n.Position()
			fmt.Printf("%d -> (%d,%d)\n", v, d, i)
		}
	}

	// Output:
	// 40 -> (0,0)
	// 20 -> (1,0)
	// 60 -> (1,1)
	// 10: no space
}
