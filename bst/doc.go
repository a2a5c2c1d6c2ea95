// Package bst implements an unbalanced binary search tree of unique integers.
//
// Invariant: for every node, all values in its left subtree are smaller and
// all values in its right subtree are larger; no value appears twice. A node
// exists only while it holds a value; there are no empty slots.
//
// Operations:
//
//   - Insert(v)       O(depth) descent, new leaf, ErrDuplicate on equal key.
//   - Delete(v)       leaf / single child spliced out; two children replaced by
//     the in-order successor, which is then deleted from the
//     right subtree. ErrNotFound (no-op) when v is absent.
//   - FindMin(n)      left-only descent of a subtree.
//   - Traverse / All  inorder, preorder, postorder.
//
// WithBounds(min, max) restricts accepted values to an inclusive range; the
// tree reports ErrRange for values outside it.
//
// No rebalancing is performed: inserting sorted input degrades the tree to
// a list, which is the behavior being taught.
package bst
