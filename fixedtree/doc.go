// Package fixedtree implements a complete binary tree whose shape is fixed at
// construction time. Only node values change afterwards: each slot is either
// empty or holds a unique integer from an inclusive range [Min, Max].
//
// What:
//
//   - New(levels, min, max) allocates exactly 2^levels - 1 empty slots,
//     breadth-first, and never adds or removes nodes again.
//   - SetValue / ClearValue edit a single slot (manual editing).
//   - InsertBST places a value by binary-search-tree rules inside the fixed
//     shape; running out of children is the expected ErrNoSpace outcome,
//     not a fault.
//   - Traverse / All produce populated values in inorder, preorder or
//     postorder; empty slots contribute nothing.
//   - At / Levels give the presentation layer logical (depth, index)
//     addressing so it never needs to walk pointers itself.
//
// Errors:
//
//   - ErrInvalidBounds  min >= max at construction.
//   - ErrInvalidLevels  levels above MaxLevels.
//   - ErrRange          value outside [Min, Max]          (errkind.Range)
//   - ErrDuplicate      value already held by another slot (errkind.Duplicate)
//   - ErrNoSpace        BST path ends before a free slot  (errkind.NoSpace)
//   - ErrPosition       (depth, index) outside the shape   (errkind.NotFound)
//   - ErrForeignNode    node belongs to another tree or is nil.
//
// Every failing operation leaves the tree unchanged.
//
// Complexity:
//
//   - New:          O(2^levels)
//   - SetValue:     O(N) for the uniqueness scan
//   - InsertBST:    O(N) uniqueness scan + O(levels) descent
//   - Traverse:     O(N)
//   - At:           O(1)
package fixedtree
