// Package dsakit is a small workbench of classic data structures and
// puzzles, each an engine with an explicit error taxonomy and a terminal
// front end.
//
// 🚀 What is inside?
//
//	A set of dependency-free engines:
//		• fixedtree: a complete binary tree of fixed depth, filled by slot or by BST rules
//		• bst:       an unbalanced binary search tree with optional value bounds
//		• garage:    bounded FIFO and LIFO parking lots that relocate blocking cars
//		• hanoi:     the Tower of Hanoi with a step solver that can be stopped mid-way
//
//	and the shared pieces they build on:
//		• errkind:   sentinel error kinds every engine wraps (range, duplicate, …)
//		• traversal: in-, pre- and post-order walks over any binary shape
//
// Under the hood, the command line lives in internal/:
//
//	internal/cli/      cobra commands: tree, bst, queue, stack, hanoi play|solve
//	internal/session/  line-oriented command loop shared by every engine
//	internal/render/   lipgloss drawing of trees, lots and pegs
//	internal/tui/      bubbletea Tower of Hanoi with manual play and auto-solve
//	internal/config/   defaults, ~/.dsakit.json and DSAKIT_* overrides
//	internal/logging/  slog console handler plus a rotating log file
//	internal/prompt/   survey questions for missing setup values
//
// Quick example:
//
//	q, _ := garage.NewQueue(3)
//	_ = q.Arrive("ABC")
//	_ = q.Arrive("DEF")
//	d, _ := q.Depart("DEF") // ABC is moved out and back in
//
//	go install github.com/katalvlaran/dsakit/cmd/dsakit@latest
package dsakit
