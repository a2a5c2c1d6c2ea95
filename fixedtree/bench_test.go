package fixedtree_test

import (
	"testing"

	"github.com/katalvlaran/dsakit/fixedtree"
	"github.com/katalvlaran/dsakit/traversal"
)

// BenchmarkNew_Levels10 measures breadth-first allocation of 1023 slots.
func BenchmarkNew_Levels10(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = fixedtree.New(10, 0, 1<<20)
	}
}

// BenchmarkTraverse_Full10 measures an inorder walk over a full 10-level tree.
func BenchmarkTraverse_Full10(b *testing.B) {
	tr, err := fixedtree.New(10, 0, 1<<20)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	for _, row := range tr.Levels() {
		for _, n := range row {
			d, i := n.Position()
			_ = tr.SetValue(n, d<<10|i)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.Traverse(traversal.InOrder)
	}
}
