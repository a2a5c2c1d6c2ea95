package bst_test

import (
	"math"
	"slices"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsakit/bst"
	"github.com/katalvlaran/dsakit/errkind"
	"github.com/katalvlaran/dsakit/traversal"
)

// build inserts vals in order into a fresh unbounded tree.
func build(t *testing.T, vals ...int) *bst.Tree {
	t.Helper()
	tr, err := bst.New()
	require.NoError(t, err)
	for _, v := range vals {
		require.NoError(t, tr.Insert(v), "insert %d", v)
	}

	return tr
}

// checkOrdering asserts the strict BST invariant over every node.
func checkOrdering(t *testing.T, n *bst.Node, lo, hi int) {
	t.Helper()
	if n == nil {
		return
	}
	require.Greater(t, n.Value, lo)
	require.Less(t, n.Value, hi)
	checkOrdering(t, n.Left(), lo, n.Value)
	checkOrdering(t, n.Right(), n.Value, hi)
}

// Scenario: insert [5 3 8 1]; inorder [1 3 5 8]; delete 5 → [1 3 8], root 8.
func TestInsertDelete_Scenario(t *testing.T) {
	tr := build(t, 5, 3, 8, 1)
	assert.Equal(t, []int{1, 3, 5, 8}, tr.Traverse(traversal.InOrder))
	assert.Equal(t, []int{5, 3, 1, 8}, tr.Traverse(traversal.PreOrder))
	assert.Equal(t, []int{1, 3, 8, 5}, tr.Traverse(traversal.PostOrder))

	require.NoError(t, tr.Delete(5))
	assert.Equal(t, []int{1, 3, 8}, tr.Traverse(traversal.InOrder))
	require.NotNil(t, tr.Root())
	assert.Equal(t, 8, tr.Root().Value)
	assert.Equal(t, 3, tr.Len())
}

func TestInsert_Duplicate(t *testing.T) {
	tr := build(t, 5, 3, 8)
	err := tr.Insert(3)
	assert.ErrorIs(t, err, bst.ErrDuplicate)
	assert.Equal(t, errkind.Duplicate, errkind.KindOf(err))
	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, []int{3, 5, 8}, tr.Traverse(traversal.InOrder))
}

func TestInsert_Bounds(t *testing.T) {
	tr, err := bst.New(bst.WithBounds(1, 10))
	require.NoError(t, err)

	require.NoError(t, tr.Insert(1))
	require.NoError(t, tr.Insert(10))
	err = tr.Insert(11)
	assert.ErrorIs(t, err, bst.ErrRange)
	assert.Equal(t, errkind.Range, errkind.KindOf(err))
	assert.ErrorIs(t, tr.Insert(0), errkind.ErrRange)
	assert.Equal(t, 2, tr.Len())

	lo, hi, ok := tr.Bounds()
	assert.True(t, ok)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 10, hi)

	_, err = bst.New(bst.WithBounds(5, 5))
	assert.ErrorIs(t, err, bst.ErrInvalidBounds)
}

func TestDelete_Cases(t *testing.T) {
	tests := []struct {
		name     string
		del      int
		wantIn   []int
		wantPre  []int
		wantRoot int
	}{
		//        50
		//      /    \
		//    30      70
		//   /  \    /
		//  20  40  60
		//            \
		//            65
		{"leaf", 20, []int{30, 40, 50, 60, 65, 70}, []int{50, 30, 40, 70, 60, 65}, 50},
		{"single child", 70, []int{20, 30, 40, 50, 60, 65}, []int{50, 30, 20, 40, 60, 65}, 50},
		{"two children", 30, []int{20, 40, 50, 60, 65, 70}, []int{50, 40, 20, 70, 60, 65}, 50},
		{"root with successor subtree", 50, []int{20, 30, 40, 60, 65, 70}, []int{60, 30, 20, 40, 70, 65}, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := build(t, 50, 30, 70, 20, 40, 60, 65)
			require.NoError(t, tr.Delete(tt.del))
			assert.Equal(t, tt.wantIn, tr.Traverse(traversal.InOrder))
			assert.Equal(t, tt.wantPre, tr.Traverse(traversal.PreOrder))
			assert.Equal(t, tt.wantRoot, tr.Root().Value)
			assert.False(t, tr.Contains(tt.del))
			checkOrdering(t, tr.Root(), math.MinInt, math.MaxInt)
		})
	}
}

func TestDelete_AbsentIsNoOp(t *testing.T) {
	tr := build(t, 5, 3, 8)
	err := tr.Delete(4)
	assert.ErrorIs(t, err, bst.ErrNotFound)
	assert.Equal(t, errkind.NotFound, errkind.KindOf(err))
	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, []int{5, 3, 8}, tr.Traverse(traversal.PreOrder))

	empty := build(t)
	assert.ErrorIs(t, empty.Delete(1), bst.ErrNotFound)
}

func TestDelete_UntilEmpty(t *testing.T) {
	tr := build(t, 4, 2, 6, 1, 3, 5, 7)
	for _, v := range []int{4, 1, 7, 2, 6, 3, 5} {
		require.NoError(t, tr.Delete(v))
	}
	assert.Nil(t, tr.Root())
	assert.Zero(t, tr.Len())
	assert.Empty(t, tr.Traverse(traversal.InOrder))
}

func TestFindMinMax(t *testing.T) {
	assert.Nil(t, bst.FindMin(nil))

	tr := build(t, 5, 3, 8, 1, 4)
	assert.Equal(t, 1, bst.FindMin(tr.Root()).Value)
	assert.Equal(t, 4, bst.FindMin(tr.Root().Left().Right()).Value)

	lo, err := tr.Min()
	require.NoError(t, err)
	assert.Equal(t, 1, lo)
	hi, err := tr.Max()
	require.NoError(t, err)
	assert.Equal(t, 8, hi)

	empty := build(t)
	_, err = empty.Min()
	assert.ErrorIs(t, err, bst.ErrNotFound)
	_, err = empty.Max()
	assert.ErrorIs(t, err, bst.ErrNotFound)
}

func TestFind_StepsAndHeight(t *testing.T) {
	tr := build(t, 1, 2, 3, 4)
	n, steps := tr.Find(4)
	require.NotNil(t, n)
	assert.Equal(t, 4, steps, "sorted input degrades to a list")
	assert.Equal(t, 4, tr.Height())

	n, steps = tr.Find(10)
	assert.Nil(t, n)
	assert.Equal(t, 4, steps)

	assert.Zero(t, build(t).Height())
}

func TestReset(t *testing.T) {
	tr := build(t, 2, 1, 3)
	tr.Reset()
	assert.Nil(t, tr.Root())
	assert.Zero(t, tr.Len())
	require.NoError(t, tr.Insert(2), "values are reusable after reset")
}

// TestRandomized_Invariants inserts and deletes random values and checks the
// ordering invariant, sortedness of inorder, and absence after delete.
func TestRandomized_Invariants(t *testing.T) {
	for round := 0; round < 20; round++ {
		tr := build(t)
		present := map[int]bool{}

		for i := 0; i < 200; i++ {
			v := randomdata.Number(0, 500)
			err := tr.Insert(v)
			if present[v] {
				assert.ErrorIs(t, err, bst.ErrDuplicate)
			} else {
				require.NoError(t, err)
				present[v] = true
			}
		}
		in := tr.Traverse(traversal.InOrder)
		assert.True(t, slices.IsSorted(in))
		assert.Len(t, in, len(present))

		for v := range present {
			if randomdata.Boolean() {
				require.NoError(t, tr.Delete(v))
				delete(present, v)
				assert.False(t, tr.Contains(v))
			}
		}
		checkOrdering(t, tr.Root(), math.MinInt, math.MaxInt)
		assert.Equal(t, len(present), tr.Len())
		assert.True(t, slices.IsSorted(tr.Traverse(traversal.InOrder)))
	}
}
