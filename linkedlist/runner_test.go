package linkedlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsakit/internal/randgen"
	"github.com/katalvlaran/dsakit/linkedlist"
)

// TestFindMiddle_TieBreak pins the index L/2 contract for every length up to 9.
func TestFindMiddle_TieBreak(t *testing.T) {
	assert.Nil(t, linkedlist.FindMiddle[int](nil))

	for n := 1; n <= 9; n++ {
		values := make([]int, n)
		for i := range values {
			values[i] = i
		}
		mid := linkedlist.FindMiddle(linkedlist.FromSlice(values))
		require.NotNil(t, mid)
		assert.Equal(t, n/2, mid.Value, "length=%d", n)
	}

	// 1→2→3→4→5→6 yields 4.
	assert.Equal(t, 4, linkedlist.FindMiddle(linkedlist.FromSlice([]int{1, 2, 3, 4, 5, 6})).Value)
}

// TestCycle_Scenario covers 1→2→3→4→5→6→3.
func TestCycle_Scenario(t *testing.T) {
	head, err := linkedlist.FromSliceWithCycle([]int{1, 2, 3, 4, 5, 6}, 2)
	require.NoError(t, err)

	assert.True(t, linkedlist.HasCycleByRunner(head))
	assert.True(t, linkedlist.HasCycleByHashing(head))
	assert.Equal(t, 4, linkedlist.FindCycleLength(head))

	start, err := linkedlist.FindCycleStart(head)
	require.NoError(t, err)
	assert.Equal(t, 3, start.Value)
	entry, _ := linkedlist.NodeAt(head, 2)
	assert.Same(t, entry, start)
}

// TestCycle_Acyclic checks acyclic lists are reported as such.
func TestCycle_Acyclic(t *testing.T) {
	for _, values := range [][]int{nil, {1}, {1, 2}, {1, 2, 3, 4, 5}} {
		head := linkedlist.FromSlice(values)
		assert.False(t, linkedlist.HasCycleByRunner(head))
		assert.False(t, linkedlist.HasCycleByHashing(head))
		assert.Equal(t, 0, linkedlist.FindCycleLength(head))

		_, err := linkedlist.FindCycleStart(head)
		assert.ErrorIs(t, err, linkedlist.ErrAcyclic)
	}
}

// TestCycle_RunnerMatchesHashing verifies the equivalence of both detectors,
// and that FindCycleStart locates the true entry, for every entry position.
func TestCycle_RunnerMatchesHashing(t *testing.T) {
	rng := randgen.New(77)
	for n := 1; n <= 25; n++ {
		values := randgen.Ints(rng, n, 0, 9)

		acyclic := linkedlist.FromSlice(values)
		assert.Equal(t, linkedlist.HasCycleByHashing(acyclic), linkedlist.HasCycleByRunner(acyclic))

		for entry := 0; entry < n; entry++ {
			head, err := linkedlist.FromSliceWithCycle(values, entry)
			require.NoError(t, err)

			assert.Equal(t, linkedlist.HasCycleByHashing(head), linkedlist.HasCycleByRunner(head))
			assert.True(t, linkedlist.HasCycleByRunner(head))
			assert.Equal(t, n-entry, linkedlist.FindCycleLength(head), "n=%d entry=%d", n, entry)

			want, _ := linkedlist.NodeAt(head, entry)
			got, err := linkedlist.FindCycleStart(head)
			require.NoError(t, err)
			assert.Same(t, want, got, "n=%d entry=%d", n, entry)
		}
	}
}

// TestKthToLast compares both strategies against index arithmetic.
func TestKthToLast(t *testing.T) {
	head := linkedlist.FromSlice([]int{1, 2, 3, 4, 5})
	for k := 1; k <= 5; k++ {
		want := 6 - k
		byRunner := linkedlist.KthToLastByRunner(head, k)
		byRecursion := linkedlist.KthToLastRecursive(head, k)
		require.NotNil(t, byRunner)
		require.NotNil(t, byRecursion)
		assert.Equal(t, want, byRunner.Value)
		assert.Same(t, byRunner, byRecursion)
	}

	for _, k := range []int{0, -1, 6} {
		assert.Nil(t, linkedlist.KthToLastByRunner(head, k), "k=%d", k)
		assert.Nil(t, linkedlist.KthToLastRecursive(head, k), "k=%d", k)
	}
	assert.Nil(t, linkedlist.KthToLastByRunner[int](nil, 1))
	assert.Nil(t, linkedlist.KthToLastRecursive[int](nil, 1))
}
