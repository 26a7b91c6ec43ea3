package circular_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsakit/circular"
)

// TestRotate_Scenario rotates [a b c d e] by 2 and reads index 0.
func TestRotate_Scenario(t *testing.T) {
	arr := circular.From([]string{"a", "b", "c", "d", "e"})
	arr.Rotate(2)

	got, err := arr.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "c", got)
	assert.Equal(t, []string{"c", "d", "e", "a", "b"}, arr.Values())
	assert.Equal(t, 2, arr.Offset())
}

// TestRotate_RoundTrip checks Rotate(k); Rotate(-k) restores the mapping for
// every capacity in [0, 8] and k well outside [-C, C].
func TestRotate_RoundTrip(t *testing.T) {
	for capacity := 0; capacity <= 8; capacity++ {
		values := make([]int, capacity)
		for i := range values {
			values[i] = i * 10
		}
		for k := -25; k <= 25; k++ {
			arr := circular.From(values)
			arr.Rotate(3) // start from a non-zero head
			before, offset := arr.Values(), arr.Offset()

			arr.Rotate(k)
			arr.Rotate(-k)
			assert.Equal(t, offset, arr.Offset(), "C=%d k=%d", capacity, k)
			assert.Equal(t, before, arr.Values(), "C=%d k=%d", capacity, k)
		}
	}
}

// TestRotate_Normalization checks large and negative shifts land in [0, C).
func TestRotate_Normalization(t *testing.T) {
	arr := circular.From([]int{0, 1, 2, 3, 4})

	arr.Rotate(-1)
	assert.Equal(t, 4, arr.Offset())
	arr.Rotate(12) // 4 + 12 = 16 ≡ 1
	assert.Equal(t, 1, arr.Offset())
	arr.Rotate(-13) // 1 - 13 = -12 ≡ 3
	assert.Equal(t, 3, arr.Offset())

	first, err := arr.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 3, first)
}

// TestGetSet_Bounds verifies out-of-range access fails without side effects.
func TestGetSet_Bounds(t *testing.T) {
	arr := circular.From([]int{1, 2, 3})
	arr.Rotate(1)
	snapshot := arr.Values()

	for _, i := range []int{-1, -3, 3, 10} {
		_, err := arr.Get(i)
		assert.ErrorIs(t, err, circular.ErrIndexOutOfRange, "Get(%d)", i)
		assert.ErrorIs(t, arr.Set(i, 99), circular.ErrIndexOutOfRange, "Set(%d)", i)
	}
	assert.Equal(t, snapshot, arr.Values())
	assert.Equal(t, 1, arr.Offset())

	require.NoError(t, arr.Set(2, 7)) // logical 2 → physical 0
	v, err := arr.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, []int{2, 3, 7}, arr.Values())
}

// TestNew_Capacity covers zero, positive and negative capacities.
func TestNew_Capacity(t *testing.T) {
	arr, err := circular.New[int](4)
	require.NoError(t, err)
	assert.Equal(t, 4, arr.Len())
	assert.Equal(t, []int{0, 0, 0, 0}, arr.Values())

	empty, err := circular.New[int](0)
	require.NoError(t, err)
	empty.Rotate(5)
	assert.Equal(t, 0, empty.Offset())
	assert.Empty(t, empty.Values())
	_, err = empty.Get(0)
	assert.ErrorIs(t, err, circular.ErrIndexOutOfRange)

	_, err = circular.New[int](-1)
	assert.ErrorIs(t, err, circular.ErrBadCapacity)

	var zero circular.Array[string]
	assert.Equal(t, 0, zero.Len())
}

// TestAll_RestartableAndStoppable checks iteration restarts and honours early break.
func TestAll_RestartableAndStoppable(t *testing.T) {
	arr := circular.From([]int{1, 2, 3, 4})
	arr.Rotate(3)

	var first, second []int
	for v := range arr.All() {
		first = append(first, v)
	}
	for v := range arr.All() {
		second = append(second, v)
		if len(second) == 2 {
			break
		}
	}
	assert.Equal(t, []int{4, 1, 2, 3}, first)
	assert.Equal(t, []int{4, 1}, second)
}

// TestFrom_CopiesInput ensures the array does not alias the caller's slice.
func TestFrom_CopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	arr := circular.From(src)
	src[0] = 100

	v, err := arr.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}
