package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsakit/grid"
)

var sorted = [][]int{
	{1, 3, 5, 7},
	{10, 11, 16, 20},
	{23, 30, 34, 60},
}

func TestSearchLinear(t *testing.T) {
	g := [][]string{{"a", "b"}, {"c"}, {"d", "b", "e"}}

	got, ok := grid.SearchLinear(g, "b")
	require.True(t, ok)
	assert.Equal(t, grid.Cell{Row: 0, Col: 1}, got)

	got, ok = grid.SearchLinear(g, "e")
	require.True(t, ok)
	assert.Equal(t, grid.Cell{Row: 2, Col: 2}, got)

	_, ok = grid.SearchLinear(g, "z")
	assert.False(t, ok)
	_, ok = grid.SearchLinear[int](nil, 1)
	assert.False(t, ok)
}

// TestSearchRowBinary_EveryElement finds every value, including row ends.
func TestSearchRowBinary_EveryElement(t *testing.T) {
	for i, row := range sorted {
		for j, v := range row {
			got, ok, err := grid.SearchRowBinary(sorted, v)
			require.NoError(t, err)
			require.True(t, ok, "value %d", v)
			assert.Equal(t, grid.Cell{Row: i, Col: j}, got)
		}
	}
}

func TestSearchRowBinary_Missing(t *testing.T) {
	for _, v := range []int{0, 2, 8, 21, 33, 61} {
		_, ok, err := grid.SearchRowBinary(sorted, v)
		require.NoError(t, err)
		assert.False(t, ok, "value %d", v)
	}

	_, ok, err := grid.SearchRowBinary([][]int{}, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = grid.SearchRowBinary([][]int{{1, 2}, {3}}, 3)
	assert.ErrorIs(t, err, grid.ErrRagged)
}

func TestSearchStaircase(t *testing.T) {
	g := [][]int{
		{1, 4, 7, 11},
		{2, 5, 8, 12},
		{3, 6, 9, 16},
		{10, 13, 14, 17},
	}
	for i, row := range g {
		for j, v := range row {
			got, ok, err := grid.SearchStaircase(g, v)
			require.NoError(t, err)
			require.True(t, ok, "value %d", v)
			assert.Equal(t, grid.Cell{Row: i, Col: j}, got)
		}
	}

	for _, v := range []int{0, 15, 18} {
		_, ok, err := grid.SearchStaircase(g, v)
		require.NoError(t, err)
		assert.False(t, ok, "value %d", v)
	}

	_, _, err := grid.SearchStaircase([][]int{{1}, {2, 3}}, 2)
	assert.ErrorIs(t, err, grid.ErrRagged)
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "(2,5)", grid.Cell{Row: 2, Col: 5}.String())
}
