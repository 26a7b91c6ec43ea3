package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsakit/grid"
	"github.com/katalvlaran/dsakit/internal/randgen"
)

func cloneGrid(g [][]int) [][]int {
	out := make([][]int, len(g))
	for i, row := range g {
		out[i] = append([]int(nil), row...)
	}

	return out
}

func TestSetZeroes(t *testing.T) {
	cases := []struct {
		name string
		in   [][]int
		want [][]int
	}{
		{"Center", [][]int{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}}, [][]int{{1, 0, 1}, {0, 0, 0}, {1, 0, 1}}},
		{"Corners", [][]int{{0, 1, 2, 0}, {3, 4, 5, 2}, {1, 3, 1, 5}}, [][]int{{0, 0, 0, 0}, {0, 4, 5, 0}, {0, 3, 1, 0}}},
		{"FirstColumnOnly", [][]int{{1, 2}, {0, 3}}, [][]int{{0, 2}, {0, 0}}},
		{"NoZero", [][]int{{1, 2}, {3, 4}}, [][]int{{1, 2}, {3, 4}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := cloneGrid(tc.in)
			require.NoError(t, grid.SetZeroes(a))
			assert.Equal(t, tc.want, a)

			b := cloneGrid(tc.in)
			require.NoError(t, grid.SetZeroesByCache(b))
			assert.Equal(t, tc.want, b)
		})
	}
}

// TestSetZeroes_MatchesCache compares both variants on seeded random grids.
func TestSetZeroes_MatchesCache(t *testing.T) {
	rng := randgen.New(7)
	for trial := 0; trial < 200; trial++ {
		r, c := 1+rng.Intn(6), 1+rng.Intn(6)
		g := make([][]int, r)
		for i := range g {
			g[i] = randgen.Ints(rng, c, 0, 4)
		}
		a, b := cloneGrid(g), cloneGrid(g)
		require.NoError(t, grid.SetZeroes(a))
		require.NoError(t, grid.SetZeroesByCache(b))
		require.Equal(t, b, a, "input %v", g)
	}
}

func TestSetZeroes_Errors(t *testing.T) {
	assert.ErrorIs(t, grid.SetZeroes([][]float64{{1, 0}, {1}}), grid.ErrRagged)
	assert.ErrorIs(t, grid.SetZeroesByCache([][]int{{1}, {1, 0}}), grid.ErrRagged)
	assert.NoError(t, grid.SetZeroes[int](nil))
}
