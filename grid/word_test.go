package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsakit/grid"
)

var letters = [][]rune{
	[]rune("FACI"),
	[]rune("OBQP"),
	[]rune("ANOB"),
	[]rune("MASS"),
}

func TestFindString(t *testing.T) {
	cases := []struct {
		word string
		want grid.Match
		ok   bool
	}{
		{"FOAM", grid.Match{Start: grid.Cell{Row: 0, Col: 0}, Dir: grid.Down}, true},
		{"MASS", grid.Match{Start: grid.Cell{Row: 3, Col: 0}, Dir: grid.Across}, true},
		{"ASS", grid.Match{Start: grid.Cell{Row: 3, Col: 1}, Dir: grid.Across}, true},
		{"QOS", grid.Match{Start: grid.Cell{Row: 1, Col: 2}, Dir: grid.Down}, true},
		{"B", grid.Match{Start: grid.Cell{Row: 1, Col: 1}, Dir: grid.Across}, true},
		{"FOAMS", grid.Match{}, false},
		{"CAF", grid.Match{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.word, func(t *testing.T) {
			got, ok, err := grid.FindString(letters, tc.word)
			require.NoError(t, err)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFindWord_Errors(t *testing.T) {
	_, _, err := grid.FindString(letters, "")
	assert.ErrorIs(t, err, grid.ErrEmpty)

	_, _, err = grid.FindWord([][]int{{1, 2}, {3}}, []int{3})
	assert.ErrorIs(t, err, grid.ErrRagged)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "across", grid.Across.String())
	assert.Equal(t, "down", grid.Down.String())
}
