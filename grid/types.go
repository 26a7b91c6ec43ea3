// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for grid operations.
var (
	// ErrRagged indicates rows of differing lengths where a rectangle is required.
	ErrRagged = errors.New("grid: all rows must have the same length")
	// ErrEmpty indicates an empty search word.
	ErrEmpty = errors.New("grid: empty word")
)

// Number is the element constraint for algorithms that compare against zero.
type Number interface {
	constraints.Integer | constraints.Float
}

// Cell is a (row, column) position inside a grid.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is the reading direction of a FindWord match.
type Direction int

const (
	// Across reads left to right along a row.
	Across Direction = iota
	// Down reads top to bottom along a column.
	Down
)

// String returns "across" or "down".
func (d Direction) String() string {
	if d == Down {
		return "down"
	}

	return "across"
}

// Match is the starting cell and direction of a found word.
type Match struct {
	Start Cell
	Dir   Direction
}

// dims returns the row and column counts of a rectangular grid.
// A grid with no rows has 0 columns.
func dims[T any](op string, g [][]T) (int, int, error) {
	r := len(g)
	if r == 0 {
		return 0, 0, nil
	}
	c := len(g[0])
	for i, row := range g {
		if len(row) != c {
			return 0, 0, fmt.Errorf("%s: row %d has %d cols, want %d: %w", op, i, len(row), c, ErrRagged)
		}
	}

	return r, c, nil
}
