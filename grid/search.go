package grid

import (
	"cmp"
	"slices"
)

const (
	opSearchRowBinary = "SearchRowBinary"
	opSearchStaircase = "SearchStaircase"
)

// SearchLinear scans rows top to bottom and reports the first cell equal to
// target. Ragged grids are fine.
// Complexity: O(r*c).
func SearchLinear[T comparable](g [][]T, target T) (Cell, bool) {
	for i, row := range g {
		for j, v := range row {
			if v == target {
				return Cell{Row: i, Col: j}, true
			}
		}
	}

	return Cell{}, false
}

// SearchRowBinary looks for target in a grid sorted in row-major order
// (each row ascending, and every row starting after the previous one ends).
// It binary-searches for the only row whose range can hold target, then
// binary-searches inside that row.
// Complexity: O(log r + log c).
func SearchRowBinary[T cmp.Ordered](g [][]T, target T) (Cell, bool, error) {
	r, c, err := dims(opSearchRowBinary, g)
	if err != nil || r == 0 || c == 0 {
		return Cell{}, false, err
	}

	low, high := 0, r-1
	var mid int
	for low <= high {
		mid = low + (high-low)/2
		switch {
		case target < g[mid][0]:
			high = mid - 1
		case target > g[mid][c-1]:
			low = mid + 1
		default:
			col, found := slices.BinarySearch(g[mid], target)
			if !found {
				return Cell{}, false, nil
			}
			return Cell{Row: mid, Col: col}, true, nil
		}
	}

	return Cell{}, false, nil
}

// SearchStaircase looks for target in a grid whose rows and columns are both
// sorted ascending. It starts at the top-right corner and steps down when the
// current value is too small or left when it is too large.
// Complexity: O(r + c).
func SearchStaircase[T cmp.Ordered](g [][]T, target T) (Cell, bool, error) {
	r, c, err := dims(opSearchStaircase, g)
	if err != nil {
		return Cell{}, false, err
	}

	row, col := 0, c-1
	for row < r && col >= 0 {
		switch v := g[row][col]; {
		case v == target:
			return Cell{Row: row, Col: col}, true, nil
		case v < target:
			row++
		default:
			col--
		}
	}

	return Cell{}, false, nil
}
