package grid

const (
	opTraverseCols      = "TraverseCols"
	opTraverseDiagonals = "TraverseDiagonals"
	opDiagonalZigZag    = "DiagonalZigZag"
	opSpiral            = "Spiral"
)

// TraverseRows returns every value row by row, left to right.
func TraverseRows[T any](g [][]T) []T {
	out := make([]T, 0, capacity(g))
	for _, row := range g {
		out = append(out, row...)
	}

	return out
}

// TraverseCols returns every value column by column, top to bottom.
func TraverseCols[T any](g [][]T) ([]T, error) {
	r, c, err := dims(opTraverseCols, g)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, r*c)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			out = append(out, g[i][j])
		}
	}

	return out, nil
}

// TraverseDiagonals walks the anti-diagonals in order, each one from its
// bottom-left end up to its top-right end.
//
//	1 2 3
//	4 5 6   ->  1 4 2 7 5 3 8 6 9
//	7 8 9
func TraverseDiagonals[T any](g [][]T) ([]T, error) {
	r, c, err := dims(opTraverseDiagonals, g)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, r*c)
	for d := 0; d <= r+c-2; d++ {
		for i := min(d, r-1); i >= 0 && d-i < c; i-- {
			out = append(out, g[i][d-i])
		}
	}

	return out, nil
}

// ZigZag walks rows alternately left-to-right and right-to-left, starting
// left-to-right on row 0. Ragged grids are fine.
func ZigZag[T any](g [][]T) []T {
	out := make([]T, 0, capacity(g))
	for i, row := range g {
		if i%2 == 0 {
			out = append(out, row...)
			continue
		}
		for j := len(row) - 1; j >= 0; j-- {
			out = append(out, row[j])
		}
	}

	return out
}

// DiagonalZigZag walks the anti-diagonals alternately upwards and downwards,
// starting upwards at (0,0).
//
//	1 2 3
//	4 5 6   ->  1 2 4 7 5 3 6 8 9
//	7 8 9
func DiagonalZigZag[T any](g [][]T) ([]T, error) {
	r, c, err := dims(opDiagonalZigZag, g)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, r*c)
	var lo, hi, i int
	for d := 0; d <= r+c-2; d++ {
		lo = max(0, d-c+1)
		hi = min(d, r-1)
		if d%2 == 0 {
			for i = hi; i >= lo; i-- {
				out = append(out, g[i][d-i])
			}
		} else {
			for i = lo; i <= hi; i++ {
				out = append(out, g[i][d-i])
			}
		}
	}

	return out, nil
}

// Spiral returns the clockwise spiral order starting at (0,0).
// It peels the outer ring and shrinks the bounds until they cross.
// Complexity: O(r*c) time, no auxiliary visited set.
func Spiral[T any](g [][]T) ([]T, error) {
	r, c, err := dims(opSpiral, g)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, r*c)
	top, bottom, left, right := 0, r-1, 0, c-1
	var i int
	for top <= bottom && left <= right {
		for i = left; i <= right; i++ {
			out = append(out, g[top][i])
		}
		for i = top + 1; i <= bottom; i++ {
			out = append(out, g[i][right])
		}
		// Single row or column left: the return legs would revisit it.
		if top < bottom && left < right {
			for i = right - 1; i >= left; i-- {
				out = append(out, g[bottom][i])
			}
			for i = bottom - 1; i > top; i-- {
				out = append(out, g[i][left])
			}
		}
		top++
		bottom--
		left++
		right--
	}

	return out, nil
}

// capacity counts the cells of a possibly ragged grid.
func capacity[T any](g [][]T) int {
	n := 0
	for _, row := range g {
		n += len(row)
	}

	return n
}
