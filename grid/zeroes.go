package grid

const (
	opSetZeroes        = "SetZeroes"
	opSetZeroesByCache = "SetZeroesByCache"
)

// SetZeroesByCache zeroes every row and column containing a zero, recording
// the marked rows and columns in two boolean slices first.
// Complexity: O(r*c) time, O(r+c) space.
func SetZeroesByCache[T Number](g [][]T) error {
	r, c, err := dims(opSetZeroesByCache, g)
	if err != nil {
		return err
	}

	rows := make([]bool, r)
	cols := make([]bool, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if g[i][j] == 0 {
				rows[i] = true
				cols[j] = true
			}
		}
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rows[i] || cols[j] {
				g[i][j] = 0
			}
		}
	}

	return nil
}

// SetZeroes has the same effect as SetZeroesByCache but keeps the marks in the
// grid itself: row 0 flags columns, column 0 flags rows, and one extra bool
// remembers whether column 0 must be cleared (g[0][0] covers row 0).
// Complexity: O(r*c) time, O(1) extra space.
func SetZeroes[T Number](g [][]T) error {
	r, c, err := dims(opSetZeroes, g)
	if err != nil || r == 0 || c == 0 {
		return err
	}

	// 1) Mark.
	firstCol := false
	for i := 0; i < r; i++ {
		if g[i][0] == 0 {
			firstCol = true
		}
		for j := 1; j < c; j++ {
			if g[i][j] == 0 {
				g[0][j] = 0
				g[i][0] = 0
			}
		}
	}

	// 2) Clear the interior from the marks.
	for i := 1; i < r; i++ {
		for j := 1; j < c; j++ {
			if g[i][0] == 0 || g[0][j] == 0 {
				g[i][j] = 0
			}
		}
	}

	// 3) Row 0, then column 0.
	if g[0][0] == 0 {
		for j := 0; j < c; j++ {
			g[0][j] = 0
		}
	}
	if firstCol {
		for i := 0; i < r; i++ {
			g[i][0] = 0
		}
	}

	return nil
}
