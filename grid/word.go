package grid

import "fmt"

const opFindWord = "FindWord"

// FindWord reports the first place word appears reading left-to-right along a
// row or top-to-bottom along a column. Rows are tried before columns; within
// each pass, starts are tried in row-major order.
// Complexity: O(r*c*len(word)).
func FindWord[T comparable](g [][]T, word []T) (Match, bool, error) {
	if len(word) == 0 {
		return Match{}, false, fmt.Errorf("%s: %w", opFindWord, ErrEmpty)
	}
	r, c, err := dims(opFindWord, g)
	if err != nil {
		return Match{}, false, err
	}

	n := len(word)
	var i, j, k int
	if n <= c {
		for i = 0; i < r; i++ {
			for j = 0; j+n <= c; j++ {
				for k = 0; k < n && g[i][j+k] == word[k]; k++ {
				}
				if k == n {
					return Match{Start: Cell{Row: i, Col: j}, Dir: Across}, true, nil
				}
			}
		}
	}
	if n <= r {
		for i = 0; i+n <= r; i++ {
			for j = 0; j < c; j++ {
				for k = 0; k < n && g[i+k][j] == word[k]; k++ {
				}
				if k == n {
					return Match{Start: Cell{Row: i, Col: j}, Dir: Down}, true, nil
				}
			}
		}
	}

	return Match{}, false, nil
}

// FindString is FindWord for rune grids and string words.
func FindString(g [][]rune, word string) (Match, bool, error) {
	return FindWord(g, []rune(word))
}
