// Package grid implements search and traversal algorithms over plain
// two-dimensional slices ([][]T).
//
// What:
//
//   - Search: SearchLinear (any grid), SearchRowBinary (row-major sorted),
//     SearchStaircase (rows and columns sorted ascending).
//   - Traversal: TraverseRows, TraverseCols, TraverseDiagonals, ZigZag,
//     DiagonalZigZag, Spiral. Each returns the visited values in order.
//   - Mutation: SetZeroes (O(1) extra space) and SetZeroesByCache
//     (row/column sets) zero every row and column that holds a zero.
//   - FindWord: locate a word written left-to-right or top-to-bottom.
//
// Positions are reported as Cell{Row, Col}; a search that finds nothing
// returns ok=false rather than an error.
//
// Complexity:
//
//   - SearchLinear, traversals, SetZeroes*: O(r*c).
//   - SearchRowBinary: O(log r + log c).
//   - SearchStaircase: O(r + c).
//   - FindWord: O(r*c*len(word)).
//
// Errors:
//
//   - ErrRagged: an operation that needs a rectangular grid got rows of
//     different lengths.
//   - ErrEmpty: FindWord was given an empty word.
//
// Functions that only walk rows (SearchLinear, TraverseRows, ZigZag) accept
// ragged grids. Empty grids are valid input everywhere.
package grid
