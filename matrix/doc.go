// Package matrix provides a small row-major float64 Dense type and the
// array-based operations built on it.
//
// What:
//
//   - Dense: flat backing slice, bounds-checked At/Set, Clone, ToRows.
//   - Construction: NewDense, FromRows, Identity.
//   - Arithmetic: Add, Sub, Mul (i-k-j order), MatVec, VecMat, Dot.
//   - Reshaping: Transpose (new matrix), TransposeInPlace and RotateSquare90
//     (square only, mutate the receiver).
//
// Complexity:
//
//   - Add/Sub/Transpose: O(r*c).
//   - Mul: O(r*k*c); zero entries of the left operand are skipped.
//   - MatVec/VecMat: O(r*c). Dot: O(n).
//   - TransposeInPlace/RotateSquare90: O(n²) time, O(1) extra space.
//
// Errors:
//
//   - ErrBadShape: negative dimensions or ragged input rows.
//   - ErrOutOfRange: At/Set outside bounds.
//   - ErrDimensionMismatch: incompatible operand shapes or vector lengths.
//   - ErrNonSquare: in-place square operations on a rectangular matrix.
//   - ErrNilMatrix: nil operand.
//
// All errors are wrapped with the operation name; match them with errors.Is.
package matrix
