// Package circular provides a fixed-capacity circular array that rotates in
// O(1) by moving a logical head offset instead of shifting elements, plus
// in-place slice rotation helpers.
//
// Index mapping:
//
//	For capacity C and head offset h, logical index i lives in physical slot
//	(h + i) mod C. Get and Set never touch h; only Rotate does.
//
//	   physical: [a b c d e]      after Rotate(2): h = 2
//	   logical:   c d e a b
//
// Errors:
//
//   - ErrBadCapacity     negative capacity passed to New
//   - ErrIndexOutOfRange Get/Set index outside [0, Len())
//
// Complexity:
//
//   - Rotate, Get, Set: O(1)
//   - All, Values:      O(C)
//   - RotateLeft/RotateRight on slices: O(n) time, O(1) memory
package circular
