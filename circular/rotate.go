// SPDX-License-Identifier: MIT

package circular

import "slices"

// RotateLeft rotates s left by k positions in place: [1 2 3 4 5], k=2 becomes
// [3 4 5 1 2]. Negative k rotates right. Uses the three-reversal technique.
// Complexity: O(n) time, O(1) memory.
func RotateLeft[T any](s []T, k int) {
	n := len(s)
	if n < 2 {
		return
	}
	k %= n
	if k < 0 {
		k += n
	}
	if k == 0 {
		return
	}

	slices.Reverse(s[:k])
	slices.Reverse(s[k:])
	slices.Reverse(s)
}

// RotateRight rotates s right by k positions in place: [1 2 3 4 5], k=2
// becomes [4 5 1 2 3].
func RotateRight[T any](s []T, k int) {
	RotateLeft(s, -k)
}

// Rotated returns a left-rotated copy of s, leaving s untouched.
func Rotated[T any](s []T, k int) []T {
	out := make([]T, len(s))
	copy(out, s)
	RotateLeft(out, k)

	return out
}
