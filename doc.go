// Package dsakit is a collection of classic data-structure algorithms written
// as small, generic Go packages: linked lists, circular arrays, power sets,
// dense matrices, 2D grids and a presence hash table.
//
// 🚀 What is inside?
//
//   - linkedlist/: singly and doubly linked nodes; reversal, runner
//     (slow/fast) techniques, Floyd cycle detection, palindromes, k-th from
//     end, zero-sum run removal, dedup, reorder, digit sums.
//   - circular/: circular array with O(1) rotation via a head offset, plus
//     in-place slice rotation.
//   - subset/: power sets by BFS, bitmask, recursion, backtracking and
//     include/exclude; duplicate-aware variant.
//   - matrix/: row-major float64 Dense with Mul, MatVec, Transpose and
//     in-place square rotation.
//   - grid/: searches and traversals (spiral, zig-zag, diagonals) over
//     [][]T, SetZeroes, FindWord.
//   - hashing/: modulo presence table.
//
// ✨ Conventions
//
//   - Generic APIs over plain Go values; no global state.
//   - Sentinel errors per package, wrapped with the operation name; match
//     them with errors.Is.
//   - Libraries never log. The dsakit command (cmd/dsakit) exposes every
//     package from the terminal.
//
// Quick example:
//
//	head := linkedlist.FromSlice([]int{1, 2, 3, 4, 5})
//	head = linkedlist.ReverseIterative(head)   // 5→4→3→2→1
//
//	go install github.com/katalvlaran/dsakit/cmd/dsakit@latest
package dsakit
