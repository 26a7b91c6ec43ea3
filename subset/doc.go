// Package subset enumerates power sets: every subset of an n-element input,
// 2^n subsets in total including the empty set and the input itself.
//
// Strategies and their presentation order (n = 3, input [1 2 3]):
//
//   - FindSubsets (iterative BFS): start with {∅}; for each element in input
//     order, copy every subset built so far and append the element.
//     [[] [1] [2] [1 2] [3] [1 3] [2 3] [1 2 3]]
//   - PowerSetBitmask: mask m in 0..2^n-1 ascending, element j included when
//     bit j of m is set, elements in ascending index order. Subset i of the
//     BFS result is exactly mask i, so both strategies present the same
//     order; the remaining strategies differ and are compared as sets of sets.
//   - PowerSetRecursive: divide and conquer on the first element; duplicates
//     in the input collapse (set semantics).
//   - SubsetsByBacktracking: depth-first, lexicographic by index.
//     [[] [1] [1 2] [1 2 3] [1 3] [2] [2 3] [3]]
//   - PowerSetIncludeExclude: decide for the last element first, include
//     branch before exclude branch.
//   - FindSubsetsWithDuplicates: sorts a copy, then BFS that extends only the
//     subsets created in the previous step when an element repeats, so each
//     distinct subset appears once: [1 2 2] → [[] [1] [2] [1 2] [2 2] [1 2 2]].
//
// Every returned subset is a freshly allocated slice; callers may mutate
// results without affecting other subsets.
//
// Complexity: O(n·2^n) time and memory for all strategies.
//
// Errors:
//
//   - ErrTooManyElements  PowerSetBitmask called with n > MaxPowerSetElements.
//     Masks streams up to MaxBitmaskElements and yields nothing beyond.
package subset
