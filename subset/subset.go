// SPDX-License-Identifier: MIT

package subset

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"
)

const (
	// MaxBitmaskElements is the largest input size Masks enumerates; masks
	// are uint64 and 1<<n must not overflow.
	MaxBitmaskElements = 62

	// MaxPowerSetElements is the largest input size PowerSetBitmask
	// materializes (about a million subsets).
	MaxPowerSetElements = 20
)

// ErrTooManyElements indicates the input is too large for bitmask enumeration.
var ErrTooManyElements = errors.New("subset: too many elements for bitmask enumeration")

// Count returns 2^n, the size of the power set of an n-element set.
// It returns 0 for negative n or n > MaxBitmaskElements.
func Count(n int) uint64 {
	if n < 0 || n > MaxBitmaskElements {
		return 0
	}

	return 1 << uint(n)
}

// FindSubsets builds the power set breadth-first.
// Order: [1 2 3] → [[] [1] [2] [1 2] [3] [1 3] [2 3] [1 2 3]].
func FindSubsets[T any](items []T) [][]T {
	subsets := [][]T{{}}
	for _, item := range items {
		// Only the subsets that existed before this element are extended.
		n := len(subsets)
		for i := 0; i < n; i++ {
			subsets = append(subsets, appendCopy(subsets[i], item))
		}
	}

	return subsets
}

// FindSubsetsWithDuplicates returns every distinct subset of items, which may
// contain repeated values. A sorted copy is processed; when a value repeats
// only the subsets created for its previous occurrence are extended.
// Order: [1 2 2] → [[] [1] [2] [1 2] [2 2] [1 2 2]].
func FindSubsetsWithDuplicates[T cmp.Ordered](items []T) [][]T {
	sorted := slices.Clone(items)
	slices.Sort(sorted)

	subsets := [][]T{{}}
	start, end := 0, 0
	for i, item := range sorted {
		start = 0
		if i > 0 && item == sorted[i-1] {
			start = end + 1
		}
		end = len(subsets) - 1
		for j := start; j <= end; j++ {
			subsets = append(subsets, appendCopy(subsets[j], item))
		}
	}

	return subsets
}

// PowerSetBitmask enumerates masks 0..2^n-1 in increasing order; for a mask
// the elements whose bit is set are listed in increasing index order.
// Returns ErrTooManyElements when len(items) > MaxPowerSetElements; use Masks
// to stream larger inputs.
func PowerSetBitmask[T any](items []T) ([][]T, error) {
	if len(items) > MaxPowerSetElements {
		return nil, fmt.Errorf("PowerSetBitmask: n=%d: %w", len(items), ErrTooManyElements)
	}

	out := make([][]T, 0, Count(len(items)))
	for s := range Masks(items) {
		out = append(out, s)
	}

	return out, nil
}

// Masks lazily yields the bitmask-ordered power set of items.
// Inputs longer than MaxBitmaskElements yield nothing; use PowerSetBitmask to
// get an explicit error.
func Masks[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := len(items)
		if n > MaxBitmaskElements {
			return
		}
		total := Count(n)
		for mask := uint64(0); mask < total; mask++ {
			subset := make([]T, 0, n)
			for j := 0; j < n; j++ {
				if mask&(1<<uint(j)) != 0 {
					subset = append(subset, items[j])
				}
			}
			if !yield(subset) {
				return
			}
		}
	}
}

// PowerSetRecursive computes the power set by induction on the first element:
// P(S) = P(rest) ∪ { {head} ∪ s : s ∈ P(rest) }, with P(∅) = {∅}.
// Repeated values in set are collapsed first (first occurrence wins), so the
// result has 2^k subsets for k distinct values. Each subset of rest is
// followed immediately by its extension with head.
func PowerSetRecursive[T comparable](set []T) [][]T {
	return powerSet(distinct(set))
}

func powerSet[T any](set []T) [][]T {
	if len(set) == 0 {
		return [][]T{{}}
	}

	head, rest := set[0], set[1:]
	smaller := powerSet(rest)

	out := make([][]T, 0, 2*len(smaller))
	for _, s := range smaller {
		with := make([]T, 0, len(s)+1)
		with = append(with, head)
		with = append(with, s...)
		out = append(out, s, with)
	}

	return out
}

// SubsetsByBacktracking explores the decision tree depth-first: at each level
// pick one of the remaining elements (by increasing index), recurse, undo.
// Order: [1 2 3] → [[] [1] [1 2] [1 2 3] [1 3] [2] [2 3] [3]].
func SubsetsByBacktracking[T any](items []T) [][]T {
	var out [][]T
	track := make([]T, 0, len(items))

	var backtrack func(start int)
	backtrack = func(start int) {
		out = append(out, slices.Clone(track))
		for i := start; i < len(items); i++ {
			track = append(track, items[i]) // select
			backtrack(i + 1)
			track = track[:len(track)-1] // deselect
		}
	}
	backtrack(0)

	return out
}

// PowerSetIncludeExclude considers elements from last to first; for each one
// the branch that includes it is explored before the branch that skips it.
// Order: [1 2 3] → [[3 2 1] [3 2] [3 1] [3] [2 1] [2] [1] []].
func PowerSetIncludeExclude[T any](items []T) [][]T {
	var out [][]T
	chosen := make([]T, 0, len(items))

	var walk func(n int)
	walk = func(n int) {
		if n == 0 {
			out = append(out, slices.Clone(chosen))
			return
		}
		chosen = append(chosen, items[n-1])
		walk(n - 1)
		chosen = chosen[:len(chosen)-1]
		walk(n - 1)
	}
	walk(len(items))

	return out
}

// appendCopy returns a new slice equal to s with v appended; s is never aliased.
func appendCopy[T any](s []T, v T) []T {
	out := make([]T, len(s), len(s)+1)
	copy(out, s)

	return append(out, v)
}

// distinct returns the values of s in first-occurrence order without repeats.
func distinct[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
