// SPDX-License-Identifier: MIT

package circular

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrBadCapacity indicates a negative capacity.
	ErrBadCapacity = errors.New("circular: capacity must be >= 0")

	// ErrIndexOutOfRange indicates an index outside [0, capacity).
	ErrIndexOutOfRange = errors.New("circular: index out of range")
)

// Array is a fixed-capacity sequence whose conceptual start can be moved.
// The zero value is an empty array of capacity 0.
type Array[T any] struct {
	items []T
	head  int // physical slot of logical index 0
}

// New allocates an array with capacity zero-valued slots.
func New[T any](capacity int) (*Array[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("New: capacity=%d: %w", capacity, ErrBadCapacity)
	}

	return &Array[T]{items: make([]T, capacity)}, nil
}

// From returns an array holding a copy of values, with logical order equal to
// the slice order.
func From[T any](values []T) *Array[T] {
	items := make([]T, len(values))
	copy(items, values)

	return &Array[T]{items: items}
}

// Len returns the capacity, which is also the number of logical slots.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// Offset returns the physical slot currently holding logical index 0.
func (a *Array[T]) Offset() int {
	return a.head
}

// convert maps a logical index to its physical slot. It accepts any int,
// wrapping negative and oversized values, so Rotate can reuse it.
// Callers must ensure len(items) > 0.
func (a *Array[T]) convert(index int) int {
	n := len(a.items)
	index %= n
	if index < 0 {
		index += n
	}

	return (a.head + index) % n
}

// Rotate moves the conceptual start by shift positions: after Rotate(s) the
// element previously at logical index s is at index 0. Negative shifts rotate
// the other way and any magnitude is reduced modulo the capacity, so
// Rotate(k) followed by Rotate(-k) restores the original mapping.
// Rotating an empty array is a no-op.
func (a *Array[T]) Rotate(shift int) {
	if len(a.items) == 0 {
		return
	}
	a.head = a.convert(shift)
}

// Get returns the element at logical index i.
// Returns ErrIndexOutOfRange when i is outside [0, Len()); the array is unchanged.
func (a *Array[T]) Get(i int) (T, error) {
	if err := a.check("Get", i); err != nil {
		var zero T
		return zero, err
	}

	return a.items[a.convert(i)], nil
}

// Set stores v at logical index i.
// Returns ErrIndexOutOfRange when i is outside [0, Len()); the array is unchanged.
func (a *Array[T]) Set(i int, v T) error {
	if err := a.check("Set", i); err != nil {
		return err
	}
	a.items[a.convert(i)] = v

	return nil
}

func (a *Array[T]) check(method string, i int) error {
	if i < 0 || i >= len(a.items) {
		return fmt.Errorf("%s(%d): len=%d: %w", method, i, len(a.items), ErrIndexOutOfRange)
	}

	return nil
}

// All yields every slot in logical order starting at the current head.
// Each call starts a fresh, finite iteration.
func (a *Array[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(a.items); i++ {
			if !yield(a.items[a.convert(i)]) {
				return
			}
		}
	}
}

// Values copies the slots into a new slice in logical order.
func (a *Array[T]) Values() []T {
	out := make([]T, 0, len(a.items))
	for v := range a.All() {
		out = append(out, v)
	}

	return out
}
