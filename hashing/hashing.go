// Package hashing provides PresenceTable, a fixed-size table that records
// which integer keys were inserted by hashing each key to one slot.
//
// Distinct keys that share a slot are indistinguishable, so Contains is a
// may-contain answer: false is always exact, true may be a collision.
package hashing

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrBadSize is returned for a table size below 1.
var ErrBadSize = errors.New("hashing: table size must be positive")

// PresenceTable maps keys to slots with key mod size.
type PresenceTable struct {
	slots []bool
	used  int
}

// NewPresenceTable allocates a table with size slots.
func NewPresenceTable(size int) (*PresenceTable, error) {
	if size < 1 {
		return nil, fmt.Errorf("NewPresenceTable(%d): %w", size, ErrBadSize)
	}

	return &PresenceTable{slots: make([]bool, size)}, nil
}

// Size returns the number of slots.
func (t *PresenceTable) Size() int {
	return len(t.slots)
}

// Occupied returns how many slots are marked.
func (t *PresenceTable) Occupied() int {
	return t.used
}

// Insert marks the slot of key.
// Complexity: O(1).
func (t *PresenceTable) Insert(key int) {
	i := slot(key, len(t.slots))
	if !t.slots[i] {
		t.slots[i] = true
		t.used++
	}
}

// Contains reports whether the slot of key is marked.
// Complexity: O(1).
func (t *PresenceTable) Contains(key int) bool {
	return t.slots[slot(key, len(t.slots))]
}

// Slot returns key mod size in [0, size), also for negative keys and for
// sizes larger than K can represent. Returns ErrBadSize when size < 1.
func Slot[K constraints.Integer](key K, size int) (int, error) {
	if size < 1 {
		return 0, fmt.Errorf("Slot(%d): %w", size, ErrBadSize)
	}

	return slot(key, size), nil
}

// slot computes the modulo in uint64 so size never has to fit in K.
// size must be positive.
func slot[K constraints.Integer](key K, size int) int {
	s := uint64(size)
	if key >= 0 {
		return int(uint64(key) % s)
	}

	// |key| without overflow at the minimum value: -(key+1) + 1.
	m := (uint64(-(key + 1)) + 1) % s
	if m == 0 {
		return 0
	}

	return int(s - m)
}
