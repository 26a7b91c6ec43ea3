// SPDX-License-Identifier: MIT
// Package: dsakit/linkedlist
//
// builder.go: deterministic list fixtures and read-back helpers.
//
// Contract:
//   - Nodes are created in input order; FromSlice(nil) is the empty list.
//   - FromSliceWithCycle links the tail back to the node at index entry.
//   - Values refuses cyclic input instead of looping forever.

package linkedlist

import "fmt"

const (
	methodFromSliceWithCycle = "FromSliceWithCycle"
	methodValues             = "Values"
	methodNodeAt             = "NodeAt"
)

// FromSlice builds an acyclic list holding values in order and returns its head.
// Complexity: O(n) time, O(n) memory for the nodes.
func FromSlice[T any](values []T) *Node[T] {
	var head, tail *Node[T]
	for _, v := range values {
		n := &Node[T]{Value: v}
		if head == nil {
			head = n
		} else {
			tail.Next = n
		}
		tail = n
	}

	return head
}

// FromSliceWithCycle builds a list from values whose tail points back at the
// node with index entry, e.g. values=[1..6], entry=2 gives 1→2→3→4→5→6→3.
// Returns ErrIndexOutOfRange if entry is not a valid index of values.
func FromSliceWithCycle[T any](values []T, entry int) (*Node[T], error) {
	if entry < 0 || entry >= len(values) {
		return nil, fmt.Errorf("%s: entry=%d, len=%d: %w", methodFromSliceWithCycle, entry, len(values), ErrIndexOutOfRange)
	}

	head := FromSlice(values)

	// Walk once to capture both the entry node and the tail.
	var entryNode, tail *Node[T]
	i := 0
	for n := head; n != nil; n = n.Next {
		if i == entry {
			entryNode = n
		}
		tail = n
		i++
	}
	tail.Next = entryNode // close the loop

	return head, nil
}

// FromSliceDoubly builds a doubly-linked list from values and returns its head.
func FromSliceDoubly[T any](values []T) *DoublyNode[T] {
	var head, tail *DoublyNode[T]
	for _, v := range values {
		n := &DoublyNode[T]{Value: v, Prev: tail}
		if head == nil {
			head = n
		} else {
			tail.Next = n
		}
		tail = n
	}

	return head
}

// Values copies the list payloads into a slice, head first.
// Returns ErrCyclic for a cyclic list; an empty list yields an empty slice.
// Complexity: O(n) time, O(n) memory.
func Values[T any](head *Node[T]) ([]T, error) {
	if HasCycleByRunner(head) {
		return nil, fmt.Errorf("%s: %w", methodValues, ErrCyclic)
	}

	out := make([]T, 0)
	for n := head; n != nil; n = n.Next {
		out = append(out, n.Value)
	}

	return out, nil
}

// Len counts the nodes of an acyclic list. Calling it on a cyclic list never
// returns; guard with HasCycleByRunner when the input is untrusted.
func Len[T any](head *Node[T]) int {
	size := 0
	for n := head; n != nil; n = n.Next {
		size++
	}

	return size
}

// NodeAt returns the node with zero-based index i.
// Returns ErrIndexOutOfRange when i < 0 or the list is too short.
func NodeAt[T any](head *Node[T], i int) (*Node[T], error) {
	if i < 0 {
		return nil, fmt.Errorf("%s: i=%d: %w", methodNodeAt, i, ErrIndexOutOfRange)
	}
	n := head
	for step := 0; step < i && n != nil; step++ {
		n = n.Next
	}
	if n == nil {
		return nil, fmt.Errorf("%s: i=%d: %w", methodNodeAt, i, ErrIndexOutOfRange)
	}

	return n, nil
}
