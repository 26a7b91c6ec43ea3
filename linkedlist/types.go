// SPDX-License-Identifier: MIT

package linkedlist

import "errors"

var (
	// ErrAcyclic is returned by FindCycleStart when the list has no cycle.
	ErrAcyclic = errors.New("linkedlist: list has no cycle")

	// ErrKOutOfRange indicates that a position counted from the end is
	// either < 1 or larger than the list length.
	ErrKOutOfRange = errors.New("linkedlist: k out of range")

	// ErrCyclic indicates that an acyclic list was required but a cycle was found.
	ErrCyclic = errors.New("linkedlist: list is cyclic")

	// ErrIndexOutOfRange indicates that a builder index is outside the input.
	ErrIndexOutOfRange = errors.New("linkedlist: index out of range")
)

// Node is a singly-linked list node. A nil *Node is the empty list.
type Node[T any] struct {
	// Value is the payload carried by the node.
	Value T

	// Next points at the following node, or nil at the end of the list.
	Next *Node[T]
}

// DoublyNode is a doubly-linked list node.
type DoublyNode[T any] struct {
	Value T
	Next  *DoublyNode[T]
	Prev  *DoublyNode[T]
}
