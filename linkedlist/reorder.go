// SPDX-License-Identifier: MIT

package linkedlist

import "golang.org/x/exp/constraints"

// Reorder interleaves the reversed second half into the first half in place:
//
//	1→2→3→4→5→6  ⇒  1→6→2→5→3→4
//	1→2→3→4→5    ⇒  1→5→2→4→3
//
// The first half keeps the extra node for odd lengths.
// Complexity: O(n) time, O(1) memory.
func Reorder[T any](head *Node[T]) {
	if head == nil || head.Next == nil {
		return
	}

	// 1) Split after the end of the first half.
	slow, fast := head, head
	for fast.Next != nil && fast.Next.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
	}
	second := ReverseIterative(slow.Next)
	slow.Next = nil

	// 2) Merge the halves alternately.
	first := head
	for second != nil {
		firstNext, secondNext := first.Next, second.Next
		first.Next = second
		second.Next = firstNext
		first, second = firstNext, secondNext
	}
}

// SumReversed adds two non-negative numbers stored as digit lists with the
// ones digit at the head (617 is 7→1→6) and returns the sum in the same form.
// Either operand may be nil, which reads as zero.
//
//	7→1→6 + 5→9→2  ⇒  2→1→9   (617 + 295 = 912)
//
// Complexity: O(max(m,n)) time, O(max(m,n)) call stack.
func SumReversed[T constraints.Integer](a, b *Node[T]) *Node[T] {
	return sumReversed(a, b, 0)
}

func sumReversed[T constraints.Integer](a, b *Node[T], carry T) *Node[T] {
	if a == nil && b == nil && carry == 0 {
		return nil
	}

	value := carry
	var nextA, nextB *Node[T]
	if a != nil {
		value += a.Value
		nextA = a.Next
	}
	if b != nil {
		value += b.Value
		nextB = b.Next
	}

	var nextCarry T
	if value >= 10 {
		nextCarry = 1
	}

	return &Node[T]{
		Value: value % 10,
		Next:  sumReversed(nextA, nextB, nextCarry),
	}
}
