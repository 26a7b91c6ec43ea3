// SPDX-License-Identifier: MIT

package linkedlist

// ReverseIterative reverses the list in place and returns the new head.
//
//	1→2→3→4→nil  ⇒  4→3→2→1→nil
//
// Empty input yields nil; a single node is returned unchanged. The old head
// becomes the tail and its Next is nil.
// Complexity: O(n) time, O(1) extra memory.
func ReverseIterative[T any](head *Node[T]) *Node[T] {
	var prev *Node[T]
	current := head
	for current != nil {
		next := current.Next // remember the rest of the list
		current.Next = prev  // flip the link
		prev = current
		current = next
	}

	return prev
}

// ReverseRecursive reverses the list in place using head recursion and
// returns the new head. Recurrence T(n) = T(n-1) + O(1).
// Complexity: O(n) time, O(n) call stack.
func ReverseRecursive[T any](first *Node[T]) *Node[T] {
	if first == nil || first.Next == nil {
		return first
	}

	second := first.Next
	rest := ReverseRecursive(second)
	second.Next = first
	first.Next = nil // the new tail must not keep its forward link

	return rest
}

// ReverseAndClone returns a reversed copy of the list; the input is untouched.
// Complexity: O(n) time, O(n) memory.
func ReverseAndClone[T any](head *Node[T]) *Node[T] {
	var out *Node[T]
	for n := head; n != nil; n = n.Next {
		out = &Node[T]{Value: n.Value, Next: out}
	}

	return out
}
