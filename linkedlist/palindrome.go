// SPDX-License-Identifier: MIT
// Package: dsakit/linkedlist
//
// palindrome.go: three interchangeable palindrome checks for singly lists
// and a two-pointer check for doubly lists.
//
// Equivalence: for every acyclic list the three singly variants return the
// same answer. Odd lengths skip the middle element, even lengths compare
// the two halves pairwise.

package linkedlist

// IsPalindromeByRunner finds the middle, reverses the second half, compares it
// against the first half and finally restores the original order.
// Complexity: O(n) time, O(1) memory.
func IsPalindromeByRunner[T comparable](head *Node[T]) bool {
	middle := FindMiddle(head)
	reversed := ReverseIterative(middle)

	// The reversed second half is never longer than the first half.
	equal := true
	left, right := head, reversed
	for right != nil {
		if left.Value != right.Value {
			equal = false
			break
		}
		left = left.Next
		right = right.Next
	}

	// Undo the reversal; the node before middle still points at middle.
	ReverseIterative(reversed)

	return equal
}

// IsPalindromeByStack pushes the first half onto a stack while the fast
// runner walks to the end, then pops while walking the second half.
// Complexity: O(n) time, O(n) memory.
func IsPalindromeByStack[T comparable](head *Node[T]) bool {
	slow, fast := head, head
	var stack []T

	for fast != nil && fast.Next != nil {
		stack = append(stack, slow.Value)
		slow = slow.Next
		fast = fast.Next.Next
	}

	// Odd number of elements: skip the middle one.
	if fast != nil {
		slow = slow.Next
	}

	for slow != nil {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top != slow.Value {
			return false
		}
		slow = slow.Next
	}

	return true
}

// IsPalindromeByRecursion recurses with length-2 per frame until it reaches
// the centre, then each frame compares its node with the mirror node handed
// back by the frame below.
// Complexity: O(n) time, O(n) call stack.
func IsPalindromeByRecursion[T comparable](head *Node[T]) bool {
	_, ok := palindromeRecurse(head, Len(head))

	return ok
}

// palindromeRecurse returns the node mirroring head's predecessor and whether
// the inner sublist of the given length is a palindrome.
func palindromeRecurse[T comparable](head *Node[T], length int) (*Node[T], bool) {
	if head == nil || length <= 0 {
		return head, true // even centre
	}
	if length == 1 {
		return head.Next, true // odd centre
	}

	mirror, ok := palindromeRecurse(head.Next, length-2)
	if !ok || mirror == nil {
		return mirror, ok
	}

	return mirror.Next, head.Value == mirror.Value
}

// IsPalindromeDoubly walks inward from both ends of a doubly-linked list.
// Complexity: O(n) time, O(1) memory.
func IsPalindromeDoubly[T comparable](left *DoublyNode[T]) bool {
	if left == nil {
		return true
	}

	right := left
	for right.Next != nil {
		right = right.Next
	}

	// Stop when the pointers meet (odd) or cross (even).
	for left != right && left.Prev != right {
		if left.Value != right.Value {
			return false
		}
		left = left.Next
		right = right.Prev
	}

	return true
}
