// SPDX-License-Identifier: MIT
// Package: dsakit/linkedlist
//
// runner.go: slow/fast pointer algorithms and their hashing counterparts.
//
// Termination:
//   - Every loop stops when fast (or fast.Next) is nil, or when slow and fast
//     meet. On a cyclic list they meet within O(n) steps, so nothing here can
//     spin forever.

package linkedlist

import "fmt"

const methodFindCycleStart = "FindCycleStart"

// FindMiddle returns the middle node using the runner technique.
// For length L the result has index L/2: 1→2→3→4→5→6 yields 4, 1→2→3→4→5
// yields 3. Returns nil for an empty list.
// Complexity: O(n) time, O(1) memory.
func FindMiddle[T any](head *Node[T]) *Node[T] {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
	}

	return slow
}

// HasCycleByRunner reports whether the list contains a cycle (Floyd).
// Complexity: O(n) time, O(1) memory.
func HasCycleByRunner[T any](head *Node[T]) bool {
	return meetingPoint(head) != nil
}

// HasCycleByHashing reports whether the list contains a cycle by recording
// every visited node. It agrees with HasCycleByRunner on every input.
// Complexity: O(n) time, O(n) memory.
func HasCycleByHashing[T any](head *Node[T]) bool {
	seen := make(map[*Node[T]]struct{})
	for n := head; n != nil; n = n.Next {
		if _, ok := seen[n]; ok {
			return true
		}
		seen[n] = struct{}{}
	}

	return false
}

// FindCycleLength returns the number of nodes on the cycle, or 0 when the
// list is acyclic. For 1→2→3→4→5→6→3 the result is 4.
// Complexity: O(n) time, O(1) memory.
func FindCycleLength[T any](head *Node[T]) int {
	meet := meetingPoint(head)
	if meet == nil {
		return 0
	}

	// Walk around the loop once from the meeting point.
	length := 0
	current := meet
	for {
		current = current.Next
		length++
		if current == meet {
			return length
		}
	}
}

// FindCycleStart returns the first node of the cycle, i.e. the node the tail
// links back to. Precondition: the list is cyclic; otherwise ErrAcyclic.
//
// With cycle length K, a second pointer starts K nodes ahead of the first;
// moving both one step at a time they meet exactly at the cycle entry.
// Complexity: O(n) time, O(1) memory.
func FindCycleStart[T any](head *Node[T]) (*Node[T], error) {
	length := FindCycleLength(head)
	if length == 0 {
		return nil, fmt.Errorf("%s: %w", methodFindCycleStart, ErrAcyclic)
	}

	behind, ahead := head, head
	for i := 0; i < length; i++ {
		ahead = ahead.Next
	}
	for behind != ahead {
		behind = behind.Next
		ahead = ahead.Next
	}

	return behind, nil
}

// meetingPoint returns the node where slow and fast meet, or nil if fast
// falls off the end of the list.
func meetingPoint[T any](head *Node[T]) *Node[T] {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		fast = fast.Next.Next
		slow = slow.Next
		if slow == fast {
			return slow
		}
	}

	return nil
}

// KthToLastByRunner returns the node k positions from the end (k=1 is the
// tail) by keeping two pointers k nodes apart. Returns nil when k < 1 or k
// exceeds the list length.
// Complexity: O(n) time, O(1) memory.
func KthToLastByRunner[T any](head *Node[T], k int) *Node[T] {
	if k < 1 {
		return nil
	}

	current, runner := head, head
	for i := 0; i < k; i++ {
		if runner == nil {
			return nil // list shorter than k
		}
		runner = runner.Next
	}
	for runner != nil {
		runner = runner.Next
		current = current.Next
	}

	return current
}

// KthToLastRecursive returns the node k positions from the end using
// recursion. Each frame returns the candidate node together with its
// distance from the end, so no counter is shared between frames.
// Complexity: O(n) time, O(n) call stack.
func KthToLastRecursive[T any](head *Node[T], k int) *Node[T] {
	node, _ := kthToLast(head, k)

	return node
}

func kthToLast[T any](head *Node[T], k int) (*Node[T], int) {
	if head == nil {
		return nil, 0
	}

	node, count := kthToLast(head.Next, k)
	count++
	if count == k {
		return head, count
	}

	return node, count
}
