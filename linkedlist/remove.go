// SPDX-License-Identifier: MIT
// Package: dsakit/linkedlist
//
// remove.go: algorithms that unlink nodes.
//
// Contract:
//   - Functions that may remove the head return the new head; callers must
//     use the returned value.
//   - On error the list is left untouched.

package linkedlist

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

const methodRemoveKthFromEnd = "RemoveKthFromEnd"

// RemoveKthFromEnd unlinks the node k positions from the end (k=1 is the
// tail) and returns the possibly new head. When k equals the list length the
// head itself is removed. Returns ErrKOutOfRange, with the list unchanged,
// when k < 1 or k exceeds the length.
//
//	1→2→3→4→5, k=2  ⇒  1→2→3→5
//
// Complexity: O(n) time, O(1) memory.
func RemoveKthFromEnd[T any](head *Node[T], k int) (*Node[T], error) {
	if k < 1 {
		return head, fmt.Errorf("%s: k=%d: %w", methodRemoveKthFromEnd, k, ErrKOutOfRange)
	}

	// 1) Move fast k nodes into the list.
	fast := head
	for i := 0; i < k; i++ {
		if fast == nil {
			return head, fmt.Errorf("%s: k=%d exceeds length %d: %w", methodRemoveKthFromEnd, k, i, ErrKOutOfRange)
		}
		fast = fast.Next
	}

	// 2) k == length: the head is the victim.
	if fast == nil {
		newHead := head.Next
		head.Next = nil

		return newHead, nil
	}

	// 3) Advance both until fast sits on the tail; slow then precedes the victim.
	slow := head
	for fast.Next != nil {
		fast = fast.Next
		slow = slow.Next
	}
	victim := slow.Next
	slow.Next = victim.Next
	victim.Next = nil

	return head, nil
}

// RemoveZeroSumSublists removes contiguous runs whose values sum to k and
// returns the new head. It makes a single left-to-right pass with a
// prefix-sum index: when the prefix sum minus k was seen at node p, every
// node after p up to the current one is unlinked and the prefix sums that
// belonged to the unlinked nodes are dropped from the index.
//
//	1→2→-3→3→1, k=3  ⇒  -3→1
//
// The pass never rescans, so splicing may create a new run summing to k that
// survives; only runs visible during the single pass are removed.
// Complexity: O(n) time, O(n) memory.
func RemoveZeroSumSublists[T constraints.Integer](head *Node[T], k T) *Node[T] {
	root := &Node[T]{Next: head}
	index := map[T]*Node[T]{0: root}

	var sum T
	for current := head; current != nil; current = current.Next {
		sum += current.Value

		prev, found := index[sum-k]
		if !found {
			if _, seen := index[sum]; !seen {
				index[sum] = current
			}
			continue
		}

		// Drop prefix sums owned by the nodes strictly between prev and current.
		aux := sum - k
		for n := prev.Next; n != current; n = n.Next {
			aux += n.Value
			if index[aux] == n {
				delete(index, aux)
			}
		}

		prev.Next = current.Next
		sum -= k
	}

	return root.Next
}

// DeleteDuplicatesByRunner keeps the first occurrence of every value, using a
// runner that scans ahead of each node.
// Complexity: O(n²) time, O(1) memory.
func DeleteDuplicatesByRunner[T comparable](head *Node[T]) {
	for current := head; current != nil; current = current.Next {
		runner := current
		for runner.Next != nil {
			if runner.Next.Value == current.Value {
				runner.Next = runner.Next.Next
			} else {
				runner = runner.Next
			}
		}
	}
}

// DeleteDuplicatesByHashing keeps the first occurrence of every value,
// remembering seen values in a set.
// Complexity: O(n) time, O(n) memory.
func DeleteDuplicatesByHashing[T comparable](head *Node[T]) {
	seen := make(map[T]struct{})
	var previous *Node[T]
	for n := head; n != nil; n = n.Next {
		if _, dup := seen[n.Value]; dup {
			previous.Next = n.Next
			continue
		}
		seen[n.Value] = struct{}{}
		previous = n
	}
}

// DeleteNode removes n from its list given access to n only, by copying the
// successor into n and unlinking the successor. It cannot remove the tail
// and reports false for a nil node or the tail.
// Complexity: O(1).
func DeleteNode[T any](n *Node[T]) bool {
	if n == nil || n.Next == nil {
		return false
	}

	next := n.Next
	n.Value = next.Value
	n.Next = next.Next

	return true
}
