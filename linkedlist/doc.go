// Package linkedlist implements classic singly- and doubly-linked list
// algorithms over a minimal generic Node type.
//
// What:
//
//   - Reversal: ReverseIterative, ReverseRecursive, ReverseAndClone.
//   - Runner (slow/fast pointer) techniques: FindMiddle, HasCycleByRunner,
//     FindCycleLength, FindCycleStart, KthToLastByRunner, RemoveKthFromEnd.
//   - Hashing techniques: HasCycleByHashing, DeleteDuplicatesByHashing,
//     RemoveZeroSumSublists (prefix-sum index).
//   - Palindrome checks: IsPalindromeByRunner, IsPalindromeByStack,
//     IsPalindromeByRecursion, IsPalindromeDoubly.
//   - Miscellany: DeleteDuplicatesByRunner, DeleteNode, SumReversed, Reorder.
//
// Data model:
//
//	A list is a *Node[T] pointing at its head; nil is the empty list.
//	No length is cached anywhere, every length query is a traversal.
//	Cyclic lists are legal fixtures (see FromSliceWithCycle) but only the
//	cycle-aware functions accept them: HasCycle*, FindCycle*, Values.
//
// Middle tie-break:
//
//	FindMiddle advances slow by one and fast by two while fast != nil and
//	fast.Next != nil. For a list of length L it returns the node at index
//	L/2 (integer division), so for even L it is the FIRST node of the
//	second half: 1→2→3→4→5→6 yields 4.
//
// Complexity:
//
//   - Reverse*, FindMiddle, HasCycleByRunner, FindCycle*: Time O(n), Memory O(1)
//     (ReverseRecursive and IsPalindromeByRecursion use O(n) call stack).
//   - HasCycleByHashing, IsPalindromeByStack, RemoveZeroSumSublists: Time O(n), Memory O(n).
//   - DeleteDuplicatesByRunner: Time O(n²), Memory O(1).
//
// Errors:
//
//   - ErrAcyclic          FindCycleStart called on a list without a cycle
//   - ErrKOutOfRange      k < 1 or k larger than the list length
//   - ErrCyclic           Values called on a cyclic list
//   - ErrIndexOutOfRange  builder index outside the input slice
//
// Functions never retain hidden state; callers may run them concurrently on
// disjoint lists without synchronization.
package linkedlist
