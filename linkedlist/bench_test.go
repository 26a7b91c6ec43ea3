package linkedlist_test

import (
	"testing"

	"github.com/katalvlaran/dsakit/linkedlist"
)

// benchValues builds a 0..n-1 slice once per benchmark.
func benchValues(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}

	return values
}

// BenchmarkReverseIterative_10000 measures in-place reversal on a 10,000-node chain.
// Reversing twice per iteration keeps the fixture in its original order.
func BenchmarkReverseIterative_10000(b *testing.B) {
	head := linkedlist.FromSlice(benchValues(10000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		head = linkedlist.ReverseIterative(linkedlist.ReverseIterative(head))
	}
}

// BenchmarkHasCycle_10000 compares Floyd's runner against the hashing detector
// on a 10,000-node list whose tail links back to the middle.
func BenchmarkHasCycle_10000(b *testing.B) {
	head, err := linkedlist.FromSliceWithCycle(benchValues(10000), 5000)
	if err != nil {
		b.Fatal(err)
	}

	b.Run("Runner", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = linkedlist.HasCycleByRunner(head)
		}
	})
	b.Run("Hashing", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = linkedlist.HasCycleByHashing(head)
		}
	})
}

// BenchmarkIsPalindrome_10000 runs the three palindrome strategies on the same list.
func BenchmarkIsPalindrome_10000(b *testing.B) {
	values := benchValues(10000)
	for i := 0; i < len(values)/2; i++ {
		values[len(values)-1-i] = values[i]
	}
	head := linkedlist.FromSlice(values)

	b.Run("Runner", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = linkedlist.IsPalindromeByRunner(head)
		}
	})
	b.Run("Stack", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = linkedlist.IsPalindromeByStack(head)
		}
	})
	b.Run("Recursion", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = linkedlist.IsPalindromeByRecursion(head)
		}
	})
}
