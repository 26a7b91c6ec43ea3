package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsakit/linkedlist"
)

// newListCmd groups the singly linked list algorithms.
func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Run linked list algorithms on integer values",
		Example: `  dsakit list reverse 1 2 3 4 5
  dsakit list cycle --entry 2 1 2 3 4 5 6
  dsakit list zero-sum -- 3 4 -7 5 -6 6`,
	}

	cmd.AddCommand(
		newListReverseCmd(),
		newListMiddleCmd(),
		newListPalindromeCmd(),
		newListCycleCmd(),
		newListRemoveKthCmd(),
		newListZeroSumCmd(),
		newListDedupCmd(),
		newListReorderCmd(),
	)

	return cmd
}

// listArgs parses the positional values and logs them at debug level.
func listArgs(cmd *cobra.Command, args []string) ([]int, error) {
	values, err := parseInts(args)
	if err != nil {
		return nil, errors.Wrap(err, "parse list")
	}
	loggerFromContext(cmd.Context()).Debug("parsed list", "len", len(values))
	return values, nil
}

// printList prints a finished acyclic list.
func printList(cmd *cobra.Command, label string, head *linkedlist.Node[int]) error {
	values, err := linkedlist.Values(head)
	if err != nil {
		return errors.Wrap(err, "collect list")
	}
	printKeyValue(cmd.OutOrStdout(), label, renderChain(values))
	return nil
}

func newListReverseCmd() *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "reverse [values...]",
		Short: "Reverse a list",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := listArgs(cmd, args)
			if err != nil {
				return err
			}
			head := linkedlist.FromSlice(values)
			if recursive {
				head = linkedlist.ReverseRecursive(head)
			} else {
				head = linkedlist.ReverseIterative(head)
			}
			return printList(cmd, "Reversed", head)
		},
	}

	cmd.Flags().BoolVar(&recursive, "recursive", false, "use the recursive reversal")

	return cmd
}

func newListMiddleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "middle values...",
		Short: "Print the middle value (the second middle for even lengths)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := listArgs(cmd, args)
			if err != nil {
				return err
			}
			mid := linkedlist.FindMiddle(linkedlist.FromSlice(values))
			printKeyValue(cmd.OutOrStdout(), "Middle", fmt.Sprint(mid.Value))
			return nil
		},
	}
}

func newListPalindromeCmd() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "palindrome [values...]",
		Short: "Check whether a list reads the same both ways",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := listArgs(cmd, args)
			if err != nil {
				return err
			}
			var ok bool
			switch method {
			case "runner":
				ok = linkedlist.IsPalindromeByRunner(linkedlist.FromSlice(values))
			case "stack":
				ok = linkedlist.IsPalindromeByStack(linkedlist.FromSlice(values))
			case "recursion":
				ok = linkedlist.IsPalindromeByRecursion(linkedlist.FromSlice(values))
			case "doubly":
				ok = linkedlist.IsPalindromeDoubly(linkedlist.FromSliceDoubly(values))
			default:
				return errors.Errorf("unknown method %q (runner, stack, recursion, doubly)", method)
			}
			printBool(cmd.OutOrStdout(), "Palindrome", ok)
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", "runner", "runner, stack, recursion or doubly")

	return cmd
}

func newListCycleCmd() *cobra.Command {
	var entry int

	cmd := &cobra.Command{
		Use:   "cycle values...",
		Short: "Detect a cycle, its length and its first node",
		Long: `Build a list from values, optionally linking the tail back to the node at
index --entry, then run cycle detection on it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := listArgs(cmd, args)
			if err != nil {
				return err
			}

			head := linkedlist.FromSlice(values)
			if entry >= 0 {
				if head, err = linkedlist.FromSliceWithCycle(values, entry); err != nil {
					return errors.Wrap(err, "build cycle")
				}
			}

			w := cmd.OutOrStdout()
			printBool(w, "Cycle", linkedlist.HasCycleByRunner(head))
			start, err := linkedlist.FindCycleStart(head)
			if errors.Is(err, linkedlist.ErrAcyclic) {
				return nil
			}
			if err != nil {
				return err
			}
			printKeyValue(w, "Length", fmt.Sprint(linkedlist.FindCycleLength(head)))
			printKeyValue(w, "Start", fmt.Sprint(start.Value))
			return nil
		},
	}

	cmd.Flags().IntVar(&entry, "entry", -1, "index the tail links back to (-1 for no cycle)")

	return cmd
}

func newListRemoveKthCmd() *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "remove-kth values...",
		Short: "Remove the k-th node from the end",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := listArgs(cmd, args)
			if err != nil {
				return err
			}
			head, err := linkedlist.RemoveKthFromEnd(linkedlist.FromSlice(values), k)
			if err != nil {
				return errors.Wrapf(err, "remove k=%d", k)
			}
			return printList(cmd, "Result", head)
		},
	}

	cmd.Flags().IntVar(&k, "k", 1, "position from the end (1 is the tail)")

	return cmd
}

func newListZeroSumCmd() *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "zero-sum [values...]",
		Short: "Remove consecutive runs summing to k",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := listArgs(cmd, args)
			if err != nil {
				return err
			}
			head := linkedlist.RemoveZeroSumSublists(linkedlist.FromSlice(values), k)
			return printList(cmd, "Result", head)
		},
	}

	cmd.Flags().IntVar(&k, "k", 0, "target run sum")

	return cmd
}

func newListDedupCmd() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "dedup [values...]",
		Short: "Remove duplicate values, keeping first occurrences",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := listArgs(cmd, args)
			if err != nil {
				return err
			}
			head := linkedlist.FromSlice(values)
			switch method {
			case "runner":
				linkedlist.DeleteDuplicatesByRunner(head)
			case "hashing":
				linkedlist.DeleteDuplicatesByHashing(head)
			default:
				return errors.Errorf("unknown method %q (runner, hashing)", method)
			}
			return printList(cmd, "Result", head)
		},
	}

	cmd.Flags().StringVar(&method, "method", "hashing", "runner or hashing")

	return cmd
}

func newListReorderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder [values...]",
		Short: "Interleave the first half with the reversed second half",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := listArgs(cmd, args)
			if err != nil {
				return err
			}
			head := linkedlist.FromSlice(values)
			linkedlist.Reorder(head)
			return printList(cmd, "Reordered", head)
		},
	}
}
