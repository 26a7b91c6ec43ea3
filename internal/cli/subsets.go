package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsakit/subset"
)

// subsetStrategies maps --strategy names to power-set generators.
var subsetStrategies = map[string]func([]string) ([][]string, error){
	"bfs": func(s []string) ([][]string, error) { return subset.FindSubsets(s), nil },
	"duplicates": func(s []string) ([][]string, error) {
		return subset.FindSubsetsWithDuplicates(s), nil
	},
	"bitmask":   subset.PowerSetBitmask[string],
	"recursive": func(s []string) ([][]string, error) { return subset.PowerSetRecursive(s), nil },
	"backtracking": func(s []string) ([][]string, error) {
		return subset.SubsetsByBacktracking(s), nil
	},
	"include-exclude": func(s []string) ([][]string, error) {
		return subset.PowerSetIncludeExclude(s), nil
	},
}

func newSubsetsCmd() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "subsets [items...]",
		Short: "Print every subset of the given items",
		Long: `Print the power set of the given items.

Strategies: bfs, duplicates, bitmask, recursive, backtracking, include-exclude.
The duplicates strategy sorts the items and skips repeated subsets.
At most 20 items are accepted.`,
		Example: `  dsakit subsets a b c
  dsakit subsets --strategy duplicates 1 3 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > subset.MaxPowerSetElements {
				return errors.Errorf("too many items: %d (max %d)", len(args), subset.MaxPowerSetElements)
			}
			gen, ok := subsetStrategies[strategy]
			if !ok {
				return errors.Errorf("unknown strategy %q", strategy)
			}
			sets, err := gen(args)
			if err != nil {
				return errors.Wrapf(err, "strategy %s", strategy)
			}
			loggerFromContext(cmd.Context()).Debug("generated subsets", "strategy", strategy, "count", len(sets))

			w := cmd.OutOrStdout()
			printKeyValue(w, "Count", fmt.Sprint(len(sets)))
			printKeyValue(w, "Subsets", renderSets(sets))
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "bfs", "generation strategy")

	return cmd
}
