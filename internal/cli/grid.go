package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsakit/grid"
)

// gridTraversals maps traversal names to their implementations.
var gridTraversals = map[string]func([][]int) ([]int, error){
	"rows":            func(g [][]int) ([]int, error) { return grid.TraverseRows(g), nil },
	"cols":            grid.TraverseCols[int],
	"diagonals":       grid.TraverseDiagonals[int],
	"zigzag":          func(g [][]int) ([]int, error) { return grid.ZigZag(g), nil },
	"diagonal-zigzag": grid.DiagonalZigZag[int],
	"spiral":          grid.Spiral[int],
}

func newGridCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Traverse and search integer grids",
		Long:  `Traverse and search integer grids. Each argument is one comma-separated row.`,
		Example: `  dsakit grid walk --order spiral 1,2,3 4,5,6 7,8,9
  dsakit grid search --target 5 --method staircase 1,4,7 2,5,8 3,6,9`,
	}

	cmd.AddCommand(newGridWalkCmd(), newGridSearchCmd(), newGridZeroesCmd())

	return cmd
}

func newGridWalkCmd() *cobra.Command {
	var order string

	cmd := &cobra.Command{
		Use:   "walk rows...",
		Short: "Print the cells in the chosen order",
		RunE: func(cmd *cobra.Command, args []string) error {
			walk, ok := gridTraversals[order]
			if !ok {
				return errors.Errorf("unknown order %q", order)
			}
			g, err := parseIntGrid(args)
			if err != nil {
				return errors.Wrap(err, "parse grid")
			}
			out, err := walk(g)
			if err != nil {
				return errors.Wrapf(err, "walk %s", order)
			}
			printKeyValue(cmd.OutOrStdout(), "Order", renderChain(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&order, "order", "rows", "rows, cols, diagonals, zigzag, diagonal-zigzag or spiral")

	return cmd
}

func newGridSearchCmd() *cobra.Command {
	var (
		target int
		method string
	)

	cmd := &cobra.Command{
		Use:   "search rows...",
		Short: "Find a value and print its cell",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseIntGrid(args)
			if err != nil {
				return errors.Wrap(err, "parse grid")
			}

			var (
				at grid.Cell
				ok bool
			)
			switch method {
			case "linear":
				at, ok = grid.SearchLinear(g, target)
			case "binary":
				at, ok, err = grid.SearchRowBinary(g, target)
			case "staircase":
				at, ok, err = grid.SearchStaircase(g, target)
			default:
				return errors.Errorf("unknown method %q (linear, binary, staircase)", method)
			}
			if err != nil {
				return errors.Wrapf(err, "search %s", method)
			}

			w := cmd.OutOrStdout()
			printBool(w, "Found", ok)
			if ok {
				printKeyValue(w, "Cell", at.String())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&target, "target", 0, "value to find")
	cmd.Flags().StringVar(&method, "method", "linear", "linear, binary or staircase")

	return cmd
}

func newGridZeroesCmd() *cobra.Command {
	var cached bool

	cmd := &cobra.Command{
		Use:   "zeroes rows...",
		Short: "Zero every row and column that contains a zero",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseIntGrid(args)
			if err != nil {
				return errors.Wrap(err, "parse grid")
			}
			if cached {
				err = grid.SetZeroesByCache(g)
			} else {
				err = grid.SetZeroes(g)
			}
			if err != nil {
				return errors.Wrap(err, "set zeroes")
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, StyleTitle.Render("Zeroed"))
			fmt.Fprintln(w, renderGrid(g))
			return nil
		},
	}

	cmd.Flags().BoolVar(&cached, "cache", false, "record zero rows and columns in side sets")

	return cmd
}
