package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsakit/matrix"
)

func newMatrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Dense matrix operations",
		Long: `Dense matrix operations. Rows are comma-separated numbers, given one row per
argument or separated by ';' in a single argument.`,
		Example: `  dsakit matrix rotate 1,2,3 4,5,6 7,8,9
  dsakit matrix mul --left "1,2;3,4" --right "5;6"`,
	}

	cmd.AddCommand(newMatrixRotateCmd(), newMatrixTransposeCmd(), newMatrixMulCmd())

	return cmd
}

// denseArgs parses rows into a Dense.
func denseArgs(args []string) (*matrix.Dense, error) {
	rows, err := parseFloatGrid(args)
	if err != nil {
		return nil, errors.Wrap(err, "parse matrix")
	}
	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, errors.Wrap(err, "build matrix")
	}
	return m, nil
}

func printDense(cmd *cobra.Command, title string, m *matrix.Dense) {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, StyleTitle.Render(title))
	fmt.Fprintln(w, renderGrid(m.ToRows()))
}

func newMatrixRotateCmd() *cobra.Command {
	var turns int

	cmd := &cobra.Command{
		Use:   "rotate rows...",
		Short: "Rotate a square matrix clockwise in place",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := denseArgs(args)
			if err != nil {
				return err
			}
			for i := 0; i < ((turns%4)+4)%4; i++ {
				if err := m.RotateSquare90(); err != nil {
					return errors.Wrap(err, "rotate")
				}
			}
			printDense(cmd, "Rotated", m)
			return nil
		},
	}

	cmd.Flags().IntVar(&turns, "turns", 1, "quarter turns clockwise")

	return cmd
}

func newMatrixTransposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transpose rows...",
		Short: "Transpose a matrix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := denseArgs(args)
			if err != nil {
				return err
			}
			t, err := matrix.Transpose(m)
			if err != nil {
				return errors.Wrap(err, "transpose")
			}
			printDense(cmd, "Transposed", t)
			return nil
		},
	}
}

func newMatrixMulCmd() *cobra.Command {
	var left, right string

	cmd := &cobra.Command{
		Use:   "mul",
		Short: "Multiply --left by --right",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := denseArgs([]string{left})
			if err != nil {
				return errors.Wrap(err, "left")
			}
			b, err := denseArgs([]string{right})
			if err != nil {
				return errors.Wrap(err, "right")
			}
			loggerFromContext(cmd.Context()).Debug("multiplying",
				"left", fmt.Sprintf("%dx%d", a.Rows(), a.Cols()),
				"right", fmt.Sprintf("%dx%d", b.Rows(), b.Cols()))

			c, err := matrix.Mul(a, b)
			if err != nil {
				return errors.Wrap(err, "multiply")
			}
			printDense(cmd, "Product", c)
			return nil
		},
	}

	cmd.Flags().StringVar(&left, "left", "", "left operand, rows separated by ';'")
	cmd.Flags().StringVar(&right, "right", "", "right operand, rows separated by ';'")
	_ = cmd.MarkFlagRequired("left")
	_ = cmd.MarkFlagRequired("right")

	return cmd
}
