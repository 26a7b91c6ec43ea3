package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsakit/hashing"
)

func newHashCmd() *cobra.Command {
	var (
		size   int
		insert []int
	)

	cmd := &cobra.Command{
		Use:   "hash [queries...]",
		Short: "Insert keys into a presence table and query others",
		Long: `Insert --insert keys into a presence table of --size slots, then report
Contains for each query. A yes may come from another key in the same slot.`,
		Example: `  dsakit hash --size 10 --insert 3,27 3 4 13`,
		RunE: func(cmd *cobra.Command, args []string) error {
			queries, err := parseInts(args)
			if err != nil {
				return errors.Wrap(err, "parse queries")
			}
			tbl, err := hashing.NewPresenceTable(size)
			if err != nil {
				return errors.Wrap(err, "create table")
			}
			for _, k := range insert {
				tbl.Insert(k)
			}
			loggerFromContext(cmd.Context()).Debug("table ready", "size", tbl.Size(), "occupied", tbl.Occupied())

			w := cmd.OutOrStdout()
			for _, q := range queries {
				printBool(w, fmt.Sprint(q), tbl.Contains(q))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 16, "number of slots")
	cmd.Flags().IntSliceVar(&insert, "insert", nil, "comma-separated keys to insert")

	return cmd
}
