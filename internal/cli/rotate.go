package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsakit/circular"
)

func newRotateCmd() *cobra.Command {
	var shift int

	cmd := &cobra.Command{
		Use:   "rotate [values...]",
		Short: "Rotate values left by --shift using a circular array view",
		Long: `Rotate values left by --shift positions. The circular array only moves
its head offset; no element is copied. Negative shifts rotate right.`,
		Example: `  dsakit rotate --shift 2 a b c d e
  dsakit rotate --shift=-1 1 2 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			arr := circular.From(args)
			arr.Rotate(shift)
			loggerFromContext(cmd.Context()).Debug("rotated", "shift", shift, "head", arr.Offset())

			w := cmd.OutOrStdout()
			printKeyValue(w, "Rotated", renderChain(arr.Values()))
			printKeyValue(w, "Offset", fmt.Sprint(arr.Offset()))
			return nil
		},
	}

	cmd.Flags().IntVar(&shift, "shift", 1, "positions to rotate left")

	return cmd
}
