package cli

import (
	"github.com/spf13/cobra"

	"github.com/distroforge/distroforge/pkg/console"
	"github.com/distroforge/distroforge/pkg/matrix"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the tags of every supported matrix cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := matrix.New()
			for _, cell := range gen.Cells() {
				console.Output(matrix.Tag(cell))
			}
			return nil
		},
	}
}
