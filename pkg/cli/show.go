package cli

import (
	"github.com/spf13/cobra"

	"github.com/distroforge/distroforge/pkg/console"
	"github.com/distroforge/distroforge/pkg/distro"
	"github.com/distroforge/distroforge/pkg/matrix"
	"github.com/distroforge/distroforge/pkg/python"
)

func newShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <distro> <arch> <version>",
		Short: "Print the Dockerfile for a single matrix cell",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := distro.Parse(args[0])
			if err != nil {
				return err
			}
			a, err := distro.ParseArch(args[1])
			if err != nil {
				return err
			}
			r, err := python.ParseRelease(args[2])
			if err != nil {
				return err
			}

			gen := matrix.New()
			tag, df, err := gen.Generate(matrix.Cell{Distro: d, Arch: a, Release: r})
			if err != nil {
				return err
			}
			console.Debug("cell tag: %s", tag)
			console.Output(df.Render())
			return nil
		},
	}
	return cmd
}
