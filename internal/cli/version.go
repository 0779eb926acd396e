package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiwano/drivererr"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), drivererr.DefaultBuildInfo().String())
			return err
		},
	}
}
