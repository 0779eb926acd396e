package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiwano/drivererr"
)

func newSysinfoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sysinfo",
		Short: "Print the build and system information attached to every error",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, drivererr.DefaultBuildInfo().String()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(out, drivererr.SystemInformation(cmd.Context(), a.environment()))
			return err
		},
	}
}
