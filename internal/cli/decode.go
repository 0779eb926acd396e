package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shiwano/drivererr"
	zaphelper "github.com/shiwano/drivererr/integrations/zap"
	"github.com/shiwano/drivererr/resolver"
	"github.com/shiwano/drivererr/wire"
)

func newDecodeCommand(a *app) *cobra.Command {
	var (
		asJSON bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "decode [file|-]",
		Short: "Decode a remote-end error response and print the enriched error",
		Long: `Decode reads a W3C or legacy JSON wire protocol error response from a file,
or from standard input when the file is "-" or omitted, and prints the error
message enriched with the local build and system information.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var r wire.Resolver = resolver.Default()
			if strict {
				r = resolver.New(drivererr.Definitions()...)
			}
			decoder := wire.NewDecoder(r, wire.WithDefinitionOptions(
				drivererr.WithEnvironment(a.environment()),
			))

			decoded, err := decoder.Decode(data)
			if err != nil {
				a.logger.Error("decode failed", zaphelper.Error(err))
				return err
			}
			a.logger.Debug("decoded", zaphelper.Error(decoded))

			out := cmd.OutOrStdout()
			if asJSON {
				encoded, err := wire.Encode(decoded)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(encoded))
				return err
			}
			_, err = fmt.Fprintln(out, decoded.Error())
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the error as a W3C response instead")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on error codes that are not predefined")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}
