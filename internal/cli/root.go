// Package cli implements the drivererr command.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/shiwano/drivererr"
	"github.com/shiwano/drivererr/internal/config"
	"github.com/shiwano/drivererr/internal/observability"
)

type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
}

// NewRootCommand builds the drivererr command tree.
func NewRootCommand() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "drivererr",
		Short:         "Inspect enriched WebDriver errors and the host they are reported from.",
		Version:       drivererr.DefaultBuildInfo().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(viper.New(), a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = observability.NewLogger(cfg.Logger, zapcore.AddSync(cmd.ErrOrStderr()))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return observability.Sync(a.logger)
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./drivererr.yaml)")
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	root.AddCommand(
		newSysinfoCommand(a),
		newDecodeCommand(a),
		newVersionCommand(),
	)
	return root
}

func (a *app) environment() drivererr.Environment {
	return drivererr.HostEnvironment(a.cfg.Host.LookupTimeout)
}
