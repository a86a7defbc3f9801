// Package cli implements insightctl, the command-line companion of the
// insight server: seeding the record store and inspecting configuration.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"insightboard/internal/platform/config"
	"insightboard/internal/platform/logger"
)

// Version is overridden at build time with -ldflags "-X insightboard/internal/cli.Version=...".
var Version = "dev"

// flagKeys binds command-line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":  "log_level",
	"log-format": "log_format",
	"store":      "store.driver",
	"source":     "loader.source",
}

type app struct {
	configFile string
	v          *viper.Viper
	cfg        config.Config
	logger     *slog.Logger
	logOut     io.Writer
}

// NewRootCommand builds the insightctl command tree. Logs go to logOut.
func NewRootCommand(logOut io.Writer) *cobra.Command {
	a := &app{logOut: logOut}

	root := &cobra.Command{
		Use:   "insightctl",
		Short: "Manage the insight dashboard data",
		Long: `insightctl seeds the insight record store and inspects configuration.

Configuration hierarchy (highest to lowest priority):
  1. CLI flags
  2. Environment variables (INSIGHTS_*)
  3. Config file (--config)
  4. Defaults`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.resolveConfig,
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "YAML config file")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "", "log format (json, text)")

	root.AddCommand(newLoadCommand(a), newConfigCommand(a), newVersionCommand())
	return root
}

// resolveConfig resolves the configuration once flags are parsed.
func (a *app) resolveConfig(cmd *cobra.Command, _ []string) error {
	v, err := config.NewViper(a.configFile)
	if err != nil {
		return err
	}
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	cfg, err := config.Decode(v)
	if err != nil {
		return err
	}
	a.v = v
	a.cfg = cfg
	a.logger = logger.NewWithWriter(a.logOut, cfg.LogLevel, cfg.LogFormat)
	return nil
}
