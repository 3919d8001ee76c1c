package main

import (
	"fmt"
	"os"

	"github.com/caasmo/iconfetch/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for iconfetch.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iconfetch",
		Short: "Favicon resolver service",
		Long: `iconfetch finds the best favicon of a domain. It reads the icons the
site declares in its markup, falls back to public favicon providers and
finally serves a generated placeholder, so a lookup always yields an image.

The configuration file is TOML. Without --config it is searched as
iconfetch/config.toml in the XDG config directories; built-in defaults are
used when none exists.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Path to the TOML configuration file")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewResolveCmd())
	cmd.AddCommand(NewConfigCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the file named by --config, or the XDG default.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
