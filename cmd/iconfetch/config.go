package main

import (
	"github.com/caasmo/iconfetch/config"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long: `Config prints the configuration the server would run with: the file
given by --config (or found in the XDG directories) over the built-in
defaults, after environment overrides.

Use --defaults to print only the built-in defaults, a starting point for a
new config.toml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defaults, _ := cmd.Flags().GetBool("defaults")
			if defaults {
				return config.Write(cmd.OutOrStdout(), config.NewDefaultConfig())
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return config.Write(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().Bool("defaults", false, "Print the built-in defaults")

	return cmd
}
