package main

import (
	"fmt"

	"github.com/caasmo/iconfetch"
	"github.com/spf13/cobra"
)

const (
	logFormatJSON = "json"
	logFormatText = "text"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the favicon HTTP server",
		Long: `Serve starts the HTTP server with the routes

  GET /favicon/:domain[?larger=true]   favicon of a domain
  GET /download/*url                   remote image as an attachment
  GET /metrics                         Prometheus metrics, when enabled

SIGHUP reloads the configuration file. SIGINT, SIGQUIT and SIGTERM shut
the server down gracefully.`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().StringP("addr", "a", "", "Listen address, overrides server.addr")
	cmd.Flags().String("log-format", logFormatJSON, "Log format: json or text")

	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	logOpt, err := loggerOption(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	_, srv, err := iconfetch.New(cfg, logOpt)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	srv.Run()
	return nil
}

func loggerOption(cmd *cobra.Command) (iconfetch.Option, error) {
	format, err := cmd.Flags().GetString("log-format")
	if err != nil {
		return nil, err
	}
	switch format {
	case logFormatJSON:
		return iconfetch.WithPhusLogger(nil), nil
	case logFormatText:
		return iconfetch.WithTextLogger(nil), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want %s or %s)", format, logFormatJSON, logFormatText)
	}
}
