package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caasmo/iconfetch"
	"github.com/spf13/cobra"
)

// NewResolveCmd creates the resolve command.
func NewResolveCmd() *cobra.Command {
	return newResolveCmd()
}

// newResolveCmd takes extra service options so tests can replace the
// outbound client.
func newResolveCmd(opts ...iconfetch.Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <domain>",
		Short: "Resolve the favicon of a domain once",
		Long: `Resolve runs the same pipeline as GET /favicon/:domain and writes the
image to stdout, or to the file given with --output. A summary line goes
to stderr.

Examples:
  iconfetch resolve example.com > icon.png
  iconfetch resolve bücher.example --larger -o icon.ico`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolveCmd(cmd, args, opts)
		},
	}

	cmd.Flags().BoolP("larger", "l", false, "Prefer the larger icon")
	cmd.Flags().StringP("output", "o", "", "Write the image to this file instead of stdout")
	cmd.Flags().BoolP("verbose", "v", false, "Log every step to stderr")

	return cmd
}

func runResolveCmd(cmd *cobra.Command, args []string, extra []iconfetch.Option) error {
	larger, _ := cmd.Flags().GetBool("larger")
	output, _ := cmd.Flags().GetString("output")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	opts := append([]iconfetch.Option{iconfetch.WithLogger(logger)}, extra...)
	svc, err := iconfetch.NewService(cfg, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	icon, err := svc.Lookup(ctx, args[0], nil, larger)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", args[0], err)
	}

	if output == "" {
		if _, err := cmd.OutOrStdout().Write(icon.Body); err != nil {
			return fmt.Errorf("failed to write icon: %w", err)
		}
	} else if err := os.WriteFile(output, icon.Body, 0o644); err != nil {
		return fmt.Errorf("failed to write icon: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s %s %d bytes in %s\n",
		icon.Domain, icon.Origin, icon.ContentType, len(icon.Body), icon.Elapsed.Round(time.Millisecond))
	return nil
}
