// Package server runs the HTTP server until a termination signal and
// reloads the configuration on SIGHUP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caasmo/iconfetch/config"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	configProvider *config.Provider
	handler        http.Handler
	logger         *slog.Logger
	reloadFunc     func() error

	// exitFunc is os.Exit outside tests.
	exitFunc func(int)

	ready chan struct{}
	addr  net.Addr
}

// NewServer takes the fully wrapped handler. reloadFunc runs on SIGHUP and
// may be nil.
func NewServer(provider *config.Provider, handler http.Handler, logger *slog.Logger, reloadFunc func() error) *Server {
	return &Server{
		configProvider: provider,
		handler:        handler,
		logger:         logger,
		reloadFunc:     reloadFunc,
		exitFunc:       os.Exit,
		ready:          make(chan struct{}),
	}
}

// Ready is closed once the listener is bound and signals are watched.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr is the bound address, valid after Ready.
func (s *Server) Addr() net.Addr {
	return s.addr
}

// Run serves until SIGINT, SIGQUIT or SIGTERM and exits the process with 0
// after a graceful shutdown, 1 otherwise.
func (s *Server) Run() {
	if err := s.RunContext(context.Background()); err != nil {
		s.logger.Error("server: stopped with error", "error", err)
		s.exitFunc(1)
		return
	}
	s.logger.Info("server: all systems stopped gracefully")
	s.exitFunc(0)
}

// RunContext serves until ctx is done or a termination signal arrives.
func (s *Server) RunContext(ctx context.Context) error {
	cfg := s.configProvider.Get().Server

	s.logger.Info("server: configuration",
		"addr", cfg.Addr,
		"read_timeout", cfg.ReadTimeout.String(),
		"read_header_timeout", cfg.ReadHeaderTimeout.String(),
		"write_timeout", cfg.WriteTimeout.String(),
		"idle_timeout", cfg.IdleTimeout.String(),
		"shutdown_timeout", cfg.ShutdownGracefulTimeout.String(),
	)

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("server: failed to listen on %s: %w", cfg.Addr, err)
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadTimeout:       cfg.ReadTimeout.Duration,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout.Duration,
		WriteTimeout:      cfg.WriteTimeout.Duration,
		IdleTimeout:       cfg.IdleTimeout.Duration,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	sigCtx, stop := signal.NotifyContext(ctx,
		syscall.SIGINT,  // kill -SIGINT XXXX or Ctrl+c
		syscall.SIGQUIT, // kill -SIGQUIT XXXX
		syscall.SIGTERM,
	)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	s.addr = ln.Addr()
	close(s.ready)

	g, gctx := errgroup.WithContext(sigCtx)

	g.Go(func() error {
		s.logger.Info("server: starting HTTP server", "addr", ln.Addr().String())
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-hup:
				s.reload()
			case <-gctx.Done():
				s.logger.Info("server: shutting down HTTP server")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGracefulTimeout.Duration)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("server: shutdown: %w", err)
				}
				s.logger.Info("server: HTTP server stopped gracefully")
				return nil
			}
		}
	})

	return g.Wait()
}

func (s *Server) reload() {
	s.logger.Info("server: received SIGHUP, reloading configuration")
	if s.reloadFunc == nil {
		return
	}
	if err := s.reloadFunc(); err != nil {
		s.logger.Error("server: configuration reload failed", "error", err)
	}
}
