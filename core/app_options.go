package core

import (
	"fmt"
	"log/slog"

	"github.com/caasmo/iconfetch/config"
	"github.com/caasmo/iconfetch/router"
	"github.com/prometheus/client_golang/prometheus"
)

type Option func(*App)

// NewApp applies the options and checks that every required dependency
// was given.
func NewApp(opts ...Option) (*App, error) {
	a := &App{}
	for _, opt := range opts {
		opt(a)
	}

	if a.router == nil {
		return nil, fmt.Errorf("core: router is required (use WithRouter)")
	}
	if a.configProvider == nil {
		return nil, fmt.Errorf("core: config provider is required (use WithConfigProvider)")
	}
	if a.logger == nil {
		return nil, fmt.Errorf("core: logger is required (use WithLogger)")
	}
	if a.favicons == nil {
		return nil, fmt.Errorf("core: favicon service is required (use WithFaviconService)")
	}
	if a.downloader == nil {
		return nil, fmt.Errorf("core: downloader is required (use WithDownloader)")
	}
	return a, nil
}

func WithRouter(r router.Router) Option {
	return func(a *App) {
		a.router = r
	}
}

// WithConfigProvider sets the application's configuration provider.
func WithConfigProvider(p *config.Provider) Option {
	return func(a *App) {
		a.configProvider = p
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

func WithFaviconService(s FaviconService) Option {
	return func(a *App) {
		a.favicons = s
	}
}

func WithDownloader(d Downloader) Option {
	return func(a *App) {
		a.downloader = d
	}
}

// WithGatherer sets the registry served by MetricsHandler. Defaults to
// prometheus.DefaultGatherer.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(a *App) {
		a.gatherer = g
	}
}
