package core

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/caasmo/iconfetch/config"
	"github.com/caasmo/iconfetch/download"
	"github.com/caasmo/iconfetch/favicon"
	"github.com/caasmo/iconfetch/router"
	"github.com/prometheus/client_golang/prometheus"
)

// FaviconService resolves the icon served for a domain.
type FaviconService interface {
	Lookup(ctx context.Context, domain string, header http.Header, larger bool) (*favicon.Icon, error)
}

// Downloader fetches a remote image as an attachment.
type Downloader interface {
	Download(ctx context.Context, rawURL string) (*download.File, error)
}

// App holds what the handlers and middlewares need. All handlers have App
// as receiver.
type App struct {
	router         router.Router
	configProvider *config.Provider
	logger         *slog.Logger
	favicons       FaviconService
	downloader     Downloader
	gatherer       prometheus.Gatherer
}

func (a *App) Router() router.Router {
	return a.router
}

func (a *App) SetRouter(r router.Router) {
	a.router = r
}

func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) SetLogger(l *slog.Logger) {
	a.logger = l
}

// Config returns the current configuration snapshot.
func (a *App) Config() *config.Config {
	return a.configProvider.Get()
}

func (a *App) ConfigProvider() *config.Provider {
	return a.configProvider
}

func (a *App) SetConfigProvider(provider *config.Provider) {
	a.configProvider = provider
}

// Gatherer is the metrics source of the /metrics endpoint.
func (a *App) Gatherer() prometheus.Gatherer {
	if a.gatherer == nil {
		return prometheus.DefaultGatherer
	}
	return a.gatherer
}
