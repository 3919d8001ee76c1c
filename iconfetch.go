// Package iconfetch assembles the favicon service: configuration, outbound
// client, favicon pipeline, downloader, router and HTTP server.
package iconfetch

import (
	"fmt"
	"net/http"

	"github.com/caasmo/iconfetch/config"
	"github.com/caasmo/iconfetch/core"
	"github.com/caasmo/iconfetch/core/prerouter"
	"github.com/caasmo/iconfetch/download"
	"github.com/caasmo/iconfetch/favicon"
	"github.com/caasmo/iconfetch/router"
	"github.com/caasmo/iconfetch/server"
)

// New creates the App and the Server that serves it. cfg must already be
// validated; a nil cfg uses the defaults.
func New(cfg *config.Config, opts ...Option) (*core.App, *server.Server, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	configProvider := config.NewProvider(cfg)

	app, handler, err := build(configProvider, opts...)
	if err != nil {
		return nil, nil, err
	}

	reload := func() error {
		return config.Reload(configProvider, app.Logger())
	}
	srv := server.NewServer(configProvider, handler, app.Logger(), reload)
	return app, srv, nil
}

// NewService builds only the favicon pipeline, for one-shot lookups
// outside the HTTP server.
func NewService(cfg *config.Config, opts ...Option) (*favicon.Service, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	i, err := newInitializer(config.NewProvider(cfg), opts...)
	if err != nil {
		return nil, err
	}
	return favicon.NewService(i.getter, i.configProvider, i.logger, i.faviconMetrics), nil
}

// build wires the app and returns the handler with the prerouter chain
// around the router.
func build(configProvider *config.Provider, opts ...Option) (*core.App, http.Handler, error) {
	i, err := newInitializer(configProvider, opts...)
	if err != nil {
		return nil, nil, err
	}

	favicons := favicon.NewService(i.getter, configProvider, i.logger, i.faviconMetrics)
	downloader := download.New(i.getter, configProvider, i.logger)

	app, err := core.NewApp(
		core.WithConfigProvider(configProvider),
		core.WithLogger(i.logger),
		core.WithRouter(i.router),
		core.WithFaviconService(favicons),
		core.WithDownloader(downloader),
		core.WithGatherer(i.gatherer),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("iconfetch: failed to initialize app: %w", err)
	}

	route(configProvider.Get(), app)

	handler := router.NewChain(app.Router()).WithMiddleware(
		prerouter.NewRecorder(app).Execute,
		prerouter.NewRequestID(app).Execute,
		prerouter.NewMaintenance(app).Execute,
		prerouter.NewMetrics(app, i.registerer).Execute,
		prerouter.NewRequestLog(app).Execute,
	).Handler()

	return app, handler, nil
}
