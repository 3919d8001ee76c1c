package iconfetch

import (
	"net/http"

	"github.com/caasmo/iconfetch/config"
	"github.com/caasmo/iconfetch/core"
	"github.com/caasmo/iconfetch/router"
)

func route(cfg *config.Config, ap *core.App) {
	chains := router.Chains{
		"GET /favicon/:domain": router.NewChain(http.HandlerFunc(ap.FaviconHandler)),
		"GET /download/*url":   router.NewChain(http.HandlerFunc(ap.DownloadHandler)),
		"GET /favicon.ico":     router.NewChain(http.HandlerFunc(core.OwnFaviconHandler)),
	}

	// Enabled is read once; the endpoint cannot appear on reload.
	if cfg.Metrics.Enabled {
		chains["GET "+cfg.Metrics.Endpoint] = router.NewChain(http.HandlerFunc(ap.MetricsHandler))
	}

	chains.Register(ap.Router())
	ap.Router().NotFound(http.HandlerFunc(core.NotFoundHandler))
}
