package core

import (
	"net/http"
	"slices"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler serves Prometheus metrics in the standard format
// Endpoint: GET /metrics
// Authenticated: No, restricted to metrics.allowed_ips
//
// Unlisted peers get a 404 so the endpoint is not advertised.
func (a *App) MetricsHandler(w http.ResponseWriter, r *http.Request) {
	cfg := a.Config().Metrics
	if !cfg.Enabled {
		writeJsonError(w, errorNotFound)
		return
	}

	// the proxy header is not trusted here
	clientIP := remoteIP(r)
	if clientIP == "" {
		writeJsonError(w, errorInvalidRequest)
		return
	}
	if !slices.Contains(cfg.AllowedIPs, clientIP) {
		a.logger.Warn("metrics: access denied", "remote_ip", clientIP)
		writeJsonError(w, errorNotFound)
		return
	}

	promhttp.HandlerFor(a.Gatherer(), promhttp.HandlerOpts{}).ServeHTTP(w, r)
}
