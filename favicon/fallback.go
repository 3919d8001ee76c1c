package favicon

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/caasmo/iconfetch/config"
	"github.com/caasmo/iconfetch/fetch"
)

const defaultProviderContentType = "image/x-icon"

// ProviderURL fills a provider template with domain.
func ProviderURL(tmpl, domain string) string {
	return strings.ReplaceAll(tmpl, config.DomainPlaceholder, domain)
}

// Fallback asks third-party favicon services for a domain's icon. The
// provider lists are read from the config on every call so a reload takes
// effect immediately.
type Fallback struct {
	client         fetch.Getter
	configProvider *config.Provider
	logger         *slog.Logger
	metrics        *Metrics
}

func NewFallback(client fetch.Getter, configProvider *config.Provider, logger *slog.Logger, metrics *Metrics) *Fallback {
	return &Fallback{
		client:         client,
		configProvider: configProvider,
		logger:         logger,
		metrics:        metrics,
	}
}

// Fetch tries the providers one after the other and returns the first 200
// answer. When all of them fail it returns the placeholder, so the result
// is never nil.
func (f *Fallback) Fetch(ctx context.Context, domain string, header http.Header) *Icon {
	start := time.Now()
	for _, tmpl := range f.configProvider.Get().Favicon.Providers {
		icon, ok := f.try(ctx, ProviderURL(tmpl, domain), header)
		if ok {
			icon.Domain = domain
			icon.Origin = OriginProvider
			icon.Elapsed = time.Since(start)
			return icon
		}
	}

	f.logger.Info("favicon: all providers failed, serving placeholder", "domain", domain)
	icon := Placeholder(domain)
	icon.Elapsed = time.Since(start)
	return icon
}

// Larger queries the high resolution provider alone. ok is false when the
// provider is not configured or does not answer 200.
func (f *Fallback) Larger(ctx context.Context, domain string, header http.Header) (*Icon, bool) {
	tmpl := f.configProvider.Get().Favicon.LargerProvider
	if tmpl == "" {
		return nil, false
	}
	start := time.Now()
	icon, ok := f.try(ctx, ProviderURL(tmpl, domain), header)
	if !ok {
		return nil, false
	}
	icon.Domain = domain
	icon.Origin = OriginLarger
	icon.Elapsed = time.Since(start)
	return icon, true
}

// try accepts only a 200 answer.
func (f *Fallback) try(ctx context.Context, providerURL string, header http.Header) (*Icon, bool) {
	resp, err := f.client.Get(ctx, providerURL, header)
	if err != nil {
		f.logger.Warn("favicon: provider request failed", "provider", providerURL, "error", err)
		f.metrics.observeProvider(providerURL, providerResultError)
		return nil, false
	}
	if resp.StatusCode != http.StatusOK {
		f.logger.Info("favicon: provider answered without icon", "provider", providerURL, "status", resp.StatusCode)
		f.metrics.observeProvider(providerURL, providerResultStatus)
		return nil, false
	}
	f.metrics.observeProvider(providerURL, providerResultOK)

	contentType := resp.ContentType()
	if contentType == "" {
		contentType = defaultProviderContentType
	}
	return &Icon{
		Body:        resp.Body,
		ContentType: contentType,
		URL:         providerURL,
	}, true
}
