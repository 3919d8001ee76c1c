package favicon

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/caasmo/iconfetch/config"
	"github.com/caasmo/iconfetch/fetch"
)

// Service runs the whole pipeline for one domain: the larger short-circuit,
// the page probes and the fallback chain.
type Service struct {
	resolver *Resolver
	fallback *Fallback
	logger   *slog.Logger
	metrics  *Metrics
}

// NewService wires the resolver and fallback over one outbound client.
// metrics may be nil.
func NewService(client fetch.Getter, configProvider *config.Provider, logger *slog.Logger, metrics *Metrics) *Service {
	return &Service{
		resolver: NewResolver(client, logger),
		fallback: NewFallback(client, configProvider, logger, metrics),
		logger:   logger,
		metrics:  metrics,
	}
}

// Lookup returns an icon for a syntactically valid domain or one of two
// errors: ErrInvalidDomain before any network access, or ErrSelectedFetch
// when the page icon was chosen but its download failed. Any other
// failure ends in a provider icon or the placeholder.
func (s *Service) Lookup(ctx context.Context, rawDomain string, header http.Header, larger bool) (*Icon, error) {
	start := time.Now()

	domain, err := NormalizeDomain(rawDomain)
	if err != nil {
		return nil, err
	}

	if larger {
		if icon, ok := s.fallback.Larger(ctx, domain, header); ok {
			return s.served(icon, start), nil
		}
	}

	icon, err := s.resolver.Resolve(ctx, domain, header, larger)
	switch {
	case err == nil:
		return s.served(icon, start), nil
	case errors.Is(err, ErrNoIcons):
		s.logger.Debug("favicon: no icons in page, using providers", "domain", domain)
		return s.served(s.fallback.Fetch(ctx, domain, header), start), nil
	default:
		s.logger.Error("favicon: resolution failed", "domain", domain, "error", err)
		return nil, err
	}
}

func (s *Service) served(icon *Icon, start time.Time) *Icon {
	icon.Elapsed = time.Since(start)
	s.metrics.observeResolution(icon.Origin)
	s.logger.Debug("favicon: icon ready",
		"domain", icon.Domain,
		"origin", string(icon.Origin),
		"url", icon.URL,
		"content_type", icon.ContentType,
		"bytes", len(icon.Body),
		"elapsed", icon.Elapsed.String(),
	)
	return icon
}
