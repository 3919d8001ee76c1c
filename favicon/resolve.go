package favicon

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/caasmo/iconfetch/fetch"
)

const defaultIconContentType = "image/png"

// Resolver finds the icon a domain declares in its own markup.
type Resolver struct {
	extractor *Extractor
	client    fetch.Getter
	logger    *slog.Logger
}

func NewResolver(client fetch.Getter, logger *slog.Logger) *Resolver {
	return &Resolver{
		extractor: NewExtractor(client, logger),
		client:    client,
		logger:    logger,
	}
}

// Probe runs the http probe and, when it yields no icons, the https probe.
// Plain http goes first: legacy sites may only serve http while most
// others redirect to https anyway. The returned result is the last probe
// made.
func (r *Resolver) Probe(ctx context.Context, domain string, header http.Header) ResolutionResult {
	var result ResolutionResult
	for _, scheme := range []string{"http", "https"} {
		result = r.extractor.Extract(ctx, scheme+"://"+domain, header)
		if len(result.Icons) > 0 {
			return result
		}
		if result.Outcome == OutcomeFailed {
			r.logger.Info("favicon: probe failed, trying next", "domain", domain, "scheme", scheme, "error", result.Err)
		}
	}
	return result
}

// Resolve returns the page icon of domain. ErrNoIcons signals that the page
// declares nothing and the caller should use the fallback providers.
// ErrSelectedFetch means an icon was chosen but could not be downloaded.
func (r *Resolver) Resolve(ctx context.Context, domain string, header http.Header, preferLarger bool) (*Icon, error) {
	if !ValidDomain(domain) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDomain, domain)
	}
	start := time.Now()

	result := r.Probe(ctx, domain, header)
	selected, ok := Select(result.Icons, preferLarger)
	if !ok {
		return nil, ErrNoIcons
	}

	r.logger.Debug("favicon: icon selected",
		"domain", domain,
		"href", selected.Href,
		"sizes", selected.Sizes,
		"candidates", len(result.Icons),
		"prefer_larger", preferLarger,
	)

	resp, err := r.client.Get(ctx, selected.Href, header)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSelectedFetch, selected.Href, err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("%w: %s: status %d", ErrSelectedFetch, selected.Href, resp.StatusCode)
	}

	contentType := resp.ContentType()
	if contentType == "" {
		contentType = defaultIconContentType
	}

	return &Icon{
		Domain:      domain,
		Body:        resp.Body,
		ContentType: contentType,
		Origin:      OriginPage,
		URL:         selected.Href,
		Candidates:  result.Icons,
		Selected:    selected,
		Elapsed:     time.Since(start),
	}, nil
}
