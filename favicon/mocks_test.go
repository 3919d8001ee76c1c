package favicon

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	"github.com/caasmo/iconfetch/config"
	"github.com/caasmo/iconfetch/fetch"
)

var errNetwork = errors.New("dial tcp: connection refused")

// fakeRoute is what the fake upstream answers for one URL.
type fakeRoute struct {
	status      int
	contentType string
	body        string
	// finalURL simulates a redirect; defaults to the requested URL.
	finalURL string
	err      error
}

// fakeGetter implements fetch.Getter over a fixed URL table. Unknown URLs
// fail like an unreachable host.
type fakeGetter struct {
	mu      sync.Mutex
	routes  map[string]fakeRoute
	calls   []string
	headers []http.Header
}

func newFakeGetter(routes map[string]fakeRoute) *fakeGetter {
	return &fakeGetter{routes: routes}
}

func (g *fakeGetter) Get(ctx context.Context, rawURL string, header http.Header) (*fetch.Response, error) {
	g.mu.Lock()
	g.calls = append(g.calls, rawURL)
	g.headers = append(g.headers, header)
	route, ok := g.routes[rawURL]
	g.mu.Unlock()

	if !ok {
		return nil, errNetwork
	}
	if route.err != nil {
		return nil, route.err
	}
	final := route.finalURL
	if final == "" {
		final = rawURL
	}
	u, err := url.Parse(final)
	if err != nil {
		return nil, err
	}
	status := route.status
	if status == 0 {
		status = http.StatusOK
	}
	h := http.Header{}
	if route.contentType != "" {
		h.Set("Content-Type", route.contentType)
	}
	return &fetch.Response{
		StatusCode: status,
		StatusText: http.StatusText(status),
		Header:     h,
		URL:        u,
		Body:       []byte(route.body),
	}, nil
}

func (g *fakeGetter) Calls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.calls...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testConfigProvider returns defaults with the given provider templates.
func testConfigProvider(providers []string, larger string) *config.Provider {
	cfg := config.NewDefaultConfig()
	cfg.Favicon.Providers = providers
	cfg.Favicon.LargerProvider = larger
	return config.NewProvider(cfg)
}
