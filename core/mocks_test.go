package core

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/caasmo/iconfetch/config"
	"github.com/caasmo/iconfetch/download"
	"github.com/caasmo/iconfetch/favicon"
	"github.com/caasmo/iconfetch/router/httprouter"
)

// MockFavicons implements FaviconService with a function field.
type MockFavicons struct {
	LookupFunc func(ctx context.Context, domain string, header http.Header, larger bool) (*favicon.Icon, error)

	gotDomain string
	gotHeader http.Header
	gotLarger bool
}

func (m *MockFavicons) Lookup(ctx context.Context, domain string, header http.Header, larger bool) (*favicon.Icon, error) {
	m.gotDomain, m.gotHeader, m.gotLarger = domain, header, larger
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, domain, header, larger)
	}
	return favicon.Placeholder(domain), nil
}

// MockDownloader implements Downloader with a function field.
type MockDownloader struct {
	DownloadFunc func(ctx context.Context, rawURL string) (*download.File, error)

	gotURL string
}

func (m *MockDownloader) Download(ctx context.Context, rawURL string) (*download.File, error) {
	m.gotURL = rawURL
	if m.DownloadFunc != nil {
		return m.DownloadFunc(ctx, rawURL)
	}
	return &download.File{Body: []byte("png"), ContentType: "image/png", Extension: "png", Filename: "favicon.png"}, nil
}

// newTestApp returns an App with the handlers routed on a real httprouter.
func newTestApp(t *testing.T, favicons FaviconService, downloader Downloader, cfg *config.Config) *App {
	t.Helper()
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	r := httprouter.New()
	app, err := NewApp(
		WithRouter(r),
		WithConfigProvider(config.NewProvider(cfg)),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithFaviconService(favicons),
		WithDownloader(downloader),
	)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	r.HandleFunc("GET /favicon/:domain", app.FaviconHandler)
	r.HandleFunc("GET /download/*url", app.DownloadHandler)
	r.HandleFunc("GET /favicon.ico", OwnFaviconHandler)
	r.NotFound(http.HandlerFunc(NotFoundHandler))
	return app
}
