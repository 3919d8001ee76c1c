package core

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/caasmo/iconfetch/config"
	"github.com/caasmo/iconfetch/router/httprouter"
	"github.com/prometheus/client_golang/prometheus"
)

func TestNewApp(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	provider := config.NewProvider(config.NewDefaultConfig())
	all := []Option{
		WithRouter(httprouter.New()),
		WithConfigProvider(provider),
		WithLogger(logger),
		WithFaviconService(&MockFavicons{}),
		WithDownloader(&MockDownloader{}),
	}

	testCases := []struct {
		name    string
		skip    int
		wantErr string
	}{
		{name: "all set", skip: -1},
		{name: "missing router", skip: 0, wantErr: "router"},
		{name: "missing config", skip: 1, wantErr: "config provider"},
		{name: "missing logger", skip: 2, wantErr: "logger"},
		{name: "missing favicon service", skip: 3, wantErr: "favicon service"},
		{name: "missing downloader", skip: 4, wantErr: "downloader"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var opts []Option
			for i, o := range all {
				if i != tc.skip {
					opts = append(opts, o)
				}
			}
			app, err := NewApp(opts...)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("NewApp() error = %v", err)
				}
				if app.Config() != provider.Get() {
					t.Error("Config() does not return the provider snapshot")
				}
				if app.Gatherer() != prometheus.DefaultGatherer {
					t.Error("Gatherer() should default to the prometheus default gatherer")
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("NewApp() error = %v, want mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestApp_ConfigFollowsProvider(t *testing.T) {
	provider := config.NewProvider(config.NewDefaultConfig())
	app := &App{}
	app.SetConfigProvider(provider)

	next := config.NewDefaultConfig()
	next.Maintenance.Activated = true
	provider.Update(next)

	if !app.Config().Maintenance.Activated {
		t.Error("App.Config() returned a stale snapshot")
	}
}
