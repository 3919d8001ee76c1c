package iconfetch

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caasmo/iconfetch/config"
	"github.com/caasmo/iconfetch/favicon"
	"github.com/caasmo/iconfetch/fetch"
	"github.com/caasmo/iconfetch/router"
	"github.com/caasmo/iconfetch/router/httprouter"
	phuslog "github.com/phuslu/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Option func(*initializer)

// initializer collects what the options set before New fills the gaps
// with defaults.
type initializer struct {
	configProvider *config.Provider
	logger         *slog.Logger
	router         router.Router
	getter         fetch.Getter
	registerer     prometheus.Registerer
	gatherer       prometheus.Gatherer
	faviconMetrics *favicon.Metrics
}

func newInitializer(configProvider *config.Provider, opts ...Option) (*initializer, error) {
	i := &initializer{configProvider: configProvider}
	for _, opt := range opts {
		opt(i)
	}

	if i.logger == nil {
		i.logger = slog.New(phuslog.SlogNewJSONHandler(os.Stderr, DefaultLoggerOptions))
	}
	if i.router == nil {
		i.router = httprouter.New()
	}
	if i.registerer == nil {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		i.registerer = reg
		i.gatherer = reg
	}
	if i.getter == nil {
		client, err := fetch.New(fetch.OptionsFromConfig(configProvider.Get().Fetch), i.logger)
		if err != nil {
			return nil, fmt.Errorf("iconfetch: failed to create outbound client: %w", err)
		}
		i.getter = client
	}
	i.faviconMetrics = favicon.NewMetrics(i.registerer)
	return i, nil
}

// DefaultLoggerOptions logs from debug level and drops the time attribute.
var DefaultLoggerOptions = &slog.HandlerOptions{
	Level: slog.LevelDebug,
	ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	},
}

func WithLogger(l *slog.Logger) Option {
	return func(i *initializer) {
		i.logger = l
	}
}

// WithPhusLogger logs JSON to stderr through phuslu/log's slog handler.
// Uses DefaultLoggerOptions if opts is nil.
func WithPhusLogger(opts *slog.HandlerOptions) Option {
	if opts == nil {
		opts = DefaultLoggerOptions
	}
	return WithLogger(slog.New(phuslog.SlogNewJSONHandler(os.Stderr, opts)))
}

// WithTextLogger logs with the standard library's text handler to stdout.
func WithTextLogger(opts *slog.HandlerOptions) Option {
	if opts == nil {
		opts = DefaultLoggerOptions
	}
	return WithLogger(slog.New(slog.NewTextHandler(os.Stdout, opts)))
}

func WithRouter(r router.Router) Option {
	return func(i *initializer) {
		i.router = r
	}
}

// WithGetter replaces the outbound HTTP client.
func WithGetter(g fetch.Getter) Option {
	return func(i *initializer) {
		i.getter = g
	}
}

// WithRegistry registers every collector with reg and serves it on the
// metrics endpoint. Without it a private registry with the Go and process
// collectors is used.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(i *initializer) {
		i.registerer = reg
		i.gatherer = reg
	}
}
