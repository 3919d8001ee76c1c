package prerouter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/caasmo/iconfetch/config"
	"github.com/caasmo/iconfetch/core"
)

// mockNextHandler is a simple http.Handler that records if it was called.
type mockNextHandler struct {
	called bool
	status int
}

func (m *mockNextHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.called = true
	status := m.status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = w.Write([]byte("ok"))
}

// memoryHandler is a slog.Handler writing JSON records to a buffer.
type memoryHandler struct {
	b *bytes.Buffer
	h slog.Handler
}

func newMemoryHandler(b *bytes.Buffer) *memoryHandler {
	return &memoryHandler{b: b, h: slog.NewJSONHandler(b, nil)}
}

func (h *memoryHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

func (h *memoryHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.h.Handle(ctx, r)
}

func (h *memoryHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &memoryHandler{b: h.b, h: h.h.WithAttrs(attrs)}
}

func (h *memoryHandler) WithGroup(name string) slog.Handler {
	return &memoryHandler{b: h.b, h: h.h.WithGroup(name)}
}

// LastRecord parses the buffer, which must hold exactly one record.
func (h *memoryHandler) LastRecord() (map[string]interface{}, error) {
	var record map[string]interface{}
	err := json.Unmarshal(h.b.Bytes(), &record)
	return record, err
}

// newMockApp returns an App carrying only a config and a logger, which is
// all the prerouter middlewares use.
func newMockApp(cfg *config.Config, logger *slog.Logger) *core.App {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	app := &core.App{}
	app.SetConfigProvider(config.NewProvider(cfg))
	app.SetLogger(logger)
	return app
}
