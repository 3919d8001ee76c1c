package config

import (
	"sync/atomic"
)

// Provider holds the current configuration. Readers never block; a reload
// swaps the whole pointer so a request sees one consistent Config.
type Provider struct {
	value atomic.Pointer[Config]
}

func NewProvider(cfg *Config) *Provider {
	if cfg == nil {
		panic("config: provider needs a non nil config")
	}
	p := &Provider{}
	p.value.Store(cfg)
	return p
}

// Get returns the current configuration. Callers must treat it as read only.
func (p *Provider) Get() *Config {
	return p.value.Load()
}

func (p *Provider) Update(cfg *Config) {
	if cfg == nil {
		return
	}
	p.value.Store(cfg)
}
