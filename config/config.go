package config

import (
	"fmt"
	"os"
	"time"
)

const (
	// EnvEnvironment selects the deployment environment. Only "production"
	// changes behavior (canonical links are emitted with https).
	EnvEnvironment = "ICONFETCH_ENV"

	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"
)

// DomainPlaceholder is substituted with the ASCII domain in provider URL templates.
const DomainPlaceholder = "{domain}"

type Config struct {
	Environment string      `toml:"environment"`
	Server      Server      `toml:"server"`
	Fetch       Fetch       `toml:"fetch"`
	Favicon     Favicon     `toml:"favicon"`
	Download    Download    `toml:"download"`
	Log         Log         `toml:"log"`
	Metrics     Metrics     `toml:"metrics"`
	Maintenance Maintenance `toml:"maintenance"`

	// Source is the file the config was read from, empty for defaults.
	Source string `toml:"-"`
}

type Server struct {
	Addr                    string   `toml:"addr"`
	ShutdownGracefulTimeout Duration `toml:"shutdown_graceful_timeout"`
	ReadTimeout             Duration `toml:"read_timeout"`
	ReadHeaderTimeout       Duration `toml:"read_header_timeout"`
	WriteTimeout            Duration `toml:"write_timeout"`
	IdleTimeout             Duration `toml:"idle_timeout"`

	// ClientIpProxyHeader names the header a trusted reverse proxy uses to
	// carry the client address, e.g. "X-Forwarded-For". Empty means
	// RemoteAddr is used.
	ClientIpProxyHeader string `toml:"client_ip_proxy_header"`
}

// Fetch configures every outbound request: page probes, selected icon
// downloads, provider lookups and the remote downloader.
type Fetch struct {
	// Timeout bounds a single outbound call including redirects and body read.
	Timeout      Duration `toml:"timeout"`
	UserAgent    string   `toml:"user_agent"`
	MaxBodyBytes int64    `toml:"max_body_bytes"`
	MaxRedirects int      `toml:"max_redirects"`
}

type Favicon struct {
	// Providers are tried in order when the domain page declares no icon.
	Providers []string `toml:"providers"`

	// LargerProvider is queried first when the caller asks for the larger
	// icon. Empty disables the short-circuit.
	LargerProvider string `toml:"larger_provider"`

	CacheControl string `toml:"cache_control"`
}

type Download struct {
	// StrictContentType rejects upstream responses whose content type has no
	// known image extension. When false they are served as favicon.bin.
	StrictContentType bool `toml:"strict_content_type"`
}

type Log struct {
	Request LogRequest `toml:"request"`
}

type LogRequest struct {
	Activated bool             `toml:"activated"`
	Limits    LogRequestLimits `toml:"limits"`
}

type LogRequestLimits struct {
	URILength       int `toml:"uri_length"`
	UserAgentLength int `toml:"user_agent_length"`
	RefererLength   int `toml:"referer_length"`
	RemoteIPLength  int `toml:"remote_ip_length"`
}

type Metrics struct {
	// Enabled registers the endpoint at startup, Activated toggles
	// collection at runtime.
	Enabled    bool     `toml:"enabled"`
	Activated  bool     `toml:"activated"`
	Endpoint   string   `toml:"endpoint"`
	AllowedIPs []string `toml:"allowed_ips"`
}

type Maintenance struct {
	Activated bool `toml:"activated"`
}

// Duration wraps time.Duration so it can be written as "5s" in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// CanonicalLink builds an absolute link to pathname on host, using https
// only in production.
func (c *Config) CanonicalLink(host, pathname string) string {
	scheme := "http"
	if c.IsProduction() {
		scheme = "https"
	}
	return scheme + "://" + host + pathname
}

// applyEnv overrides file values with environment variables.
func (c *Config) applyEnv() {
	if env := os.Getenv(EnvEnvironment); env != "" {
		c.Environment = env
	}
}
