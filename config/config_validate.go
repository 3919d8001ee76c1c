package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

func Validate(cfg *Config) error {
	if err := validateServer(&cfg.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}
	if err := validateFetch(&cfg.Fetch); err != nil {
		return fmt.Errorf("fetch config validation failed: %w", err)
	}
	if err := validateFavicon(&cfg.Favicon); err != nil {
		return fmt.Errorf("favicon config validation failed: %w", err)
	}
	if err := validateLogRequest(&cfg.Log.Request); err != nil {
		return fmt.Errorf("log config validation failed: %w", err)
	}
	if err := validateMetrics(&cfg.Metrics); err != nil {
		return fmt.Errorf("metrics config validation failed: %w", err)
	}
	switch cfg.Environment {
	case EnvironmentProduction, EnvironmentDevelopment:
	default:
		return fmt.Errorf("unknown environment %q", cfg.Environment)
	}
	return nil
}

// validateServer checks the Server configuration section.
// It ensures the Addr field is not empty and contains a valid host:port or :port format.
// If only a port is provided (e.g., ":8080"), it defaults the host to "localhost".
//
// Allowed formats:
//   - "host:port" (e.g., "example.com:8080", "127.0.0.1:8080", "[::1]:8080")
//   - ":port"     (e.g., ":8080" becomes "localhost:8080")
//
// The port part is mandatory.
func validateServer(server *Server) error {
	if server.Addr == "" {
		return fmt.Errorf("server address (Addr) cannot be empty")
	}

	host, port, err := net.SplitHostPort(server.Addr)
	if err != nil {
		return fmt.Errorf("invalid server address format '%s': %w", server.Addr, err)
	}
	if host == "" {
		host = "localhost"
	}

	if port == "" {
		return fmt.Errorf("server address '%s' must include a port", server.Addr)
	}

	server.Addr = net.JoinHostPort(host, port)

	if _, err := net.LookupPort("tcp", port); err != nil {
		return fmt.Errorf("invalid port '%s' in server address '%s': %w", port, server.Addr, err)
	}

	if server.ShutdownGracefulTimeout.Duration <= 0 {
		return fmt.Errorf("shutdown graceful timeout must be positive")
	}

	return nil
}

func validateFetch(f *Fetch) error {
	if f.Timeout.Duration <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if f.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive")
	}
	if f.MaxRedirects < 0 {
		return fmt.Errorf("max_redirects cannot be negative")
	}
	if strings.TrimSpace(f.UserAgent) == "" {
		return fmt.Errorf("user_agent cannot be empty")
	}
	return nil
}

func validateFavicon(f *Favicon) error {
	for i, p := range f.Providers {
		if err := validateProviderTemplate(p); err != nil {
			return fmt.Errorf("provider %d: %w", i, err)
		}
	}
	if f.LargerProvider != "" {
		if err := validateProviderTemplate(f.LargerProvider); err != nil {
			return fmt.Errorf("larger provider: %w", err)
		}
	}
	if f.CacheControl == "" {
		return fmt.Errorf("cache_control cannot be empty")
	}
	return nil
}

// validateProviderTemplate checks that the template, once filled with a
// domain, is an absolute http(s) URL.
func validateProviderTemplate(tmpl string) error {
	if !strings.Contains(tmpl, DomainPlaceholder) {
		return fmt.Errorf("template %q lacks the %s placeholder", tmpl, DomainPlaceholder)
	}
	u, err := url.Parse(strings.ReplaceAll(tmpl, DomainPlaceholder, "example.com"))
	if err != nil {
		return fmt.Errorf("template %q is not a valid URL: %w", tmpl, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("template %q must use http or https", tmpl)
	}
	if u.Host == "" {
		return fmt.Errorf("template %q has no host", tmpl)
	}
	return nil
}

func validateLogRequest(l *LogRequest) error {
	lim := l.Limits
	switch {
	case lim.URILength < 64:
		return fmt.Errorf("uri_length must be at least 64")
	case lim.UserAgentLength < 32:
		return fmt.Errorf("user_agent_length must be at least 32")
	case lim.RefererLength < 64:
		return fmt.Errorf("referer_length must be at least 64")
	case lim.RemoteIPLength < 15:
		return fmt.Errorf("remote_ip_length must be at least 15")
	}
	return nil
}

func validateMetrics(m *Metrics) error {
	if !m.Enabled {
		return nil
	}
	if !strings.HasPrefix(m.Endpoint, "/") {
		return fmt.Errorf("endpoint %q must start with /", m.Endpoint)
	}
	for _, ip := range m.AllowedIPs {
		if net.ParseIP(ip) == nil {
			return fmt.Errorf("allowed ip %q is not an IP address", ip)
		}
	}
	return nil
}
