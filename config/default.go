package config

import (
	"time"
)

// NewDefaultConfig creates a new Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: EnvironmentDevelopment,
		Server: Server{
			Addr:                    ":8080",
			ShutdownGracefulTimeout: Duration{Duration: 15 * time.Second},
			ReadTimeout:             Duration{Duration: 2 * time.Second},
			ReadHeaderTimeout:       Duration{Duration: 2 * time.Second},
			// a favicon request may chain up to four outbound calls
			WriteTimeout:        Duration{Duration: 30 * time.Second},
			IdleTimeout:         Duration{Duration: 1 * time.Minute},
			ClientIpProxyHeader: "",
		},
		Fetch: Fetch{
			Timeout:      Duration{Duration: 5 * time.Second},
			UserAgent:    "Mozilla/5.0 (compatible; iconfetch/1.0; +https://github.com/caasmo/iconfetch)",
			MaxBodyBytes: 5 * 1024 * 1024,
			MaxRedirects: 10,
		},
		Favicon: Favicon{
			Providers: []string{
				"https://www.google.com/s2/favicons?domain=" + DomainPlaceholder,
				"https://icons.duckduckgo.com/ip3/" + DomainPlaceholder + ".ico",
			},
			LargerProvider: "https://icons.duckduckgo.com/ip3/" + DomainPlaceholder + ".ico",
			CacheControl:   "public, max-age=86400",
		},
		Download: Download{
			StrictContentType: false,
		},
		Log: Log{
			Request: LogRequest{
				Activated: true,
				Limits: LogRequestLimits{
					URILength:       512, // Minimum: 64
					UserAgentLength: 256, // Minimum: 32
					RefererLength:   512, // Minimum: 64
					RemoteIPLength:  64,  // Minimum: 15
				},
			},
		},
		Metrics: Metrics{
			Enabled:    true,
			Activated:  true,
			Endpoint:   "/metrics",
			AllowedIPs: []string{"127.0.0.1", "::1"}, // Only exact IPs allowed, no CIDR ranges
		},
		Maintenance: Maintenance{
			Activated: false,
		},
	}
}
