package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestProvider_GetAndUpdate(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("NewProvider did not panic with nil config")
		}
	}()

	cfg1 := &Config{Server: Server{Addr: ":8080"}}
	provider := NewProvider(cfg1)
	if !reflect.DeepEqual(cfg1, provider.Get()) {
		t.Errorf("Get() got = %v, want %v", provider.Get(), cfg1)
	}

	cfg2 := &Config{Server: Server{Addr: ":9090"}}
	provider.Update(cfg2)
	if !reflect.DeepEqual(cfg2, provider.Get()) {
		t.Errorf("Get() got = %v, want %v", provider.Get(), cfg2)
	}

	provider.Update(nil)
	if provider.Get() != cfg2 {
		t.Errorf("Update(nil) replaced the configuration")
	}

	_ = NewProvider(nil)
}

func TestProvider_Concurrency(t *testing.T) {
	t.Parallel()

	cfg1 := &Config{Server: Server{Addr: ":8080"}}
	cfg2 := &Config{Server: Server{Addr: ":9090"}}
	provider := NewProvider(cfg1)

	var wg sync.WaitGroup
	numGoroutines := 100

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_ = provider.Get()
				return
			}
			if i%4 == 1 {
				provider.Update(cfg2)
			} else {
				provider.Update(cfg1)
			}
		}(i)
	}
	wg.Wait()

	final := provider.Get()
	if final != cfg1 && final != cfg2 {
		t.Errorf("unexpected final config %v", final)
	}
}

func TestDecode_KeepsDefaultsForMissingKeys(t *testing.T) {
	t.Parallel()

	data := []byte(`
[server]
addr = ":9000"

[fetch]
timeout = "2s"

[favicon]
providers = ["https://icons.example.net/{domain}.png"]
`)
	cfg, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if cfg.Server.Addr != "localhost:9000" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, "localhost:9000")
	}
	if cfg.Fetch.Timeout.Duration != 2*time.Second {
		t.Errorf("Fetch.Timeout = %v, want 2s", cfg.Fetch.Timeout.Duration)
	}
	want := []string{"https://icons.example.net/{domain}.png"}
	if !reflect.DeepEqual(cfg.Favicon.Providers, want) {
		t.Errorf("Favicon.Providers = %v, want %v", cfg.Favicon.Providers, want)
	}

	def := NewDefaultConfig()
	if cfg.Favicon.LargerProvider != def.Favicon.LargerProvider {
		t.Errorf("LargerProvider = %q, want default %q", cfg.Favicon.LargerProvider, def.Favicon.LargerProvider)
	}
	if cfg.Fetch.UserAgent != def.Fetch.UserAgent {
		t.Errorf("UserAgent = %q, want default", cfg.Fetch.UserAgent)
	}
	if cfg.Server.WriteTimeout != def.Server.WriteTimeout {
		t.Errorf("WriteTimeout = %v, want default %v", cfg.Server.WriteTimeout, def.Server.WriteTimeout)
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "malformed toml",
			data:    "[server\naddr = 1",
			wantErr: "failed to unmarshal TOML",
		},
		{
			name:    "bad duration",
			data:    "[fetch]\ntimeout = \"soon\"",
			wantErr: "invalid duration",
		},
		{
			name:    "unknown key",
			data:    "[favicon]\nprovidrs = []",
			wantErr: "unknown configuration key",
		},
		{
			name:    "invalid after decode",
			data:    "[fetch]\ntimeout = \"0s\"",
			wantErr: "validation failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.data))
			if err == nil {
				t.Fatalf("Decode() expected error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Decode() error = %q, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[maintenance]\nactivated = true\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if !cfg.Maintenance.Activated {
		t.Errorf("Maintenance.Activated = false, want true")
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}

	_, err = LoadFile(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadFile(missing) error = %v, want ErrConfigNotFound", err)
	}
}

func TestDecode_EnvironmentOverride(t *testing.T) {
	t.Setenv(EnvEnvironment, EnvironmentProduction)

	cfg, err := Decode([]byte(`environment = "development"`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !cfg.IsProduction() {
		t.Errorf("environment = %q, want production from %s", cfg.Environment, EnvEnvironment)
	}
}

func TestCanonicalLink(t *testing.T) {
	t.Parallel()

	cfg := NewDefaultConfig()
	if got := cfg.CanonicalLink("icons.local", "/favicon/example.com"); got != "http://icons.local/favicon/example.com" {
		t.Errorf("development link = %q", got)
	}
	cfg.Environment = EnvironmentProduction
	if got := cfg.CanonicalLink("icons.example", "/favicon/example.com"); got != "https://icons.example/favicon/example.com" {
		t.Errorf("production link = %q", got)
	}
}

func TestWrite_CanBeDecodedAgain(t *testing.T) {
	t.Parallel()

	cfg := NewDefaultConfig()
	cfg.Fetch.Timeout = Duration{Duration: 1500 * time.Millisecond}

	var buf bytes.Buffer
	if err := Write(&buf, cfg); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(buf.String(), `timeout = "1.5s"`) {
		t.Errorf("encoded config lacks the duration as text:\n%s", buf.String())
	}

	decoded, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode(Write()) error = %v", err)
	}
	if decoded.Fetch.Timeout.Duration != 1500*time.Millisecond {
		t.Errorf("Fetch.Timeout = %v, want 1.5s", decoded.Fetch.Timeout.Duration)
	}
}
