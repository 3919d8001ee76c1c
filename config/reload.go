package config

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"
)

// restartFields are only read at startup; changing them in a reload has
// no effect until the process restarts.
var restartFields = []string{
	"Server.Addr",
	"Server.ReadTimeout",
	"Server.ReadHeaderTimeout",
	"Server.WriteTimeout",
	"Server.IdleTimeout",
	"Fetch.Timeout",
	"Fetch.UserAgent",
	"Fetch.MaxBodyBytes",
	"Fetch.MaxRedirects",
	"Metrics.Enabled",
	"Metrics.Endpoint",
}

// Reload re-reads the config file the provider was loaded from and swaps it
// in. The old configuration stays active when the new one fails to load.
func Reload(provider *Provider, logger *slog.Logger) error {
	current := provider.Get()
	if current.Source == "" {
		logger.Info("Reload: configuration has no source file, nothing to reload")
		return nil
	}

	logger.Debug("Reload: reading configuration", "path", current.Source)
	newCfg, err := LoadFile(current.Source)
	if err != nil {
		logger.Error("Reload: failed to load configuration", "path", current.Source, "error", err)
		return fmt.Errorf("reload: %w", err)
	}

	if changed := checkChangedRestartFields(current, newCfg); len(changed) > 0 {
		logger.Warn("Reload: fields changed that need a restart to take effect", "fields", changed)
	}

	provider.Update(newCfg)
	logger.Info("Reload: configuration successfully reloaded", "path", current.Source)
	return nil
}

// checkChangedRestartFields returns the restart only fields whose values
// differ between the two configurations.
func checkChangedRestartFields(oldCfg, newCfg *Config) []string {
	changed := []string{}
	oldV := reflect.ValueOf(oldCfg).Elem()
	newV := reflect.ValueOf(newCfg).Elem()
	for _, path := range restartFields {
		o, okOld := fieldByPath(oldV, path)
		n, okNew := fieldByPath(newV, path)
		if !okOld || !okNew {
			continue
		}
		if !reflect.DeepEqual(o.Interface(), n.Interface()) {
			changed = append(changed, path)
		}
	}
	return changed
}

func fieldByPath(v reflect.Value, path string) (reflect.Value, bool) {
	for _, name := range strings.Split(path, ".") {
		v = v.FieldByName(name)
		if !v.IsValid() {
			return reflect.Value{}, false
		}
	}
	return v, true
}
