// Package config loads process-wide settings for the cmd/mostr CLI: the
// default author identity, the relay journal location, and navigation
// defaults (depth, properties, state filter). Precedence mirrors the
// teacher's viper-based walk: project .mostr/config.toml > user config
// dir > home dir, with MOSTR_-prefixed environment variables able to
// override any key.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/xeruf/mostr-go/internal/debug"
)

var v *viper.Viper

// Initialize sets up the viper configuration singleton. Safe to call
// once at process startup; a second call re-runs the discovery walk.
func Initialize() error {
	v = viper.New()
	v.SetConfigType("toml")

	configFileSet := false

	if cwd, err := os.Getwd(); err == nil {
		for dir := cwd; dir != filepath.Dir(dir); dir = filepath.Dir(dir) {
			path := filepath.Join(dir, ".mostr", "config.toml")
			if _, err := os.Stat(path); err == nil {
				v.SetConfigFile(path)
				configFileSet = true
				break
			}
		}
	}

	if !configFileSet {
		if dir, err := os.UserConfigDir(); err == nil {
			path := filepath.Join(dir, "mostr", "config.toml")
			if _, err := os.Stat(path); err == nil {
				v.SetConfigFile(path)
				configFileSet = true
			}
		}
	}

	if !configFileSet {
		if home, err := os.UserHomeDir(); err == nil {
			path := filepath.Join(home, ".mostr", "config.toml")
			if _, err := os.Stat(path); err == nil {
				v.SetConfigFile(path)
				configFileSet = true
			}
		}
	}

	v.SetEnvPrefix("MOSTR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("author", "")
	v.SetDefault("relay.journal", "")
	v.SetDefault("view.depth", 1)
	v.SetDefault("view.state-filter", "Open")
	v.SetDefault("view.properties", []string{"state", "progress", "rtime", "hashtags", "rpath", "desc"})
	v.SetDefault("timeparse.max-future-hours", 6)
	v.SetDefault("plugin.dir", "")

	if configFileSet {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: error reading config file: %w", err)
		}
		debug.Logf("loaded config from %s", v.ConfigFileUsed())
	} else {
		debug.Logf("no config.toml found; using defaults and environment variables")
	}
	return nil
}

// GetString retrieves a string configuration value.
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt retrieves an integer configuration value.
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetStringSlice retrieves a string-slice configuration value.
func GetStringSlice(key string) []string {
	if v == nil {
		return nil
	}
	return v.GetStringSlice(key)
}

// Set overrides a configuration value at runtime, over whatever viper
// loaded. cmd/mostr applies its --depth/--properties flags to the view
// directly and does not call it.
func Set(key string, value interface{}) {
	if v != nil {
		v.Set(key, value)
	}
}
