// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server       ServerConfig                 `toml:"server"`
	Database     DatabaseConfig               `toml:"database"`
	Refresh      RefreshConfig                `toml:"refresh"`
	MediaServers map[string]MediaServerConfig `toml:"mediaservers"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

// RefreshConfig controls the debounce-and-dispatch engine.
type RefreshConfig struct {
	Enabled      bool     `toml:"enabled"`
	DelaySeconds int      `toml:"delay_seconds"` // 0 = dispatch immediately, no debounce
	Coalesce     string   `toml:"coalesce"`      // "path" or "directory"
	PaceMs       int      `toml:"pace_ms"`       // pause between item-scoped refresh calls
	MediaServers []string `toml:"mediaservers"`  // configured server names to target

	// LibraryFallback controls whether servers without item-scoped refresh
	// get a whole-library refresh instead of being skipped. Defaults to true.
	LibraryFallback *bool `toml:"library_fallback"`
}

// FallbackEnabled returns the whole-library fallback policy, defaulting to true.
func (r RefreshConfig) FallbackEnabled() bool {
	if r.LibraryFallback == nil {
		return true
	}
	return *r.LibraryFallback
}

// MediaServerConfig describes one external media server.
type MediaServerConfig struct {
	Type        string             `toml:"type"` // emby, jellyfin, plex
	URL         string             `toml:"url"`
	APIKey      string             `toml:"api_key"` // Plex token for type = "plex"
	PathMapping *PathMappingConfig `toml:"path_mapping"`
}

// PathMappingConfig translates local paths to the paths the server sees
// (e.g. for Docker volume mounts).
type PathMappingConfig struct {
	Local  string `toml:"local"`
	Remote string `toml:"remote"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8787
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./data/scanarr.db"
	}
	if cfg.Refresh.Coalesce == "" {
		cfg.Refresh.Coalesce = "path"
	}
	if cfg.Refresh.PaceMs == 0 {
		cfg.Refresh.PaceMs = 500
	}

	return &cfg, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
