// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/scanarr/scanarr/pkg/title"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validCoalesceModes = map[string]bool{
	"path": true, "directory": true,
}

var validServerTypes = []string{"emby", "jellyfin", "plex"}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// Refresh validation
	if c.Refresh.DelaySeconds < 0 {
		errs = append(errs, fmt.Sprintf("refresh.delay_seconds: must be non-negative, got %d", c.Refresh.DelaySeconds))
	}
	if c.Refresh.PaceMs < 0 {
		errs = append(errs, fmt.Sprintf("refresh.pace_ms: must be non-negative, got %d", c.Refresh.PaceMs))
	}
	if c.Refresh.Coalesce != "" && !validCoalesceModes[c.Refresh.Coalesce] {
		errs = append(errs, fmt.Sprintf("refresh.coalesce: must be one of path, directory; got %q", c.Refresh.Coalesce))
	}
	if c.Refresh.Enabled && len(c.Refresh.MediaServers) == 0 {
		errs = append(errs, "refresh.mediaservers: at least one media server must be targeted when refresh is enabled")
	}
	for _, name := range c.Refresh.MediaServers {
		if _, ok := c.MediaServers[name]; !ok {
			errs = append(errs, fmt.Sprintf("refresh.mediaservers: server %q not defined under [mediaservers]", name))
		}
	}

	// Media server validation
	for name, ms := range c.MediaServers {
		if !isValidServerType(ms.Type) {
			msg := fmt.Sprintf("mediaservers.%s.type: must be one of emby, jellyfin, plex; got %q", name, ms.Type)
			if suggestion := title.Suggest(ms.Type, validServerTypes); suggestion != "" {
				msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
			}
			errs = append(errs, msg)
		}
		if ms.URL == "" {
			errs = append(errs, fmt.Sprintf("mediaservers.%s.url: required", name))
		}
		if ms.APIKey == "" {
			errs = append(errs, fmt.Sprintf("mediaservers.%s.api_key: required", name))
		}
		if ms.PathMapping != nil {
			if ms.PathMapping.Local == "" || ms.PathMapping.Remote == "" {
				errs = append(errs, fmt.Sprintf("mediaservers.%s.path_mapping: both local and remote are required", name))
			}
		}
	}

	return errs
}

func isValidServerType(t string) bool {
	for _, v := range validServerTypes {
		if t == v {
			return true
		}
	}
	return false
}
