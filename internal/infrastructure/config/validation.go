package config

import (
	"fmt"
	"net"
	"strings"

	domainvalidation "github.com/bnema/dockyard/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateContent(config)...)
	validationErrors = append(validationErrors, validateServer(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	layout := config.Layout

	if layout.EdgeThreshold <= 0 || layout.EdgeThreshold >= 0.5 {
		validationErrors = append(validationErrors, "layout.edge_threshold must be between 0 and 0.5 (exclusive)")
	}
	if layout.AutosaveIntervalMs < 0 {
		validationErrors = append(validationErrors, "layout.autosave_interval_ms must be non-negative")
	}

	known := contentIDs(config)
	for _, id := range layout.DefaultContent {
		if !known[id] {
			validationErrors = append(validationErrors, fmt.Sprintf("layout.default_content references unknown content %q", id))
		}
	}

	ids := make(map[string]bool)
	for i, p := range layout.SidePanels {
		field := fmt.Sprintf("layout.side_panels[%d]", i)
		if p.ID == "" {
			validationErrors = append(validationErrors, field+".id cannot be empty")
		} else if ids[p.ID] {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.id %q is duplicated", field, p.ID))
		}
		ids[p.ID] = true
		if !known[p.ContentID] {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.content_id references unknown content %q", field, p.ContentID))
		}
		if p.Position != "start" && p.Position != "end" {
			validationErrors = append(validationErrors, field+".position must be start or end")
		}
		if p.Direction != "row" && p.Direction != "column" {
			validationErrors = append(validationErrors, field+".direction must be row or column")
		}
		if p.Weight <= 0 {
			validationErrors = append(validationErrors, field+".weight must be positive")
		}
	}
	return validationErrors
}

func validateContent(config *Config) []string {
	var validationErrors []string
	seen := make(map[string]bool)
	for i, c := range config.Content {
		field := fmt.Sprintf("content[%d]", i)
		if strings.TrimSpace(c.ID) == "" {
			validationErrors = append(validationErrors, field+".id cannot be empty")
			continue
		}
		if seen[c.ID] {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.id %q is duplicated", field, c.ID))
		}
		seen[c.ID] = true
	}
	return validationErrors
}

func validateServer(config *Config) []string {
	if config.Server.ListenAddr == "" {
		return nil
	}
	if _, _, err := net.SplitHostPort(config.Server.ListenAddr); err != nil {
		return []string{fmt.Sprintf("server.listen_addr must be host:port (%v)", err)}
	}
	return nil
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	colors := map[string]string{
		"appearance.accent_color": config.Appearance.AccentColor,
		"appearance.border_color": config.Appearance.BorderColor,
		"appearance.muted_color":  config.Appearance.MutedColor,
		"appearance.drop_color":   config.Appearance.DropColor,
	}
	for _, field := range []string{
		"appearance.accent_color", "appearance.border_color", "appearance.muted_color", "appearance.drop_color",
	} {
		if !domainvalidation.IsHexColor(colors[field]) {
			validationErrors = append(validationErrors, field+" must be a hex color like #RRGGBB")
		}
	}
	return validationErrors
}

func contentIDs(config *Config) map[string]bool {
	ids := make(map[string]bool, len(config.Content))
	for _, c := range config.Content {
		ids[c.ID] = true
	}
	return ids
}
