package config

import (
	"fmt"
	"strings"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionDatabase   = "Database"
	SectionLogging    = "Logging"
	SectionLayout     = "Layout"
	SectionContent    = "Content"
	SectionServer     = "Server"
	SectionAppearance = "Appearance"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 32)
	keys = append(keys, p.getDatabaseKeys()...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getLayoutKeys(defaults)...)
	keys = append(keys, p.getContentKeys()...)
	keys = append(keys, p.getServerKeys(defaults)...)
	keys = append(keys, p.getAppearanceKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getDatabaseKeys() []entity.ConfigKeyInfo {
	dbPath, _ := GetDatabaseFile()
	return []entity.ConfigKeyInfo{
		{
			Key:         "database.path",
			Type:        "string",
			Default:     dbPath,
			Description: "SQLite file layouts are stored in",
			Section:     SectionDatabase,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "disabled"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.log_dir",
			Type:        "string",
			Default:     defaults.Logging.LogDir,
			Description: "Directory for the TUI log file",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_size_mb",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxSizeMB),
			Description: "Rotate the log file past this size (0 disables rotation)",
			Range:       "0+",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_backups",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxBackups),
			Description: "Rotated log files to keep",
			Range:       "0+",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getLayoutKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "layout.name",
			Type:        "string",
			Default:     defaults.Layout.Name,
			Description: "Name the working layout is stored under",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.default_content",
			Type:        "[]string",
			Default:     strings.Join(defaults.Layout.DefaultContent, ","),
			Description: "Content ids opened in the main stack of a fresh layout",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.edge_threshold",
			Type:        "float64",
			Default:     fmt.Sprintf("%g", defaults.Layout.EdgeThreshold),
			Description: "Share of a stack's width or height that counts as an edge drop zone",
			Range:       "0-0.5",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.autosave_interval_ms",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Layout.AutosaveIntervalMs),
			Description: "Debounce delay before a changed layout is saved (0 saves only on exit)",
			Range:       "0+",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.side_panels",
			Type:        "[]table",
			Default:     fmt.Sprintf("%d panels", len(defaults.Layout.SidePanels)),
			Description: "Well-known stacks docked at the start or end of the root box",
			Section:     SectionLayout,
		},
	}
}

func (*SchemaProvider) getContentKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "content",
			Type:        "[]table",
			Default:     "welcome, readme, explorer, console",
			Description: "Content registry: id, title, closable and placeholder body of every pane kind",
			Section:     SectionContent,
		},
	}
}

func (*SchemaProvider) getServerKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "server.listen_addr",
			Type:        "string",
			Default:     defaults.Server.ListenAddr,
			Description: "Address the layout HTTP API listens on",
			Section:     SectionServer,
		},
	}
}

func (*SchemaProvider) getAppearanceKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "appearance.accent_color",
			Type:        "string",
			Default:     defaults.Appearance.AccentColor,
			Description: "Active stack border and tab color (hex)",
			Section:     SectionAppearance,
		},
		{
			Key:         "appearance.border_color",
			Type:        "string",
			Default:     defaults.Appearance.BorderColor,
			Description: "Inactive stack border color (hex)",
			Section:     SectionAppearance,
		},
		{
			Key:         "appearance.muted_color",
			Type:        "string",
			Default:     defaults.Appearance.MutedColor,
			Description: "Inactive tab and hint color (hex)",
			Section:     SectionAppearance,
		},
		{
			Key:         "appearance.drop_color",
			Type:        "string",
			Default:     defaults.Appearance.DropColor,
			Description: "Drop indicator color (hex)",
			Section:     SectionAppearance,
		},
	}
}
