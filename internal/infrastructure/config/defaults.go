package config

import "github.com/bnema/dockyard/internal/domain/entity"

// Default configuration constants
const (
	defaultLayoutName         = "default"
	defaultAutosaveIntervalMs = 1000
	defaultListenAddr         = "127.0.0.1:7878"

	// Logging defaults
	defaultLogLevel   = "info"
	defaultLogFormat  = "console"
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3

	// Appearance defaults
	defaultAccentColor = "#7AA2F7"
	defaultBorderColor = "#3B4261"
	defaultMutedColor  = "#565F89"
	defaultDropColor   = "#E0AF68"
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			LogDir:     getDefaultLogDir(),
			MaxSizeMB:  defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
		},
		Layout: LayoutConfig{
			Name:               defaultLayoutName,
			DefaultContent:     []string{"welcome", "readme"},
			EdgeThreshold:      entity.DefaultEdgeThreshold,
			AutosaveIntervalMs: defaultAutosaveIntervalMs,
			SidePanels: []SidePanelConfig{
				{
					ID:             "explorer-panel",
					ContentID:      "explorer",
					Title:          "Explorer",
					Position:       string(entity.PanelStart),
					Direction:      string(entity.DirectionRow),
					Weight:         0.25,
					VisibleOnStart: true,
				},
				{
					ID:        "console-panel",
					ContentID: "console",
					Title:     "Console",
					Position:  string(entity.PanelEnd),
					Direction: string(entity.DirectionColumn),
					Weight:    0.3,
				},
			},
		},
		Content: []ContentEntry{
			{ID: "welcome", Title: "Welcome", Closable: true, Body: "Drag tabs onto the edges of a stack to split it."},
			{ID: "readme", Title: "README", Closable: true, Body: "dockyard arranges panes in boxes and tabbed stacks."},
			{ID: "explorer", Title: "Explorer", Closable: false, Body: "src/\n  main.go\n  layout.go"},
			{ID: "console", Title: "Console", Closable: true, Body: "$ "},
		},
		Server: ServerConfig{ListenAddr: defaultListenAddr},
		Appearance: AppearanceConfig{
			AccentColor: defaultAccentColor,
			BorderColor: defaultBorderColor,
			MutedColor:  defaultMutedColor,
			DropColor:   defaultDropColor,
		},
	}
}
