// Package config loads, validates and watches the dockyard configuration.
package config

// Config is the root configuration structure.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	// Layout controls the default tree, drag behavior and autosave.
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout" toml:"layout" json:"layout"`
	// Content is the static content registry: what each content id shows.
	Content    []ContentEntry   `mapstructure:"content" yaml:"content" toml:"content" json:"content"`
	Server     ServerConfig     `mapstructure:"server" yaml:"server" toml:"server" json:"server"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	// Path to the SQLite file. Empty means $XDG_DATA_HOME/dockyard/dockyard.sqlite.
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// LogDir is where the terminal UI writes its log file.
	LogDir     string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups"`
}

// LayoutConfig controls layout behavior.
type LayoutConfig struct {
	// Name of the persisted layout used by the CLI, TUI and server.
	Name string `mapstructure:"name" yaml:"name" toml:"name" json:"name"`
	// DefaultContent lists the content ids opened in a fresh layout.
	DefaultContent []string `mapstructure:"default_content" yaml:"default_content" toml:"default_content" json:"default_content"`
	// EdgeThreshold is the fraction of a stack's size forming each drop edge band.
	EdgeThreshold float64 `mapstructure:"edge_threshold" yaml:"edge_threshold" toml:"edge_threshold" json:"edge_threshold"`
	// AutosaveIntervalMs debounces layout persistence after changes. 0 disables autosave.
	AutosaveIntervalMs int               `mapstructure:"autosave_interval_ms" yaml:"autosave_interval_ms" toml:"autosave_interval_ms" json:"autosave_interval_ms"`
	SidePanels         []SidePanelConfig `mapstructure:"side_panels" yaml:"side_panels" toml:"side_panels" json:"side_panels"`
}

// SidePanelConfig declares a toggleable side panel.
type SidePanelConfig struct {
	ID        string `mapstructure:"id" yaml:"id" toml:"id" json:"id"`
	ContentID string `mapstructure:"content_id" yaml:"content_id" toml:"content_id" json:"content_id"`
	Title     string `mapstructure:"title" yaml:"title" toml:"title" json:"title"`
	// Position is "start" or "end" of the root box.
	Position string `mapstructure:"position" yaml:"position" toml:"position" json:"position" jsonschema:"enum=start,enum=end"`
	// Direction is the root box direction the panel docks along.
	Direction      string  `mapstructure:"direction" yaml:"direction" toml:"direction" json:"direction" jsonschema:"enum=row,enum=column"`
	Weight         float64 `mapstructure:"weight" yaml:"weight" toml:"weight" json:"weight"`
	VisibleOnStart bool    `mapstructure:"visible_on_start" yaml:"visible_on_start" toml:"visible_on_start" json:"visible_on_start"`
}

// ContentEntry registers a piece of content panes can show.
type ContentEntry struct {
	ID       string `mapstructure:"id" yaml:"id" toml:"id" json:"id"`
	Title    string `mapstructure:"title" yaml:"title" toml:"title" json:"title"`
	Closable bool   `mapstructure:"closable" yaml:"closable" toml:"closable" json:"closable"`
	// Body is the text rendered inside the pane by the terminal UI.
	Body string `mapstructure:"body" yaml:"body" toml:"body" json:"body"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	ListenAddr string `mapstructure:"listen_addr" yaml:"listen_addr" toml:"listen_addr" json:"listen_addr"`
}

// AppearanceConfig holds terminal colors as #RRGGBB.
type AppearanceConfig struct {
	AccentColor string `mapstructure:"accent_color" yaml:"accent_color" toml:"accent_color" json:"accent_color"`
	BorderColor string `mapstructure:"border_color" yaml:"border_color" toml:"border_color" json:"border_color"`
	MutedColor  string `mapstructure:"muted_color" yaml:"muted_color" toml:"muted_color" json:"muted_color"`
	DropColor   string `mapstructure:"drop_color" yaml:"drop_color" toml:"drop_color" json:"drop_color"`
}
