package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	// explicit is set when the config file path was given by the user.
	explicit bool
}

// NewManager creates a manager reading config.toml from the XDG config
// directory, or the current directory during development.
func NewManager() (*Manager, error) {
	v := newViper()

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	if err := bindEnv(v); err != nil {
		return nil, err
	}
	return &Manager{viper: v}, nil
}

// NewManagerWithFile creates a manager bound to an explicit config file.
// The file is not created when missing; defaults apply instead.
func NewManagerWithFile(path string) (*Manager, error) {
	v := newViper()
	v.SetConfigFile(path)
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "" {
		v.SetConfigType("toml")
	}
	if err := bindEnv(v); err != nil {
		return nil, err
	}
	return &Manager{viper: v, explicit: true}, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("DOCKYARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// bindEnv binds the env vars whose names do not follow the key path.
func bindEnv(v *viper.Viper) error {
	if err := v.BindEnv("logging.level", "DOCKYARD_LOG_LEVEL"); err != nil {
		return fmt.Errorf("failed to bind DOCKYARD_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DOCKYARD_LOG_FORMAT"); err != nil {
		return fmt.Errorf("failed to bind DOCKYARD_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("server.listen_addr", "DOCKYARD_LISTEN_ADDR"); err != nil {
		return fmt.Errorf("failed to bind DOCKYARD_LISTEN_ADDR: %w", err)
	}
	return nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.explicit {
		if err := EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.apply()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
	switch {
	case m.explicit && missing:
		return nil
	case missing:
		if createErr := m.createDefaultConfig(); createErr != nil {
			configDir, _ := GetConfigDir()
			return fmt.Errorf("failed to create default config at %s: %w\nTry creating the directory manually or check permissions", configDir, createErr)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
		return nil
	default:
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions",
			m.viper.ConfigFileUsed(), err)
	}
}

// apply unmarshals, normalizes and validates the current viper state.
// Must be called with m.mu held for write.
func (m *Manager) apply() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(), err)
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	m.config = config
	return nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}

	if config.Layout.Name == "" {
		config.Layout.Name = defaultLayoutName
	}
	for i := range config.Layout.SidePanels {
		p := &config.Layout.SidePanels[i]
		p.Position = strings.ToLower(p.Position)
		if p.Position == "" {
			p.Position = "start"
		}
		p.Direction = strings.ToLower(p.Direction)
		if p.Direction == "" {
			p.Direction = "row"
		}
		if p.Title == "" {
			p.Title = p.ContentID
		}
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the built-in defaults to the XDG config file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := WriteConfigFile(DefaultConfig(), configFile, false); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("database.path", defaults.Database.Path)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	m.viper.SetDefault("layout.name", defaults.Layout.Name)
	m.viper.SetDefault("layout.default_content", defaults.Layout.DefaultContent)
	m.viper.SetDefault("layout.edge_threshold", defaults.Layout.EdgeThreshold)
	m.viper.SetDefault("layout.autosave_interval_ms", defaults.Layout.AutosaveIntervalMs)
	m.viper.SetDefault("layout.side_panels", defaults.Layout.SidePanels)

	m.viper.SetDefault("content", defaults.Content)

	m.viper.SetDefault("server.listen_addr", defaults.Server.ListenAddr)

	m.viper.SetDefault("appearance.accent_color", defaults.Appearance.AccentColor)
	m.viper.SetDefault("appearance.border_color", defaults.Appearance.BorderColor)
	m.viper.SetDefault("appearance.muted_color", defaults.Appearance.MutedColor)
	m.viper.SetDefault("appearance.drop_color", defaults.Appearance.DropColor)
}
