package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "edge threshold too large",
			mutate:  func(c *Config) { c.Layout.EdgeThreshold = 0.5 },
			wantErr: "layout.edge_threshold",
		},
		{
			name:    "edge threshold zero",
			mutate:  func(c *Config) { c.Layout.EdgeThreshold = 0 },
			wantErr: "layout.edge_threshold",
		},
		{
			name:    "negative autosave",
			mutate:  func(c *Config) { c.Layout.AutosaveIntervalMs = -1 },
			wantErr: "layout.autosave_interval_ms",
		},
		{
			name:    "unknown default content",
			mutate:  func(c *Config) { c.Layout.DefaultContent = []string{"nope"} },
			wantErr: `unknown content "nope"`,
		},
		{
			name:    "side panel bad position",
			mutate:  func(c *Config) { c.Layout.SidePanels[0].Position = "middle" },
			wantErr: "layout.side_panels[0].position",
		},
		{
			name:    "side panel duplicate id",
			mutate:  func(c *Config) { c.Layout.SidePanels[1].ID = c.Layout.SidePanels[0].ID },
			wantErr: "is duplicated",
		},
		{
			name:    "side panel zero weight",
			mutate:  func(c *Config) { c.Layout.SidePanels[0].Weight = 0 },
			wantErr: "layout.side_panels[0].weight",
		},
		{
			name:    "duplicate content",
			mutate:  func(c *Config) { c.Content = append(c.Content, c.Content[0]) },
			wantErr: "content[4].id",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "bad listen addr",
			mutate:  func(c *Config) { c.Server.ListenAddr = "localhost" },
			wantErr: "server.listen_addr",
		},
		{
			name:    "bad color",
			mutate:  func(c *Config) { c.Appearance.AccentColor = "blue" },
			wantErr: "appearance.accent_color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = " DEBUG "
	cfg.Logging.Format = "xml"
	cfg.Layout.Name = ""
	cfg.Layout.SidePanels[0].Position = "END"
	cfg.Layout.SidePanels[0].Direction = ""
	cfg.Layout.SidePanels[0].Title = ""

	normalizeConfig(cfg)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "default", cfg.Layout.Name)
	assert.Equal(t, "end", cfg.Layout.SidePanels[0].Position)
	assert.Equal(t, "row", cfg.Layout.SidePanels[0].Direction)
	assert.Equal(t, "explorer", cfg.Layout.SidePanels[0].Title)
}
