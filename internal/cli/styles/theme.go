// Package styles provides the lipgloss theme and layout renderers used by
// the CLI and the terminal UI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	// Base colors (from config.AppearanceConfig)
	Accent lipgloss.Color
	Border lipgloss.Color
	Muted  lipgloss.Color
	Drop   lipgloss.Color

	// Additional semantic colors
	Text    lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	// Pre-built styles
	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Tab bar inside a stack
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style

	// Stack frames
	Stack       lipgloss.Style
	ActiveStack lipgloss.Style
	DropStack   lipgloss.Style
	DropLabel   lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// DefaultAppearance returns the built-in colors.
func DefaultAppearance() config.AppearanceConfig {
	return config.DefaultConfig().Appearance
}

// NewTheme creates a Theme from config, falling back to the defaults.
func NewTheme(cfg *config.Config) *Theme {
	if cfg == nil || cfg.Appearance.AccentColor == "" {
		return NewThemeFromAppearance(DefaultAppearance())
	}
	return NewThemeFromAppearance(cfg.Appearance)
}

// NewThemeFromAppearance creates a Theme from the configured colors.
func NewThemeFromAppearance(a config.AppearanceConfig) *Theme {
	t := &Theme{
		Accent: lipgloss.Color(a.AccentColor),
		Border: lipgloss.Color(a.BorderColor),
		Muted:  lipgloss.Color(a.MutedColor),
		Drop:   lipgloss.Color(a.DropColor),

		Text:    lipgloss.Color("#ffffff"),
		Error:   lipgloss.Color("#ef4444"),
		Warning: lipgloss.Color("#f59e0b"),
		Success: lipgloss.Color(a.AccentColor),
	}

	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.ActiveTab = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		Underline(true)

	t.InactiveTab = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Stack = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)

	t.ActiveStack = t.Stack.
		BorderForeground(t.Accent)

	t.DropStack = t.Stack.
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(t.Drop)

	t.DropLabel = lipgloss.NewStyle().
		Foreground(t.Drop).
		Bold(true)

	t.Badge = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#0a0a0b")).
		Background(t.Accent).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Border).
		Padding(0, 1)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)
}
