package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// LayoutKeyMap defines keybindings for the layout TUI.
type LayoutKeyMap struct {
	FocusLeft  key.Binding
	FocusRight key.Binding
	FocusUp    key.Binding
	FocusDown  key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	MoveTabL   key.Binding
	MoveTabR   key.Binding
	SplitRight key.Binding
	SplitDown  key.Binding
	Close      key.Binding
	Panel      key.Binding
	Open       key.Binding
	Grow       key.Binding
	Shrink     key.Binding
	Reset      key.Binding
	Cancel     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k LayoutKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.SplitRight, k.Close, k.Panel, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k LayoutKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusLeft, k.FocusRight, k.FocusUp, k.FocusDown},
		{k.NextTab, k.PrevTab, k.MoveTabL, k.MoveTabR},
		{k.SplitRight, k.SplitDown, k.Grow, k.Shrink},
		{k.Close, k.Open, k.Panel, k.Reset},
		{k.Cancel, k.Help, k.Quit},
	}
}

// DefaultLayoutKeyMap returns the default layout keybindings.
func DefaultLayoutKeyMap() LayoutKeyMap {
	return LayoutKeyMap{
		FocusLeft: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "focus left"),
		),
		FocusRight: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "focus right"),
		),
		FocusUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "focus up"),
		),
		FocusDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "focus down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		MoveTabL: key.NewBinding(
			key.WithKeys("<", ","),
			key.WithHelp("<", "move tab left"),
		),
		MoveTabR: key.NewBinding(
			key.WithKeys(">", "."),
			key.WithHelp(">", "move tab right"),
		),
		SplitRight: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "split right"),
		),
		SplitDown: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "split down"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close tab"),
		),
		Panel: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "toggle panel"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open next content"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow stack"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "shrink stack"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset layout"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
