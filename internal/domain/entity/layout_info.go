package entity

import "time"

// LayoutInfo summarizes a stored layout without decoding its tree.
type LayoutInfo struct {
	Name       string    `json:"name"`
	StackCount int       `json:"stack_count"`
	PaneCount  int       `json:"pane_count"`
	Version    int       `json:"version"`
	UpdatedAt  time.Time `json:"updated_at"`
}
