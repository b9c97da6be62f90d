package port

import "github.com/bnema/dockyard/internal/domain/entity"

// LayoutProvider gives the autosave service read access to the live layout.
// Implemented by whatever owns the layout (TUI model, HTTP server).
type LayoutProvider interface {
	// CurrentLayout returns a copy of the layout that is safe to persist
	// from another goroutine.
	CurrentLayout() *entity.DockLayout
	// LayoutName returns the name the layout is stored under.
	LayoutName() string
}
