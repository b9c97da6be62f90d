// Package repository defines persistence interfaces for domain entities.
package repository

import (
	"context"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// LayoutRepository persists named dock layouts.
type LayoutRepository interface {
	// Save inserts or replaces the layout stored under name.
	Save(ctx context.Context, name string, layout *entity.DockLayout) error

	// Get returns the layout stored under name, or nil when there is none.
	Get(ctx context.Context, name string) (*entity.DockLayout, error)

	// List returns a summary of every stored layout, most recent first.
	List(ctx context.Context) ([]entity.LayoutInfo, error)

	// Delete removes a stored layout. Deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error
}
