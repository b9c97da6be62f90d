// Package registry provides the content registry backed by configuration.
package registry

import (
	"context"
	"sync"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

// Static is a content registry built from the [[content]] config entries.
// It can be refreshed when the config file changes.
type Static struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]port.ContentMeta
}

var _ port.ContentRegistry = (*Static)(nil)

// NewStatic creates a registry holding the given config entries.
func NewStatic(entries []config.ContentEntry) *Static {
	s := &Static{}
	s.Replace(entries)
	return s
}

// Replace swaps the registry contents. Later duplicates of an id are ignored.
func (s *Static) Replace(entries []config.ContentEntry) {
	order := make([]string, 0, len(entries))
	byID := make(map[string]port.ContentMeta, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			continue
		}
		if _, dup := byID[e.ID]; dup {
			continue
		}
		title := e.Title
		if title == "" {
			title = e.ID
		}
		byID[e.ID] = port.ContentMeta{
			ContentID: e.ID,
			Title:     title,
			Closable:  e.Closable,
			Body:      e.Body,
		}
		order = append(order, e.ID)
	}

	s.mu.Lock()
	s.order = order
	s.entries = byID
	s.mu.Unlock()
}

// Lookup implements port.ContentRegistry.
func (s *Static) Lookup(_ context.Context, contentID string) (port.ContentMeta, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meta, ok := s.entries[contentID]
	return meta, ok
}

// List implements port.ContentRegistry.
func (s *Static) List(_ context.Context) []port.ContentMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]port.ContentMeta, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entries[id])
	}
	return out
}
