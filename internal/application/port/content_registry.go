package port

import "context"

// ContentMeta is the static metadata a content provider declares for the
// panes it renders.
type ContentMeta struct {
	ContentID string
	Title     string
	Closable  bool
	// Body is the placeholder text terminal renderers show for the content.
	Body string
}

// ContentRegistry maps content ids to pane metadata.
type ContentRegistry interface {
	// Lookup returns the metadata for contentID, or false if it is unknown.
	Lookup(ctx context.Context, contentID string) (ContentMeta, bool)
	// List returns every registered entry in registration order.
	List(ctx context.Context) []ContentMeta
}
