package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dockyard/internal/infrastructure/config"
)

func TestStatic(t *testing.T) {
	ctx := context.Background()
	reg := NewStatic([]config.ContentEntry{
		{ID: "welcome", Title: "Welcome", Closable: true, Body: "hi"},
		{ID: "explorer", Closable: false},
		{ID: "welcome", Title: "Shadowed"},
		{ID: ""},
	})

	meta, ok := reg.Lookup(ctx, "welcome")
	assert.True(t, ok)
	assert.Equal(t, "Welcome", meta.Title)
	assert.Equal(t, "hi", meta.Body)

	meta, ok = reg.Lookup(ctx, "explorer")
	assert.True(t, ok)
	assert.Equal(t, "explorer", meta.Title, "title falls back to the id")
	assert.False(t, meta.Closable)

	_, ok = reg.Lookup(ctx, "missing")
	assert.False(t, ok)

	list := reg.List(ctx)
	if assert.Len(t, list, 2) {
		assert.Equal(t, "welcome", list[0].ContentID)
		assert.Equal(t, "explorer", list[1].ContentID)
	}

	reg.Replace(config.DefaultConfig().Content)
	assert.Len(t, reg.List(ctx), 4)
}
