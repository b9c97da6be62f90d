package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dockyard/internal/domain/entity"
)

func TestDefaultConfig_Layout(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, entity.DefaultEdgeThreshold, cfg.Layout.EdgeThreshold)

	panels := cfg.Layout.Panels()
	if assert.Len(t, panels, 2) {
		assert.Equal(t, entity.NodeID("explorer-panel"), panels[0].StackID)
		assert.Equal(t, entity.PanelStart, panels[0].Position)
		assert.Equal(t, entity.DirectionRow, panels[0].Direction)
		assert.Equal(t, entity.PanelEnd, panels[1].Position)
	}
	assert.Equal(t, []entity.NodeID{"explorer-panel"}, cfg.Layout.VisiblePanels())
}

func TestSchemaProvider_CoversEveryDefaultSection(t *testing.T) {
	keys := NewSchemaProvider().GetSchema()

	sections := map[string]int{}
	seen := map[string]bool{}
	for _, k := range keys {
		assert.False(t, seen[k.Key], "duplicate key %s", k.Key)
		seen[k.Key] = true
		sections[k.Section]++
	}
	for _, s := range []string{SectionDatabase, SectionLogging, SectionLayout, SectionContent, SectionServer, SectionAppearance} {
		assert.Positive(t, sections[s], "section %s has no keys", s)
	}
	assert.True(t, seen["layout.edge_threshold"])
}
