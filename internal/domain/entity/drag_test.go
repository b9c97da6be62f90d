package entity_test

import (
	"testing"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestClassifyZone(t *testing.T) {
	rect := entity.Rect{X: 0, Y: 0, W: 200, H: 100}

	tests := []struct {
		name     string
		x, y     float64
		expected entity.DropZone
	}{
		{name: "left band", x: 10, y: 50, expected: entity.ZoneLeft},
		{name: "center", x: 100, y: 50, expected: entity.ZoneCenter},
		{name: "right band", x: 190, y: 50, expected: entity.ZoneRight},
		{name: "top band", x: 100, y: 5, expected: entity.ZoneTop},
		{name: "bottom band", x: 100, y: 95, expected: entity.ZoneBottom},
		{name: "left boundary is center", x: 40, y: 50, expected: entity.ZoneCenter},
		{name: "just inside left", x: 39.9, y: 50, expected: entity.ZoneLeft},
		{name: "corner closer to top", x: 30, y: 2, expected: entity.ZoneTop},
		{name: "corner closer to left", x: 2, y: 15, expected: entity.ZoneLeft},
		{name: "exact corner tie prefers left", x: 20, y: 10, expected: entity.ZoneLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, entity.ClassifyZone(rect, tt.x, tt.y, entity.DefaultEdgeThreshold))
		})
	}
}

func TestClassifyZone_OffsetRectAndFallbacks(t *testing.T) {
	rect := entity.Rect{X: 100, Y: 200, W: 200, H: 100}
	assert.Equal(t, entity.ZoneLeft, entity.ClassifyZone(rect, 110, 250, 0.2))
	assert.Equal(t, entity.ZoneCenter, entity.ClassifyZone(rect, 200, 250, 0.2))

	// invalid thresholds fall back to the default band
	assert.Equal(t, entity.ZoneLeft, entity.ClassifyZone(rect, 110, 250, 0))
	assert.Equal(t, entity.ZoneLeft, entity.ClassifyZone(rect, 110, 250, 0.9))

	assert.Equal(t, entity.ZoneCenter, entity.ClassifyZone(entity.Rect{W: 0, H: 10}, 0, 0, 0.2))
}

func TestIndicatorRect(t *testing.T) {
	rect := entity.Rect{X: 10, Y: 20, W: 200, H: 100}

	assert.Equal(t, entity.Rect{X: 10, Y: 20, W: 100, H: 100}, entity.IndicatorRect(rect, entity.ZoneLeft))
	assert.Equal(t, entity.Rect{X: 110, Y: 20, W: 100, H: 100}, entity.IndicatorRect(rect, entity.ZoneRight))
	assert.Equal(t, entity.Rect{X: 10, Y: 20, W: 200, H: 50}, entity.IndicatorRect(rect, entity.ZoneTop))
	assert.Equal(t, entity.Rect{X: 10, Y: 70, W: 200, H: 50}, entity.IndicatorRect(rect, entity.ZoneBottom))
	assert.Equal(t, rect, entity.IndicatorRect(rect, entity.ZoneCenter))
}

func TestDropZone_SplitMapping(t *testing.T) {
	assert.Equal(t, entity.DirectionRow, entity.ZoneLeft.Direction())
	assert.Equal(t, entity.DirectionRow, entity.ZoneRight.Direction())
	assert.Equal(t, entity.DirectionColumn, entity.ZoneTop.Direction())
	assert.Equal(t, entity.DirectionColumn, entity.ZoneBottom.Direction())

	assert.True(t, entity.ZoneRight.IsAfter())
	assert.True(t, entity.ZoneBottom.IsAfter())
	assert.False(t, entity.ZoneLeft.IsAfter())
	assert.False(t, entity.ZoneTop.IsAfter())

	assert.False(t, entity.ZoneCenter.IsSplit())

	z, ok := entity.ParseDropZone("bottom")
	assert.True(t, ok)
	assert.Equal(t, entity.ZoneBottom, z)
	_, ok = entity.ParseDropZone("middle")
	assert.False(t, ok)
}

func TestDragSession_State(t *testing.T) {
	var idle *entity.DragSession
	assert.False(t, idle.Active())
	assert.Equal(t, "idle", idle.State())

	assert.Equal(t, "dragging_pane", entity.NewPaneDrag("p", "s").State())
	assert.Equal(t, "dragging_stack", entity.NewStackDrag("s").State())
}
