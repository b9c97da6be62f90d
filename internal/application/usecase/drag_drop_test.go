package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/service"
)

func newDragDrop() *usecase.DragDropUseCase {
	return usecase.NewDragDropUseCase(usecase.NewManageLayoutUseCase(sequentialIDs()), 0)
}

func TestDragDropUseCase_ThresholdFallback(t *testing.T) {
	assert.Equal(t, entity.DefaultEdgeThreshold, newDragDrop().Threshold())
	uc := usecase.NewDragDropUseCase(usecase.NewManageLayoutUseCase(sequentialIDs()), 0.25)
	assert.Equal(t, 0.25, uc.Threshold())
}

func TestDragDropUseCase_PaneDragToEdge(t *testing.T) {
	ctx := context.Background()
	uc := newDragDrop()
	layout := twoStacks()

	session, err := uc.BeginPaneDrag(ctx, nil, layout, "p2")
	require.NoError(t, err)
	assert.Equal(t, "dragging_pane", session.State())
	assert.Equal(t, entity.NodeID("left"), session.SourceStackID)

	_, err = uc.BeginStackDrag(ctx, session, layout, "right")
	assert.ErrorIs(t, err, usecase.ErrDragInProgress)

	rect := entity.Rect{X: 200, Y: 0, W: 200, H: 100}
	target := uc.DragOver(session, usecase.DragOverInput{StackID: "right", Rect: rect, X: 210, Y: 50})
	require.NotNil(t, target)
	assert.Equal(t, entity.ZoneLeft, target.Zone)
	assert.Equal(t, entity.Rect{X: 200, Y: 0, W: 100, H: 100}, target.Indicator)

	out, err := uc.Drop(ctx, session, layout)
	require.NoError(t, err)
	assert.True(t, out.Applied())
	assert.Nil(t, session.Target)

	root := layout.Root.(*entity.Box)
	assert.Equal(t, []entity.NodeID{"left", "n1", "right"}, []entity.NodeID{
		root.Children[0].NodeID(), root.Children[1].NodeID(), root.Children[2].NodeID(),
	})
	assert.NoError(t, usecase.CheckLayout(layout))
}

func TestDragDropUseCase_StackDropOnCenterIsIgnored(t *testing.T) {
	ctx := context.Background()
	uc := newDragDrop()
	layout := twoStacks()
	before := entity.SnapshotFromLayout(layout)

	session, err := uc.BeginStackDrag(ctx, nil, layout, "left")
	require.NoError(t, err)
	assert.Equal(t, "dragging_stack", session.State())

	target := uc.DragOver(session, usecase.DragOverInput{
		StackID: "right",
		Rect:    entity.Rect{X: 0, Y: 0, W: 200, H: 100},
		X:       100, Y: 50,
	})
	assert.Equal(t, entity.ZoneCenter, target.Zone)

	out, err := uc.Drop(ctx, session, layout)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeIgnored, out.Outcome)
	assert.Equal(t, before, entity.SnapshotFromLayout(layout))
}

func TestDragDropUseCase_DragOverPointAndLeave(t *testing.T) {
	ctx := context.Background()
	uc := newDragDrop()
	layout := twoStacks()
	rects := service.ArrangeStacks(layout, 100, 40)

	session, err := uc.BeginStackDrag(ctx, nil, layout, "left")
	require.NoError(t, err)

	target := uc.DragOverPoint(session, rects, 99, 20)
	require.NotNil(t, target)
	assert.Equal(t, entity.NodeID("right"), target.StackID)
	assert.Equal(t, entity.ZoneRight, target.Zone)

	assert.Nil(t, uc.DragOverPoint(session, rects, 500, 500))
	assert.Nil(t, session.Target, "leaving every stack clears the target")

	out, err := uc.Drop(ctx, session, layout)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeIgnored, out.Outcome)
}

func TestDragDropUseCase_Cancel(t *testing.T) {
	ctx := context.Background()
	uc := newDragDrop()
	layout := twoStacks()
	before := entity.SnapshotFromLayout(layout)

	session, err := uc.BeginPaneDrag(ctx, nil, layout, "p1")
	require.NoError(t, err)
	uc.DragOver(session, usecase.DragOverInput{StackID: "right", Rect: entity.Rect{W: 10, H: 10}, X: 5, Y: 5})

	session = uc.Cancel(ctx, session)
	assert.Nil(t, session)
	assert.Equal(t, "idle", session.State())
	assert.Equal(t, before, entity.SnapshotFromLayout(layout))

	next, err := uc.BeginPaneDrag(ctx, session, layout, "p1")
	require.NoError(t, err)
	assert.True(t, next.Active())
}

func TestDragDropUseCase_BeginUnknown(t *testing.T) {
	ctx := context.Background()
	uc := newDragDrop()
	layout := twoStacks()

	_, err := uc.BeginPaneDrag(ctx, nil, layout, "ghost")
	assert.ErrorIs(t, err, entity.ErrNotFound)
	_, err = uc.BeginStackDrag(ctx, nil, layout, "ghost")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
