package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/service"
)

func sequentialIDs() entity.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("n%d", n)
	}
}

// twoStacks builds root(row) = [left(p1, p2), right(p3)].
func twoStacks() *entity.DockLayout {
	left := entity.NewStack("left", 0.5, entity.NewPane("p1", "One"), entity.NewPane("p2", "Two"))
	right := entity.NewStack("right", 0.5, entity.NewPane("p3", "Three"))
	return entity.NewLayout(entity.NewBox("root", entity.DirectionRow, 1, left, right))
}

func TestManageLayoutUseCase_Split(t *testing.T) {
	ctx := context.Background()

	t.Run("applies and reports the new stack", func(t *testing.T) {
		uc := usecase.NewManageLayoutUseCase(sequentialIDs())
		layout := twoStacks()

		out, err := uc.Split(ctx, usecase.SplitInput{
			Layout:        layout,
			TargetStackID: "right",
			Pane:          entity.NewPane("p4", "Four"),
			Zone:          entity.ZoneBottom,
		})
		require.NoError(t, err)
		assert.True(t, out.Applied())
		assert.True(t, out.Changed)
		assert.Equal(t, entity.NodeID("n1"), out.NewStackID)
		assert.NotNil(t, layout.FindStack("n1"))
		assert.NoError(t, usecase.CheckLayout(layout))
	})

	t.Run("missing target is not found", func(t *testing.T) {
		uc := usecase.NewManageLayoutUseCase(sequentialIDs())
		out, err := uc.Split(ctx, usecase.SplitInput{
			Layout:        twoStacks(),
			TargetStackID: "gone",
			Pane:          entity.NewPane("p4", "Four"),
			Zone:          entity.ZoneLeft,
		})
		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeNotFound, out.Outcome)
		assert.False(t, out.Changed)
	})

	t.Run("center zone is rejected", func(t *testing.T) {
		uc := usecase.NewManageLayoutUseCase(sequentialIDs())
		out, err := uc.Split(ctx, usecase.SplitInput{
			Layout:        twoStacks(),
			TargetStackID: "left",
			Pane:          entity.NewPane("p4", "Four"),
			Zone:          entity.ZoneCenter,
		})
		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeRejected, out.Outcome)
		assert.NotEmpty(t, out.Reason)
	})

	t.Run("nil layout is an error", func(t *testing.T) {
		uc := usecase.NewManageLayoutUseCase(sequentialIDs())
		_, err := uc.Split(ctx, usecase.SplitInput{})
		assert.ErrorIs(t, err, usecase.ErrLayoutRequired)
	})
}

func TestManageLayoutUseCase_MovePane(t *testing.T) {
	ctx := context.Background()

	t.Run("center appends to target", func(t *testing.T) {
		uc := usecase.NewManageLayoutUseCase(sequentialIDs())
		layout := twoStacks()

		out, err := uc.MovePane(ctx, usecase.MovePaneInput{
			Layout:        layout,
			PaneID:        "p3",
			SourceStackID: "right",
			TargetStackID: "left",
			Zone:          entity.ZoneCenter,
		})
		require.NoError(t, err)
		assert.True(t, out.Applied())

		// right emptied and was pruned, left took over as root
		root, ok := layout.Root.(*entity.Stack)
		require.True(t, ok)
		assert.Equal(t, entity.NodeID("left"), root.ID)
		assert.Equal(t, entity.NodeID("p3"), root.ActiveID)
	})

	t.Run("stale source is not found", func(t *testing.T) {
		uc := usecase.NewManageLayoutUseCase(sequentialIDs())
		layout := twoStacks()

		out, err := uc.MovePane(ctx, usecase.MovePaneInput{
			Layout:        layout,
			PaneID:        "p1",
			SourceStackID: "right",
			TargetStackID: "right",
			Zone:          entity.ZoneCenter,
		})
		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeNotFound, out.Outcome)
		assert.Len(t, layout.FindStack("left").Children, 2)
	})

	t.Run("split reports new stack", func(t *testing.T) {
		uc := usecase.NewManageLayoutUseCase(sequentialIDs())
		layout := twoStacks()

		out, err := uc.MovePane(ctx, usecase.MovePaneInput{
			Layout:        layout,
			PaneID:        "p2",
			TargetStackID: "right",
			Zone:          entity.ZoneTop,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.NodeID("n1"), out.NewStackID)
		assert.NoError(t, usecase.CheckLayout(layout))
	})
}

func TestManageLayoutUseCase_MoveStack(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewManageLayoutUseCase(sequentialIDs())

	layout := twoStacks()
	out, err := uc.MoveStack(ctx, usecase.MoveStackInput{
		Layout:        layout,
		SourceStackID: "left",
		TargetStackID: "right",
		Zone:          entity.ZoneCenter,
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRejected, out.Outcome)

	out, err = uc.MoveStack(ctx, usecase.MoveStackInput{
		Layout:        layout,
		SourceStackID: "left",
		TargetStackID: "right",
		Zone:          entity.ZoneBottom,
	})
	require.NoError(t, err)
	assert.True(t, out.Applied())

	root, ok := layout.Root.(*entity.Box)
	require.True(t, ok)
	assert.Equal(t, entity.DirectionColumn, root.Direction)
	assert.Equal(t, entity.NodeID("right"), root.Children[0].NodeID())
	assert.Equal(t, entity.NodeID("left"), root.Children[1].NodeID())
	assert.NoError(t, usecase.CheckLayout(layout))
}

func TestManageLayoutUseCase_SetWeightsAndCleanup(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewManageLayoutUseCase(sequentialIDs())
	layout := twoStacks()

	out, err := uc.SetWeights(ctx, usecase.SetWeightsInput{Layout: layout, BoxID: "root", Weights: []float64{3, 1}})
	require.NoError(t, err)
	assert.True(t, out.Applied())
	assert.Equal(t, 3.0, layout.FindStack("left").Weight)

	out, err = uc.SetWeights(ctx, usecase.SetWeightsInput{Layout: layout, BoxID: "root", Weights: []float64{-1, 1}})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRejected, out.Outcome)

	out, err = uc.Cleanup(ctx, layout)
	require.NoError(t, err)
	assert.True(t, out.Applied())
	assert.False(t, out.Changed)
}

func TestManageLayoutUseCase_FocusNeighbor(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewManageLayoutUseCase(sequentialIDs())
	layout := twoStacks()

	out, err := uc.FocusNeighbor(ctx, usecase.FocusNeighborInput{
		Layout:        layout,
		ActiveStackID: "left",
		Direction:     service.NavRight,
		Width:         100,
		Height:        40,
	})
	require.NoError(t, err)
	assert.True(t, out.Found)
	assert.Equal(t, entity.NodeID("right"), out.StackID)

	out, err = uc.FocusNeighbor(ctx, usecase.FocusNeighborInput{
		Layout:        layout,
		ActiveStackID: "left",
		Direction:     service.NavLeft,
		Width:         100,
		Height:        40,
	})
	require.NoError(t, err)
	assert.False(t, out.Found)
}
