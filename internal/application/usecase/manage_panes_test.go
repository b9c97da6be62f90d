package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
)

var (
	explorerPanel = entity.SidePanel{
		StackID:   "explorer-panel",
		ContentID: "explorer",
		Title:     "Explorer",
		Position:  entity.PanelStart,
		Direction: entity.DirectionRow,
		Weight:    0.25,
	}
	consolePanel = entity.SidePanel{
		StackID:   "console-panel",
		ContentID: "console",
		Position:  entity.PanelEnd,
		Direction: entity.DirectionColumn,
		Weight:    0.3,
	}
)

func paneIDs(s *entity.Stack) []entity.NodeID {
	ids := make([]entity.NodeID, 0, len(s.Children))
	for _, p := range s.Children {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestManagePanesUseCase_AddPane(t *testing.T) {
	ctx := context.Background()

	t.Run("uses registry metadata", func(t *testing.T) {
		registry := mocks.NewMockContentRegistry(t)
		registry.EXPECT().Lookup(mock.Anything, "notes").
			Return(port.ContentMeta{ContentID: "notes", Title: "Notes", Closable: false}, true)

		uc := usecase.NewManagePanesUseCase(registry, sequentialIDs(), nil)
		layout := twoStacks()

		out, err := uc.AddPane(ctx, usecase.AddPaneInput{Layout: layout, StackID: "right", ContentID: "notes"})
		require.NoError(t, err)
		assert.True(t, out.Applied())

		right := layout.FindStack("right")
		assert.Equal(t, []entity.NodeID{"p3", "notes"}, paneIDs(right))
		assert.Equal(t, entity.NodeID("notes"), right.ActiveID)
		assert.Equal(t, "Notes", right.ActivePane().Title)
		assert.False(t, right.ActivePane().Closable)
	})

	t.Run("duplicate content is rejected", func(t *testing.T) {
		uc := usecase.NewManagePanesUseCase(mocks.NewMockContentRegistry(t), sequentialIDs(), nil)
		out, err := uc.AddPane(ctx, usecase.AddPaneInput{Layout: twoStacks(), ContentID: "p1"})
		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeRejected, out.Outcome)
	})

	t.Run("unknown stack is not found", func(t *testing.T) {
		uc := usecase.NewManagePanesUseCase(mocks.NewMockContentRegistry(t), sequentialIDs(), nil)
		out, err := uc.AddPane(ctx, usecase.AddPaneInput{Layout: twoStacks(), StackID: "nope", ContentID: "x"})
		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeNotFound, out.Outcome)
	})
}

func TestManagePanesUseCase_ClosePane(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewManagePanesUseCase(nil, sequentialIDs(), nil)

	t.Run("missing pane is a no-op", func(t *testing.T) {
		layout := twoStacks()
		out, err := uc.ClosePane(ctx, usecase.ClosePaneInput{Layout: layout, PaneID: "ghost"})
		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeNotFound, out.Outcome)
		assert.Equal(t, 3, layout.PaneCount())
	})

	t.Run("active tab moves to the first remaining pane", func(t *testing.T) {
		layout := twoStacks()
		left := layout.FindStack("left")
		left.ActiveID = "p2"

		_, err := uc.ClosePane(ctx, usecase.ClosePaneInput{Layout: layout, PaneID: "p2"})
		require.NoError(t, err)
		assert.Equal(t, entity.NodeID("p1"), left.ActiveID)
	})

	t.Run("multi-stack pruning collapses to the survivor", func(t *testing.T) {
		a := entity.NewStack("a", 0.4, entity.NewPane("pa", "A"))
		b := entity.NewStack("b", 0.6, entity.NewPane("pb", "B"))
		layout := entity.NewLayout(entity.NewBox("root", entity.DirectionRow, 1, a, b))

		_, err := uc.ClosePane(ctx, usecase.ClosePaneInput{Layout: layout, PaneID: "pa"})
		require.NoError(t, err)
		assert.Same(t, b, layout.Root)
		assert.Equal(t, 0.6, b.Weight)
	})

	t.Run("single stack is preserved empty", func(t *testing.T) {
		only := entity.NewStack("only", 1, entity.NewPane("p", "P"))
		layout := entity.NewLayout(only)

		_, err := uc.ClosePane(ctx, usecase.ClosePaneInput{Layout: layout, PaneID: "p"})
		require.NoError(t, err)
		assert.Same(t, only, layout.Root)
		assert.Empty(t, only.Children)
		assert.Empty(t, only.ActiveID)
	})

	t.Run("nested collapse", func(t *testing.T) {
		s1 := entity.NewStack("s1", 0.5, entity.NewPane("p1", "P1"))
		s2 := entity.NewStack("s2", 0.5, entity.NewPane("p2", "P2"))
		s3 := entity.NewStack("s3", 0.35, entity.NewPane("p3", "P3"))
		col := entity.NewBox("col", entity.DirectionColumn, 0.65, s1, s2)
		root := entity.NewBox("root", entity.DirectionRow, 1, col, s3)
		layout := entity.NewLayout(root)

		_, err := uc.ClosePane(ctx, usecase.ClosePaneInput{Layout: layout, PaneID: "p1"})
		require.NoError(t, err)
		assert.Same(t, root, layout.Root)
		require.Len(t, root.Children, 2)
		assert.Same(t, s2, root.Children[0])
		assert.Equal(t, 0.65, s2.Weight)
		assert.Same(t, s3, root.Children[1])
	})

	t.Run("non-closable needs force", func(t *testing.T) {
		layout := twoStacks()
		p, _ := layout.FindPane("p3")
		p.Closable = false

		out, err := uc.ClosePane(ctx, usecase.ClosePaneInput{Layout: layout, PaneID: "p3"})
		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeRejected, out.Outcome)

		out, err = uc.ClosePane(ctx, usecase.ClosePaneInput{Layout: layout, PaneID: "p3", Force: true})
		require.NoError(t, err)
		assert.True(t, out.Applied())
	})
}

func TestManagePanesUseCase_ActivatePane(t *testing.T) {
	ctx := context.Background()

	t.Run("existing pane becomes active", func(t *testing.T) {
		uc := usecase.NewManagePanesUseCase(mocks.NewMockContentRegistry(t), sequentialIDs(), nil)
		layout := twoStacks()

		out, err := uc.ActivatePane(ctx, usecase.ActivatePaneInput{Layout: layout, ContentID: "p2"})
		require.NoError(t, err)
		assert.True(t, out.Changed)
		assert.Equal(t, entity.NodeID("p2"), layout.FindStack("left").ActiveID)

		out, err = uc.ActivatePane(ctx, usecase.ActivatePaneInput{Layout: layout, ContentID: "p2"})
		require.NoError(t, err)
		assert.False(t, out.Changed)
	})

	t.Run("new content opens in the biggest stack", func(t *testing.T) {
		registry := mocks.NewMockContentRegistry(t)
		registry.EXPECT().Lookup(mock.Anything, "readme").
			Return(port.ContentMeta{ContentID: "readme", Title: "README", Closable: true}, true)

		uc := usecase.NewManagePanesUseCase(registry, sequentialIDs(), nil)
		layout := twoStacks()
		layout.FindStack("right").Weight = 0.7

		out, err := uc.ActivatePane(ctx, usecase.ActivatePaneInput{Layout: layout, ContentID: "readme"})
		require.NoError(t, err)
		assert.True(t, out.Applied())

		right := layout.FindStack("right")
		assert.Equal(t, entity.NodeID("readme"), right.ActiveID)
		assert.Equal(t, "README", right.ActivePane().Title)
	})

	t.Run("unknown content is not found", func(t *testing.T) {
		registry := mocks.NewMockContentRegistry(t)
		registry.EXPECT().Lookup(mock.Anything, "nope").Return(port.ContentMeta{}, false)

		uc := usecase.NewManagePanesUseCase(registry, sequentialIDs(), nil)
		layout := twoStacks()

		out, err := uc.ActivatePane(ctx, usecase.ActivatePaneInput{Layout: layout, ContentID: "nope"})
		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeNotFound, out.Outcome)
		assert.Equal(t, 3, layout.PaneCount())
	})
}

func TestManagePanesUseCase_ReorderTab(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewManagePanesUseCase(nil, sequentialIDs(), nil)

	abc := func() (*entity.DockLayout, *entity.Stack) {
		s := entity.NewStack("s", 1, entity.NewPane("A", "A"), entity.NewPane("B", "B"), entity.NewPane("C", "C"))
		return entity.NewLayout(s), s
	}

	tests := []struct {
		name     string
		paneID   entity.NodeID
		index    int
		gap      bool
		expected []entity.NodeID
		outcome  usecase.Outcome
	}{
		{name: "first to last", paneID: "A", index: 2, expected: []entity.NodeID{"B", "C", "A"}, outcome: usecase.OutcomeApplied},
		{name: "last to first", paneID: "C", index: 0, expected: []entity.NodeID{"C", "A", "B"}, outcome: usecase.OutcomeApplied},
		{name: "same index", paneID: "B", index: 1, expected: []entity.NodeID{"A", "B", "C"}, outcome: usecase.OutcomeIgnored},
		{name: "absent pane", paneID: "Z", index: 0, expected: []entity.NodeID{"A", "B", "C"}, outcome: usecase.OutcomeNotFound},
		{name: "gap after last", paneID: "A", index: 3, gap: true, expected: []entity.NodeID{"B", "C", "A"}, outcome: usecase.OutcomeApplied},
		{name: "gap before second", paneID: "A", index: 1, gap: true, expected: []entity.NodeID{"A", "B", "C"}, outcome: usecase.OutcomeIgnored},
		{name: "gap before first", paneID: "C", index: 0, gap: true, expected: []entity.NodeID{"C", "A", "B"}, outcome: usecase.OutcomeApplied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, s := abc()
			input := usecase.ReorderTabInput{Layout: layout, StackID: "s", PaneID: tt.paneID, TargetIndex: tt.index}

			var out *usecase.MutationOutput
			var err error
			if tt.gap {
				out, err = uc.ReorderTabToGap(ctx, input)
			} else {
				out, err = uc.ReorderTab(ctx, input)
			}
			require.NoError(t, err)
			assert.Equal(t, tt.outcome, out.Outcome)
			assert.Equal(t, tt.expected, paneIDs(s))
		})
	}
}

func TestManagePanesUseCase_SidePanels(t *testing.T) {
	ctx := context.Background()

	newUC := func(t *testing.T) *usecase.ManagePanesUseCase {
		registry := mocks.NewMockContentRegistry(t)
		registry.EXPECT().Lookup(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, id string) (port.ContentMeta, bool) {
				return port.ContentMeta{ContentID: id, Title: id, Closable: true}, true
			}).Maybe()
		return usecase.NewManagePanesUseCase(registry, sequentialIDs(), []entity.SidePanel{explorerPanel, consolePanel})
	}

	t.Run("toggle shows then hides at the start of the root", func(t *testing.T) {
		uc := newUC(t)
		layout := twoStacks()

		out, err := uc.ToggleSidePanel(ctx, layout, "explorer-panel")
		require.NoError(t, err)
		assert.True(t, out.Applied())
		assert.True(t, uc.PanelVisible(layout, "explorer-panel"))

		root := layout.Root.(*entity.Box)
		assert.Equal(t, entity.NodeID("explorer-panel"), root.Children[0].NodeID())
		assert.Equal(t, "Explorer", layout.FindStack("explorer-panel").ActivePane().Title)
		assert.NoError(t, usecase.CheckLayout(layout))

		_, err = uc.ToggleSidePanel(ctx, layout, "explorer-panel")
		require.NoError(t, err)
		assert.False(t, uc.PanelVisible(layout, "explorer-panel"))
		assert.Nil(t, layout.FindStack("explorer-panel"))
		assert.Len(t, root.Children, 2)
		assert.NoError(t, usecase.CheckLayout(layout))
	})

	t.Run("perpendicular panel wraps the root at the end", func(t *testing.T) {
		uc := newUC(t)
		layout := twoStacks()

		_, err := uc.UpdateVisibility(ctx, layout, "console-panel", true)
		require.NoError(t, err)

		root := layout.Root.(*entity.Box)
		assert.Equal(t, entity.DirectionColumn, root.Direction)
		assert.Equal(t, entity.NodeID("root"), root.Children[0].NodeID())
		assert.Equal(t, entity.NodeID("console-panel"), root.Children[1].NodeID())
		assert.NoError(t, usecase.CheckLayout(layout))
	})

	t.Run("matching state is ignored", func(t *testing.T) {
		uc := newUC(t)
		out, err := uc.UpdateVisibility(ctx, twoStacks(), "console-panel", false)
		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeIgnored, out.Outcome)
	})

	t.Run("unknown panel is not found", func(t *testing.T) {
		uc := newUC(t)
		out, err := uc.ToggleSidePanel(ctx, twoStacks(), "nope")
		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeNotFound, out.Outcome)
	})

	t.Run("panel replaces the placeholder", func(t *testing.T) {
		uc := newUC(t)
		layout := entity.NewLayout(entity.NewStack("main", 1))

		_, err := uc.ToggleSidePanel(ctx, layout, "explorer-panel")
		require.NoError(t, err)
		assert.Equal(t, entity.NodeID("explorer-panel"), layout.Root.NodeID())
		assert.NoError(t, usecase.CheckLayout(layout))

		_, err = uc.ToggleSidePanel(ctx, layout, "explorer-panel")
		require.NoError(t, err)
		assert.Equal(t, 0, layout.PaneCount())
		assert.Equal(t, 1, layout.StackCount())

		_, err = uc.ToggleSidePanel(ctx, layout, "explorer-panel")
		require.NoError(t, err)
		assert.Equal(t, 1, layout.PaneCount())
	})
}
