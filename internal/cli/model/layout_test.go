package model

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/app/workspace"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	repomocks "github.com/bnema/dockyard/internal/domain/repository/mocks"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/infrastructure/registry"
)

func sequentialIDs() entity.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("n%d", n)
	}
}

type fixture struct {
	ws    *workspace.Workspace
	repo  *repomocks.MockLayoutRepository
	model *LayoutModel
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	left := entity.NewStack("left", 0.5, entity.NewPane("welcome", "Welcome"), entity.NewPane("readme", "Readme"))
	right := entity.NewStack("right", 0.5, entity.NewPane("notes", "Notes"))
	ws := workspace.New("default", entity.NewLayout(entity.NewBox("root", entity.DirectionRow, 1, left, right)))

	reg := registry.NewStatic([]config.ContentEntry{
		{ID: "welcome", Title: "Welcome", Closable: true, Body: "hello from welcome"},
		{ID: "readme", Title: "Readme", Closable: true},
		{ID: "notes", Title: "Notes", Closable: true},
		{ID: "explorer", Title: "Explorer"},
	})
	newID := sequentialIDs()
	panels := []entity.SidePanel{{
		StackID:   "explorer-panel",
		ContentID: "explorer",
		Title:     "Explorer",
		Position:  entity.PanelStart,
		Direction: entity.DirectionRow,
		Weight:    0.2,
	}}

	layouts := usecase.NewManageLayoutUseCase(newID)
	panes := usecase.NewManagePanesUseCase(reg, newID, panels)
	defaults := usecase.NewDefaultLayoutUseCase(panes, newID, []string{"welcome"}, nil)
	repo := repomocks.NewMockLayoutRepository(t)

	m := NewLayoutModel(context.Background(), nil, Deps{
		Workspace: ws,
		Layouts:   layouts,
		Panes:     panes,
		DragDrop:  usecase.NewDragDropUseCase(layouts, 0.2),
		Persist:   usecase.NewPersistLayoutUseCase(repo, defaults),
		Registry:  reg,
	})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	return &fixture{ws: ws, repo: repo, model: m}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func (f *fixture) press(msgs ...tea.Msg) {
	for _, msg := range msgs {
		f.model.Update(msg)
	}
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestLayoutModel_FocusesFirstStack(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, entity.NodeID("left"), f.model.ActiveStack())
}

func TestLayoutModel_FocusNavigation(t *testing.T) {
	f := newFixture(t)

	f.press(runes("l"))
	assert.Equal(t, entity.NodeID("right"), f.model.ActiveStack())

	f.press(runes("l"))
	assert.Equal(t, entity.NodeID("right"), f.model.ActiveStack(), "no stack further right")

	f.press(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, entity.NodeID("left"), f.model.ActiveStack())
}

func TestLayoutModel_CycleAndMoveTabs(t *testing.T) {
	f := newFixture(t)

	f.press(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, entity.NodeID("readme"), f.ws.CurrentLayout().FindStack("left").ActiveID)

	f.press(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, entity.NodeID("welcome"), f.ws.CurrentLayout().FindStack("left").ActiveID, "cycling wraps")

	f.press(runes(">"))
	left := f.ws.CurrentLayout().FindStack("left")
	assert.Equal(t, entity.NodeID("readme"), left.Children[0].ID)
	assert.Equal(t, entity.NodeID("welcome"), left.Children[1].ID)
}

func TestLayoutModel_SplitFocusesNewStack(t *testing.T) {
	f := newFixture(t)

	f.press(runes("v"))

	layout := f.ws.CurrentLayout()
	assert.Equal(t, 3, layout.StackCount())
	_, stack := layout.FindPane("welcome")
	require.NotNil(t, stack)
	assert.Equal(t, stack.ID, f.model.ActiveStack())
	assert.Contains(t, f.model.Status(), "split")
}

func TestLayoutModel_CloseFallsBackToFirstStack(t *testing.T) {
	f := newFixture(t)

	f.press(runes("l"), runes("x"))

	layout := f.ws.CurrentLayout()
	assert.Nil(t, layout.FindStack("right"))
	assert.Equal(t, entity.NodeID("left"), f.model.ActiveStack())
}

func TestLayoutModel_TogglePanelAndOpen(t *testing.T) {
	f := newFixture(t)

	f.press(runes("1"))
	assert.NotNil(t, f.ws.CurrentLayout().FindStack("explorer-panel"))

	f.press(runes("1"))
	assert.Nil(t, f.ws.CurrentLayout().FindStack("explorer-panel"))

	f.press(runes("2"))
	assert.Contains(t, f.model.Status(), "no side panel 2")

	f.press(runes("o"))
	_, stack := f.ws.CurrentLayout().FindPane("explorer")
	require.NotNil(t, stack)
	assert.Equal(t, entity.NodeID("left"), stack.ID)

	f.press(runes("o"))
	assert.Contains(t, f.model.Status(), "all content is open")
}

func TestLayoutModel_Resize(t *testing.T) {
	f := newFixture(t)

	f.press(runes("+"))
	layout := f.ws.CurrentLayout()
	assert.InDelta(t, 0.55, layout.FindStack("left").Weight, 1e-9)
	assert.InDelta(t, 0.45, layout.FindStack("right").Weight, 1e-9)

	f.press(runes("-"), runes("-"))
	layout = f.ws.CurrentLayout()
	assert.InDelta(t, 0.45, layout.FindStack("left").Weight, 1e-9)
	assert.InDelta(t, 0.55, layout.FindStack("right").Weight, 1e-9)
}

func TestResizedWeights(t *testing.T) {
	box := entity.NewBox("b", entity.DirectionRow, 1,
		entity.NewStack("a", 2, entity.NewPane("x", "X")),
		entity.NewStack("b", 1, entity.NewPane("y", "Y")),
		entity.NewStack("c", 1, entity.NewPane("z", "Z")),
	)

	w := resizedWeights(box, 0, 0.25)
	require.Len(t, w, 3)
	assert.InDelta(t, 3.0, w[0], 1e-9)
	assert.InDelta(t, 0.5, w[1], 1e-9)
	assert.InDelta(t, 0.5, w[2], 1e-9)

	w = resizedWeights(box, 0, 1)
	require.Len(t, w, 3)
	assert.InDelta(t, 3.6, w[0], 1e-9, "clamped so siblings keep a minimum share")

	box.Children[0].SetWeight(18)
	box.Children[1].SetWeight(1)
	box.Children[2].SetWeight(1)
	assert.Nil(t, resizedWeights(box, 0, 0.1), "already at the limit")
	assert.Nil(t, resizedWeights(box, -1, 0.1))
}

func TestLayoutModel_Reset(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Save(mock.Anything, "default", mock.Anything).Return(nil).Once()

	f.press(runes("R"))

	layout := f.ws.CurrentLayout()
	assert.Equal(t, 1, layout.StackCount())
	assert.Equal(t, layout.Stacks()[0].ID, f.model.ActiveStack())
}

func TestLayoutModel_MouseDragsTab(t *testing.T) {
	f := newFixture(t)

	// second row of the left stack is its tab bar, first tab at column 1
	f.press(
		mouse(tea.MouseActionPress, 1, 1),
		mouse(tea.MouseActionMotion, 60, 12),
	)
	var target *entity.DropTarget
	f.ws.Read(func(s workspace.State) {
		require.True(t, s.Drag.Active())
		target = s.Drag.Target
	})
	require.NotNil(t, target)
	assert.Equal(t, entity.NodeID("right"), target.StackID)
	assert.Equal(t, entity.ZoneCenter, target.Zone)

	f.press(mouse(tea.MouseActionRelease, 60, 12))

	layout := f.ws.CurrentLayout()
	_, stack := layout.FindPane("welcome")
	require.NotNil(t, stack)
	assert.Equal(t, entity.NodeID("right"), stack.ID)
	assert.Equal(t, entity.NodeID("right"), f.model.ActiveStack())
	f.ws.Read(func(s workspace.State) { assert.Nil(t, s.Drag) })
}

func TestLayoutModel_MouseDragsStack(t *testing.T) {
	f := newFixture(t)

	f.press(
		mouse(tea.MouseActionPress, 60, 0),
		mouse(tea.MouseActionMotion, 2, 12),
		mouse(tea.MouseActionRelease, 2, 12),
	)

	root, ok := f.ws.CurrentLayout().Root.(*entity.Box)
	require.True(t, ok)
	require.Len(t, root.Children, 2)
	assert.Equal(t, entity.NodeID("right"), root.Children[0].NodeID())
	assert.Equal(t, entity.NodeID("left"), root.Children[1].NodeID())
}

func TestLayoutModel_ClickWithoutMotionOnlyFocuses(t *testing.T) {
	f := newFixture(t)
	before := f.ws.Version()

	f.press(
		mouse(tea.MouseActionPress, 60, 5),
		mouse(tea.MouseActionRelease, 60, 5),
	)

	assert.Equal(t, entity.NodeID("right"), f.model.ActiveStack())
	assert.Equal(t, before, f.ws.Version())
	f.ws.Read(func(s workspace.State) { assert.False(t, s.Drag.Active()) })
}

func TestLayoutModel_EscCancelsDrag(t *testing.T) {
	f := newFixture(t)

	f.press(mouse(tea.MouseActionPress, 60, 0))
	f.ws.Read(func(s workspace.State) { require.True(t, s.Drag.Active()) })

	f.press(tea.KeyMsg{Type: tea.KeyEsc})
	f.ws.Read(func(s workspace.State) { assert.False(t, s.Drag.Active()) })
}

func TestLayoutModel_View(t *testing.T) {
	f := newFixture(t)

	view := f.model.View()
	assert.Contains(t, view, "hello from welcome")
	assert.Contains(t, view, "Notes")
	assert.Contains(t, view, "default")
	assert.Equal(t, 24, len(strings.Split(view, "\n")))

	_, cmd := f.model.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Empty(t, f.model.View())
}
