package workspace

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
)

type countingSaver struct {
	mu    sync.Mutex
	marks int
}

func (c *countingSaver) MarkDirty() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.marks++
}

func singleStack() *entity.DockLayout {
	return entity.NewLayout(entity.NewStack("main", 1, entity.NewPane("welcome", "Welcome")))
}

func TestWorkspace_CurrentLayoutIsACopy(t *testing.T) {
	ws := New("default", singleStack())

	copied := ws.CurrentLayout()
	copied.Stacks()[0].AppendPane(entity.NewPane("notes", "Notes"))

	ws.Read(func(s State) {
		assert.Equal(t, 1, s.Layout.PaneCount())
	})
	assert.Equal(t, "default", ws.LayoutName())
}

func TestWorkspace_UpdateMarksDirtyOnlyOnChange(t *testing.T) {
	saver := &countingSaver{}
	ws := New("default", singleStack())
	ws.SetAutosave(saver)

	_, err := ws.Update(func(*State) (*usecase.MutationOutput, error) {
		return &usecase.MutationOutput{Outcome: usecase.OutcomeIgnored}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, saver.marks)
	assert.Equal(t, uint64(0), ws.Version())

	_, err = ws.Update(func(s *State) (*usecase.MutationOutput, error) {
		s.Layout.Stacks()[0].AppendPane(entity.NewPane("notes", "Notes"))
		return &usecase.MutationOutput{Outcome: usecase.OutcomeApplied, Changed: true}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, saver.marks)
	assert.Equal(t, uint64(1), ws.Version())

	boom := errors.New("boom")
	_, err = ws.Update(func(*State) (*usecase.MutationOutput, error) {
		return &usecase.MutationOutput{Changed: true}, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, saver.marks)
}

func TestWorkspace_ReplaceClearsDrag(t *testing.T) {
	ws := New("default", singleStack())
	_, _ = ws.Update(func(s *State) (*usecase.MutationOutput, error) {
		s.Drag = entity.NewPaneDrag("welcome", "main")
		return nil, nil
	})

	ws.Replace(entity.NewLayout(entity.NewStack("other", 1)))

	ws.Read(func(s State) {
		assert.Nil(t, s.Drag)
		assert.NotNil(t, s.Layout.FindStack("other"))
	})
	assert.Equal(t, uint64(1), ws.Version())
}

func TestWorkspace_ArrangeFollowsVersion(t *testing.T) {
	ws := New("default", singleStack())

	var first, again []entity.StackRect
	ws.Read(func(s State) {
		first = s.Arrange(80, 24)
		again = s.Arrange(80, 24)
	})
	require.Len(t, first, 1)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 80, H: 24}, first[0].Rect)
	assert.Same(t, &first[0], &again[0], "same bounds and version hit the cache")

	_, err := ws.Update(func(s *State) (*usecase.MutationOutput, error) {
		s.Layout = entity.NewLayout(entity.NewBox("root", entity.DirectionRow, 1,
			entity.NewStack("left", 1, entity.NewPane("a", "A")),
			entity.NewStack("right", 1, entity.NewPane("b", "B")),
		))
		return &usecase.MutationOutput{Outcome: usecase.OutcomeApplied, Changed: true}, nil
	})
	require.NoError(t, err)

	ws.Read(func(s State) {
		rects := s.Arrange(80, 24)
		require.Len(t, rects, 2)
		assert.Equal(t, entity.NodeID("left"), rects[0].StackID)
	})
}
