package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func paneIDs(s *Stack) []NodeID {
	ids := make([]NodeID, 0, len(s.Children))
	for _, p := range s.Children {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestStack_MovePane(t *testing.T) {
	tests := []struct {
		name     string
		pane     NodeID
		to       int
		moved    bool
		expected []NodeID
	}{
		{name: "first to last", pane: "a", to: 2, moved: true, expected: []NodeID{"b", "c", "a"}},
		{name: "last to first", pane: "c", to: 0, moved: true, expected: []NodeID{"c", "a", "b"}},
		{name: "middle to first", pane: "b", to: 0, moved: true, expected: []NodeID{"b", "a", "c"}},
		{name: "same index", pane: "b", to: 1, moved: false, expected: []NodeID{"a", "b", "c"}},
		{name: "clamped high", pane: "a", to: 10, moved: true, expected: []NodeID{"b", "c", "a"}},
		{name: "clamped low", pane: "c", to: -3, moved: true, expected: []NodeID{"c", "a", "b"}},
		{name: "missing pane", pane: "zz", to: 0, moved: false, expected: []NodeID{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStack("s", 1, NewPane("a", "A"), NewPane("b", "B"), NewPane("c", "C"))
			assert.Equal(t, tt.moved, s.MovePane(tt.pane, tt.to))
			assert.Equal(t, tt.expected, paneIDs(s))
			assert.Equal(t, NodeID("a"), s.ActiveID, "active pane must not change on reorder")
		})
	}
}

func TestStack_RemovePane(t *testing.T) {
	s := NewStack("s", 1, NewPane("a", "A"), NewPane("b", "B"))

	removed, ok := s.RemovePane("a")
	assert.True(t, ok)
	assert.Equal(t, NodeID("a"), removed.ID)
	assert.Equal(t, []NodeID{"b"}, paneIDs(s))

	_, ok = s.RemovePane("a")
	assert.False(t, ok)

	s.ResetActive()
	assert.Equal(t, NodeID("b"), s.ActiveID)

	s.RemovePane("b")
	s.ResetActive()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, NodeID(""), s.ActiveID)
	assert.Nil(t, s.ActivePane())
}

func TestBox_InsertAndRemoveChild(t *testing.T) {
	a := NewStack("a", 1)
	b := NewStack("b", 1)
	c := NewStack("c", 1)
	box := NewBox("box", DirectionRow, 1, a, c)

	box.InsertChild(1, b)
	assert.Equal(t, 1, box.IndexOf("b"))
	assert.Equal(t, 2, box.IndexOf("c"))

	removed := box.RemoveChildAt(0)
	assert.Equal(t, NodeID("a"), removed.NodeID())
	assert.Equal(t, -1, box.IndexOf("a"))
	assert.Len(t, box.Children, 2)

	assert.Nil(t, box.RemoveChildAt(5))
}
