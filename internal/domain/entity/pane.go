package entity

// DockPane is a leaf of the layout: a single piece of content shown as a tab.
// ContentID is an opaque key resolved by the content registry.
type DockPane struct {
	ID        NodeID
	Title     string
	ContentID string
	Closable  bool
}

// NewPane creates a closable pane whose id and content id are the same.
func NewPane(contentID, title string) *DockPane {
	return &DockPane{
		ID:        NodeID(contentID),
		Title:     title,
		ContentID: contentID,
		Closable:  true,
	}
}

// Stack is a tabbed group of panes. ActiveID is empty when no pane is visible.
type Stack struct {
	ID       NodeID
	Weight   float64
	ActiveID NodeID
	Children []*DockPane
}

// NewStack creates a stack holding the given panes with the first one active.
func NewStack(id NodeID, weight float64, panes ...*DockPane) *Stack {
	s := &Stack{
		ID:       id,
		Weight:   weight,
		Children: panes,
	}
	s.ResetActive()
	return s
}

func (s *Stack) NodeID() NodeID { return s.ID }

func (s *Stack) NodeWeight() float64 { return s.Weight }

func (s *Stack) SetWeight(weight float64) { s.Weight = weight }

func (*Stack) dockNode() {}

// IsEmpty returns true if the stack holds no panes.
func (s *Stack) IsEmpty() bool {
	return len(s.Children) == 0
}

// IndexOf returns the index of the pane with the given id, or -1.
func (s *Stack) IndexOf(id NodeID) int {
	for i, p := range s.Children {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Pane returns the pane with the given id, or nil.
func (s *Stack) Pane(id NodeID) *DockPane {
	if i := s.IndexOf(id); i >= 0 {
		return s.Children[i]
	}
	return nil
}

// ActivePane returns the currently visible pane, or nil.
func (s *Stack) ActivePane() *DockPane {
	if s.ActiveID == "" {
		return nil
	}
	return s.Pane(s.ActiveID)
}

// ActiveIndex returns the index of the active pane, or -1.
func (s *Stack) ActiveIndex() int {
	if s.ActiveID == "" {
		return -1
	}
	return s.IndexOf(s.ActiveID)
}

// ResetActive makes the first pane active, or clears ActiveID when empty.
func (s *Stack) ResetActive() {
	if len(s.Children) == 0 {
		s.ActiveID = ""
		return
	}
	s.ActiveID = s.Children[0].ID
}

// AppendPane adds a pane at the end of the stack and activates it.
func (s *Stack) AppendPane(p *DockPane) {
	s.Children = append(s.Children, p)
	s.ActiveID = p.ID
}

// RemovePane removes the pane with the given id. ActiveID is left untouched;
// callers decide how to reassign it.
func (s *Stack) RemovePane(id NodeID) (*DockPane, bool) {
	i := s.IndexOf(id)
	if i < 0 {
		return nil, false
	}
	removed := s.Children[i]
	panes := make([]*DockPane, 0, len(s.Children)-1)
	panes = append(panes, s.Children[:i]...)
	panes = append(panes, s.Children[i+1:]...)
	s.Children = panes
	return removed, true
}

// MovePane moves the pane with the given id so that it ends up at index to.
// The index is clamped to the stack bounds. Returns false when the pane is
// absent or already at that index.
func (s *Stack) MovePane(id NodeID, to int) bool {
	from := s.IndexOf(id)
	if from < 0 {
		return false
	}
	if to < 0 {
		to = 0
	}
	if to > len(s.Children)-1 {
		to = len(s.Children) - 1
	}
	if from == to {
		return false
	}
	pane := s.Children[from]
	s.Children = append(s.Children[:from], s.Children[from+1:]...)
	s.Children = append(s.Children[:to], append([]*DockPane{pane}, s.Children[to:]...)...)
	return true
}
