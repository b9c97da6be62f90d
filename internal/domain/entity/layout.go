package entity

// DockLayout is the docking state: a single tree of boxes and stacks.
// The layout is mutated in place by the domain services; callers own it.
type DockLayout struct {
	Root DockNode
}

// NewLayout creates a layout around the given root node.
func NewLayout(root DockNode) *DockLayout {
	return &DockLayout{Root: root}
}

// Walk visits every node depth-first in child order, parents before children.
// Returning false from fn stops descending into that node's children.
func (l *DockLayout) Walk(fn func(node DockNode, parent *Box) bool) {
	if l == nil || l.Root == nil {
		return
	}
	walkNode(l.Root, nil, fn)
}

func walkNode(node DockNode, parent *Box, fn func(DockNode, *Box) bool) {
	if !fn(node, parent) {
		return
	}
	switch n := node.(type) {
	case *Box:
		for _, child := range n.Children {
			walkNode(child, n, fn)
		}
	case *Stack:
	default:
		panic(unknownNode(node))
	}
}

// Lookup returns the node with the given id together with its parent box.
// The parent is nil for the root.
func (l *DockLayout) Lookup(id NodeID) (DockNode, *Box) {
	var (
		found  DockNode
		parent *Box
	)
	l.Walk(func(node DockNode, p *Box) bool {
		if found != nil {
			return false
		}
		if node.NodeID() == id {
			found, parent = node, p
			return false
		}
		return true
	})
	return found, parent
}

// FindParent returns the box directly containing the node with the given id.
func (l *DockLayout) FindParent(id NodeID) *Box {
	_, parent := l.Lookup(id)
	return parent
}

// FindStack returns the stack with the given id, or nil.
func (l *DockLayout) FindStack(id NodeID) *Stack {
	node, _ := l.Lookup(id)
	stack, _ := node.(*Stack)
	return stack
}

// FindPane returns the pane with the given id and the stack holding it.
func (l *DockLayout) FindPane(id NodeID) (*DockPane, *Stack) {
	for _, s := range l.Stacks() {
		if p := s.Pane(id); p != nil {
			return p, s
		}
	}
	return nil, nil
}

// FindPaneByContent returns the first pane showing the given content.
func (l *DockLayout) FindPaneByContent(contentID string) (*DockPane, *Stack) {
	for _, s := range l.Stacks() {
		for _, p := range s.Children {
			if p.ContentID == contentID {
				return p, s
			}
		}
	}
	return nil, nil
}

// Stacks returns every stack in depth-first order.
func (l *DockLayout) Stacks() []*Stack {
	var stacks []*Stack
	l.Walk(func(node DockNode, _ *Box) bool {
		if s, ok := node.(*Stack); ok {
			stacks = append(stacks, s)
		}
		return true
	})
	return stacks
}

// StackCount returns the number of stacks in the layout.
func (l *DockLayout) StackCount() int {
	return len(l.Stacks())
}

// PaneCount returns the number of panes in the layout.
func (l *DockLayout) PaneCount() int {
	count := 0
	for _, s := range l.Stacks() {
		count += len(s.Children)
	}
	return count
}

// AllPanes returns every pane in depth-first, tab order.
func (l *DockLayout) AllPanes() []*DockPane {
	var panes []*DockPane
	for _, s := range l.Stacks() {
		panes = append(panes, s.Children...)
	}
	return panes
}

// BiggestStack returns the stack with the largest weight. Ties go to the
// first stack in depth-first order. Returns nil when there are no stacks.
func (l *DockLayout) BiggestStack() *Stack {
	var best *Stack
	for _, s := range l.Stacks() {
		if best == nil || s.Weight > best.Weight {
			best = s
		}
	}
	return best
}

// Contains reports whether any node or pane uses the given id.
func (l *DockLayout) Contains(id NodeID) bool {
	if node, _ := l.Lookup(id); node != nil {
		return true
	}
	p, _ := l.FindPane(id)
	return p != nil
}

// Clone returns a deep copy of the layout.
func (l *DockLayout) Clone() *DockLayout {
	if l == nil {
		return nil
	}
	if l.Root == nil {
		return &DockLayout{}
	}
	return &DockLayout{Root: cloneNode(l.Root)}
}

func cloneNode(node DockNode) DockNode {
	switch n := node.(type) {
	case *Box:
		children := make([]DockNode, len(n.Children))
		for i, child := range n.Children {
			children[i] = cloneNode(child)
		}
		return &Box{ID: n.ID, Weight: n.Weight, Direction: n.Direction, Children: children}
	case *Stack:
		panes := make([]*DockPane, len(n.Children))
		for i, p := range n.Children {
			cp := *p
			panes[i] = &cp
		}
		return &Stack{ID: n.ID, Weight: n.Weight, ActiveID: n.ActiveID, Children: panes}
	default:
		panic(unknownNode(node))
	}
}
