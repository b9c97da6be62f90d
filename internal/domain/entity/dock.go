// Package entity contains domain entities representing the docking layout.
// These entities are pure Go types with no infrastructure dependencies.
package entity

// NodeID uniquely identifies a box, stack or pane within a layout.
type NodeID string

// Direction indicates how a Box arranges its children.
type Direction string

const (
	DirectionRow    Direction = "row"    // children side by side
	DirectionColumn Direction = "column" // children top to bottom
)

// Valid reports whether d is one of the known directions.
func (d Direction) Valid() bool {
	return d == DirectionRow || d == DirectionColumn
}

// IDGenerator is a function that generates unique IDs.
type IDGenerator func() string

// DockNode is a node of the layout tree. It is either a *Box or a *Stack;
// the unexported marker method keeps the set of variants closed.
type DockNode interface {
	NodeID() NodeID
	NodeWeight() float64
	SetWeight(weight float64)
	dockNode()
}

// Box arranges its children along Direction, each sized by its weight
// relative to its siblings.
type Box struct {
	ID        NodeID
	Weight    float64
	Direction Direction
	Children  []DockNode
}

// NewBox creates a box holding the given children.
func NewBox(id NodeID, dir Direction, weight float64, children ...DockNode) *Box {
	return &Box{
		ID:        id,
		Weight:    weight,
		Direction: dir,
		Children:  children,
	}
}

func (b *Box) NodeID() NodeID { return b.ID }

func (b *Box) NodeWeight() float64 { return b.Weight }

func (b *Box) SetWeight(weight float64) { b.Weight = weight }

func (*Box) dockNode() {}

// IndexOf returns the index of the direct child with the given id, or -1.
func (b *Box) IndexOf(id NodeID) int {
	for i, child := range b.Children {
		if child.NodeID() == id {
			return i
		}
	}
	return -1
}

// InsertChild inserts node at index i, clamping i to the valid range.
func (b *Box) InsertChild(i int, node DockNode) {
	if i < 0 {
		i = 0
	}
	if i > len(b.Children) {
		i = len(b.Children)
	}
	b.Children = append(b.Children, nil)
	copy(b.Children[i+1:], b.Children[i:])
	b.Children[i] = node
}

// RemoveChildAt removes and returns the child at index i.
func (b *Box) RemoveChildAt(i int) DockNode {
	if i < 0 || i >= len(b.Children) {
		return nil
	}
	removed := b.Children[i]
	children := make([]DockNode, 0, len(b.Children)-1)
	children = append(children, b.Children[:i]...)
	children = append(children, b.Children[i+1:]...)
	b.Children = children
	return removed
}
