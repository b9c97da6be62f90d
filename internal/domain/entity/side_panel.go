package entity

// PanelPosition is where a side panel sits in the root box.
type PanelPosition string

const (
	PanelStart PanelPosition = "start" // first child of the root box
	PanelEnd   PanelPosition = "end"   // last child of the root box
)

// SidePanel describes a well-known stack that can be shown or hidden as a
// whole, such as a file explorer or an output console.
type SidePanel struct {
	// StackID is the fixed id of the panel's stack.
	StackID   NodeID
	ContentID string
	Title     string
	Position  PanelPosition
	// Direction is the root box direction the panel docks along.
	Direction Direction
	Weight    float64
}

// PaneID returns the id of the single pane the panel hosts.
func (p SidePanel) PaneID() NodeID {
	return NodeID(p.ContentID)
}
