package entity

import (
	"errors"
	"fmt"
)

// LayoutSnapshotVersion is the current schema version for serialized layouts.
// Increment when making breaking changes to the serialization format.
const LayoutSnapshotVersion = 1

// Node type tags used in serialized layouts.
const (
	NodeTypeBox   = "box"
	NodeTypeStack = "stack"
	NodeTypePane  = "pane"
)

// ErrInvalidSnapshot is returned when a snapshot cannot be turned into a tree.
var ErrInvalidSnapshot = errors.New("invalid layout snapshot")

// LayoutSnapshot is the plain, serializable form of a DockLayout.
type LayoutSnapshot struct {
	Version int           `json:"version" yaml:"version"`
	Root    *NodeSnapshot `json:"root" yaml:"root"`
}

// NodeSnapshot captures a node of the layout tree. Type selects which of the
// remaining fields are meaningful.
type NodeSnapshot struct {
	Type      string          `json:"type" yaml:"type" jsonschema:"enum=box,enum=stack,enum=pane"`
	ID        string          `json:"id" yaml:"id"`
	Weight    float64         `json:"weight,omitempty" yaml:"weight,omitempty"`
	Direction Direction       `json:"direction,omitempty" yaml:"direction,omitempty" jsonschema:"enum=row,enum=column"`
	ActiveID  string          `json:"active_id,omitempty" yaml:"active_id,omitempty"`
	Title     string          `json:"title,omitempty" yaml:"title,omitempty"`
	ContentID string          `json:"content_id,omitempty" yaml:"content_id,omitempty"`
	Closable  bool            `json:"closable,omitempty" yaml:"closable,omitempty"`
	Children  []*NodeSnapshot `json:"children,omitempty" yaml:"children,omitempty"`
}

// SnapshotFromLayout creates a LayoutSnapshot from a live layout.
func SnapshotFromLayout(layout *DockLayout) *LayoutSnapshot {
	snap := &LayoutSnapshot{Version: LayoutSnapshotVersion}
	if layout == nil || layout.Root == nil {
		return snap
	}
	snap.Root = snapshotNode(layout.Root)
	return snap
}

func snapshotNode(node DockNode) *NodeSnapshot {
	switch n := node.(type) {
	case *Box:
		children := make([]*NodeSnapshot, 0, len(n.Children))
		for _, child := range n.Children {
			children = append(children, snapshotNode(child))
		}
		return &NodeSnapshot{
			Type:      NodeTypeBox,
			ID:        string(n.ID),
			Weight:    n.Weight,
			Direction: n.Direction,
			Children:  children,
		}
	case *Stack:
		children := make([]*NodeSnapshot, 0, len(n.Children))
		for _, p := range n.Children {
			children = append(children, &NodeSnapshot{
				Type:      NodeTypePane,
				ID:        string(p.ID),
				Title:     p.Title,
				ContentID: p.ContentID,
				Closable:  p.Closable,
			})
		}
		return &NodeSnapshot{
			Type:     NodeTypeStack,
			ID:       string(n.ID),
			Weight:   n.Weight,
			ActiveID: string(n.ActiveID),
			Children: children,
		}
	default:
		panic(unknownNode(node))
	}
}

// LayoutFromSnapshot rebuilds a live layout from a snapshot. It only checks
// that the shape can be decoded; invariant checks belong to the validator.
func LayoutFromSnapshot(snap *LayoutSnapshot) (*DockLayout, error) {
	if snap == nil || snap.Root == nil {
		return nil, fmt.Errorf("%w: missing root", ErrInvalidSnapshot)
	}
	if snap.Version > LayoutSnapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, snap.Version)
	}
	root, err := nodeFromSnapshot(snap.Root)
	if err != nil {
		return nil, err
	}
	return &DockLayout{Root: root}, nil
}

func nodeFromSnapshot(s *NodeSnapshot) (DockNode, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil node", ErrInvalidSnapshot)
	}
	switch s.Type {
	case NodeTypeBox:
		children := make([]DockNode, 0, len(s.Children))
		for _, c := range s.Children {
			child, err := nodeFromSnapshot(c)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return &Box{
			ID:        NodeID(s.ID),
			Weight:    s.Weight,
			Direction: s.Direction,
			Children:  children,
		}, nil
	case NodeTypeStack:
		panes := make([]*DockPane, 0, len(s.Children))
		for _, c := range s.Children {
			if c == nil || c.Type != NodeTypePane {
				return nil, fmt.Errorf("%w: stack %q may only contain panes", ErrInvalidSnapshot, s.ID)
			}
			panes = append(panes, &DockPane{
				ID:        NodeID(c.ID),
				Title:     c.Title,
				ContentID: c.ContentID,
				Closable:  c.Closable,
			})
		}
		return &Stack{
			ID:       NodeID(s.ID),
			Weight:   s.Weight,
			ActiveID: NodeID(s.ActiveID),
			Children: panes,
		}, nil
	case NodeTypePane:
		return nil, fmt.Errorf("%w: pane %q outside of a stack", ErrInvalidSnapshot, s.ID)
	default:
		return nil, fmt.Errorf("%w: unknown node type %q", ErrInvalidSnapshot, s.Type)
	}
}
