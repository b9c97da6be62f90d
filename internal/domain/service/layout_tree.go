// Package service holds the structural algorithms that mutate a DockLayout.
// Every exported operation validates its inputs before touching the tree so
// that a returned error always means the layout is unchanged.
package service

import (
	"fmt"
	"math"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// SplitStack places pane in a new stack beside the target stack. The zone
// must be one of left, right, top or bottom; center is "add to stack" and is
// handled by the caller. Returns the new stack.
//
// Splitting an empty placeholder stack replaces it with the new stack.
func SplitStack(
	layout *entity.DockLayout,
	targetID entity.NodeID,
	pane *entity.DockPane,
	zone entity.DropZone,
	newID entity.IDGenerator,
) (*entity.Stack, error) {
	if pane == nil {
		return nil, fmt.Errorf("%w: pane is required", entity.ErrInvalidOperation)
	}
	if !zone.IsSplit() {
		return nil, fmt.Errorf("%w: cannot split on zone %q", entity.ErrInvalidOperation, zone)
	}
	target := layout.FindStack(targetID)
	if target == nil {
		return nil, fmt.Errorf("stack %s: %w", targetID, entity.ErrNotFound)
	}
	if layout.Contains(pane.ID) {
		return nil, fmt.Errorf("%w: id %s already in layout", entity.ErrInvalidOperation, pane.ID)
	}

	stack := entity.NewStack(entity.NodeID(newID()), 1, pane)
	insertBeside(layout, target, stack, zone, newID)
	if target.IsEmpty() {
		// splitting the placeholder: the new stack takes over
		Cleanup(layout)
	}
	return stack, nil
}

// MovePaneResult describes what MovePane did.
type MovePaneResult struct {
	// NewStack is set when the pane was split into a new stack.
	NewStack *entity.Stack
	// Cleaned reports whether the cleanup pass changed the tree.
	Cleaned bool
}

// MovePane takes a pane out of its stack and drops it onto targetID in the
// given zone. Center appends it as a tab; any other zone splits.
func MovePane(
	layout *entity.DockLayout,
	paneID, targetID entity.NodeID,
	zone entity.DropZone,
	newID entity.IDGenerator,
) (*MovePaneResult, error) {
	if _, ok := entity.ParseDropZone(string(zone)); !ok {
		return nil, fmt.Errorf("%w: unknown zone %q", entity.ErrInvalidOperation, zone)
	}
	pane, source := layout.FindPane(paneID)
	if pane == nil {
		return nil, fmt.Errorf("pane %s: %w", paneID, entity.ErrNotFound)
	}
	target := layout.FindStack(targetID)
	if target == nil {
		return nil, fmt.Errorf("stack %s: %w", targetID, entity.ErrNotFound)
	}
	if source == target {
		if zone == entity.ZoneCenter {
			return nil, fmt.Errorf("%w: pane %s is already in stack %s", entity.ErrInvalidOperation, paneID, targetID)
		}
		if len(source.Children) == 1 {
			return nil, fmt.Errorf("%w: cannot split stack %s off its only pane", entity.ErrInvalidOperation, targetID)
		}
	}

	source.RemovePane(paneID)
	if source.ActiveID == paneID {
		source.ResetActive()
	}

	result := &MovePaneResult{}
	if zone == entity.ZoneCenter {
		target.AppendPane(pane)
	} else {
		stack := entity.NewStack(entity.NodeID(newID()), 1, pane)
		insertBeside(layout, target, stack, zone, newID)
		result.NewStack = stack
	}

	if layout.StackCount() > 1 {
		result.Cleaned = Cleanup(layout)
	}
	return result, nil
}

// MoveStack relocates a whole stack next to targetID. Center is rejected:
// stacks cannot be tabbed into another stack as a unit.
func MoveStack(
	layout *entity.DockLayout,
	sourceID, targetID entity.NodeID,
	zone entity.DropZone,
	newID entity.IDGenerator,
) error {
	if !zone.IsSplit() {
		return fmt.Errorf("%w: stacks can only be docked to an edge, got %q", entity.ErrInvalidOperation, zone)
	}
	if sourceID == targetID {
		return fmt.Errorf("%w: stack %s cannot be moved onto itself", entity.ErrInvalidOperation, sourceID)
	}
	source := layout.FindStack(sourceID)
	if source == nil {
		return fmt.Errorf("stack %s: %w", sourceID, entity.ErrNotFound)
	}
	target := layout.FindStack(targetID)
	if target == nil {
		return fmt.Errorf("stack %s: %w", targetID, entity.ErrNotFound)
	}
	if layout.Root == entity.DockNode(source) {
		return fmt.Errorf("%w: cannot move the root stack", entity.ErrInvalidOperation)
	}

	detach(layout, source)
	insertBeside(layout, target, source, zone, newID)
	Cleanup(layout)
	return nil
}

// DetachStack removes a stack from the tree, collapsing its parent box when
// only one child remains. The root stack cannot be detached.
func DetachStack(layout *entity.DockLayout, stackID entity.NodeID) (*entity.Stack, error) {
	stack := layout.FindStack(stackID)
	if stack == nil {
		return nil, fmt.Errorf("stack %s: %w", stackID, entity.ErrNotFound)
	}
	if layout.Root == entity.DockNode(stack) {
		return nil, fmt.Errorf("%w: cannot detach the root stack", entity.ErrInvalidOperation)
	}
	detach(layout, stack)
	return stack, nil
}

// SetWeights replaces the weights of a box's children. Every weight must be
// positive and finite, and there must be one per child.
func SetWeights(layout *entity.DockLayout, boxID entity.NodeID, weights []float64) error {
	node, _ := layout.Lookup(boxID)
	if node == nil {
		return fmt.Errorf("box %s: %w", boxID, entity.ErrNotFound)
	}
	box, ok := node.(*entity.Box)
	if !ok {
		return fmt.Errorf("%w: %s is not a box", entity.ErrInvalidOperation, boxID)
	}
	if len(weights) != len(box.Children) {
		return fmt.Errorf("%w: box %s has %d children, got %d weights",
			entity.ErrInvalidOperation, boxID, len(box.Children), len(weights))
	}
	for i, w := range weights {
		if !validWeight(w) {
			return fmt.Errorf("%w: weight %d must be positive, got %v", entity.ErrInvalidOperation, i, w)
		}
	}
	for i, child := range box.Children {
		child.SetWeight(weights[i])
	}
	return nil
}

// DockAtRoot inserts node as the first (or last, when atEnd) child of the
// root box along dir. When the root is not a box with that direction it is
// wrapped in a new root box first, sharing the space with node.
func DockAtRoot(
	layout *entity.DockLayout,
	node entity.DockNode,
	dir entity.Direction,
	atEnd bool,
	newID entity.IDGenerator,
) error {
	if node == nil {
		return fmt.Errorf("%w: node is required", entity.ErrInvalidOperation)
	}
	if !dir.Valid() {
		return fmt.Errorf("%w: unknown direction %q", entity.ErrInvalidOperation, dir)
	}
	if !validWeight(node.NodeWeight()) {
		return fmt.Errorf("%w: weight must be positive, got %v", entity.ErrInvalidOperation, node.NodeWeight())
	}
	if layout.Contains(node.NodeID()) {
		return fmt.Errorf("%w: id %s already in layout", entity.ErrInvalidOperation, node.NodeID())
	}
	if layout.Root == nil {
		layout.Root = node
		return nil
	}

	if root, ok := layout.Root.(*entity.Box); ok && root.Direction == dir {
		idx := 0
		if atEnd {
			idx = len(root.Children)
		}
		root.InsertChild(idx, node)
		return nil
	}

	old := layout.Root
	if w := node.NodeWeight(); w < 1 {
		old.SetWeight(1 - w)
	}
	children := []entity.DockNode{node, old}
	if atEnd {
		children = []entity.DockNode{old, node}
	}
	layout.Root = entity.NewBox(entity.NodeID(newID()), dir, 1, children...)
	return nil
}

func validWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}

// detach removes node from its parent and collapses the parent if it is left
// with a single child. The node must not be the root.
func detach(layout *entity.DockLayout, node entity.DockNode) {
	parent := layout.FindParent(node.NodeID())
	if parent == nil {
		return
	}
	parent.RemoveChildAt(parent.IndexOf(node.NodeID()))
	if len(parent.Children) == 1 {
		collapse(layout, parent)
	}
}

// collapse replaces a single-child box with its child. The child inherits the
// box's weight unless the box was the root.
func collapse(layout *entity.DockLayout, box *entity.Box) {
	child := box.Children[0]
	grandparent := layout.FindParent(box.ID)
	if grandparent == nil {
		layout.Root = child
		return
	}
	child.SetWeight(box.Weight)
	grandparent.Children[grandparent.IndexOf(box.ID)] = child
}

// insertBeside docks node next to target according to zone. It assumes the
// zone is a split zone and target is in the layout.
func insertBeside(
	layout *entity.DockLayout,
	target *entity.Stack,
	node entity.DockNode,
	zone entity.DropZone,
	newID entity.IDGenerator,
) {
	dir := zone.Direction()
	after := zone.IsAfter()

	ordered := func(a, b entity.DockNode) []entity.DockNode {
		if after {
			return []entity.DockNode{a, b}
		}
		return []entity.DockNode{b, a}
	}

	if layout.Root == entity.DockNode(target) {
		half := target.Weight / 2
		target.SetWeight(half)
		node.SetWeight(half)
		layout.Root = entity.NewBox(entity.NodeID(newID()), dir, 1, ordered(target, node)...)
		return
	}

	parent := layout.FindParent(target.ID)
	idx := parent.IndexOf(target.ID)

	if parent.Direction == dir {
		half := target.Weight / 2
		target.SetWeight(half)
		node.SetWeight(half)
		if after {
			idx++
		}
		parent.InsertChild(idx, node)
		return
	}

	prior := target.Weight
	target.SetWeight(prior / 2)
	node.SetWeight(prior / 2)
	parent.Children[idx] = entity.NewBox(entity.NodeID(newID()), dir, prior, ordered(target, node)...)
}
