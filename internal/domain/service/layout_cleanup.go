package service

import "github.com/bnema/dockyard/internal/domain/entity"

// Cleanup prunes empty stacks and collapses single-child boxes, bottom-up,
// and reports whether anything changed.
//
// A layout with at most one stack is left alone so the last stack survives as
// an empty drop target. When a collapsing box is nested its surviving child
// inherits the box's weight; when the root collapses the child keeps its own.
// If every stack turns out to be empty, the first one is kept as placeholder.
func Cleanup(layout *entity.DockLayout) bool {
	if layout == nil || layout.Root == nil {
		return false
	}
	stacks := layout.Stacks()
	if len(stacks) <= 1 {
		return false
	}

	root, changed := reduce(layout.Root, true)
	if root == nil {
		placeholder := stacks[0]
		placeholder.ResetActive()
		layout.Root = placeholder
		return true
	}
	layout.Root = root
	return changed
}

// reduce returns the simplified form of node, or nil when node should be
// removed from its parent.
func reduce(node entity.DockNode, isRoot bool) (entity.DockNode, bool) {
	switch n := node.(type) {
	case *entity.Stack:
		if n.IsEmpty() {
			return nil, true
		}
		return n, false
	case *entity.Box:
		changed := false
		kept := make([]entity.DockNode, 0, len(n.Children))
		for _, child := range n.Children {
			reduced, c := reduce(child, false)
			changed = changed || c
			if reduced != nil {
				kept = append(kept, reduced)
			}
		}
		switch len(kept) {
		case 0:
			return nil, true
		case 1:
			only := kept[0]
			if !isRoot {
				only.SetWeight(n.Weight)
			}
			return only, true
		default:
			n.Children = kept
			return n, changed
		}
	default:
		panic(entity.NewStructuralViolation(node, "unknown dock node variant"))
	}
}
