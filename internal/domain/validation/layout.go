package validation

import (
	"fmt"
	"math"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// ValidateLayout checks a layout against the structural invariants of the
// dock tree and returns one message per violation:
//   - ids are unique across boxes, stacks and panes
//   - a stack's active id, when set, names one of its panes; it is empty
//     for a stack without panes
//   - boxes have a known direction and at least two children (one at the root)
//   - an empty stack is only allowed when it is the only stack
//   - weights are positive and finite
func ValidateLayout(layout *entity.DockLayout) []string {
	if layout == nil || layout.Root == nil {
		return []string{"layout root is required"}
	}

	v := &layoutValidator{seen: make(map[entity.NodeID]string)}
	v.node(layout.Root, true, "root")

	if v.stacks > 1 && v.emptyStacks > 0 {
		v.errs = append(v.errs, fmt.Sprintf("%d empty stack(s) with %d stacks in total; only a sole stack may be empty",
			v.emptyStacks, v.stacks))
	}
	return v.errs
}

type layoutValidator struct {
	seen        map[entity.NodeID]string
	stacks      int
	emptyStacks int
	errs        []string
}

func (v *layoutValidator) id(id entity.NodeID, path string) {
	if id == "" {
		v.errs = append(v.errs, path+".id cannot be empty")
		return
	}
	if other, dup := v.seen[id]; dup {
		v.errs = append(v.errs, fmt.Sprintf("%s.id %q duplicates %s", path, id, other))
		return
	}
	v.seen[id] = path
}

func (v *layoutValidator) weight(w float64, path string) {
	if !(w > 0) || math.IsInf(w, 0) {
		v.errs = append(v.errs, fmt.Sprintf("%s.weight must be positive, got %v", path, w))
	}
}

func (v *layoutValidator) node(node entity.DockNode, isRoot bool, path string) {
	switch n := node.(type) {
	case *entity.Box:
		v.id(n.ID, path)
		v.weight(n.Weight, path)
		if !n.Direction.Valid() {
			v.errs = append(v.errs, fmt.Sprintf("%s.direction must be row or column, got %q", path, n.Direction))
		}
		minChildren := 2
		if isRoot {
			minChildren = 1
		}
		if len(n.Children) < minChildren {
			v.errs = append(v.errs, fmt.Sprintf("%s must have at least %d children, got %d", path, minChildren, len(n.Children)))
		}
		for i, child := range n.Children {
			if child == nil {
				v.errs = append(v.errs, fmt.Sprintf("%s.children[%d] cannot be null", path, i))
				continue
			}
			v.node(child, false, fmt.Sprintf("%s.children[%d]", path, i))
		}
	case *entity.Stack:
		v.id(n.ID, path)
		v.weight(n.Weight, path)
		v.stacks++
		if n.IsEmpty() {
			v.emptyStacks++
			if n.ActiveID != "" {
				v.errs = append(v.errs, fmt.Sprintf("%s.active_id must be empty for an empty stack", path))
			}
		} else if n.ActiveID != "" && n.IndexOf(n.ActiveID) < 0 {
			v.errs = append(v.errs, fmt.Sprintf("%s.active_id %q is not a pane of this stack", path, n.ActiveID))
		}
		for i, p := range n.Children {
			panePath := fmt.Sprintf("%s.children[%d]", path, i)
			if p == nil {
				v.errs = append(v.errs, panePath+" cannot be null")
				continue
			}
			v.id(p.ID, panePath)
			if p.ContentID == "" {
				v.errs = append(v.errs, panePath+".content_id cannot be empty")
			}
		}
	default:
		v.errs = append(v.errs, fmt.Sprintf("%s has unknown node type %T", path, node))
	}
}
