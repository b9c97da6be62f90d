package service

import (
	"math"
	"sort"

	"github.com/jesseduffield/lazycore/pkg/boxlayout"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// ArrangeStacks computes the on-screen rectangle of every stack when the
// layout fills a width x height area at the origin. Results are in
// depth-first stack order.
func ArrangeStacks(layout *entity.DockLayout, width, height int) []entity.StackRect {
	if layout == nil || layout.Root == nil || width <= 0 || height <= 0 {
		return nil
	}

	dims := boxlayout.ArrangeWindows(toBoxLayout(layout.Root, width, height), 0, 0, width, height)

	stacks := layout.Stacks()
	rects := make([]entity.StackRect, 0, len(stacks))
	for _, s := range stacks {
		d, ok := dims[string(s.ID)]
		if !ok {
			continue
		}
		rects = append(rects, entity.StackRect{
			StackID: s.ID,
			Rect: entity.Rect{
				X: float64(d.X0),
				Y: float64(d.Y0),
				W: float64(d.X1 - d.X0 + 1),
				H: float64(d.Y1 - d.Y0 + 1),
			},
		})
	}
	return rects
}

// toBoxLayout mirrors the dock tree as a boxlayout tree for a node occupying
// width x height cells. Child sizes are resolved here from the float weights
// and handed to boxlayout as fixed sizes. boxlayout's ROW stacks children
// vertically, so a dock row maps to COLUMN and vice versa.
func toBoxLayout(node entity.DockNode, width, height int) *boxlayout.Box {
	switch n := node.(type) {
	case *entity.Stack:
		return &boxlayout.Box{Window: string(n.ID), Weight: 1}
	case *entity.Box:
		dir := boxlayout.COLUMN
		span := width
		if n.Direction == entity.DirectionColumn {
			dir = boxlayout.ROW
			span = height
		}
		weights := make([]float64, len(n.Children))
		for i, child := range n.Children {
			weights[i] = child.NodeWeight()
		}
		sizes := distribute(span, weights)

		children := make([]*boxlayout.Box, 0, len(n.Children))
		for i, child := range n.Children {
			w, h := sizes[i], height
			if dir == boxlayout.ROW {
				w, h = width, sizes[i]
			}
			b := toBoxLayout(child, w, h)
			b.Size = sizes[i]
			b.Weight = 1
			children = append(children, b)
		}
		return &boxlayout.Box{Direction: dir, Weight: 1, Children: children}
	default:
		panic(entity.NewStructuralViolation(node, "unknown dock node variant"))
	}
}

// distribute splits total cells proportionally to weights using the largest
// remainder method, so the sizes always sum to total.
func distribute(total int, weights []float64) []int {
	sizes := make([]int, len(weights))
	if total <= 0 || len(weights) == 0 {
		return sizes
	}
	sum := 0.0
	for _, w := range weights {
		if w > 0 {
			sum += w
		}
	}
	if sum == 0 {
		return sizes
	}

	type remainder struct {
		idx  int
		frac float64
	}
	rems := make([]remainder, 0, len(weights))
	used := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		exact := float64(total) * w / sum
		sizes[i] = int(math.Floor(exact))
		used += sizes[i]
		rems = append(rems, remainder{idx: i, frac: exact - float64(sizes[i])})
	}
	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for i := 0; used < total && len(rems) > 0; i = (i + 1) % len(rems) {
		sizes[rems[i].idx]++
		used++
	}
	return sizes
}

// HitTest returns the stack whose rectangle contains the point.
func HitTest(rects []entity.StackRect, x, y float64) (entity.StackRect, bool) {
	for _, r := range rects {
		if r.Rect.Contains(x, y) {
			return r, true
		}
	}
	return entity.StackRect{}, false
}

// FindRect returns the rectangle computed for a stack.
func FindRect(rects []entity.StackRect, stackID entity.NodeID) (entity.Rect, bool) {
	for _, r := range rects {
		if r.StackID == stackID {
			return r.Rect, true
		}
	}
	return entity.Rect{}, false
}
