package entity

import "math"

// DropZone is where, relative to a target stack, a dragged item lands.
type DropZone string

const (
	ZoneLeft   DropZone = "left"
	ZoneRight  DropZone = "right"
	ZoneTop    DropZone = "top"
	ZoneBottom DropZone = "bottom"
	ZoneCenter DropZone = "center"
)

// DefaultEdgeThreshold is the fraction of a target's width or height that
// forms each edge band.
const DefaultEdgeThreshold = 0.2

// ParseDropZone converts a string into a DropZone.
func ParseDropZone(s string) (DropZone, bool) {
	switch z := DropZone(s); z {
	case ZoneLeft, ZoneRight, ZoneTop, ZoneBottom, ZoneCenter:
		return z, true
	default:
		return "", false
	}
}

// IsSplit reports whether the zone creates a new stack next to the target.
func (z DropZone) IsSplit() bool {
	return z == ZoneLeft || z == ZoneRight || z == ZoneTop || z == ZoneBottom
}

// Direction returns the box direction a split in this zone produces.
func (z DropZone) Direction() Direction {
	if z == ZoneTop || z == ZoneBottom {
		return DirectionColumn
	}
	return DirectionRow
}

// IsAfter reports whether the new node goes after the target.
func (z DropZone) IsAfter() bool {
	return z == ZoneRight || z == ZoneBottom
}

// ClassifyZone maps a point to a drop zone of rect using the given edge
// threshold. A threshold outside (0, 0.5) falls back to DefaultEdgeThreshold.
// When the point sits in two edge bands at once (a corner) the band it is
// proportionally closest to wins; exact ties resolve left, right, top, bottom.
func ClassifyZone(rect Rect, x, y, threshold float64) DropZone {
	if rect.Empty() {
		return ZoneCenter
	}
	if threshold <= 0 || threshold >= 0.5 {
		threshold = DefaultEdgeThreshold
	}

	rx := (x - rect.X) / rect.W
	ry := (y - rect.Y) / rect.H

	best := ZoneCenter
	bestDist := math.Inf(1)
	candidates := []struct {
		zone DropZone
		dist float64
	}{
		{ZoneLeft, rx},
		{ZoneRight, 1 - rx},
		{ZoneTop, ry},
		{ZoneBottom, 1 - ry},
	}
	for _, c := range candidates {
		if c.dist < threshold && c.dist < bestDist {
			best, bestDist = c.zone, c.dist
		}
	}
	return best
}

// IndicatorRect returns the rectangle a drop indicator should cover for the
// given zone over rect.
func IndicatorRect(rect Rect, zone DropZone) Rect {
	switch zone {
	case ZoneLeft:
		return Rect{X: rect.X, Y: rect.Y, W: rect.W / 2, H: rect.H}
	case ZoneRight:
		return Rect{X: rect.X + rect.W/2, Y: rect.Y, W: rect.W / 2, H: rect.H}
	case ZoneTop:
		return Rect{X: rect.X, Y: rect.Y, W: rect.W, H: rect.H / 2}
	case ZoneBottom:
		return Rect{X: rect.X, Y: rect.Y + rect.H/2, W: rect.W, H: rect.H / 2}
	default:
		return rect
	}
}

// DragKind distinguishes what is being dragged.
type DragKind string

const (
	DragPane  DragKind = "pane"
	DragStack DragKind = "stack"
)

// DropTarget is the current hover target of a drag.
type DropTarget struct {
	StackID   NodeID   `json:"stack_id"`
	Zone      DropZone `json:"zone"`
	Indicator Rect     `json:"indicator"`
}

// DragSession is the in-progress drag. A nil session means no drag is
// active; the orchestrating component owns the value.
type DragSession struct {
	Kind DragKind
	// PaneID is set for pane drags.
	PaneID NodeID
	// SourceStackID is the stack the pane was dragged from, or the stack
	// being relocated for stack drags.
	SourceStackID NodeID
	Target        *DropTarget
}

// NewPaneDrag starts a drag of a single pane.
func NewPaneDrag(paneID, sourceStackID NodeID) *DragSession {
	return &DragSession{Kind: DragPane, PaneID: paneID, SourceStackID: sourceStackID}
}

// NewStackDrag starts a drag of a whole stack.
func NewStackDrag(stackID NodeID) *DragSession {
	return &DragSession{Kind: DragStack, SourceStackID: stackID}
}

// Active reports whether the session represents an ongoing drag.
func (d *DragSession) Active() bool {
	return d != nil && d.Kind != ""
}

// State returns a short label for the session state.
func (d *DragSession) State() string {
	if !d.Active() {
		return "idle"
	}
	if d.Kind == DragStack {
		return "dragging_stack"
	}
	return "dragging_pane"
}
