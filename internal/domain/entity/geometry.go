package entity

// Rect is an axis-aligned rectangle in screen coordinates.
// X grows to the right and Y grows downward.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the point lies inside the rectangle.
// The left and top edges are inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// OverlapsVertically reports whether two rectangles share any vertical span.
func (r Rect) OverlapsVertically(o Rect) bool {
	return r.Y < o.Bottom() && o.Y < r.Bottom()
}

// OverlapsHorizontally reports whether two rectangles share any horizontal span.
func (r Rect) OverlapsHorizontally(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right()
}

// StackRect pairs a stack with its on-screen rectangle.
// Used for hit testing and geometric focus navigation.
type StackRect struct {
	StackID NodeID
	Rect    Rect
}
