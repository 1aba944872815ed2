// Package core provides fundamental types and utilities shared by the game
// and its backends. It has no rendering or audio dependencies so that game
// logic stays pure and testable.
package core

// Rect represents an axis-aligned bounding box in logical pixels.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectMidBottom creates a rectangle of size w x h whose bottom edge is centred
// on (cx, bottom).
func RectMidBottom(cx, bottom, w, h int) Rect {
	return Rect{X: cx - w/2, Y: bottom - h, W: w, H: h}
}

// RectCenter creates a rectangle of size w x h centred on (cx, cy).
func RectCenter(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// SetBottom moves the rectangle vertically so its bottom edge is at y.
func (r *Rect) SetBottom(y int) {
	r.Y = y - r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that merely share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Scale maps the rectangle into a coarser grid where each cell covers
// sx by sy logical units. Non-empty rectangles keep at least one cell.
func (r Rect) Scale(sx, sy int) Rect {
	x0, y0 := floorDiv(r.X, sx), floorDiv(r.Y, sy)
	x1, y1 := floorDiv(r.Right()+sx-1, sx), floorDiv(r.Bottom()+sy-1, sy)
	out := Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
	if r.W > 0 && out.W < 1 {
		out.W = 1
	}
	if r.H > 0 && out.H < 1 {
		out.H = 1
	}
	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
