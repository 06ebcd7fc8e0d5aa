package model

import "math"

// Rect represents an axis-aligned rectangle as (x0, top, x1, bottom).
//
// The coordinate system has its origin at the top-left corner of the page,
// with y growing downward, so Top <= Bottom for any valid rectangle. The
// unit (OCR canvas pixels or PDF points) is determined by context; functions
// accepting a Rect document which space they expect.
type Rect struct {
	X0     float64 // Left edge
	Top    float64 // Top edge (distance from top of page)
	X1     float64 // Right edge
	Bottom float64 // Bottom edge (distance from top of page)
}

// NewRect creates a rectangle from its four edges.
func NewRect(x0, top, x1, bottom float64) Rect {
	return Rect{X0: x0, Top: top, X1: x1, Bottom: bottom}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// IsValid returns true if the rectangle has non-negative extent on both axes.
func (r Rect) IsValid() bool {
	return r.X0 <= r.X1 && r.Top <= r.Bottom
}

// IsEmpty returns true if the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Bottom <= r.Top
}

// Overlaps reports whether two rectangles in the same coordinate space
// share interior area. The test is open-interval: rectangles that merely
// touch along an edge or at a corner do not overlap. The predicate is
// symmetric.
func (r Rect) Overlaps(other Rect) bool {
	return r.X0 < other.X1 && r.X1 > other.X0 &&
		r.Top < other.Bottom && r.Bottom > other.Top
}

// Contains checks whether the other rectangle lies entirely within r,
// edges included.
func (r Rect) Contains(other Rect) bool {
	return other.X0 >= r.X0 && other.X1 <= r.X1 &&
		other.Top >= r.Top && other.Bottom <= r.Bottom
}

// Union returns the smallest rectangle enclosing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0:     math.Min(r.X0, other.X0),
		Top:    math.Min(r.Top, other.Top),
		X1:     math.Max(r.X1, other.X1),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// Expand grows the rectangle outward by a margin on all four sides.
// A negative margin shrinks it.
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		X0:     r.X0 - margin,
		Top:    r.Top - margin,
		X1:     r.X1 + margin,
		Bottom: r.Bottom + margin,
	}
}

// Area returns the area of the rectangle, or 0 for an invalid rectangle.
func (r Rect) Area() float64 {
	if !r.IsValid() {
		return 0
	}
	return r.Width() * r.Height()
}
