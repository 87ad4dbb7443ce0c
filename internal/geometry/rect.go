package geometry

import (
	"image"

	"golang.org/x/exp/constraints"
)

// Rect is an axis-aligned rectangle in device pixel coordinates.
// Width and Height are never negative.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect returns a rectangle at (x, y). Negative sizes are clamped to zero.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: max(width, 0), Height: max(height, 0)}
}

// FromPoints builds a rectangle spanning two corners in any order.
func FromPoints(x0, y0, x1, y1 int) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// FromImage converts an image.Rectangle.
func FromImage(r image.Rectangle) Rect {
	r = r.Canon()
	return Rect{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

func (r Rect) X1() int { return r.X + r.Width }
func (r Rect) Y1() int { return r.Y + r.Height }

func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Center returns the center point, rounded towards the top-left.
func (r Rect) Center() (x, y int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Intersect returns the overlap of r and o, or the zero Rect if they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X1(), o.X1())
	y1 := min(r.Y1(), o.Y1())
	if x0 >= x1 || y0 >= y1 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Overlaps reports whether r and o share at least one pixel.
func (r Rect) Overlaps(o Rect) bool {
	return !r.Intersect(o).Empty()
}

// Union returns the smallest rectangle containing both r and o.
// Empty rectangles do not contribute.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return FromPoints(min(r.X, o.X), min(r.Y, o.Y), max(r.X1(), o.X1()), max(r.Y1(), o.Y1()))
}

// Contains reports whether o lies fully inside r. An empty o is contained
// in every rectangle.
func (r Rect) Contains(o Rect) bool {
	if o.Empty() {
		return true
	}
	return o.X >= r.X && o.Y >= r.Y && o.X1() <= r.X1() && o.Y1() <= r.Y1()
}

func (r Rect) ContainsPoint(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X1() && y < r.Y1()
}

func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
