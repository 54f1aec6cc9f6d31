package components

import "math"

// Rect is an axis-aligned bounding box in canvas pixels.
// It is the only spatial representation an actor has.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Translate returns the rectangle moved by (dx, dy). Size is unchanged.
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Outside returns true if the rectangle lies entirely outside bounds.
func (r Rect) Outside(bounds Rect) bool {
	return !r.Intersects(bounds)
}

// ClampInside returns the rectangle moved the minimum distance needed to lie
// within bounds. A rectangle larger than bounds is pinned to the top-left edge.
func (r Rect) ClampInside(bounds Rect) Rect {
	out := r
	if out.Right() > bounds.Right() {
		out.X = bounds.Right() - out.W
	}
	if out.X < bounds.X {
		out.X = bounds.X
	}
	if out.Bottom() > bounds.Bottom() {
		out.Y = bounds.Bottom() - out.H
	}
	if out.Y < bounds.Y {
		out.Y = bounds.Y
	}
	return out
}

// Scale multiplies position and size by factor, rounding each to the nearest pixel.
func (r Rect) Scale(factor float64) Rect {
	return Rect{
		X: scaleInt(r.X, factor),
		Y: scaleInt(r.Y, factor),
		W: scaleInt(r.W, factor),
		H: scaleInt(r.H, factor),
	}
}

func scaleInt(v int, factor float64) int {
	return int(math.Round(float64(v) * factor))
}

// RefRect is a box at canvas scale 1. The position keeps its fraction so a
// box scaled away and back lands on the same pixels.
type RefRect struct {
	X, Y float64
	W, H int
}

// RefOf returns the reference box for r drawn at the given scale.
// Size is taken as already unscaled.
func RefOf(r Rect, scale float64) RefRect {
	return RefRect{X: float64(r.X) / scale, Y: float64(r.Y) / scale, W: r.W, H: r.H}
}

// At returns the box at the given canvas scale.
func (r RefRect) At(scale float64) Rect {
	return Rect{
		X: int(math.Round(r.X * scale)),
		Y: int(math.Round(r.Y * scale)),
		W: scaleInt(r.W, scale),
		H: scaleInt(r.H, scale),
	}
}
