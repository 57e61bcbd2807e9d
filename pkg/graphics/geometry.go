package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of o and other.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the component-wise difference of o and other.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Scale returns o multiplied by s.
func (o Offset) Scale(s float64) Offset {
	return Offset{X: o.X * s, Y: o.Y * s}
}

// Distance returns the length of the vector from o to other.
func (o Offset) Distance(other Offset) float64 {
	return math.Hypot(other.X-o.X, other.Y-o.Y)
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Scale returns the size multiplied by s.
func (s Size) Scale(f float64) Size {
	return Size{Width: s.Width * f, Height: s.Height * f}
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromSize returns a rect anchored at the origin with the given size.
func RectFromSize(size Size) Rect {
	return Rect{Right: size.Width, Bottom: size.Height}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Inflate grows the rect by delta on every side. Negative values shrink it.
func (r Rect) Inflate(delta float64) Rect {
	return Rect{
		Left:   r.Left - delta,
		Top:    r.Top - delta,
		Right:  r.Right + delta,
		Bottom: r.Bottom + delta,
	}
}

// Normalize collapses inverted rects to a zero-size rect at their center.
func (r Rect) Normalize() Rect {
	if r.Right < r.Left {
		mid := (r.Left + r.Right) * 0.5
		r.Left, r.Right = mid, mid
	}
	if r.Bottom < r.Top {
		mid := (r.Top + r.Bottom) * 0.5
		r.Top, r.Bottom = mid, mid
	}
	return r
}

// Intersect returns the intersection of two rectangles.
// Returns empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right, other.Right)
	bottom := math.Min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{}
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// Contains reports whether p lies inside the rect (edges inclusive).
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Radius represents corner radii for rounded rectangles.
type Radius struct {
	X float64
	Y float64
}

// CircularRadius creates a circular radius with equal X/Y values.
func CircularRadius(value float64) Radius {
	return Radius{X: value, Y: value}
}

// RRect is a rounded rectangle with a single corner radius shared by
// all four corners.
type RRect struct {
	Rect   Rect
	Radius Radius
}

// RRectFromRectAndRadius creates a rounded rectangle with uniform corner radii.
func RRectFromRectAndRadius(rect Rect, radius Radius) RRect {
	return RRect{Rect: rect, Radius: radius}
}

// RRectFromRectXY creates a rounded rectangle with circular corners of radius r.
func RRectFromRectXY(rect Rect, r float64) RRect {
	return RRect{Rect: rect, Radius: CircularRadius(r)}
}

// ClampedRadius returns the corner radius limited to half the rect's
// extent, never negative.
func (r RRect) ClampedRadius() Radius {
	maxX := math.Max(0, r.Rect.Width()*0.5)
	maxY := math.Max(0, r.Rect.Height()*0.5)
	return Radius{
		X: math.Min(math.Max(0, r.Radius.X), maxX),
		Y: math.Min(math.Max(0, r.Radius.Y), maxY),
	}
}

// Translate returns the rounded rect offset by (dx, dy).
func (r RRect) Translate(dx, dy float64) RRect {
	return RRect{Rect: r.Rect.Translate(dx, dy), Radius: r.Radius}
}

// Inflate grows the rect and its radius by delta.
func (r RRect) Inflate(delta float64) RRect {
	return RRect{
		Rect:   r.Rect.Inflate(delta),
		Radius: Radius{X: math.Max(0, r.Radius.X+delta), Y: math.Max(0, r.Radius.Y+delta)},
	}
}

// Contains reports whether p lies inside the rounded rect.
func (r RRect) Contains(p Offset) bool {
	if !r.Rect.Contains(p) {
		return false
	}
	rad := r.ClampedRadius()
	if rad.X <= 0 || rad.Y <= 0 {
		return true
	}
	cx := math.Min(math.Max(p.X, r.Rect.Left+rad.X), r.Rect.Right-rad.X)
	cy := math.Min(math.Max(p.Y, r.Rect.Top+rad.Y), r.Rect.Bottom-rad.Y)
	dx := (p.X - cx) / rad.X
	dy := (p.Y - cy) / rad.Y
	return dx*dx+dy*dy <= 1+epsilon
}
