package graphics

import (
	"fmt"
	"math"
)

// GradientType describes the gradient variant.
type GradientType int

const (
	// GradientTypeNone indicates no gradient is applied.
	GradientTypeNone GradientType = iota
	// GradientTypeLinear indicates a linear gradient.
	GradientTypeLinear
	// GradientTypeRadial indicates a radial gradient.
	GradientTypeRadial
)

// String returns a human-readable representation of the gradient type.
func (t GradientType) String() string {
	switch t {
	case GradientTypeNone:
		return "none"
	case GradientTypeLinear:
		return "linear"
	case GradientTypeRadial:
		return "radial"
	default:
		return fmt.Sprintf("GradientType(%d)", int(t))
	}
}

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// Gradient describes a linear or radial gradient in local coordinates.
// Linear gradients run from Start to End; radial gradients from Center
// out to Radius.
type Gradient struct {
	Type   GradientType
	Start  Offset
	End    Offset
	Center Offset
	Radius float64
	Stops  []GradientStop
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(start, end Offset, stops []GradientStop) *Gradient {
	return &Gradient{
		Type:  GradientTypeLinear,
		Start: start,
		End:   end,
		Stops: cloneGradientStops(stops),
	}
}

// NewRadialGradient constructs a radial gradient definition.
func NewRadialGradient(center Offset, radius float64, stops []GradientStop) *Gradient {
	return &Gradient{
		Type:   GradientTypeRadial,
		Center: center,
		Radius: radius,
		Stops:  cloneGradientStops(stops),
	}
}

// IsValid reports whether the gradient has usable stops.
func (g *Gradient) IsValid() bool {
	if g == nil || len(g.Stops) < 2 {
		return false
	}
	if g.Type == GradientTypeRadial && g.Radius <= 0 {
		return false
	}
	for _, stop := range g.Stops {
		if stop.Position < 0 || stop.Position > 1 {
			return false
		}
	}
	return g.Type == GradientTypeLinear || g.Type == GradientTypeRadial
}

// ColorAt returns the gradient color at local point p. Points beyond the
// first or last stop take that stop's color. Invalid gradients return
// transparent.
func (g *Gradient) ColorAt(p Offset) Color {
	if !g.IsValid() {
		return ColorTransparent
	}
	var t float64
	switch g.Type {
	case GradientTypeLinear:
		dx, dy := g.End.X-g.Start.X, g.End.Y-g.Start.Y
		lenSq := dx*dx + dy*dy
		if lenSq > 0 {
			t = ((p.X-g.Start.X)*dx + (p.Y-g.Start.Y)*dy) / lenSq
		}
	case GradientTypeRadial:
		t = g.Center.Distance(p) / g.Radius
	}
	return g.colorAtT(t)
}

func (g *Gradient) colorAtT(t float64) Color {
	stops := g.Stops
	if t <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Position {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Position {
			continue
		}
		span := b.Position - a.Position
		if span <= 0 {
			return b.Color
		}
		return Lerp(a.Color, b.Color, (t-a.Position)/span)
	}
	return last.Color
}

// Bounds returns the union of widgetRect and the gradient's natural
// bounds. The result never shrinks widgetRect.
func (g *Gradient) Bounds(widgetRect Rect) Rect {
	if !g.IsValid() {
		return widgetRect
	}
	switch g.Type {
	case GradientTypeRadial:
		c, r := g.Center, g.Radius
		return widgetRect.Union(RectFromLTWH(c.X-r, c.Y-r, r*2, r*2))
	case GradientTypeLinear:
		s, e := g.Start, g.End
		return widgetRect.Union(Rect{
			Left:   math.Min(s.X, e.X),
			Top:    math.Min(s.Y, e.Y),
			Right:  math.Max(s.X, e.X),
			Bottom: math.Max(s.Y, e.Y),
		})
	}
	return widgetRect
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}
