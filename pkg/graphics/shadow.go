package graphics

import (
	"fmt"
	"math"
)

// BlurStyle controls how the blur mask is generated.
type BlurStyle int

const (
	// BlurStyleOuter draws nothing inside, blurs outside only.
	BlurStyleOuter BlurStyle = iota
	// BlurStyleNormal blurs inside and outside the shape.
	BlurStyleNormal
	// BlurStyleSolid keeps the shape solid inside, blurs outside.
	BlurStyleSolid
	// BlurStyleInner blurs inside the shape only, nothing outside.
	BlurStyleInner
)

// String returns a human-readable representation of the blur style.
func (s BlurStyle) String() string {
	switch s {
	case BlurStyleOuter:
		return "outer"
	case BlurStyleNormal:
		return "normal"
	case BlurStyleSolid:
		return "solid"
	case BlurStyleInner:
		return "inner"
	default:
		return fmt.Sprintf("BlurStyle(%d)", int(s))
	}
}

// BoxShadow defines a shadow cast by a shape.
//
// The shape is grown by Spread, moved by Offset and blurred with a
// gaussian of sigma BlurRadius * 0.5. BlurStyle then decides which part
// of the blurred mask is kept relative to the (offset) shape.
type BoxShadow struct {
	Color      Color
	Offset     Offset
	BlurRadius float64 // sigma = blurRadius * 0.5
	Spread     float64
	BlurStyle  BlurStyle
}

// Sigma returns the gaussian sigma approximated by the raster blur.
// Returns 0 if BlurRadius is zero or negative.
func (s BoxShadow) Sigma() float64 {
	if s.BlurRadius <= 0 {
		return 0
	}
	return s.BlurRadius * 0.5
}

// Bounds returns the area the shadow of rrect can touch, including the
// blur falloff.
func (s BoxShadow) Bounds(rrect RRect) Rect {
	r := rrect.Rect.Inflate(math.Max(0, s.Spread)).Translate(s.Offset.X, s.Offset.Y)
	return r.Inflate(math.Ceil(s.Sigma() * 3))
}
