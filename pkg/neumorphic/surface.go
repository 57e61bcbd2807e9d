// Package neumorphic paints soft extruded and inset surfaces: a body in
// the background tone with a light and a dark shadow on opposite sides.
package neumorphic

import (
	"fmt"

	"github.com/cgsoftware/neoui/pkg/graphics"
)

// Style selects how the surface sits relative to the background.
type Style int

const (
	// Flat draws the body only.
	Flat Style = iota
	// Raised casts both shadows outside the body.
	Raised
	// Sunken draws both shadows inside the body, clipped to it.
	Sunken
)

func (s Style) String() string {
	switch s {
	case Flat:
		return "flat"
	case Raised:
		return "raised"
	case Sunken:
		return "sunken"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle returns the style named s, as produced by String.
func ParseStyle(s string) (Style, error) {
	for st := Flat; st <= Sunken; st++ {
		if st.String() == s {
			return st, nil
		}
	}
	return Flat, fmt.Errorf("unknown surface style %q", s)
}

// Shadow factors relative to the elevation.
const (
	raisedOffset = 1.5
	raisedBlur   = 4.0
	raisedAlpha  = 0.80

	sunkenOffset     = 1.2
	sunkenBlur       = 3.0
	sunkenDarkAlpha  = 0.6
	sunkenLightAlpha = 0.45
)

// Surface describes one neumorphic body anchored at the canvas origin.
type Surface struct {
	Size         graphics.Size
	CornerRadius float64
	Elevation    float64
	Style        Style
	LightColor   graphics.Color
	DarkColor    graphics.Color
	FillColor    graphics.Color
}

// RRect returns the body outline.
func (s Surface) RRect() graphics.RRect {
	return graphics.RRectFromRectXY(graphics.RectFromSize(s.Size), max(s.CornerRadius, 0))
}

// Shadows returns the shadows drawn for s in paint order. Raised shadows
// fall outside the body; sunken shadows are meant to be clipped to it.
func (s Surface) Shadows() []graphics.BoxShadow {
	e := s.Elevation
	if e <= 0 {
		return nil
	}
	switch s.Style {
	case Raised:
		off, blur := e*raisedOffset, e*raisedBlur
		return []graphics.BoxShadow{
			shadow(s.DarkColor.WithAlpha(raisedAlpha), off, blur),
			shadow(s.LightColor.WithAlpha(raisedAlpha), -off, blur),
		}
	case Sunken:
		off, blur := e*sunkenOffset, e*sunkenBlur
		return []graphics.BoxShadow{
			shadow(s.DarkColor.WithAlpha(sunkenDarkAlpha), -off, blur),
			shadow(s.LightColor.WithAlpha(sunkenLightAlpha), off, blur),
		}
	default:
		return nil
	}
}

func shadow(c graphics.Color, offset, blur float64) graphics.BoxShadow {
	return graphics.BoxShadow{
		Color:      c,
		Offset:     graphics.Offset{X: offset, Y: offset},
		BlurRadius: blur,
		BlurStyle:  graphics.BlurStyleNormal,
	}
}

// PaintSurface draws s onto canvas. Raised shadows are painted first and
// covered by the body; sunken shadows are painted over the body inside a
// clip to its outline, so nothing bleeds outside it.
func PaintSurface(canvas graphics.Canvas, s Surface) {
	if s.Size.Width <= 0 || s.Size.Height <= 0 {
		return
	}
	rr := s.RRect()
	body := graphics.FillPaint(s.FillColor)

	switch s.Style {
	case Raised:
		for _, sh := range s.Shadows() {
			canvas.DrawRRectShadow(rr, sh)
		}
		canvas.DrawRRect(rr, body)
	case Sunken:
		canvas.DrawRRect(rr, body)
		shadows := s.Shadows()
		if len(shadows) == 0 {
			return
		}
		canvas.Save()
		canvas.ClipRRect(rr)
		for _, sh := range shadows {
			canvas.DrawRRectShadow(rr, sh)
		}
		canvas.Restore()
	default:
		canvas.DrawRRect(rr, body)
	}
}

// ShadowColors derives the light and dark shadow tones for a background.
// On light themes the light shadow is white; on dark themes it is the
// background lightened slightly. The dark shadow is always the
// background darkened in HSL space.
func ShadowColors(background graphics.Color, isDark bool) (light, dark graphics.Color) {
	if isDark {
		light = background.AdjustLightness(0.05)
	} else {
		light = graphics.ColorWhite
	}
	return light, background.AdjustLightness(-0.15)
}
