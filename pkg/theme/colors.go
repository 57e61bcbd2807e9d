// Package theme holds the neumorphic palettes, the device-aware size
// defaults and the YAML theme file loader.
package theme

import "github.com/cgsoftware/neoui/pkg/graphics"

// DefaultAccent is the LED accent used by both palettes.
const DefaultAccent = graphics.Color(0xFF00E5FF)

// Colors is a neumorphic palette. Background and body share one tone;
// the shadows sell the extrusion.
type Colors struct {
	Background  graphics.Color
	LightShadow graphics.Color
	DarkShadow  graphics.Color
	Accent      graphics.Color
	IsDark      bool
}

// LightColors returns the light palette.
func LightColors() Colors {
	return Colors{
		Background:  graphics.Color(0xFFE0E5EC),
		LightShadow: graphics.ColorWhite,
		DarkShadow:  graphics.Color(0xFFA3B1C6).WithAlpha(0.6),
		Accent:      DefaultAccent,
	}
}

// DarkColors returns the dark palette.
func DarkColors() Colors {
	return Colors{
		Background:  graphics.Color(0xFF2D3238),
		LightShadow: graphics.Color(0xFF3B424A),
		DarkShadow:  graphics.Color(0xFF1A1E22),
		Accent:      DefaultAccent,
		IsDark:      true,
	}
}

// WithAccent returns a copy of c using accent for LEDs.
func (c Colors) WithAccent(accent graphics.Color) Colors {
	c.Accent = accent
	return c
}

// New returns the light or dark palette with the given accent.
func New(dark bool, accent graphics.Color) Colors {
	if dark {
		return DarkColors().WithAccent(accent)
	}
	return LightColors().WithAccent(accent)
}

// TrackGradient returns the top and bottom colors of a recessed track.
func (c Colors) TrackGradient() (top, bottom graphics.Color) {
	if c.IsDark {
		return graphics.Color(0xFF1A1E22), graphics.Color(0xFF2D3238)
	}
	return graphics.Color(0xFFCDD4DD), graphics.Color(0xFFE0E5EC)
}

// TrackBorder returns the hairline drawn around recessed tracks.
func (c Colors) TrackBorder() graphics.Color {
	if c.IsDark {
		return graphics.ColorBlack.WithAlpha(0.2)
	}
	return graphics.Color(0xFFA3B1C6).WithAlpha(0.1)
}

// ThumbGradient returns the radial stops of a metallic thumb or knob cap,
// from highlight to rim.
func (c Colors) ThumbGradient() []graphics.Color {
	if c.IsDark {
		return []graphics.Color{0xFF3B424A, 0xFF2D3238, 0xFF1A1E22}
	}
	return []graphics.Color{graphics.ColorWhite, 0xFFE0E5EC, 0xFFCDD4DD}
}

// Highlight returns the specular highlight tint for raised caps.
func (c Colors) Highlight() graphics.Color {
	if c.IsDark {
		return graphics.ColorWhite.WithAlpha(0.08)
	}
	return graphics.ColorWhite.WithAlpha(0.35)
}
