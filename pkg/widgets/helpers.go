package widgets

import (
	"math"

	"github.com/cgsoftware/neoui/pkg/graphics"
	"github.com/cgsoftware/neoui/pkg/led"
	"github.com/cgsoftware/neoui/pkg/neumorphic"
	"github.com/cgsoftware/neoui/pkg/theme"
)

// pillRadius is larger than any control, so rounded rects become pills.
const pillRadius = 999

func themeOf(t *theme.ThemeData) *theme.ThemeData {
	if t == nil {
		return theme.DefaultLightTheme()
	}
	return t
}

func accentOf(c graphics.Color, td *theme.ThemeData) graphics.Color {
	if c == 0 {
		return td.Colors.Accent
	}
	return c
}

func ledConfigOf(c *led.Config) led.Config {
	if c == nil {
		return led.DefaultConfig()
	}
	return *c
}

func clamp01(v float64) float64 {
	return graphics.Clamp01(v)
}

// pick returns dark or light depending on the palette.
func pick[T any](isDark bool, dark, light T) T {
	if isDark {
		return dark
	}
	return light
}

func white(a float64) graphics.Color { return graphics.ColorWhite.WithAlpha(a) }
func black(a float64) graphics.Color { return graphics.ColorBlack.WithAlpha(a) }

// evenStops spreads colors evenly from 0 to 1.
func evenStops(colors ...graphics.Color) []graphics.GradientStop {
	stops := make([]graphics.GradientStop, len(colors))
	for i, c := range colors {
		pos := 0.0
		if len(colors) > 1 {
			pos = float64(i) / float64(len(colors)-1)
		}
		stops[i] = graphics.GradientStop{Position: pos, Color: c}
	}
	return stops
}

// verticalGradient runs top to bottom across r.
func verticalGradient(r graphics.Rect, colors ...graphics.Color) graphics.Paint {
	return graphics.GradientPaint(graphics.NewLinearGradient(
		graphics.Offset{X: r.Left, Y: r.Top},
		graphics.Offset{X: r.Left, Y: r.Bottom},
		evenStops(colors...),
	))
}

// diagonalGradient runs from the top-left to the bottom-right of r.
func diagonalGradient(r graphics.Rect, colors ...graphics.Color) graphics.Paint {
	return graphics.GradientPaint(graphics.NewLinearGradient(
		graphics.Offset{X: r.Left, Y: r.Top},
		graphics.Offset{X: r.Right, Y: r.Bottom},
		evenStops(colors...),
	))
}

func rrect(r graphics.Rect, radius float64) graphics.RRect {
	return graphics.RRectFromRectXY(r, radius)
}

// ledBorder paints an LED overlay covering size. Off states draw nothing.
func ledBorder(c graphics.Canvas, size graphics.Size, td *theme.ThemeData, o led.Overlay) {
	if o.State.Mode == led.ModeOff {
		return
	}
	d := td.Defaults()
	o.Size = size
	if o.StrokeWidth == 0 {
		o.StrokeWidth = d.LedWidth()
	}
	if o.Glow == 0 {
		o.Glow = d.LedGlow()
	}
	led.Render(c, o)
}

// surfaceAt paints a themed neumorphic body occupying r.
func surfaceAt(c graphics.Canvas, r graphics.Rect, radius, elevation float64, style neumorphic.Style, td *theme.ThemeData) {
	c.Save()
	c.Translate(r.Left, r.Top)
	neumorphic.PaintSurface(c, neumorphic.Surface{
		Size:         graphics.Size{Width: r.Width(), Height: r.Height()},
		CornerRadius: radius,
		Elevation:    elevation,
		Style:        style,
		LightColor:   td.Colors.LightShadow,
		DarkColor:    td.Colors.DarkShadow,
		FillColor:    td.Colors.Background,
	})
	c.Restore()
}

// microLED paints a small glowing dot, used as a position marker on caps.
func microLED(c graphics.Canvas, center graphics.Offset, radius float64, accent graphics.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	c.DrawCircle(center, radius*2, graphics.FillPaint(accent.ScaleAlpha(alpha*0.3)))
	c.DrawCircle(center, radius, graphics.FillPaint(accent.ScaleAlpha(alpha)))
}

func degrees(d float64) float64 {
	return d * math.Pi / 180
}
