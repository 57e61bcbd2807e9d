package led

import (
	"github.com/cgsoftware/neoui/pkg/graphics"
)

// Continuous border constants.
const (
	// SweepDash is the lit length of the sweep dash.
	SweepDash = 22.0
	// SweepGap is the dark length between sweep dashes.
	SweepGap = 280.0

	glowMinAlpha   = 0.05
	strokeMinAlpha = 0.02
)

// Overlay describes one LED border draw.
type Overlay struct {
	// Size is the area allotted to the widget, border included.
	Size         graphics.Size
	CornerRadius float64
	Accent       graphics.Color
	// StrokeWidth is the core stroke width, at least 1.
	StrokeWidth float64
	// Glow is the halo width on each side of the core stroke.
	Glow  float64
	Inset float64
	State State
	// Config selects continuous or segmented rendering.
	Config Config
	// Intensity scales the state's alpha. Zero draws nothing.
	Intensity float64
}

// Geometry returns the rounded rect the border is stroked along. The rect
// is pulled in from the allotted size far enough that the glow is never
// clipped. ok is false when nothing is left to draw.
func Geometry(size graphics.Size, cornerRadius, strokeWidth, glow, inset float64) (rr graphics.RRect, ok bool) {
	w := max(strokeWidth, 1)
	g := max(glow, 0)
	r := max(cornerRadius, 0)
	in := max(inset, 0)

	safe := (g + w) * 0.75
	margin := w/2 + in + safe
	rect := graphics.Rect{
		Left:   margin,
		Top:    margin,
		Right:  size.Width - margin,
		Bottom: size.Height - margin,
	}
	if rect.IsEmpty() {
		return graphics.RRect{}, false
	}
	return graphics.RRectFromRectXY(rect, max(r-margin, 0)), true
}

// Render paints the LED border described by o onto canvas. It never
// fails; degenerate sizes draw nothing.
func Render(canvas graphics.Canvas, o Overlay) {
	rr, ok := Geometry(o.Size, o.CornerRadius, o.StrokeWidth, o.Glow, o.Inset)
	if !ok {
		return
	}
	w := max(o.StrokeWidth, 1)
	g := max(o.Glow, 0)

	switch o.Config.Style {
	case StyleSegmented:
		renderSegmented(canvas, rr.Rect, o.Accent, w, o.State, o.Config, o.Intensity)
	default:
		alpha := graphics.Clamp01(o.State.EffectiveAlpha() * o.Intensity)
		renderContinuous(canvas, rr, o.Accent, w, g, o.State.Mode, alpha, o.State.SweepPosition)
	}
}

func renderContinuous(canvas graphics.Canvas, rr graphics.RRect, accent graphics.Color, width, glow float64, mode Mode, alpha, sweepPos float64) {
	path := graphics.NewPath()
	path.AddRRect(rr)

	baseAlpha := graphics.Clamp01(alpha * SolidAlpha)

	if glow > 0 && baseAlpha > glowMinAlpha {
		canvas.DrawPath(path, graphics.StrokePaint(accent.WithAlpha(baseAlpha*GlowAlpha), width+glow*2))
	}

	if mode == ModeSweep {
		paint := graphics.StrokePaint(accent.WithAlpha(baseAlpha), max(1, width*1.2))
		paint.Dash = &graphics.DashPattern{
			Intervals: []float64{SweepDash, SweepGap},
			Phase:     (1 - sweepPos) * (SweepDash + SweepGap),
		}
		canvas.DrawPath(path, paint)
		return
	}

	if baseAlpha > strokeMinAlpha {
		canvas.DrawPath(path, graphics.StrokePaint(accent.WithAlpha(baseAlpha), width))
	}
}
