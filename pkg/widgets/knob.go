package widgets

import (
	"math"

	"github.com/cgsoftware/neoui/pkg/graphics"
	"github.com/cgsoftware/neoui/pkg/neumorphic"
	"github.com/cgsoftware/neoui/pkg/theme"
	"github.com/cgsoftware/neoui/pkg/uistate"
)

// Knob is a rotary control with a tick scale and an LED ring showing its
// value in [0, 1].
type Knob struct {
	Value     float64
	OnChanged func(float64)
	State     uistate.State
	Size      theme.Size
	Accent    graphics.Color
	// Sensitivity is the value change per pixel of vertical drag.
	// Zero uses theme.KnobSensitivity.
	Sensitivity float64
	// TickCount is clamped to [8, 41]. Zero uses theme.KnobTickCount.
	TickCount int
	Theme     *theme.ThemeData
}

// Knob ring geometry, as fractions of the body radius.
const (
	knobBodyRadius  = 0.98
	knobInnerRadius = 0.62
	knobRingRadius  = 0.78
	knobTickInner   = 1.05
	knobTickOuter   = 1.12
	// The ring arc is trimmed at both ends so its caps clear the ticks.
	knobArcTrim = 7.0
)

// Drag applies a vertical drag of dy pixels. Dragging up raises the
// value. It reports whether the value changed.
func (k *Knob) Drag(dy float64) bool {
	if k.State == uistate.Disabled {
		return false
	}
	sens := k.Sensitivity
	if sens == 0 {
		sens = theme.KnobSensitivity
	}
	next := clamp01(k.Value - dy*sens)
	if next == k.Value {
		return false
	}
	k.Value = next
	if k.OnChanged != nil {
		k.OnChanged(next)
	}
	return true
}

// Diameter returns the natural size of the knob.
func (k *Knob) Diameter() float64 {
	return themeOf(k.Theme).Defaults().KnobSize(k.Size)
}

// Ticks returns the number of scale ticks drawn.
func (k *Knob) Ticks() int {
	n := k.TickCount
	if n == 0 {
		n = theme.KnobTickCount
	}
	return min(max(n, 8), 41)
}

// Paint draws the knob centered in size.
func (k *Knob) Paint(c graphics.Canvas, size graphics.Size) {
	d := min(size.Width, size.Height)
	if d <= 0 {
		return
	}
	td := themeOf(k.Theme)
	colors := td.Colors
	accent := accentOf(k.Accent, td)
	v := clamp01(k.Value)

	// The tick scale reaches knobTickOuter, so the body is scaled to fit.
	r := d / 2 / knobTickOuter
	center := graphics.Offset{X: size.Width / 2, Y: size.Height / 2}

	k.paintTicks(c, center, r, colors.IsDark)

	body := knobBodyRadius * r
	surfaceAt(c, circleRect(center, body), body, td.Defaults().ButtonElevation(), neumorphic.Raised, td)

	start := degrees(theme.KnobStartAngle + knobArcTrim)
	sweep := degrees(theme.KnobSweepAngle - 2*knobArcTrim)
	ringR := knobRingRadius * r
	ringW := max(1.2, 0.035*r)

	groove := graphics.StrokePaint(pick(colors.IsDark, black(0.35), black(0.08)), ringW)
	c.DrawArc(center, ringR, start, sweep, groove)

	alpha := min(max(v*v, 0.03), 1)
	if k.State == uistate.Disabled {
		alpha *= 0.4
	}
	if v > 0 {
		progress := sweep * v
		c.DrawArc(center, ringR, start, progress, graphics.StrokePaint(accent.ScaleAlpha(0.18*alpha), ringW*3.2))
		c.DrawArc(center, ringR, start, progress, graphics.StrokePaint(accent.ScaleAlpha(0.28*alpha), ringW*2))
		c.DrawArc(center, ringR, start, progress, graphics.StrokePaint(accent.ScaleAlpha(alpha), ringW))
	}

	inner := knobInnerRadius * r
	c.DrawCircle(center, inner, graphics.GradientPaint(graphics.NewRadialGradient(
		graphics.Offset{X: center.X - inner*0.4, Y: center.Y - inner*0.4}, inner*1.6,
		evenStops(colors.ThumbGradient()...),
	)))
	c.DrawCircle(center, inner, graphics.StrokePaint(colors.TrackBorder(), 1))

	// Marker capsule pointing at the current value.
	c.Save()
	c.Translate(center.X, center.Y)
	c.Rotate(start + sweep*v)
	markH := max(2, 0.06*r)
	marker := graphics.Rect{Left: inner * 0.45, Top: -markH / 2, Right: inner * 0.9, Bottom: markH / 2}
	c.DrawRRect(rrect(marker, pillRadius), graphics.FillPaint(accent.ScaleAlpha(max(alpha, 0.6))))
	c.Restore()
}

func (k *Knob) paintTicks(c graphics.Canvas, center graphics.Offset, r float64, isDark bool) {
	n := k.Ticks()
	start := degrees(theme.KnobStartAngle)
	sweep := degrees(theme.KnobSweepAngle)
	for i := range n {
		a := start + sweep*float64(i)/float64(n-1)
		cos, sin := math.Cos(a), math.Sin(a)
		inner, outer := knobTickInner*r, knobTickOuter*r
		paint := graphics.StrokePaint(pick(isDark, white(0.18), black(0.18)), 1)
		if i%5 == 0 {
			inner -= 0.03 * r
			paint = graphics.StrokePaint(pick(isDark, white(0.35), black(0.35)), 1.5)
		}
		c.DrawLine(
			graphics.Offset{X: center.X + cos*inner, Y: center.Y + sin*inner},
			graphics.Offset{X: center.X + cos*outer, Y: center.Y + sin*outer},
			paint,
		)
	}
}

func circleRect(center graphics.Offset, radius float64) graphics.Rect {
	return graphics.Rect{
		Left:   center.X - radius,
		Top:    center.Y - radius,
		Right:  center.X + radius,
		Bottom: center.Y + radius,
	}
}
