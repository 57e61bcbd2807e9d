package widgets

import (
	"fmt"

	"github.com/cgsoftware/neoui/pkg/graphics"
	"github.com/cgsoftware/neoui/pkg/neumorphic"
	"github.com/cgsoftware/neoui/pkg/theme"
	"github.com/cgsoftware/neoui/pkg/uistate"
)

// Orientation is the direction a fader travels in.
type Orientation int

const (
	// Vertical faders put zero at the bottom.
	Vertical Orientation = iota
	// Horizontal faders put zero at the left.
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Fader is a linear slider with a lit LED rail up to its thumb cap.
type Fader struct {
	Value       float64
	OnChanged   func(float64)
	State       uistate.State
	Orientation Orientation
	Size        theme.Size
	Accent      graphics.Color
	// GripLines is the number of ridges on the cap, at most 4. Zero uses
	// theme.FaderGripLines and a negative count draws none.
	GripLines int
	Theme     *theme.ThemeData
}

// Press jumps the value to the position pos within a fader of the given
// size. It reports whether the value changed.
func (f *Fader) Press(pos graphics.Offset, size graphics.Size) bool {
	var v float64
	switch f.Orientation {
	case Horizontal:
		if size.Width <= 0 {
			return false
		}
		v = pos.X / size.Width
	default:
		if size.Height <= 0 {
			return false
		}
		v = 1 - pos.Y/size.Height
	}
	return f.set(v)
}

// Drag moves the value by a pointer delta within a fader of the given
// size. It reports whether the value changed.
func (f *Fader) Drag(delta graphics.Offset, size graphics.Size) bool {
	var dv float64
	switch f.Orientation {
	case Horizontal:
		if size.Width <= 0 {
			return false
		}
		dv = delta.X / size.Width
	default:
		if size.Height <= 0 {
			return false
		}
		dv = -delta.Y / size.Height
	}
	return f.set(f.Value + dv)
}

func (f *Fader) set(v float64) bool {
	if f.State == uistate.Disabled {
		return false
	}
	v = clamp01(v)
	if v == f.Value {
		return false
	}
	f.Value = v
	if f.OnChanged != nil {
		f.OnChanged(v)
	}
	return true
}

// Length returns the natural travel length of the fader.
func (f *Fader) Length() float64 {
	return themeOf(f.Theme).Defaults().FaderHeight(f.Size)
}

func (f *Fader) gripLines() int {
	n := f.GripLines
	if n == 0 {
		n = theme.FaderGripLines
	}
	return min(max(n, 0), 4)
}

// faderAxis maps positions measured from the zero end of the fader
// (along) and across it (cross) to canvas coordinates.
type faderAxis struct {
	orientation Orientation
	size        graphics.Size
}

func (a faderAxis) length() float64 {
	if a.orientation == Horizontal {
		return a.size.Width
	}
	return a.size.Height
}

func (a faderAxis) cross() float64 {
	if a.orientation == Horizontal {
		return a.size.Height
	}
	return a.size.Width
}

func (a faderAxis) point(along, cross float64) graphics.Offset {
	if a.orientation == Horizontal {
		return graphics.Offset{X: along, Y: cross}
	}
	return graphics.Offset{X: cross, Y: a.size.Height - along}
}

func (a faderAxis) span(a0, a1, c0, c1 float64) graphics.Rect {
	if a.orientation == Horizontal {
		return graphics.Rect{Left: a0, Top: c0, Right: a1, Bottom: c1}
	}
	h := a.size.Height
	return graphics.Rect{Left: c0, Top: h - a1, Right: c1, Bottom: h - a0}
}

// Paint draws the fader into size along its orientation.
func (f *Fader) Paint(c graphics.Canvas, size graphics.Size) {
	ax := faderAxis{orientation: f.Orientation, size: size}
	length, crossLen := ax.length(), ax.cross()
	if length <= 0 || crossLen <= 0 {
		return
	}
	td := themeOf(f.Theme)
	d := td.Defaults()
	colors := td.Colors
	accent := accentOf(f.Accent, td)
	v := clamp01(f.Value)
	dim := 1.0
	if f.State == uistate.Disabled {
		dim = 0.4
	}

	w := min(max(8, d.FaderTrack()), crossLen)
	cc := crossLen / 2
	thumbL := min(w*1.4, length)
	capC := min(crossLen, w*2.4)
	pos := thumbL/2 + v*(length-thumbL)

	frame := ax.span(0, length, cc-w/2, cc+w/2)
	surfaceAt(c, frame, w/2, d.SwitchElevation()*0.5, neumorphic.Sunken, td)

	slot := frame.Inflate(-0.26 * w)
	if !slot.IsEmpty() {
		top, bottom := colors.TrackGradient()
		slotR := min(slot.Width(), slot.Height()) / 2
		c.DrawRRect(rrect(slot, slotR), verticalGradient(slot, top, bottom))
		c.DrawRRect(rrect(slot, slotR), graphics.StrokePaint(colors.TrackBorder(), 1))
	}

	if v > 0 {
		railW := max(1.4, 0.16*w)
		from, to := ax.point(0.26*w, cc), ax.point(pos, cc)
		c.DrawLine(from, to, graphics.StrokePaint(accent.ScaleAlpha(v*0.35*dim), railW*3))
		rail := graphics.GradientPaint(graphics.NewLinearGradient(from, to, []graphics.GradientStop{
			{Position: 0, Color: accent.ScaleAlpha(0.25 * dim)},
			{Position: 1, Color: accent.ScaleAlpha(0.85 * dim)},
		}))
		rail.Style = graphics.PaintStyleStroke
		rail.StrokeWidth = railW
		rail.StrokeCap = graphics.CapRound
		c.DrawLine(from, to, rail)
	}

	capRect := ax.span(pos-thumbL/2, pos+thumbL/2, cc-capC/2, cc+capC/2)
	capR := min(thumbL, capC) * 0.2
	surfaceAt(c, capRect, capR, d.ButtonElevation(), neumorphic.Raised, td)
	c.DrawRRect(rrect(capRect, capR), diagonalGradient(capRect, colors.ThumbGradient()...))
	c.DrawRRect(rrect(capRect, capR), graphics.StrokePaint(colors.TrackBorder(), 1))

	n := f.gripLines()
	step := thumbL * 0.18
	grip := graphics.StrokePaint(pick(colors.IsDark, black(0.45), black(0.15)), 1)
	for i := range n {
		at := pos + (float64(i)-float64(n-1)/2)*step
		c.DrawLine(ax.point(at, cc-capC*0.25), ax.point(at, cc+capC*0.25), grip)
	}
	microLED(c, ax.point(pos, cc+capC*0.36), max(1.2, w*0.08), accent, max(v, 0.15)*dim)
}
