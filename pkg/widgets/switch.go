package widgets

import (
	"time"

	"github.com/cgsoftware/neoui/pkg/animation"
	"github.com/cgsoftware/neoui/pkg/graphics"
	"github.com/cgsoftware/neoui/pkg/led"
	"github.com/cgsoftware/neoui/pkg/neumorphic"
	"github.com/cgsoftware/neoui/pkg/theme"
	"github.com/cgsoftware/neoui/pkg/uistate"
)

// Switch is a hardware-style toggle: a sunken track with a raised thumb
// that slides between off and on.
//
// The thumb is animated by a controller the host advances with Advance.
type Switch struct {
	Checked   bool
	OnChanged func(bool)
	State     uistate.State
	Size      theme.Size
	Accent    graphics.Color
	// LED is the current thumb border state from the switch's driver.
	LED      led.State
	LedInset float64
	Theme    *theme.ThemeData

	thumb *animation.AnimationController
}

// NewSwitch returns a switch resting at checked.
func NewSwitch(checked bool) *Switch {
	s := &Switch{Checked: checked}
	s.thumb = animation.NewAnimationController(theme.SwitchAnimation)
	s.thumb.Curve = animation.EaseInOut
	if checked {
		s.thumb.Value = 1
	}
	return s
}

// Binding returns the LED effect for the switch's state and position.
func (s *Switch) Binding() uistate.Binding {
	return uistate.Switch(s.State, s.Checked)
}

// Toggle flips the switch, starts the thumb animation and calls
// OnChanged. Disabled switches do nothing and return false.
func (s *Switch) Toggle() bool {
	if s.State == uistate.Disabled {
		return false
	}
	s.SetChecked(!s.Checked)
	if s.OnChanged != nil {
		s.OnChanged(s.Checked)
	}
	return true
}

// SetChecked moves the switch to checked without calling OnChanged.
func (s *Switch) SetChecked(checked bool) {
	s.Checked = checked
	if s.thumb == nil {
		s.thumb = animation.NewAnimationController(theme.SwitchAnimation)
		s.thumb.Curve = animation.EaseInOut
	}
	if checked {
		s.thumb.Forward()
	} else {
		s.thumb.Reverse()
	}
}

// Advance moves the thumb animation by dt and reports whether it is still
// moving.
func (s *Switch) Advance(dt time.Duration) bool {
	if s.thumb == nil {
		return false
	}
	return s.thumb.Advance(dt)
}

// ThumbPosition returns the thumb travel in [0, 1].
func (s *Switch) ThumbPosition() float64 {
	if s.thumb == nil {
		if s.Checked {
			return 1
		}
		return 0
	}
	return clamp01(s.thumb.Value)
}

// TrackSize returns the natural size of the track.
func (s *Switch) TrackSize() graphics.Size {
	w, h := themeOf(s.Theme).Defaults().SwitchTrack(s.Size)
	return graphics.Size{Width: w, Height: h}
}

// Paint draws the track filling size and the thumb at its current
// position.
func (s *Switch) Paint(c graphics.Canvas, size graphics.Size) {
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	td := themeOf(s.Theme)
	d := td.Defaults()
	colors := td.Colors
	radius := size.Height / 2
	elevation := d.SwitchElevation()

	// Shadow colors swap so the track reads as a groove.
	neumorphic.PaintSurface(c, neumorphic.Surface{
		Size:         size,
		CornerRadius: radius,
		Elevation:    elevation * 0.3,
		Style:        neumorphic.Sunken,
		LightColor:   colors.DarkShadow,
		DarkColor:    colors.LightShadow,
		FillColor:    colors.Background,
	})
	track := graphics.RectFromSize(size)
	top, bottom := colors.TrackGradient()
	c.DrawRRect(rrect(track, radius), verticalGradient(track, top, bottom))
	c.DrawRRect(rrect(track, radius), graphics.StrokePaint(colors.TrackBorder(), 1))

	thumbSize := min(d.SwitchThumb(s.Size), size.Height)
	pad := (size.Height - thumbSize) / 2
	travel := max(size.Width-thumbSize-pad*2, 0)
	pos := s.ThumbPosition()
	origin := animation.TweenOffset(
		graphics.Offset{X: pad, Y: pad},
		graphics.Offset{X: pad + travel, Y: pad},
	).Evaluate(pos)

	c.Save()
	c.Translate(origin.X, origin.Y)
	s.paintThumb(c, thumbSize, td, pos)
	c.Restore()
}

func (s *Switch) paintThumb(c graphics.Canvas, size float64, td *theme.ThemeData, pos float64) {
	colors := td.Colors
	box := graphics.Size{Width: size, Height: size}
	r := size / 2
	center := graphics.Offset{X: r, Y: r}

	neumorphic.PaintSurface(c, neumorphic.Surface{
		Size:         box,
		CornerRadius: r,
		Elevation:    td.Defaults().SwitchElevation(),
		Style:        neumorphic.Raised,
		LightColor:   colors.LightShadow,
		DarkColor:    colors.DarkShadow,
		FillColor:    colors.Background,
	})
	c.DrawCircle(center, r, graphics.GradientPaint(graphics.NewRadialGradient(
		graphics.Offset{X: size * 0.3, Y: size * 0.3}, size*0.8, evenStops(colors.ThumbGradient()...),
	)))
	c.DrawCircle(center, r, graphics.GradientPaint(graphics.NewRadialGradient(
		graphics.Offset{X: size * 0.35, Y: size * 0.25}, size*0.4,
		evenStops(colors.Highlight(), graphics.ColorTransparent),
	)))

	if !s.Checked {
		return
	}
	accent := accentOf(s.Accent, td)
	binding := s.Binding()
	ledBorder(c, box, td, led.Overlay{
		CornerRadius: r,
		Accent:       accent,
		StrokeWidth:  td.Defaults().LedWidth() * 0.8,
		Inset:        s.LedInset,
		State:        s.LED,
		Config:       led.Config{Style: led.StyleContinuous},
		Intensity:    binding.Intensity,
	})

	alpha := 0.7
	if s.State == uistate.Active {
		alpha = 1
	}
	// The dot fades in as the thumb arrives.
	dot := animation.TweenColor(accent.WithAlpha(0), accent.WithAlpha(alpha)).Evaluate(pos)
	dotR := size * 0.12
	c.DrawCircle(center, dotR*2, graphics.FillPaint(dot.ScaleAlpha(0.3)))
	c.DrawCircle(center, dotR, graphics.FillPaint(dot))
}
