package widgets

import (
	"time"

	"github.com/cgsoftware/neoui/pkg/animation"
	"github.com/cgsoftware/neoui/pkg/graphics"
	"github.com/cgsoftware/neoui/pkg/neumorphic"
	"github.com/cgsoftware/neoui/pkg/theme"
	"github.com/cgsoftware/neoui/pkg/uistate"
)

// TimelineAnimation is how long the thumb takes to glide to a new
// progress set with SetProgress(p, true).
const TimelineAnimation = 120 * time.Millisecond

// Timeline is a horizontal scrub bar. Progress is in [0, 1].
type Timeline struct {
	Progress float64
	// OnSeek is called by Seek with the new progress.
	OnSeek func(float64)
	State  uistate.State
	Size   theme.Size
	Accent graphics.Color
	Theme  *theme.ThemeData

	glide *animation.AnimationController
}

// Seek moves the progress to x within a timeline width wide and reports
// whether it changed.
func (t *Timeline) Seek(x, width float64) bool {
	if t.State == uistate.Disabled || width <= 0 {
		return false
	}
	p := clamp01(x / width)
	if p == t.Progress {
		return false
	}
	t.setProgress(p, false)
	if t.OnSeek != nil {
		t.OnSeek(p)
	}
	return true
}

// SetProgress sets the progress without calling OnSeek. With animate the
// thumb glides there over TimelineAnimation.
func (t *Timeline) SetProgress(p float64, animate bool) {
	t.setProgress(clamp01(p), animate)
}

func (t *Timeline) setProgress(p float64, animate bool) {
	from := t.DisplayProgress()
	t.Progress = p
	if !animate {
		if t.glide != nil {
			t.glide.Stop()
			t.glide.Value = p
		}
		return
	}
	if t.glide == nil {
		t.glide = animation.NewAnimationController(TimelineAnimation)
		t.glide.Curve = animation.EaseOut
	}
	t.glide.Stop()
	t.glide.Value = from
	t.glide.AnimateTo(p)
}

// Advance moves a running glide by dt and reports whether it continues.
func (t *Timeline) Advance(dt time.Duration) bool {
	if t.glide == nil {
		return false
	}
	return t.glide.Advance(dt)
}

// DisplayProgress is the progress the thumb is drawn at, which lags
// Progress while a glide runs.
func (t *Timeline) DisplayProgress() float64 {
	if t.glide != nil && t.glide.IsAnimating() {
		return clamp01(t.glide.Value)
	}
	return clamp01(t.Progress)
}

// Height returns the natural height of the timeline.
func (t *Timeline) Height() float64 {
	return themeOf(t.Theme).Defaults().TimelineHeight(t.Size)
}

// Paint draws the timeline into size.
func (t *Timeline) Paint(c graphics.Canvas, size graphics.Size) {
	h := size.Height
	if size.Width <= 0 || h <= 0 {
		return
	}
	td := themeOf(t.Theme)
	d := td.Defaults()
	colors := td.Colors
	accent := accentOf(t.Accent, td)
	dim := 1.0
	if t.State == uistate.Disabled {
		dim = 0.4
	}

	thumbW := min(1.3*h, size.Width)
	thumbH := 0.92 * h
	pad := 0.55 * thumbW
	travel := max(size.Width-2*pad, 0)
	x := pad + t.DisplayProgress()*travel

	groove := graphics.RectFromSize(size)
	surfaceAt(c, groove, h/2, d.SwitchElevation()*0.5, neumorphic.Sunken, td)

	channel := groove.Inflate(-0.18 * h)
	if !channel.IsEmpty() {
		top, bottom := colors.TrackGradient()
		c.DrawRRect(rrect(channel, pillRadius), verticalGradient(channel, top, bottom))
		if fillW := x - channel.Left; fillW > 0.5 {
			fill := channel
			fill.Right = min(channel.Left+fillW, channel.Right)
			c.DrawRRect(rrect(fill, pillRadius), graphics.GradientPaint(graphics.NewLinearGradient(
				graphics.Offset{X: fill.Left, Y: fill.Top},
				graphics.Offset{X: fill.Right, Y: fill.Top},
				[]graphics.GradientStop{
					{Position: 0, Color: accent.ScaleAlpha(0.2 * dim)},
					{Position: 1, Color: accent.ScaleAlpha(0.7 * dim)},
				},
			)))
		}
	}

	thumb := graphics.Rect{Left: x - thumbW/2, Top: (h - thumbH) / 2, Right: x + thumbW/2, Bottom: (h + thumbH) / 2}
	thumbR := thumbH * 0.3
	surfaceAt(c, thumb, thumbR, d.ButtonElevation()*0.6, neumorphic.Raised, td)
	c.DrawRRect(rrect(thumb, thumbR), diagonalGradient(thumb, colors.ThumbGradient()...))
	microLED(c, thumb.Center(), max(1.2, 0.06*h), accent, dim)
}
