package widgets

import (
	"github.com/cgsoftware/neoui/pkg/graphics"
	"github.com/cgsoftware/neoui/pkg/led"
	"github.com/cgsoftware/neoui/pkg/neumorphic"
	"github.com/cgsoftware/neoui/pkg/theme"
	"github.com/cgsoftware/neoui/pkg/uistate"
)

// Button is a raised push button with an LED border reflecting its state.
type Button struct {
	// OnClick is called by Tap.
	OnClick func()
	// State selects the LED effect and whether the button reacts.
	State uistate.State
	// Size picks the minimum height.
	Size theme.Size
	// Accent colors the LED; zero uses the theme accent.
	Accent graphics.Color
	// LED is the current border state from the button's driver.
	LED led.State
	// LedConfig overrides the border construction.
	LedConfig *led.Config
	LedInset  float64
	// LedWidth and LedGlow override the theme defaults when non-zero.
	LedWidth float64
	LedGlow  float64
	Theme    *theme.ThemeData
}

// Binding returns the LED effect for the button's state.
func (b Button) Binding() uistate.Binding {
	return uistate.Button(b.State)
}

// MinHeight returns the minimum height of the button body.
func (b Button) MinHeight() float64 {
	return themeOf(b.Theme).Defaults().ButtonMinHeight(b.Size)
}

// Tap fires OnClick and reports whether the button reacted.
func (b Button) Tap() bool {
	if b.State == uistate.Disabled {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}

// Paint draws the button into size. The body is inset by the small
// spacing step so its shadows stay inside size.
func (b Button) Paint(c graphics.Canvas, size graphics.Size) {
	td := themeOf(b.Theme)
	d := td.Defaults()
	pad := d.SpacingSM()
	body := graphics.Size{Width: size.Width - 2*pad, Height: size.Height - 2*pad}
	if body.Width <= 0 || body.Height <= 0 {
		return
	}

	c.Save()
	c.Translate(pad, pad)
	neumorphic.PaintSurface(c, neumorphic.Surface{
		Size:         body,
		CornerRadius: d.ButtonRadius(),
		Elevation:    d.ButtonElevation(),
		Style:        neumorphic.Raised,
		LightColor:   td.Colors.LightShadow,
		DarkColor:    td.Colors.DarkShadow,
		FillColor:    td.Colors.Background,
	})
	binding := b.Binding()
	ledBorder(c, body, td, led.Overlay{
		CornerRadius: d.ButtonRadius(),
		Accent:       accentOf(b.Accent, td),
		StrokeWidth:  b.LedWidth,
		Glow:         b.LedGlow,
		Inset:        b.LedInset,
		State:        b.LED,
		Config:       ledConfigOf(b.LedConfig),
		Intensity:    binding.Intensity,
	})
	c.Restore()
}
