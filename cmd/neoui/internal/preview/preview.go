// Package preview renders single widget frames for the CLI.
//
// A preview mounts the widget's LED driver in an arena, configures it
// from the widget's UI state and advances it in fixed frame steps up to
// the requested time, so the same options always give the same pixels.
package preview

import (
	"fmt"
	"image"
	"math"
	"slices"
	"time"

	"github.com/cgsoftware/neoui/pkg/errors"
	"github.com/cgsoftware/neoui/pkg/graphics"
	"github.com/cgsoftware/neoui/pkg/led"
	"github.com/cgsoftware/neoui/pkg/theme"
	"github.com/cgsoftware/neoui/pkg/uistate"
	"github.com/cgsoftware/neoui/pkg/widgets"
)

// FrameInterval is the step the LED driver is advanced by.
const FrameInterval = 16 * time.Millisecond

// Widgets lists the widget names Render accepts.
var Widgets = []string{"button", "switch", "panel", "knob", "fader", "timeline"}

// Options selects what to render.
type Options struct {
	Widget string
	State  uistate.State
	// At is the animation time of the frame.
	At time.Duration
	// Size is the widget size; zero uses the widget's natural size.
	Size graphics.Size
	// Value drives knobs, faders and timelines.
	Value float64
	// Checked is the switch position.
	Checked bool
	// Segmented draws button borders as discrete segments.
	Segmented bool
	Theme     *theme.ThemeData
}

// Margin is the space left around the widget for its shadows.
func Margin(td *theme.ThemeData) float64 {
	return td.Defaults().SpacingMD()
}

// NaturalSize returns the size widget is drawn at by default.
func NaturalSize(widget string, td *theme.ThemeData) (graphics.Size, error) {
	d := td.Defaults()
	switch widget {
	case "button":
		h := d.ButtonMinHeight(theme.Medium) + 2*d.SpacingSM()
		return graphics.Size{Width: h * 3, Height: h}, nil
	case "switch":
		w, h := d.SwitchTrack(theme.Medium)
		return graphics.Size{Width: w, Height: h}, nil
	case "panel":
		return graphics.Size{Width: d.Device.Scaled(240), Height: d.Device.Scaled(160)}, nil
	case "knob":
		k := d.KnobSize(theme.Medium)
		return graphics.Size{Width: k, Height: k}, nil
	case "fader":
		return graphics.Size{Width: d.FaderTrack() * 3, Height: d.FaderHeight(theme.Medium)}, nil
	case "timeline":
		return graphics.Size{Width: d.Device.Scaled(320), Height: d.TimelineHeight(theme.Medium)}, nil
	}
	return graphics.Size{}, unknownWidget(widget)
}

// LEDState returns the border state at time at for a widget bound to b.
func LEDState(b uistate.Binding, at time.Duration) led.State {
	arena := led.NewArena()
	drv := arena.Mount("preview", led.DefaultTiming())
	b.Apply(drv, theme.LedBreath, theme.LedSweep, theme.LedPulse)
	for at > 0 {
		step := min(at, FrameInterval)
		arena.Update(step)
		at -= step
	}
	return drv.State()
}

// Render paints one frame of the widget described by opts.
func Render(opts Options) (*image.RGBA, error) {
	td := opts.Theme
	if td == nil {
		td = theme.DefaultLightTheme()
	}
	if !slices.Contains(Widgets, opts.Widget) {
		return nil, unknownWidget(opts.Widget)
	}
	size := opts.Size
	if size.Width <= 0 || size.Height <= 0 {
		natural, err := NaturalSize(opts.Widget, td)
		if err != nil {
			return nil, err
		}
		size = natural
	}

	paint := painter(opts, td)
	margin := Margin(td)
	canvas := graphics.NewRasterCanvas(
		int(math.Ceil(size.Width+2*margin)),
		int(math.Ceil(size.Height+2*margin)),
	)
	canvas.Clear(td.Colors.Background)
	canvas.Save()
	canvas.Translate(margin, margin)
	paint(canvas, size)
	canvas.Restore()
	return canvas.Image(), nil
}

func painter(opts Options, td *theme.ThemeData) func(graphics.Canvas, graphics.Size) {
	switch opts.Widget {
	case "button":
		b := widgets.Button{State: opts.State, Size: theme.Medium, Theme: td}
		if opts.Segmented {
			cfg := led.DefaultConfig()
			cfg.Style = led.StyleSegmented
			b.LedConfig = &cfg
		}
		b.LED = LEDState(b.Binding(), opts.At)
		return b.Paint
	case "switch":
		s := widgets.NewSwitch(opts.Checked)
		s.State, s.Size, s.Theme = opts.State, theme.Medium, td
		s.LED = LEDState(s.Binding(), opts.At)
		return s.Paint
	case "panel":
		return widgets.Panel{Theme: td}.Paint
	case "knob":
		return (&widgets.Knob{Value: opts.Value, State: opts.State, Size: theme.Medium, Theme: td}).Paint
	case "fader":
		return (&widgets.Fader{Value: opts.Value, State: opts.State, Size: theme.Medium, Theme: td}).Paint
	default:
		return (&widgets.Timeline{Progress: opts.Value, State: opts.State, Size: theme.Medium, Theme: td}).Paint
	}
}

func unknownWidget(name string) *errors.NeoError {
	return errors.New("preview.Render", errors.KindRender,
		fmt.Errorf("unknown widget %q (want one of %v)", name, Widgets))
}
