// Package led animates and paints the LED border drawn over neumorphic
// widgets.
//
// A [Driver] owns the three time-varying effects (breath, sweep, pulse)
// and is advanced explicitly with Update(dt), usually from an
// [animation.FrameScheduler] ticker. Each Update returns an immutable
// [State] that [Render] turns into canvas strokes, either as a continuous
// rounded-rect border or as discrete segments.
//
//	drv := led.NewDriver(led.DefaultTiming())
//	drv.SetMode(led.ModeBreath)
//	state := drv.Update(16 * time.Millisecond)
//	led.Render(canvas, led.Overlay{Size: size, State: state, ...})
package led

import "fmt"

// Mode selects the LED effect.
type Mode int

const (
	// ModeOff draws nothing.
	ModeOff Mode = iota
	// ModeSolid draws a steady border.
	ModeSolid
	// ModeBreath fades the border in and out.
	ModeBreath
	// ModeSweep runs a bright dash around the border.
	ModeSweep
	// ModePulse flashes the border once, or repeatedly in auto mode.
	ModePulse
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case ModeOff:
		return "off"
	case ModeSolid:
		return "solid"
	case ModeBreath:
		return "breath"
	case ModeSweep:
		return "sweep"
	case ModePulse:
		return "pulse"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode returns the mode named s, as produced by String.
func ParseMode(s string) (Mode, error) {
	for m := ModeOff; m <= ModePulse; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return ModeOff, fmt.Errorf("unknown LED mode %q", s)
}
