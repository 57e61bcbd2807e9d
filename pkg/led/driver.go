package led

import (
	"time"

	"github.com/cgsoftware/neoui/pkg/animation"
)

// Period floors and defaults for the LED effects.
const (
	MinBreathPeriod = 600 * time.Millisecond
	MinSweepPeriod  = 200 * time.Millisecond
	MinPulsePeriod  = 120 * time.Millisecond

	DefaultBreathPeriod = 1600 * time.Millisecond
	DefaultSweepPeriod  = 600 * time.Millisecond
	DefaultPulsePeriod  = 220 * time.Millisecond

	// PulseGap is the pause between auto pulses.
	PulseGap = 16 * time.Millisecond
)

// Timing configures the effect periods of a [Driver].
type Timing struct {
	Breath time.Duration
	Sweep  time.Duration
	Pulse  time.Duration

	// SweepLoop restarts the sweep each time it reaches the end.
	// Otherwise the sweep runs once and holds at the end.
	SweepLoop bool

	// PulseAuto repeats the pulse with a PulseGap pause.
	// Otherwise each pulse is an event fired by mode change or Trigger.
	PulseAuto bool
}

// DefaultTiming returns the default periods with a looping sweep and
// event-driven pulses.
func DefaultTiming() Timing {
	return Timing{
		Breath:    DefaultBreathPeriod,
		Sweep:     DefaultSweepPeriod,
		Pulse:     DefaultPulsePeriod,
		SweepLoop: true,
	}
}

// Clamped returns t with every period raised to its floor.
func (t Timing) Clamped() Timing {
	t.Breath = max(t.Breath, MinBreathPeriod)
	t.Sweep = max(t.Sweep, MinSweepPeriod)
	t.Pulse = max(t.Pulse, MinPulsePeriod)
	return t
}

// Driver runs the breath, sweep and pulse effects for one widget.
//
// The breath wave runs continuously. The sweep and pulse effects only
// run while their mode is selected and the driver is enabled; any change
// to mode, enabled or their own timing restarts them from zero.
//
// A Driver is not safe for concurrent use. It is meant to be advanced
// from a single frame callback.
type Driver struct {
	mode    Mode
	enabled bool
	timing  Timing

	breath *animation.AnimationController
	sweep  *animation.AnimationController
	pulse  *animation.AnimationController
}

// NewDriver returns an enabled driver in ModeOff.
func NewDriver(timing Timing) *Driver {
	timing = timing.Clamped()
	d := &Driver{
		enabled: true,
		timing:  timing,
		breath:  animation.NewAnimationController(timing.Breath),
		sweep:   animation.NewAnimationController(timing.Sweep),
		pulse:   animation.NewAnimationController(timing.Pulse),
	}
	d.breath.Curve = animation.Triangle
	d.pulse.Curve = animation.Triangle
	d.breath.Repeat(0)
	return d
}

// Mode returns the selected mode.
func (d *Driver) Mode() Mode { return d.mode }

// Enabled reports whether the driver produces a lit state.
func (d *Driver) Enabled() bool { return d.enabled }

// Timing returns the clamped timing in use.
func (d *Driver) Timing() Timing { return d.timing }

// SetMode selects the effect.
func (d *Driver) SetMode(mode Mode) {
	if mode == d.mode {
		return
	}
	d.mode = mode
	d.restartSweep()
	d.restartPulse()
}

// SetEnabled switches the driver on or off. A disabled driver reports
// ModeOff regardless of the selected mode.
func (d *Driver) SetEnabled(enabled bool) {
	if enabled == d.enabled {
		return
	}
	d.enabled = enabled
	d.restartSweep()
	d.restartPulse()
}

// SetTiming replaces the effect periods. Only the effects whose period
// or flag changed are restarted.
func (d *Driver) SetTiming(timing Timing) {
	timing = timing.Clamped()
	prev := d.timing
	d.timing = timing

	if timing.Breath != prev.Breath {
		d.breath.Duration = timing.Breath
		d.breath.Repeat(0)
	}
	if timing.Sweep != prev.Sweep || timing.SweepLoop != prev.SweepLoop {
		d.sweep.Duration = timing.Sweep
		d.restartSweep()
	}
	if timing.Pulse != prev.Pulse || timing.PulseAuto != prev.PulseAuto {
		d.pulse.Duration = timing.Pulse
		d.restartPulse()
	}
}

// Configure sets mode, enabled and timing in one call, restarting only
// what changed.
func (d *Driver) Configure(mode Mode, enabled bool, timing Timing) {
	d.SetTiming(timing)
	d.SetEnabled(enabled)
	d.SetMode(mode)
}

// Trigger fires a one-shot sweep or pulse again from the start. It does
// nothing for looping effects or other modes.
func (d *Driver) Trigger() {
	if !d.enabled {
		return
	}
	switch {
	case d.mode == ModeSweep && !d.timing.SweepLoop:
		d.restartSweep()
	case d.mode == ModePulse && !d.timing.PulseAuto:
		d.restartPulse()
	}
}

// Animating reports whether the next frame can differ from the current
// one.
func (d *Driver) Animating() bool {
	if !d.enabled {
		return false
	}
	switch d.mode {
	case ModeBreath:
		return true
	case ModeSweep:
		return d.sweep.IsAnimating()
	case ModePulse:
		return d.pulse.IsAnimating()
	default:
		return false
	}
}

// Update advances every effect by dt and returns the resulting state.
func (d *Driver) Update(dt time.Duration) State {
	d.breath.Advance(dt)
	d.sweep.Advance(dt)
	d.pulse.Advance(dt)
	return d.State()
}

// State returns the current state without advancing time.
func (d *Driver) State() State {
	if !d.enabled {
		return State{Mode: ModeOff}
	}
	s := State{Mode: d.mode}
	switch d.mode {
	case ModeBreath:
		s.BreathValue = d.breath.Value
	case ModeSweep:
		s.SweepPosition = d.sweep.Value
	case ModePulse:
		s.PulseValue = d.pulse.Value
	}
	return s
}

func (d *Driver) restartSweep() {
	d.sweep.Reset()
	if !d.enabled || d.mode != ModeSweep {
		return
	}
	if d.timing.SweepLoop {
		d.sweep.Repeat(0)
	} else {
		d.sweep.Forward()
	}
}

func (d *Driver) restartPulse() {
	d.pulse.Reset()
	if !d.enabled || d.mode != ModePulse {
		return
	}
	if d.timing.PulseAuto {
		d.pulse.Repeat(PulseGap)
	} else {
		d.pulse.Forward()
	}
}
