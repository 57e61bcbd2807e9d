// Package uistate maps a widget's UI state to the LED effect that
// represents it.
package uistate

import (
	"fmt"
	"time"

	"github.com/cgsoftware/neoui/pkg/led"
)

// State is the interaction state of a widget.
type State int

const (
	// Idle is stopped or ready. It is the zero value.
	Idle State = iota
	// Active is playing or running.
	Active
	// Connecting is syncing or waiting on a peer.
	Connecting
	// Alert signals attention, an error or a peak.
	Alert
	// Disabled widgets ignore input and show no LED.
	Disabled
)

func (s State) String() string {
	switch s {
	case Disabled:
		return "disabled"
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Connecting:
		return "connecting"
	case Alert:
		return "alert"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Parse returns the state named s, as produced by String.
func Parse(s string) (State, error) {
	for st := Idle; st <= Disabled; st++ {
		if st.String() == s {
			return st, nil
		}
	}
	return Idle, fmt.Errorf("unknown UI state %q", s)
}

// Binding is the LED effect for one UI state.
type Binding struct {
	Mode      led.Mode
	Intensity float64
	Enabled   bool
	// SweepLoop keeps a sweep running instead of firing it once.
	SweepLoop bool
}

// Timing returns the driver timing for b using the given periods.
// Pulses are always events; a new one fires on each mode change or
// Trigger.
func (b Binding) Timing(breath, sweep, pulse time.Duration) led.Timing {
	return led.Timing{
		Breath:    breath,
		Sweep:     sweep,
		Pulse:     pulse,
		SweepLoop: b.SweepLoop,
	}
}

// Apply configures d for b.
func (b Binding) Apply(d *led.Driver, breath, sweep, pulse time.Duration) {
	d.Configure(b.Mode, b.Enabled, b.Timing(breath, sweep, pulse))
}

type entry struct {
	mode      led.Mode
	intensity float64
}

var buttonTable = [...]entry{
	Idle:       {led.ModeSolid, 0.35},
	Active:     {led.ModeBreath, 1},
	Connecting: {led.ModeSweep, 1},
	Alert:      {led.ModePulse, 1},
	Disabled:   {led.ModeOff, 0},
}

// Button returns the LED binding of a push button.
func Button(s State) Binding {
	if s < Idle || s > Disabled {
		s = Idle
	}
	e := buttonTable[s]
	return Binding{
		Mode:      e.mode,
		Intensity: e.intensity,
		Enabled:   s != Disabled,
		SweepLoop: s == Connecting,
	}
}

// Switch returns the LED binding of a toggle switch. An unchecked switch
// shows a dim steady border whatever its state, unless disabled.
func Switch(s State, checked bool) Binding {
	b := Binding{Enabled: s != Disabled, SweepLoop: s == Connecting}
	switch {
	case s == Disabled:
		b.Mode, b.Intensity = led.ModeOff, 0
	case !checked:
		b.Mode, b.Intensity = led.ModeSolid, 0.25
	case s == Active:
		b.Mode, b.Intensity = led.ModeBreath, 1
	case s == Connecting:
		b.Mode, b.Intensity = led.ModeSweep, 1
	case s == Alert:
		b.Mode, b.Intensity = led.ModePulse, 1
	default:
		b.Mode, b.Intensity = led.ModeSolid, 0.85
	}
	return b
}
