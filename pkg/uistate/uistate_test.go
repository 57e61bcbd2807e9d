package uistate

import (
	"testing"
	"time"

	"github.com/cgsoftware/neoui/pkg/led"
)

func TestButton(t *testing.T) {
	tests := []struct {
		state     State
		mode      led.Mode
		intensity float64
		enabled   bool
		loop      bool
	}{
		{Disabled, led.ModeOff, 0, false, false},
		{Idle, led.ModeSolid, 0.35, true, false},
		{Active, led.ModeBreath, 1, true, false},
		{Connecting, led.ModeSweep, 1, true, true},
		{Alert, led.ModePulse, 1, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			got := Button(tt.state)
			want := Binding{Mode: tt.mode, Intensity: tt.intensity, Enabled: tt.enabled, SweepLoop: tt.loop}
			if got != want {
				t.Errorf("Button(%v) = %+v, want %+v", tt.state, got, want)
			}
		})
	}
}

func TestSwitch(t *testing.T) {
	tests := []struct {
		state     State
		checked   bool
		mode      led.Mode
		intensity float64
	}{
		{Disabled, true, led.ModeOff, 0},
		{Disabled, false, led.ModeOff, 0},
		{Idle, false, led.ModeSolid, 0.25},
		{Active, false, led.ModeSolid, 0.25},
		{Alert, false, led.ModeSolid, 0.25},
		{Idle, true, led.ModeSolid, 0.85},
		{Active, true, led.ModeBreath, 1},
		{Connecting, true, led.ModeSweep, 1},
		{Alert, true, led.ModePulse, 1},
	}
	for _, tt := range tests {
		got := Switch(tt.state, tt.checked)
		if got.Mode != tt.mode || got.Intensity != tt.intensity {
			t.Errorf("Switch(%v, %v) = %v@%v, want %v@%v", tt.state, tt.checked, got.Mode, got.Intensity, tt.mode, tt.intensity)
		}
		if got.Enabled != (tt.state != Disabled) {
			t.Errorf("Switch(%v, %v).Enabled = %v", tt.state, tt.checked, got.Enabled)
		}
	}
}

func TestBindingApply(t *testing.T) {
	d := led.NewDriver(led.DefaultTiming())
	Button(Connecting).Apply(d, time.Second, 400*time.Millisecond, 200*time.Millisecond)

	if d.Mode() != led.ModeSweep || !d.Enabled() || !d.Timing().SweepLoop {
		t.Fatalf("driver mode=%v enabled=%v timing=%+v", d.Mode(), d.Enabled(), d.Timing())
	}
	if got := d.Update(200 * time.Millisecond).SweepPosition; got != 0.5 {
		t.Errorf("sweep = %v, want 0.5", got)
	}

	Button(Disabled).Apply(d, time.Second, 400*time.Millisecond, 200*time.Millisecond)
	if s := d.Update(0); s.Mode != led.ModeOff {
		t.Errorf("disabled state = %+v", s)
	}
}

func TestParse(t *testing.T) {
	for st := Idle; st <= Disabled; st++ {
		if got, err := Parse(st.String()); err != nil || got != st {
			t.Errorf("Parse(%q) = %v, %v", st, got, err)
		}
	}
	if _, err := Parse("busy"); err == nil {
		t.Error("expected error")
	}
	if Button(State(99)) != Button(Idle) {
		t.Error("unknown states should fall back to idle")
	}
}
