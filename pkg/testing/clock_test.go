package testing

import (
	"testing"
	"time"

	"github.com/cgsoftware/neoui/pkg/animation"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestInstallFakeClock_DrivesScheduler(t *testing.T) {
	clk := InstallFakeClock(t)
	if !animation.Now().Equal(clk.Now()) {
		t.Fatal("animation clock should read the fake clock")
	}

	sched := animation.NewFrameScheduler()
	var deltas []time.Duration
	ticker := sched.Add(func(dt time.Duration) { deltas = append(deltas, dt) })

	sched.Frame()
	clk.Advance(16 * time.Millisecond)
	sched.Frame()
	clk.Advance(20 * time.Millisecond)
	sched.Frame()
	ticker.Stop()

	want := []time.Duration{0, 16 * time.Millisecond, 20 * time.Millisecond}
	if len(deltas) != len(want) {
		t.Fatalf("deltas = %v, want %v", deltas, want)
	}
	for i := range want {
		if deltas[i] != want[i] {
			t.Errorf("frame %d dt = %v, want %v", i, deltas[i], want[i])
		}
	}
}
