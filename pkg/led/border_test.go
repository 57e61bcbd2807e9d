package led

import (
	"bytes"
	"math"
	"testing"

	"github.com/cgsoftware/neoui/pkg/graphics"
	neotest "github.com/cgsoftware/neoui/pkg/testing"
)

var cyan = graphics.RGB(0, 229, 255)

func overlay(state State, cfg Config) Overlay {
	return Overlay{
		Size:         graphics.Size{Width: 200, Height: 100},
		CornerRadius: 16,
		Accent:       cyan,
		StrokeWidth:  1,
		Glow:         2,
		State:        state,
		Config:       cfg,
		Intensity:    1,
	}
}

func record(o Overlay) []neotest.DisplayOp {
	return neotest.Record(o.Size, func(c graphics.Canvas) { Render(c, o) })
}

func TestGeometry(t *testing.T) {
	rr, ok := Geometry(graphics.Size{Width: 200, Height: 100}, 16, 1, 2, 0)
	if !ok {
		t.Fatal("expected drawable geometry")
	}
	// safe = (2+1)*0.75 = 2.25, margin = 0.5 + 2.25
	want := graphics.Rect{Left: 2.75, Top: 2.75, Right: 197.25, Bottom: 97.25}
	if rr.Rect != want {
		t.Errorf("rect = %+v, want %+v", rr.Rect, want)
	}
	if rr.Radius.X != 13.25 {
		t.Errorf("radius = %v, want 13.25", rr.Radius.X)
	}

	rr, _ = Geometry(graphics.Size{Width: 200, Height: 100}, 1, 1, 2, 0)
	if rr.Radius.X != 0 {
		t.Errorf("radius should clamp at 0, got %v", rr.Radius.X)
	}

	if _, ok := Geometry(graphics.Size{Width: 4, Height: 4}, 8, 1, 2, 0); ok {
		t.Error("tiny size should collapse")
	}
}

func TestRender_CollapsedIsNoop(t *testing.T) {
	o := overlay(State{Mode: ModeSolid}, DefaultConfig())
	o.Size = graphics.Size{Width: 4, Height: 100}
	if ops := record(o); len(ops) != 0 {
		t.Errorf("ops = %d, want 0", len(ops))
	}
}

func TestRender_ContinuousSolid(t *testing.T) {
	ops := record(overlay(State{Mode: ModeSolid}, DefaultConfig()))
	paths := neotest.Filter(ops, "drawPath")
	if len(paths) != 2 {
		t.Fatalf("drawPath ops = %d, want glow + core", len(paths))
	}

	glow, core := paths[0], paths[1]
	if got := glow.Float("strokeWidth"); got != 5 {
		t.Errorf("glow width = %v, want 5", got)
	}
	if got := glow.Alpha(); math.Abs(got-SolidAlpha*GlowAlpha) > 0.01 {
		t.Errorf("glow alpha = %v", got)
	}
	if got := core.Float("strokeWidth"); got != 1 {
		t.Errorf("core width = %v, want 1", got)
	}
	if got := core.Alpha(); math.Abs(got-SolidAlpha) > 0.01 {
		t.Errorf("core alpha = %v", got)
	}
	if core.Str("cap") != "round" {
		t.Errorf("core cap = %q, want round", core.Str("cap"))
	}
}

func TestRender_ContinuousZeroAlpha(t *testing.T) {
	tests := []struct {
		name  string
		state State
		scale float64
	}{
		{"breath trough", State{Mode: ModeBreath}, 1},
		{"faint breath", State{Mode: ModeBreath, BreathValue: 0.02}, 1},
		{"off", State{Mode: ModeOff}, 1},
		{"zero intensity", State{Mode: ModeSolid}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := overlay(tt.state, DefaultConfig())
			o.Intensity = tt.scale
			if ops := record(o); len(ops) != 0 {
				t.Errorf("ops = %v, want none", ops)
			}
		})
	}
}

func TestRender_ContinuousGlowThreshold(t *testing.T) {
	// baseAlpha = 0.04*0.9: too faint for glow, bright enough for the core.
	ops := record(overlay(State{Mode: ModePulse, PulseValue: 0.04}, DefaultConfig()))
	paths := neotest.Filter(ops, "drawPath")
	if len(paths) != 1 || paths[0].Float("strokeWidth") != 1 {
		t.Errorf("want core stroke only, got %v", ops)
	}

	o := overlay(State{Mode: ModeSolid}, DefaultConfig())
	o.Glow = 0
	if paths := neotest.Filter(record(o), "drawPath"); len(paths) != 1 {
		t.Errorf("zero glow should skip the halo, got %d paths", len(paths))
	}
}

func TestRender_ContinuousSweep(t *testing.T) {
	ops := record(overlay(State{Mode: ModeSweep, SweepPosition: 0.25}, DefaultConfig()))
	paths := neotest.Filter(ops, "drawPath")
	if len(paths) != 2 {
		t.Fatalf("drawPath ops = %d, want glow + dash", len(paths))
	}
	dash := paths[1]
	if got := dash.Float("phase"); got != 226.5 {
		t.Errorf("phase = %v, want 226.5", got)
	}
	if got := dash.Float("strokeWidth"); got != 1.2 {
		t.Errorf("dash width = %v, want 1.2", got)
	}
	intervals, _ := dash.Params["dash"].([]float64)
	if len(intervals) != 2 || intervals[0] != SweepDash || intervals[1] != SweepGap {
		t.Errorf("dash = %v", dash.Params["dash"])
	}
	if paths[0].Params["dash"] != nil {
		t.Error("glow should not be dashed")
	}
}

func TestSegmentCounts(t *testing.T) {
	tests := []struct {
		segments, perSide, total int
	}{
		{0, 3, 12},
		{10, 3, 12},
		{12, 3, 12},
		{13, 3, 12},
		{16, 4, 16},
		{40, 10, 40},
	}
	for _, tt := range tests {
		perSide, total := SegmentCounts(tt.segments)
		if perSide != tt.perSide || total != tt.total {
			t.Errorf("SegmentCounts(%d) = %d, %d; want %d, %d", tt.segments, perSide, total, tt.perSide, tt.total)
		}
	}
}

func TestSegmentLayout(t *testing.T) {
	rect := graphics.Rect{Left: 0, Top: 0, Right: 160, Bottom: 80}
	segs := SegmentLayout(rect, 12)
	if len(segs) != 12 {
		t.Fatalf("segments = %d, want 12", len(segs))
	}

	want := []graphics.Offset{
		{X: 40, Y: 0}, {X: 80, Y: 0}, {X: 120, Y: 0},
		{X: 160, Y: 20}, {X: 160, Y: 40}, {X: 160, Y: 60},
		{X: 120, Y: 80}, {X: 80, Y: 80}, {X: 40, Y: 80},
		{X: 0, Y: 60}, {X: 0, Y: 40}, {X: 0, Y: 20},
	}
	for i, seg := range segs {
		if seg.Index != i {
			t.Errorf("segment %d has index %d", i, seg.Index)
		}
		if seg.Center != want[i] {
			t.Errorf("segment %d center = %v, want %v", i, seg.Center, want[i])
		}
		if d := seg.Start.Distance(seg.End); d != SegmentLength {
			t.Errorf("segment %d length = %v", i, d)
		}
		for _, corner := range []graphics.Offset{{X: 0, Y: 0}, {X: 160, Y: 0}, {X: 160, Y: 80}, {X: 0, Y: 80}} {
			if seg.Center == corner {
				t.Errorf("segment %d sits on a corner", i)
			}
		}
	}
}

func TestSegmentLit(t *testing.T) {
	sweep := State{Mode: ModeSweep, SweepPosition: 0.95}
	if !SegmentLit(sweep, 3, 100) {
		t.Error("p=0.03 should be lit by the wrap rule")
	}
	if SegmentLit(sweep, 50, 100) {
		t.Error("p=0.50 should be unlit")
	}
	if !SegmentLit(sweep, 94, 100) {
		t.Error("segment under the sweep should be lit")
	}

	tests := []struct {
		state State
		want  bool
	}{
		{State{Mode: ModeSolid}, true},
		{State{Mode: ModeBreath}, true},
		{State{Mode: ModePulse, PulseValue: 0.08}, false},
		{State{Mode: ModePulse, PulseValue: 0.09}, true},
		{State{Mode: ModeOff}, false},
	}
	for _, tt := range tests {
		if got := SegmentLit(tt.state, 5, 12); got != tt.want {
			t.Errorf("SegmentLit(%+v) = %v, want %v", tt.state, got, tt.want)
		}
	}
	if SegmentLit(State{Mode: ModeSweep}, 0, 0) {
		t.Error("zero total should never light")
	}
}

func TestRender_Segmented(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Style = StyleSegmented

	ops := record(overlay(State{Mode: ModeSolid}, cfg))
	lines := neotest.Filter(ops, "drawLine")
	if len(lines) != 36 {
		t.Fatalf("drawLine ops = %d, want 12 segments x 3", len(lines))
	}
	core, glow, bevel := lines[0], lines[1], lines[2]
	if core.Float("strokeWidth") != 1 || math.Abs(core.Alpha()-SolidAlpha) > 0.01 {
		t.Errorf("core = %s", core.Describe())
	}
	if glow.Float("strokeWidth") != 2.4 || math.Abs(glow.Alpha()-GlowAlpha*0.8) > 0.01 {
		t.Errorf("glow = %s", glow.Describe())
	}
	if bevel.Str("color")[4:] != "FFFFFF" || bevel.Float("strokeWidth") != 1 {
		t.Errorf("bevel = %s", bevel.Describe())
	}

	cfg.HasBevel = false
	if n := len(neotest.Filter(record(overlay(State{Mode: ModeSolid}, cfg)), "drawLine")); n != 24 {
		t.Errorf("without bevel: %d lines, want 24", n)
	}

	// Only the first segment is within the window at position 0.
	sweep := record(overlay(State{Mode: ModeSweep}, cfg))
	if n := len(neotest.Filter(sweep, "drawLine")); n != 2 {
		t.Errorf("sweep at 0: %d lines, want 2", n)
	}

	dim := record(overlay(State{Mode: ModePulse, PulseValue: 0.05}, cfg))
	if len(dim) != 0 {
		t.Errorf("dim pulse drew %d ops", len(dim))
	}
}

func TestRender_Idempotent(t *testing.T) {
	cfg := DefaultConfig()
	seg := cfg
	seg.Style = StyleSegmented

	cases := []Overlay{
		overlay(State{Mode: ModeBreath, BreathValue: 0.6}, cfg),
		overlay(State{Mode: ModeSweep, SweepPosition: 0.4}, cfg),
		overlay(State{Mode: ModeSweep, SweepPosition: 0.4}, seg),
	}
	for i, o := range cases {
		a := graphics.NewRasterCanvas(200, 100)
		b := graphics.NewRasterCanvas(200, 100)
		Render(a, o)
		Render(b, o)
		if !bytes.Equal(a.Image().Pix, b.Image().Pix) {
			t.Errorf("case %d: renders differ", i)
		}

		first, second := record(o), record(o)
		if len(first) != len(second) {
			t.Errorf("case %d: op counts differ", i)
		}
	}
}

func TestRender_PaintsBorderPixels(t *testing.T) {
	c := graphics.NewRasterCanvas(200, 100)
	Render(c, overlay(State{Mode: ModeSolid}, DefaultConfig()))

	// The border runs along y = 2.75 in the middle of the top edge.
	if a := c.Image().RGBAAt(100, 2).A; a == 0 {
		t.Error("expected border coverage on the top edge")
	}
	if a := c.Image().RGBAAt(100, 50).A; a != 0 {
		t.Errorf("center alpha = %d, want 0", a)
	}
}
