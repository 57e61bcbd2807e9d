package graphics

import (
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#E0E5EC")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if c != Color(0xFFE0E5EC) {
		t.Errorf("ParseHex = %#08x, want 0xffe0e5ec", uint32(c))
	}
	if got := c.Hex(); got != "#e0e5ec" {
		t.Errorf("Hex() = %q, want #e0e5ec", got)
	}
	if _, err := ParseHex("E0E5EC"); err == nil {
		t.Error("expected an error without the leading #")
	}
}

func TestColorAlpha(t *testing.T) {
	tests := []struct {
		name string
		got  Color
		want Color
	}{
		{"half", ColorWhite.WithAlpha(0.5), Color(0x80FFFFFF)},
		{"clamp high", ColorBlack.WithAlpha(2), ColorBlack},
		{"clamp low", ColorBlack.WithAlpha(-1), Color(0x00000000)},
		{"nan", ColorBlack.WithAlpha(math.NaN()), Color(0x00000000)},
		{"scale", ColorWhite.ScaleAlpha(0), Color(0x00FFFFFF)},
		{"rgba", RGBA(0xA3, 0xB1, 0xC6, 0.6), Color(0x99A3B1C6)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %#08x, want %#08x", tt.name, uint32(tt.got), uint32(tt.want))
		}
	}
}

func TestAdjustLightness(t *testing.T) {
	if got := ColorWhite.AdjustLightness(-1); got != ColorBlack {
		t.Errorf("white darkened fully = %#08x, want black", uint32(got))
	}
	base := Color(0xFF2D3238)
	_, _, _, a := base.WithAlpha(0.4).AdjustLightness(0.05).RGBAF()
	if math.Abs(a-0.4) > 0.01 {
		t.Errorf("alpha = %v, want 0.4 preserved", a)
	}
	lighter := base.AdjustLightness(0.05)
	darker := base.AdjustLightness(-0.15)
	if luminance(lighter) <= luminance(base) {
		t.Error("lightened color should be brighter")
	}
	if luminance(darker) >= luminance(base) {
		t.Error("darkened color should be darker")
	}
}

func luminance(c Color) float64 {
	r, g, b, _ := c.RGBAF()
	return r + g + b
}

func TestLerp(t *testing.T) {
	if got := Lerp(ColorBlack, ColorWhite, 0.5); got != Color(0xFF808080) {
		t.Errorf("Lerp = %#08x, want 0xff808080", uint32(got))
	}
	if got := Lerp(ColorBlack, ColorWhite, 3); got != ColorWhite {
		t.Errorf("Lerp past 1 = %#08x, want white", uint32(got))
	}
}

func TestRectHelpers(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	if r.Width() != 30 || r.Height() != 40 {
		t.Errorf("size = %v", r.Size())
	}
	if c := r.Center(); c != (Offset{X: 25, Y: 40}) {
		t.Errorf("center = %v", c)
	}
	if !r.Inflate(-20).Normalize().IsEmpty() {
		t.Error("over-deflated rect should be empty")
	}
	if got := r.Intersect(RectFromLTWH(100, 100, 1, 1)); !got.IsEmpty() {
		t.Errorf("disjoint intersect = %v, want empty", got)
	}
}

func TestRRectContains(t *testing.T) {
	rr := RRectFromRectXY(RectFromLTWH(0, 0, 10, 10), 4)
	if rr.Contains(Offset{X: 0.5, Y: 0.5}) {
		t.Error("corner point outside the arc should not be contained")
	}
	if !rr.Contains(Offset{X: 5, Y: 5}) {
		t.Error("center should be contained")
	}
	if got := RRectFromRectXY(RectFromLTWH(0, 0, 10, 4), 30).ClampedRadius(); got != (Radius{X: 5, Y: 2}) {
		t.Errorf("ClampedRadius = %v, want {5 2}", got)
	}
}

func TestPathFlattenRRect(t *testing.T) {
	rect := RectFromLTWH(2, 3, 50, 30)
	p := NewPath()
	p.AddRRect(RRectFromRectXY(rect, 8))
	contours := p.Flatten(0.25)
	if len(contours) != 1 {
		t.Fatalf("contours = %d, want 1", len(contours))
	}
	if !contours[0].Closed {
		t.Error("rounded rect contour should be closed")
	}
	for _, pt := range contours[0].Points {
		if !rect.Inflate(epsilon).Contains(pt) {
			t.Fatalf("point %v outside %v", pt, rect)
		}
	}
	// Perimeter of a rounded rect: straight edges plus one full circle.
	want := 2*(50-16) + 2*(30-16) + 2*math.Pi*8
	if got := contours[0].Length(); math.Abs(got-want) > 0.5 {
		t.Errorf("perimeter = %v, want ~%v", got, want)
	}
}

func TestPathEmptyRRect(t *testing.T) {
	p := NewPath()
	p.AddRRect(RRectFromRectXY(Rect{Left: 10, Right: 5, Bottom: 10}, 2))
	if !p.IsEmpty() {
		t.Error("inverted rect should add nothing")
	}
}

func TestDashContours(t *testing.T) {
	line := []Contour{{Points: []Offset{{0, 0}, {100, 0}}}}

	dashes := DashContours(line, &DashPattern{Intervals: []float64{10, 10}})
	if len(dashes) != 5 {
		t.Fatalf("dashes = %d, want 5", len(dashes))
	}
	for i, d := range dashes {
		if l := d.Length(); math.Abs(l-10) > 1e-9 {
			t.Errorf("dash %d length = %v, want 10", i, l)
		}
	}

	shifted := DashContours(line, &DashPattern{Intervals: []float64{10, 10}, Phase: 25})
	if l := shifted[0].Length(); math.Abs(l-5) > 1e-9 {
		t.Errorf("first dash with phase 25 = %v, want 5", l)
	}

	if got := DashContours(line, &DashPattern{Intervals: []float64{10}}); len(got) != 1 {
		t.Error("invalid pattern should leave contours untouched")
	}
}

func TestDashClosedContour(t *testing.T) {
	p := NewPath()
	p.AddRect(RectFromLTWH(0, 0, 100, 100))
	dashes := DashContours(p.Flatten(1), &DashPattern{Intervals: []float64{22, 280}})
	var total float64
	for _, d := range dashes {
		total += d.Length()
	}
	// 400 units of perimeter fit one full dash and the start of the next.
	if math.Abs(total-(22+22)) > 1e-6 {
		t.Errorf("total dash length = %v, want 44", total)
	}
}

func TestGradientColorAt(t *testing.T) {
	g := NewLinearGradient(Offset{}, Offset{X: 100}, []GradientStop{
		{Position: 0, Color: ColorBlack},
		{Position: 1, Color: ColorWhite},
	})
	tests := []struct {
		x    float64
		want Color
	}{
		{-10, ColorBlack},
		{50, Color(0xFF808080)},
		{200, ColorWhite},
	}
	for _, tt := range tests {
		if got := g.ColorAt(Offset{X: tt.x, Y: 7}); got != tt.want {
			t.Errorf("ColorAt(%v) = %#08x, want %#08x", tt.x, uint32(got), uint32(tt.want))
		}
	}

	radial := NewRadialGradient(Offset{X: 10, Y: 10}, 10, []GradientStop{
		{Position: 0, Color: ColorWhite},
		{Position: 1, Color: ColorBlack},
	})
	if got := radial.ColorAt(Offset{X: 30, Y: 10}); got != ColorBlack {
		t.Errorf("radial outside = %#08x, want black", uint32(got))
	}
	if (&Gradient{Type: GradientTypeRadial}).IsValid() {
		t.Error("gradient without stops should be invalid")
	}
}

func TestStrokeOutlineOrientation(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(20, 0)
	p.LineTo(20, 20)
	p.LineTo(0, 30)
	for _, join := range []StrokeJoin{JoinMiter, JoinRound} {
		for _, lineCap := range []StrokeCap{CapButt, CapRound, CapSquare} {
			polys := strokeOutline(p.Flatten(0.25), 4, lineCap, join, 0.25)
			if len(polys) == 0 {
				t.Fatalf("join=%v cap=%v produced no polygons", join, lineCap)
			}
			for _, poly := range polys {
				if signedArea(poly.Points) < 0 {
					t.Errorf("join=%v cap=%v: polygon with negative area", join, lineCap)
				}
			}
		}
	}
}

func TestDisplayListReplay(t *testing.T) {
	var rec PictureRecorder
	c := rec.BeginRecording(Size{Width: 20, Height: 10})
	c.Save()
	c.Translate(2, 0)
	c.DrawRect(RectFromLTWH(0, 0, 4, 4), FillPaint(ColorBlack))
	c.Restore()
	list := rec.EndRecording()

	if list.Len() != 4 {
		t.Errorf("Len() = %d, want 4", list.Len())
	}
	if list.Size() != (Size{Width: 20, Height: 10}) {
		t.Errorf("Size() = %v", list.Size())
	}

	// Recording after EndRecording is dropped.
	c.DrawRect(RectFromLTWH(0, 0, 1, 1), FillPaint(ColorBlack))
	if list.Len() != 4 {
		t.Error("display list should be immutable")
	}
}

func TestRecordedPaintIsDetached(t *testing.T) {
	var rec PictureRecorder
	c := rec.BeginRecording(Size{Width: 10, Height: 10})
	dash := &DashPattern{Intervals: []float64{2, 2}}
	paint := StrokePaint(ColorBlack, 1)
	paint.Dash = dash
	c.DrawLine(Offset{}, Offset{X: 10}, paint)
	list := rec.EndRecording()
	dash.Intervals[0] = 50

	op := list.ops[0].(opLine)
	if op.paint.Dash.Intervals[0] != 2 {
		t.Error("recorded dash should not follow caller mutation")
	}
}
