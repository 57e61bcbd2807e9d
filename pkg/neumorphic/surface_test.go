package neumorphic

import (
	"bytes"
	"image"
	"testing"

	"github.com/cgsoftware/neoui/pkg/graphics"
	neotest "github.com/cgsoftware/neoui/pkg/testing"
)

const (
	canvasSize = 120
	inset      = 30
)

var (
	bg    = graphics.RGB(0xE0, 0xE5, 0xEC)
	light = graphics.ColorWhite
	dark  = graphics.RGB(0xA3, 0xB1, 0xC6)
)

func surface(style Style) Surface {
	return Surface{
		Size:         graphics.Size{Width: 60, Height: 60},
		CornerRadius: 12,
		Elevation:    3,
		Style:        style,
		LightColor:   light,
		DarkColor:    dark,
		FillColor:    bg,
	}
}

// paint draws s offset into the middle of a larger canvas so shadows
// have room to bleed.
func paint(s Surface) *graphics.RasterCanvas {
	c := graphics.NewRasterCanvas(canvasSize, canvasSize)
	c.Translate(inset, inset)
	PaintSurface(c, s)
	return c
}

// paintedOutside counts painted pixels outside the body grown by margin.
func paintedOutside(img *image.RGBA, s Surface, margin float64) int {
	rr := s.RRect().Translate(inset, inset).Inflate(margin)
	n := 0
	for y := range canvasSize {
		for x := range canvasSize {
			p := graphics.Offset{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			if img.RGBAAt(x, y).A != 0 && !rr.Contains(p) {
				n++
			}
		}
	}
	return n
}

func TestPaintSurface_SunkenStaysInside(t *testing.T) {
	s := surface(Sunken)
	c := paint(s)
	if n := paintedOutside(c.Image(), s, 1); n != 0 {
		t.Errorf("sunken surface painted %d pixels outside its outline", n)
	}
}

func TestPaintSurface_RaisedBleeds(t *testing.T) {
	s := surface(Raised)
	c := paint(s)
	if n := paintedOutside(c.Image(), s, 1); n == 0 {
		t.Error("raised shadows should extend outside the body")
	}

	// Dark shadow below, light shadow above, sampled mid-edge.
	br := c.Image().RGBAAt(inset+30, inset+60+4)
	tl := c.Image().RGBAAt(inset+30, inset-4)
	if br.A == 0 || tl.A == 0 {
		t.Fatalf("expected shadow on both diagonals: br=%v tl=%v", br, tl)
	}
	if br.R >= tl.R {
		t.Errorf("shadow below (%v) should be darker than above (%v)", br, tl)
	}
}

func TestPaintSurface_Flat(t *testing.T) {
	s := surface(Flat)
	ops := neotest.Record(s.Size, func(c graphics.Canvas) { PaintSurface(c, s) })
	if len(ops) != 1 || ops[0].Op != "drawRRect" {
		t.Fatalf("flat ops = %v, want a single body", ops)
	}
	if got := ops[0].Float("radius"); got != 12 {
		t.Errorf("radius = %v, want 12", got)
	}
}

func TestPaintSurface_Ops(t *testing.T) {
	tests := []struct {
		style Style
		want  []string
	}{
		{Raised, []string{"drawRRectShadow", "drawRRectShadow", "drawRRect"}},
		{Sunken, []string{"drawRRect", "save", "clipRRect", "drawRRectShadow", "drawRRectShadow", "restore"}},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			s := surface(tt.style)
			ops := neotest.Record(s.Size, func(c graphics.Canvas) { PaintSurface(c, s) })
			if len(ops) != len(tt.want) {
				t.Fatalf("ops = %d, want %d", len(ops), len(tt.want))
			}
			for i, op := range ops {
				if op.Op != tt.want[i] {
					t.Errorf("op %d = %s, want %s", i, op.Op, tt.want[i])
				}
			}
		})
	}
}

func TestShadows(t *testing.T) {
	raised := surface(Raised).Shadows()
	if len(raised) != 2 {
		t.Fatalf("raised shadows = %d", len(raised))
	}
	if raised[0].Offset != (graphics.Offset{X: 4.5, Y: 4.5}) || raised[1].Offset != (graphics.Offset{X: -4.5, Y: -4.5}) {
		t.Errorf("raised offsets = %v, %v", raised[0].Offset, raised[1].Offset)
	}
	if raised[0].BlurRadius != 12 || raised[0].BlurStyle != graphics.BlurStyleNormal {
		t.Errorf("raised blur = %v %v", raised[0].BlurRadius, raised[0].BlurStyle)
	}

	sunken := surface(Sunken).Shadows()
	if sunken[0].Offset.X >= 0 || sunken[1].Offset.X <= 0 {
		t.Errorf("sunken offsets should mirror raised: %v, %v", sunken[0].Offset, sunken[1].Offset)
	}
	if sunken[0].BlurRadius != 9 {
		t.Errorf("sunken blur = %v, want 9", sunken[0].BlurRadius)
	}
	if a := sunken[1].Color.Alpha(); a < 0.44 || a > 0.46 {
		t.Errorf("sunken light alpha = %v", a)
	}

	flat := surface(Raised)
	flat.Elevation = 0
	if flat.Shadows() != nil {
		t.Error("zero elevation should cast no shadows")
	}
	ops := neotest.Record(flat.Size, func(c graphics.Canvas) { PaintSurface(c, flat) })
	if len(neotest.Filter(ops, "drawRRectShadow")) != 0 {
		t.Error("zero elevation drew shadows")
	}
}

func TestPaintSurface_Idempotent(t *testing.T) {
	for _, style := range []Style{Flat, Raised, Sunken} {
		a := paint(surface(style))
		b := paint(surface(style))
		if !bytes.Equal(a.Image().Pix, b.Image().Pix) {
			t.Errorf("%s: renders differ", style)
		}
	}
}

func TestPaintSurface_EmptySize(t *testing.T) {
	s := surface(Raised)
	s.Size = graphics.Size{}
	if ops := neotest.Record(s.Size, func(c graphics.Canvas) { PaintSurface(c, s) }); len(ops) != 0 {
		t.Errorf("empty surface drew %d ops", len(ops))
	}
}

func TestShadowColors(t *testing.T) {
	l, d := ShadowColors(bg, false)
	if l != graphics.ColorWhite {
		t.Errorf("light theme light shadow = %s, want white", l.Hex())
	}
	if d.Alpha() != 1 {
		t.Errorf("dark shadow alpha = %v", d.Alpha())
	}

	base := graphics.RGB(0x2D, 0x32, 0x38)
	l, d = ShadowColors(base, true)
	lum := func(c graphics.Color) int {
		r, g, b, _ := c.RGBAF()
		return int((r + g + b) * 1000)
	}
	if !(lum(l) > lum(base) && lum(base) > lum(d)) {
		t.Errorf("want light > base > dark, got %s %s %s", l.Hex(), base.Hex(), d.Hex())
	}
}

func TestParseStyle(t *testing.T) {
	for _, s := range []Style{Flat, Raised, Sunken} {
		if got, err := ParseStyle(s.String()); err != nil || got != s {
			t.Errorf("ParseStyle(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseStyle("embossed"); err == nil {
		t.Error("expected error")
	}
}
