package graphics

import (
	"bytes"
	"image/color"
	"testing"
)

var red = Color(0xFFFF0000)

func alphaAt(c *RasterCanvas, x, y int) uint8 {
	return c.Image().RGBAAt(x, y).A
}

func TestRasterFillRect(t *testing.T) {
	c := NewRasterCanvas(20, 20)
	c.DrawRect(RectFromLTWH(5, 5, 10, 10), FillPaint(red))

	if got := c.Image().RGBAAt(10, 10); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("inside pixel = %v, want opaque red", got)
	}
	if a := alphaAt(c, 2, 2); a != 0 {
		t.Errorf("outside pixel alpha = %d, want 0", a)
	}
	if c.Size() != (Size{Width: 20, Height: 20}) {
		t.Errorf("Size() = %v", c.Size())
	}
}

func TestRasterClipAndRestore(t *testing.T) {
	c := NewRasterCanvas(20, 20)
	c.Save()
	c.ClipRect(RectFromLTWH(0, 0, 10, 20))
	c.DrawRect(RectFromLTWH(0, 0, 20, 20), FillPaint(red))
	c.Restore()

	if a := alphaAt(c, 5, 10); a != 255 {
		t.Errorf("clipped-in alpha = %d, want 255", a)
	}
	if a := alphaAt(c, 15, 10); a != 0 {
		t.Errorf("clipped-out alpha = %d, want 0", a)
	}

	c.DrawRect(RectFromLTWH(0, 0, 20, 20), FillPaint(red))
	if a := alphaAt(c, 15, 10); a != 255 {
		t.Errorf("after Restore alpha = %d, want 255", a)
	}
}

func TestRasterTranslate(t *testing.T) {
	c := NewRasterCanvas(20, 20)
	c.Translate(10, 0)
	c.DrawRect(RectFromLTWH(0, 0, 5, 5), FillPaint(red))
	if alphaAt(c, 12, 2) != 255 {
		t.Error("translated rect should cover (12, 2)")
	}
	if alphaAt(c, 2, 2) != 0 {
		t.Error("origin should stay empty after translate")
	}
}

func TestRasterStrokeLine(t *testing.T) {
	c := NewRasterCanvas(20, 20)
	c.DrawLine(Offset{X: 2, Y: 10}, Offset{X: 18, Y: 10}, StrokePaint(red, 4))
	if alphaAt(c, 10, 9) != 255 {
		t.Error("stroke should cover its centre line")
	}
	if alphaAt(c, 10, 2) != 0 {
		t.Error("stroke should not reach y=2")
	}
}

func TestRasterStrokeRRectHasHole(t *testing.T) {
	c := NewRasterCanvas(40, 40)
	c.DrawRRect(RRectFromRectXY(RectFromLTWH(5, 5, 30, 30), 6), StrokePaint(red, 2))
	if alphaAt(c, 20, 20) != 0 {
		t.Error("stroked rounded rect should leave the centre empty")
	}
	if alphaAt(c, 20, 5) == 0 {
		t.Error("stroked rounded rect should cover its top edge")
	}
}

func TestRasterDashedStrokeLeavesGaps(t *testing.T) {
	c := NewRasterCanvas(40, 10)
	paint := StrokePaint(red, 2)
	paint.StrokeCap = CapButt
	paint.Dash = &DashPattern{Intervals: []float64{10, 10}}
	c.DrawLine(Offset{X: 0, Y: 5}, Offset{X: 40, Y: 5}, paint)
	if alphaAt(c, 5, 4) == 0 {
		t.Error("first dash should be drawn")
	}
	if alphaAt(c, 15, 4) != 0 {
		t.Error("gap should stay empty")
	}
}

func TestRasterShadowBlurStyles(t *testing.T) {
	rr := RRectFromRectXY(RectFromLTWH(10, 10, 20, 20), 4)
	paintShadow := func(style BlurStyle) *RasterCanvas {
		c := NewRasterCanvas(40, 40)
		c.DrawRRectShadow(rr, BoxShadow{Color: ColorBlack, BlurRadius: 8, BlurStyle: style})
		return c
	}

	normal := paintShadow(BlurStyleNormal)
	if alphaAt(normal, 20, 20) == 0 || alphaAt(normal, 8, 20) == 0 {
		t.Error("normal blur should cover inside and spill outside")
	}
	outer := paintShadow(BlurStyleOuter)
	if alphaAt(outer, 20, 20) != 0 {
		t.Error("outer blur should leave the shape interior empty")
	}
	inner := paintShadow(BlurStyleInner)
	if alphaAt(inner, 8, 20) != 0 {
		t.Error("inner blur should not spill outside")
	}
	solid := paintShadow(BlurStyleSolid)
	if alphaAt(solid, 20, 20) != 255 {
		t.Error("solid blur should keep the interior opaque")
	}
}

func TestRasterClipRRectContainsShadow(t *testing.T) {
	c := NewRasterCanvas(60, 60)
	rr := RRectFromRectXY(RectFromLTWH(15, 15, 30, 30), 8)
	c.ClipRRect(rr)
	c.DrawRRectShadow(rr.Translate(-4, -4), BoxShadow{Color: ColorBlack, BlurRadius: 10, BlurStyle: BlurStyleNormal})

	bounds := rr.Rect.Inflate(1)
	img := c.Image()
	for y := range 60 {
		for x := range 60 {
			if img.RGBAAt(x, y).A == 0 {
				continue
			}
			if !bounds.Contains(Offset{X: float64(x) + 0.5, Y: float64(y) + 0.5}) {
				t.Fatalf("pixel (%d, %d) painted outside the clip", x, y)
			}
		}
	}
}

func TestRasterDeterministic(t *testing.T) {
	scene := func() []byte {
		c := NewRasterCanvas(48, 48)
		c.Clear(Color(0xFFE0E5EC))
		rr := RRectFromRectXY(RectFromLTWH(8, 8, 32, 32), 10)
		c.DrawRRectShadow(rr.Translate(3, 3), BoxShadow{Color: Color(0x99A3B1C6), BlurRadius: 12, BlurStyle: BlurStyleNormal})
		c.DrawRRect(rr, FillPaint(Color(0xFFE0E5EC)))
		c.DrawArc(rr.Rect.Center(), 10, 0, 4, StrokePaint(Color(0xFF00E5FF), 2))
		return c.Image().Pix
	}
	if !bytes.Equal(scene(), scene()) {
		t.Error("identical calls should produce identical pixels")
	}
}

func TestRasterReplayMatchesDirect(t *testing.T) {
	draw := func(c Canvas) {
		c.Save()
		c.Translate(4, 4)
		c.Rotate(0.3)
		c.DrawCircle(Offset{X: 10, Y: 10}, 6, FillPaint(red))
		c.Restore()
		c.DrawLine(Offset{X: 0, Y: 30}, Offset{X: 30, Y: 30}, StrokePaint(ColorBlack, 3))
	}

	direct := NewRasterCanvas(32, 32)
	draw(direct)

	var rec PictureRecorder
	draw(rec.BeginRecording(direct.Size()))
	replayed := NewRasterCanvas(32, 32)
	rec.EndRecording().Paint(replayed)

	if !bytes.Equal(direct.Image().Pix, replayed.Image().Pix) {
		t.Error("replayed display list should match direct drawing")
	}
}

func TestRasterGradientFill(t *testing.T) {
	c := NewRasterCanvas(100, 4)
	g := NewLinearGradient(Offset{}, Offset{X: 100}, []GradientStop{
		{Position: 0, Color: ColorBlack},
		{Position: 1, Color: ColorWhite},
	})
	c.DrawRect(RectFromLTWH(0, 0, 100, 4), GradientPaint(g))
	left, right := c.Image().RGBAAt(1, 1), c.Image().RGBAAt(98, 1)
	if left.R >= right.R {
		t.Errorf("gradient should brighten to the right: left=%v right=%v", left, right)
	}
}

func TestBoxSizes(t *testing.T) {
	for _, sigma := range []float64{0.5, 2, 6, 15} {
		for _, s := range boxSizes(sigma, 3) {
			if s < 1 || s%2 == 0 {
				t.Errorf("sigma %v: box size %d should be odd and positive", sigma, s)
			}
		}
	}
}
