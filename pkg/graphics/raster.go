package graphics

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// RasterCanvas is a software Canvas that paints into an *image.RGBA.
// Coverage comes from golang.org/x/image/vector; clips are antialiased
// alpha masks and shadows are blurred with three box passes. The output
// is deterministic: the same calls produce the same pixels.
type RasterCanvas struct {
	img   *image.RGBA
	state rasterState
	stack []rasterState
	z     *vector.Rasterizer
}

type rasterState struct {
	m    affine
	clip *image.Alpha // nil means unclipped
}

// NewRasterCanvas creates a transparent canvas of the given pixel size.
func NewRasterCanvas(width, height int) *RasterCanvas {
	width, height = max(width, 1), max(height, 1)
	return &RasterCanvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		state: rasterState{m: identity},
		z:     vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image. It is shared, not copied.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

// Size returns the canvas size in pixels.
func (c *RasterCanvas) Size() Size {
	b := c.img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	c.state.m = c.state.m.mul(affine{a: 1, d: 1, e: dx, f: dy})
}

func (c *RasterCanvas) Scale(sx, sy float64) {
	c.state.m = c.state.m.mul(affine{a: sx, d: sy})
}

func (c *RasterCanvas) Rotate(radians float64) {
	sin, cos := math.Sincos(radians)
	c.state.m = c.state.m.mul(affine{a: cos, b: sin, c: -sin, d: cos})
}

func (c *RasterCanvas) ClipRect(rect Rect) {
	p := NewPath()
	p.AddRect(rect.Normalize())
	c.clipPath(p)
}

func (c *RasterCanvas) ClipRRect(rrect RRect) {
	p := NewPath()
	p.AddRRect(rrect)
	c.clipPath(p)
}

// clipPath intersects the current clip with the path. The saved states
// keep their own masks because a fresh mask is allocated here.
func (c *RasterCanvas) clipPath(p *Path) {
	mask := c.coverage(p.Flatten(c.tolerance()))
	if prev := c.state.clip; prev != nil {
		multiplyMask(mask, prev)
	}
	c.state.clip = mask
}

func (c *RasterCanvas) Clear(col Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	p := NewPath()
	p.AddRect(rect.Normalize())
	c.DrawPath(p, paint)
}

func (c *RasterCanvas) DrawRRect(rrect RRect, paint Paint) {
	p := NewPath()
	p.AddRRect(rrect)
	c.DrawPath(p, paint)
}

func (c *RasterCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	p := NewPath()
	p.AddCircle(center, radius)
	c.DrawPath(p, paint)
}

// DrawLine always strokes, whatever the paint style.
func (c *RasterCanvas) DrawLine(start, end Offset, paint Paint) {
	p := NewPath()
	p.MoveTo(start.X, start.Y)
	p.LineTo(end.X, end.Y)
	paint.Style = PaintStyleStroke
	c.DrawPath(p, paint)
}

// DrawArc always strokes, whatever the paint style.
func (c *RasterCanvas) DrawArc(center Offset, radius, startAngle, sweepAngle float64, paint Paint) {
	p := NewPath()
	p.AddArc(center, radius, startAngle, sweepAngle)
	paint.Style = PaintStyleStroke
	c.DrawPath(p, paint)
}

func (c *RasterCanvas) DrawPath(path *Path, paint Paint) {
	if path.IsEmpty() {
		return
	}
	src := c.source(paint)
	if src == nil {
		return
	}
	tol := c.tolerance()
	contours := path.Flatten(tol)
	if paint.Style == PaintStyleStroke {
		width := paint.StrokeWidth
		if !(width > 0) {
			width = 1 / c.state.m.scale()
		}
		if paint.Dash != nil {
			contours = DashContours(contours, paint.Dash)
		}
		contours = strokeOutline(contours, width, paint.StrokeCap, paint.StrokeJoin, tol)
	}
	c.composite(c.coverage(contours), src)
}

func (c *RasterCanvas) DrawRRectShadow(rrect RRect, shadow BoxShadow) {
	if shadow.Color.Alpha() == 0 {
		return
	}
	shape := rrect.Inflate(shadow.Spread).Translate(shadow.Offset.X, shadow.Offset.Y)
	if shape.Rect.IsEmpty() {
		return
	}
	p := NewPath()
	p.AddRRect(shape)
	base := c.coverage(p.Flatten(c.tolerance()))

	sigma := shadow.Sigma() * c.state.m.scale()
	mask := base
	if sigma > 0 {
		mask = blurMask(base, sigma)
		applyBlurStyle(mask, base, shadow.BlurStyle)
	}
	c.composite(mask, image.NewUniform(shadow.Color.NRGBA()))
}

func (c *RasterCanvas) tolerance() float64 {
	return 0.25 / c.state.m.scale()
}

func (c *RasterCanvas) source(paint Paint) image.Image {
	if paint.Gradient.IsValid() {
		inv, ok := c.state.m.invert()
		if !ok {
			return nil
		}
		return &gradientImage{g: paint.Gradient, inv: inv}
	}
	if paint.Color.Alpha() == 0 {
		return nil
	}
	return image.NewUniform(paint.Color.NRGBA())
}

// coverage rasterizes local-space contours into a canvas-sized mask.
func (c *RasterCanvas) coverage(contours []Contour) *image.Alpha {
	b := c.img.Bounds()
	mask := image.NewAlpha(b)
	c.z.Reset(b.Dx(), b.Dy())
	drawn := false
	for _, ct := range contours {
		if len(ct.Points) < 2 {
			continue
		}
		for i, p := range ct.Points {
			x, y := c.state.m.apply(p)
			if math.IsNaN(x) || math.IsNaN(y) {
				continue
			}
			if i == 0 {
				c.z.MoveTo(clampCoord(x), clampCoord(y))
			} else {
				c.z.LineTo(clampCoord(x), clampCoord(y))
			}
		}
		c.z.ClosePath()
		drawn = true
	}
	if drawn {
		c.z.DrawOp = draw.Src
		c.z.Draw(mask, b, image.Opaque, image.Point{})
	}
	return mask
}

func (c *RasterCanvas) composite(mask *image.Alpha, src image.Image) {
	if clip := c.state.clip; clip != nil {
		multiplyMask(mask, clip)
	}
	draw.DrawMask(c.img, c.img.Bounds(), src, image.Point{}, mask, image.Point{}, draw.Over)
}

func clampCoord(v float64) float32 {
	return float32(math.Max(-1e5, math.Min(1e5, v)))
}

// multiplyMask scales dst by src in place.
func multiplyMask(dst, src *image.Alpha) {
	for i := range dst.Pix {
		dst.Pix[i] = uint8((uint32(dst.Pix[i])*uint32(src.Pix[i]) + 127) / 255)
	}
}

func applyBlurStyle(blurred, shape *image.Alpha, style BlurStyle) {
	for i, b := range blurred.Pix {
		s := shape.Pix[i]
		switch style {
		case BlurStyleSolid:
			blurred.Pix[i] = max(b, s)
		case BlurStyleOuter:
			blurred.Pix[i] = uint8((uint32(b)*uint32(255-s) + 127) / 255)
		case BlurStyleInner:
			blurred.Pix[i] = uint8((uint32(b)*uint32(s) + 127) / 255)
		}
	}
}

// blurMask approximates a gaussian blur with three box blurs. Pixels
// outside the mask count as transparent.
func blurMask(src *image.Alpha, sigma float64) *image.Alpha {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	buf := make([]float32, len(src.Pix))
	for i, v := range src.Pix {
		buf[i] = float32(v)
	}
	tmp := make([]float32, len(buf))
	for _, size := range boxSizes(sigma, 3) {
		r := (size - 1) / 2
		boxBlurH(buf, tmp, w, h, r)
		boxBlurV(tmp, buf, w, h, r)
	}
	out := image.NewAlpha(src.Rect)
	for i, v := range buf {
		out.Pix[i] = uint8(math.Round(math.Max(0, math.Min(255, float64(v)))))
	}
	return out
}

// boxSizes returns n odd box widths whose sequential application
// approximates a gaussian of the given sigma.
func boxSizes(sigma float64, n int) []int {
	ideal := math.Sqrt(12*sigma*sigma/float64(n) + 1)
	wl := int(math.Floor(ideal))
	if wl%2 == 0 {
		wl--
	}
	wl = max(wl, 1)
	wu := wl + 2
	m := int(math.Round((12*sigma*sigma - float64(n*wl*wl) - float64(4*n*wl) - float64(3*n)) / float64(-4*wl-4)))
	sizes := make([]int, n)
	for i := range sizes {
		if i < m {
			sizes[i] = wl
		} else {
			sizes[i] = wu
		}
	}
	return sizes
}

func boxBlurH(src, dst []float32, w, h, r int) {
	scale := 1 / float32(2*r+1)
	for y := range h {
		row := src[y*w : (y+1)*w]
		var acc float32
		for x := 0; x <= r && x < w; x++ {
			acc += row[x]
		}
		for x := range w {
			dst[y*w+x] = acc * scale
			if x+r+1 < w {
				acc += row[x+r+1]
			}
			if x-r >= 0 {
				acc -= row[x-r]
			}
		}
	}
}

func boxBlurV(src, dst []float32, w, h, r int) {
	scale := 1 / float32(2*r+1)
	for x := range w {
		var acc float32
		for y := 0; y <= r && y < h; y++ {
			acc += src[y*w+x]
		}
		for y := range h {
			dst[y*w+x] = acc * scale
			if y+r+1 < h {
				acc += src[(y+r+1)*w+x]
			}
			if y-r >= 0 {
				acc -= src[(y-r)*w+x]
			}
		}
	}
}

// gradientImage samples a gradient at pixel centres mapped back into the
// local space the gradient was defined in.
type gradientImage struct {
	g   *Gradient
	inv affine
}

func (g *gradientImage) ColorModel() color.Model { return color.NRGBAModel }

func (g *gradientImage) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (g *gradientImage) At(x, y int) color.Color {
	lx, ly := g.inv.apply(Offset{X: float64(x) + 0.5, Y: float64(y) + 0.5})
	return g.g.ColorAt(Offset{X: lx, Y: ly}).NRGBA()
}

// affine maps (x, y) to (a*x + c*y + e, b*x + d*y + f).
type affine struct {
	a, b, c, d, e, f float64
}

var identity = affine{a: 1, d: 1}

func (m affine) apply(p Offset) (float64, float64) {
	return m.a*p.X + m.c*p.Y + m.e, m.b*p.X + m.d*p.Y + m.f
}

// mul returns the transform that applies n first, then m.
func (m affine) mul(n affine) affine {
	return affine{
		a: m.a*n.a + m.c*n.b,
		b: m.b*n.a + m.d*n.b,
		c: m.a*n.c + m.c*n.d,
		d: m.b*n.c + m.d*n.d,
		e: m.a*n.e + m.c*n.f + m.e,
		f: m.b*n.e + m.d*n.f + m.f,
	}
}

func (m affine) det() float64 {
	return m.a*m.d - m.b*m.c
}

// scale is the geometric mean of the axis scale factors.
func (m affine) scale() float64 {
	s := math.Sqrt(math.Abs(m.det()))
	if s < epsilon {
		return epsilon
	}
	return s
}

func (m affine) invert() (affine, bool) {
	det := m.det()
	if math.Abs(det) < 1e-12 {
		return affine{}, false
	}
	return affine{
		a: m.d / det,
		b: -m.b / det,
		c: -m.c / det,
		d: m.a / det,
		e: (m.c*m.f - m.d*m.e) / det,
		f: (m.b*m.e - m.a*m.f) / det,
	}, true
}
