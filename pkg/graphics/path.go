package graphics

import (
	"fmt"
	"math"
)

// kappa is the cubic bezier control distance for a quarter circle.
const kappa = 0.5522847498307936

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing or clipping arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close, or the
// shape helpers AddRRect and AddArc. Use with Canvas.DrawPath.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, Args: []float64{x, y}})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpLineTo, Args: []float64{x, y}})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpQuadTo, Args: []float64{x1, y1, x2, y2}})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpCubicTo, Args: []float64{x1, y1, x2, y2, x3, y3}})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpClose})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.Commands) == 0
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	out := &Path{Commands: make([]PathCommand, len(p.Commands))}
	for i, cmd := range p.Commands {
		out.Commands[i] = PathCommand{Op: cmd.Op, Args: append([]float64(nil), cmd.Args...)}
	}
	return out
}

// AddRect appends a closed rectangle, clockwise from the top-left corner.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.Left, r.Top)
	p.LineTo(r.Right, r.Top)
	p.LineTo(r.Right, r.Bottom)
	p.LineTo(r.Left, r.Bottom)
	p.Close()
}

// AddRRect appends a closed rounded rectangle, clockwise, starting at the
// end of the top-left corner. Radii larger than half the rect are clamped.
// Empty rects add nothing.
func (p *Path) AddRRect(rr RRect) {
	r := rr.Rect
	if r.IsEmpty() {
		return
	}
	rad := rr.ClampedRadius()
	if rad.X <= 0 || rad.Y <= 0 {
		p.AddRect(r)
		return
	}
	kx, ky := rad.X*kappa, rad.Y*kappa
	p.MoveTo(r.Left+rad.X, r.Top)
	p.LineTo(r.Right-rad.X, r.Top)
	p.CubicTo(r.Right-rad.X+kx, r.Top, r.Right, r.Top+rad.Y-ky, r.Right, r.Top+rad.Y)
	p.LineTo(r.Right, r.Bottom-rad.Y)
	p.CubicTo(r.Right, r.Bottom-rad.Y+ky, r.Right-rad.X+kx, r.Bottom, r.Right-rad.X, r.Bottom)
	p.LineTo(r.Left+rad.X, r.Bottom)
	p.CubicTo(r.Left+rad.X-kx, r.Bottom, r.Left, r.Bottom-rad.Y+ky, r.Left, r.Bottom-rad.Y)
	p.LineTo(r.Left, r.Top+rad.Y)
	p.CubicTo(r.Left, r.Top+rad.Y-ky, r.Left+rad.X-kx, r.Top, r.Left+rad.X, r.Top)
	p.Close()
}

// AddCircle appends a closed circle.
func (p *Path) AddCircle(center Offset, radius float64) {
	if radius <= 0 {
		return
	}
	p.AddArc(center, radius, 0, 2*math.Pi)
	p.Close()
}

// AddArc appends an open circular arc as a new subpath. Angles are in
// radians, measured clockwise from the positive x axis (y points down).
func (p *Path) AddArc(center Offset, radius, startAngle, sweepAngle float64) {
	if radius <= 0 || sweepAngle == 0 {
		return
	}
	segments := int(math.Ceil(math.Abs(sweepAngle) / (math.Pi / 2)))
	step := sweepAngle / float64(segments)
	k := 4.0 / 3.0 * math.Tan(step/4)

	a0 := startAngle
	p.MoveTo(center.X+radius*math.Cos(a0), center.Y+radius*math.Sin(a0))
	for range segments {
		a1 := a0 + step
		c0, s0 := math.Cos(a0), math.Sin(a0)
		c1, s1 := math.Cos(a1), math.Sin(a1)
		p.CubicTo(
			center.X+radius*(c0-k*s0), center.Y+radius*(s0+k*c0),
			center.X+radius*(c1+k*s1), center.Y+radius*(s1-k*c1),
			center.X+radius*c1, center.Y+radius*s1,
		)
		a0 = a1
	}
}

// Contour is a flattened subpath.
type Contour struct {
	Points []Offset
	Closed bool
}

// Length returns the polyline length including the closing segment.
func (c Contour) Length() float64 {
	var total float64
	for i := 1; i < len(c.Points); i++ {
		total += c.Points[i-1].Distance(c.Points[i])
	}
	if c.Closed && len(c.Points) > 1 {
		total += c.Points[len(c.Points)-1].Distance(c.Points[0])
	}
	return total
}

// Flatten converts the path to polylines. Curves are subdivided so that
// no chord is longer than tolerance.
func (p *Path) Flatten(tolerance float64) []Contour {
	if p.IsEmpty() {
		return nil
	}
	if tolerance <= 0 {
		tolerance = 0.5
	}
	var (
		out     []Contour
		current []Offset
		pen     Offset
		start   Offset
	)
	flush := func(closed bool) {
		if len(current) > 1 {
			out = append(out, Contour{Points: current, Closed: closed})
		}
		current = nil
	}
	for _, cmd := range p.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			flush(false)
			pen = Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			start = pen
			current = []Offset{pen}
		case PathOpLineTo:
			if current == nil {
				current = []Offset{pen}
			}
			pen = Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			current = append(current, pen)
		case PathOpQuadTo:
			if current == nil {
				current = []Offset{pen}
			}
			c := Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			end := Offset{X: cmd.Args[2], Y: cmd.Args[3]}
			n := subdivisions(pen.Distance(c)+c.Distance(end), tolerance)
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				u := 1 - t
				current = append(current, Offset{
					X: u*u*pen.X + 2*u*t*c.X + t*t*end.X,
					Y: u*u*pen.Y + 2*u*t*c.Y + t*t*end.Y,
				})
			}
			pen = end
		case PathOpCubicTo:
			if current == nil {
				current = []Offset{pen}
			}
			c1 := Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			c2 := Offset{X: cmd.Args[2], Y: cmd.Args[3]}
			end := Offset{X: cmd.Args[4], Y: cmd.Args[5]}
			n := subdivisions(pen.Distance(c1)+c1.Distance(c2)+c2.Distance(end), tolerance)
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				u := 1 - t
				current = append(current, Offset{
					X: u*u*u*pen.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*end.X,
					Y: u*u*u*pen.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*end.Y,
				})
			}
			pen = end
		case PathOpClose:
			flush(true)
			pen = start
		}
	}
	flush(false)
	return out
}

func subdivisions(length, tolerance float64) int {
	n := int(math.Ceil(length / tolerance))
	if n < 1 {
		return 1
	}
	if n > 256 {
		return 256
	}
	return n
}
