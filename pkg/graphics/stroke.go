package graphics

import "math"

// miterLimit is the maximum miter length as a multiple of the half width.
const miterLimit = 4.0

// roundJoinAngle is the turn above which round joins get a full disc.
// Smaller turns (flattened curves) use a miter wedge.
const roundJoinAngle = 0.2

// strokeOutline converts polylines into closed polygons covering the
// stroke of the given width. Every polygon has positive signed area so
// overlapping pieces accumulate instead of cancelling in the rasterizer.
// tolerance bounds the chord error of round caps and joins.
func strokeOutline(contours []Contour, width float64, lineCap StrokeCap, join StrokeJoin, tolerance float64) []Contour {
	hw := width * 0.5
	if !(hw > 0) {
		return nil
	}
	var polys []Contour
	add := func(pts ...Offset) {
		polys = append(polys, orient(Contour{Points: pts, Closed: true}))
	}
	disc := func(center Offset) {
		polys = append(polys, orient(discPolygon(center, hw, tolerance)))
	}

	for _, c := range contours {
		pts := dedupe(c.Points)
		if c.Closed && len(pts) > 1 && pts[0].Distance(pts[len(pts)-1]) < epsilon {
			pts = pts[:len(pts)-1]
		}
		if len(pts) < 2 {
			if len(pts) == 1 && lineCap == CapRound {
				disc(pts[0])
			}
			continue
		}
		closed := c.Closed && len(pts) > 2
		if closed {
			pts = append(pts, pts[0])
		}
		n := len(pts)

		if !closed && lineCap == CapSquare {
			pts[0] = pts[0].Sub(direction(pts[0], pts[1]).Scale(hw))
			pts[n-1] = pts[n-1].Add(direction(pts[n-2], pts[n-1]).Scale(hw))
		}

		for i := 1; i < n; i++ {
			a, b := pts[i-1], pts[i]
			nrm := normal(a, b).Scale(hw)
			add(a.Add(nrm), b.Add(nrm), b.Sub(nrm), a.Sub(nrm))
		}

		joinAt := func(prev, v, next Offset) {
			d1, d2 := direction(prev, v), direction(v, next)
			n1, n2 := normal(prev, v), normal(v, next)
			turn := math.Abs(math.Atan2(d1.X*d2.Y-d1.Y*d2.X, d1.X*d2.X+d1.Y*d2.Y))
			if turn < epsilon {
				return
			}
			if join == JoinRound && turn > roundJoinAngle {
				disc(v)
				return
			}
			side := 1.0
			if n1.X*d2.X+n1.Y*d2.Y > 0 {
				side = -1
			}
			p1 := v.Add(n1.Scale(side * hw))
			p2 := v.Add(n2.Scale(side * hw))
			bis := n1.Add(n2)
			l := math.Hypot(bis.X, bis.Y)
			if l > epsilon {
				miter := 2 * hw / l
				if miter <= miterLimit*hw {
					add(v, p1, v.Add(bis.Scale(side*miter/l)), p2)
					return
				}
			}
			add(v, p1, p2)
		}
		for i := 1; i < n-1; i++ {
			joinAt(pts[i-1], pts[i], pts[i+1])
		}
		if closed {
			joinAt(pts[n-2], pts[0], pts[1])
		} else if lineCap == CapRound {
			disc(pts[0])
			disc(pts[n-1])
		}
	}
	return polys
}

func dedupe(pts []Offset) []Offset {
	out := make([]Offset, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1].Distance(p) < epsilon {
			continue
		}
		out = append(out, p)
	}
	return out
}

func direction(a, b Offset) Offset {
	d := b.Sub(a)
	l := math.Hypot(d.X, d.Y)
	if l == 0 {
		return Offset{}
	}
	return d.Scale(1 / l)
}

// normal returns the unit left normal of the segment a->b.
func normal(a, b Offset) Offset {
	d := direction(a, b)
	return Offset{X: -d.Y, Y: d.X}
}

func discPolygon(center Offset, radius, tolerance float64) Contour {
	n := 8
	if tolerance > 0 && radius > tolerance {
		n = int(math.Ceil(math.Pi / math.Acos(1-tolerance/radius)))
	}
	n = max(8, min(n, 128))
	pts := make([]Offset, n)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Offset{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	return Contour{Points: pts, Closed: true}
}

func signedArea(pts []Offset) float64 {
	var area float64
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return area * 0.5
}

func orient(c Contour) Contour {
	if signedArea(c.Points) < 0 {
		for i, j := 0, len(c.Points)-1; i < j; i, j = i+1, j-1 {
			c.Points[i], c.Points[j] = c.Points[j], c.Points[i]
		}
	}
	return c
}
