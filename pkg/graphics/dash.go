package graphics

import "math"

// DashContours splits contours into the "on" runs of a dash pattern.
// The pattern restarts at the beginning of every contour, shifted by
// phase. A closed contour is walked including its closing segment. An
// invalid pattern returns the contours unchanged.
func DashContours(contours []Contour, dash *DashPattern) []Contour {
	if !dash.Valid() {
		return contours
	}
	period := dash.Length()
	var out []Contour
	for _, c := range contours {
		pts := c.Points
		if c.Closed && len(pts) > 1 {
			pts = append(append([]Offset(nil), pts...), pts[0])
		}
		out = append(out, dashPolyline(pts, dash.Intervals, period, dash.Phase)...)
	}
	return out
}

func dashPolyline(pts []Offset, intervals []float64, period, phase float64) []Contour {
	if len(pts) < 2 {
		return nil
	}
	// Locate the starting interval after applying the phase.
	offset := math.Mod(phase, period)
	if offset < 0 {
		offset += period
	}
	idx := 0
	for offset >= intervals[idx] {
		offset -= intervals[idx]
		idx = (idx + 1) % len(intervals)
	}
	remaining := intervals[idx] - offset
	on := idx%2 == 0

	var (
		out     []Contour
		current []Offset
	)
	if on {
		current = []Offset{pts[0]}
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := a.Distance(b)
		pos := 0.0
		for segLen-pos > remaining {
			pos += remaining
			t := pos / segLen
			p := Offset{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
			if on {
				current = append(current, p)
				out = append(out, Contour{Points: current})
				current = nil
			} else {
				current = []Offset{p}
			}
			on = !on
			idx = (idx + 1) % len(intervals)
			remaining = intervals[idx]
		}
		remaining -= segLen - pos
		if on {
			current = append(current, b)
		}
	}
	if on && len(current) > 1 {
		out = append(out, Contour{Points: current})
	}
	return out
}
