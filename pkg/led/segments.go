package led

import (
	"math"

	"github.com/cgsoftware/neoui/pkg/graphics"
)

const (
	// MinSegments is the fewest segments a segmented border draws.
	MinSegments = 12
	// SegmentLength is the length of one lit segment.
	SegmentLength = 12.0

	sweepWindow    = 0.08
	pulseThreshold = 0.08
	glowSpread     = 1.4
	bevelAlpha     = 0.12
)

// Side identifies the border side a segment sits on.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// Segment is the placement of one LED along the border.
type Segment struct {
	// Index runs clockwise from the top-left: top left to right, right
	// top to bottom, bottom right to left, left bottom to top.
	Index  int
	Side   Side
	Center graphics.Offset
	Start  graphics.Offset
	End    graphics.Offset
}

// SegmentCounts returns the segments drawn per side and in total for the
// configured segment count.
func SegmentCounts(segments int) (perSide, total int) {
	perSide = max(3, max(segments, MinSegments)/4)
	return perSide, perSide * 4
}

// SegmentLayout places every segment on rect, lit or not. Segments are
// spaced evenly along each side without touching the corners.
func SegmentLayout(rect graphics.Rect, segments int) []Segment {
	perSide, total := SegmentCounts(segments)
	out := make([]Segment, 0, total)
	half := SegmentLength / 2

	for side := SideTop; side <= SideLeft; side++ {
		for i := range perSide {
			t := float64(i+1) / float64(perSide+1)
			seg := Segment{Index: int(side)*perSide + i, Side: side}
			switch side {
			case SideTop:
				x := rect.Left + rect.Width()*t
				seg.Center = graphics.Offset{X: x, Y: rect.Top}
				seg.Start = graphics.Offset{X: x - half, Y: rect.Top}
				seg.End = graphics.Offset{X: x + half, Y: rect.Top}
			case SideRight:
				y := rect.Top + rect.Height()*t
				seg.Center = graphics.Offset{X: rect.Right, Y: y}
				seg.Start = graphics.Offset{X: rect.Right, Y: y - half}
				seg.End = graphics.Offset{X: rect.Right, Y: y + half}
			case SideBottom:
				x := rect.Right - rect.Width()*t
				seg.Center = graphics.Offset{X: x, Y: rect.Bottom}
				seg.Start = graphics.Offset{X: x - half, Y: rect.Bottom}
				seg.End = graphics.Offset{X: x + half, Y: rect.Bottom}
			case SideLeft:
				y := rect.Bottom - rect.Height()*t
				seg.Center = graphics.Offset{X: rect.Left, Y: y}
				seg.Start = graphics.Offset{X: rect.Left, Y: y - half}
				seg.End = graphics.Offset{X: rect.Left, Y: y + half}
			}
			out = append(out, seg)
		}
	}
	return out
}

// SegmentLit reports whether segment index of total is lit in state.
// A sweep lights the segments within a small window of its position and
// wraps that window past the end onto the first segments.
func SegmentLit(state State, index, total int) bool {
	switch state.Mode {
	case ModeSolid, ModeBreath:
		return true
	case ModePulse:
		return state.PulseValue > pulseThreshold
	case ModeSweep:
		if total <= 0 {
			return false
		}
		p := float64(index) / float64(total)
		pos := state.SweepPosition
		return math.Abs(pos-p) < sweepWindow || (pos > 1-sweepWindow && p < sweepWindow)
	default:
		return false
	}
}

func renderSegmented(canvas graphics.Canvas, rect graphics.Rect, accent graphics.Color, width float64, state State, cfg Config, intensity float64) {
	_, total := SegmentCounts(cfg.Segments)
	a := graphics.Clamp01(state.EffectiveAlpha() * intensity * SolidAlpha)
	glowA := graphics.Clamp01(state.EffectiveAlpha() * intensity * GlowAlpha)

	core := graphics.StrokePaint(accent.WithAlpha(a), width)
	glow := graphics.StrokePaint(accent.WithAlpha(glowA*0.8), width+width*glowSpread)
	bevel := graphics.StrokePaint(graphics.ColorWhite.WithAlpha(bevelAlpha*a), max(1, width*0.35))

	for _, seg := range SegmentLayout(rect, cfg.Segments) {
		if !SegmentLit(state, seg.Index, total) {
			continue
		}
		canvas.DrawLine(seg.Start, seg.End, core)
		canvas.DrawLine(seg.Start, seg.End, glow)
		if cfg.HasBevel {
			canvas.DrawLine(seg.Start, seg.End, bevel)
		}
	}
}
