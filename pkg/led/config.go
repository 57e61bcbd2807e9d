package led

import "fmt"

// Brightness constants shared by the continuous and segmented renderers.
const (
	// GlowAlpha scales the halo relative to the border's alpha.
	GlowAlpha = 0.25
	// SolidAlpha caps the core stroke's alpha.
	SolidAlpha = 0.90
)

// Style selects the border renderer.
type Style int

const (
	// StyleContinuous strokes the whole rounded rect.
	StyleContinuous Style = iota
	// StyleSegmented draws discrete LED segments along each side.
	StyleSegmented
)

func (s Style) String() string {
	switch s {
	case StyleContinuous:
		return "continuous"
	case StyleSegmented:
		return "segmented"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// CornerStyle describes how the border turns a corner.
// The renderers currently draw every style as rounded.
type CornerStyle int

const (
	CornerRounded CornerStyle = iota
	CornerSharp
	CornerBeveled
	CornerChamfered
)

func (c CornerStyle) String() string {
	switch c {
	case CornerRounded:
		return "rounded"
	case CornerSharp:
		return "sharp"
	case CornerBeveled:
		return "beveled"
	case CornerChamfered:
		return "chamfered"
	default:
		return fmt.Sprintf("CornerStyle(%d)", int(c))
	}
}

// Config describes the border's construction. It is passed by value.
type Config struct {
	Style          Style
	Segments       int
	SegmentDepth   float64
	SegmentWidth   float64
	SegmentSpacing float64
	CornerStyle    CornerStyle
	HasBevel       bool
	IsRecessed     bool
}

// DefaultConfig returns a continuous border with the default segment
// geometry used when Style is switched to segmented.
func DefaultConfig() Config {
	return Config{
		Style:          StyleContinuous,
		Segments:       12,
		SegmentDepth:   0.5,
		SegmentWidth:   4,
		SegmentSpacing: 2,
		CornerStyle:    CornerRounded,
		HasBevel:       true,
	}
}
