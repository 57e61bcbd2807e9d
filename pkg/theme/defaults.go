package theme

import (
	"fmt"
	"time"
)

// Size picks one of the three component sizes.
type Size int

const (
	Small Size = iota
	Medium
	Large
)

func (s Size) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	default:
		return fmt.Sprintf("Size(%d)", int(s))
	}
}

// ParseSize returns the size named s, as produced by String.
func ParseSize(s string) (Size, error) {
	for sz := Small; sz <= Large; sz++ {
		if sz.String() == s {
			return sz, nil
		}
	}
	return Medium, fmt.Errorf("unknown component size %q", s)
}

func (s Size) pick(small, medium, large float64) float64 {
	switch s {
	case Small:
		return small
	case Large:
		return large
	default:
		return medium
	}
}

// Unscaled component constants.
const (
	KnobSensitivity = 0.0018
	KnobStartAngle  = 135.0
	KnobSweepAngle  = 270.0
	KnobTickCount   = 21

	FaderGripLines = 3

	LedInset    = 0.0
	LedSegments = 12

	LedBreath = 1600 * time.Millisecond
	LedPulse  = 220 * time.Millisecond
	LedSweep  = 600 * time.Millisecond

	SwitchAnimation = 280 * time.Millisecond
)

// Defaults resolves component sizes for a device. Sizes are in dp
// multiplied by the device scale factor.
type Defaults struct {
	Device DeviceConfig
}

// DefaultsFor returns the defaults for device.
func DefaultsFor(device DeviceConfig) Defaults {
	return Defaults{Device: device}
}

func (d Defaults) scale(v float64) float64 { return d.Device.Scaled(v) }

// KnobSize returns the knob diameter.
func (d Defaults) KnobSize(s Size) float64 { return d.scale(s.pick(64, 96, 140)) }

// FaderHeight returns the fader length.
func (d Defaults) FaderHeight(s Size) float64 { return d.scale(s.pick(200, 280, 400)) }

// FaderTrack returns the fader track thickness.
func (d Defaults) FaderTrack() float64 { return d.scale(18) }

// TimelineHeight returns the timeline bar height.
func (d Defaults) TimelineHeight(s Size) float64 { return d.scale(s.pick(32, 48, 64)) }

// ButtonMinHeight returns the minimum button height.
func (d Defaults) ButtonMinHeight(s Size) float64 { return d.scale(s.pick(48, 56, 72)) }

func (d Defaults) ButtonRadius() float64    { return d.scale(12) }
func (d Defaults) ButtonElevation() float64 { return d.scale(3) }
func (d Defaults) ButtonPadding() float64   { return d.scale(12) }

func (d Defaults) PanelRadius() float64    { return d.scale(16) }
func (d Defaults) PanelElevation() float64 { return d.scale(3) }
func (d Defaults) PanelPadding() float64   { return d.scale(12) }

// SwitchTrack returns the switch track width and height.
func (d Defaults) SwitchTrack(s Size) (width, height float64) {
	return d.scale(s.pick(52, 64, 80)), d.scale(s.pick(28, 34, 42))
}

// SwitchThumb returns the switch thumb diameter.
func (d Defaults) SwitchThumb(s Size) float64 { return d.scale(s.pick(22, 28, 36)) }

// SwitchRadius returns the track corner radius, a full pill.
func (d Defaults) SwitchRadius(s Size) float64 {
	_, h := d.SwitchTrack(s)
	return h / 2
}

func (d Defaults) SwitchElevation() float64 { return d.scale(3) }

// LedWidth returns the LED core stroke width.
func (d Defaults) LedWidth() float64 { return d.scale(1) }

// LedGlow returns the LED halo width.
func (d Defaults) LedGlow() float64 { return d.scale(2) }

// Spacing steps.
func (d Defaults) SpacingXS() float64 { return d.scale(4) }
func (d Defaults) SpacingSM() float64 { return d.scale(8) }
func (d Defaults) SpacingMD() float64 { return d.scale(16) }
func (d Defaults) SpacingLG() float64 { return d.scale(24) }
func (d Defaults) SpacingXL() float64 { return d.scale(32) }
