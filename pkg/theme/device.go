package theme

import "fmt"

// TabletThreshold is the screen width in dp from which a device counts as
// a tablet.
const TabletThreshold = 600

// DeviceType classifies the host screen.
type DeviceType int

const (
	Phone DeviceType = iota
	Tablet
)

func (d DeviceType) String() string {
	switch d {
	case Phone:
		return "phone"
	case Tablet:
		return "tablet"
	default:
		return fmt.Sprintf("DeviceType(%d)", int(d))
	}
}

// DeviceConfig carries the screen class and the factor every size
// default is multiplied by.
type DeviceConfig struct {
	Type         DeviceType
	ScreenWidth  int
	ScreenHeight int
	ScaleFactor  float64
}

// PhoneDevice is a typical phone screen at scale 1.
var PhoneDevice = CalculateDevice(411, 891)

// CalculateDevice classifies a screen of the given size in dp.
func CalculateDevice(widthDp, heightDp int) DeviceConfig {
	typ := Phone
	if widthDp >= TabletThreshold {
		typ = Tablet
	}

	var scale float64
	switch {
	case widthDp < 400:
		scale = 0.9
	case widthDp < TabletThreshold:
		scale = 1.0
	case widthDp < 800:
		scale = 1.4
	case widthDp < 1000:
		scale = 1.6
	default:
		scale = 1.8
	}

	return DeviceConfig{Type: typ, ScreenWidth: widthDp, ScreenHeight: heightDp, ScaleFactor: scale}
}

// Scaled multiplies v by the device scale factor.
func (d DeviceConfig) Scaled(v float64) float64 {
	if d.ScaleFactor == 0 {
		return v
	}
	return v * d.ScaleFactor
}
