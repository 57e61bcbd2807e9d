package theme

import "github.com/cgsoftware/neoui/pkg/graphics"

// ThemeData bundles a palette with the device the sizes are scaled for.
type ThemeData struct {
	// Colors is the neumorphic palette.
	Colors Colors

	// Device scales every size default.
	Device DeviceConfig
}

// DefaultLightTheme returns the light palette on a phone.
func DefaultLightTheme() *ThemeData {
	return &ThemeData{Colors: LightColors(), Device: PhoneDevice}
}

// DefaultDarkTheme returns the dark palette on a phone.
func DefaultDarkTheme() *ThemeData {
	return &ThemeData{Colors: DarkColors(), Device: PhoneDevice}
}

// Defaults returns the size defaults for the theme's device.
func (t *ThemeData) Defaults() Defaults {
	return DefaultsFor(t.Device)
}

// CopyWith returns a new ThemeData with the non-nil fields overridden.
func (t *ThemeData) CopyWith(colors *Colors, device *DeviceConfig) *ThemeData {
	result := &ThemeData{Colors: t.Colors, Device: t.Device}
	if colors != nil {
		result.Colors = *colors
	}
	if device != nil {
		result.Device = *device
	}
	return result
}

// WithAccent returns a copy of the theme using accent for LEDs.
func (t *ThemeData) WithAccent(accent graphics.Color) *ThemeData {
	colors := t.Colors.WithAccent(accent)
	return t.CopyWith(&colors, nil)
}
