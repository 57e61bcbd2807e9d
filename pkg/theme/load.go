package theme

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/cgsoftware/neoui/pkg/errors"
	"github.com/cgsoftware/neoui/pkg/graphics"
)

// SupportedMajor is the only theme file major version understood.
const SupportedMajor = "v1"

// File is the on-disk theme format.
//
//	version: 1.0.0
//	dark: true
//	accent: "#FF3D00"
//	dark_shadow_alpha: 0.5
//	screen: {width: 820, height: 1180}
type File struct {
	Version string `yaml:"version" validate:"required"`
	Dark    bool   `yaml:"dark"`

	Accent      string `yaml:"accent,omitempty" validate:"omitempty,hexcolor"`
	Background  string `yaml:"background,omitempty" validate:"omitempty,hexcolor"`
	LightShadow string `yaml:"light_shadow,omitempty" validate:"omitempty,hexcolor"`
	DarkShadow  string `yaml:"dark_shadow,omitempty" validate:"omitempty,hexcolor"`

	LightShadowAlpha *float64 `yaml:"light_shadow_alpha,omitempty" validate:"omitempty,gte=0,lte=1"`
	DarkShadowAlpha  *float64 `yaml:"dark_shadow_alpha,omitempty" validate:"omitempty,gte=0,lte=1"`

	Screen *Screen `yaml:"screen,omitempty"`
}

// Screen is the screen size in dp the theme scales for.
type Screen struct {
	Width  int `yaml:"width" validate:"gt=0"`
	Height int `yaml:"height" validate:"gt=0"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// LoadFile reads and parses a theme file.
func LoadFile(path string) (*ThemeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.NeoError{Op: "theme.LoadFile", Kind: errors.KindIO, Path: path, Err: err}
	}
	td, err := Parse(data)
	if err != nil {
		var ne *errors.NeoError
		if stderrors.As(err, &ne) {
			ne.Op = "theme.LoadFile"
			ne.Path = path
		}
		return nil, err
	}
	return td, nil
}

// Parse decodes a YAML theme file and resolves it against the built-in
// palettes. Fields left out keep the palette's value.
func Parse(data []byte) (*ThemeData, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, configError(fmt.Errorf("parse: %w", err))
	}
	return f.Resolve()
}

// Validate checks the version and every field constraint.
func (f *File) Validate() error {
	if err := validatorInstance().Struct(f); err != nil {
		return configError(convertValidationError(err))
	}
	v := f.Version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return configError(fmt.Errorf("version %q is not a semantic version", f.Version))
	}
	if major := semver.Major(v); major != SupportedMajor {
		return configError(fmt.Errorf("unsupported theme version %s, want %s.x.y", major, SupportedMajor))
	}
	return nil
}

// Resolve validates f and returns the theme it describes.
func (f *File) Resolve() (*ThemeData, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	colors := New(f.Dark, DefaultAccent)
	overrides := []struct {
		hex string
		dst *graphics.Color
	}{
		{f.Accent, &colors.Accent},
		{f.Background, &colors.Background},
		{f.LightShadow, &colors.LightShadow},
		{f.DarkShadow, &colors.DarkShadow},
	}
	for _, o := range overrides {
		if o.hex == "" {
			continue
		}
		c, err := graphics.ParseHex(o.hex)
		if err != nil {
			return nil, configError(err)
		}
		*o.dst = c
	}
	if f.LightShadowAlpha != nil {
		colors.LightShadow = colors.LightShadow.WithAlpha(*f.LightShadowAlpha)
	}
	if f.DarkShadowAlpha != nil {
		colors.DarkShadow = colors.DarkShadow.WithAlpha(*f.DarkShadowAlpha)
	}

	device := PhoneDevice
	if f.Screen != nil {
		device = CalculateDevice(f.Screen.Width, f.Screen.Height)
	}
	return &ThemeData{Colors: colors, Device: device}, nil
}

// Marshal encodes t as a theme file that Parse reads back to the same
// theme.
func Marshal(t *ThemeData) ([]byte, error) {
	light, dark := t.Colors.LightShadow.Alpha(), t.Colors.DarkShadow.Alpha()
	f := File{
		Version:          "1.0.0",
		Dark:             t.Colors.IsDark,
		Accent:           t.Colors.Accent.Hex(),
		Background:       t.Colors.Background.Hex(),
		LightShadow:      t.Colors.LightShadow.Hex(),
		DarkShadow:       t.Colors.DarkShadow.Hex(),
		LightShadowAlpha: &light,
		DarkShadowAlpha:  &dark,
		Screen:           &Screen{Width: t.Device.ScreenWidth, Height: t.Device.ScreenHeight},
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return nil, &errors.NeoError{Op: "theme.Marshal", Kind: errors.KindIO, Err: err}
	}
	return data, nil
}

func configError(err error) *errors.NeoError {
	return &errors.NeoError{Op: "theme.Parse", Kind: errors.KindConfig, Err: err}
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !stderrors.As(err, &ves) || len(ves) == 0 {
		return err
	}
	fe := ves[0]
	field := strings.ToLower(fe.StructNamespace())
	if fe.Param() != "" {
		return fmt.Errorf("%s failed validation for tag '%s=%s'", field, fe.Tag(), fe.Param())
	}
	return fmt.Errorf("%s failed validation for tag '%s'", field, fe.Tag())
}
