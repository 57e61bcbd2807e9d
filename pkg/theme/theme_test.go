package theme

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cgsoftware/neoui/pkg/errors"
	"github.com/cgsoftware/neoui/pkg/graphics"
)

func TestPalettes(t *testing.T) {
	light := LightColors()
	if light.Background.Hex() != "#e0e5ec" || light.IsDark {
		t.Errorf("light palette = %+v", light)
	}
	if a := light.DarkShadow.Alpha(); a != 0.6 {
		t.Errorf("light dark-shadow alpha = %v, want 0.6", a)
	}

	dark := DarkColors()
	if dark.Background.Hex() != "#2d3238" || !dark.IsDark {
		t.Errorf("dark palette = %+v", dark)
	}

	red := graphics.RGB(255, 0, 0)
	if got := New(true, red); got.Accent != red || !got.IsDark {
		t.Errorf("New(true, red) = %+v", got)
	}
	if light.Accent != DefaultAccent || dark.Accent != DefaultAccent {
		t.Error("palettes should share the default accent")
	}
}

func TestCalculateDevice(t *testing.T) {
	tests := []struct {
		width int
		typ   DeviceType
		scale float64
	}{
		{360, Phone, 0.9},
		{399, Phone, 0.9},
		{400, Phone, 1.0},
		{599, Phone, 1.0},
		{600, Tablet, 1.4},
		{799, Tablet, 1.4},
		{800, Tablet, 1.6},
		{999, Tablet, 1.6},
		{1000, Tablet, 1.8},
		{1366, Tablet, 1.8},
	}
	for _, tt := range tests {
		got := CalculateDevice(tt.width, 800)
		if got.Type != tt.typ || got.ScaleFactor != tt.scale {
			t.Errorf("CalculateDevice(%d) = %v x%v, want %v x%v", tt.width, got.Type, got.ScaleFactor, tt.typ, tt.scale)
		}
	}
}

func TestDefaults(t *testing.T) {
	phone := DefaultsFor(CalculateDevice(500, 900))
	tablet := DefaultsFor(CalculateDevice(700, 1000))

	tests := []struct {
		name          string
		phone, tablet float64
	}{
		{"knob small", phone.KnobSize(Small), tablet.KnobSize(Small)},
		{"knob medium", phone.KnobSize(Medium), tablet.KnobSize(Medium)},
		{"knob large", phone.KnobSize(Large), tablet.KnobSize(Large)},
		{"fader", phone.FaderHeight(Medium), tablet.FaderHeight(Medium)},
		{"timeline", phone.TimelineHeight(Large), tablet.TimelineHeight(Large)},
		{"button", phone.ButtonMinHeight(Small), tablet.ButtonMinHeight(Small)},
		{"led width", phone.LedWidth(), tablet.LedWidth()},
		{"spacing md", phone.SpacingMD(), tablet.SpacingMD()},
	}
	want := []float64{64, 96, 140, 280, 64, 48, 1, 16}
	for i, tt := range tests {
		if tt.phone != want[i] {
			t.Errorf("%s = %v, want %v", tt.name, tt.phone, want[i])
		}
		if diff := tt.tablet - want[i]*1.4; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%s on tablet = %v, want %v", tt.name, tt.tablet, want[i]*1.4)
		}
	}

	if got := phone.SwitchRadius(Medium); got != 17 {
		t.Errorf("switch radius = %v, want 17", got)
	}
	if (Defaults{}).KnobSize(Medium) != 96 {
		t.Error("zero device should not scale")
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
version: 1.2.0
dark: true
accent: "#ff3d00"
dark_shadow_alpha: 0.5
screen:
  width: 820
  height: 1180
`)
	td, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !td.Colors.IsDark || td.Colors.Background != DarkColors().Background {
		t.Errorf("colors = %+v", td.Colors)
	}
	if td.Colors.Accent != graphics.RGB(0xFF, 0x3D, 0x00) {
		t.Errorf("accent = %s", td.Colors.Accent.Hex())
	}
	if a := td.Colors.DarkShadow.Alpha(); a < 0.49 || a > 0.51 {
		t.Errorf("dark shadow alpha = %v", a)
	}
	if td.Device.Type != Tablet || td.Device.ScaleFactor != 1.6 {
		t.Errorf("device = %+v", td.Device)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"missing version", "dark: true\n", "required"},
		{"bad version", "version: banana\n", "not a semantic version"},
		{"future major", "version: 2.0.0\n", "unsupported theme version v2"},
		{"bad color", "version: 1.0.0\naccent: teal\n", "hexcolor"},
		{"alpha range", "version: 1.0.0\nlight_shadow_alpha: 1.5\n", "lte=1"},
		{"bad screen", "version: 1.0.0\nscreen: {width: 0, height: 10}\n", "gt=0"},
		{"bad yaml", "version: [1\n", "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			var ne *errors.NeoError
			if !stderrors.As(err, &ne) || ne.Kind != errors.KindConfig {
				t.Fatalf("error %v should be a config NeoError", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "studio.yaml")
	if err := os.WriteFile(path, []byte("version: v1.0.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	td, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if td.Colors != LightColors() || td.Device != PhoneDevice {
		t.Errorf("minimal file should resolve to the light phone theme, got %+v", td)
	}

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	var ne *errors.NeoError
	if !stderrors.As(err, &ne) || ne.Kind != errors.KindIO || ne.Op != "theme.LoadFile" {
		t.Errorf("missing file error = %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("version: 3.0.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadFile(bad)
	if !stderrors.As(err, &ne) || ne.Path != bad || ne.Kind != errors.KindConfig {
		t.Errorf("invalid file error = %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	for _, td := range []*ThemeData{DefaultLightTheme(), DefaultDarkTheme().WithAccent(graphics.RGB(0x76, 0xFF, 0x03))} {
		data, err := Marshal(td)
		if err != nil {
			t.Fatal(err)
		}
		back, err := Parse(data)
		if err != nil {
			t.Fatalf("Parse(Marshal()) = %v\n%s", err, data)
		}
		if back.Colors != td.Colors || back.Device != td.Device {
			t.Errorf("round trip = %+v, want %+v", back, td)
		}
	}
}

func TestCopyWith(t *testing.T) {
	base := DefaultLightTheme()
	device := CalculateDevice(1024, 768)
	got := base.CopyWith(nil, &device)
	if got.Colors != base.Colors || got.Device != device {
		t.Errorf("CopyWith = %+v", got)
	}
	if base.Device != PhoneDevice {
		t.Error("CopyWith must not modify the receiver")
	}
}
