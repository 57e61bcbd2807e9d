package cmd

import (
	"fmt"
	"io"

	"github.com/cgsoftware/neoui/pkg/errors"
	"github.com/cgsoftware/neoui/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "theme",
		Short: "Validate and show a theme file",
		Long: `Load a theme file, validate it and print the resolved palette and
device scaling.

Flags:
  --yaml    Print the fully resolved theme as a theme file instead`,
		Usage: "neoui theme <file> [--yaml]",
		Run:   runTheme,
	})
}

func runTheme(args []string, out io.Writer) error {
	var path string
	asYAML := false
	for _, arg := range args {
		switch arg {
		case "--yaml":
			asYAML = true
		default:
			if path != "" {
				return fmt.Errorf("unexpected argument %q", arg)
			}
			path = arg
		}
	}
	if path == "" {
		return fmt.Errorf("theme file is required\n\nUsage: neoui theme <file> [--yaml]")
	}

	td, err := theme.LoadFile(path)
	if err != nil {
		return err
	}
	log.Debug().Str("path", path).Bool("dark", td.Colors.IsDark).Msg("theme loaded")

	if asYAML {
		data, err := theme.Marshal(td)
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			return errors.New("cli.theme", errors.KindIO, err)
		}
		return nil
	}

	c := td.Colors
	palette := "light"
	if c.IsDark {
		palette = "dark"
	}
	fmt.Fprintf(out, "Theme: %s\n", path)
	fmt.Fprintf(out, "  palette:      %s\n", palette)
	fmt.Fprintf(out, "  accent:       %s\n", c.Accent.Hex())
	fmt.Fprintf(out, "  background:   %s\n", c.Background.Hex())
	fmt.Fprintf(out, "  light shadow: %s @ %.2f\n", c.LightShadow.Hex(), c.LightShadow.Alpha())
	fmt.Fprintf(out, "  dark shadow:  %s @ %.2f\n", c.DarkShadow.Hex(), c.DarkShadow.Alpha())
	fmt.Fprintf(out, "Device: %s %dx%d, scale %.1f\n",
		td.Device.Type, td.Device.ScreenWidth, td.Device.ScreenHeight, td.Device.ScaleFactor)
	return nil
}
