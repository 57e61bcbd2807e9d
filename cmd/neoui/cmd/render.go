package cmd

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cgsoftware/neoui/cmd/neoui/internal/config"
	"github.com/cgsoftware/neoui/cmd/neoui/internal/preview"
	"github.com/cgsoftware/neoui/pkg/errors"
	"github.com/cgsoftware/neoui/pkg/graphics"
	"github.com/cgsoftware/neoui/pkg/theme"
	"github.com/cgsoftware/neoui/pkg/uistate"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render one widget frame to PNG",
		Long: `Render a single frame of a widget to a PNG file.

Widgets: button, switch, panel, knob, fader, timeline

Defaults for --theme, --dark and the output directory are read from a
neoui.yaml file in the current directory or a parent, up to the Go
module root.

The widget's LED border is driven from its UI state and advanced to the
requested time in 16ms frames, so the same flags always give the same
image.

Flags:
  --state STATE    idle, active, connecting, alert or disabled (default: idle)
  --at MS          Animation time of the frame in milliseconds (default: 0)
  --size WxH       Widget size in pixels (default: the widget's natural size)
  --value V        Knob, fader or timeline value in [0, 1]
  --checked        Render a switch in the on position
  --segmented      Draw the button border as segments
  --dark           Use the dark palette
  --accent HEX     Override the accent color
  --theme FILE     Load a theme file
  -o FILE          Output path, or - for stdout (default: <widget>.png in the
                   project output directory)`,
		Usage: "neoui render <widget> [--state S] [--dark] [--at MS] [--size WxH] [--theme FILE] [-o out.png]",
		Run:   runRender,
	})
}

type renderOptions struct {
	widget    string
	state     uistate.State
	at        time.Duration
	size      graphics.Size
	value     float64
	checked   bool
	segmented bool
	dark      bool
	accent    string
	themePath string
	output    string
}

func parseRenderArgs(args []string) (renderOptions, error) {
	opts := renderOptions{state: uistate.Idle}
	// value returns the argument following a flag.
	value := func(i *int) (string, error) {
		if *i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", args[*i])
		}
		*i++
		return args[*i], nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		var err error
		switch arg {
		case "--state":
			var s string
			if s, err = value(&i); err == nil {
				opts.state, err = uistate.Parse(strings.ToLower(s))
			}
		case "--at":
			var s string
			if s, err = value(&i); err == nil {
				var ms int
				ms, err = strconv.Atoi(s)
				if err == nil && ms < 0 {
					err = fmt.Errorf("--at must not be negative (got %d)", ms)
				}
				opts.at = time.Duration(ms) * time.Millisecond
			}
		case "--size":
			var s string
			if s, err = value(&i); err == nil {
				opts.size, err = parseSize(s)
			}
		case "--value":
			var s string
			if s, err = value(&i); err == nil {
				opts.value, err = strconv.ParseFloat(s, 64)
			}
		case "--accent":
			opts.accent, err = value(&i)
		case "--theme":
			opts.themePath, err = value(&i)
		case "-o", "--output":
			opts.output, err = value(&i)
		case "--checked":
			opts.checked = true
		case "--segmented":
			opts.segmented = true
		case "--dark":
			opts.dark = true
		default:
			if strings.HasPrefix(arg, "-") && arg != "-" {
				return opts, fmt.Errorf("unknown flag %q", arg)
			}
			if opts.widget != "" {
				return opts, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.widget = strings.ToLower(arg)
		}
		if err != nil {
			return opts, err
		}
	}

	if opts.widget == "" {
		return opts, fmt.Errorf("widget is required\n\nUsage: neoui render <widget> [flags]")
	}
	return opts, nil
}

// parseSize reads a WxH size such as 240x80.
func parseSize(s string) (graphics.Size, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return graphics.Size{}, fmt.Errorf("invalid size %q (want WxH)", s)
	}
	w, errW := strconv.ParseFloat(ws, 64)
	h, errH := strconv.ParseFloat(hs, 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return graphics.Size{}, fmt.Errorf("invalid size %q (want positive WxH)", s)
	}
	return graphics.Size{Width: w, Height: h}, nil
}

// applyProject fills options left unset on the command line from the
// project file.
func applyProject(opts *renderOptions, project *config.Resolved) {
	if opts.themePath == "" {
		opts.themePath = project.ThemePath
	}
	opts.dark = opts.dark || project.Dark
	if opts.output == "" {
		opts.output = filepath.Join(project.OutDir, opts.widget+".png")
	}
}

// resolveTheme applies the theme flags on top of the defaults.
func resolveTheme(path string, dark bool, accent string) (*theme.ThemeData, error) {
	td := theme.DefaultLightTheme()
	if path != "" {
		loaded, err := theme.LoadFile(path)
		if err != nil {
			return nil, err
		}
		td = loaded
	}
	if dark && !td.Colors.IsDark {
		colors := theme.New(true, td.Colors.Accent)
		td = td.CopyWith(&colors, nil)
	}
	if accent != "" {
		c, err := graphics.ParseHex(accent)
		if err != nil {
			return nil, errors.New("cli.render", errors.KindConfig, err)
		}
		td = td.WithAccent(c)
	}
	return td, nil
}

func runRender(args []string, out io.Writer) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}
	wd, err := os.Getwd()
	if err != nil {
		return errors.New("cli.render", errors.KindIO, err)
	}
	project, err := config.Resolve(wd)
	if err != nil {
		return errors.New("cli.render", errors.KindConfig, err)
	}
	applyProject(&opts, project)

	td, err := resolveTheme(opts.themePath, opts.dark, opts.accent)
	if err != nil {
		return err
	}

	img, err := preview.Render(preview.Options{
		Widget:    opts.widget,
		State:     opts.state,
		At:        opts.at,
		Size:      opts.size,
		Value:     opts.value,
		Checked:   opts.checked,
		Segmented: opts.segmented,
		Theme:     td,
	})
	if err != nil {
		return err
	}

	if opts.output == "-" {
		if err := png.Encode(out, img); err != nil {
			return errors.New("cli.render", errors.KindIO, err)
		}
		return nil
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return &errors.NeoError{Op: "cli.render", Kind: errors.KindIO, Err: err, Path: opts.output}
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return &errors.NeoError{Op: "cli.render", Kind: errors.KindIO, Err: err, Path: opts.output}
	}
	if err := f.Close(); err != nil {
		return &errors.NeoError{Op: "cli.render", Kind: errors.KindIO, Err: err, Path: opts.output}
	}

	b := img.Bounds()
	log.Info().
		Str("widget", opts.widget).
		Str("state", opts.state.String()).
		Dur("at", opts.at).
		Int("width", b.Dx()).
		Int("height", b.Dy()).
		Str("path", opts.output).
		Msg("rendered")
	fmt.Fprintf(out, "Wrote %s (%dx%d)\n", opts.output, b.Dx(), b.Dy())
	return nil
}
