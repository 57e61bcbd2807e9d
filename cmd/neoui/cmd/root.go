// Package cmd implements the neoui CLI commands.
//
// A root command dispatches to subcommands registered from init
// functions (render, theme, version).
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/cgsoftware/neoui/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string, out io.Writer) error
}

var rootCmd = struct {
	Long  string
	Usage string
}{
	Long: `neoui renders the neumorphic LED widget kit outside an app.

Use "neoui <command> --help" for more information about a command.`,
	Usage: "neoui [--verbose] <command> [flags]",
}

// Commands registered with the CLI, in registration order.
var (
	commands = make(map[string]*Command)
	ordered  []*Command
)

// log reports progress. It discards everything unless --verbose is set.
var log = zerolog.Nop()

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	ordered = append(ordered, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return execute(os.Args[1:], os.Stdout)
}

func execute(args []string, out io.Writer) error {
	var filtered []string
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filtered) == 0 {
				printHelp(out)
				return nil
			}
			filtered = append(filtered, arg)
		case "-v", "--version":
			if len(filtered) == 0 {
				printVersion(out)
				return nil
			}
			filtered = append(filtered, arg)
		case "--verbose":
			if len(filtered) == 0 {
				setVerbose()
				continue
			}
			filtered = append(filtered, arg)
		default:
			filtered = append(filtered, arg)
		}
	}
	if len(filtered) == 0 {
		printHelp(out)
		return nil
	}

	name := filtered[0]
	cmd, ok := commands[name]
	if !ok {
		printHelp(out)
		return fmt.Errorf("unknown command: %s", name)
	}
	cmdArgs := filtered[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" {
			printCommandHelp(out, cmd)
			return nil
		}
	}
	return cmd.Run(cmdArgs, out)
}

func setVerbose() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	errors.SetHandler(errors.NewLogHandler(nil, true))
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, rootCmd.Long)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	for _, sub := range ordered {
		fmt.Fprintf(out, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	fmt.Fprintln(out, "  -h, --help           Show help for a command")
	fmt.Fprintln(out, "  -v, --version        Show version information")
	fmt.Fprintln(out, "  --verbose            Log progress and errors to stderr")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples:")
	fmt.Fprintln(out, "  neoui render button --state connecting --at 300")
	fmt.Fprintln(out, "  neoui render knob --value 0.7 --dark -o knob.png")
	fmt.Fprintln(out, "  neoui theme studio.yaml")
}

func printCommandHelp(out io.Writer, cmd *Command) {
	fmt.Fprintln(out, cmd.Long)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s\n", cmd.Usage)
}

func printVersion(out io.Writer) {
	fmt.Fprintf(out, "neoui version %s (built %s)\n", Version, BuildTime)
}

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Print the neoui version and build time.",
		Usage: "neoui version",
		Run: func(_ []string, out io.Writer) error {
			printVersion(out)
			return nil
		},
	})
}
