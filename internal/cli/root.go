// Package cli provides the command-line interface for velplot.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/velplot/internal/cli/commands"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 2
)

// legacyFlags maps the single-dash property flags of the original plotting
// script to their cobra spelling.
var legacyFlags = map[string]string{
	"-pe":     "--pe",
	"-ke":     "--ke",
	"-etotal": "--etotal",
	"-temp":   "--temp",
}

// Execute runs the root command and returns the exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(normalizeArgs(args))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitOK
}

// normalizeArgs rewrites legacy single-dash property flags. Arguments after
// a "--" terminator are left alone.
func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	terminated := false
	for i, arg := range args {
		if arg == "--" {
			terminated = true
		}
		if long, ok := legacyFlags[arg]; ok && !terminated {
			arg = long
		}
		out[i] = arg
	}
	return out
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "velplot",
		Short: "Plot molecular-dynamics simulation outputs",
		Long: `velplot renders time series of simulation observables.

It reads the raw text log written by a simulation run, one "key: value"
observation per line, and plots:
  - Potential energy (--pe)
  - Kinetic energy (--ke)
  - Total energy (--etotal)
  - Temperature (--temp)

Each logged sample is placed at step i * output-frequency.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(commands.NewPlotCommand())
	rootCmd.AddCommand(commands.NewSummaryCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
