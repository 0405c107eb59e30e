package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/velplot/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a velplot configuration file without reading any simulation output.

Checks:
  - YAML or TOML syntax
  - Property names in properties and labels
  - Output frequency, layout, DPI, figure size and line width
  - Tick label format and destination image type`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(commandContext(cmd), configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	if cfg.OutputFrequency > 0 {
		fmt.Fprintf(out, "  Output frequency: %d steps\n", cfg.OutputFrequency)
	} else {
		fmt.Fprintf(out, "  Output frequency: not set (pass --output-frequency for raw logs)\n")
	}

	props, err := resolveProperties(&propertyFlags{}, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  Destination:      %s (%s, %d dpi, %gx%g in)\n",
		cfg.Plot.Destination, cfg.Plot.Layout, cfg.Plot.DPI, cfg.Plot.Width, cfg.Plot.Height)

	fmt.Fprintf(out, "\nProperties:\n")
	for i, n := range props.Names() {
		fmt.Fprintf(out, "  %d. %s: %s\n", i+1, n, cfg.Label(n))
	}

	return nil
}
