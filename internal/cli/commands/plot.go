package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/velplot/pkg/config"
	"github.com/ccollicutt/velplot/pkg/render"
	"github.com/ccollicutt/velplot/pkg/source"
)

// PlotOptions holds command-line options for the plot command.
type PlotOptions struct {
	OutputFrequency string
	ConfigFile      string
	Format          string
	Layout          string
	DPI             int
	Properties      propertyFlags
}

// NewPlotCommand creates the plot command.
func NewPlotCommand() *cobra.Command {
	opts := &PlotOptions{}

	cmd := &cobra.Command{
		Use:   "plot <src> [dst]",
		Short: "Plot simulation observables",
		Long: `Plot potential, kinetic and total energy or temperature from a simulation output.

Raw text logs (one "key: value" observation per line) need --output-frequency,
the number of steps between logged samples. Files ending in h5 or hdf5 are
recognized as HDF5 archives, which cannot be plotted yet.

With no property flags, the properties listed in the config file are plotted,
or all of them if the config lists none.

Example:
  velplot plot nvt.log nvt.png --output-frequency 50 --temp
  velplot plot run.log.gz --output-frequency 100 -pe -ke -etotal
  velplot plot --layout separate --dpi 150 run.log plots/run.png --output-frequency 10`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.OutputFrequency, "output-frequency", "", "Number of timesteps between outputs (required for raw text)")
	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "Configuration file (YAML or TOML)")
	cmd.Flags().StringVar(&opts.Format, "format", "", "Source format (raw|hdf5), detected from the file name by default")
	cmd.Flags().StringVar(&opts.Layout, "layout", "", "Image layout (stacked|separate)")
	cmd.Flags().IntVar(&opts.DPI, "dpi", 0, "Image resolution")
	opts.Properties.register(cmd)

	return cmd
}

func runPlot(cmd *cobra.Command, args []string, opts *PlotOptions) error {
	ctx := commandContext(cmd)
	logger := newLogger(cmd)
	src := args[0]

	cfg, err := loadConfig(ctx, opts.ConfigFile, func(cfg *config.Config) {
		if opts.Layout != "" {
			cfg.Plot.Layout = config.Layout(opts.Layout)
		}
		if cmd.Flags().Changed("dpi") {
			cfg.Plot.DPI = opts.DPI
		}
	})
	if err != nil {
		return err
	}

	dst := cfg.Plot.Destination
	if len(args) > 1 {
		dst = args[1]
	}
	if err := config.ValidateImagePath(dst); err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalid, err)
	}

	props, err := resolveProperties(&opts.Properties, cfg)
	if err != nil {
		return err
	}
	interval, err := resolveInterval(opts.OutputFrequency, cfg)
	if err != nil {
		return err
	}
	format, err := resolveFormat(opts.Format, src)
	if err != nil {
		return err
	}
	logger.Debug("plotting", "source", src, "format", format.Name(), "properties", props.Names(), "interval", interval)

	collection, err := source.NewLoader(logger).Load(ctx, format, source.Request{
		Path:       src,
		Properties: props,
		Interval:   interval,
	})
	if err != nil {
		return err
	}

	written, err := render.New(render.OptionsFromConfig(cfg), logger).Render(ctx, collection, dst)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	for _, path := range written {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	}
	return nil
}
