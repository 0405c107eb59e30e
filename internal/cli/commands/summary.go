package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/velplot/pkg/output"
	"github.com/ccollicutt/velplot/pkg/parser"
	"github.com/ccollicutt/velplot/pkg/source"
)

// SummaryOptions holds command-line options for the summary command.
type SummaryOptions struct {
	OutputFrequency string
	ConfigFile      string
	Format          string
	Output          string
	Quiet           bool
	Points          bool
	Properties      propertyFlags
}

// NewSummaryCommand creates the summary command.
func NewSummaryCommand() *cobra.Command {
	opts := &SummaryOptions{}

	cmd := &cobra.Command{
		Use:   "summary <src>...",
		Short: "Summarize simulation observables",
		Long: `Print count, mean, standard deviation, range and drift of each observable.

Sources may be files or glob patterns. The csv output writes every
reindexed point as source,property,step,value.

Example:
  velplot summary nvt.log --output-frequency 50 --temp
  velplot summary 'runs/*.log' --output-frequency 10 -o json
  velplot summary run.log --output-frequency 10 -o csv > run.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.OutputFrequency, "output-frequency", "", "Number of timesteps between outputs (required for raw text)")
	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "Configuration file (YAML or TOML)")
	cmd.Flags().StringVar(&opts.Format, "format", "", "Source format (raw|hdf5), detected from the file name by default")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json|csv)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "One line per property")
	cmd.Flags().BoolVar(&opts.Points, "points", false, "Include every point in json output")
	opts.Properties.register(cmd)

	return cmd
}

func runSummary(cmd *cobra.Command, args []string, opts *SummaryOptions) error {
	ctx := commandContext(cmd)
	logger := newLogger(cmd)

	formatter, ok := output.NewFormatter(opts.Output, output.FormatOptions{Quiet: opts.Quiet})
	if !ok {
		return fmt.Errorf("unknown output format %q (use text, json or csv)", opts.Output)
	}

	cfg, err := loadConfig(ctx, opts.ConfigFile)
	if err != nil {
		return err
	}
	props, err := resolveProperties(&opts.Properties, cfg)
	if err != nil {
		return err
	}
	interval, err := resolveInterval(opts.OutputFrequency, cfg)
	if err != nil {
		return err
	}

	files, err := parser.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding sources: %w", err)
	}

	loader := source.NewLoader(logger)
	withPoints := opts.Points || formatter.Name() == "csv"
	reports := make([]*output.Report, 0, len(files))
	for _, path := range files {
		format, err := resolveFormat(opts.Format, path)
		if err != nil {
			return err
		}
		collection, err := loader.Load(ctx, format, source.Request{
			Path:       path,
			Properties: props,
			Interval:   interval,
		})
		if err != nil {
			return err
		}
		reports = append(reports, output.NewReport(path, format.Name(), collection, cfg.Label, withPoints))
	}

	if err := formatter.Format(ctx, reports, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return nil
}
