package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/velplot/pkg/config"
	"github.com/ccollicutt/velplot/pkg/property"
	"github.com/ccollicutt/velplot/pkg/source"
)

// propertyFlags selects properties on the command line.
type propertyFlags struct {
	PotentialEnergy bool
	KineticEnergy   bool
	TotalEnergy     bool
	Temperature     bool
}

func (p *propertyFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&p.PotentialEnergy, "pe", false, "Plot potential energy")
	cmd.Flags().BoolVar(&p.KineticEnergy, "ke", false, "Plot kinetic energy")
	cmd.Flags().BoolVar(&p.TotalEnergy, "etotal", false, "Plot total energy")
	cmd.Flags().BoolVar(&p.Temperature, "temp", false, "Plot instantaneous temperature")
}

func (p *propertyFlags) names() []property.Name {
	var names []property.Name
	if p.PotentialEnergy {
		names = append(names, property.PotentialEnergy)
	}
	if p.KineticEnergy {
		names = append(names, property.KineticEnergy)
	}
	if p.TotalEnergy {
		names = append(names, property.TotalEnergy)
	}
	if p.Temperature {
		names = append(names, property.Temperature)
	}
	return names
}

// resolveProperties picks properties from flags, then config, then the
// whole vocabulary.
func resolveProperties(flags *propertyFlags, cfg *config.Config) (property.Set, error) {
	if names := flags.names(); len(names) > 0 {
		return property.NewSet(names...)
	}

	set, err := cfg.PropertySet()
	if err != nil {
		return property.Set{}, fmt.Errorf("%w: %w", config.ErrInvalid, err)
	}
	if !set.Empty() {
		return set, nil
	}
	return property.All(), nil
}

// resolveInterval prefers the command-line value over the config file.
// Zero means neither supplied one; raw text loading rejects that.
func resolveInterval(raw string, cfg *config.Config) (int, error) {
	if raw != "" {
		return config.ParseInterval(raw)
	}
	return cfg.OutputFrequency, nil
}

// resolveFormat uses an explicit --format when given, else the file suffix.
func resolveFormat(name, path string) (source.Format, error) {
	if name != "" {
		return source.ParseFormat(name)
	}
	return source.Select(path), nil
}

// loadConfig reads the config file, or the defaults when path is empty,
// applies command-line overrides and validates the result once.
func loadConfig(ctx context.Context, path string, overrides ...func(*config.Config)) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = config.Read(ctx, path); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	for _, override := range overrides {
		override(cfg)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// newLogger logs to stderr, at debug level when --verbose is set.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, err := cmd.Flags().GetBool("verbose"); err == nil && verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
