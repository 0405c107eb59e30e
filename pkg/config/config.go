package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/velplot/pkg/property"
)

// ErrInvalid marks configuration errors: a missing or invalid sampling
// interval, an unsupported format, or a bad config field.
var ErrInvalid = errors.New("invalid configuration")

// Load reads and validates a configuration file.
func Load(ctx context.Context, path string) (*Config, error) {
	cfg, err := Read(ctx, path)
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Read decodes a configuration file over the defaults and applies
// environment overrides. The result is not validated.
// Files ending in .toml are decoded as TOML, everything else as YAML.
func Read(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	return cfg, nil
}

// Validate checks a configuration for errors.
// Every returned error wraps ErrInvalid.
func Validate(cfg *Config) error {
	if cfg.OutputFrequency < 0 {
		return fmt.Errorf("%w: output_frequency: must be a positive integer, got %d", ErrInvalid, cfg.OutputFrequency)
	}

	if _, err := cfg.PropertySet(); err != nil {
		return fmt.Errorf("%w: properties: %w", ErrInvalid, err)
	}

	for key := range cfg.Labels {
		if _, err := property.Parse(key); err != nil {
			return fmt.Errorf("%w: labels: %w", ErrInvalid, err)
		}
	}

	if err := validatePlot(&cfg.Plot); err != nil {
		return fmt.Errorf("%w: plot.%w", ErrInvalid, err)
	}

	return nil
}

func validatePlot(p *PlotConfig) error {
	switch p.Layout {
	case LayoutStacked, LayoutSeparate:
	case "":
		p.Layout = DefaultLayout
	default:
		return fmt.Errorf("layout: invalid value %q (must be stacked or separate)", p.Layout)
	}

	if p.DPI <= 0 {
		return fmt.Errorf("dpi: must be positive, got %d", p.DPI)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("width/height: must be positive, got %gx%g", p.Width, p.Height)
	}
	if p.LineWidth <= 0 {
		return fmt.Errorf("line_width: must be positive, got %g", p.LineWidth)
	}

	if p.TickFormat == "" {
		p.TickFormat = DefaultTickFormat
	}
	if err := ValidateTickFormat(p.TickFormat); err != nil {
		return fmt.Errorf("tick_format: %w", err)
	}

	if p.Destination == "" {
		p.Destination = DefaultDestination
	}
	if err := ValidateImagePath(p.Destination); err != nil {
		return fmt.Errorf("destination: %w", err)
	}

	return nil
}

// ValidateTickFormat checks that format formats exactly one float64.
func ValidateTickFormat(format string) error {
	out := fmt.Sprintf(format, 1.5)
	if strings.Contains(out, "%!") {
		return fmt.Errorf("%q does not format a single float", format)
	}
	return nil
}

// ValidateImagePath checks that path has a supported image extension.
func ValidateImagePath(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(SupportedImageExtensions, ext) {
		return fmt.Errorf("unsupported image extension %q (use %s)", ext, strings.Join(SupportedImageExtensions, ", "))
	}
	return nil
}

// ValidateInterval checks a sampling interval. Zero means it was never
// supplied, which is as fatal as a negative value.
func ValidateInterval(interval int) error {
	if interval == 0 {
		return fmt.Errorf("%w: output frequency is required to parse raw text data", ErrInvalid)
	}
	if interval < 0 {
		return fmt.Errorf("%w: output frequency must be a positive integer, got %d", ErrInvalid, interval)
	}
	return nil
}

// ParseInterval converts a command-line interval into a validated integer.
// An empty string means the interval was not supplied.
func ParseInterval(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ValidateInterval(0)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: output frequency %q is not an integer", ErrInvalid, s)
	}
	if err := ValidateInterval(n); err != nil {
		return 0, err
	}
	return n, nil
}
