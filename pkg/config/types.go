// Package config provides configuration loading and validation for velplot.
package config

import "github.com/ccollicutt/velplot/pkg/property"

// Config is the root configuration structure loaded from YAML or TOML.
type Config struct {
	// OutputFrequency is the number of simulation steps between logged samples.
	// Zero means unset; raw text sources then need it from the command line.
	OutputFrequency int `yaml:"output_frequency,omitempty" toml:"output_frequency"`

	// Properties selects what to extract when no property flags are given.
	Properties []string `yaml:"properties,omitempty" toml:"properties"`

	// Labels overrides the y-axis label of a property.
	Labels map[string]string `yaml:"labels,omitempty" toml:"labels"`

	Plot PlotConfig `yaml:"plot" toml:"plot"`
}

// Layout controls how several properties are arranged in output images.
type Layout string

const (
	// LayoutStacked draws every property in one figure, one panel per row.
	LayoutStacked Layout = "stacked"
	// LayoutSeparate writes one image per property.
	LayoutSeparate Layout = "separate"
)

// PlotConfig holds the presentation settings for rendered images.
type PlotConfig struct {
	// Destination is the image path used when none is given on the command line.
	Destination string `yaml:"destination" toml:"destination"`

	Layout Layout `yaml:"layout" toml:"layout"`

	// DPI is the raster resolution.
	DPI int `yaml:"dpi" toml:"dpi"`

	// Width and Height are the figure size in inches.
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`

	// LineWidth is the curve width in points.
	LineWidth float64 `yaml:"line_width" toml:"line_width"`

	// TickFormat is a printf verb applied to y-axis tick labels.
	TickFormat string `yaml:"tick_format" toml:"tick_format"`

	XLabel string `yaml:"x_label" toml:"x_label"`

	Grid bool `yaml:"grid" toml:"grid"`
}

// Label returns the configured label for n, falling back to the vocabulary default.
func (c *Config) Label(n property.Name) string {
	if l, ok := c.Labels[string(n)]; ok && l != "" {
		return l
	}
	return n.DefaultLabel()
}

// PropertySet returns the configured properties as a property.Set.
func (c *Config) PropertySet() (property.Set, error) {
	return property.ParseSet(c.Properties)
}
