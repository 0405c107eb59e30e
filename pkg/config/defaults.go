package config

import (
	"os"
	"strconv"
	"strings"
)

// Default values for configuration.
const (
	DefaultDestination = "outputs.png"
	DefaultLayout      = LayoutStacked
	DefaultDPI         = 300
	DefaultWidth       = 6.4
	DefaultHeight      = 4.8
	DefaultLineWidth   = 0.5
	DefaultTickFormat  = "%.1f"
	DefaultXLabel      = "Iteration"
)

// Environment variable names.
const (
	EnvDPI    = "VELPLOT_DPI"
	EnvLayout = "VELPLOT_LAYOUT"
)

// SupportedImageExtensions lists the raster encodings velplot can write.
var SupportedImageExtensions = []string{".png", ".jpg", ".jpeg", ".tif", ".tiff"}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Labels: map[string]string{},
		Plot: PlotConfig{
			Destination: DefaultDestination,
			Layout:      DefaultLayout,
			DPI:         DefaultDPI,
			Width:       DefaultWidth,
			Height:      DefaultHeight,
			LineWidth:   DefaultLineWidth,
			TickFormat:  DefaultTickFormat,
			XLabel:      DefaultXLabel,
			Grid:        true,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
// Malformed values are left for Validate to reject.
func (c *Config) applyEnvironmentOverrides() {
	if v := strings.TrimSpace(os.Getenv(EnvDPI)); v != "" {
		dpi, err := strconv.Atoi(v)
		if err != nil {
			dpi = -1
		}
		c.Plot.DPI = dpi
	}
	if v := strings.TrimSpace(os.Getenv(EnvLayout)); v != "" {
		c.Plot.Layout = Layout(v)
	}
}
