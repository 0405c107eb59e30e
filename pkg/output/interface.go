package output

import (
	"context"
	"io"
)

// Formatter renders summary reports in a specific format.
type Formatter interface {
	// Format renders the reports to the given writer.
	Format(ctx context.Context, reports []*Report, w io.Writer) error

	// Name returns the format name (text, json, csv).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Quiet enables one line per property.
	Quiet bool
}

// NewFormatter returns the formatter registered under name.
func NewFormatter(name string, opts FormatOptions) (Formatter, bool) {
	switch name {
	case "text":
		return NewTextFormatter(opts), true
	case "json":
		return NewJSONFormatter(opts), true
	case "csv":
		return NewCSVFormatter(opts), true
	default:
		return nil, false
	}
}
