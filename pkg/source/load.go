package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ccollicutt/velplot/pkg/config"
	"github.com/ccollicutt/velplot/pkg/parser"
	"github.com/ccollicutt/velplot/pkg/property"
	"github.com/ccollicutt/velplot/pkg/series"
)

// Request describes what to load from a source file.
type Request struct {
	Path       string
	Properties property.Set

	// Interval is the sampling interval in steps. Zero means not supplied.
	Interval int
}

// Loader loads source files into series collections.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader. A nil logger discards log output.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{logger: logger}
}

// Load reads req.Path according to format.
func (l *Loader) Load(ctx context.Context, format Format, req Request) (*series.Collection, error) {
	switch f := format.(type) {
	case RawText:
		return l.loadRaw(ctx, req)
	case StructuredArchive:
		return nil, fmt.Errorf("%w: %s format (%s)", ErrNotImplemented, f.Name(), req.Path)
	default:
		return nil, fmt.Errorf("%w: unsupported format %T", config.ErrInvalid, format)
	}
}

func (l *Loader) loadRaw(ctx context.Context, req Request) (*series.Collection, error) {
	// The interval is checked before the file is opened.
	if err := config.ValidateInterval(req.Interval); err != nil {
		return nil, err
	}

	lines, err := parser.ReadLines(ctx, req.Path)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("read log", "path", req.Path, "lines", len(lines))

	samples, err := parser.Parse(lines, req.Properties)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", req.Path, err)
	}
	for _, n := range samples.Properties {
		l.logger.Debug("extracted property", "property", n, "samples", samples.Count(n))
	}

	return series.Build(req.Interval, samples.Properties, samples.Values)
}
