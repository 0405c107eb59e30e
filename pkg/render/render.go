// Package render draws series collections as raster images with gonum/plot.
package render

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/ccollicutt/velplot/pkg/config"
	"github.com/ccollicutt/velplot/pkg/property"
	"github.com/ccollicutt/velplot/pkg/series"
)

// ErrNoData is returned when every series in a collection is empty.
var ErrNoData = errors.New("no data to plot")

var lineColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// Options controls how images are drawn.
type Options struct {
	Layout     config.Layout
	DPI        int
	Width      vg.Length
	Height     vg.Length
	LineWidth  vg.Length
	TickFormat string
	XLabel     string
	Grid       bool

	// Label returns the y-axis label of a property.
	Label func(property.Name) string
}

// OptionsFromConfig converts validated plot settings into Options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Layout:     cfg.Plot.Layout,
		DPI:        cfg.Plot.DPI,
		Width:      vg.Length(cfg.Plot.Width) * vg.Inch,
		Height:     vg.Length(cfg.Plot.Height) * vg.Inch,
		LineWidth:  vg.Points(cfg.Plot.LineWidth),
		TickFormat: cfg.Plot.TickFormat,
		XLabel:     cfg.Plot.XLabel,
		Grid:       cfg.Plot.Grid,
		Label:      cfg.Label,
	}
}

// Renderer writes plots of series collections to image files.
type Renderer struct {
	opts   Options
	logger *slog.Logger
}

// New creates a Renderer. A nil logger discards log output.
func New(opts Options, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Label == nil {
		opts.Label = property.Name.DefaultLabel
	}
	if opts.TickFormat == "" {
		opts.TickFormat = config.DefaultTickFormat
	}
	return &Renderer{opts: opts, logger: logger}
}

// Render draws c and writes it under dst. It returns the paths written.
//
// The stacked layout writes one image with a panel per property. The
// separate layout writes one image per property, named <stem>_<property><ext>.
// Empty series are skipped.
func (r *Renderer) Render(ctx context.Context, c *series.Collection, dst string) ([]string, error) {
	if err := config.ValidateImagePath(dst); err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalid, err)
	}

	var drawn []*series.Series
	c.Each(func(s *series.Series) {
		if s.Len() == 0 {
			r.logger.Warn("skipping property with no samples", "property", s.Property)
			return
		}
		drawn = append(drawn, s)
	})
	if len(drawn) == 0 {
		return nil, ErrNoData
	}

	switch r.opts.Layout {
	case config.LayoutStacked, "":
		if err := r.renderStacked(drawn, dst); err != nil {
			return nil, err
		}
		return []string{dst}, nil
	case config.LayoutSeparate:
		return r.renderSeparate(ctx, drawn, dst)
	default:
		return nil, fmt.Errorf("%w: unknown layout %q", config.ErrInvalid, r.opts.Layout)
	}
}

func (r *Renderer) renderStacked(drawn []*series.Series, dst string) error {
	maxStep := 0
	rows := make([][]*plot.Plot, len(drawn))
	for i, s := range drawn {
		p, err := r.newPlot(s)
		if err != nil {
			return err
		}
		if last := s.X[len(s.X)-1]; last > maxStep {
			maxStep = last
		}
		rows[i] = []*plot.Plot{p}
	}

	// Panels share the x axis; only the bottom one is labelled.
	for i, row := range rows {
		if maxStep > 0 {
			row[0].X.Min = 0
			row[0].X.Max = float64(maxStep)
		}
		if i < len(rows)-1 {
			row[0].X.Label.Text = ""
		}
	}

	img := vgimg.NewWith(vgimg.UseWH(r.opts.Width, r.opts.Height), vgimg.UseDPI(r.opts.DPI))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      len(rows),
		Cols:      1,
		PadTop:    vg.Points(4),
		PadBottom: vg.Points(4),
		PadLeft:   vg.Points(4),
		PadRight:  vg.Points(8),
		PadY:      vg.Points(6),
	}
	canvases := plot.Align(rows, tiles, dc)
	for i, row := range rows {
		row[0].Draw(canvases[i][0])
	}

	r.logger.Debug("rendered stacked figure", "path", dst, "panels", len(rows))
	return writeImage(img, dst)
}

func (r *Renderer) renderSeparate(ctx context.Context, drawn []*series.Series, dst string) ([]string, error) {
	written := make([]string, 0, len(drawn))
	for _, s := range drawn {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		p, err := r.newPlot(s)
		if err != nil {
			return written, err
		}

		path := SeparatePath(dst, s.Property)
		img := vgimg.NewWith(vgimg.UseWH(r.opts.Width, r.opts.Height), vgimg.UseDPI(r.opts.DPI))
		p.Draw(draw.New(img))
		if err := writeImage(img, path); err != nil {
			return written, err
		}

		r.logger.Debug("rendered figure", "path", path, "property", s.Property)
		written = append(written, path)
	}
	return written, nil
}

func (r *Renderer) newPlot(s *series.Series) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = r.opts.XLabel
	p.Y.Label.Text = r.opts.Label(s.Property)
	p.Y.Tick.Marker = DecimalTicks{Format: r.opts.TickFormat}

	if r.opts.Grid {
		p.Add(plotter.NewGrid())
	}

	line, err := plotter.NewLine(s)
	if err != nil {
		return nil, fmt.Errorf("plotting %s: %w", s.Property, err)
	}
	line.LineStyle.Width = r.opts.LineWidth
	line.LineStyle.Color = lineColor
	p.Add(line)

	return p, nil
}

// SeparatePath returns the image path of one property in the separate layout.
func SeparatePath(dst string, n property.Name) string {
	ext := filepath.Ext(dst)
	return strings.TrimSuffix(dst, ext) + "_" + string(n) + ext
}

func writeImage(img *vgimg.Canvas, path string) error {
	var enc io.WriterTo
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		enc = vgimg.PngCanvas{Canvas: img}
	case ".jpg", ".jpeg":
		enc = vgimg.JpegCanvas{Canvas: img}
	case ".tif", ".tiff":
		enc = vgimg.TiffCanvas{Canvas: img}
	default:
		return fmt.Errorf("%w: unsupported image extension %q", config.ErrInvalid, filepath.Ext(path))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path) // #nosec G304 -- user-provided output path is expected
	if err != nil {
		return fmt.Errorf("creating image %s: %w", path, err)
	}
	if _, err := enc.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing image %s: %w", path, err)
	}
	return f.Close()
}
