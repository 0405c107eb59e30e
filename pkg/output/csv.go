package output

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
)

// CSVFormatter writes the reindexed points in long format:
// source,property,step,value. Reports without points contribute no rows.
type CSVFormatter struct {
	opts FormatOptions
}

// NewCSVFormatter creates a new CSV formatter with the given options.
func NewCSVFormatter(opts FormatOptions) *CSVFormatter {
	return &CSVFormatter{opts: opts}
}

// Name returns the format name.
func (f *CSVFormatter) Name() string {
	return "csv"
}

// Format renders the points of every report as CSV.
func (f *CSVFormatter) Format(ctx context.Context, reports []*Report, w io.Writer) error {
	cw := csv.NewWriter(w)
	if !f.opts.Quiet {
		if err := cw.Write([]string{"source", "property", "step", "value"}); err != nil {
			return err
		}
	}

	for _, report := range reports {
		for _, s := range report.Series {
			for _, p := range s.Points {
				record := []string{
					report.Source,
					string(s.Property),
					strconv.Itoa(p.X),
					strconv.FormatFloat(p.Y, 'g', -1, 64),
				}
				if err := cw.Write(record); err != nil {
					return err
				}
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
