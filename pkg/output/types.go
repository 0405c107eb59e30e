// Package output provides formatting for series summaries.
package output

import (
	"github.com/ccollicutt/velplot/pkg/property"
	"github.com/ccollicutt/velplot/pkg/series"
	"github.com/ccollicutt/velplot/pkg/stats"
)

// Report summarizes the series loaded from one source file.
type Report struct {
	Source   string         `json:"source"`
	Format   string         `json:"format"`
	Interval int            `json:"interval"`
	Series   []SeriesReport `json:"series"`
}

// SeriesReport is the summary of one property, optionally with its points.
type SeriesReport struct {
	stats.Summary
	Label  string         `json:"label"`
	Points []series.Point `json:"points,omitempty"`
}

// NewReport summarizes every series of c. Points are attached when withPoints is set.
func NewReport(source, format string, c *series.Collection, label func(property.Name) string, withPoints bool) *Report {
	if label == nil {
		label = property.Name.DefaultLabel
	}

	report := &Report{
		Source:   source,
		Format:   format,
		Interval: c.Interval(),
		Series:   make([]SeriesReport, 0, c.Len()),
	}
	c.Each(func(s *series.Series) {
		sr := SeriesReport{
			Summary: stats.Summarize(s),
			Label:   label(s.Property),
		}
		if withPoints {
			sr.Points = s.Points()
		}
		report.Series = append(report.Series, sr)
	})
	return report
}

// Samples returns the total number of samples across all series.
func (r *Report) Samples() int {
	n := 0
	for _, s := range r.Series {
		n += s.Count
	}
	return n
}
