package output

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle  = lipgloss.NewStyle().Bold(true)
	propertyStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	mutedStyle    = lipgloss.NewStyle().Faint(true)
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the reports as text.
func (f *TextFormatter) Format(ctx context.Context, reports []*Report, w io.Writer) error {
	for i, report := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if f.opts.Quiet {
			f.formatQuiet(report, w)
			continue
		}
		f.formatFull(report, w)
	}
	return nil
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) {
	for _, s := range report.Series {
		fmt.Fprintf(w, "%s\t%s\tn=%d\tmean=%.4f\tstddev=%.4f\n",
			report.Source, s.Property, s.Count, s.Mean, s.StdDev)
	}
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) {
	fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("=== %s ===", report.Source)))
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("format: %s, output frequency: %d steps", report.Format, report.Interval)))
	fmt.Fprintln(w)

	for _, s := range report.Series {
		fmt.Fprintf(w, "%s %s\n", propertyStyle.Render("["+string(s.Property)+"]"), s.Label)
		if s.Count == 0 {
			fmt.Fprintln(w, "  No samples")
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintf(w, "  Samples: %d (steps %d..%d)\n", s.Count, s.FirstStep, s.LastStep)
		fmt.Fprintf(w, "  Mean:    %.4f ± %.4f\n", s.Mean, s.StdDev)
		fmt.Fprintf(w, "  Range:   %.4f .. %.4f\n", s.Min, s.Max)
		fmt.Fprintf(w, "  First:   %.4f  Last: %.4f\n", s.First, s.Last)
		fmt.Fprintf(w, "  Drift:   %.6g per step\n", s.Drift)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d properties, %d samples\n", len(report.Series), report.Samples())
}
