// Package stats computes summary statistics of property series.
package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ccollicutt/velplot/pkg/property"
	"github.com/ccollicutt/velplot/pkg/series"
)

// Summary describes one series numerically.
type Summary struct {
	Property property.Name `json:"property"`
	Count    int           `json:"count"`

	// FirstStep and LastStep bound the simulation steps covered.
	FirstStep int `json:"first_step"`
	LastStep  int `json:"last_step"`

	First  float64 `json:"first"`
	Last   float64 `json:"last"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`

	// Drift is the least-squares slope of the value against the step number.
	Drift float64 `json:"drift"`
}

// Summarize computes the summary of s. Empty series give a zero Summary
// apart from the property name; single points have zero spread and drift.
func Summarize(s *series.Series) Summary {
	sum := Summary{Property: s.Property, Count: s.Len()}
	if sum.Count == 0 {
		return sum
	}

	sum.FirstStep = s.X[0]
	sum.LastStep = s.X[len(s.X)-1]
	sum.First = s.Y[0]
	sum.Last = s.Y[len(s.Y)-1]
	sum.Min = floats.Min(s.Y)
	sum.Max = floats.Max(s.Y)

	if sum.Count == 1 {
		sum.Mean = s.Y[0]
		return sum
	}

	sum.Mean, sum.StdDev = stat.MeanStdDev(s.Y, nil)

	steps := make([]float64, len(s.X))
	for i, x := range s.X {
		steps[i] = float64(x)
	}
	_, sum.Drift = stat.LinearRegression(steps, s.Y, nil, false)

	return sum
}

// SummarizeAll summarizes every series of c in request order.
func SummarizeAll(c *series.Collection) []Summary {
	out := make([]Summary, 0, c.Len())
	c.Each(func(s *series.Series) {
		out = append(out, Summarize(s))
	})
	return out
}
