// Package series turns per-property sample values into plottable time series.
package series

import (
	"fmt"
	"math"

	"github.com/ccollicutt/velplot/pkg/config"
	"github.com/ccollicutt/velplot/pkg/property"
)

// Point is one reindexed sample: the simulation step and the observed value.
type Point struct {
	X int     `json:"x"`
	Y float64 `json:"y"`
}

// Reindex pairs each value with its step number, i*interval.
// The last step must fit in an int.
func Reindex(values []float64, interval int) ([]Point, error) {
	if err := config.ValidateInterval(interval); err != nil {
		return nil, err
	}
	if n := len(values); n > 1 && interval > math.MaxInt/(n-1) {
		return nil, fmt.Errorf("%w: output frequency %d overflows the step of sample %d", config.ErrInvalid, interval, n-1)
	}

	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{X: i * interval, Y: v}
	}
	return points, nil
}

// Series is the reindexed data of a single property.
// X and Y always have the same length.
type Series struct {
	Property property.Name
	X        []int
	Y        []float64
}

// New builds a Series for values sampled every interval steps.
func New(name property.Name, values []float64, interval int) (*Series, error) {
	points, err := Reindex(values, interval)
	if err != nil {
		return nil, err
	}

	s := &Series{
		Property: name,
		X:        make([]int, len(points)),
		Y:        make([]float64, len(points)),
	}
	for i, p := range points {
		s.X[i] = p.X
		s.Y[i] = p.Y
	}
	return s, nil
}

// Len returns the number of points. Together with XY it satisfies
// gonum/plot's plotter.XYer.
func (s *Series) Len() int {
	return len(s.Y)
}

// XY returns the i-th point as float64 coordinates.
func (s *Series) XY(i int) (x, y float64) {
	return float64(s.X[i]), s.Y[i]
}

// Points returns the series as (x, y) pairs.
func (s *Series) Points() []Point {
	out := make([]Point, len(s.Y))
	for i := range s.Y {
		out[i] = Point{X: s.X[i], Y: s.Y[i]}
	}
	return out
}

// Collection maps properties to their series, in request order.
type Collection struct {
	interval int
	order    []property.Name
	series   map[property.Name]*Series
}

// Build reindexes values for each name in names. The interval is checked
// before any series is built.
func Build(interval int, names []property.Name, values map[property.Name][]float64) (*Collection, error) {
	if err := config.ValidateInterval(interval); err != nil {
		return nil, err
	}

	c := &Collection{
		interval: interval,
		series:   make(map[property.Name]*Series, len(names)),
	}
	for _, n := range names {
		if _, dup := c.series[n]; dup {
			return nil, fmt.Errorf("property %s listed twice", n)
		}
		s, err := New(n, values[n], interval)
		if err != nil {
			return nil, err
		}
		c.order = append(c.order, n)
		c.series[n] = s
	}
	return c, nil
}

// Interval returns the sampling interval the collection was built with.
func (c *Collection) Interval() int {
	return c.interval
}

// Properties returns the properties in request order.
func (c *Collection) Properties() []property.Name {
	out := make([]property.Name, len(c.order))
	copy(out, c.order)
	return out
}

// Get returns the series for n.
func (c *Collection) Get(n property.Name) (*Series, bool) {
	s, ok := c.series[n]
	return s, ok
}

// Len returns the number of properties in the collection.
func (c *Collection) Len() int {
	return len(c.order)
}

// Each calls fn for every series in request order.
func (c *Collection) Each(fn func(*Series)) {
	for _, n := range c.order {
		fn(c.series[n])
	}
}
