package render

import (
	"fmt"

	"gonum.org/v1/plot"
)

// DecimalTicks places ticks like plot.DefaultTicks and labels major ticks
// with a printf verb such as "%.1f".
type DecimalTicks struct {
	Format string
}

// Ticks implements plot.Ticker.
func (t DecimalTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].IsMinor() {
			continue
		}
		ticks[i].Label = fmt.Sprintf(t.Format, ticks[i].Value)
	}
	return ticks
}
