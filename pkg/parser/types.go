// Package parser reads simulation observation logs and extracts the values
// of requested properties.
//
// A log holds one observation per line: a key token and a value token
// separated by whitespace. Keys may carry quote and colon decoration,
// e.g. `"temperature": 300.1`.
package parser

import "github.com/ccollicutt/velplot/pkg/property"

// Samples holds the raw values extracted for each requested property.
type Samples struct {
	// Properties lists the requested properties in request order.
	Properties []property.Name

	// Values maps each requested property to its values in file order.
	// Requested properties absent from the log map to an empty slice.
	Values map[property.Name][]float64
}

// Count returns the number of values extracted for n.
func (s *Samples) Count(n property.Name) int {
	return len(s.Values[n])
}

// KeyCount tallies how often a key occurs in a log.
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`

	// Known is true when the key belongs to the property vocabulary.
	Known bool `json:"known"`
}

// Inventory describes the keys present in a log without extracting values.
type Inventory struct {
	Lines int        `json:"lines"`
	Keys  []KeyCount `json:"keys"`

	// Malformed counts lines that do not split into exactly two tokens.
	Malformed int `json:"malformed"`

	// MalformedLines holds the first few malformed 1-based line numbers.
	MalformedLines []int `json:"malformed_lines,omitempty"`
}
