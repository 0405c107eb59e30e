// Package property defines the closed vocabulary of simulation observables
// that velplot knows how to extract and plot.
package property

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknown is returned when a name is not part of the vocabulary.
var ErrUnknown = errors.New("unknown property")

// Name identifies an observable as it appears in a simulation log.
type Name string

const (
	PotentialEnergy Name = "potential_energy"
	KineticEnergy   Name = "kinetic_energy"
	TotalEnergy     Name = "total_energy"
	Temperature     Name = "temperature"
)

// Known returns the full vocabulary in canonical order.
func Known() []Name {
	return []Name{PotentialEnergy, KineticEnergy, TotalEnergy, Temperature}
}

// Valid reports whether n is part of the vocabulary.
func (n Name) Valid() bool {
	switch n {
	case PotentialEnergy, KineticEnergy, TotalEnergy, Temperature:
		return true
	default:
		return false
	}
}

// DefaultLabel returns the axis label used when no override is configured.
func (n Name) DefaultLabel() string {
	switch n {
	case PotentialEnergy:
		return "Potential Energy (kcal/mol)"
	case KineticEnergy:
		return "Kinetic Energy (kcal/mol)"
	case TotalEnergy:
		return "Total Energy (kcal/mol)"
	case Temperature:
		return "Temperature (Kelvin)"
	default:
		return string(n)
	}
}

// Parse converts a string into a Name, rejecting anything outside the vocabulary.
func Parse(s string) (Name, error) {
	n := Name(strings.TrimSpace(s))
	if !n.Valid() {
		return "", fmt.Errorf("%w %q (must be one of %s)", ErrUnknown, s, strings.Join(knownStrings(), ", "))
	}
	return n, nil
}

func knownStrings() []string {
	known := Known()
	out := make([]string, len(known))
	for i, n := range known {
		out[i] = string(n)
	}
	return out
}

// Set is an ordered, duplicate-free selection of properties.
// Order is the order in which names were requested.
type Set struct {
	names []Name
	index map[Name]struct{}
}

// NewSet builds a Set from names, keeping first occurrences only.
// Names outside the vocabulary are rejected.
func NewSet(names ...Name) (Set, error) {
	s := Set{index: make(map[Name]struct{}, len(names))}
	for _, n := range names {
		if !n.Valid() {
			return Set{}, fmt.Errorf("%w %q", ErrUnknown, n)
		}
		if _, dup := s.index[n]; dup {
			continue
		}
		s.index[n] = struct{}{}
		s.names = append(s.names, n)
	}
	return s, nil
}

// ParseSet parses a list of strings into a Set.
func ParseSet(values []string) (Set, error) {
	names := make([]Name, 0, len(values))
	for _, v := range values {
		n, err := Parse(v)
		if err != nil {
			return Set{}, err
		}
		names = append(names, n)
	}
	return NewSet(names...)
}

// All returns a Set holding the whole vocabulary.
func All() Set {
	s, _ := NewSet(Known()...)
	return s
}

// Contains reports whether n was requested.
func (s Set) Contains(n Name) bool {
	_, ok := s.index[n]
	return ok
}

// Names returns the requested names in request order.
func (s Set) Names() []Name {
	out := make([]Name, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of requested properties.
func (s Set) Len() int {
	return len(s.names)
}

// Empty reports whether nothing was requested.
func (s Set) Empty() bool {
	return len(s.names) == 0
}
