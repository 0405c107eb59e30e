// Package source decides how a simulation output file is read and loads it
// into a series.Collection.
package source

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ccollicutt/velplot/pkg/config"
)

// ErrNotImplemented is returned for recognized formats that cannot be read yet.
var ErrNotImplemented = errors.New("not implemented")

// Format is a closed set of input formats. The unexported method keeps
// other packages from adding variants; Load switches over all of them.
type Format interface {
	// Name is the short name accepted by ParseFormat.
	Name() string

	sourceFormat()
}

// RawText is the line-oriented `key: value` log written by the simulation.
// It needs a sampling interval to recover step numbers.
type RawText struct{}

// StructuredArchive is the HDF5 archive output: one group per sample index,
// each exposing named scalar datasets. Reading it is not supported yet.
type StructuredArchive struct{}

func (RawText) Name() string           { return "raw" }
func (StructuredArchive) Name() string { return "hdf5" }

func (RawText) sourceFormat()           {}
func (StructuredArchive) sourceFormat() {}

// Select chooses a format from the file name suffix: names ending in h5 or
// hdf5 are archives, everything else is raw text.
func Select(path string) Format {
	if strings.HasSuffix(path, "h5") || strings.HasSuffix(path, "hdf5") {
		return StructuredArchive{}
	}
	return RawText{}
}

// ParseFormat resolves an explicit format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "raw", "text":
		return RawText{}, nil
	case "hdf5", "h5":
		return StructuredArchive{}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported format %q (use raw or hdf5)", config.ErrInvalid, name)
	}
}
