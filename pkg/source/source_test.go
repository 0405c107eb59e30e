package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/velplot/pkg/config"
	"github.com/ccollicutt/velplot/pkg/parser"
	"github.com/ccollicutt/velplot/pkg/property"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"run.h5", StructuredArchive{}},
		{"out/nvt.hdf5", StructuredArchive{}},
		{"run.log", RawText{}},
		{"run.log.gz", RawText{}},
		{"run.txt", RawText{}},
		{"h5", StructuredArchive{}},
		{"run", RawText{}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Select(tt.path))
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("raw")
	require.NoError(t, err)
	assert.Equal(t, RawText{}, f)

	f, err = ParseFormat("HDF5")
	require.NoError(t, err)
	assert.Equal(t, StructuredArchive{}, f)

	_, err = ParseFormat("netcdf")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoad_RawText(t *testing.T) {
	path := writeLog(t, "run.log", "temperature: 300.1\ntemperature: 300.5\npotential_energy: -12.3\n")
	props, err := property.NewSet(property.Temperature)
	require.NoError(t, err)

	c, err := NewLoader(nil).Load(context.Background(), Select(path), Request{Path: path, Properties: props, Interval: 50})
	require.NoError(t, err)

	assert.Equal(t, []property.Name{property.Temperature}, c.Properties())
	s, ok := c.Get(property.Temperature)
	require.True(t, ok)
	assert.Equal(t, []int{0, 50}, s.X)
	assert.Equal(t, []float64{300.1, 300.5}, s.Y)

	_, ok = c.Get(property.PotentialEnergy)
	assert.False(t, ok)
}

func TestLoad_RawTextMissingIntervalBeforeTouchingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.log")

	_, err := NewLoader(nil).Load(context.Background(), Select(path), Request{Path: path, Properties: property.All()})
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.NotErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_RawTextNegativeInterval(t *testing.T) {
	path := writeLog(t, "run.log", "temperature: 1\n")

	_, err := NewLoader(nil).Load(context.Background(), RawText{}, Request{Path: path, Properties: property.All(), Interval: -5})
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoad_RawTextMalformed(t *testing.T) {
	path := writeLog(t, "run.log", "temperature: 1\ntemperature: 1 2\n")

	_, err := NewLoader(nil).Load(context.Background(), RawText{}, Request{Path: path, Properties: property.All(), Interval: 1})
	assert.ErrorIs(t, err, parser.ErrMalformedLine)
}

func TestLoad_StructuredArchiveNotImplemented(t *testing.T) {
	for _, props := range []property.Set{{}, property.All()} {
		_, err := NewLoader(nil).Load(context.Background(), Select("run.h5"), Request{Path: "run.h5", Properties: props, Interval: 50})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotImplemented)
	}
}

func writeLog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
