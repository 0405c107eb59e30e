package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandGlobs_SingleFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "run.log")
	require.NoError(t, os.WriteFile(file, []byte("temperature: 1"), 0o644))

	result, err := ExpandGlobs([]string{file})
	require.NoError(t, err)
	assert.Equal(t, []string{file}, result)
}

func TestExpandGlobs_GlobPattern(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"b.log", "a.log", "c.h5"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("x 1"), 0o644))
	}

	result, err := ExpandGlobs([]string{filepath.Join(dir, "*.log")})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.log"), filepath.Join(dir, "b.log")}, result)
}

func TestExpandGlobs_NoMatchKeptLiteral(t *testing.T) {
	pattern := filepath.Join(t.TempDir(), "*.nonexistent")

	result, err := ExpandGlobs([]string{pattern})
	require.NoError(t, err)
	assert.Equal(t, []string{pattern}, result)
}

func TestExpandGlobs_Deduplication(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "run.log")
	require.NoError(t, os.WriteFile(file, []byte("x 1"), 0o644))

	result, err := ExpandGlobs([]string{file, filepath.Join(dir, "*.log"), "  "})
	require.NoError(t, err)
	assert.Equal(t, []string{file}, result)
}

func TestExpandGlobs_InvalidPattern(t *testing.T) {
	_, err := ExpandGlobs([]string{"[invalid"})
	assert.Error(t, err)
}
