package parser

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `"potential_energy": -10.5
"kinetic_energy": 4.2
"temperature": 298.15
`

func TestReadLines_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	require.NoError(t, os.WriteFile(path, []byte(sampleLog), 0o644))

	lines, err := ReadLines(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		`"potential_energy": -10.5`,
		`"kinetic_energy": 4.2`,
		`"temperature": 298.15`,
	}, lines)
}

func TestReadLines_NoTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	require.NoError(t, os.WriteFile(path, []byte("a 1\nb 2"), 0o644))

	lines, err := ReadLines(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a 1", "b 2"}, lines)
}

func TestReadLines_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(sampleLog))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "run.log.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	lines, err := ReadLines(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, strings.Split(strings.TrimSuffix(sampleLog, "\n"), "\n"), lines)
}

func TestReadLines_Zstd(t *testing.T) {
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := enc.EncodeAll([]byte(sampleLog), nil)
	require.NoError(t, enc.Close())

	path := filepath.Join(t.TempDir(), "run.log.zst")
	require.NoError(t, os.WriteFile(path, compressed, 0o644))

	lines, err := ReadLines(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, lines, 3)
	assert.Equal(t, `"temperature": 298.15`, lines[2])
}

func TestReadLines_CorruptGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log.gz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip"), 0o644))

	_, err := ReadLines(context.Background(), path)
	assert.Error(t, err)
}

func TestReadLines_FileNotFound(t *testing.T) {
	_, err := ReadLines(context.Background(), "/nonexistent/run.log")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadLinesFrom_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadLinesFrom(ctx, strings.NewReader("a 1\n"))
	assert.ErrorIs(t, err, context.Canceled)
}
