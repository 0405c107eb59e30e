package render

import (
	"context"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/ccollicutt/velplot/pkg/config"
	"github.com/ccollicutt/velplot/pkg/property"
	"github.com/ccollicutt/velplot/pkg/series"
)

func testOptions(layout config.Layout) Options {
	cfg := config.DefaultConfig()
	opts := OptionsFromConfig(cfg)
	opts.Layout = layout
	opts.DPI = 100
	opts.Width = 4 * vg.Inch
	opts.Height = 3 * vg.Inch
	return opts
}

func testCollection(t *testing.T) *series.Collection {
	t.Helper()
	names := []property.Name{property.Temperature, property.TotalEnergy, property.KineticEnergy}
	c, err := series.Build(50, names, map[property.Name][]float64{
		property.Temperature: {300.1, 300.5, 299.8, 300.2},
		property.TotalEnergy: {-12.3, -12.2, -12.4},
	})
	require.NoError(t, err)
	return c
}

func imageSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestRender_Stacked(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "outputs.png")

	written, err := New(testOptions(config.LayoutStacked), nil).Render(context.Background(), testCollection(t), dst)
	require.NoError(t, err)
	assert.Equal(t, []string{dst}, written)

	w, h := imageSize(t, dst)
	assert.Equal(t, 400, w)
	assert.Equal(t, 300, h)
}

func TestRender_Separate(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "nvt.jpg")

	written, err := New(testOptions(config.LayoutSeparate), nil).Render(context.Background(), testCollection(t), dst)
	require.NoError(t, err)

	// kinetic_energy has no samples and is skipped.
	assert.Equal(t, []string{
		filepath.Join(dir, "nvt_temperature.jpg"),
		filepath.Join(dir, "nvt_total_energy.jpg"),
	}, written)
	for _, path := range written {
		w, h := imageSize(t, path)
		assert.Equal(t, 400, w)
		assert.Equal(t, 300, h)
	}
}

func TestRender_CreatesOutputDirectory(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "plots", "run", "outputs.png")

	_, err := New(testOptions(config.LayoutStacked), nil).Render(context.Background(), testCollection(t), dst)
	require.NoError(t, err)
	assert.FileExists(t, dst)
}

func TestRender_UnsupportedExtensionWritesNothing(t *testing.T) {
	dir := t.TempDir()

	_, err := New(testOptions(config.LayoutStacked), nil).Render(context.Background(), testCollection(t), filepath.Join(dir, "out.svg"))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRender_NoData(t *testing.T) {
	c, err := series.Build(1, []property.Name{property.Temperature}, nil)
	require.NoError(t, err)

	_, err = New(testOptions(config.LayoutStacked), nil).Render(context.Background(), c, filepath.Join(t.TempDir(), "out.png"))
	assert.ErrorIs(t, err, ErrNoData)
}

func TestRender_UnknownLayout(t *testing.T) {
	_, err := New(testOptions("mosaic"), nil).Render(context.Background(), testCollection(t), filepath.Join(t.TempDir(), "out.png"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestSeparatePath(t *testing.T) {
	assert.Equal(t, "out/run_temperature.png", SeparatePath("out/run.png", property.Temperature))
	assert.Equal(t, "run_kinetic_energy.tiff", SeparatePath("run.tiff", property.KineticEnergy))
}

func TestDecimalTicks(t *testing.T) {
	ticks := DecimalTicks{Format: "%.2f"}.Ticks(0, 1)
	require.NotEmpty(t, ticks)

	var majors int
	for _, tick := range ticks {
		if tick.IsMinor() {
			continue
		}
		majors++
		assert.Regexp(t, `^-?\d+\.\d{2}$`, tick.Label)
	}
	assert.Positive(t, majors)
}
