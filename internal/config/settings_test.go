package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "nope", "config.properties"))
	require.NotNil(t, s)
	assert.Equal(t, Default().Theme, s.Theme)
	assert.Equal(t, Default().Layout, s.Layout)
	assert.Equal(t, Default().Mode, s.Mode)
	assert.False(t, s.Autostart)
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.properties")
	require.NoError(t, os.WriteFile(path, []byte("\x00\xffgarbage==\n==="), 0o644))

	s := Load(path)
	require.NotNil(t, s)
	assert.Equal(t, Default().Theme, s.Theme)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.properties")

	s := Default()
	s.path = path
	s.Theme = "frost"
	s.Layout = "vertical"
	s.Mode = "gauge"
	s.Autostart = true
	s.IntervalMS = 2000
	s.TileModes["cpu"] = "ring"
	s.TileModes["ram"] = "wave"
	s.TileOrders["compact"] = []string{"ram", "cpu", "swap", "gpu"}
	s.Save()

	got := Load(path)
	assert.Equal(t, "frost", got.Theme)
	assert.Equal(t, "vertical", got.Layout)
	assert.Equal(t, "gauge", got.Mode)
	assert.True(t, got.Autostart)
	assert.Equal(t, 2000, got.IntervalMS)
	assert.Equal(t, "ring", got.TileModes["cpu"])
	assert.Equal(t, "wave", got.TileModes["ram"])
	assert.Equal(t, []string{"ram", "cpu", "swap", "gpu"}, got.TileOrders["compact"])
}

func TestIntervalOverrideNotPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.properties")

	s := Load(path)
	s.SetIntervalOverride(250)
	assert.Equal(t, 250, s.EffectiveIntervalMS())

	// A write-through change (theme switch etc.) must not bake the
	// transient interval into the file.
	s.Theme = "frost"
	s.Save()

	got := Load(path)
	assert.Equal(t, Default().IntervalMS, got.IntervalMS)
	assert.Equal(t, Default().IntervalMS, got.EffectiveIntervalMS())
}

func TestTileModeFallsBackToGlobal(t *testing.T) {
	s := Default()
	s.Mode = "bar"
	assert.Equal(t, "bar", s.TileMode("cpu"))

	s.TileModes["cpu"] = "gauge"
	assert.Equal(t, "gauge", s.TileMode("cpu"))
	assert.Equal(t, "bar", s.TileMode("ram"))
}

func TestSetTileModeRemovesRedundantOverride(t *testing.T) {
	s := Default()
	s.path = filepath.Join(t.TempDir(), "config.properties")
	s.Mode = "bar"

	s.SetTileMode("cpu", "gauge")
	assert.Contains(t, s.TileModes, "cpu")

	// Setting a tile back to the global default drops the override.
	s.SetTileMode("cpu", "bar")
	assert.NotContains(t, s.TileModes, "cpu")
}

func TestSwapTiles(t *testing.T) {
	s := Default()
	s.path = filepath.Join(t.TempDir(), "config.properties")
	fallback := []string{"cpu", "ram", "gpu"}

	s.SwapTiles("compact", fallback, "cpu", "gpu")
	assert.Equal(t, []string{"gpu", "ram", "cpu"}, s.TileOrders["compact"])

	// Unknown tile names leave the order untouched.
	s.SwapTiles("compact", fallback, "cpu", "nope")
	assert.Equal(t, []string{"gpu", "ram", "cpu"}, s.TileOrders["compact"])
}
