package ui

import (
	"strings"

	"github.com/alienxs2/tilemon/internal/metrics"
)

// Tile binds one metric to a visualization mode. It owns nothing beyond
// the mode and the wave animation phase; values come from the latest
// snapshot on every render.
type Tile struct {
	ID   metrics.MetricID
	Mode VisMode

	phase int
}

// CycleMode advances to the next visualization mode.
func (t *Tile) CycleMode() {
	t.Mode = t.Mode.Next()
}

// Advance moves the wave animation forward one tick. It has no visible
// effect in any other mode.
func (t *Tile) Advance() {
	t.phase++
}

// View renders the tile with its border. hist carries recent samples
// for the wave mode; other modes ignore it.
func (t *Tile) View(th Theme, val metrics.Value, hist []float64, selected bool) string {
	content := strings.Join(renderTile(t.Mode, th, t.ID, val, t.phase, hist), "\n")
	return th.TileStyle(selected).Render(content)
}

// Outer tile footprint: inner box plus one cell of padding and the
// border on each side. The grid hit-test in root.go depends on these.
const (
	tileOuterWidth  = tileInnerWidth + 4
	tileOuterHeight = tileInnerHeight + 2
)
