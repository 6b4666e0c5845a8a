package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alienxs2/tilemon/internal/metrics"
)

func TestLayoutCycleReturnsToStart(t *testing.T) {
	l := LayoutCompact
	for i := 0; i < int(layoutCount); i++ {
		l = l.Next()
	}
	assert.Equal(t, LayoutCompact, l)
}

func TestParseLayoutRoundTrip(t *testing.T) {
	for l := Layout(0); l < layoutCount; l++ {
		got, ok := ParseLayout(l.String())
		assert.True(t, ok, l.String())
		assert.Equal(t, l, got)
	}

	_, ok := ParseLayout("sideways")
	assert.False(t, ok)
}

func TestDefaultOrdersFitColumns(t *testing.T) {
	for l := Layout(0); l < layoutCount; l++ {
		order := l.DefaultOrder()
		assert.NotEmpty(t, order, l.String())
		assert.Greater(t, l.Columns(), 0, l.String())
	}
}

func TestResolveOrder(t *testing.T) {
	def := []metrics.MetricID{metrics.MetricCPU, metrics.MetricRAM, metrics.MetricGPU}

	t.Run("stored order wins", func(t *testing.T) {
		got := resolveOrder([]string{"gpu", "cpu", "ram"}, def)
		assert.Equal(t, []metrics.MetricID{metrics.MetricGPU, metrics.MetricCPU, metrics.MetricRAM}, got)
	})

	t.Run("unknown names dropped", func(t *testing.T) {
		got := resolveOrder([]string{"gpu", "battery", "cpu"}, def)
		assert.Equal(t, []metrics.MetricID{metrics.MetricGPU, metrics.MetricCPU, metrics.MetricRAM}, got)
	})

	t.Run("missing tiles appended", func(t *testing.T) {
		got := resolveOrder([]string{"ram"}, def)
		assert.Equal(t, []metrics.MetricID{metrics.MetricRAM, metrics.MetricCPU, metrics.MetricGPU}, got)
	})

	t.Run("duplicates collapsed", func(t *testing.T) {
		got := resolveOrder([]string{"cpu", "cpu", "ram"}, def)
		assert.Equal(t, []metrics.MetricID{metrics.MetricCPU, metrics.MetricRAM, metrics.MetricGPU}, got)
	})
}
