package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func snapWith(cpu float64) *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Values: map[MetricID]Value{
			MetricCPU: {Raw: cpu, Normalized: Clamp(cpu)},
		},
	}
}

func TestHistoryPushAndLast(t *testing.T) {
	h := NewHistory(4)

	assert.Nil(t, h.Last(MetricCPU, 10), "empty history returns nil")

	for _, v := range []float64{10, 20, 30} {
		h.Push(snapWith(v))
	}
	assert.Equal(t, []float64{10, 20, 30}, h.Last(MetricCPU, 10))
	assert.Equal(t, []float64{20, 30}, h.Last(MetricCPU, 2))
}

func TestHistoryWrapsOldestOut(t *testing.T) {
	h := NewHistory(3)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		h.Push(snapWith(v))
	}
	assert.Equal(t, []float64{3, 4, 5}, h.Last(MetricCPU, 10))
}

func TestHistoryIgnoresNilSnapshot(t *testing.T) {
	h := NewHistory(3)
	h.Push(nil)
	assert.Nil(t, h.Last(MetricCPU, 1))
}

func TestHistoryTracksMetricsIndependently(t *testing.T) {
	h := NewHistory(8)
	h.Push(&Snapshot{Values: map[MetricID]Value{
		MetricCPU: {Normalized: 50},
		MetricRAM: {Normalized: 75},
	}})
	assert.Equal(t, []float64{50}, h.Last(MetricCPU, 4))
	assert.Equal(t, []float64{75}, h.Last(MetricRAM, 4))
	assert.Nil(t, h.Last(MetricSwap, 4))
}
