package metrics

import (
	"time"
)

// MetricID identifies one monitored quantity. The set is closed: every
// tile in the UI is bound to exactly one of these.
type MetricID string

const (
	MetricCPU       MetricID = "cpu"
	MetricRAM       MetricID = "ram"
	MetricSwap      MetricID = "swap"
	MetricGPU       MetricID = "gpu"
	MetricVRAM      MetricID = "vram"
	MetricTemp      MetricID = "temp"
	MetricDiskRead  MetricID = "diskread"
	MetricDiskWrite MetricID = "diskwrite"
	MetricNetRx     MetricID = "netrx"
	MetricNetTx     MetricID = "nettx"
)

// AllMetrics lists every metric in display order.
var AllMetrics = []MetricID{
	MetricCPU, MetricRAM, MetricSwap, MetricGPU, MetricVRAM,
	MetricTemp, MetricDiskRead, MetricDiskWrite, MetricNetRx, MetricNetTx,
}

// Label returns the short human-readable name shown on a tile.
func (id MetricID) Label() string {
	switch id {
	case MetricCPU:
		return "CPU"
	case MetricRAM:
		return "RAM"
	case MetricSwap:
		return "Swap"
	case MetricGPU:
		return "GPU"
	case MetricVRAM:
		return "VRAM"
	case MetricTemp:
		return "Temp"
	case MetricDiskRead:
		return "Disk R"
	case MetricDiskWrite:
		return "Disk W"
	case MetricNetRx:
		return "Net Rx"
	case MetricNetTx:
		return "Net Tx"
	}
	return string(id)
}

// Unit returns the unit suffix rendered next to a tile's value.
func (id MetricID) Unit() string {
	switch id {
	case MetricTemp:
		return "°C"
	case MetricDiskRead, MetricDiskWrite, MetricNetRx, MetricNetTx:
		return "/s"
	}
	return "%"
}

// IsRate reports whether the metric is derived from a cumulative counter.
func (id MetricID) IsRate() bool {
	switch id {
	case MetricDiskRead, MetricDiskWrite, MetricNetRx, MetricNetTx:
		return true
	}
	return false
}

// Value is one metric's reading at a point in time.
type Value struct {
	Raw        float64 // native units: percent, °C, or bytes/sec
	Normalized float64 // always in [0, 100], drives fill and coloring
	Detail     string  // e.g. "12.3/32G", GPU name, "N/A"
}

// Snapshot holds every metric for a single poll tick.
type Snapshot struct {
	Timestamp time.Time
	Values    map[MetricID]Value
	GPUName   string // empty when no GPU is reachable
}

// Get returns the value for id, or a zero value if the snapshot has none.
func (s *Snapshot) Get(id MetricID) Value {
	if s == nil || s.Values == nil {
		return Value{}
	}
	return s.Values[id]
}

// Provider defines the interface for producing metric snapshots.
type Provider interface {
	Init() error
	Snapshot() (*Snapshot, error)
	Shutdown()
}
