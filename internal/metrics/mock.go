package metrics

import (
	"math/rand"
	"time"
)

// MockProvider produces plausible simulated metrics for demo mode and
// for tests that need a full snapshot without touching the host.
type MockProvider struct {
	rng *rand.Rand
}

func (m *MockProvider) Init() error {
	m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	return nil
}

func (m *MockProvider) Snapshot() (*Snapshot, error) {
	snap := &Snapshot{
		Timestamp: time.Now(),
		Values:    make(map[MetricID]Value, len(AllMetrics)),
		GPUName:   "RTX 4090",
	}

	cpu := 20 + m.rng.Float64()*40
	snap.Values[MetricCPU] = Value{Raw: cpu, Normalized: Clamp(cpu), Detail: "3500MHz"}

	ram := 35 + m.rng.Float64()*15
	snap.Values[MetricRAM] = Value{Raw: ram, Normalized: Clamp(ram), Detail: "11.2/32G"}

	swap := m.rng.Float64() * 5
	snap.Values[MetricSwap] = Value{Raw: swap, Normalized: Clamp(swap), Detail: "0.4/8G"}

	gpu := 50 + m.rng.Float64()*30
	snap.Values[MetricGPU] = Value{Raw: gpu, Normalized: Clamp(gpu), Detail: snap.GPUName}

	vram := 30 + m.rng.Float64()*10
	snap.Values[MetricVRAM] = Value{Raw: vram, Normalized: Clamp(vram), Detail: "8192/24576M"}

	temp := 55 + m.rng.Float64()*15
	snap.Values[MetricTemp] = Value{Raw: temp, Normalized: Clamp(temp), Detail: "GPU"}

	for _, id := range []MetricID{MetricDiskRead, MetricDiskWrite, MetricNetRx, MetricNetTx} {
		rate := m.rng.Float64() * 80 * 1024 * 1024
		snap.Values[id] = Value{
			Raw:        rate,
			Normalized: NormalizeRate(id, rate),
			Detail:     FormatRate(rate),
		}
	}

	return snap, nil
}

func (m *MockProvider) Shutdown() {}
