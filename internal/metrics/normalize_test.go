package metrics

import "testing"

func TestCounterRate(t *testing.T) {
	tests := []struct {
		name     string
		prev     uint64
		curr     uint64
		elapsed  float64
		expected float64
	}{
		{"steady growth", 1000, 3000, 2, 1000},
		{"no change", 5000, 5000, 1, 0},
		{"wraparound clamps to zero", 1 << 62, 100, 1, 0},
		{"counter reset clamps to zero", 9999, 0, 1, 0},
		{"zero elapsed", 0, 1000, 0, 0},
		{"negative elapsed", 0, 1000, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CounterRate(tt.prev, tt.curr, tt.elapsed)
			if got != tt.expected {
				t.Errorf("CounterRate(%d, %d, %v) = %v, want %v",
					tt.prev, tt.curr, tt.elapsed, got, tt.expected)
			}
			if got < 0 {
				t.Errorf("CounterRate returned negative rate %v", got)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{-50, 0},
		{0, 0},
		{42.5, 42.5},
		{100, 100},
		{100.01, 100},
		{1e9, 100},
	}
	for _, tt := range tests {
		if got := Clamp(tt.input); got != tt.expected {
			t.Errorf("Clamp(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeRateStaysInRange(t *testing.T) {
	rates := []float64{0, 1024, 1e6, 1e9, 1e12}
	for _, id := range []MetricID{MetricDiskRead, MetricDiskWrite, MetricNetRx, MetricNetTx} {
		for _, rate := range rates {
			got := NormalizeRate(id, rate)
			if got < 0 || got > 100 {
				t.Errorf("NormalizeRate(%s, %v) = %v, outside [0, 100]", id, rate, got)
			}
		}
	}

	// Above-reference throughput clamps visually at 100.
	if got := NormalizeRate(MetricNetRx, 10e9); got != 100 {
		t.Errorf("NormalizeRate over reference = %v, want 100", got)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input    uint64
		expected string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.input); got != tt.expected {
			t.Errorf("FormatBytes(%d) = %s, want %s", tt.input, got, tt.expected)
		}
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0 B/s"},
		{512, "512 B/s"},
		{10 * 1024, "10 KB/s"},
		{3 * 1024 * 1024 / 2, "1.5 MB/s"},
		{2 * 1024 * 1024 * 1024, "2.0 GB/s"},
	}
	for _, tt := range tests {
		if got := FormatRate(tt.input); got != tt.expected {
			t.Errorf("FormatRate(%v) = %s, want %s", tt.input, got, tt.expected)
		}
	}
}
