package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/alienxs2/tilemon/internal/metrics"
)

func TestRenderTileDimensions(t *testing.T) {
	th := Themes[0]
	cases := []struct {
		id  metrics.MetricID
		val metrics.Value
	}{
		{metrics.MetricCPU, metrics.Value{}},
		{metrics.MetricCPU, metrics.Value{Raw: 42, Normalized: 42, Detail: "3500MHz"}},
		{metrics.MetricTemp, metrics.Value{Raw: 100, Normalized: 100, Detail: "GPU"}},
		{metrics.MetricNetRx, metrics.Value{Raw: 1e12, Normalized: 100, Detail: "over"}}, // rate above reference
	}

	for mode := VisMode(0); mode < modeCount; mode++ {
		for _, tc := range cases {
			lines := renderTile(mode, th, tc.id, tc.val, 7, []float64{10, 50, 90})
			if len(lines) != tileInnerHeight {
				t.Fatalf("mode %s: got %d lines, want %d", mode, len(lines), tileInnerHeight)
			}
			for i, line := range lines {
				if w := lipgloss.Width(line); w != tileInnerWidth {
					t.Errorf("mode %s line %d: width %d, want %d", mode, i, w, tileInnerWidth)
				}
			}
		}
	}
}

func TestRenderWavePhaseOnlyMovesSurface(t *testing.T) {
	th := Themes[0]
	val := metrics.Value{Raw: 50, Normalized: 50}

	a := renderWave(th, metrics.MetricRAM, val, 1, nil)
	b := renderWave(th, metrics.MetricRAM, val, 2, nil)

	// The headline line is phase-independent; the fill animates.
	if a[0] != b[0] {
		t.Error("wave headline changed with phase")
	}
	same := true
	for i := 1; i < len(a); i++ {
		if a[i] != b[i] {
			same = false
		}
	}
	if same {
		t.Error("wave fill did not animate between phases")
	}
}

func TestRenderWaveFollowsHistory(t *testing.T) {
	th := Themes[0]
	val := metrics.Value{Raw: 0, Normalized: 0}

	flat := renderWave(th, metrics.MetricCPU, val, 3, make([]float64, tileInnerWidth))
	full := renderWave(th, metrics.MetricCPU, val, 3, func() []float64 {
		h := make([]float64, tileInnerWidth)
		for i := range h {
			h[i] = 100
		}
		return h
	}())

	same := true
	for i := 1; i < len(flat); i++ {
		if flat[i] != full[i] {
			same = false
		}
	}
	if same {
		t.Error("wave fill ignored history levels")
	}
}

func TestTruncateByDisplayWidth(t *testing.T) {
	tests := []struct {
		in       string
		max      int
		expected string
	}{
		{"short", 10, "short"},
		{"exact-fit-detail", 16, "exact-fit-detail"},
		{"RTX 3080 Ti Super", 10, "RTX 3080 …"},
		{"74°C on die", 6, "74°C …"},
		{"日本語のGPU", 5, "日本…"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.max)
		if got != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.expected)
		}
		if w := lipgloss.Width(got); w > tt.max {
			t.Errorf("truncate(%q, %d) is %d cells wide", tt.in, tt.max, w)
		}
	}
}

func TestValueText(t *testing.T) {
	tests := []struct {
		id       metrics.MetricID
		val      metrics.Value
		expected string
	}{
		{metrics.MetricCPU, metrics.Value{Raw: 42.4}, "42%"},
		{metrics.MetricTemp, metrics.Value{Raw: 65}, "65°C"},
		{metrics.MetricNetRx, metrics.Value{Raw: 2048}, "2 KB/s"},
		{metrics.MetricDiskWrite, metrics.Value{Raw: 0}, "0 B/s"},
	}
	for _, tt := range tests {
		if got := valueText(tt.id, tt.val); got != tt.expected {
			t.Errorf("valueText(%s, %v) = %q, want %q", tt.id, tt.val.Raw, got, tt.expected)
		}
	}
}
