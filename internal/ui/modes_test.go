package ui

import "testing"

func TestModeCycleReturnsToStart(t *testing.T) {
	for start := VisMode(0); start < modeCount; start++ {
		m := start
		seen := make(map[VisMode]bool)
		for i := 0; i < ModeCount; i++ {
			if seen[m] {
				t.Fatalf("mode %s repeated before the cycle completed", m)
			}
			seen[m] = true
			m = m.Next()
		}
		if m != start {
			t.Errorf("cycling %d times from %s ended at %s", ModeCount, start, m)
		}
	}
}

func TestParseModeRoundTrip(t *testing.T) {
	for m := VisMode(0); m < modeCount; m++ {
		got, ok := ParseMode(m.String())
		if !ok {
			t.Errorf("ParseMode(%q) not recognized", m.String())
		}
		if got != m {
			t.Errorf("ParseMode(%q) = %s, want %s", m.String(), got, m)
		}
	}
}

func TestParseModeUnknown(t *testing.T) {
	for _, s := range []string{"", "minimal", "BAR", "circle"} {
		if _, ok := ParseMode(s); ok {
			t.Errorf("ParseMode(%q) unexpectedly recognized", s)
		}
	}
}
