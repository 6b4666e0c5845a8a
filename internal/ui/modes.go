package ui

// VisMode selects how a tile draws its metric. The enumeration is
// closed; rendering dispatches over it with a single switch.
type VisMode int

const (
	ModeBar VisMode = iota
	ModeGauge
	ModeArc
	ModeRing
	ModeText
	ModeWave
	ModeTerminal

	modeCount
)

// ModeCount is the number of visualization modes in the cycle.
const ModeCount = int(modeCount)

func (m VisMode) String() string {
	switch m {
	case ModeBar:
		return "bar"
	case ModeGauge:
		return "gauge"
	case ModeArc:
		return "arc"
	case ModeRing:
		return "ring"
	case ModeText:
		return "text"
	case ModeWave:
		return "wave"
	case ModeTerminal:
		return "terminal"
	}
	return "bar"
}

// ParseMode maps a settings-file string back to a mode. Unknown names
// report false so callers can fall back to the global default.
func ParseMode(s string) (VisMode, bool) {
	for m := VisMode(0); m < modeCount; m++ {
		if m.String() == s {
			return m, true
		}
	}
	return ModeBar, false
}

// Next returns the following mode, wrapping around at the end.
func (m VisMode) Next() VisMode {
	return (m + 1) % modeCount
}
