package ui

import "github.com/alienxs2/tilemon/internal/metrics"

// Layout is a fixed arrangement of which tiles are visible and how many
// sit on each grid row. Switching layout never touches tile modes or
// metric state, only visibility and placement.
type Layout int

const (
	LayoutCompact Layout = iota
	LayoutWide
	LayoutVertical
	LayoutMini

	layoutCount
)

func (l Layout) String() string {
	switch l {
	case LayoutCompact:
		return "compact"
	case LayoutWide:
		return "wide"
	case LayoutVertical:
		return "vertical"
	case LayoutMini:
		return "mini"
	}
	return "compact"
}

// ParseLayout maps a settings-file string back to a layout. Unknown
// names report false.
func ParseLayout(s string) (Layout, bool) {
	for l := Layout(0); l < layoutCount; l++ {
		if l.String() == s {
			return l, true
		}
	}
	return LayoutCompact, false
}

// Next returns the following layout, wrapping around at the end.
func (l Layout) Next() Layout {
	return (l + 1) % layoutCount
}

// Columns is the number of tiles per grid row.
func (l Layout) Columns() int {
	switch l {
	case LayoutWide:
		return 4
	case LayoutVertical:
		return 1
	case LayoutMini:
		return 3
	default:
		return 5
	}
}

// DefaultOrder is the built-in tile order; the user's reordering is
// stored per layout in the settings file.
func (l Layout) DefaultOrder() []metrics.MetricID {
	switch l {
	case LayoutWide:
		return []metrics.MetricID{
			metrics.MetricCPU, metrics.MetricRAM, metrics.MetricGPU, metrics.MetricTemp,
		}
	case LayoutMini:
		return []metrics.MetricID{
			metrics.MetricCPU, metrics.MetricRAM, metrics.MetricGPU,
		}
	default: // compact and vertical show everything
		return append([]metrics.MetricID(nil), metrics.AllMetrics...)
	}
}

// orderNames converts a default order to the string form stored in
// settings.
func orderNames(order []metrics.MetricID) []string {
	names := make([]string, len(order))
	for i, id := range order {
		names[i] = string(id)
	}
	return names
}

// resolveOrder maps stored tile names back to metric ids, dropping
// unknown names and appending any visible tiles the stored order lost.
func resolveOrder(stored []string, def []metrics.MetricID) []metrics.MetricID {
	visible := make(map[metrics.MetricID]bool, len(def))
	for _, id := range def {
		visible[id] = true
	}
	var order []metrics.MetricID
	seen := make(map[metrics.MetricID]bool, len(def))
	for _, name := range stored {
		id := metrics.MetricID(name)
		if visible[id] && !seen[id] {
			order = append(order, id)
			seen[id] = true
		}
	}
	for _, id := range def {
		if !seen[id] {
			order = append(order, id)
		}
	}
	return order
}
