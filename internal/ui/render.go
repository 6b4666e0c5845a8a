package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alienxs2/tilemon/internal/metrics"
)

// Every tile renders into the same fixed inner box so the grid stays
// aligned regardless of mode.
const (
	tileInnerWidth  = 18
	tileInnerHeight = 5
)

var waveBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// renderTile draws one tile's content for the given mode. All modes are
// pure functions of the value; Wave additionally draws the recent
// history and advances with phase.
func renderTile(mode VisMode, th Theme, id metrics.MetricID, val metrics.Value, phase int, hist []float64) []string {
	switch mode {
	case ModeGauge:
		return renderGauge(th, id, val)
	case ModeArc:
		return renderArc(th, id, val)
	case ModeRing:
		return renderRing(th, id, val)
	case ModeText:
		return renderText(th, id, val)
	case ModeWave:
		return renderWave(th, id, val, phase, hist)
	case ModeTerminal:
		return renderTerminal(th, id, val)
	default:
		return renderBar(th, id, val)
	}
}

// valueText formats the headline reading for a tile.
func valueText(id metrics.MetricID, val metrics.Value) string {
	if id.IsRate() {
		return metrics.FormatRate(val.Raw)
	}
	return fmt.Sprintf("%.0f%s", val.Raw, id.Unit())
}

func renderBar(th Theme, id metrics.MetricID, val metrics.Value) []string {
	pct := val.Normalized
	filled := int(pct / 100 * tileInnerWidth)
	if filled > tileInnerWidth {
		filled = tileInnerWidth
	}
	bar := th.Style(pct).Render(strings.Repeat("▰", filled)) +
		th.MutedStyle().Render(strings.Repeat("▱", tileInnerWidth-filled))

	return padLines([]string{
		leftRight(th.LabelStyle().Render(id.Label()), th.Style(pct).Bold(true).Render(valueText(id, val))),
		bar,
		th.MutedStyle().Render(truncate(val.Detail, tileInnerWidth)),
	})
}

func renderTerminal(th Theme, id metrics.MetricID, val metrics.Value) []string {
	pct := val.Normalized
	inner := tileInnerWidth - 2
	filled := int(pct / 100 * float64(inner))
	if filled > inner {
		filled = inner
	}
	bar := th.MutedStyle().Render("[") +
		th.Style(pct).Render(strings.Repeat("▓", filled)) +
		th.MutedStyle().Render(strings.Repeat("░", inner-filled)+"]")

	return padLines([]string{
		th.LabelStyle().Render(id.Label()),
		bar,
		leftRight(th.Style(pct).Render(valueText(id, val)), th.MutedStyle().Render(truncate(val.Detail, 9))),
	})
}

func renderText(th Theme, id metrics.MetricID, val metrics.Value) []string {
	return padLines([]string{
		"",
		center(th.LabelStyle().Render(id.Label())),
		center(th.Style(val.Normalized).Bold(true).Render(valueText(id, val))),
		center(th.MutedStyle().Render(truncate(val.Detail, tileInnerWidth))),
	})
}

// renderGauge draws a speedometer: a 252° sweep with a needle, matching
// the conventional gauge geometry.
func renderGauge(th Theme, id metrics.MetricID, val metrics.Value) []string {
	const (
		gaugeStart = 0.8 * math.Pi
		gaugeSweep = 1.4 * math.Pi
	)
	pct := val.Normalized
	c := newBrailleCanvas(tileInnerWidth, 3)
	cx, cy := float64(tileInnerWidth)-0.5, 9.0
	rx, ry := 14.0, 8.0

	c.plotEllipseArc(cx, cy, rx, ry, gaugeStart, gaugeStart+gaugeSweep, layerDim)
	c.plotEllipseArc(cx, cy, rx, ry, gaugeStart, gaugeStart+pct/100*gaugeSweep, layerValue)

	needle := gaugeStart + pct/100*gaugeSweep
	c.plotLine(cx, cy, cx+math.Cos(needle)*rx*0.65, cy+math.Sin(needle)*ry*0.65, layerNeedle)

	lines := c.render(th.MutedStyle(), th.Style(pct), lipgloss.NewStyle().Foreground(th.Accent))
	lines = append(lines,
		center(th.Style(pct).Bold(true).Render(valueText(id, val))),
		center(th.LabelStyle().Render(id.Label())),
	)
	return padLines(lines)
}

// renderArc draws a half circle filling left to right.
func renderArc(th Theme, id metrics.MetricID, val metrics.Value) []string {
	pct := val.Normalized
	c := newBrailleCanvas(tileInnerWidth, 3)
	cx, cy := float64(tileInnerWidth)-0.5, 10.0
	rx, ry := 14.0, 9.0

	c.plotEllipseArc(cx, cy, rx, ry, math.Pi, 2*math.Pi, layerDim)
	c.plotEllipseArc(cx, cy, rx, ry, math.Pi, math.Pi+pct/100*math.Pi, layerValue)

	lines := c.render(th.MutedStyle(), th.Style(pct), th.Style(pct))
	lines = append(lines,
		center(th.Style(pct).Bold(true).Render(valueText(id, val))),
		center(th.LabelStyle().Render(id.Label())),
	)
	return padLines(lines)
}

// renderRing draws a full circle swept clockwise from twelve o'clock.
func renderRing(th Theme, id metrics.MetricID, val metrics.Value) []string {
	pct := val.Normalized
	c := newBrailleCanvas(tileInnerWidth, 3)
	cx, cy := float64(tileInnerWidth)-0.5, 5.5
	rx, ry := 11.0, 5.0

	c.plotEllipseArc(cx, cy, rx, ry, 0, 2*math.Pi, layerDim)
	c.plotEllipseArc(cx, cy, rx, ry, -math.Pi/2, -math.Pi/2+pct/100*2*math.Pi, layerValue)

	lines := c.render(th.MutedStyle(), th.Style(pct), th.Style(pct))
	lines = append(lines,
		center(th.Style(pct).Bold(true).Render(valueText(id, val))),
		center(th.LabelStyle().Render(id.Label())),
	)
	return padLines(lines)
}

// renderWave fills each column to the level of a recent sample, newest
// at the right, with an animated ripple on the surface. Columns older
// than the history fall back to the current value. The phase advances
// every tick whether or not values move.
func renderWave(th Theme, id metrics.MetricID, val metrics.Value, phase int, hist []float64) []string {
	const rows = 3
	pct := val.Normalized
	style := th.Style(pct)

	// Column heights in eighths of a row.
	totalEighths := float64(rows * 8)
	levels := make([]int, tileInnerWidth)
	offset := tileInnerWidth - len(hist)
	for col := range levels {
		v := pct
		if col >= offset {
			v = hist[col-offset]
		}
		lvl := v/100*totalEighths + 1.5*math.Sin(float64(phase)*0.7+float64(col)*0.55)
		levels[col] = int(math.Round(math.Max(0, math.Min(totalEighths, lvl))))
	}

	lines := []string{
		leftRight(th.LabelStyle().Render(id.Label()), style.Bold(true).Render(valueText(id, val))),
	}
	for row := 0; row < rows; row++ {
		var b strings.Builder
		fromBottom := rows - 1 - row
		for _, lvl := range levels {
			full := lvl / 8
			part := lvl % 8
			switch {
			case fromBottom < full:
				b.WriteRune('█')
			case fromBottom == full && part > 0:
				b.WriteRune(waveBlocks[part-1])
			default:
				b.WriteRune(' ')
			}
		}
		lines = append(lines, style.Render(b.String()))
	}
	lines = append(lines, th.MutedStyle().Render(truncate(val.Detail, tileInnerWidth)))
	return padLines(lines)
}

// padLines pads every line to the tile's inner width and the slice to
// its inner height.
func padLines(lines []string) []string {
	for i, line := range lines {
		if w := lipgloss.Width(line); w < tileInnerWidth {
			lines[i] = line + strings.Repeat(" ", tileInnerWidth-w)
		}
	}
	for len(lines) < tileInnerHeight {
		lines = append(lines, strings.Repeat(" ", tileInnerWidth))
	}
	return lines[:tileInnerHeight]
}

func leftRight(left, right string) string {
	gap := tileInnerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func center(s string) string {
	gap := tileInnerWidth - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap/2) + s + strings.Repeat(" ", gap-gap/2)
}

// truncate shortens s to at most max display cells, counting by cell
// width so multibyte runes are never split.
func truncate(s string, max int) string {
	if lipgloss.Width(s) <= max {
		return s
	}
	if max < 1 {
		return ""
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > max {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
