package ui

import "github.com/charmbracelet/lipgloss"

// Thresholds splitting the normalized 0-100 range into color bands.
const (
	WarningThreshold  = 70.0
	CriticalThreshold = 90.0
)

// Theme is a fixed palette. The three band colors answer "how bad is
// this value"; the rest dress the chrome around the tiles.
type Theme struct {
	Name     string
	Normal   lipgloss.Color
	Warning  lipgloss.Color
	Critical lipgloss.Color
	Accent   lipgloss.Color // title and selected-tile border
	Label    lipgloss.Color
	Muted    lipgloss.Color
	Border   lipgloss.Color
}

// Themes lists the built-in palettes in cycle order.
var Themes = []Theme{
	{
		Name:     "health",
		Normal:   lipgloss.Color("#4CAF50"),
		Warning:  lipgloss.Color("#FFB300"),
		Critical: lipgloss.Color("#E53935"),
		Accent:   lipgloss.Color("#4CAF50"),
		Label:    lipgloss.Color("#BBBBBB"),
		Muted:    lipgloss.Color("#555555"),
		Border:   lipgloss.Color("#333333"),
	},
	{
		Name:     "frost",
		Normal:   lipgloss.Color("#8FBCBB"),
		Warning:  lipgloss.Color("#EBCB8B"),
		Critical: lipgloss.Color("#C41E3A"),
		Accent:   lipgloss.Color("#81A1C1"),
		Label:    lipgloss.Color("#81A1C1"),
		Muted:    lipgloss.Color("#4C566A"),
		Border:   lipgloss.Color("#4C566A"),
	},
	{
		Name:     "synthwave",
		Normal:   lipgloss.Color("#39FF14"),
		Warning:  lipgloss.Color("#FFAA00"),
		Critical: lipgloss.Color("#FF0055"),
		Accent:   lipgloss.Color("#FF2E97"),
		Label:    lipgloss.Color("#B4B4D0"),
		Muted:    lipgloss.Color("#6B6B8D"),
		Border:   lipgloss.Color("#2A2A4A"),
	},
	{
		Name:     "mono",
		Normal:   lipgloss.Color("#AAAAAA"),
		Warning:  lipgloss.Color("#DDDDDD"),
		Critical: lipgloss.Color("#FFFFFF"),
		Accent:   lipgloss.Color("#FFFFFF"),
		Label:    lipgloss.Color("#888888"),
		Muted:    lipgloss.Color("#555555"),
		Border:   lipgloss.Color("#444444"),
	},
}

// ThemeIndex returns the position of the named theme, or 0 when the
// name is unknown (corrupt settings fall back to the first theme).
func ThemeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

// Color returns the band color for a normalized value.
func (t Theme) Color(pct float64) lipgloss.Color {
	switch {
	case pct >= CriticalThreshold:
		return t.Critical
	case pct >= WarningThreshold:
		return t.Warning
	default:
		return t.Normal
	}
}

// Style returns a foreground style in the band color for pct.
func (t Theme) Style(pct float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Color(pct))
}

// TitleStyle renders the header title.
func (t Theme) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
}

// LabelStyle renders tile labels.
func (t Theme) LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Label)
}

// MutedStyle renders detail lines and chrome text.
func (t Theme) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

// TileStyle renders a tile border; the selected tile uses the accent.
func (t Theme) TileStyle(selected bool) lipgloss.Style {
	border := t.Border
	if selected {
		border = t.Accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}
