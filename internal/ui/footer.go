package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// FooterModel shows the hotkey help line and a clock.
type FooterModel struct {
	width int
	help  help.Model
	keys  keyMap
}

func NewFooterModel(keys keyMap) FooterModel {
	return FooterModel{
		help: help.New(),
		keys: keys,
	}
}

func (m *FooterModel) SetSize(w int) {
	m.width = w
	m.help.Width = w
}

// ToggleFull switches between the one-line and expanded help views.
func (m *FooterModel) ToggleFull() {
	m.help.ShowAll = !m.help.ShowAll
}

func (m FooterModel) View(th Theme) string {
	if m.width == 0 {
		return ""
	}

	helpView := m.help.View(m.keys)
	clock := th.MutedStyle().Render(time.Now().Format("15:04:05"))

	if m.help.ShowAll {
		return helpView + "\n" + clock
	}

	gap := m.width - lipgloss.Width(helpView) - lipgloss.Width(clock)
	if gap < 1 {
		return helpView
	}
	return helpView + strings.Repeat(" ", gap) + clock
}
