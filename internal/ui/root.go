package ui

import (
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/alienxs2/tilemon/internal/config"
	"github.com/alienxs2/tilemon/internal/metrics"
)

// TickMsg drives one sample-and-redraw cycle.
type TickMsg time.Time

// tickRand adds jitter to polling intervals. Safe here because tick()
// is only called from the single-threaded Bubble Tea event loop.
var tickRand = rand.New(rand.NewSource(time.Now().UnixNano()))

func tick(interval time.Duration) tea.Cmd {
	// Jitter ±10% so repeated ticks do not phase-lock with other pollers.
	jitter := time.Duration(0)
	if ms := int(interval.Milliseconds() / 10); ms > 0 {
		jitter = time.Duration(tickRand.Intn(2*ms)-ms) * time.Millisecond
	}
	return tea.Tick(interval+jitter, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Recorder receives every snapshot; the optional telemetry store
// implements it.
type Recorder interface {
	Record(snap *metrics.Snapshot)
}

// RootModel owns the whole dashboard: the provider, the tiles, theme
// and layout state, and the write-through settings store.
type RootModel struct {
	provider metrics.Provider
	settings *config.Settings
	history  *metrics.History
	recorder Recorder

	snap   *metrics.Snapshot
	tiles  map[metrics.MetricID]*Tile
	theme  int
	layout Layout

	selected int
	keys     keyMap
	footer   FooterModel

	width, height int
}

// NewRootModel builds the dashboard from persisted settings. Unknown
// theme, layout, or mode names in the settings file fall back to
// defaults rather than failing.
func NewRootModel(provider metrics.Provider, settings *config.Settings, recorder Recorder) RootModel {
	layout, ok := ParseLayout(settings.Layout)
	if !ok {
		log.Debug().Str("layout", settings.Layout).Msg("unknown layout in settings")
	}

	globalMode, _ := ParseMode(settings.Mode)
	tiles := make(map[metrics.MetricID]*Tile, len(metrics.AllMetrics))
	for _, id := range metrics.AllMetrics {
		mode := globalMode
		if m, ok := ParseMode(settings.TileMode(string(id))); ok {
			mode = m
		}
		tiles[id] = &Tile{ID: id, Mode: mode}
	}

	keys := defaultKeyMap()
	return RootModel{
		provider: provider,
		settings: settings,
		history:  metrics.NewHistory(metrics.DefaultHistorySize),
		recorder: recorder,
		tiles:    tiles,
		theme:    ThemeIndex(settings.Theme),
		layout:   layout,
		keys:     keys,
		footer:   NewFooterModel(keys),
	}
}

func (m RootModel) interval() time.Duration {
	return time.Duration(m.settings.EffectiveIntervalMS()) * time.Millisecond
}

func (m RootModel) Init() tea.Cmd {
	// Sample immediately so the tiles show data before the first full
	// interval elapses.
	return func() tea.Msg { return TickMsg(time.Now()) }
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		snap, err := m.provider.Snapshot()
		if err == nil {
			m.snap = snap
			m.history.Push(snap)
			if m.recorder != nil {
				m.recorder.Record(snap)
			}
		} else {
			log.Debug().Err(err).Msg("snapshot failed, keeping stale values")
		}
		for _, t := range m.tiles {
			t.Advance()
		}
		return m, tick(m.interval())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.footer.SetSize(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m RootModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	order := m.order()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextTile):
		m.selected = (m.selected + 1) % len(order)

	case key.Matches(msg, m.keys.PrevTile):
		m.selected = (m.selected + len(order) - 1) % len(order)

	case key.Matches(msg, m.keys.CycleMode):
		m.cycleTileMode(order[m.selected])

	case key.Matches(msg, m.keys.ResetMode):
		id := order[m.selected]
		m.settings.SetTileMode(string(id), m.settings.Mode)
		mode, _ := ParseMode(m.settings.Mode)
		m.tiles[id].Mode = mode

	case key.Matches(msg, m.keys.SwapLeft):
		if m.selected > 0 {
			m.swapTiles(order, m.selected, m.selected-1)
			m.selected--
		}

	case key.Matches(msg, m.keys.SwapRight):
		if m.selected < len(order)-1 {
			m.swapTiles(order, m.selected, m.selected+1)
			m.selected++
		}

	case key.Matches(msg, m.keys.Layout):
		m.layout = m.layout.Next()
		m.settings.Layout = m.layout.String()
		m.settings.Save()
		if n := len(m.order()); m.selected >= n {
			m.selected = n - 1
		}

	case key.Matches(msg, m.keys.Theme):
		m.theme = (m.theme + 1) % len(Themes)
		m.settings.Theme = Themes[m.theme].Name
		m.settings.Save()

	case key.Matches(msg, m.keys.Autostart):
		if err := m.settings.SetAutostart(!m.settings.Autostart); err != nil {
			log.Warn().Err(err).Msg("autostart toggle failed")
		}

	case key.Matches(msg, m.keys.Help):
		m.footer.ToggleFull()
	}
	return m, nil
}

func (m RootModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	idx, ok := m.hitTest(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.selected = idx
	m.cycleTileMode(m.order()[idx])
	return m, nil
}

// cycleTileMode advances a tile's mode and writes it through to disk.
func (m *RootModel) cycleTileMode(id metrics.MetricID) {
	t := m.tiles[id]
	t.CycleMode()
	m.settings.SetTileMode(string(id), t.Mode.String())
}

func (m *RootModel) swapTiles(order []metrics.MetricID, i, j int) {
	m.settings.SwapTiles(
		m.layout.String(),
		orderNames(m.layout.DefaultOrder()),
		string(order[i]), string(order[j]),
	)
}

// order returns the visible tiles for the current layout, honoring any
// persisted reordering.
func (m RootModel) order() []metrics.MetricID {
	def := m.layout.DefaultOrder()
	stored := m.settings.TileOrder(m.layout.String(), orderNames(def))
	return resolveOrder(stored, def)
}

// hitTest maps terminal coordinates to a tile index. Row 0 is the
// header; tiles start below it on a fixed-size grid.
func (m RootModel) hitTest(x, y int) (int, bool) {
	if y < 1 {
		return 0, false
	}
	cols := m.layout.Columns()
	col := x / tileOuterWidth
	row := (y - 1) / tileOuterHeight
	if col >= cols {
		return 0, false
	}
	idx := row*cols + col
	if idx >= len(m.order()) {
		return 0, false
	}
	return idx, true
}

func (m RootModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	th := Themes[m.theme]
	order := m.order()

	// Header: title left, device and layout info right.
	title := th.TitleStyle().Render("⚡ tilemon")
	info := m.layout.String() + " · " + th.Name
	if m.snap != nil && m.snap.GPUName != "" {
		info = m.snap.GPUName + " · " + info
	}
	infoView := th.MutedStyle().Render(info)
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(infoView)
	if gap < 1 {
		gap = 1
	}
	header := title + strings.Repeat(" ", gap) + infoView

	// Tile grid.
	cols := m.layout.Columns()
	var rows []string
	for start := 0; start < len(order); start += cols {
		end := start + cols
		if end > len(order) {
			end = len(order)
		}
		var views []string
		for i := start; i < end; i++ {
			id := order[i]
			views = append(views, m.tiles[id].View(th, m.snap.Get(id), m.history.Last(id, tileInnerWidth), i == m.selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, views...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return lipgloss.JoinVertical(lipgloss.Left, header, grid, m.footer.View(th))
}
