// Package config persists user preferences as a flat key=value file and
// manages the desktop autostart entry.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	appDirName      = "tilemon"
	settingsName    = "config.properties"
	defaultInterval = 1000 // milliseconds
)

// Settings holds everything the user can change at runtime. Only
// cosmetic preferences live here; metric values are never persisted.
type Settings struct {
	Theme      string
	Layout     string
	Mode       string // global default visualization mode
	Autostart  bool
	IntervalMS int
	TileModes  map[string]string   // per-tile override, keyed by tile name
	TileOrders map[string][]string // per-layout tile order, keyed by layout name

	path       string
	overrideMS int // transient CLI override, never written to disk
}

// Default returns the built-in settings, used at first run and whenever
// the settings file is missing or unreadable.
func Default() *Settings {
	return &Settings{
		Theme:      "health",
		Layout:     "compact",
		Mode:       "bar",
		Autostart:  false,
		IntervalMS: defaultInterval,
		TileModes:  make(map[string]string),
		TileOrders: make(map[string][]string),
	}
}

// DefaultPath returns the per-user settings file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, appDirName, settingsName)
}

// Load reads settings from path. Any failure falls back to defaults:
// a missing or corrupt file is a normal condition, not an error.
func Load(path string) *Settings {
	s := Default()
	s.path = path

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("properties")
	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			log.Warn().Err(err).Str("path", path).Msg("settings unreadable, using defaults")
		}
		return s
	}

	if t := v.GetString("theme"); t != "" {
		s.Theme = t
	}
	if l := v.GetString("layout"); l != "" {
		s.Layout = l
	}
	if m := v.GetString("mode"); m != "" {
		s.Mode = m
	}
	if v.IsSet("autostart") {
		s.Autostart = v.GetBool("autostart")
	}
	if ms := v.GetInt("interval_ms"); ms > 0 {
		s.IntervalMS = ms
	}
	for _, key := range v.AllKeys() {
		switch {
		case strings.HasPrefix(key, "tile_"):
			if mode := v.GetString(key); mode != "" {
				s.TileModes[strings.TrimPrefix(key, "tile_")] = mode
			}
		case strings.HasPrefix(key, "order_"):
			if order := v.GetString(key); order != "" {
				s.TileOrders[strings.TrimPrefix(key, "order_")] = strings.Split(order, ",")
			}
		}
	}
	return s
}

// Save writes the settings back to disk synchronously. Preferences are
// cosmetic, so failures are logged and otherwise ignored.
func (s *Settings) Save() {
	if s.path == "" {
		s.path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		log.Warn().Err(err).Msg("cannot create settings directory")
		return
	}

	v := viper.New()
	v.SetConfigType("properties")
	v.Set("theme", s.Theme)
	v.Set("layout", s.Layout)
	v.Set("mode", s.Mode)
	v.Set("autostart", s.Autostart)
	v.Set("interval_ms", s.IntervalMS)

	// Deterministic key order keeps the file diffable.
	tiles := make([]string, 0, len(s.TileModes))
	for name := range s.TileModes {
		tiles = append(tiles, name)
	}
	sort.Strings(tiles)
	for _, name := range tiles {
		v.Set("tile_"+name, s.TileModes[name])
	}
	layouts := make([]string, 0, len(s.TileOrders))
	for name := range s.TileOrders {
		layouts = append(layouts, name)
	}
	sort.Strings(layouts)
	for _, name := range layouts {
		v.Set("order_"+name, strings.Join(s.TileOrders[name], ","))
	}

	if err := v.WriteConfigAs(s.path); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("cannot write settings")
	}
}

// SetIntervalOverride applies a poll interval for this run only. The
// persisted interval_ms key keeps its stored value.
func (s *Settings) SetIntervalOverride(ms int) {
	s.overrideMS = ms
}

// EffectiveIntervalMS returns the poll interval to use, preferring a
// transient override over the persisted value.
func (s *Settings) EffectiveIntervalMS() int {
	if s.overrideMS > 0 {
		return s.overrideMS
	}
	return s.IntervalMS
}

// TileMode returns the visualization mode for a tile, falling back to
// the global default when the tile has no override.
func (s *Settings) TileMode(tile string) string {
	if mode, ok := s.TileModes[tile]; ok {
		return mode
	}
	return s.Mode
}

// SetTileMode records a per-tile mode. Setting a tile back to the global
// default removes the override, matching first-run behavior.
func (s *Settings) SetTileMode(tile, mode string) {
	if mode == s.Mode {
		delete(s.TileModes, tile)
	} else {
		s.TileModes[tile] = mode
	}
	s.Save()
}

// TileOrder returns the stored tile order for layout, or fallback when
// none has been customized.
func (s *Settings) TileOrder(layout string, fallback []string) []string {
	if order, ok := s.TileOrders[layout]; ok {
		return order
	}
	return fallback
}

// SwapTiles exchanges two tiles in the order for layout and persists it.
func (s *Settings) SwapTiles(layout string, fallback []string, a, b string) {
	order := append([]string(nil), s.TileOrder(layout, fallback)...)
	ia, ib := -1, -1
	for i, name := range order {
		switch name {
		case a:
			ia = i
		case b:
			ib = i
		}
	}
	if ia < 0 || ib < 0 {
		return
	}
	order[ia], order[ib] = order[ib], order[ia]
	s.TileOrders[layout] = order
	s.Save()
}
