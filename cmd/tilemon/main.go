package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/alienxs2/tilemon/internal/config"
	"github.com/alienxs2/tilemon/internal/metrics"
	"github.com/alienxs2/tilemon/internal/telemetry"
	"github.com/alienxs2/tilemon/internal/ui"
)

var (
	flagMock     bool
	flagDebug    bool
	flagConfig   string
	flagRecord   string
	flagInterval int
)

var rootCmd = &cobra.Command{
	Use:   "tilemon",
	Short: "Tile-based system resource monitor",
	Long: "tilemon renders CPU, memory, GPU, disk and network activity as a\n" +
		"grid of tiles, each switchable between several visualization modes.",
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVar(&flagMock, "mock", false, "use simulated metrics instead of host sensors")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "log debug output to stderr")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "settings file path (default: user config dir)")
	rootCmd.Flags().StringVar(&flagRecord, "record", "", "record snapshots to a SQLite database at this path")
	rootCmd.Flags().IntVar(&flagInterval, "interval", 0, "poll interval in milliseconds (overrides settings)")
}

func run(cmd *cobra.Command, args []string) error {
	// The TUI owns stdout; logs go to stderr and are mostly useful
	// with --debug when the alternate screen is not hiding them.
	level := zerolog.WarnLevel
	if flagDebug {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	path := flagConfig
	if path == "" {
		path = config.DefaultPath()
	}
	settings := config.Load(path)
	if flagInterval > 0 {
		settings.SetIntervalOverride(flagInterval)
	}

	var provider metrics.Provider
	if flagMock {
		log.Info().Msg("using mock provider")
		provider = &metrics.MockProvider{}
	} else {
		provider = &metrics.RealProvider{}
	}
	if err := provider.Init(); err != nil {
		return fmt.Errorf("init metrics provider: %w", err)
	}
	defer provider.Shutdown()

	var recorder ui.Recorder
	if flagRecord != "" {
		repo, err := telemetry.NewRepository(flagRecord)
		if err != nil {
			return fmt.Errorf("open snapshot database: %w", err)
		}
		defer repo.Close()
		recorder = repo
	}

	root := ui.NewRootModel(provider, settings, recorder)
	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
