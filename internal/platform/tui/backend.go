package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/alien-dash/internal/assets"
	"github.com/vovakirdan/alien-dash/internal/config"
	"github.com/vovakirdan/alien-dash/internal/core"
	"github.com/vovakirdan/alien-dash/internal/games/dash"
	"github.com/vovakirdan/alien-dash/internal/registry"
)

// ErrNotTerminal is returned when stdout is not a terminal.
var ErrNotTerminal = errors.New("tui: stdout is not a terminal")

func init() {
	registry.Register("tui", func() registry.Backend { return &Backend{} })
}

// Backend is the terminal backend.
type Backend struct{}

// ID returns "tui".
func (b *Backend) ID() string {
	return "tui"
}

// Title returns the display name.
func (b *Backend) Title() string {
	return "Terminal (Bubble Tea)"
}

// Run validates the asset manifest, redirects logging to a file and runs the
// game until the player quits.
func (b *Backend) Run(opts registry.Options) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}

	cfg := opts.Config
	logger := opts.Logger

	// The grid needs no pixels, but a broken manifest still fails here so
	// both backends reject the same configurations.
	if _, err := assets.Check(assets.Open(cfg.Assets.Dir), cfg.Assets.Manifest); err != nil {
		return err
	}

	logPath := cfg.Log.File
	if logPath == "" {
		logPath = config.DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("tui: create log directory: %w", err)
	}
	// The alternate screen owns stdout, so logging moves to the file.
	f, err := tea.LogToFileWith(logPath, "alien-dash", logger)
	if err != nil {
		return fmt.Errorf("tui: open log file: %w", err)
	}
	defer f.Close()

	if w, h, err := term.GetSize(fd); err == nil && (w < Cols || h < Rows+1) {
		logger.Warn("terminal smaller than the viewport", "width", w, "height", h)
	}

	clock := core.NewSystemClock()
	game := dash.New(dash.Deps{
		Atlas:       assets.NativeSizes{},
		Audio:       logAudio{logger: logger},
		Clock:       clock,
		Logger:      logger,
		MusicVolume: cfg.Audio.MusicVolume,
	})

	p := tea.NewProgram(
		NewModel(game, clock, opts.Runtime),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	logger.Info("terminal closed", "runs", game.State().Runs)
	return nil
}
