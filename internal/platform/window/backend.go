// Package window runs the game in a desktop window using ebiten.
package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/alien-dash/internal/assets"
	"github.com/vovakirdan/alien-dash/internal/core"
	"github.com/vovakirdan/alien-dash/internal/games/dash"
	"github.com/vovakirdan/alien-dash/internal/registry"
)

func init() {
	registry.Register("window", func() registry.Backend { return &Backend{} })
}

// Backend is the desktop window backend.
type Backend struct{}

// ID returns "window".
func (b *Backend) ID() string {
	return "window"
}

// Title returns the display name.
func (b *Backend) Title() string {
	return "Desktop window (ebiten)"
}

// Run loads every asset, opens the window and blocks until it is closed.
func (b *Backend) Run(opts registry.Options) error {
	cfg := opts.Config
	logger := opts.Logger

	fsys := assets.Open(cfg.Assets.Dir)
	images, err := LoadImages(fsys, cfg.Assets.Manifest)
	if err != nil {
		return err
	}
	sounds, err := LoadSounds(fsys, cfg.Assets.Manifest, cfg.Audio, logger)
	if err != nil {
		return err
	}
	defer sounds.Close()

	face, err := NewFace()
	if err != nil {
		return fmt.Errorf("window: load font: %w", err)
	}
	logger.Debug("assets loaded", "dir", cfg.Assets.Dir)

	clock := core.NewSystemClock()
	game := dash.New(dash.Deps{
		Atlas:       images,
		Audio:       sounds,
		Clock:       clock,
		Logger:      logger,
		MusicVolume: cfg.Audio.MusicVolume,
	})
	game.Reset(opts.Runtime)

	scale := max(cfg.Window.Scale, 1)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(dash.ScreenW*scale, dash.ScreenH*scale)
	ebiten.SetTPS(dash.TickRate)
	ebiten.SetWindowClosingHandled(true)

	// Update returning ebiten.Termination makes RunGame return nil.
	err = ebiten.RunGame(&ebitenGame{
		game:   game,
		clock:  clock,
		timer:  core.NewIntervalTimer(dash.SpawnInterval, core.ActionSpawnTick),
		images: images,
		face:   face,
	})
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	logger.Info("window closed", "runs", game.State().Runs)
	return nil
}
