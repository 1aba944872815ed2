package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-dash/internal/core"
	"github.com/vovakirdan/alien-dash/internal/registry"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Alien Dash",
	Long: `Start the game in a desktop window or in the terminal.

Controls:
  Space      - Start a run / jump (terminal: also Up, W)
  Close      - Quit (terminal: Q, Esc, Ctrl+C)

Examples:
  alien-dash play
  alien-dash play --backend tui
  alien-dash play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "", "Backend: window or tui (default from config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	id := cfg.Backend
	if flagBackend != "" {
		id = flagBackend
	}
	if !registry.Exists(id) {
		return fmt.Errorf("unknown backend %q, run 'alien-dash backends' to see the list", id)
	}

	backend, err := registry.Create(id)
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	logger.Info("starting", "backend", id, "seed", rt.Seed, "config", cfgSource)
	return backend.Run(registry.Options{
		Config:  cfg,
		Runtime: rt,
		Logger:  logger,
	})
}
