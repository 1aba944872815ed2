// alien-dash is a side-scrolling runner: jump over flies and slimes for as
// long as you can.
//
// Usage:
//
//	alien-dash play              - Play in the configured backend
//	alien-dash play --backend tui
//	alien-dash backends          - List available backends
//	alien-dash config            - Print the effective configuration
//	alien-dash assets            - Validate the asset files
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - RNG seed for reproducible obstacles
//	--log-level <name>  - debug, info, warn or error
package main

import (
	"os"

	_ "github.com/ebitengine/hideconsole"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-dash/internal/config"

	// Import backends to register them
	_ "github.com/vovakirdan/alien-dash/internal/platform/tui"
	_ "github.com/vovakirdan/alien-dash/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string

	// Set by loadConfig before any subcommand runs
	cfg       config.Config
	cfgSource string
	logger    = config.NewLogger(os.Stderr, "info")
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "alien-dash",
	Short: "Alien Dash - a side-scrolling runner",
	Long: `Alien Dash is a small runner game: the alien keeps running, you jump
over flies and slimes, and your score is the number of seconds you survive.

Available commands:
  play      - Start the game
  backends  - Show the available displays
  config    - Print the effective configuration
  assets    - Validate the asset files

Examples:
  alien-dash play
  alien-dash play --backend tui
  alien-dash assets --dir ./my-art
  alien-dash config --config ./alien-dash.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(assetsCmd)
}

// loadConfig resolves the configuration and applies the log level.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, cfgSource, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	lvl, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger.SetLevel(lvl)
	logger.Debug("config loaded", "source", cfgSource)
	return nil
}
