package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-dash/internal/assets"
)

var flagAssetsDir string

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Validate the asset files",
	Long: `Checks every sprite and sound named by the asset manifest: images must
decode and sounds must be WAV or Ogg. Without --dir the configured directory is
used, or the built-in assets when none is configured.

Examples:
  alien-dash assets
  alien-dash assets --dir ./my-art`,
	Args: cobra.NoArgs,
	RunE: runAssets,
}

func init() {
	assetsCmd.Flags().StringVar(&flagAssetsDir, "dir", "", "Asset directory to check (default from config)")
}

func runAssets(cmd *cobra.Command, args []string) error {
	dir := cfg.Assets.Dir
	if flagAssetsDir != "" {
		dir = flagAssetsDir
	}
	where := dir
	if where == "" {
		where = "built-in"
	}

	entries, err := assets.Check(assets.Open(dir), cfg.Assets.Manifest)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Assets (%s):\n\n", where)
	for _, e := range entries {
		fmt.Fprintf(out, "  %-6s  %-14s  %-28s  %s\n", e.Kind, e.Name, e.Path, e.Detail)
	}
	fmt.Fprintln(out)

	if err != nil {
		return fmt.Errorf("asset check failed: %w", err)
	}
	fmt.Fprintf(out, "All %d assets OK.\n", len(entries))
	return nil
}
