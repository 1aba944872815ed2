package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-dash/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration after the search order and defaults have been
applied, as YAML. The source is written as a comment on the first line.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if _, err := out.Write([]byte("# source: " + cfgSource + "\n")); err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
