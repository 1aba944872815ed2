package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-dash/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List all available backends",
	Long:  `Shows the displays the game can run on.`,
	Args:  cobra.NoArgs,
	Run:   runBackends,
}

func runBackends(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	list := registry.List()

	if len(list) == 0 {
		fmt.Fprintln(out, "No backends available.")
		return
	}

	fmt.Fprintln(out, "Available backends:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, b := range list {
		maxIDLen = max(maxIDLen, len(b.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, b := range list {
		marker := ""
		if b.ID == cfg.Backend {
			marker = " (default)"
		}
		fmt.Fprintf(out, "  %-*s  %s%s\n", maxIDLen, b.ID, b.Title, marker)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'alien-dash play --backend <id>' to pick one.")
}
