package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/room-twice/internal/game"
	"github.com/vovakirdan/room-twice/internal/registry"
	"github.com/vovakirdan/room-twice/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all level packs",
	Long: `Shows the built-in packs and the ones found in ~/.roomtwice/levels,
with the number of finished runs and the best one so far.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	packs := registry.List()

	if len(packs) == 0 {
		fmt.Println("No level packs available.")
		return
	}

	var stats map[string]*storage.PackStats
	if store := openStore(); store != nil {
		var err error
		if stats, err = store.Stats(); err != nil {
			stderr.Warn("could not read run statistics", "err", err)
		}
		store.Close()
	}

	fmt.Println("Available level packs:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %-6s  %-24s  %s\n", maxIDLen, "ID", "Levels", "Runs", "Title")
	fmt.Printf("  %-*s  %-6s  %-24s  %s\n", maxIDLen, "--", "------", "----", "-----")

	for _, p := range packs {
		fmt.Printf("  %-*s  %-6d  %-24s  %s\n", maxIDLen, p.ID, p.Levels, statsColumn(stats[p.ID]), p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'roomtwice play <id>' to play a pack.")
}

// statsColumn summarizes a pack's runs. The fewest deaths and the best
// time may come from different runs.
func statsColumn(ps *storage.PackStats) string {
	if ps == nil || ps.Runs == 0 {
		return "-"
	}
	return fmt.Sprintf("%d (%d deaths, %s)", ps.Runs, ps.BestDeaths, game.FormatClock(ps.BestTime))
}
