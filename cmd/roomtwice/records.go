package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/room-twice/internal/game"
	"github.com/vovakirdan/room-twice/internal/levels/builtin"
	"github.com/vovakirdan/room-twice/internal/platform/tui"
	"github.com/vovakirdan/room-twice/internal/registry"
	"github.com/vovakirdan/room-twice/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var recordsCmd = &cobra.Command{
	Use:   "records [pack]",
	Short: "Show the best runs of a level pack",
	Long: `Display the best finished runs: fewest deaths first, then fastest.

Examples:
  roomtwice records
  roomtwice records classic --plain
  roomtwice records classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the top 10 instead of opening the records screen")
	recordsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs of the pack")
}

func runRecords(_ *cobra.Command, args []string) error {
	id := builtin.ClassicID
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return fmt.Errorf("unknown level pack %q (run 'roomtwice list' to see available packs)", id)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening records database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(id); err != nil {
			return err
		}
		fmt.Printf("Cleared all runs of %s.\n", id)
		return nil
	}

	if !flagPlain {
		cfg := runtimeConfig()
		_, err := tui.RunRecords(store, id, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	runs, err := store.TopRuns(id, 10)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("Best Runs - %s\n", id)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No finished runs yet.")
		fmt.Println()
		fmt.Printf("Play 'roomtwice play %s' and reach the last door!\n", id)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "Rank", "Deaths", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "----", "------", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-8s  %s\n", i+1, r.Deaths, game.FormatClock(r.Seconds), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	best, err := store.BestRun(id)
	if err != nil {
		return fmt.Errorf("retrieving best run: %w", err)
	}
	fmt.Println(bestLine(best))
	return nil
}

// bestLine describes the best run of a pack.
func bestLine(best *storage.RunEntry) string {
	if best == nil {
		return "Best: none yet"
	}
	return fmt.Sprintf("Best: %d deaths in %s", best.Deaths, game.FormatClock(best.Seconds))
}
