// roomtwice is a terminal rendition of the arcade puzzle "I've Seen This
// Room Twice Already".
//
// Usage:
//
//	roomtwice list               - List available level packs
//	roomtwice play [pack]        - Play a pack (default: classic)
//	roomtwice menu               - Pick packs interactively
//	roomtwice records [pack]     - Show the best runs of a pack
//	roomtwice check <file>       - Validate a level pack file
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.roomtwice/records.db)
//	--log <path>    - Append a debug log of the run to a file
package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/room-twice/internal/config"
	"github.com/vovakirdan/room-twice/internal/levels"
	_ "github.com/vovakirdan/room-twice/internal/levels/builtin"
	"github.com/vovakirdan/room-twice/internal/platform/tui"
	"github.com/vovakirdan/room-twice/internal/registry"
	"github.com/vovakirdan/room-twice/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagLogPath string
	flagDebug   bool
)

// stderr carries warnings that should reach the user before the TUI starts.
var stderr = log.NewWithOptions(os.Stderr, log.Options{Prefix: "roomtwice"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		stderr.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roomtwice",
	Short: "I've Seen This Room Twice Already, in your terminal",
	Long: `A small arcade puzzle: walk from the left door to the right door
while spinies bounce around the room. Every level is the same room,
a little different each time. Die and you leave a corpse behind.

Available commands:
  list     - Show all level packs
  play     - Play a pack directly
  menu     - Interactive pack picker
  records  - View the best runs
  check    - Validate a level pack file

Examples:
  roomtwice play
  roomtwice play classic --fps 30
  roomtwice play --levels ./mine.yaml
  roomtwice records classic --plain`,
	SilenceUsage:      true,
	PersistentPreRunE: registerUserPacks,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.roomtwice/records.db", "Path to records database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Append a log of the run to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log every action, not just transitions")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(checkCmd)
}

// registerUserPacks adds the packs found in ~/.roomtwice/levels to the
// registry. Broken files are reported and skipped.
func registerUserPacks(_ *cobra.Command, _ []string) error {
	dir := config.UserPath("levels")
	if dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); err != nil {
		return nil
	}

	loader := levels.NewLoader(dir)
	loader.OnSkip = func(path string, err error) {
		stderr.Warn("skipping level pack", "path", path, "err", err)
	}

	sets, err := loader.LoadAll()
	if err != nil {
		stderr.Warn("could not scan level packs", "dir", dir, "err", err)
		return nil
	}
	for _, set := range sets {
		if err := registry.Add(set, loader.Root); err != nil {
			stderr.Warn("skipping level pack", "id", set.ID, "err", err)
		}
	}
	return nil
}

// openStore opens the records database. The game still works without
// one, so failures are only warned about.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		stderr.Warn("could not open records database", "err", err)
		return nil
	}
	return store
}

// openLogger returns the run logger and a function closing its file.
// Without --log the run is not logged at all.
func openLogger() (*log.Logger, func()) {
	if flagLogPath == "" {
		return tui.NewLogger(io.Discard, log.InfoLevel), func() {}
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		stderr.Warn("could not open log file", "path", flagLogPath, "err", err)
		return tui.NewLogger(io.Discard, log.InfoLevel), func() {}
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	return tui.NewLogger(f, level), func() { f.Close() }
}

// saver and lister keep a missing store a nil interface rather than a
// typed nil pointer.
func saver(store *storage.Store) tui.RunSaver {
	if store == nil {
		return nil
	}
	return store
}

func lister(store *storage.Store) tui.RunLister {
	if store == nil {
		return nil
	}
	return store
}
