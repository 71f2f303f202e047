package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/room-twice/internal/config"
	"github.com/vovakirdan/room-twice/internal/core"
	"github.com/vovakirdan/room-twice/internal/game"
	"github.com/vovakirdan/room-twice/internal/levels"
	"github.com/vovakirdan/room-twice/internal/levels/builtin"
	"github.com/vovakirdan/room-twice/internal/platform/tui"
	"github.com/vovakirdan/room-twice/internal/registry"
)

var (
	flagConfig    string
	flagLevels    string
	flagLevelsDir string
)

var playCmd = &cobra.Command{
	Use:   "play [pack]",
	Short: "Play a level pack",
	Long: `Start playing the specified level pack, or the classic one.

Controls:
  Arrows/WASD/hjkl  - Walk
  P/Esc             - Pause
  Ctrl+S            - Screenshot
  Q/Ctrl+C          - Quit

Walk into the right door to go on, into the left door to go back.

Examples:
  roomtwice play
  roomtwice play classic --config ./fast.yaml
  roomtwice play --levels ./mine.yaml
  roomtwice play mine --levels-dir ./packs`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Play a level pack file instead of a registered pack")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Look the pack up by ID in this directory")
}

func runPlay(_ *cobra.Command, args []string) error {
	set, err := choosePack(args)
	if err != nil {
		return err
	}

	roomCfg, err := config.LoadRoom(flagConfig)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	logger, closeLog := openLogger()
	defer closeLog()

	g := game.NewFromSet(set, roomCfg)
	if err := tui.Run(g, set.ID, saver(store), logger, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// choosePack resolves --levels, --levels-dir or the pack argument.
func choosePack(args []string) (*levels.Set, error) {
	if flagLevels != "" {
		return levels.NewLoader("").LoadFile(flagLevels)
	}

	id := builtin.ClassicID
	if len(args) > 0 {
		id = args[0]
	}
	if flagLevelsDir != "" {
		return levels.NewLoader(flagLevelsDir).LoadByID(id)
	}
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown level pack %q (run 'roomtwice list' to see available packs)", id)
	}
	return registry.Load(id)
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}
