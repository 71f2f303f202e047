package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/room-twice/internal/config"
	"github.com/vovakirdan/room-twice/internal/game"
	"github.com/vovakirdan/room-twice/internal/platform/tui"
	"github.com/vovakirdan/room-twice/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level pack interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a pack, Tab for the
best runs. After a run ends you return to the menu.

Examples:
  roomtwice menu
  roomtwice menu --fps 30`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	roomCfg, err := config.LoadRoom("")
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	logger, closeLog := openLogger()
	defer closeLog()

	cfg := runtimeConfig()
	lastPack := ""

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.ShowRecords {
			goBack, err := tui.RunRecords(lister(store), lastPack, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				stderr.Error("records screen failed", "err", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		set, err := registry.Load(result.PackID)
		if err != nil {
			stderr.Error("could not load pack", "id", result.PackID, "err", err)
			continue
		}
		lastPack = set.ID

		g := game.NewFromSet(set, roomCfg)
		if err := tui.Run(g, set.ID, saver(store), logger, cfg); err != nil {
			stderr.Error("run failed", "err", err)
		}
	}
}
