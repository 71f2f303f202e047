package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/room-twice/internal/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a level pack file",
	Long: `Parse a level pack and report the first problem found, with its
level, line and column.

Examples:
  roomtwice check ./mine.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(_ *cobra.Command, args []string) error {
	set, err := levels.NewLoader("").LoadFile(args[0])
	if err != nil {
		return err
	}

	w, h := set.Size()
	fmt.Printf("%s: ok, %q with %d levels of %dx%d\n", args[0], set.Title, set.Len(), w, h)
	return nil
}
