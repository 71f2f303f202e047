// Package builtin embeds the level packs shipped with the game and
// registers them on import.
package builtin

import (
	_ "embed"

	"github.com/vovakirdan/room-twice/internal/levels"
	"github.com/vovakirdan/room-twice/internal/registry"
)

// ClassicID is the ID of the default pack.
const ClassicID = "classic"

//go:embed classic.yaml
var classicYAML []byte

// Classic builds the default pack.
func Classic() (*levels.Set, error) {
	return levels.LoadYAML(classicYAML)
}

func init() {
	registry.Register(ClassicID, Classic)
}
