package game

import (
	"github.com/vovakirdan/room-twice/internal/core"
	"github.com/vovakirdan/room-twice/internal/levels"
)

// TemporaryWall is a wall that exists only while its lifetime contains the
// current level. While alive it blocks exactly like a permanent wall.
type TemporaryWall struct {
	Pos      core.Pos
	Lifetime levels.Lifetime
}

// State is the root aggregate, owned by Game. Entities are values; level
// transitions replace the spiny and wall slices wholesale.
type State struct {
	Time core.Seconds

	// A non-empty Message pauses the game until dismissed.
	Message string
	// Frozen is set once the last level is passed; nothing unpauses it.
	Frozen bool

	LevelNumber   int
	PreviousLevel int
	NextLevel     int
	HasNextLevel  bool

	Player  Player
	Corpses Corpses

	// SpiniesMovingSince is the shared step anchor of all spinies.
	SpiniesMovingSince core.Seconds
	Spinies            []MovingSpiny
	TemporaryWalls     []TemporaryWall

	Deaths int
}

// Paused reports whether a message is being shown.
func (s State) Paused() bool {
	return s.Message != ""
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	s.Corpses = append(Corpses(nil), s.Corpses...)
	s.Spinies = append([]MovingSpiny(nil), s.Spinies...)
	s.TemporaryWalls = append([]TemporaryWall(nil), s.TemporaryWalls...)
	return s
}

// InitialState returns the state a new run starts in: the intro message is
// shown and the player stands in the left door of the first level, as if
// just arrived from the level before it.
func (g *Game) InitialState() State {
	first := g.levels.MinLevel()
	left, _ := g.levels.Doors(first)

	s := State{
		Message:       g.messages.Intro,
		LevelNumber:   first,
		PreviousLevel: first - 1,
		Player:        Player{Pos: Idle(left)},
	}

	for _, e := range g.levels.Entities(first) {
		addEntity(&s, e)
	}
	Occupy(s.Spinies)
	g.bounceSpinies(&s, 0)

	return s
}

// addEntity appends a level entity to the state.
func addEntity(s *State, e levels.Entity) {
	switch e.Kind {
	case levels.EntitySpiny:
		s.Spinies = append(s.Spinies, MovingSpiny{
			Pos:      e.Pos,
			Dir:      e.Dir,
			Lifetime: e.Lifetime,
			Enabled:  true,
		})
	case levels.EntityWall:
		s.TemporaryWalls = append(s.TemporaryWalls, TemporaryWall{
			Pos:      e.Pos,
			Lifetime: e.Lifetime,
		})
	}
}
