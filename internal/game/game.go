package game

import (
	"github.com/vovakirdan/room-twice/internal/config"
	"github.com/vovakirdan/room-twice/internal/core"
	"github.com/vovakirdan/room-twice/internal/levels"
)

// Game owns the simulation state and processes one input event at a time.
type Game struct {
	levels   Levels
	cfg      config.RoomConfig
	messages Messages
	state    State
}

// New creates a game over the given level table, starting in the initial
// state. Empty messages fall back to DefaultMessages.
func New(lv Levels, cfg config.RoomConfig, msgs Messages) *Game {
	def := DefaultMessages()
	if msgs.Intro == "" {
		msgs.Intro = def.Intro
	}
	if msgs.Pause == "" {
		msgs.Pause = def.Pause
	}
	if msgs.Ending == "" {
		msgs.Ending = def.Ending
	}

	g := &Game{
		levels:   lv,
		cfg:      cfg,
		messages: msgs,
	}
	g.state = g.InitialState()
	return g
}

// NewFromSet creates a game for a level pack, using its intro and ending.
func NewFromSet(set *levels.Set, cfg config.RoomConfig) *Game {
	return New(set, cfg, Messages{Title: set.Title, Intro: set.Intro, Ending: set.Ending})
}

// State returns the current state. The slices are shared with the game
// and must be treated as read-only; use Clone to keep a copy.
func (g *Game) State() State {
	return g.state
}

// Config returns the tuning the game runs with.
func (g *Game) Config() config.RoomConfig {
	return g.cfg
}

// Levels returns the level table.
func (g *Game) Levels() Levels {
	return g.levels
}

// Update processes one input event and returns the action it executed.
func (g *Game) Update(ev core.RawInputEvent) Action {
	a := g.handle(ev)
	g.execute(a)
	return a
}

// ReleaseKey records a key release without dispatching it, so it cannot
// dismiss a message. Hosts use it for releases they only infer.
func (g *Game) ReleaseKey(d core.Dir) {
	g.state.Player.Release(d)
}

// handle turns an input event into at most one action.
func (g *Game) handle(ev core.RawInputEvent) Action {
	s := &g.state

	// Key state is tracked even while paused, so a key released during a
	// message is not stuck afterwards.
	if d, ok := ev.PressedDir(); ok {
		s.Player.Press(d)
	}
	released, isRelease := ev.ReleasedDir()
	if isRelease {
		s.Player.Release(released)
	}

	if s.Paused() {
		if s.Frozen {
			return NoAction
		}
		if ev.Kind == core.InputPressPause || ev.Kind == core.InputPressAnyKey || isRelease {
			return Action{Kind: ActionUnpause}
		}
		return NoAction
	}

	switch ev.Kind {
	case core.InputTimePasses:
		return g.tick(ev.DT)
	case core.InputPressPause:
		return Action{Kind: ActionPause}
	}
	if d, ok := ev.PressedDir(); ok {
		return g.initiateMove(d)
	}
	return NoAction
}

// tick advances time and runs swarm, corpses, player and collision, in
// that order. A collision overrides whatever the player did.
func (g *Game) tick(dt core.Seconds) Action {
	s := &g.state
	s.Time += dt

	g.updateSpinies()
	s.Corpses.Expire(s.Time, g.cfg.Corpse.FadeOut)
	a := g.updatePlayer()

	if fpos, hit := g.playerHit(); hit {
		return Die(fpos)
	}
	return a
}

// playerHit tests the player's drawn rectangle against every enabled
// spiny's, both shrunk by the collision margin.
func (g *Game) playerHit() (core.FPos, bool) {
	s := &g.state
	margin := g.cfg.Collision.Margin

	fpos := g.PlayerFPos(s.Player.Pos, s.Time)
	rect := core.CellRect(fpos, margin)

	for _, sp := range s.Spinies {
		if !sp.Enabled {
			continue
		}
		spRect := core.CellRect(sp.FPos(s.SpiniesMovingSince, s.Time, g.cfg.Spiny.Speed), margin)
		if rect.Intersects(spRect) {
			return fpos, true
		}
	}
	return core.FPos{}, false
}

// execute applies an action to the state.
func (g *Game) execute(a Action) {
	s := &g.state

	switch a.Kind {
	case ActionMove:
		s.Player.Pos = MovingSince(a.Pos, a.Dir, s.Time)
		s.Player.BufferedDir = OptDir{}

	case ActionReadSign:
		s.Message = a.Text

	case ActionDie:
		s.Corpses.Enqueue(a.FPos, s.Time)
		s.Deaths++
		s.HasNextLevel = false
		s.NextLevel = 0
		// Respawn through the door the level was entered by.
		s.Player.Pos = MovingInUntil(s.PreviousLevel, s.LevelNumber, s.Time)

	case ActionPreviousLevel:
		s.Player.Pos = MovingOutSince(s.LevelNumber, s.LevelNumber-1, s.Time)
		s.Player.BufferedDir = OptDir{}
		s.NextLevel = s.LevelNumber - 1
		s.HasNextLevel = true

	case ActionNextLevel:
		s.Player.Pos = MovingOutSince(s.LevelNumber, s.LevelNumber+1, s.Time)
		s.Player.BufferedDir = OptDir{}
		s.NextLevel = s.LevelNumber + 1
		s.HasNextLevel = true

	case ActionTransitionLevel:
		g.transition(a.Src, a.Dst)

	case ActionPause:
		s.Message = g.messages.Pause

	case ActionUnpause:
		s.Message = ""
	}
}
