package game

// transition moves the game from level src to level dst. It only runs
// while the swarm is grid-aligned.
//
// Spinies and walls alive at dst are kept; entities of dst that were not
// alive at src are added; the merged swarm then goes through the occupancy
// pass and a boundary bounce pass. Leaving the first level backwards
// restarts the run, leaving the last level forwards ends it.
func (g *Game) transition(src, dst int) {
	s := &g.state

	if dst < g.levels.MinLevel() {
		g.state = g.InitialState()
		return
	}

	if dst > g.levels.MaxLevel() {
		_, right := g.levels.Doors(src)
		s.Message = g.messages.Ending
		s.Frozen = true
		s.HasNextLevel = false
		s.NextLevel = 0
		s.Player.Pos = Idle(right)
		return
	}

	s.LevelNumber = dst
	s.PreviousLevel = src
	s.HasNextLevel = false
	s.NextLevel = 0

	spinies := make([]MovingSpiny, 0, len(s.Spinies))
	for _, sp := range s.Spinies {
		if sp.Lifetime.Contains(dst) {
			spinies = append(spinies, sp)
		}
	}
	walls := make([]TemporaryWall, 0, len(s.TemporaryWalls))
	for _, w := range s.TemporaryWalls {
		if w.Lifetime.Contains(dst) {
			walls = append(walls, w)
		}
	}
	s.Spinies = spinies
	s.TemporaryWalls = walls

	for _, e := range g.levels.Entities(dst) {
		if !e.Lifetime.Contains(src) {
			addEntity(s, e)
		}
	}

	Occupy(s.Spinies)
	g.bounceSpinies(s, 0)
}
