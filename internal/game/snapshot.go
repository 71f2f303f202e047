package game

import "math"

// Snapshot contains the complete game state flattened to primitives, for
// determinism tests and logging.
type Snapshot struct {
	Time         float64
	Level        int
	Previous     int
	Next         int
	HasNext      bool
	Paused       bool
	Frozen       bool
	Deaths       int
	SpinyAnchor  float64
	CorpseCount  int
	KeysHeld     int // Bitmask in Up, Left, Down, Right order
	MostRecent   int // -1 if none
	Buffered     int // -1 if none
	PlayerMotion int

	// Player position is 6 values: X, Y, Dir, Src, Dst, T
	PlayerData []float64

	// Each spiny is 6 ints: X, Y, Dir, Min, Max, Enabled
	SpinyData []int

	// Each temporary wall is 4 ints: X, Y, Min, Max
	WallData []int
}

func optDirInt(o OptDir) int {
	if !o.OK {
		return -1
	}
	return int(o.Dir)
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := &g.state
	p := &s.Player

	keys := 0
	for i, held := range []bool{p.UpPressed, p.LeftPressed, p.DownPressed, p.RightPressed} {
		if held {
			keys |= 1 << i
		}
	}

	spinyData := make([]int, 0, len(s.Spinies)*6)
	for _, sp := range s.Spinies {
		enabled := 0
		if sp.Enabled {
			enabled = 1
		}
		spinyData = append(spinyData, sp.Pos.X, sp.Pos.Y, int(sp.Dir), sp.Lifetime.Min, sp.Lifetime.Max, enabled)
	}

	wallData := make([]int, 0, len(s.TemporaryWalls)*4)
	for _, w := range s.TemporaryWalls {
		wallData = append(wallData, w.Pos.X, w.Pos.Y, w.Lifetime.Min, w.Lifetime.Max)
	}

	return Snapshot{
		Time:         s.Time,
		Level:        s.LevelNumber,
		Previous:     s.PreviousLevel,
		Next:         s.NextLevel,
		HasNext:      s.HasNextLevel,
		Paused:       s.Paused(),
		Frozen:       s.Frozen,
		Deaths:       s.Deaths,
		SpinyAnchor:  s.SpiniesMovingSince,
		CorpseCount:  len(s.Corpses),
		KeysHeld:     keys,
		MostRecent:   optDirInt(p.MostRecentDir),
		Buffered:     optDirInt(p.BufferedDir),
		PlayerMotion: int(p.Pos.Motion),
		PlayerData: []float64{
			float64(p.Pos.Pos.X), float64(p.Pos.Pos.Y), float64(p.Pos.Dir),
			float64(p.Pos.Src), float64(p.Pos.Dst), p.Pos.T,
		},
		SpinyData: spinyData,
		WallData:  wallData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	b := func(v bool) uint64 {
		if v {
			return 1
		}
		return 0
	}
	i := func(v int) uint64 {
		return uint64(int64(v)) //#nosec G115 -- hash computation
	}

	h := math.Float64bits(snap.Time)
	h = h*31 + i(snap.Level)
	h = h*31 + i(snap.Previous)
	h = h*31 + i(snap.Next)
	h = h*31 + b(snap.HasNext)
	h = h*31 + b(snap.Paused)
	h = h*31 + b(snap.Frozen)
	h = h*31 + i(snap.Deaths)
	h = h*31 + math.Float64bits(snap.SpinyAnchor)
	h = h*31 + i(snap.CorpseCount)
	h = h*31 + i(snap.KeysHeld)
	h = h*31 + i(snap.MostRecent)
	h = h*31 + i(snap.Buffered)
	h = h*31 + i(snap.PlayerMotion)

	for _, v := range snap.PlayerData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.SpinyData {
		h = h*31 + i(v)
	}
	for _, v := range snap.WallData {
		h = h*31 + i(v)
	}

	return h
}
