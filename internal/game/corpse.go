package game

import "github.com/vovakirdan/room-twice/internal/core"

// Corpse marks where the player died. It fades out and is then removed.
type Corpse struct {
	FPos core.FPos
	T0   core.Seconds
}

// Corpses is a FIFO of corpses in non-decreasing T0 order, so only the
// head ever needs checking for expiry.
type Corpses []Corpse

// Enqueue appends a corpse.
func (q *Corpses) Enqueue(fpos core.FPos, t core.Seconds) {
	*q = append(*q, Corpse{FPos: fpos, T0: t})
}

// Expire pops every corpse at the head whose fade-out has finished at t.
func (q *Corpses) Expire(t, fadeOut core.Seconds) {
	for len(*q) > 0 && t >= (*q)[0].T0+fadeOut {
		*q = (*q)[1:]
	}
}

// Alpha returns the remaining opacity of a corpse at t, from 1 down to 0.
func (c Corpse) Alpha(t, fadeOut core.Seconds) float64 {
	if fadeOut <= 0 {
		return 0
	}
	a := 1 - (t-c.T0)/fadeOut
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
