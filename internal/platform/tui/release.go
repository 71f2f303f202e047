package tui

import "github.com/vovakirdan/room-twice/internal/core"

// releaser synthesizes key releases. Terminals only report presses, and a
// held key shows up as a stream of auto-repeat presses; a direction counts
// as released once no press for it arrived for a while.
type releaser struct {
	after    core.Seconds
	now      core.Seconds
	held     [4]bool
	lastSeen [4]core.Seconds
}

func newReleaser(after core.Seconds) *releaser {
	return &releaser{after: after}
}

// Press records a press of d at the current host time.
func (r *releaser) Press(d core.Dir) {
	r.held[d] = true
	r.lastSeen[d] = r.now
}

// Advance moves the host clock and returns the releases that are due, in
// Up, Left, Down, Right order.
func (r *releaser) Advance(dt core.Seconds) []core.RawInputEvent {
	r.now += dt

	var out []core.RawInputEvent
	for _, d := range core.Dirs {
		if r.held[d] && r.now-r.lastSeen[d] >= r.after {
			r.held[d] = false
			out = append(out, core.Release(d))
		}
	}
	return out
}

// Held reports whether a direction is still considered down.
func (r *releaser) Held(d core.Dir) bool {
	return r.held[d]
}
