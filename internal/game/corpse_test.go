package game

import (
	"testing"

	"github.com/vovakirdan/room-twice/internal/core"
)

func TestCorpsesExpireInOrder(t *testing.T) {
	var q Corpses
	q.Enqueue(core.FPos{X: 1}, 0)
	q.Enqueue(core.FPos{X: 2}, 0.5)
	q.Enqueue(core.FPos{X: 3}, 2)

	q.Expire(1.4, 1)
	if len(q) != 2 || q[0].FPos.X != 2 {
		t.Fatalf("after Expire(1.4) = %v, expected the first corpse gone", q)
	}

	// Expiring again at the same time changes nothing.
	q.Expire(1.4, 1)
	if len(q) != 2 {
		t.Errorf("second Expire(1.4) left %d corpses, expected 2", len(q))
	}

	q.Expire(1.5, 1)
	if len(q) != 1 || q[0].FPos.X != 3 {
		t.Errorf("after Expire(1.5) = %v, expected only the last corpse", q)
	}

	q.Expire(10, 1)
	if len(q) != 0 {
		t.Errorf("after Expire(10) = %v, expected empty", q)
	}
	q.Expire(11, 1)
}

func TestCorpseAlpha(t *testing.T) {
	c := Corpse{T0: 2}

	tests := []struct {
		t    core.Seconds
		want float64
	}{
		{1, 1},
		{2, 1},
		{2.5, 0.5},
		{3, 0},
		{5, 0},
	}
	for _, tt := range tests {
		if got := c.Alpha(tt.t, 1); got != tt.want {
			t.Errorf("Alpha(%v) = %v, expected %v", tt.t, got, tt.want)
		}
	}

	if got := c.Alpha(2, 0); got != 0 {
		t.Errorf("Alpha with no fade-out = %v, expected 0", got)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{NoAction, "None"},
		{Move(core.P(1, 2), core.DirLeft), "Move((1,2), Left)"},
		{TransitionLevel(2, 3), "TransitionLevel(2, 3)"},
		{Action{Kind: ActionPause}, "Pause"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("String() = %q, expected %q", got, tt.want)
		}
	}
}
