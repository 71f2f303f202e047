package tui

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/room-twice/internal/core"
)

func TestReleaserReleasesAfterSilence(t *testing.T) {
	r := newReleaser(0.25)
	r.Press(core.DirLeft)

	if got := r.Advance(0.125); len(got) != 0 {
		t.Errorf("Advance(0.125) = %v, expected no releases yet", got)
	}
	got := r.Advance(0.125)
	if want := []core.RawInputEvent{core.Release(core.DirLeft)}; !reflect.DeepEqual(got, want) {
		t.Errorf("Advance(0.25) = %v, expected %v", got, want)
	}
	if r.Held(core.DirLeft) {
		t.Error("Left should no longer be held")
	}

	// Released keys are not released twice.
	if got := r.Advance(1); len(got) != 0 {
		t.Errorf("Advance(1) = %v, expected nothing", got)
	}
}

func TestReleaserRepeatKeepsKeyHeld(t *testing.T) {
	r := newReleaser(0.25)

	for i := 0; i < 10; i++ {
		r.Press(core.DirUp)
		if got := r.Advance(0.125); len(got) != 0 {
			t.Fatalf("auto-repeat at step %d released %v", i, got)
		}
	}
	if !r.Held(core.DirUp) {
		t.Error("Up should still be held while repeats arrive")
	}
}

func TestReleaserOrder(t *testing.T) {
	r := newReleaser(0.1)
	r.Press(core.DirRight)
	r.Press(core.DirUp)
	r.Press(core.DirDown)

	got := r.Advance(0.5)
	want := []core.RawInputEvent{
		core.Release(core.DirUp),
		core.Release(core.DirDown),
		core.Release(core.DirRight),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Advance() = %v, expected %v", got, want)
	}
}
