package core

// InputKind identifies a canonical input event. The host maps its physical
// keys (arrows, WASD, vim keys) and its clock onto this small set.
type InputKind int

const (
	InputNone InputKind = iota
	InputTimePasses
	InputPressUp
	InputPressLeft
	InputPressDown
	InputPressRight
	InputReleaseUp
	InputReleaseLeft
	InputReleaseDown
	InputReleaseRight
	InputPressPause
	InputPressAnyKey
)

// String returns a human-readable name for the input kind.
func (k InputKind) String() string {
	switch k {
	case InputNone:
		return "None"
	case InputTimePasses:
		return "TimePasses"
	case InputPressUp:
		return "PressUp"
	case InputPressLeft:
		return "PressLeft"
	case InputPressDown:
		return "PressDown"
	case InputPressRight:
		return "PressRight"
	case InputReleaseUp:
		return "ReleaseUp"
	case InputReleaseLeft:
		return "ReleaseLeft"
	case InputReleaseDown:
		return "ReleaseDown"
	case InputReleaseRight:
		return "ReleaseRight"
	case InputPressPause:
		return "PressPause"
	case InputPressAnyKey:
		return "PressAnyKey"
	default:
		return "Unknown"
	}
}

// RawInputEvent is a single discrete input: a clock tick or one key transition.
type RawInputEvent struct {
	Kind InputKind
	DT   Seconds // Only meaningful for InputTimePasses
}

// TimePasses builds a clock event.
func TimePasses(dt Seconds) RawInputEvent {
	return RawInputEvent{Kind: InputTimePasses, DT: dt}
}

// Press builds a key-press event for a direction.
func Press(d Dir) RawInputEvent {
	switch d {
	case DirUp:
		return RawInputEvent{Kind: InputPressUp}
	case DirLeft:
		return RawInputEvent{Kind: InputPressLeft}
	case DirDown:
		return RawInputEvent{Kind: InputPressDown}
	default:
		return RawInputEvent{Kind: InputPressRight}
	}
}

// Release builds a key-release event for a direction.
func Release(d Dir) RawInputEvent {
	switch d {
	case DirUp:
		return RawInputEvent{Kind: InputReleaseUp}
	case DirLeft:
		return RawInputEvent{Kind: InputReleaseLeft}
	case DirDown:
		return RawInputEvent{Kind: InputReleaseDown}
	default:
		return RawInputEvent{Kind: InputReleaseRight}
	}
}

// PressedDir reports the direction of a press event.
func (e RawInputEvent) PressedDir() (Dir, bool) {
	switch e.Kind {
	case InputPressUp:
		return DirUp, true
	case InputPressLeft:
		return DirLeft, true
	case InputPressDown:
		return DirDown, true
	case InputPressRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// ReleasedDir reports the direction of a release event.
func (e RawInputEvent) ReleasedDir() (Dir, bool) {
	switch e.Kind {
	case InputReleaseUp:
		return DirUp, true
	case InputReleaseLeft:
		return DirLeft, true
	case InputReleaseDown:
		return DirDown, true
	case InputReleaseRight:
		return DirRight, true
	default:
		return 0, false
	}
}
