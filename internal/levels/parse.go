package levels

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/room-twice/internal/core"
	"github.com/vovakirdan/room-twice/internal/levels/formats"
)

const (
	codeFloor     = "  "
	codeLeftDoor  = "LD"
	codeRightDoor = "RD"
	codeWall      = "##"
)

// ParseError describes malformed level data. Level is 1-based and zero for
// pack-wide problems; Row and Col are 1-based positions in the map text.
type ParseError struct {
	Level   int
	Row     int
	Col     int
	Code    string
	Message string
}

func (e *ParseError) Error() string {
	switch {
	case e.Level == 0:
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	case e.Row == 0:
		return fmt.Sprintf("level %d: [%s] %s", e.Level, e.Code, e.Message)
	default:
		return fmt.Sprintf("level %d, line %d, col %d: [%s] %s", e.Level, e.Row, e.Col, e.Code, e.Message)
	}
}

// spinyDir maps a spiny tag character to its direction.
func spinyDir(c byte) (core.Dir, bool) {
	switch c {
	case '^':
		return core.DirUp, true
	case '<':
		return core.DirLeft, true
	case 'v':
		return core.DirDown, true
	case '>':
		return core.DirRight, true
	default:
		return 0, false
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isEntityCode reports whether a valid code spawns a spiny or a temporary wall.
func isEntityCode(code string) bool {
	if code[0] == '#' {
		return code != codeWall
	}
	_, ok := spinyDir(code[0])
	return ok
}

// Ruler returns the dotted line framing a map of the given width.
func Ruler(width int) string {
	return strings.TrimSpace(strings.Repeat(" .", width+1))
}

// Parse validates a decoded pack and builds the per-level grids.
// Checks:
//   - pack has an ID, a positive size and at least one level
//   - every map is framed by rulers and '.' columns at the exact size
//   - every cell code is known and every sign index names a non-empty sign
//   - every level has exactly one left door and one right door
func Parse(p formats.Pack) (*Set, error) {
	if p.ID == "" {
		return nil, &ParseError{Code: "MISSING_ID", Message: "pack has no id"}
	}
	if p.Width <= 0 || p.Height <= 0 {
		return nil, &ParseError{
			Code:    "BAD_SIZE",
			Message: fmt.Sprintf("size must be positive, got %dx%d", p.Width, p.Height),
		}
	}
	if len(p.Levels) == 0 {
		return nil, &ParseError{Code: "NO_LEVELS", Message: "pack has no levels"}
	}

	set := &Set{
		ID:     p.ID,
		Title:  p.Title,
		Intro:  p.Intro,
		Ending: p.Ending,
		Width:  p.Width,
		Height: p.Height,
		levels: make([]level, 0, len(p.Levels)),
	}

	for i, pl := range p.Levels {
		lvl, err := parseLevel(i+1, pl, p.Width, p.Height)
		if err != nil {
			return nil, err
		}
		set.levels = append(set.levels, lvl)
	}

	return set, nil
}

func parseLevel(n int, pl formats.Level, width, height int) (level, error) {
	lvl := level{
		name:  pl.Name,
		codes: make([][]string, height),
		signs: pl.Signs,
	}

	if len(pl.Rows) != height+2 {
		return level{}, &ParseError{
			Level:   n,
			Code:    "BAD_HEIGHT",
			Message: fmt.Sprintf("map has %d lines, expected %d rows between two rulers", len(pl.Rows), height),
		}
	}

	ruler := Ruler(width)
	for _, line := range []int{0, height + 1} {
		if strings.TrimSpace(pl.Rows[line]) != ruler {
			return level{}, &ParseError{
				Level:   n,
				Row:     line + 1,
				Col:     1,
				Code:    "BAD_RULER",
				Message: fmt.Sprintf("expected ruler %q", ruler),
			}
		}
	}

	rowLen := 2*width + 2
	var lefts, rights []core.Pos

	for y := 0; y < height; y++ {
		line := y + 2
		row := strings.TrimRight(pl.Rows[y+1], " \t")
		if len(row) != rowLen {
			return level{}, &ParseError{
				Level:   n,
				Row:     line,
				Col:     1,
				Code:    "BAD_WIDTH",
				Message: fmt.Sprintf("row is %d characters, expected %d", len(row), rowLen),
			}
		}
		if row[0] != '.' || row[rowLen-1] != '.' {
			return level{}, &ParseError{
				Level:   n,
				Row:     line,
				Col:     1,
				Code:    "BAD_FRAME",
				Message: "row must start and end with '.'",
			}
		}

		lvl.codes[y] = make([]string, width)
		for x := 0; x < width; x++ {
			col := 2 + 2*x
			code := row[col-1 : col+1]
			if err := checkCode(code, pl.Signs); err != nil {
				err.Level, err.Row, err.Col = n, line, col
				return level{}, err
			}
			lvl.codes[y][x] = code

			switch code {
			case codeLeftDoor:
				lefts = append(lefts, core.P(x, y))
			case codeRightDoor:
				rights = append(rights, core.P(x, y))
			}
		}
	}

	if len(lefts) != 1 || len(rights) != 1 {
		return level{}, &ParseError{
			Level:   n,
			Code:    "DOORS",
			Message: fmt.Sprintf("expected exactly one LD and one RD, found %d and %d", len(lefts), len(rights)),
		}
	}
	lvl.leftDoor = lefts[0]
	lvl.rightDoor = rights[0]

	return lvl, nil
}

// checkCode validates one two-character cell code.
func checkCode(code string, signs []string) *ParseError {
	switch code {
	case codeFloor, codeLeftDoor, codeRightDoor, codeWall:
		return nil
	}

	tag, arg := code[0], code[1]
	switch {
	case tag == 'S' && isDigit(arg):
		idx := int(arg - '0')
		if idx >= len(signs) {
			return &ParseError{
				Code:    "BAD_SIGN",
				Message: fmt.Sprintf("sign %q refers to missing sign #%d", code, idx),
			}
		}
		if strings.TrimSpace(signs[idx]) == "" {
			return &ParseError{
				Code:    "BAD_SIGN",
				Message: fmt.Sprintf("sign #%d is empty", idx),
			}
		}
		return nil
	case tag == '#' && isDigit(arg):
		return nil
	}

	if _, ok := spinyDir(tag); ok && (isDigit(arg) || arg == tag) {
		return nil
	}

	return &ParseError{
		Code:    "UNKNOWN_CODE",
		Message: fmt.Sprintf("unknown cell code %q", code),
	}
}
