package formats

import (
	"reflect"
	"testing"
)

const sampleYAML = `
id: tiny
title: Tiny Pack
intro: |
  hello
ending: bye
width: 3
height: 1
levels:
  - name: first
    map: |
      . . . .
      .LD  RD.
      . . . .
    signs:
      - a sign
`

func TestParseYAML(t *testing.T) {
	pack, err := ParseYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("ParseYAML() error: %v", err)
	}

	if pack.ID != "tiny" || pack.Title != "Tiny Pack" {
		t.Errorf("ID/Title = %q/%q, expected tiny/Tiny Pack", pack.ID, pack.Title)
	}
	if pack.Intro != "hello" {
		t.Errorf("Intro = %q, expected trailing newline trimmed", pack.Intro)
	}
	if pack.Width != 3 || pack.Height != 1 {
		t.Errorf("size = %dx%d, expected 3x1", pack.Width, pack.Height)
	}
	if len(pack.Levels) != 1 {
		t.Fatalf("len(Levels) = %d, expected 1", len(pack.Levels))
	}

	expected := []string{". . . .", ".LD  RD.", ". . . ."}
	if !reflect.DeepEqual(pack.Levels[0].Rows, expected) {
		t.Errorf("Rows = %q, expected %q", pack.Levels[0].Rows, expected)
	}
	if pack.Levels[0].Signs[0] != "a sign" {
		t.Errorf("Signs[0] = %q, expected 'a sign'", pack.Levels[0].Signs[0])
	}
}

func TestParseYAMLTitleDefaultsToID(t *testing.T) {
	pack, err := ParseYAML([]byte("id: solo\nwidth: 1\nheight: 1\n"))
	if err != nil {
		t.Fatalf("ParseYAML() error: %v", err)
	}
	if pack.Title != "solo" {
		t.Errorf("Title = %q, expected 'solo'", pack.Title)
	}
}

func TestParseYAMLMalformed(t *testing.T) {
	if _, err := ParseYAML([]byte("levels: {")); err == nil {
		t.Error("ParseYAML() with malformed YAML should fail")
	}
}

func TestSplitRows(t *testing.T) {
	got := SplitRows("\n\r\nab\r\ncd\n\n")
	expected := []string{"ab", "cd"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("SplitRows() = %q, expected %q", got, expected)
	}
}
