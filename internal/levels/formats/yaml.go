// Package formats provides pluggable level pack file format parsers.
package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLPack represents the YAML structure for a level pack file.
type YAMLPack struct {
	ID     string      `yaml:"id"`
	Title  string      `yaml:"title"`
	Intro  string      `yaml:"intro,omitempty"`
	Ending string      `yaml:"ending,omitempty"`
	Width  int         `yaml:"width"`
	Height int         `yaml:"height"`
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel represents a single level in YAML format.
// Map is a block scalar holding the framed ASCII grid.
type YAMLLevel struct {
	Name  string   `yaml:"name,omitempty"`
	Map   string   `yaml:"map"`
	Signs []string `yaml:"signs,omitempty"`
}

// Pack is a decoded but not yet validated level pack.
type Pack struct {
	ID     string
	Title  string
	Intro  string
	Ending string
	Width  int
	Height int
	Levels []Level
}

// Level is one level of a pack with its map split into rows.
type Level struct {
	Name  string
	Rows  []string
	Signs []string
}

// ParseYAML parses a YAML level pack file.
func ParseYAML(data []byte) (Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	pack := Pack{
		ID:     strings.TrimSpace(yp.ID),
		Title:  strings.TrimSpace(yp.Title),
		Intro:  strings.TrimRight(yp.Intro, "\n"),
		Ending: strings.TrimRight(yp.Ending, "\n"),
		Width:  yp.Width,
		Height: yp.Height,
		Levels: make([]Level, 0, len(yp.Levels)),
	}
	if pack.Title == "" {
		pack.Title = pack.ID
	}

	for _, yl := range yp.Levels {
		pack.Levels = append(pack.Levels, Level{
			Name:  yl.Name,
			Rows:  SplitRows(yl.Map),
			Signs: yl.Signs,
		})
	}

	return pack, nil
}

// SplitRows splits a map block into rows, dropping blank lines at either end
// and trailing carriage returns.
func SplitRows(m string) []string {
	lines := strings.Split(strings.ReplaceAll(m, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
