package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/room-twice/internal/levels/formats"
)

// Loader handles loading level packs from a directory.
type Loader struct {
	Root string

	// OnSkip, if set, is told about files LoadAll skipped as invalid.
	OnSkip func(path string, err error)
}

// NewLoader creates a new level pack loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all pack files.
// Invalid files are skipped. Returns packs sorted by ID for deterministic
// ordering.
func (l *Loader) LoadAll() ([]*Set, error) {
	var sets []*Set

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		set, err := l.LoadFile(path)
		if err != nil {
			if l.OnSkip != nil {
				l.OnSkip(path, err)
			}
			return nil
		}

		sets = append(sets, set)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(sets, func(i, j int) bool {
		return sets[i].ID < sets[j].ID
	})

	return sets, nil
}

// LoadFile loads and validates a single pack file.
func (l *Loader) LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	set, err := parseByExtension(data, ext)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return set, nil
}

// LoadByID loads a specific pack by ID.
func (l *Loader) LoadByID(id string) (*Set, error) {
	sets, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	for _, s := range sets {
		if s.ID == id {
			return s, nil
		}
	}

	return nil, fmt.Errorf("level pack not found: %s", id)
}

// LoadYAML decodes and validates a pack from YAML bytes.
func LoadYAML(data []byte) (*Set, error) {
	pack, err := formats.ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return Parse(pack)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (*Set, error) {
	switch ext {
	case ".yaml", ".yml":
		return LoadYAML(data)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}
