package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, level packs and the records database.
const AppDir = ".roomtwice"

// LoadRoom loads the game configuration.
// Search order: customPath -> ~/.roomtwice/configs/room.yaml -> ./configs/room.yaml -> embedded default
//
// Files only need to mention the keys they override; missing keys keep
// their default values.
func LoadRoom(customPath string) (RoomConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RoomConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseRoom(data)
		if err != nil {
			return RoomConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return RoomConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserPath("configs", "room.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRoom(data); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "room.yaml")); err == nil {
		if cfg, err := parseRoom(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRoom(defaultRoomYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultRoomConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRoom decodes YAML on top of the hard-coded defaults.
func parseRoom(data []byte) (RoomConfig, error) {
	cfg := DefaultRoomConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RoomConfig{}, err
	}
	return cfg, nil
}

// UserPath returns a path below ~/.roomtwice, or empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, AppDir}, elem...)...)
}
