package config

import (
	_ "embed"
)

//go:embed defaults/room.yaml
var defaultRoomYAML []byte

// DefaultRoomConfig returns the default configuration.
func DefaultRoomConfig() RoomConfig {
	return RoomConfig{
		Player:    PlayerConfig{Speed: 4.0},
		Spiny:     SpinyConfig{Speed: 2.0},
		Corpse:    CorpseConfig{FadeOut: 1.5},
		Collision: CollisionConfig{Margin: 0.2},
		Input:     InputConfig{ReleaseAfter: 0.15},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRoomYAML
}
