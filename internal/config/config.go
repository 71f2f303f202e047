// Package config provides YAML-based tuning for the room simulation and the
// terminal host.
package config

import (
	"errors"
	"fmt"
)

// RoomConfig contains all tunable parameters of the game.
type RoomConfig struct {
	Player    PlayerConfig    `yaml:"player"`
	Spiny     SpinyConfig     `yaml:"spiny"`
	Corpse    CorpseConfig    `yaml:"corpse"`
	Collision CollisionConfig `yaml:"collision"`
	Input     InputConfig     `yaml:"input"`
}

// PlayerConfig defines player movement.
type PlayerConfig struct {
	Speed float64 `yaml:"speed"` // Cells per second
}

// SpinyConfig defines enemy movement.
type SpinyConfig struct {
	Speed float64 `yaml:"speed"` // Cells per second
}

// CorpseConfig defines how long death markers stay visible.
type CorpseConfig struct {
	FadeOut float64 `yaml:"fade_out"` // Seconds
}

// CollisionConfig defines the player-vs-spiny overlap test.
type CollisionConfig struct {
	Margin float64 `yaml:"margin"` // Inward margin per side, in cells
}

// InputConfig defines terminal input handling.
type InputConfig struct {
	ReleaseAfter float64 `yaml:"release_after"` // Seconds
}

// PlayerMoveDuration is the time the player needs to cross one cell.
func (c RoomConfig) PlayerMoveDuration() float64 {
	return 1 / c.Player.Speed
}

// SpinyMoveDuration is the time a spiny needs to cross one cell.
func (c RoomConfig) SpinyMoveDuration() float64 {
	return 1 / c.Spiny.Speed
}

// SpinyHalfMoveDuration is the point at which a spiny commits to its step.
func (c RoomConfig) SpinyHalfMoveDuration() float64 {
	return c.SpinyMoveDuration() / 2
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c RoomConfig) Validate() error {
	if c.Player.Speed <= 0 {
		return fmt.Errorf("%w: player.speed must be positive, got %v", ErrInvalidConfig, c.Player.Speed)
	}
	if c.Spiny.Speed <= 0 {
		return fmt.Errorf("%w: spiny.speed must be positive, got %v", ErrInvalidConfig, c.Spiny.Speed)
	}
	if c.Corpse.FadeOut < 0 {
		return fmt.Errorf("%w: corpse.fade_out must not be negative, got %v", ErrInvalidConfig, c.Corpse.FadeOut)
	}
	if c.Collision.Margin < 0 || c.Collision.Margin >= 0.5 {
		return fmt.Errorf("%w: collision.margin must be in [0, 0.5), got %v", ErrInvalidConfig, c.Collision.Margin)
	}
	if c.Input.ReleaseAfter <= 0 {
		return fmt.Errorf("%w: input.release_after must be positive, got %v", ErrInvalidConfig, c.Input.ReleaseAfter)
	}
	return nil
}
