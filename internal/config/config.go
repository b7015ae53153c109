// Package config provides YAML-based game configuration loading and
// difficulty presets for snakebite.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Effects EffectsConfig `yaml:"effects"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	Size     int  `yaml:"size"`      // Side of the square board in cells
	TileSize int  `yaml:"tile_size"` // Pixels per cell, used for effect coordinates
	Wrap     bool `yaml:"wrap"`      // Toroidal movement; false gives the walled variant
}

// TimingConfig defines the simulation clock.
type TimingConfig struct {
	TickMillis  int `yaml:"tick_ms"`  // Fixed simulation tick period
	LabelMillis int `yaml:"label_ms"` // How long the "YOU" label stays after a reset
}

// EnemyConfig defines the enemy random walk.
type EnemyConfig struct {
	TurnProbability float64 `yaml:"turn_probability"`
}

// EffectsConfig defines the particle burst shown when food is eaten.
type EffectsConfig struct {
	Particles   int     `yaml:"particles"`
	Life        int     `yaml:"life"`         // Frames a particle is alive
	InitialLife int     `yaml:"initial_life"` // Denominator for fade and slowdown
	MinSpeed    float64 `yaml:"min_speed"`    // Pixels per frame
	MaxSpeed    float64 `yaml:"max_speed"`
}

// TickPeriod returns the simulation tick period.
func (c SnakeConfig) TickPeriod() time.Duration {
	return time.Duration(c.Timing.TickMillis) * time.Millisecond
}

// LabelDuration returns how long the player label is shown after a reset.
func (c SnakeConfig) LabelDuration() time.Duration {
	return time.Duration(c.Timing.LabelMillis) * time.Millisecond
}

// Validate reports the first problem found in the configuration.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Board.Size < 4 {
		errs = append(errs, fmt.Errorf("board.size must be at least 4, got %d", c.Board.Size))
	}
	if c.Board.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("board.tile_size must be positive, got %d", c.Board.TileSize))
	}
	if c.Timing.TickMillis <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMillis))
	}
	if c.Timing.LabelMillis < 0 {
		errs = append(errs, fmt.Errorf("timing.label_ms must not be negative, got %d", c.Timing.LabelMillis))
	}
	if p := c.Enemy.TurnProbability; p < 0 || p > 1 {
		errs = append(errs, fmt.Errorf("enemy.turn_probability must be in [0,1], got %g", p))
	}
	if c.Effects.Particles < 0 || c.Effects.Life < 0 || c.Effects.InitialLife < c.Effects.Life {
		errs = append(errs, errors.New("effects: particles and life must be non-negative and life <= initial_life"))
	}
	if c.Effects.MaxSpeed < c.Effects.MinSpeed {
		errs = append(errs, errors.New("effects: max_speed must not be below min_speed"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
