package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Compile-time defaults. The embedded YAML mirrors these values.
const (
	DefaultBoardSize       = 20
	DefaultTileSize        = 20
	DefaultTickMillis      = 150
	DefaultLabelMillis     = 1000
	DefaultTurnProbability = 0.2
)

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Size:     DefaultBoardSize,
			TileSize: DefaultTileSize,
			Wrap:     true,
		},
		Timing: TimingConfig{
			TickMillis:  DefaultTickMillis,
			LabelMillis: DefaultLabelMillis,
		},
		Enemy: EnemyConfig{
			TurnProbability: DefaultTurnProbability,
		},
		Effects: EffectsConfig{
			Particles:   50,
			Life:        30,
			InitialLife: 35,
			MinSpeed:    2,
			MaxSpeed:    4,
		},
	}
}
