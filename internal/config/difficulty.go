package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets are static: the tick rate never changes during a run.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.TickMillis = 200
		cfg.Enemy.TurnProbability = 0.1
	case DifficultyHard:
		cfg.Timing.TickMillis = 100
		cfg.Enemy.TurnProbability = 0.35
	}
}
