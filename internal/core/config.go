package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	FPS     int   // Animation frames per second (default 60)
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     60,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState is the platform-facing summary of a game.
type GameState struct {
	Score    int    // Current score
	Best     int    // Best score known to the game
	Ticks    uint64 // Simulation ticks in the current run
	Running  bool   // Whether the simulation is ticking
	GameOver bool   // Whether the last run has ended
}

// StepResult is returned after input handling or a simulation tick.
type StepResult struct {
	State GameState
	Ended bool // The run ended during this call
}
