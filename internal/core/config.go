package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (terminal backend only)
	ScreenH  int   // Terminal height in characters
	TickRate int   // Render frames per second requested from the platform
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the externally visible summary of a session.
type GameState struct {
	Score    int
	Lives    int
	Level    int
	Phase    string // Level director state name
	GameOver bool
	Paused   bool
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
	// Cues lists audio cues emitted during the tick, in emission order.
	Cues []Cue
}
