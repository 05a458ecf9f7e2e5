package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size, for deterministic simulation and
// to report scores back to the host.
type RuntimeConfig struct {
	ScreenW   int       // Screen width in characters
	ScreenH   int       // Screen height in characters
	TickRate  int       // Host refreshes per second (default 30)
	Seed      int64     // RNG seed for deterministic gameplay
	Callbacks Callbacks // Score sink supplied by the host
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Headline value in the game's own unit
	Level    int    // Current level, 0 when the game has none
	Lives    int    // Remaining lives, 0 when the game has none
	Phase    string // Engine phase name, for the host status line
	GameOver bool   // Whether the session has completed
	Paused   bool   // Whether the host has paused the session
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
