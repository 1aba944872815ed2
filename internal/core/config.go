package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Logical viewport width in pixels
	ScreenH  int   // Logical viewport height in pixels
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic spawning
}

// DefaultConfig returns the fixed 800x400 @ 60Hz runtime.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  800,
		ScreenH:  400,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score, or the last run's score while not active
	Active    bool // Whether a run is in progress
	Obstacles int  // Number of live obstacles
	Runs      int  // Number of runs started since the process began
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Quit  bool // A quit signal was processed; the loop must stop
}
