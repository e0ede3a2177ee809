package core

// RuntimeConfig is what the host passes to Game.Reset: the playfield size
// in cells, the tick rate and the run seed.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns the fallback used when the terminal size is unknown.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // the host picks a time-based seed
	}
}

// GameState represents the current state of a game.
// Returned by the game adapter to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
	Started  bool // Whether the first run has begun
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
