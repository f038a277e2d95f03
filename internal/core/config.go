package core

// RuntimeConfig contains configuration passed to the game at reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Input polling ticks per second
	Seed     int64 // RNG seed for mine placement (0 = time based)
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

// GameState is what the platform needs to know about the running game.
type GameState struct {
	GameOver bool // The game reached a terminal state
	Won      bool // Valid when GameOver is set
	Exposed  int  // Cells exposed so far
	Moves    int  // Reveal and flag actions that changed the board
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State   GameState
	Changed int   // Cells whose visible state changed this tick
	Err     error // Set when the game rejected an action it generated itself
}
