package tui

import "github.com/vovakirdan/tui-sweeper/internal/core"

// Game is the contract between the platform and a game.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and rendering.
type Game interface {
	// ID returns a stable identifier, used in logs and file names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset lays out a new game. Called at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Resize tells the game the screen changed size. It must not reset play.
	Resize(w, h int)

	// Step advances the game by one tick using the actions collected since
	// the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Pointer is implemented by games that can move their cursor to a screen
// position, enabling mouse play.
type Pointer interface {
	MoveCursorTo(x, y int) bool
}
