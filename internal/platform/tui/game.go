package tui

import "github.com/vovakirdan/tui-frogger/internal/core"

// Game is the interface the terminal platform drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game, used in file names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after the game ends.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by in.DT seconds.
	// Input is abstracted to platform-level actions (Up, Pause, etc.).
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}
