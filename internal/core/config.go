package core

import "time"

// Timing holds the wall-clock cadences of the simulation.
type Timing struct {
	HazardStep  time.Duration // Hazard random-walk cadence
	DwellPit    time.Duration // Pause after falling into a pit
	DwellWin    time.Duration // Pause after winning
	DwellCaught time.Duration // Pause after being caught
}

// DefaultTiming returns the stock cadences.
func DefaultTiming() Timing {
	return Timing{
		HazardStep:  1000 * time.Millisecond,
		DwellPit:    2000 * time.Millisecond,
		DwellWin:    2000 * time.Millisecond,
		DwellCaught: 1000 * time.Millisecond,
	}
}

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Timing   Timing
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Timing:   DefaultTiming(),
	}
}

// GameState is the frontend-facing summary of a game.
type GameState struct {
	Playing bool // Past the start screen and not yet terminated
	Over    bool // A terminal outcome has been reached
	Done    bool // The terminal dwell has elapsed; the frontend should exit
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Game is the contract between a frontend and the simulation.
// Implementations contain pure logic; the frontend handles input mapping,
// timing, and turning draw lists into pixels or cells.
type Game interface {
	// Title returns a human-readable name for window titles and banners.
	Title() string

	// Reset initializes the game state from the runtime config.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one frame of length dt.
	Step(in InputFrame, dt time.Duration) StepResult

	// Render returns the draw list for the current state.
	Render() DrawList

	// State returns the current game state.
	State() GameState
}
