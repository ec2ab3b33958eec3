package wampus

import "github.com/vovakirdan/wampus-world/internal/core"

// Rand is the slice of math/rand the simulation needs. A single source is
// shared by world generation and the hazard's random walk.
type Rand interface {
	Intn(n int) int
}

// Player is the explorer. It starts on core.Origin with one arrow.
type Player struct {
	Cell     core.Cell
	HasArrow bool // True until the first shot; never replenished
	HasGold  bool // True once the gold cell is reached; never reset
}

// NewPlayer returns a player on the start cell holding its arrow.
func NewPlayer() Player {
	return Player{Cell: core.Origin, HasArrow: true}
}

// Move steps one cell in d. A step off the board is silently ignored.
func (p *Player) Move(d core.Dir) {
	next := p.Cell.Step(d)
	if next.InBounds() {
		p.Cell = next
	}
}

// ShootArrow fires the arrow at h. The arrow is spent whether or not it hits.
// It hits when h is alive and on the player's row or column; there is no
// range limit and nothing blocks the shot. Without an arrow this is a no-op.
func (p *Player) ShootArrow(h *Hazard) (killed bool) {
	if !p.HasArrow {
		return false
	}
	p.HasArrow = false

	if h.Alive && p.Cell.SharesLine(h.Cell) {
		h.Alive = false
		return true
	}
	return false
}

// Hazard is the wandering Wampus.
type Hazard struct {
	Cell  core.Cell
	Alive bool
}

// StepRandom moves the hazard one cell in a uniformly chosen direction.
// A move that would leave the board is dropped for this step, not retried.
// A dead hazard stays where it fell.
func (h *Hazard) StepRandom(rng Rand) {
	if !h.Alive {
		return
	}
	d := core.Dirs[rng.Intn(len(core.Dirs))]
	next := h.Cell.Step(d)
	if next.InBounds() {
		h.Cell = next
	}
}

// Pit is a static trap.
type Pit struct {
	Cell core.Cell
}

// Gold is the treasure to bring home.
type Gold struct {
	Cell      core.Cell
	Collected bool
}
