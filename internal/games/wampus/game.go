// Package wampus implements Extended Wampus World: explore a 10×10 board,
// dodge pits, grab the gold, and carry it back to the start while a Wampus
// wanders at random. The player has one arrow that kills the Wampus anywhere
// on the same row or column.
package wampus

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/wampus-world/internal/core"
)

// Title is the window and banner title.
const Title = "Extended Wampus World"

// Phase is the controller state.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseTerminated
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Outcome is how a game ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomePit
	OutcomeCaught
	OutcomeQuit
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWin:
		return "win"
	case OutcomePit:
		return "pit"
	case OutcomeCaught:
		return "caught"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Game is the controller. It owns the world, the shared random source, and
// the frame timers; frontends drive it through Step and Render.
type Game struct {
	rng    Rand
	timing core.Timing
	tick   uint64

	phase   Phase
	outcome Outcome
	world   World

	hazardTimer core.Interval
	dwell       core.Interval
	done        bool

	events []Event
}

var _ core.Game = (*Game)(nil)

// New creates a game. Call Reset before the first Step.
func New() *Game {
	return &Game{}
}

// Title returns the display name.
func (g *Game) Title() string {
	return Title
}

// Reset seeds the random source and builds a fresh world on the start screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.timing = withDefaults(cfg.Timing)
	g.tick = 0
	g.phase = PhaseStart
	g.outcome = OutcomeNone
	g.world = NewWorld(g.rng)
	g.hazardTimer = core.NewInterval(g.timing.HazardStep)
	g.dwell = core.Interval{}
	g.done = false
	g.events = g.events[:0]
}

// withDefaults returns the stock cadences for a zero Timing and repairs
// values no frame loop can honour.
func withDefaults(t core.Timing) core.Timing {
	if t == (core.Timing{}) {
		return core.DefaultTiming()
	}
	if t.HazardStep <= 0 {
		t.HazardStep = core.DefaultTiming().HazardStep
	}
	t.DwellPit = max(t.DwellPit, 0)
	t.DwellWin = max(t.DwellWin, 0)
	t.DwellCaught = max(t.DwellCaught, 0)
	return t
}

// Step advances the game by one frame of length dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.tick++

	switch g.phase {
	case PhaseStart:
		g.stepStart(in)
	case PhasePlaying:
		g.stepPlaying(in, dt)
	case PhaseTerminated:
		g.stepDwell(dt)
	}

	return core.StepResult{State: g.State()}
}

// stepStart waits on the instructions screen. Quit wins over any other key
// pressed in the same frame; the key that starts the game is not replayed
// as a move.
func (g *Game) stepStart(in core.InputFrame) {
	if in.Has(core.ActionQuit) {
		g.terminate(OutcomeQuit)
		return
	}
	if in.Len() > 0 {
		g.phase = PhasePlaying
	}
}

// stepPlaying runs one playing frame: input, hazard timer, then the rules.
func (g *Game) stepPlaying(in core.InputFrame, dt time.Duration) {
	for _, a := range in.Actions() {
		switch a {
		case core.ActionQuit:
			g.terminate(OutcomeQuit)
			return
		case core.ActionShoot:
			g.shoot()
		default:
			if d, ok := a.Dir(); ok {
				g.world.Player.Move(d)
			}
		}
	}

	if g.hazardTimer.Advance(dt) {
		g.world.Hazard.StepRandom(g.rng)
	}

	g.applyRules()
}

// shoot fires the arrow if the player still has it.
func (g *Game) shoot() {
	if !g.world.Player.HasArrow {
		return
	}
	if g.world.Player.ShootArrow(&g.world.Hazard) {
		g.emit(EventHazardKilled)
	}
}

// applyRules evaluates the ordered end-of-frame checks.
func (g *Game) applyRules() {
	for _, r := range rules {
		if !r.apply(&g.world) {
			continue
		}
		g.emit(r.event)
		if r.outcome != OutcomeNone {
			g.terminate(r.outcome)
			return
		}
	}
}

// stepDwell counts down the read-the-message pause. Input is ignored.
func (g *Game) stepDwell(dt time.Duration) {
	if g.done {
		return
	}
	if g.dwell.Advance(dt) {
		g.done = true
	}
}

// terminate ends the game and starts the dwell for its outcome.
func (g *Game) terminate(o Outcome) {
	g.phase = PhaseTerminated
	g.outcome = o

	period := g.dwellFor(o)
	g.dwell = core.NewInterval(period)
	g.done = period <= 0
}

// dwellFor returns the pause after an outcome.
func (g *Game) dwellFor(o Outcome) time.Duration {
	switch o {
	case OutcomePit:
		return g.timing.DwellPit
	case OutcomeWin:
		return g.timing.DwellWin
	case OutcomeCaught:
		return g.timing.DwellCaught
	default:
		return 0
	}
}

func (g *Game) emit(k EventKind) {
	g.events = append(g.events, Event{Kind: k, Tick: g.tick, Cell: g.world.Player.Cell})
}

// DrainEvents returns the events raised since the last call and forgets them.
func (g *Game) DrainEvents() []Event {
	if len(g.events) == 0 {
		return nil
	}
	out := make([]Event, len(g.events))
	copy(out, g.events)
	g.events = g.events[:0]
	return out
}

// Render returns the draw list for the current frame.
func (g *Game) Render() core.DrawList {
	if g.phase == PhaseStart {
		return RenderStart()
	}
	return RenderWorld(g.world)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Playing: g.phase == PhasePlaying,
		Over:    g.phase == PhaseTerminated,
		Done:    g.done,
	}
}

// Phase returns the controller state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Outcome returns how the game ended, or OutcomeNone while it runs.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// World returns a copy of the entity state.
func (g *Game) World() World {
	return g.world.Clone()
}
