package wampus

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/wampus-world/internal/core"
)

var frame = core.FrameDelta(60)

// cell is shorthand for keyed cells in test tables.
func cell(row, col int) core.Cell {
	return core.Cell{Row: row, Col: col}
}

// input builds a frame from presses in order.
func input(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// quietWorld is a board where nothing happens unless a test arranges it:
// hazard in the far corner, one pit out of the way, gold mid-board.
func quietWorld() World {
	return World{
		Player: NewPlayer(),
		Hazard: Hazard{Cell: cell(9, 9), Alive: true},
		Pits:   []Pit{{Cell: cell(6, 3)}},
		Gold:   Gold{Cell: cell(4, 4)},
	}
}

// playing returns a game already past the start screen with the given world.
func playing(t *testing.T, w World) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, TickRate: 60, Timing: core.DefaultTiming()})
	g.world = w
	g.phase = PhasePlaying
	return g
}

func TestStartScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 3})
	before := g.Snapshot()

	g.Step(input(), time.Second)
	if g.Phase() != PhaseStart {
		t.Fatalf("no key should keep the start screen, got %v", g.Phase())
	}

	g.Step(input(core.ActionRight), frame)
	if g.Phase() != PhasePlaying {
		t.Fatalf("any key should start the game, got %v", g.Phase())
	}

	after := g.Snapshot()
	if after.PlayerRow != before.PlayerRow || after.PlayerCol != before.PlayerCol {
		t.Error("the key that dismisses the start screen must not move the player")
	}
	if after.HazardRow != before.HazardRow || after.HazardCol != before.HazardCol {
		t.Error("the start screen must not advance the hazard")
	}
}

func TestStartScreenAnyKey(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 3})

	g.Step(input(core.ActionKey), frame)
	if g.Phase() != PhasePlaying {
		t.Errorf("unmapped key should start the game, got %v", g.Phase())
	}
}

func TestQuitFromStartScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 3})

	res := g.Step(input(core.ActionKey, core.ActionQuit), frame)

	if g.Outcome() != OutcomeQuit {
		t.Errorf("Outcome() = %v, expected quit", g.Outcome())
	}
	if !res.State.Done {
		t.Error("quit has no dwell; the game should be done at once")
	}
}

func TestMovesApplyPerPress(t *testing.T) {
	g := playing(t, quietWorld())

	g.Step(input(core.ActionRight, core.ActionRight, core.ActionDown), frame)

	if got := g.World().Player.Cell; got != cell(1, 2) {
		t.Errorf("player at %v, expected (1,2)", got)
	}
}

func TestQuitWhilePlayingSkipsRestOfFrame(t *testing.T) {
	g := playing(t, quietWorld())

	res := g.Step(input(core.ActionRight, core.ActionQuit, core.ActionRight), frame)

	if got := g.World().Player.Cell; got != cell(0, 1) {
		t.Errorf("player at %v, expected (0,1)", got)
	}
	if g.Outcome() != OutcomeQuit || !res.State.Done {
		t.Errorf("expected immediate quit, got outcome %v done %v", g.Outcome(), res.State.Done)
	}
}

func TestGoldOnOriginPickedUpFirstFrame(t *testing.T) {
	w := quietWorld()
	w.Gold.Cell = core.Origin
	g := playing(t, w)

	g.Step(input(), frame)

	world := g.World()
	if !world.Player.HasGold || !world.Gold.Collected {
		t.Fatal("gold on the start cell should be collected on frame 1")
	}
	// Standing on the origin with the gold is also a win on the same frame.
	if g.Outcome() != OutcomeWin {
		t.Errorf("Outcome() = %v, expected win", g.Outcome())
	}

	events := g.DrainEvents()
	if len(events) != 2 || events[0].Kind != EventGoldCollected || events[1].Kind != EventWon {
		t.Errorf("events = %+v, expected gold then win", events)
	}
}

func TestPitFallEndsGameSameFrame(t *testing.T) {
	w := quietWorld()
	w.Pits = []Pit{{Cell: cell(0, 1)}}
	g := playing(t, w)

	g.Step(input(core.ActionRight), frame)

	if g.Phase() != PhaseTerminated || g.Outcome() != OutcomePit {
		t.Fatalf("phase %v outcome %v, expected terminated pit", g.Phase(), g.Outcome())
	}

	frozen := g.Snapshot()
	g.DrainEvents()

	for i := 0; i < 10; i++ {
		g.Step(input(core.ActionLeft, core.ActionShoot), 100*time.Millisecond)
	}

	after := g.Snapshot()
	after.Tick, after.Done = frozen.Tick, frozen.Done
	if after != frozen {
		t.Errorf("state changed after termination:\nbefore %+v\nafter  %+v", frozen, after)
	}
	if events := g.DrainEvents(); len(events) != 0 {
		t.Errorf("no events expected during dwell, got %+v", events)
	}
}

func TestWinOnReturnWithGold(t *testing.T) {
	w := quietWorld()
	w.Gold.Cell = cell(0, 2)
	g := playing(t, w)

	g.Step(input(core.ActionRight), frame)
	g.Step(input(core.ActionRight), frame)
	if !g.World().Player.HasGold {
		t.Fatal("gold should be collected at (0,2)")
	}

	g.Step(input(core.ActionLeft), frame)
	if g.Phase() != PhasePlaying {
		t.Fatalf("game ended early at %v", g.World().Player.Cell)
	}

	g.Step(input(core.ActionLeft), frame)
	if g.Outcome() != OutcomeWin {
		t.Errorf("Outcome() = %v, expected win on reaching the origin", g.Outcome())
	}
}

func TestOriginWithoutGoldIsNotAWin(t *testing.T) {
	g := playing(t, quietWorld())

	g.Step(input(core.ActionRight), frame)
	g.Step(input(core.ActionLeft), frame)

	if g.Phase() != PhasePlaying {
		t.Errorf("returning without gold should not end the game, got %v", g.Outcome())
	}
}

func TestCaughtByWanderingHazard(t *testing.T) {
	w := quietWorld()
	w.Hazard.Cell = cell(0, 1)
	g := playing(t, w)
	g.rng = &scriptedRand{vals: []int{dirIndex(core.DirLeft)}}

	// Not yet a full interval: the hazard holds still.
	g.Step(input(), 999*time.Millisecond)
	if g.Phase() != PhasePlaying {
		t.Fatal("hazard moved before its interval elapsed")
	}

	g.Step(input(), time.Millisecond)
	if g.Outcome() != OutcomeCaught {
		t.Errorf("Outcome() = %v, expected caught", g.Outcome())
	}
}

func TestDeadHazardDoesNotCatch(t *testing.T) {
	w := quietWorld()
	w.Hazard = Hazard{Cell: cell(0, 1), Alive: false}
	g := playing(t, w)

	g.Step(input(core.ActionRight), frame)

	if g.Phase() != PhasePlaying {
		t.Errorf("dead hazard ended the game: %v", g.Outcome())
	}
}

func TestShootKillsOnceAndNotifiesOnce(t *testing.T) {
	w := quietWorld()
	w.Hazard.Cell = cell(7, 0)
	g := playing(t, w)

	g.Step(input(core.ActionShoot), frame)

	if g.World().Hazard.Alive {
		t.Fatal("hazard in the same column should die")
	}
	if events := g.DrainEvents(); len(events) != 1 || events[0].Kind != EventHazardKilled {
		t.Fatalf("events = %+v, expected one kill", events)
	}

	g.Step(input(core.ActionShoot, core.ActionShoot), frame)
	if events := g.DrainEvents(); len(events) != 0 {
		t.Errorf("spent arrow raised events: %+v", events)
	}
}

func TestMissedShotSpendsArrow(t *testing.T) {
	w := quietWorld()
	w.Hazard.Cell = cell(5, 5)
	g := playing(t, w)

	g.Step(input(core.ActionShoot), frame)
	if g.World().Player.HasArrow {
		t.Fatal("a miss still spends the arrow")
	}

	// Line up on the hazard's row; the second press must do nothing.
	w = g.World()
	w.Player.Cell = cell(5, 0)
	g.world = w
	g.Step(input(core.ActionShoot), frame)

	if !g.World().Hazard.Alive {
		t.Error("second shot changed hazard state")
	}
}

func TestRulePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		world    World
		press    core.Action
		expected Outcome
	}{
		{
			name: "pit beats win",
			world: World{
				Player: Player{Cell: cell(0, 1), HasGold: true},
				Hazard: Hazard{Cell: cell(9, 9), Alive: true},
				Pits:   []Pit{{Cell: core.Origin}},
				Gold:   Gold{Cell: cell(5, 5), Collected: true},
			},
			press:    core.ActionLeft,
			expected: OutcomePit,
		},
		{
			name: "pit beats caught",
			world: World{
				Player: NewPlayer(),
				Hazard: Hazard{Cell: cell(1, 0), Alive: true},
				Pits:   []Pit{{Cell: cell(1, 0)}},
				Gold:   Gold{Cell: cell(5, 5)},
			},
			press:    core.ActionDown,
			expected: OutcomePit,
		},
		{
			name: "win beats caught",
			world: World{
				Player: Player{Cell: cell(0, 1), HasGold: true},
				Hazard: Hazard{Cell: core.Origin, Alive: true},
				Pits:   []Pit{{Cell: cell(9, 9)}},
				Gold:   Gold{Cell: cell(5, 5), Collected: true},
			},
			press:    core.ActionLeft,
			expected: OutcomeWin,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := playing(t, tc.world)
			g.Step(input(tc.press), frame)

			if g.Outcome() != tc.expected {
				t.Errorf("Outcome() = %v, expected %v", g.Outcome(), tc.expected)
			}
			events := g.DrainEvents()
			if len(events) != 1 {
				t.Errorf("only the winning terminal rule should notify, got %+v", events)
			}
		})
	}
}

func TestRuleOrder(t *testing.T) {
	expected := []string{"gold", "pit", "win", "caught"}
	got := RuleOrder()

	if len(got) != len(expected) {
		t.Fatalf("RuleOrder() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("RuleOrder()[%d] = %q, expected %q", i, got[i], expected[i])
		}
	}
}

func TestHazardMovesAtMostOncePerInterval(t *testing.T) {
	w := quietWorld()
	w.Pits = nil
	w.Hazard.Cell = cell(5, 5)
	g := playing(t, w)
	g.rng = rand.New(rand.NewSource(99))

	var elapsed time.Duration
	moves := 0
	prev := g.World().Hazard.Cell
	for i := 0; i < 60*30 && g.Phase() == PhasePlaying; i++ {
		g.Step(input(), frame)
		elapsed += frame

		cur := g.World().Hazard.Cell
		if !cur.InBounds() {
			t.Fatalf("hazard left the board at %v", cur)
		}
		if cur != prev {
			moves++
		}
		prev = cur
	}

	if limit := int(elapsed / time.Second); moves > limit {
		t.Errorf("hazard moved %d times in %v, at most %d allowed", moves, elapsed, limit)
	}
}

func TestDwellDelays(t *testing.T) {
	tests := []struct {
		name      string
		world     World
		press     core.Action
		outcome   Outcome
		stepsDone int // 250ms steps after the terminating frame
	}{
		{
			name: "pit waits two seconds",
			world: World{
				Player: NewPlayer(),
				Hazard: Hazard{Cell: cell(9, 9), Alive: true},
				Pits:   []Pit{{Cell: cell(0, 1)}},
				Gold:   Gold{Cell: cell(5, 5)},
			},
			press:     core.ActionRight,
			outcome:   OutcomePit,
			stepsDone: 8,
		},
		{
			name: "caught waits one second",
			world: World{
				Player: NewPlayer(),
				Hazard: Hazard{Cell: cell(0, 1), Alive: true},
				Pits:   []Pit{{Cell: cell(9, 9)}},
				Gold:   Gold{Cell: cell(5, 5)},
			},
			press:     core.ActionRight,
			outcome:   OutcomeCaught,
			stepsDone: 4,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := playing(t, tc.world)
			res := g.Step(input(tc.press), frame)

			if g.Outcome() != tc.outcome {
				t.Fatalf("Outcome() = %v, expected %v", g.Outcome(), tc.outcome)
			}
			if res.State.Done || !res.State.Over {
				t.Fatal("terminating frame should be over but not done")
			}

			for i := 1; i <= tc.stepsDone; i++ {
				res = g.Step(input(core.ActionLeft), 250*time.Millisecond)
				if i < tc.stepsDone && res.State.Done {
					t.Fatalf("done after %d steps, expected %d", i, tc.stepsDone)
				}
			}
			if !res.State.Done {
				t.Errorf("not done after %d steps", tc.stepsDone)
			}
		})
	}
}

func TestCustomTiming(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{
		Seed: 5,
		Timing: core.Timing{
			HazardStep: 200 * time.Millisecond,
			DwellPit:   0,
		},
	})
	g.world = World{
		Player: NewPlayer(),
		Hazard: Hazard{Cell: cell(9, 9), Alive: true},
		Pits:   []Pit{{Cell: cell(0, 1)}},
		Gold:   Gold{Cell: cell(5, 5)},
	}
	g.phase = PhasePlaying
	g.rng = &scriptedRand{vals: []int{dirIndex(core.DirUp)}}

	g.Step(input(), 200*time.Millisecond)
	if got := g.World().Hazard.Cell; got != cell(8, 9) {
		t.Errorf("hazard at %v, expected a step after 200ms", got)
	}

	res := g.Step(input(core.ActionRight), frame)
	if g.Outcome() != OutcomePit || !res.State.Done {
		t.Error("zero pit dwell should finish on the terminating frame")
	}
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345, TickRate: 60}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	script := map[int]core.Action{
		0:   core.ActionKey,
		30:  core.ActionRight,
		90:  core.ActionDown,
		150: core.ActionShoot,
		200: core.ActionRight,
		260: core.ActionDown,
	}

	for i := 0; i < 600; i++ {
		in := core.NewInputFrame()
		if a, ok := script[i]; ok {
			in.Set(a)
		}
		g1.Step(in, frame)
		g2.Step(in, frame)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("same seed and input diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestResetStartsOver(t *testing.T) {
	g := playing(t, quietWorld())
	g.Step(input(core.ActionQuit), frame)

	g.Reset(core.RuntimeConfig{Seed: 8})

	if g.Phase() != PhaseStart || g.Outcome() != OutcomeNone || g.State().Done {
		t.Errorf("Reset left phase %v outcome %v", g.Phase(), g.Outcome())
	}
	if g.World().Player.Cell != core.Origin {
		t.Error("Reset should put the player back on the origin")
	}
}
