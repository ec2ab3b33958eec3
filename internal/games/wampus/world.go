package wampus

import "github.com/vovakirdan/wampus-world/internal/core"

// PitCount is the number of pits placed on every board.
const PitCount = 5

// World is the complete entity state of one game.
type World struct {
	Player Player
	Hazard Hazard
	Pits   []Pit
	Gold   Gold
}

// NewWorld places the entities for a new game. The player starts on the
// origin; the hazard, each pit, and the gold get independent uniform cells,
// drawn from rng in that order. Entities may share cells, including the
// start cell.
func NewWorld(rng Rand) World {
	w := World{
		Player: NewPlayer(),
		Hazard: Hazard{Cell: randomCell(rng), Alive: true},
		Pits:   make([]Pit, PitCount),
	}
	for i := range w.Pits {
		w.Pits[i] = Pit{Cell: randomCell(rng)}
	}
	w.Gold = Gold{Cell: randomCell(rng)}
	return w
}

func randomCell(rng Rand) core.Cell {
	row := rng.Intn(core.Rows)
	col := rng.Intn(core.Cols)
	return core.Cell{Row: row, Col: col}
}

// PickUpGold collects the gold when the player stands on it.
// It reports true only on the step the gold is taken.
func (w *World) PickUpGold() bool {
	if w.Gold.Collected || w.Player.Cell != w.Gold.Cell {
		return false
	}
	w.Gold.Collected = true
	w.Player.HasGold = true
	return true
}

// PlayerInPit reports whether the player stands on any pit.
func (w *World) PlayerInPit() bool {
	for _, p := range w.Pits {
		if p.Cell == w.Player.Cell {
			return true
		}
	}
	return false
}

// PlayerHome reports whether the player is back on the origin with the gold.
func (w *World) PlayerHome() bool {
	return w.Player.HasGold && w.Player.Cell == core.Origin
}

// PlayerCaught reports whether a live hazard shares the player's cell.
func (w *World) PlayerCaught() bool {
	return w.Hazard.Alive && w.Hazard.Cell == w.Player.Cell
}

// Clone returns a deep copy, safe to hand to renderers or tests.
func (w World) Clone() World {
	c := w
	c.Pits = append([]Pit(nil), w.Pits...)
	return c
}
