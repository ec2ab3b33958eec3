package wampus

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	Phase         Phase
	Outcome       Outcome
	PlayerRow     int
	PlayerCol     int
	HasArrow      bool
	HasGold       bool
	HazardRow     int
	HazardCol     int
	HazardAlive   bool
	GoldRow       int
	GoldCol       int
	GoldCollected bool
	Done          bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	return Snapshot{
		Tick:          g.tick,
		Phase:         g.phase,
		Outcome:       g.outcome,
		PlayerRow:     w.Player.Cell.Row,
		PlayerCol:     w.Player.Cell.Col,
		HasArrow:      w.Player.HasArrow,
		HasGold:       w.Player.HasGold,
		HazardRow:     w.Hazard.Cell.Row,
		HazardCol:     w.Hazard.Cell.Col,
		HazardAlive:   w.Hazard.Alive,
		GoldRow:       w.Gold.Cell.Row,
		GoldCol:       w.Gold.Cell.Col,
		GoldCollected: w.Gold.Collected,
		Done:          g.done,
	}
}
