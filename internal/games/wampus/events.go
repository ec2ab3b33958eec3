package wampus

import "github.com/vovakirdan/wampus-world/internal/core"

// EventKind identifies a notable moment in a game.
type EventKind int

const (
	EventHazardKilled EventKind = iota + 1
	EventGoldCollected
	EventFellIntoPit
	EventWon
	EventCaught
)

// String returns a short machine-friendly name for log fields.
func (k EventKind) String() string {
	switch k {
	case EventHazardKilled:
		return "hazard_killed"
	case EventGoldCollected:
		return "gold_collected"
	case EventFellIntoPit:
		return "fell_into_pit"
	case EventWon:
		return "won"
	case EventCaught:
		return "caught"
	default:
		return "unknown"
	}
}

// Event is a notification raised during a step. Frontends drain them and
// print or log the message; nothing in the game depends on them.
type Event struct {
	Kind EventKind
	Tick uint64
	Cell core.Cell // Player cell when the event fired
}

// Message returns the player-facing notification text.
func (e Event) Message() string {
	switch e.Kind {
	case EventHazardKilled:
		return "You killed the Wampus!"
	case EventGoldCollected:
		return "You collected the gold!"
	case EventFellIntoPit:
		return "You fell into a pit!"
	case EventWon:
		return "You returned to the start with the gold! You win!"
	case EventCaught:
		return "You were caught by the Wampus!"
	default:
		return ""
	}
}
