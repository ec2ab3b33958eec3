package wampus

// rule is one end-of-frame check. apply may mutate the world and reports
// whether the rule fired.
type rule struct {
	name    string
	event   EventKind
	outcome Outcome // OutcomeNone for rules that do not end the game
	apply   func(w *World) bool
}

// rules run every playing frame, in this order, against post-movement
// positions, whether or not anything moved:
//
//  1. gold pickup (never ends the game, so it always runs first)
//  2. pit fall
//  3. win (home with the gold)
//  4. capture by a live hazard
//
// The first rule with an outcome that fires ends the game and the remaining
// rules are skipped, so a pit under the origin beats a win and a pit under
// the hazard beats a capture.
var rules = []rule{
	{name: "gold", event: EventGoldCollected, outcome: OutcomeNone, apply: (*World).PickUpGold},
	{name: "pit", event: EventFellIntoPit, outcome: OutcomePit, apply: (*World).PlayerInPit},
	{name: "win", event: EventWon, outcome: OutcomeWin, apply: (*World).PlayerHome},
	{name: "caught", event: EventCaught, outcome: OutcomeCaught, apply: (*World).PlayerCaught},
}

// RuleOrder returns the names of the end-of-frame checks in evaluation order.
func RuleOrder() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}
