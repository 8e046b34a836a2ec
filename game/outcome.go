package game

import (
	"github.com/lixenwraith/blind-maze/physics"
	"github.com/lixenwraith/blind-maze/vmath"
)

// OutcomeKind tags the round result
type OutcomeKind uint8

const (
	OutcomePlaying OutcomeKind = iota
	OutcomeWon
	OutcomeLost
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomePlaying:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	}
	return "unknown"
}

// Outcome is the latched round result
// Position is where the round ended; it carries no meaning while playing
type Outcome struct {
	Kind     OutcomeKind
	Position vmath.Vec2
	Status   physics.Status // Classification that ended the round
}

// Over reports whether the round has ended
func (o Outcome) Over() bool {
	return o.Kind != OutcomePlaying
}

func outcomeFor(s physics.Status, pos vmath.Vec2) Outcome {
	if s.Won() {
		return Outcome{Kind: OutcomeWon, Position: pos, Status: s}
	}
	return Outcome{Kind: OutcomeLost, Position: pos, Status: s}
}
