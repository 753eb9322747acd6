package transition

import (
	"time"

	"github.com/beggan78/dif-coach/match"
)

// TimerRestore asks the timer surface to rewind the substitution timer to a
// recorded value anchored at a recorded instant
type TimerRestore struct {
	Seconds    int64
	AnchoredAt time.Time
}

// Outcome is the complete result of one transition: the new state plus the
// movement sets the animation layer and undo log need.
type Outcome struct {
	State match.GameState

	// CameOn lists players whose status became on-field (or goalie); the
	// orchestrator applies the post-commit highlight to them
	CameOn []match.PlayerID

	// WentOff lists players whose status left on-field (or goalie)
	WentOff []match.PlayerID

	// Record is the undo snapshot, present on rotations that are reversible
	Record *Record

	// TimerRestore is set by Undo only
	TimerRestore *TimerRestore
}

// Fn is a transition closure the animation orchestrator can run.
// All transitions are pure: the input state is never mutated.
type Fn func(match.GameState) (Outcome, error)
