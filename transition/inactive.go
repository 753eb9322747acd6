package transition

import (
	"fmt"

	"github.com/beggan78/dif-coach/match"
	"github.com/beggan78/dif-coach/rotation"
)

// ToggleInactive flips a substitute's availability. Deactivation parks the
// player at the rear of the bench so the remaining active substitutes shift
// forward; reactivation re-inserts them behind the active substitutes. When
// the player is the only substitute (or already rearmost) no slot changes,
// so the board skips the slot animation.
func ToggleInactive(st match.GameState, id match.PlayerID) (Outcome, error) {
	if !st.Config.SupportsInactive() {
		return Outcome{}, ErrUnsupportedTopology
	}
	p, ok := st.Players[id]
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
	}
	if p.Stats.Status != match.StatusSubstitute {
		return Outcome{}, ErrNotSubstitute
	}

	next := st.Clone()
	if p.Stats.Inactive {
		mutate(&next, id, func(s *match.PlayerStats) {
			s.Inactive = false
		})
		next.Formation.Subs = rotation.InsertBehindActives(next.Formation.Subs, id, next.Players)
	} else {
		mutate(&next, id, func(s *match.PlayerStats) {
			s.Inactive = true
		})
		next.Formation.Subs = rotation.MoveToRear(next.Formation.Subs, id)
	}
	resyncSubKeys(&next)

	// Pointers must never reference an inactive player
	next.Queue = rotation.Recompute(next)

	return Outcome{State: next}, nil
}
