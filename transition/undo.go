package transition

import (
	"github.com/beggan78/dif-coach/match"
)

// Undo reverses the rotation captured in rec: formation and queue pointers
// come back verbatim, every affected player's stats are restored from the
// snapshot rather than recomputed, and the caller is told to rewind the
// substitution timer to the recorded value anchored at the recorded instant.
// A nil record is a no-op the caller reports as a warning.
func Undo(st match.GameState, rec *Record) (Outcome, error) {
	if rec == nil {
		return Outcome{State: st}, ErrNoUndoRecord
	}

	next := st.Clone()
	next.Formation = rec.Formation.Clone()
	next.Queue = rec.Queue.Clone()
	for id, stats := range rec.StatsBefore {
		p, ok := next.Players[id]
		if !ok {
			continue
		}
		p.Stats = stats
		next.Players[id] = p
	}
	next.SubTimerSeconds = rec.SubTimerSeconds

	return Outcome{
		State: next,
		// The players being put back on the field get the post-commit highlight
		CameOn: append([]match.PlayerID(nil), rec.WentOff...),
		TimerRestore: &TimerRestore{
			Seconds:    rec.SubTimerSeconds,
			AnchoredAt: rec.Timestamp,
		},
	}, nil
}
