// Package rotation maintains the order in which players and pairs rotate off
// the field, and the derived next/next-next pointers shown on the board.
package rotation

import (
	"github.com/beggan78/dif-coach/match"
	"github.com/beggan78/dif-coach/team"
)

// Recompute derives the next-out pointers from the queue order and the
// current formation. Only on-field, non-goalie occupants are candidates; the
// pointers are cleared when fewer candidates exist than pointers.
func Recompute(st match.GameState) match.RotationQueue {
	q := st.Queue.Clone()

	if st.Config.Topology == team.TopologyPairs {
		q.NextOut = ""
		q.NextNextOut = ""
		if !isFieldPair(st.Config, q.NextPairOut) {
			q.NextPairOut = firstFieldPair(st.Config)
		}
		return q
	}

	q.NextPairOut = ""
	q.NextOut = ""
	q.NextNextOut = ""
	found := 0
	for _, id := range q.Order {
		p, ok := st.Players[id]
		if !ok || p.Stats.Status != match.StatusOnField {
			continue
		}
		switch found {
		case 0:
			q.NextOut = id
		case 1:
			q.NextNextOut = id
		}
		found++
		if found == 2 {
			break
		}
	}
	return q
}

// AdvanceAfterSubstitution rotates the queue order: the outgoing player is
// removed and the incoming player joins at the rear.
func AdvanceAfterSubstitution(order []match.PlayerID, out, in match.PlayerID) []match.PlayerID {
	next := make([]match.PlayerID, 0, len(order))
	for _, id := range order {
		if id != out {
			next = append(next, id)
		}
	}
	return append(next, in)
}

// NextIn returns the foremost active substitute, skipping inactive players.
// The bool result is false when no substitute is eligible.
func NextIn(st match.GameState) (match.PlayerID, bool) {
	for _, id := range st.Formation.Subs {
		p, ok := st.Players[id]
		if !ok || p.Stats.Inactive {
			continue
		}
		return id, true
	}
	return "", false
}

// HasActiveSubstitutes reports whether a substitution is currently possible.
// The board disables the substitute control when this is false.
func HasActiveSubstitutes(st match.GameState) bool {
	if st.Config.Topology == team.TopologyPairs {
		for _, slot := range st.Config.SubPairs {
			if _, ok := st.Formation.Pairs[slot]; ok {
				return true
			}
		}
		return false
	}
	_, ok := NextIn(st)
	return ok
}

// MoveToRear removes id from the substitute order and re-appends it at the
// rearmost slot, shifting the players behind it forward.
func MoveToRear(subs []match.PlayerID, id match.PlayerID) []match.PlayerID {
	next := make([]match.PlayerID, 0, len(subs))
	for _, s := range subs {
		if s != id {
			next = append(next, s)
		}
	}
	return append(next, id)
}

// InsertBehindActives places id behind every active substitute but ahead of
// the inactive ones, used when a parked player is reactivated.
func InsertBehindActives(subs []match.PlayerID, id match.PlayerID, players map[match.PlayerID]match.Player) []match.PlayerID {
	rest := make([]match.PlayerID, 0, len(subs))
	for _, s := range subs {
		if s != id {
			rest = append(rest, s)
		}
	}
	next := make([]match.PlayerID, 0, len(subs))
	inserted := false
	for _, s := range rest {
		if !inserted && players[s].Stats.Inactive {
			next = append(next, id)
			inserted = true
		}
		next = append(next, s)
	}
	if !inserted {
		next = append(next, id)
	}
	return next
}

// ParkInactiveAtRear reorders the bench so every inactive substitute sits
// behind the active ones, preserving relative order within each group.
func ParkInactiveAtRear(subs []match.PlayerID, players map[match.PlayerID]match.Player) []match.PlayerID {
	next := make([]match.PlayerID, 0, len(subs))
	for _, id := range subs {
		if !players[id].Stats.Inactive {
			next = append(next, id)
		}
	}
	for _, id := range subs {
		if players[id].Stats.Inactive {
			next = append(next, id)
		}
	}
	return next
}

func isFieldPair(cfg team.Config, slot team.SlotID) bool {
	for _, s := range cfg.FieldPairs {
		if s == slot {
			return true
		}
	}
	return false
}

func firstFieldPair(cfg team.Config) team.SlotID {
	if len(cfg.FieldPairs) == 0 {
		return ""
	}
	return cfg.FieldPairs[0]
}
