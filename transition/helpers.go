package transition

import (
	"github.com/beggan78/dif-coach/match"
	"github.com/beggan78/dif-coach/team"
)

// mutate rewrites one player's stats inside a cloned state
func mutate(st *match.GameState, id match.PlayerID, fn func(*match.PlayerStats)) {
	p, ok := st.Players[id]
	if !ok {
		return
	}
	fn(&p.Stats)
	st.Players[id] = p
}

// resyncSubKeys realigns every benched player's PairKey with its position in
// the substitute order after the order changed
func resyncSubKeys(st *match.GameState) {
	for i, id := range st.Formation.Subs {
		slot := team.SubstituteSlot(i + 1)
		mutate(st, id, func(s *match.PlayerStats) {
			s.PairKey = slot
		})
	}
}

// fieldSlotOf finds the field slot a player occupies in individual topology
func fieldSlotOf(st match.GameState, id match.PlayerID) (team.SlotID, bool) {
	for slot, occupant := range st.Formation.Field {
		if occupant == id {
			return slot, true
		}
	}
	return "", false
}

// subIndexOf finds a player's position in the substitute order
func subIndexOf(st match.GameState, id match.PlayerID) (int, bool) {
	for i, s := range st.Formation.Subs {
		if s == id {
			return i, true
		}
	}
	return -1, false
}

// pairMembershipOf finds the pair slot holding a player, pairs topology
func pairMembershipOf(st match.GameState, id match.PlayerID) (team.SlotID, match.Pair, bool) {
	for slot, pair := range st.Formation.Pairs {
		if pair.Defender == id || pair.Attacker == id {
			return slot, pair, true
		}
	}
	return "", match.Pair{}, false
}
