package transition

import (
	"fmt"

	"github.com/beggan78/dif-coach/match"
	"github.com/beggan78/dif-coach/team"
)

// PositionSwitch exchanges the slots (and therefore roles) of two on-field
// players. The rotation queue and both players' stints are untouched; both
// remain on the field throughout. Pairs topology rejects this operation;
// only the in-pair role swap is available there.
func PositionSwitch(st match.GameState, source, target match.PlayerID) (Outcome, error) {
	if st.Config.Topology == team.TopologyPairs {
		return Outcome{}, fmt.Errorf("%w: use the in-pair role swap instead", ErrUnsupportedTopology)
	}
	if source == target {
		return Outcome{State: st.Clone()}, nil
	}
	sourceSlot, ok := fieldSlotOf(st, source)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %s", ErrPlayerNotOnField, source)
	}
	targetSlot, ok := fieldSlotOf(st, target)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %s", ErrPlayerNotOnField, target)
	}

	next := st.Clone()
	next.Formation.Field[sourceSlot] = target
	next.Formation.Field[targetSlot] = source

	sourceRole := next.Config.RoleFor(targetSlot)
	targetRole := next.Config.RoleFor(sourceSlot)
	mutate(&next, source, func(s *match.PlayerStats) {
		s.PairKey = targetSlot
		s.Role = sourceRole
	})
	mutate(&next, target, func(s *match.PlayerStats) {
		s.PairKey = sourceSlot
		s.Role = targetRole
	})

	return Outcome{State: next}, nil
}

// PairRoleSwap exchanges defender and attacker within a single pair. The pair
// keeps its slot, so nothing moves visually and no stint boundary is crossed.
func PairRoleSwap(st match.GameState, pairSlot team.SlotID) (Outcome, error) {
	if st.Config.Topology != team.TopologyPairs {
		return Outcome{}, ErrUnsupportedTopology
	}
	pair, ok := st.Formation.Pairs[pairSlot]
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %s", ErrUnknownSlot, pairSlot)
	}

	next := st.Clone()
	next.Formation.Pairs[pairSlot] = match.Pair{
		Defender: pair.Attacker,
		Attacker: pair.Defender,
	}
	mutate(&next, pair.Defender, func(s *match.PlayerStats) {
		s.Role = team.RoleAttacker
	})
	mutate(&next, pair.Attacker, func(s *match.PlayerStats) {
		s.Role = team.RoleDefender
	})

	return Outcome{State: next}, nil
}

// SubstituteSwap exchanges the occupants of two substitute slots, promoting
// the next-next substitute ahead of the next one without touching the field.
func SubstituteSwap(st match.GameState, slotA, slotB team.SlotID) (Outcome, error) {
	if st.Config.Topology != team.TopologyIndividual {
		return Outcome{}, ErrUnsupportedTopology
	}
	i, ok := subSlotIndex(st, slotA)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %s", ErrUnknownSlot, slotA)
	}
	j, ok := subSlotIndex(st, slotB)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %s", ErrUnknownSlot, slotB)
	}
	if i == j {
		return Outcome{State: st.Clone()}, nil
	}

	next := st.Clone()
	next.Formation.Subs[i], next.Formation.Subs[j] = next.Formation.Subs[j], next.Formation.Subs[i]
	resyncSubKeys(&next)

	return Outcome{State: next}, nil
}

// subSlotIndex maps a substitute slot id to its position in the bench order
func subSlotIndex(st match.GameState, slot team.SlotID) (int, bool) {
	for i := range st.Formation.Subs {
		if team.SubstituteSlot(i+1) == slot {
			return i, true
		}
	}
	return 0, false
}
