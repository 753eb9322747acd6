package match

import "github.com/beggan78/dif-coach/team"

// Pair is a bonded defender+attacker unit, pairs topology only
type Pair struct {
	Defender PlayerID
	Attacker PlayerID
}

// Formation maps slots to the players occupying them.
// Individual topology uses Field plus the ordered Subs bench; pairs topology
// uses Pairs (including the substitute pair). Exactly one representation is
// populated, selected by the team configuration.
type Formation struct {
	Goalie PlayerID

	Field map[team.SlotID]PlayerID
	Subs  []PlayerID // index 0 occupies substitute_1

	Pairs map[team.SlotID]Pair
}

// Clone returns a deep copy
func (f Formation) Clone() Formation {
	out := Formation{Goalie: f.Goalie}
	if f.Field != nil {
		out.Field = make(map[team.SlotID]PlayerID, len(f.Field))
		for k, v := range f.Field {
			out.Field[k] = v
		}
	}
	if f.Subs != nil {
		out.Subs = append([]PlayerID(nil), f.Subs...)
	}
	if f.Pairs != nil {
		out.Pairs = make(map[team.SlotID]Pair, len(f.Pairs))
		for k, v := range f.Pairs {
			out.Pairs[k] = v
		}
	}
	return out
}

// SlotOf resolves the slot a player currently occupies
func (f Formation) SlotOf(id PlayerID) (team.SlotID, bool) {
	if id == "" {
		return "", false
	}
	if f.Goalie == id {
		return team.SlotGoalie, true
	}
	for slot, occupant := range f.Field {
		if occupant == id {
			return slot, true
		}
	}
	for i, occupant := range f.Subs {
		if occupant == id {
			return team.SubstituteSlot(i + 1), true
		}
	}
	for slot, pair := range f.Pairs {
		if pair.Defender == id || pair.Attacker == id {
			return slot, true
		}
	}
	return "", false
}

// PlayerIDs returns every player referenced by the formation
func (f Formation) PlayerIDs() []PlayerID {
	var ids []PlayerID
	if f.Goalie != "" {
		ids = append(ids, f.Goalie)
	}
	for _, id := range f.Field {
		ids = append(ids, id)
	}
	ids = append(ids, f.Subs...)
	for _, pair := range f.Pairs {
		ids = append(ids, pair.Defender, pair.Attacker)
	}
	return ids
}

// Diff returns the players whose slot differs between f and after, in no
// particular order. Players present on only one side count as moved.
func (f Formation) Diff(after Formation) []PlayerID {
	seen := make(map[PlayerID]bool)
	var moved []PlayerID
	check := func(id PlayerID) {
		if seen[id] {
			return
		}
		seen[id] = true
		beforeSlot, beforeOK := f.SlotOf(id)
		afterSlot, afterOK := after.SlotOf(id)
		if beforeOK != afterOK || beforeSlot != afterSlot {
			moved = append(moved, id)
		}
	}
	for _, id := range f.PlayerIDs() {
		check(id)
	}
	for _, id := range after.PlayerIDs() {
		check(id)
	}
	return moved
}
