// Package transition implements the pure state-transition functions of the
// rotation engine. Every function takes a complete GameState, treats it as
// immutable and returns a complete new one; the animation layer diffs the two
// and the commit surface applies the result atomically.
package transition

import (
	"time"

	"github.com/beggan78/dif-coach/match"
	"github.com/beggan78/dif-coach/rotation"
	"github.com/beggan78/dif-coach/team"
)

// Substitution rotates the next scheduled player (or pair) off the field and
// brings the foremost eligible substitute on. Outgoing stints close and
// incoming stints open in the same step, and the queue pointers advance.
func Substitution(st match.GameState, now time.Time) (Outcome, error) {
	if st.Config.Topology == team.TopologyPairs {
		return pairSubstitution(st, now)
	}
	return individualSubstitution(st, now)
}

func individualSubstitution(st match.GameState, now time.Time) (Outcome, error) {
	out := st.Queue.NextOut
	if out == "" {
		st.Queue = rotation.Recompute(st)
		out = st.Queue.NextOut
	}
	if out == "" {
		return Outcome{}, ErrNoEligiblePlayer
	}
	in, ok := rotation.NextIn(st)
	if !ok {
		return Outcome{}, ErrNoActiveSubstitutes
	}
	fieldSlot, ok := fieldSlotOf(st, out)
	if !ok {
		return Outcome{}, ErrPlayerNotOnField
	}

	rec := NewRecord(st, []match.PlayerID{in}, []match.PlayerID{out}, now)
	next := st.Clone()
	role := next.Config.RoleFor(fieldSlot)

	// Outgoing: close the stint, park at the rear of the bench
	mutate(&next, out, func(s *match.PlayerStats) {
		*s = s.WithStintClosed(now)
		s.Status = match.StatusSubstitute
		s.Role = team.RoleNone
	})

	// Incoming: take over the vacated slot and role, open a stint
	mutate(&next, in, func(s *match.PlayerStats) {
		s.Status = match.StatusOnField
		s.Role = role
		s.PairKey = fieldSlot
		*s = s.WithStintOpened(now)
	})

	next.Formation.Field[fieldSlot] = in
	subs := make([]match.PlayerID, 0, len(next.Formation.Subs))
	for _, id := range next.Formation.Subs {
		if id != in {
			subs = append(subs, id)
		}
	}
	// Inactive substitutes stay parked at the rear of the rewritten bench
	next.Formation.Subs = rotation.ParkInactiveAtRear(append(subs, out), next.Players)
	resyncSubKeys(&next)

	next.Queue.Order = rotation.AdvanceAfterSubstitution(next.Queue.Order, out, in)
	next.Queue = rotation.Recompute(next)

	return Outcome{
		State:   next,
		CameOn:  []match.PlayerID{in},
		WentOff: []match.PlayerID{out},
		Record:  rec,
	}, nil
}

func pairSubstitution(st match.GameState, now time.Time) (Outcome, error) {
	st.Queue = rotation.Recompute(st)
	outSlot := st.Queue.NextPairOut
	outPair, ok := st.Formation.Pairs[outSlot]
	if !ok {
		return Outcome{}, ErrNoEligiblePlayer
	}
	inSlot, inPair, ok := benchPair(st)
	if !ok {
		return Outcome{}, ErrNoActiveSubstitutes
	}

	cameOn := []match.PlayerID{inPair.Defender, inPair.Attacker}
	wentOff := []match.PlayerID{outPair.Defender, outPair.Attacker}
	rec := NewRecord(st, cameOn, wentOff, now)
	next := st.Clone()

	// Both members of each pair change status together
	for _, id := range wentOff {
		mutate(&next, id, func(s *match.PlayerStats) {
			*s = s.WithStintClosed(now)
			s.Status = match.StatusSubstitute
			s.PairKey = inSlot
		})
	}
	for _, id := range cameOn {
		mutate(&next, id, func(s *match.PlayerStats) {
			s.Status = match.StatusOnField
			s.PairKey = outSlot
			*s = s.WithStintOpened(now)
		})
	}

	next.Formation.Pairs[outSlot] = inPair
	next.Formation.Pairs[inSlot] = outPair

	order := rotation.AdvanceAfterSubstitution(next.Queue.Order, outPair.Defender, inPair.Defender)
	next.Queue.Order = rotation.AdvanceAfterSubstitution(order, outPair.Attacker, inPair.Attacker)
	next.Queue.NextPairOut = nextFieldPair(next.Config, outSlot)
	next.Queue = rotation.Recompute(next)

	return Outcome{
		State:   next,
		CameOn:  cameOn,
		WentOff: wentOff,
		Record:  rec,
	}, nil
}

// benchPair returns the substitute pair slot and its occupants
func benchPair(st match.GameState) (team.SlotID, match.Pair, bool) {
	for _, slot := range st.Config.SubPairs {
		if pair, ok := st.Formation.Pairs[slot]; ok {
			return slot, pair, true
		}
	}
	return "", match.Pair{}, false
}

// nextFieldPair returns the field pair due after current, cycling in
// configuration order
func nextFieldPair(cfg team.Config, current team.SlotID) team.SlotID {
	for i, slot := range cfg.FieldPairs {
		if slot == current {
			return cfg.FieldPairs[(i+1)%len(cfg.FieldPairs)]
		}
	}
	if len(cfg.FieldPairs) == 0 {
		return ""
	}
	return cfg.FieldPairs[0]
}
