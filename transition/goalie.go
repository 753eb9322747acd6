package transition

import (
	"fmt"
	"time"

	"github.com/beggan78/dif-coach/match"
	"github.com/beggan78/dif-coach/rotation"
	"github.com/beggan78/dif-coach/team"
)

// GoalieSwitch puts newGoalie in goal and hands the former goalie whatever
// slot newGoalie held. Both players cross a status boundary, so both stints
// close and reopen here, and the rotation pointers are recomputed because the
// pool of rotating players changed. A former goalie who takes an outfield
// slot joins the rotation at the rear.
func GoalieSwitch(st match.GameState, newGoalie match.PlayerID, now time.Time) (Outcome, error) {
	p, ok := st.Players[newGoalie]
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %s", ErrUnknownPlayer, newGoalie)
	}
	if st.Formation.Goalie == newGoalie {
		return Outcome{}, ErrAlreadyGoalie
	}
	if p.Stats.Inactive {
		return Outcome{}, ErrPlayerInactive
	}
	oldGoalie := st.Formation.Goalie
	if oldGoalie == "" {
		return Outcome{}, fmt.Errorf("%w: no goalie assigned", ErrUnknownSlot)
	}

	cameOn := []match.PlayerID{newGoalie}
	wentOff := []match.PlayerID{oldGoalie}
	rec := NewRecord(st, cameOn, wentOff, now)
	next := st.Clone()

	vacatedStatus := p.Stats.Status
	vacatedRole := p.Stats.Role

	// New goalie leaves the rotation pool
	mutate(&next, newGoalie, func(s *match.PlayerStats) {
		*s = s.WithStintClosed(now)
		s.Status = match.StatusGoalie
		s.Role = team.RoleNone
		s.PairKey = team.SlotGoalie
		*s = s.WithStintOpened(now)
	})

	// Former goalie inherits the vacated slot
	mutate(&next, oldGoalie, func(s *match.PlayerStats) {
		*s = s.WithStintClosed(now)
		s.Status = vacatedStatus
		s.Role = vacatedRole
		if vacatedStatus == match.StatusOnField {
			*s = s.WithStintOpened(now)
		}
	})

	next.Formation.Goalie = newGoalie
	if err := placeInVacatedSlot(&next, st, newGoalie, oldGoalie); err != nil {
		return Outcome{}, err
	}

	if vacatedStatus == match.StatusOnField {
		next.Queue.Order = rotation.AdvanceAfterSubstitution(next.Queue.Order, newGoalie, oldGoalie)
	}
	next.Queue = rotation.Recompute(next)

	return Outcome{
		State:   next,
		CameOn:  cameOn,
		WentOff: wentOff,
		Record:  rec,
	}, nil
}

// placeInVacatedSlot rewrites the formation entry the new goalie held so the
// former goalie occupies it, for either topology
func placeInVacatedSlot(next *match.GameState, before match.GameState, newGoalie, oldGoalie match.PlayerID) error {
	if slot, ok := fieldSlotOf(before, newGoalie); ok {
		next.Formation.Field[slot] = oldGoalie
		mutate(next, oldGoalie, func(s *match.PlayerStats) {
			s.PairKey = slot
		})
		return nil
	}
	if idx, ok := subIndexOf(before, newGoalie); ok {
		next.Formation.Subs[idx] = oldGoalie
		resyncSubKeys(next)
		return nil
	}
	if slot, pair, ok := pairMembershipOf(before, newGoalie); ok {
		if pair.Defender == newGoalie {
			pair.Defender = oldGoalie
			mutate(next, oldGoalie, func(s *match.PlayerStats) {
				s.Role = team.RoleDefender
			})
		} else {
			pair.Attacker = oldGoalie
			mutate(next, oldGoalie, func(s *match.PlayerStats) {
				s.Role = team.RoleAttacker
			})
		}
		next.Formation.Pairs[slot] = pair
		mutate(next, oldGoalie, func(s *match.PlayerStats) {
			s.PairKey = slot
		})
		return nil
	}
	return fmt.Errorf("%w: %s occupies no slot", ErrUnknownSlot, newGoalie)
}
