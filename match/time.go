package match

import (
	"time"

	"github.com/beggan78/dif-coach/team"
)

// StintSeconds returns the whole seconds elapsed between stint start and now.
// A zero start or a start in the future (clock skew) yields 0.
func StintSeconds(start, now time.Time) int64 {
	if start.IsZero() {
		return 0
	}
	d := now.Sub(start)
	if d < 0 {
		return 0
	}
	return int64(d / time.Second)
}

// TotalOutfieldSeconds returns accumulated outfield time plus the live stint
// when the clock is running and the player is on the field. While paused only
// closed stints count.
func (s PlayerStats) TotalOutfieldSeconds(paused bool, now time.Time) int64 {
	total := s.TimeOnFieldSeconds
	if !paused && s.Status == StatusOnField {
		total += StintSeconds(s.LastStintStart, now)
	}
	return total
}

// AttackDefenseDiff returns attacker seconds minus defender seconds. A live
// stint contributes to whichever side matches the player's current role;
// midfielder stints contribute to neither.
func (s PlayerStats) AttackDefenseDiff(paused bool, now time.Time) int64 {
	attacker := s.TimeAsAttackerSeconds
	defender := s.TimeAsDefenderSeconds
	if !paused && s.Status == StatusOnField {
		live := StintSeconds(s.LastStintStart, now)
		switch s.Role {
		case team.RoleAttacker:
			attacker += live
		case team.RoleDefender:
			defender += live
		}
	}
	return attacker - defender
}

// TimeStats is the per-player figure pair shown on the board
type TimeStats struct {
	TotalOutfieldSeconds int64
	AttackDefenseDiff    int64
}
