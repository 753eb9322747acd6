package match

import (
	"time"

	"github.com/beggan78/dif-coach/team"
)

// PlayerID identifies a squad member for the duration of a match
type PlayerID string

// Status is where a player currently is
type Status int

const (
	StatusSubstitute Status = iota
	StatusOnField
	StatusGoalie
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case StatusOnField:
		return "onField"
	case StatusGoalie:
		return "goalie"
	default:
		return "substitute"
	}
}

// PlayerStats carries a player's live position and time bookkeeping.
// Accumulated seconds cover closed stints only; LastStintStart marks an open
// stint and is zero otherwise.
type PlayerStats struct {
	Status   Status
	Role     team.Role
	PairKey  team.SlotID // slot currently occupied: field, pair, or substitute slot
	Inactive bool

	TimeOnFieldSeconds      int64
	TimeAsAttackerSeconds   int64
	TimeAsDefenderSeconds   int64
	TimeAsMidfielderSeconds int64
	TimeAsGoalieSeconds     int64

	LastStintStart time.Time
}

// Player is one squad member
type Player struct {
	ID    PlayerID
	Name  string
	Stats PlayerStats
}

// WithStintClosed accumulates the open stint into the time totals and clears
// the stint marker. Called only from transitions that change Status, in the
// same step as the status change.
func (s PlayerStats) WithStintClosed(now time.Time) PlayerStats {
	if s.LastStintStart.IsZero() {
		return s
	}
	d := StintSeconds(s.LastStintStart, now)
	switch s.Status {
	case StatusOnField:
		s.TimeOnFieldSeconds += d
		switch s.Role {
		case team.RoleAttacker:
			s.TimeAsAttackerSeconds += d
		case team.RoleDefender:
			s.TimeAsDefenderSeconds += d
		case team.RoleMidfielder:
			s.TimeAsMidfielderSeconds += d
		}
	case StatusGoalie:
		s.TimeAsGoalieSeconds += d
	}
	s.LastStintStart = time.Time{}
	return s
}

// WithStintOpened marks the start of a new stint
func (s PlayerStats) WithStintOpened(now time.Time) PlayerStats {
	s.LastStintStart = now
	return s
}
