package match

import (
	"time"

	"github.com/beggan78/dif-coach/team"
)

// RotationQueue orders on-field players by who comes off next.
// NextOut and NextNextOut are derived pointers maintained by the rotation
// package; NextPairOut replaces NextOut as the rotation unit in pairs topology.
type RotationQueue struct {
	Order       []PlayerID
	NextOut     PlayerID
	NextNextOut PlayerID
	NextPairOut team.SlotID
}

// Clone returns a deep copy
func (q RotationQueue) Clone() RotationQueue {
	q.Order = append([]PlayerID(nil), q.Order...)
	return q
}

// GameState is the complete match snapshot the transition engine operates on.
// Transitions never mutate a GameState in place; they clone, modify the clone
// and return it, so the animation layer can diff before against after.
type GameState struct {
	Config    team.Config
	Players   map[PlayerID]Player
	Formation Formation
	Queue     RotationQueue

	SubTimerSeconds int64
	Period          int
	HomeScore       int
	AwayScore       int
}

// Clone returns a deep copy
func (g GameState) Clone() GameState {
	players := make(map[PlayerID]Player, len(g.Players))
	for id, p := range g.Players {
		players[id] = p
	}
	g.Players = players
	g.Formation = g.Formation.Clone()
	g.Queue = g.Queue.Clone()
	return g
}

// Player returns the player for id, reporting whether it exists
func (g GameState) Player(id PlayerID) (Player, bool) {
	p, ok := g.Players[id]
	return p, ok
}

// TimeStatsFor returns the board figures for one player. An unknown id yields
// zero values; stat display stays resilient to transient inconsistency.
func (g GameState) TimeStatsFor(id PlayerID, paused bool, now time.Time) TimeStats {
	p, ok := g.Players[id]
	if !ok {
		return TimeStats{}
	}
	return TimeStats{
		TotalOutfieldSeconds: p.Stats.TotalOutfieldSeconds(paused, now),
		AttackDefenseDiff:    p.Stats.AttackDefenseDiff(paused, now),
	}
}
