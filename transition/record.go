package transition

import (
	"sync"
	"time"

	"github.com/beggan78/dif-coach/match"
	"github.com/beggan78/dif-coach/team"
)

// Record is the snapshot sufficient to reverse exactly one rotation: the full
// prior formation and queue, the prior stats of every affected player, and
// the substitution-timer value at the moment of the transition.
type Record struct {
	Timestamp time.Time
	Config    team.Config
	Formation match.Formation
	Queue     match.RotationQueue

	// StatsBefore holds the pre-transition stats of every player who came on
	// or went off; undo restores these verbatim rather than recomputing
	StatsBefore map[match.PlayerID]match.PlayerStats

	CameOn  []match.PlayerID
	WentOff []match.PlayerID

	SubTimerSeconds int64
}

// NewRecord captures the undo snapshot for a rotation about to be applied.
// Must be called with the pre-transition state.
func NewRecord(before match.GameState, cameOn, wentOff []match.PlayerID, now time.Time) *Record {
	stats := make(map[match.PlayerID]match.PlayerStats, len(cameOn)+len(wentOff))
	for _, id := range cameOn {
		if p, ok := before.Players[id]; ok {
			stats[id] = p.Stats
		}
	}
	for _, id := range wentOff {
		if p, ok := before.Players[id]; ok {
			stats[id] = p.Stats
		}
	}
	return &Record{
		Timestamp:       now,
		Config:          before.Config,
		Formation:       before.Formation.Clone(),
		Queue:           before.Queue.Clone(),
		StatsBefore:     stats,
		CameOn:          append([]match.PlayerID(nil), cameOn...),
		WentOff:         append([]match.PlayerID(nil), wentOff...),
		SubTimerSeconds: before.SubTimerSeconds,
	}
}

// Log holds at most the single most recent undo record. A new rotation
// replaces the previous record; undo consumes it. There is no history stack.
type Log struct {
	mu  sync.Mutex
	rec *Record
}

// Store replaces the current record
func (l *Log) Store(r *Record) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rec = r
}

// Take returns the current record and clears it
func (l *Log) Take() *Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	r := l.rec
	l.rec = nil
	return r
}

// Peek returns the current record without consuming it
func (l *Log) Peek() *Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rec
}

// Clear drops any pending record
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rec = nil
}
