// Package board is the coach-facing terminal front end: it holds the
// committed GameState, owns the undo log, and turns key presses into
// transition calls routed through the animation orchestrator.
package board

import (
	"errors"
	"log"
	"sync"
	"sync/atomic"

	"github.com/beggan78/dif-coach/animate"
	"github.com/beggan78/dif-coach/clock"
	"github.com/beggan78/dif-coach/events"
	"github.com/beggan78/dif-coach/match"
	"github.com/beggan78/dif-coach/rotation"
	"github.com/beggan78/dif-coach/status"
	"github.com/beggan78/dif-coach/team"
	"github.com/beggan78/dif-coach/transition"
)

// Visual is the transient presentation state the renderer reads alongside the
// committed GameState
type Visual struct {
	Moving      map[match.PlayerID]bool
	Glow        map[match.PlayerID]bool
	HideNextOff bool
	Message     string
}

// Session is the single writer of match state. Every transition flows through
// Trigger -> orchestrator -> commit; the renderer only ever sees complete
// snapshots.
type Session struct {
	mu     sync.Mutex
	state  match.GameState
	visual Visual

	Clock   *clock.MatchClock
	orch    *animate.Orchestrator
	undo    transition.Log
	queue   *events.EventQueue
	metrics *status.Registry

	statRotations *atomic.Int64
	statUndos     *atomic.Int64
	statRejected  *atomic.Int64
}

// NewSession wires the state holder
func NewSession(st match.GameState, mc *clock.MatchClock, orch *animate.Orchestrator, queue *events.EventQueue, reg *status.Registry) *Session {
	return &Session{
		state:         st,
		visual:        Visual{Moving: map[match.PlayerID]bool{}, Glow: map[match.PlayerID]bool{}},
		Clock:         mc,
		orch:          orch,
		queue:         queue,
		metrics:       reg,
		statRotations: reg.Ints.Get("board.rotations"),
		statUndos:     reg.Ints.Get("board.undos"),
		statRejected:  reg.Ints.Get("board.rejected_triggers"),
	}
}

// Snapshot is the state factory: a complete copy of the committed state with
// the live substitution-timer reading filled in
func (s *Session) Snapshot() match.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state.Clone()
	st.SubTimerSeconds = s.Clock.SubTimerSeconds()
	return st
}

// VisualSnapshot returns a copy of the presentation state
func (s *Session) VisualSnapshot() Visual {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := Visual{
		Moving:      make(map[match.PlayerID]bool, len(s.visual.Moving)),
		Glow:        make(map[match.PlayerID]bool, len(s.visual.Glow)),
		HideNextOff: s.visual.HideNextOff,
		Message:     s.visual.Message,
	}
	for id := range s.visual.Moving {
		v.Moving[id] = true
	}
	for id := range s.visual.Glow {
		v.Glow[id] = true
	}
	return v
}

// Metrics exposes the counter registry for the status bar
func (s *Session) Metrics() *status.Registry {
	return s.metrics
}

// Phase exposes the orchestrator phase so input handling can disable the
// triggering controls while a sequence runs
func (s *Session) Phase() animate.Phase {
	return s.orch.Phase()
}

// CanSubstitute reports whether a substitution trigger would find an eligible
// substitute
func (s *Session) CanSubstitute() bool {
	return rotation.HasActiveSubstitutes(s.Snapshot())
}

// CanUndo reports whether an undo record is pending
func (s *Session) CanUndo() bool {
	return s.undo.Peek() != nil
}

// SubstituteNow rotates the scheduled player or pair off the field
func (s *Session) SubstituteNow() error {
	st := s.Snapshot()
	if !rotation.HasActiveSubstitutes(st) {
		return s.noteTrigger(transition.ErrNoActiveSubstitutes)
	}
	now := s.Clock.Now()
	err := s.orch.Animate(st, func(cur match.GameState) (transition.Outcome, error) {
		return transition.Substitution(cur, now)
	}, s.commitRotation, s.callbacks())
	return s.noteTrigger(err)
}

// SwitchPositions swaps two on-field players' slots
func (s *Session) SwitchPositions(source, target match.PlayerID) error {
	err := s.orch.Animate(s.Snapshot(), func(cur match.GameState) (transition.Outcome, error) {
		return transition.PositionSwitch(cur, source, target)
	}, s.commitPlain, s.callbacks())
	return s.noteTrigger(err)
}

// SwapPairRoles exchanges defender and attacker inside one pair
func (s *Session) SwapPairRoles(pairSlot team.SlotID) error {
	err := s.orch.Animate(s.Snapshot(), func(cur match.GameState) (transition.Outcome, error) {
		return transition.PairRoleSwap(cur, pairSlot)
	}, s.commitPlain, s.callbacks())
	return s.noteTrigger(err)
}

// ToggleInactive parks or unparks a substitute
func (s *Session) ToggleInactive(id match.PlayerID) error {
	err := s.orch.Animate(s.Snapshot(), func(cur match.GameState) (transition.Outcome, error) {
		return transition.ToggleInactive(cur, id)
	}, s.commitPlain, s.callbacks())
	return s.noteTrigger(err)
}

// SwapSubstitutes promotes one substitute slot over another
func (s *Session) SwapSubstitutes(slotA, slotB team.SlotID) error {
	err := s.orch.Animate(s.Snapshot(), func(cur match.GameState) (transition.Outcome, error) {
		return transition.SubstituteSwap(cur, slotA, slotB)
	}, s.commitPlain, s.callbacks())
	return s.noteTrigger(err)
}

// SwitchGoalie puts a new player in goal
func (s *Session) SwitchGoalie(id match.PlayerID) error {
	now := s.Clock.Now()
	err := s.orch.Animate(s.Snapshot(), func(cur match.GameState) (transition.Outcome, error) {
		return transition.GoalieSwitch(cur, id, now)
	}, s.commitGoalieSwitch, s.callbacks())
	return s.noteTrigger(err)
}

// Undo reverses the most recent rotation, if any
func (s *Session) Undo() error {
	rec := s.undo.Peek()
	err := s.orch.Animate(s.Snapshot(), func(cur match.GameState) (transition.Outcome, error) {
		return transition.Undo(cur, rec)
	}, s.commitUndo, s.callbacks())
	if errors.Is(err, transition.ErrNoUndoRecord) {
		log.Printf("undo requested with no record")
	}
	return s.noteTrigger(err)
}

// TimeStatsFor answers the player time-stat query from the committed state
func (s *Session) TimeStatsFor(id match.PlayerID) match.TimeStats {
	st := s.Snapshot()
	return st.TimeStatsFor(id, s.Clock.IsPaused(), s.Clock.Now())
}

// AddGoal bumps the score; goal event logging stays outside this system
func (s *Session) AddGoal(home bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if home {
		s.state.HomeScore++
	} else {
		s.state.AwayScore++
	}
}

// NextPeriod advances the period counter and restarts the substitution timer
func (s *Session) NextPeriod() {
	s.mu.Lock()
	s.state.Period++
	s.mu.Unlock()
	s.Clock.ResetSubTimer()
}

// commitRotation applies a reversible rotation: state, undo record, timer
// reset and the committed event
func (s *Session) commitRotation(out transition.Outcome) {
	s.commitRecorded(out, true)
}

// commitGoalieSwitch stores the undo record but leaves the substitution timer
// running; a goalie change does not restart the rotation interval
func (s *Session) commitGoalieSwitch(out transition.Outcome) {
	s.commitRecorded(out, false)
}

func (s *Session) commitRecorded(out transition.Outcome, resetTimer bool) {
	s.mu.Lock()
	s.state = out.State
	s.mu.Unlock()

	if out.Record != nil {
		s.undo.Store(out.Record)
	}
	if resetTimer {
		s.Clock.ResetSubTimer()
	}
	s.statRotations.Add(1)
	s.queue.Push(events.GameEvent{
		Type:      events.EventRotationCommitted,
		Payload:   &events.RotationPayload{CameOn: out.CameOn, WentOff: out.WentOff},
		Timestamp: s.Clock.RealTime(),
	})
}

// commitPlain applies a non-reversible adjustment
func (s *Session) commitPlain(out transition.Outcome) {
	s.mu.Lock()
	s.state = out.State
	s.mu.Unlock()
}

// commitUndo consumes the undo record and rewinds the substitution timer
func (s *Session) commitUndo(out transition.Outcome) {
	s.mu.Lock()
	s.state = out.State
	s.mu.Unlock()

	s.undo.Take()
	if out.TimerRestore != nil {
		s.Clock.RestoreSubTimer(out.TimerRestore.Seconds, out.TimerRestore.AnchoredAt)
	}
	s.statUndos.Add(1)
	s.queue.Push(events.GameEvent{
		Type:      events.EventUndoApplied,
		Payload:   &events.RotationPayload{CameOn: out.CameOn},
		Timestamp: s.Clock.RealTime(),
	})
}

// callbacks drive the renderer's highlight state through the phases
func (s *Session) callbacks() animate.Callbacks {
	return animate.Callbacks{
		OnSwitching: func(moved []match.PlayerID) {
			s.mu.Lock()
			s.visual.Moving = make(map[match.PlayerID]bool, len(moved))
			for _, id := range moved {
				s.visual.Moving[id] = true
			}
			s.visual.HideNextOff = true
			s.mu.Unlock()
			s.pushPhase()
		},
		OnCompleting: func(cameOn []match.PlayerID) {
			s.mu.Lock()
			s.visual.Moving = map[match.PlayerID]bool{}
			s.visual.Glow = make(map[match.PlayerID]bool, len(cameOn))
			for _, id := range cameOn {
				s.visual.Glow[id] = true
			}
			s.mu.Unlock()
			s.pushPhase()
		},
		OnIdle: func() {
			s.mu.Lock()
			s.visual.Moving = map[match.PlayerID]bool{}
			s.visual.Glow = map[match.PlayerID]bool{}
			s.visual.HideNextOff = false
			s.mu.Unlock()
			s.pushPhase()
		},
	}
}

// PushTimerAlert emits the sub-timer alert event for the audio cue
func (s *Session) PushTimerAlert() {
	s.queue.Push(events.GameEvent{
		Type:      events.EventTimerAlert,
		Timestamp: s.Clock.RealTime(),
	})
}

func (s *Session) pushPhase() {
	s.queue.Push(events.GameEvent{
		Type:      events.EventPhaseChanged,
		Payload:   &events.PhasePayload{Phase: int32(s.orch.Phase())},
		Timestamp: s.Clock.RealTime(),
	})
}

// noteTrigger records rejected triggers and surfaces user-facing messages
func (s *Session) noteTrigger(err error) error {
	if err == nil {
		s.setMessage("")
		return nil
	}
	s.statRejected.Add(1)
	s.setMessage(err.Error())
	return err
}

func (s *Session) setMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visual.Message = msg
}
