package events

import (
	"time"

	"github.com/beggan78/dif-coach/match"
)

// EventType represents the type of coach-board event
type EventType int

const (
	// EventRotationCommitted signals a substitution or goalie change was applied
	// Trigger: orchestrator apply step
	// Consumer: audio cue, board status bar | Payload: *RotationPayload
	EventRotationCommitted EventType = iota

	// EventPhaseChanged signals an animation phase transition
	// Trigger: orchestrator | Payload: *PhasePayload
	EventPhaseChanged

	// EventUndoApplied signals the last rotation was reversed
	// Consumer: board status bar | Payload: *RotationPayload
	EventUndoApplied

	// EventTimerAlert signals the substitution timer passed the rotation interval
	// Trigger: board tick loop
	// Consumer: audio cue | Payload: nil
	EventTimerAlert
)

// String returns the event type name for debugging
func (e EventType) String() string {
	switch e {
	case EventRotationCommitted:
		return "RotationCommitted"
	case EventPhaseChanged:
		return "PhaseChanged"
	case EventUndoApplied:
		return "UndoApplied"
	case EventTimerAlert:
		return "TimerAlert"
	default:
		return "Unknown"
	}
}

// GameEvent is one immutable event flowing from producers to consumers
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}

// RotationPayload describes the players affected by a committed rotation
type RotationPayload struct {
	CameOn  []match.PlayerID
	WentOff []match.PlayerID
}

// PhasePayload carries the new animation phase number
type PhasePayload struct {
	Phase int32
}
