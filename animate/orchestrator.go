// Package animate sequences the two-phase visual transition around a rotation:
// compute the new state synchronously, show the movers, commit atomically,
// highlight the arrivals, return to idle.
package animate

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/beggan78/dif-coach/match"
	"github.com/beggan78/dif-coach/transition"
)

// Phase is the orchestrator's visible lifecycle state
type Phase int32

const (
	PhaseIdle Phase = iota
	PhaseSwitching
	PhaseCompleting
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseSwitching:
		return "switching"
	case PhaseCompleting:
		return "completing"
	default:
		return "idle"
	}
}

const (
	// DefaultSwitchDelay is how long moving players are shown in flight
	DefaultSwitchDelay = 1 * time.Second

	// DefaultGlowDelay is how long arrivals keep the post-commit highlight
	DefaultGlowDelay = 900 * time.Millisecond
)

// ErrAnimationInFlight rejects a trigger while a sequence is running.
// The caller is expected to disable the triggering control instead of queuing.
var ErrAnimationInFlight = errors.New("animation already in progress")

// Scheduler runs fn after d. Production uses time.AfterFunc; tests inject a
// synchronous or stepped scheduler.
type Scheduler func(d time.Duration, fn func())

// Callbacks let the presentation layer react to phase changes. Nil fields are
// skipped. OnSwitching receives every player whose slot changed; the board
// hides the next-off indicator for the duration. OnCompleting receives the
// players who came on, for the "recently substituted" highlight.
type Callbacks struct {
	OnSwitching  func(moved []match.PlayerID)
	OnCompleting func(cameOn []match.PlayerID)
	OnIdle       func()
}

// Orchestrator owns one animation sequence at a time. It holds no queue:
// triggers while busy are rejected.
type Orchestrator struct {
	phase         atomic.Int32
	schedule      Scheduler
	switchDelay   time.Duration
	completeDelay time.Duration
}

// New creates an orchestrator with an injected scheduler
func New(schedule Scheduler, switchDelay, completeDelay time.Duration) *Orchestrator {
	return &Orchestrator{
		schedule:      schedule,
		switchDelay:   switchDelay,
		completeDelay: completeDelay,
	}
}

// NewDefault creates an orchestrator on the wall-clock scheduler with the
// default delays
func NewDefault() *Orchestrator {
	return New(func(d time.Duration, fn func()) {
		time.AfterFunc(d, fn)
	}, DefaultSwitchDelay, DefaultGlowDelay)
}

// Phase returns the current lifecycle phase
func (o *Orchestrator) Phase() Phase {
	return Phase(o.phase.Load())
}

// Animate computes fn(before), diffs the formations, and runs the visual
// sequence. apply is the single point where the committed state becomes
// visible; it receives the complete outcome and must apply it atomically.
// Transitions that move nobody skip the switching phase and apply at once.
func (o *Orchestrator) Animate(before match.GameState, fn transition.Fn, apply func(transition.Outcome), cb Callbacks) error {
	if !o.phase.CompareAndSwap(int32(PhaseIdle), int32(PhaseSwitching)) {
		return ErrAnimationInFlight
	}

	out, err := fn(before)
	if err != nil {
		o.phase.Store(int32(PhaseIdle))
		return err
	}

	moved := before.Formation.Diff(out.State.Formation)
	if len(moved) == 0 {
		apply(out)
		o.phase.Store(int32(PhaseIdle))
		if cb.OnIdle != nil {
			cb.OnIdle()
		}
		return nil
	}

	if cb.OnSwitching != nil {
		cb.OnSwitching(moved)
	}

	o.schedule(o.switchDelay, func() {
		apply(out)
		o.phase.Store(int32(PhaseCompleting))
		if cb.OnCompleting != nil {
			cb.OnCompleting(out.CameOn)
		}
		o.schedule(o.completeDelay, func() {
			o.phase.Store(int32(PhaseIdle))
			if cb.OnIdle != nil {
				cb.OnIdle()
			}
		})
	})
	return nil
}
