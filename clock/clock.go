package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// MatchClock provides pausable match time plus the substitution timer.
// All transition timestamps and stint boundaries are taken from Now(), so a
// pause freezes every live figure at once.
type MatchClock struct {
	mu sync.RWMutex

	provider TimeProvider

	// Base time tracking
	realStartTime  time.Time // when the clock was created (real time)
	matchStartTime time.Time // match time epoch (adjusted for pauses)

	// Pause state
	isPaused        atomic.Bool
	pauseStartTime  time.Time     // when current pause started (real time)
	totalPausedTime time.Duration // cumulative pause duration

	// Substitution timer, expressed in match time
	subTimerAnchor time.Time
	subTimerBase   time.Duration // carried seconds from before the anchor
}

// New creates a match clock anchored at the provider's current time
func New(provider TimeProvider) *MatchClock {
	now := provider.Now()
	return &MatchClock{
		provider:       provider,
		realStartTime:  now,
		matchStartTime: now,
		subTimerAnchor: now,
	}
}

// Now returns current match time (frozen while paused)
func (c *MatchClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nowLocked()
}

func (c *MatchClock) nowLocked() time.Time {
	if c.isPaused.Load() {
		return c.matchStartTime.Add(c.pauseStartTime.Sub(c.realStartTime) - c.totalPausedTime)
	}
	realElapsed := c.provider.Now().Sub(c.realStartTime)
	return c.matchStartTime.Add(realElapsed - c.totalPausedTime)
}

// RealTime returns actual wall clock time (unaffected by pause)
func (c *MatchClock) RealTime() time.Time {
	return c.provider.Now()
}

// Pause stops match time advancement
func (c *MatchClock) Pause() {
	if c.isPaused.CompareAndSwap(false, true) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.pauseStartTime = c.provider.Now()
	}
}

// Resume continues match time advancement
func (c *MatchClock) Resume() {
	if c.isPaused.CompareAndSwap(true, false) {
		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.pauseStartTime.IsZero() {
			c.totalPausedTime += c.provider.Now().Sub(c.pauseStartTime)
			c.pauseStartTime = time.Time{}
		}
	}
}

// IsPaused returns current pause state
func (c *MatchClock) IsPaused() bool {
	return c.isPaused.Load()
}

// MatchSeconds returns whole seconds of match time elapsed since creation
func (c *MatchClock) MatchSeconds() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return int64(c.nowLocked().Sub(c.matchStartTime) / time.Second)
}

// SubTimerSeconds returns whole seconds on the substitution timer
func (c *MatchClock) SubTimerSeconds() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	elapsed := c.nowLocked().Sub(c.subTimerAnchor)
	if elapsed < 0 {
		elapsed = 0
	}
	return int64((c.subTimerBase + elapsed) / time.Second)
}

// ResetSubTimer restarts the substitution timer from zero
func (c *MatchClock) ResetSubTimer() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subTimerAnchor = c.nowLocked()
	c.subTimerBase = 0
}

// RestoreSubTimer rewinds the substitution timer to a recorded value anchored
// at a recorded match-time instant. Match time elapsed since the anchor is
// re-added, which is what an undone substitution requires.
func (c *MatchClock) RestoreSubTimer(seconds int64, anchoredAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subTimerAnchor = anchoredAt
	c.subTimerBase = time.Duration(seconds) * time.Second
}
