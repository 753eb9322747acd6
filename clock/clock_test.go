package clock

import (
	"testing"
	"time"
)

var start = time.Date(2026, 4, 18, 10, 0, 0, 0, time.UTC)

func TestPauseFreezesMatchTime(t *testing.T) {
	provider := NewMockTimeProvider(start)
	mc := New(provider)

	provider.Advance(30 * time.Second)
	if got := mc.MatchSeconds(); got != 30 {
		t.Fatalf("Expected 30 match seconds, got %d", got)
	}

	mc.Pause()
	provider.Advance(5 * time.Minute)
	if got := mc.MatchSeconds(); got != 30 {
		t.Errorf("Expected match time frozen at 30 during pause, got %d", got)
	}

	mc.Resume()
	provider.Advance(10 * time.Second)
	if got := mc.MatchSeconds(); got != 40 {
		t.Errorf("Expected 40 after resume, got %d", got)
	}
}

func TestSubTimerFollowsMatchTime(t *testing.T) {
	provider := NewMockTimeProvider(start)
	mc := New(provider)

	provider.Advance(90 * time.Second)
	if got := mc.SubTimerSeconds(); got != 90 {
		t.Fatalf("Expected sub timer 90, got %d", got)
	}

	mc.ResetSubTimer()
	if got := mc.SubTimerSeconds(); got != 0 {
		t.Errorf("Expected sub timer 0 after reset, got %d", got)
	}

	provider.Advance(20 * time.Second)
	mc.Pause()
	provider.Advance(time.Hour)
	if got := mc.SubTimerSeconds(); got != 20 {
		t.Errorf("Expected sub timer frozen at 20 during pause, got %d", got)
	}
}

func TestRestoreSubTimerReaddsElapsedSinceAnchor(t *testing.T) {
	provider := NewMockTimeProvider(start)
	mc := New(provider)

	// A substitution happened at t=100s with the timer at 100s, then was
	// undone at t=130s: the timer must read 100+30.
	provider.Advance(100 * time.Second)
	anchor := mc.Now()
	mc.ResetSubTimer()

	provider.Advance(30 * time.Second)
	mc.RestoreSubTimer(100, anchor)
	if got := mc.SubTimerSeconds(); got != 130 {
		t.Errorf("Expected sub timer 130 after restore, got %d", got)
	}
}

func TestRealTimeIgnoresPause(t *testing.T) {
	provider := NewMockTimeProvider(start)
	mc := New(provider)

	mc.Pause()
	provider.Advance(time.Minute)
	if got := mc.RealTime(); !got.Equal(start.Add(time.Minute)) {
		t.Errorf("Expected real time to advance during pause, got %v", got)
	}
}
