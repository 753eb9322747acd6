package transition

import (
	"errors"
	"testing"
	"time"

	"github.com/beggan78/dif-coach/rotation"
	"github.com/beggan78/dif-coach/team"
)

func TestToggleInactiveParksAtRear(t *testing.T) {
	st := newIndividual(t, 8) // E, F, H benched
	out, err := ToggleInactive(st, "E")
	if err != nil {
		t.Fatalf("ToggleInactive failed: %v", err)
	}
	next := out.State

	wantOrder(t, next.Formation.Subs, "F", "H", "E")
	if !next.Players["E"].Stats.Inactive {
		t.Error("Expected E marked inactive")
	}
	if got := next.Players["F"].Stats.PairKey; got != team.SubstituteSlot(1) {
		t.Errorf("Expected F shifted to substitute_1, got %s", got)
	}
	if got := next.Players["E"].Stats.PairKey; got != team.SubstituteSlot(3) {
		t.Errorf("Expected E keyed to substitute_3, got %s", got)
	}
}

func TestToggleInactiveSoleSubstituteKeepsSlot(t *testing.T) {
	st := newIndividual(t, 6)
	out, err := ToggleInactive(st, "E")
	if err != nil {
		t.Fatalf("ToggleInactive failed: %v", err)
	}
	next := out.State

	// Nobody to shift: E stays in its slot, so nothing moves on the board
	wantOrder(t, next.Formation.Subs, "E")
	if got := next.Players["E"].Stats.PairKey; got != team.SubstituteSlot(1) {
		t.Errorf("Expected E to keep substitute_1, got %s", got)
	}
	if rotation.HasActiveSubstitutes(next) {
		t.Error("Expected no active substitutes")
	}

	// Substitutions are blocked until E is reactivated
	if _, err := Substitution(next, kickoff.Add(time.Minute)); !errors.Is(err, ErrNoActiveSubstitutes) {
		t.Errorf("Expected ErrNoActiveSubstitutes, got %v", err)
	}
}

func TestReactivateInsertsBehindActives(t *testing.T) {
	st := newIndividual(t, 8)

	// Park H (already rearmost), then E (shifts behind H)
	out, err := ToggleInactive(st, "H")
	if err != nil {
		t.Fatalf("ToggleInactive H failed: %v", err)
	}
	out, err = ToggleInactive(out.State, "E")
	if err != nil {
		t.Fatalf("ToggleInactive E failed: %v", err)
	}
	wantOrder(t, out.State.Formation.Subs, "F", "H", "E")

	// Reactivating E places it behind F but ahead of the still-parked H
	out, err = ToggleInactive(out.State, "E")
	if err != nil {
		t.Fatalf("Reactivate E failed: %v", err)
	}
	next := out.State
	wantOrder(t, next.Formation.Subs, "F", "E", "H")
	if next.Players["E"].Stats.Inactive {
		t.Error("Expected E active again")
	}
	if got := next.Players["H"].Stats.PairKey; got != team.SubstituteSlot(3) {
		t.Errorf("Expected H still rearmost, got %s", got)
	}
}

func TestToggleInactiveRejectsFieldPlayer(t *testing.T) {
	st := newIndividual(t, 6)
	if _, err := ToggleInactive(st, "A"); !errors.Is(err, ErrNotSubstitute) {
		t.Errorf("Expected ErrNotSubstitute, got %v", err)
	}
}

func TestToggleInactiveRejectsPairsTopology(t *testing.T) {
	st := newPairs(t)
	if _, err := ToggleInactive(st, "d3"); !errors.Is(err, ErrUnsupportedTopology) {
		t.Errorf("Expected ErrUnsupportedTopology, got %v", err)
	}
}

func TestToggleInactiveUnknownPlayer(t *testing.T) {
	st := newIndividual(t, 6)
	if _, err := ToggleInactive(st, "nobody"); !errors.Is(err, ErrUnknownPlayer) {
		t.Errorf("Expected ErrUnknownPlayer, got %v", err)
	}
}
