package rotation

import (
	"testing"
	"time"

	"github.com/beggan78/dif-coach/match"
	"github.com/beggan78/dif-coach/team"
)

var base = time.Date(2026, 4, 18, 10, 0, 0, 0, time.UTC)

// individualState builds a lineup G(goalie), A-D on field, then E, F... benched
func individualState(t *testing.T, squad int) match.GameState {
	t.Helper()
	cfg, err := team.NewConfig(team.Format5v5, squad, team.TopologyIndividual, "")
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}
	names := []string{"G", "A", "B", "C", "D", "E", "F", "H", "I", "J"}
	roster := make([]match.Player, squad)
	for i := 0; i < squad; i++ {
		roster[i] = match.Player{ID: match.PlayerID(names[i]), Name: names[i]}
	}
	st, err := match.NewLineup(cfg, roster, base)
	if err != nil {
		t.Fatalf("NewLineup failed: %v", err)
	}
	return st
}

func setInactive(st *match.GameState, id match.PlayerID) {
	p := st.Players[id]
	p.Stats.Inactive = true
	st.Players[id] = p
}

func TestRecomputeFollowsQueueOrder(t *testing.T) {
	st := individualState(t, 6)
	q := Recompute(st)
	if q.NextOut != "A" || q.NextNextOut != "B" {
		t.Errorf("Expected next A / next-next B, got %s / %s", q.NextOut, q.NextNextOut)
	}
}

func TestRecomputeSkipsOffFieldEntries(t *testing.T) {
	st := individualState(t, 6)
	// Stale order entry: A benched without queue maintenance
	p := st.Players["A"]
	p.Stats.Status = match.StatusSubstitute
	st.Players["A"] = p

	q := Recompute(st)
	if q.NextOut != "B" || q.NextNextOut != "C" {
		t.Errorf("Expected next B / next-next C, got %s / %s", q.NextOut, q.NextNextOut)
	}
}

func TestNextInSkipsInactiveSubstitutes(t *testing.T) {
	st := individualState(t, 7) // E, F benched
	setInactive(&st, "E")

	id, ok := NextIn(st)
	if !ok || id != "F" {
		t.Errorf("Expected F as next in, got %s/%v", id, ok)
	}

	setInactive(&st, "F")
	if _, ok := NextIn(st); ok {
		t.Error("Expected no eligible substitute with all parked")
	}
}

func TestHasActiveSubstitutes(t *testing.T) {
	st := individualState(t, 6)
	if !HasActiveSubstitutes(st) {
		t.Fatal("Expected an active substitute")
	}
	setInactive(&st, "E")
	if HasActiveSubstitutes(st) {
		t.Error("Expected no active substitutes after parking the only one")
	}
}

func TestAdvanceAfterSubstitution(t *testing.T) {
	order := []match.PlayerID{"A", "B", "C", "D"}
	got := AdvanceAfterSubstitution(order, "A", "E")
	want := []match.PlayerID{"B", "C", "D", "E"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected order %v, got %v", want, got)
		}
	}
}

func TestMoveToRearShiftsOthersForward(t *testing.T) {
	subs := []match.PlayerID{"E", "F", "H"}
	got := MoveToRear(subs, "E")
	want := []match.PlayerID{"F", "H", "E"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}
}

func TestParkInactiveAtRearIsStable(t *testing.T) {
	st := individualState(t, 9) // E, F, H, I benched
	setInactive(&st, "E")
	setInactive(&st, "H")

	subs := []match.PlayerID{"E", "F", "H", "I"}
	got := ParkInactiveAtRear(subs, st.Players)
	want := []match.PlayerID{"F", "I", "E", "H"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}
}

func TestInsertBehindActivesKeepsInactiveAtRear(t *testing.T) {
	st := individualState(t, 8) // E, F, H benched
	setInactive(&st, "H")

	// E was parked and comes back: it belongs behind F but ahead of H
	subs := []match.PlayerID{"F", "H", "E"}
	got := InsertBehindActives(subs, "E", st.Players)
	want := []match.PlayerID{"F", "E", "H"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}
}

func TestRecomputePairsPointsAtFieldPair(t *testing.T) {
	cfg, err := team.NewConfig(team.Format5v5, team.PairsSquadSize, team.TopologyPairs, "")
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}
	roster := make([]match.Player, cfg.SquadSize)
	names := []string{"G", "d1", "a1", "d2", "a2", "d3", "a3"}
	for i := range roster {
		roster[i] = match.Player{ID: match.PlayerID(names[i]), Name: names[i]}
	}
	st, err := match.NewLineup(cfg, roster, base)
	if err != nil {
		t.Fatalf("NewLineup failed: %v", err)
	}

	st.Queue.NextPairOut = "bogus"
	q := Recompute(st)
	if q.NextPairOut != team.SlotLeftPair {
		t.Errorf("Expected leftPair, got %s", q.NextPairOut)
	}
	if !HasActiveSubstitutes(st) {
		t.Error("Expected the substitute pair to count as available")
	}
}
