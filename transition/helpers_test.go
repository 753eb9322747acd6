package transition

import (
	"testing"
	"time"

	"github.com/beggan78/dif-coach/match"
	"github.com/beggan78/dif-coach/team"
)

var kickoff = time.Date(2026, 4, 18, 10, 0, 0, 0, time.UTC)

// newIndividual builds a 5v5 lineup in the default 2-2 layout:
// G in goal, A/B defenders, C/D attackers, E and onwards benched.
func newIndividual(t *testing.T, squad int) match.GameState {
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
	st, err := match.NewLineup(cfg, roster, kickoff)
	if err != nil {
		t.Fatalf("NewLineup failed: %v", err)
	}
	return st
}

// newPairs builds the fixed 7-player pairs lineup: G in goal, d1/a1 left pair,
// d2/a2 right pair, d3/a3 on the bench.
func newPairs(t *testing.T) match.GameState {
	t.Helper()
	cfg, err := team.NewConfig(team.Format5v5, team.PairsSquadSize, team.TopologyPairs, "")
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}
	names := []string{"G", "d1", "a1", "d2", "a2", "d3", "a3"}
	roster := make([]match.Player, len(names))
	for i, n := range names {
		roster[i] = match.Player{ID: match.PlayerID(n), Name: n}
	}
	st, err := match.NewLineup(cfg, roster, kickoff)
	if err != nil {
		t.Fatalf("NewLineup failed: %v", err)
	}
	return st
}

func markInactive(t *testing.T, st *match.GameState, id match.PlayerID) {
	t.Helper()
	p, ok := st.Players[id]
	if !ok {
		t.Fatalf("no player %s", id)
	}
	p.Stats.Inactive = true
	st.Players[id] = p
}

func wantOrder(t *testing.T, got []match.PlayerID, want ...match.PlayerID) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected order %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected order %v, got %v", want, got)
		}
	}
}
