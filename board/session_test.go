package board

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/beggan78/dif-coach/animate"
	"github.com/beggan78/dif-coach/clock"
	"github.com/beggan78/dif-coach/events"
	"github.com/beggan78/dif-coach/match"
	"github.com/beggan78/dif-coach/status"
	"github.com/beggan78/dif-coach/team"
)

var start = time.Date(2026, 4, 18, 10, 0, 0, 0, time.UTC)

// newTestSession wires a session on a mock clock with a synchronous scheduler,
// so every animation sequence completes inside the trigger call
func newTestSession(t *testing.T) (*Session, *clock.MockTimeProvider, *status.Registry) {
	t.Helper()
	provider := clock.NewMockTimeProvider(start)
	mc := clock.New(provider)

	cfg, err := team.NewConfig(team.Format5v5, 6, team.TopologyIndividual, "")
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}
	names := []string{"G", "A", "B", "C", "D", "E"}
	roster := make([]match.Player, len(names))
	for i, n := range names {
		roster[i] = match.Player{ID: match.PlayerID(n), Name: n}
	}
	lineup, err := match.NewLineup(cfg, roster, mc.Now())
	if err != nil {
		t.Fatalf("NewLineup failed: %v", err)
	}

	orch := animate.New(func(_ time.Duration, fn func()) { fn() }, 0, 0)
	reg := status.NewRegistry()
	session := NewSession(lineup, mc, orch, events.NewEventQueue(), reg)
	return session, provider, reg
}

func TestSessionCountsTriggers(t *testing.T) {
	s, _, reg := newTestSession(t)

	if err := s.SubstituteNow(); err != nil {
		t.Fatalf("SubstituteNow failed: %v", err)
	}
	if got := reg.Ints.Get("board.rotations").Load(); got != 1 {
		t.Errorf("Expected 1 rotation counted, got %d", got)
	}

	if err := s.Undo(); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if got := reg.Ints.Get("board.undos").Load(); got != 1 {
		t.Errorf("Expected 1 undo counted, got %d", got)
	}

	// A second undo has no record and counts as a rejected trigger
	if err := s.Undo(); err == nil {
		t.Fatal("Expected the empty undo to fail")
	}
	if got := reg.Ints.Get("board.rejected_triggers").Load(); got != 1 {
		t.Errorf("Expected 1 rejected trigger counted, got %d", got)
	}
}

func TestGoalieSwitchKeepsSubTimerRunning(t *testing.T) {
	s, provider, _ := newTestSession(t)

	provider.Advance(30 * time.Second)
	if err := s.SwitchGoalie("A"); err != nil {
		t.Fatalf("SwitchGoalie failed: %v", err)
	}
	if got := s.Clock.SubTimerSeconds(); got != 30 {
		t.Errorf("Expected sub timer still at 30 after a goalie change, got %d", got)
	}

	// A substitution restarts the rotation interval
	if err := s.SubstituteNow(); err != nil {
		t.Fatalf("SubstituteNow failed: %v", err)
	}
	if got := s.Clock.SubTimerSeconds(); got != 0 {
		t.Errorf("Expected sub timer reset by the substitution, got %d", got)
	}
}

func screenText(sim tcell.SimulationScreen) string {
	cells, w, h := sim.GetContents()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) > 0 {
				b.WriteRune(c.Runes[0])
			}
		}
		b.WriteRune('\n')
	}
	return b.String()
}

func TestRenderShowsCounters(t *testing.T) {
	s, _, reg := newTestSession(t)
	reg.Bools.Get("board.audio").Store(false)
	if err := s.SubstituteNow(); err != nil {
		t.Fatalf("SubstituteNow failed: %v", err)
	}

	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	defer sim.Fini()
	sim.SetSize(140, 30)

	Render(sim, s)
	text := screenText(sim)
	for _, want := range []string{"rotations=1", "undos=0", "rejected_triggers=0", "audio=false"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected status line to contain %q", want)
		}
	}
}
