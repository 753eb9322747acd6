package transition

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/beggan78/dif-coach/match"
	"github.com/beggan78/dif-coach/team"
)

func TestUndoRoundTripIsExact(t *testing.T) {
	st := newIndividual(t, 6)
	st.SubTimerSeconds = 95
	now := kickoff.Add(150 * time.Second)

	subbed, err := Substitution(st, now)
	if err != nil {
		t.Fatalf("Substitution failed: %v", err)
	}
	undone, err := Undo(subbed.State, subbed.Record)
	if err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	back := undone.State

	if !reflect.DeepEqual(back.Formation, st.Formation) {
		t.Errorf("Formation did not round-trip:\n got %+v\nwant %+v", back.Formation, st.Formation)
	}
	if !reflect.DeepEqual(back.Queue, st.Queue) {
		t.Errorf("Queue did not round-trip:\n got %+v\nwant %+v", back.Queue, st.Queue)
	}
	for _, id := range []match.PlayerID{"A", "E"} {
		if !reflect.DeepEqual(back.Players[id].Stats, st.Players[id].Stats) {
			t.Errorf("Stats for %s did not round-trip:\n got %+v\nwant %+v",
				id, back.Players[id].Stats, st.Players[id].Stats)
		}
	}
	if back.SubTimerSeconds != 95 {
		t.Errorf("Expected sub timer 95, got %d", back.SubTimerSeconds)
	}

	if undone.TimerRestore == nil {
		t.Fatal("Expected a timer restore instruction")
	}
	if undone.TimerRestore.Seconds != 95 || !undone.TimerRestore.AnchoredAt.Equal(now) {
		t.Errorf("Expected restore 95s anchored at %v, got %d/%v",
			now, undone.TimerRestore.Seconds, undone.TimerRestore.AnchoredAt)
	}

	// The returning player gets the post-commit highlight
	wantOrder(t, undone.CameOn, "A")
}

func TestUndoAfterGoalieSwitch(t *testing.T) {
	st := newIndividual(t, 6)
	now := kickoff.Add(5 * time.Minute)

	switched, err := GoalieSwitch(st, "A", now)
	if err != nil {
		t.Fatalf("GoalieSwitch failed: %v", err)
	}
	undone, err := Undo(switched.State, switched.Record)
	if err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	back := undone.State

	if back.Formation.Goalie != "G" {
		t.Errorf("Expected G back in goal, got %s", back.Formation.Goalie)
	}
	if got := back.Formation.Field[team.SlotLeftDefender]; got != "A" {
		t.Errorf("Expected A back at leftDefender, got %s", got)
	}
	if !reflect.DeepEqual(back.Players["A"].Stats, st.Players["A"].Stats) {
		t.Error("A's stats did not round-trip")
	}
	if !reflect.DeepEqual(back.Players["G"].Stats, st.Players["G"].Stats) {
		t.Error("G's stats did not round-trip")
	}
	wantOrder(t, back.Queue.Order, "A", "B", "C", "D")
}

func TestUndoWithoutRecord(t *testing.T) {
	st := newIndividual(t, 6)
	out, err := Undo(st, nil)
	if !errors.Is(err, ErrNoUndoRecord) {
		t.Fatalf("Expected ErrNoUndoRecord, got %v", err)
	}
	if out.State.Formation.Goalie != "G" {
		t.Error("Expected the state handed back unchanged")
	}
}

func TestRecordSnapshotsBothSides(t *testing.T) {
	st := newIndividual(t, 6)
	rec := NewRecord(st, []match.PlayerID{"E"}, []match.PlayerID{"A"}, kickoff)

	if _, ok := rec.StatsBefore["A"]; !ok {
		t.Error("Expected the outgoing player's stats in the snapshot")
	}
	if _, ok := rec.StatsBefore["E"]; !ok {
		t.Error("Expected the incoming player's stats in the snapshot")
	}

	// The snapshot is decoupled from later state changes
	st.Formation.Field[team.SlotLeftDefender] = "Z"
	if rec.Formation.Field[team.SlotLeftDefender] != "A" {
		t.Error("Record shares the formation map with the live state")
	}
}

func TestLogHoldsSingleRecord(t *testing.T) {
	var log Log
	if log.Peek() != nil {
		t.Fatal("Expected an empty log")
	}

	first := &Record{SubTimerSeconds: 1}
	second := &Record{SubTimerSeconds: 2}
	log.Store(first)
	log.Store(second)

	if got := log.Peek(); got != second {
		t.Error("Expected the newer record to replace the older one")
	}
	if got := log.Take(); got != second {
		t.Error("Expected Take to return the stored record")
	}
	if log.Take() != nil {
		t.Error("Expected Take to consume the record")
	}
}
