package board

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/beggan78/dif-coach/match"
	"github.com/beggan78/dif-coach/team"
)

// AlertSeconds is the rotation interval after which the sub timer is shown in
// alert color and the audio cue fires
const AlertSeconds = 150

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func formatClock(seconds int64) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// describe formats one player cell: name, outfield time, attack/defense diff
func describe(st match.GameState, id match.PlayerID, paused bool, now time.Time) string {
	p, ok := st.Players[id]
	if !ok {
		return "-"
	}
	stats := st.TimeStatsFor(id, paused, now)
	return fmt.Sprintf("%-12s %s  %+ds", p.Name,
		formatClock(stats.TotalOutfieldSeconds), stats.AttackDefenseDiff)
}

// Render draws the whole board from one snapshot
func Render(screen tcell.Screen, s *Session) {
	screen.Clear()
	st := s.Snapshot()
	v := s.VisualSnapshot()
	paused := s.Clock.IsPaused()
	now := s.Clock.Now()

	header := tcell.StyleDefault.Bold(true)
	row := 0

	pauseTag := ""
	if paused {
		pauseTag = "  [PAUSED]"
	}
	drawText(screen, 1, row, header, fmt.Sprintf("Period %d   %d - %d   match %s%s",
		st.Period, st.HomeScore, st.AwayScore, formatClock(s.Clock.MatchSeconds()), pauseTag))
	row++

	subStyle := tcell.StyleDefault
	if st.SubTimerSeconds >= AlertSeconds {
		subStyle = subStyle.Foreground(tcell.ColorRed).Bold(true)
	}
	drawText(screen, 1, row, subStyle, fmt.Sprintf("sub timer %s   phase %s",
		formatClock(st.SubTimerSeconds), s.Phase()))
	row += 2

	row = renderGoalie(screen, row, st, v, paused, now)
	if st.Config.Topology == team.TopologyPairs {
		row = renderPairs(screen, row, st, v, paused, now)
	} else {
		row = renderField(screen, row, st, v, paused, now)
		row = renderBench(screen, row, st, v, paused, now)
	}

	row++
	drawText(screen, 1, row, tcell.StyleDefault.Dim(true),
		"s sub  x switch  g goalie  i park  o promote  r pair roles  u undo  space pause  n period  h/a goal  q quit")
	row++
	row = renderStatus(screen, row, s)
	if v.Message != "" {
		drawText(screen, 1, row, tcell.StyleDefault.Foreground(tcell.ColorYellow), v.Message)
	}
	screen.Show()
}

func renderGoalie(screen tcell.Screen, row int, st match.GameState, v Visual, paused bool, now time.Time) int {
	id := st.Formation.Goalie
	drawText(screen, 1, row, styleFor(v, id),
		fmt.Sprintf("  %-14s %s", team.SlotGoalie, describe(st, id, paused, now)))
	return row + 2
}

func renderField(screen tcell.Screen, row int, st match.GameState, v Visual, paused bool, now time.Time) int {
	for _, fs := range st.Config.Layout.Field {
		id := st.Formation.Field[fs.ID]
		marker := "  "
		if !v.HideNextOff {
			switch id {
			case st.Queue.NextOut:
				marker = "▼ "
			case st.Queue.NextNextOut:
				marker = "▽ "
			}
		}
		drawText(screen, 1, row, styleFor(v, id),
			fmt.Sprintf("%s%-14s %s", marker, fs.ID, describe(st, id, paused, now)))
		row++
	}
	return row + 1
}

func renderBench(screen tcell.Screen, row int, st match.GameState, v Visual, paused bool, now time.Time) int {
	nextIn := true
	for i, id := range st.Formation.Subs {
		p := st.Players[id]
		marker := "  "
		style := styleFor(v, id)
		if p.Stats.Inactive {
			style = style.Dim(true)
		} else if nextIn {
			marker = "▲ "
			nextIn = false
		}
		label := string(team.SubstituteSlot(i + 1))
		if p.Stats.Inactive {
			label += " (inactive)"
		}
		drawText(screen, 1, row, style,
			fmt.Sprintf("%s%-14s %s", marker, label, describe(st, id, paused, now)))
		row++
	}
	return row + 1
}

func renderPairs(screen tcell.Screen, row int, st match.GameState, v Visual, paused bool, now time.Time) int {
	slots := append(append([]team.SlotID{}, st.Config.FieldPairs...), st.Config.SubPairs...)
	for _, slot := range slots {
		pair, ok := st.Formation.Pairs[slot]
		if !ok {
			continue
		}
		marker := "  "
		if !v.HideNextOff && slot == st.Queue.NextPairOut {
			marker = "▼ "
		}
		drawText(screen, 1, row, tcell.StyleDefault.Bold(true), fmt.Sprintf("%s%s", marker, slot))
		row++
		drawText(screen, 5, row, styleFor(v, pair.Defender),
			fmt.Sprintf("%-12s %s", "defender", describe(st, pair.Defender, paused, now)))
		row++
		drawText(screen, 5, row, styleFor(v, pair.Attacker),
			fmt.Sprintf("%-12s %s", "attacker", describe(st, pair.Attacker, paused, now)))
		row++
	}
	return row + 1
}

// renderStatus draws the counter line from the metric registry
func renderStatus(screen tcell.Screen, row int, s *Session) int {
	var parts []string
	s.Metrics().Ints.Range(func(key string, ptr *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", strings.TrimPrefix(key, "board."), ptr.Load()))
	})
	s.Metrics().Bools.Range(func(key string, ptr *atomic.Bool) {
		parts = append(parts, fmt.Sprintf("%s=%t", strings.TrimPrefix(key, "board."), ptr.Load()))
	})
	drawText(screen, 1, row, tcell.StyleDefault.Dim(true), strings.Join(parts, "  "))
	return row + 1
}

func styleFor(v Visual, id match.PlayerID) tcell.Style {
	style := tcell.StyleDefault
	if v.Moving[id] {
		style = style.Foreground(tcell.ColorAqua).Bold(true)
	}
	if v.Glow[id] {
		style = style.Foreground(tcell.ColorGreen).Bold(true)
	}
	return style
}
