package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/beggan78/dif-coach/animate"
	"github.com/beggan78/dif-coach/audio"
	"github.com/beggan78/dif-coach/board"
	"github.com/beggan78/dif-coach/clock"
	"github.com/beggan78/dif-coach/events"
	"github.com/beggan78/dif-coach/match"
	"github.com/beggan78/dif-coach/status"
	"github.com/beggan78/dif-coach/team"
)

const redrawInterval = 250 * time.Millisecond

// dialogPurpose says what to do with a closed selection dialog
type dialogPurpose int

const (
	dialogNone dialogPurpose = iota
	dialogSwitchSource
	dialogSwitchTarget
	dialogGoalie
	dialogPark
	dialogPromote
	dialogPairRoles
)

type app struct {
	screen  tcell.Screen
	session *board.Session
	router  *events.Router[struct{}]

	dialog       *board.SelectState
	purpose      dialogPurpose
	switchSource match.PlayerID

	alerted bool
}

func main() {
	format := flag.Int("format", 5, "match format: 5 or 7 per side")
	squad := flag.Int("squad", 6, "squad size including goalie")
	pairs := flag.Bool("pairs", false, "use pair rotation (5v5, 7 players)")
	layout := flag.String("layout", "", "formation layout name, empty for default")
	names := flag.String("names", "", "comma-separated player names, goalie first")
	flag.Parse()

	topology := team.TopologyIndividual
	if *pairs {
		topology = team.TopologyPairs
		*squad = team.PairsSquadSize
	}
	cfg, err := team.NewConfig(team.Format(*format), *squad, topology, *layout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	mc := clock.New(clock.NewMonotonicTimeProvider())
	lineup, err := match.NewLineup(cfg, buildRoster(*names, cfg.SquadSize), mc.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	queue := events.NewEventQueue()
	reg := status.NewRegistry()
	session := board.NewSession(lineup, mc, animate.NewDefault(), queue, reg)

	router := events.NewRouter[struct{}](queue)
	cue, err := audio.NewCue()
	if err != nil {
		// Non-fatal, the board runs without sound
		log.Printf("audio initialization failed: %v", err)
	} else {
		router.Register(cue)
	}
	reg.Bools.Get("board.audio").Store(cue.Enabled())

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.Fini()

	a := &app{screen: screen, session: session, router: router}
	a.run()
}

// buildRoster mints player identities; missing names get numbered fills
func buildRoster(names string, squadSize int) []match.Player {
	var given []string
	if names != "" {
		given = strings.Split(names, ",")
	}
	roster := make([]match.Player, squadSize)
	for i := range roster {
		name := fmt.Sprintf("Player %d", i+1)
		if i < len(given) && strings.TrimSpace(given[i]) != "" {
			name = strings.TrimSpace(given[i])
		}
		roster[i] = match.Player{ID: match.PlayerID(uuid.NewString()), Name: name}
	}
	return roster
}

func (a *app) run() {
	keys := make(chan tcell.Event, 16)
	go func() {
		for {
			keys <- a.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(redrawInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-keys:
			switch tev := ev.(type) {
			case *tcell.EventKey:
				if a.handleKey(tev) {
					return
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}
		case <-ticker.C:
			a.checkTimerAlert()
			a.router.DispatchAll(struct{}{})
		}
		a.draw()
	}
}

func (a *app) draw() {
	board.Render(a.screen, a.session)
	if a.dialog != nil {
		a.dialog.Draw(a.screen)
		a.screen.Show()
	}
}

// checkTimerAlert fires one alert event each time the sub timer crosses the
// rotation interval
func (a *app) checkTimerAlert() {
	seconds := a.session.Clock.SubTimerSeconds()
	if seconds < board.AlertSeconds {
		a.alerted = false
		return
	}
	if !a.alerted {
		a.alerted = true
		a.session.PushTimerAlert()
	}
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	if a.dialog != nil {
		if a.dialog.HandleKey(ev) {
			a.closeDialog()
		}
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 's':
			// Triggers are serialized: ignore while a sequence runs
			if a.session.Phase() == animate.PhaseIdle {
				_ = a.session.SubstituteNow()
			}
		case 'u':
			if a.session.Phase() == animate.PhaseIdle {
				_ = a.session.Undo()
			}
		case ' ':
			if a.session.Clock.IsPaused() {
				a.session.Clock.Resume()
			} else {
				a.session.Clock.Pause()
			}
		case 'n':
			a.session.NextPeriod()
		case 'h':
			a.session.AddGoal(true)
		case 'a':
			a.session.AddGoal(false)
		case 'x':
			a.openSwitchSourceDialog()
		case 'g':
			a.openGoalieDialog()
		case 'i':
			a.openParkDialog()
		case 'o':
			a.openPromoteDialog()
		case 'r':
			a.openPairRolesDialog()
		}
	}
	return false
}

func (a *app) openDialog(purpose dialogPurpose, title string, options []board.Option) {
	if len(options) == 0 {
		return
	}
	a.purpose = purpose
	a.dialog = board.NewSelectState(title, options)
}

func (a *app) openSwitchSourceDialog() {
	st := a.session.Snapshot()
	if st.Config.Topology == team.TopologyPairs {
		// Surface the rejection the engine would produce
		_ = a.session.SwitchPositions("", "")
		return
	}
	a.openDialog(dialogSwitchSource, "Switch positions: first player", fieldOptions(st, ""))
}

func (a *app) openGoalieDialog() {
	st := a.session.Snapshot()
	var options []board.Option
	for _, id := range st.Formation.PlayerIDs() {
		p := st.Players[id]
		if id == st.Formation.Goalie || p.Stats.Inactive {
			continue
		}
		options = append(options, board.Option{ID: string(id), Label: p.Name})
	}
	a.openDialog(dialogGoalie, "New goalie", options)
}

func (a *app) openParkDialog() {
	st := a.session.Snapshot()
	var options []board.Option
	for _, id := range st.Formation.Subs {
		p := st.Players[id]
		label := p.Name
		if p.Stats.Inactive {
			label += " (inactive)"
		}
		options = append(options, board.Option{ID: string(id), Label: label})
	}
	a.openDialog(dialogPark, "Park / unpark substitute", options)
}

func (a *app) openPromoteDialog() {
	st := a.session.Snapshot()
	var options []board.Option
	for i, id := range st.Formation.Subs {
		if i == 0 {
			continue // already next in
		}
		p := st.Players[id]
		if p.Stats.Inactive {
			continue
		}
		slot := team.SubstituteSlot(i + 1)
		options = append(options, board.Option{ID: string(slot), Label: fmt.Sprintf("%s (%s)", p.Name, slot)})
	}
	a.openDialog(dialogPromote, "Promote substitute one slot", options)
}

func (a *app) openPairRolesDialog() {
	st := a.session.Snapshot()
	if st.Config.Topology != team.TopologyPairs {
		_ = a.session.SwapPairRoles("")
		return
	}
	var options []board.Option
	for _, slot := range append(append([]team.SlotID{}, st.Config.FieldPairs...), st.Config.SubPairs...) {
		options = append(options, board.Option{ID: string(slot), Label: string(slot)})
	}
	a.openDialog(dialogPairRoles, "Swap roles within pair", options)
}

func fieldOptions(st match.GameState, exclude match.PlayerID) []board.Option {
	var options []board.Option
	for _, fs := range st.Config.Layout.Field {
		id := st.Formation.Field[fs.ID]
		if id == exclude {
			continue
		}
		options = append(options, board.Option{
			ID:    string(id),
			Label: fmt.Sprintf("%s (%s)", st.Players[id].Name, fs.ID),
		})
	}
	return options
}

// closeDialog acts on the selection; a cancelled dialog just closes, matching
// the contract that cancellation leaves state untouched
func (a *app) closeDialog() {
	d, purpose := a.dialog, a.purpose
	a.dialog, a.purpose = nil, dialogNone

	if d.Result != board.SelectChosen {
		a.switchSource = ""
		return
	}
	chosen := d.Chosen()

	switch purpose {
	case dialogSwitchSource:
		a.switchSource = match.PlayerID(chosen)
		st := a.session.Snapshot()
		a.openDialog(dialogSwitchTarget, "Switch positions: second player", fieldOptions(st, a.switchSource))
	case dialogSwitchTarget:
		source := a.switchSource
		a.switchSource = ""
		_ = a.session.SwitchPositions(source, match.PlayerID(chosen))
	case dialogGoalie:
		_ = a.session.SwitchGoalie(match.PlayerID(chosen))
	case dialogPark:
		_ = a.session.ToggleInactive(match.PlayerID(chosen))
	case dialogPromote:
		slot := team.SlotID(chosen)
		_ = a.session.SwapSubstitutes(slot, previousSubSlot(slot))
	case dialogPairRoles:
		_ = a.session.SwapPairRoles(team.SlotID(chosen))
	}
}

// previousSubSlot returns the slot one ahead of the given substitute slot
func previousSubSlot(slot team.SlotID) team.SlotID {
	var n int
	if _, err := fmt.Sscanf(string(slot), "substitute_%d", &n); err != nil || n <= 1 {
		return slot
	}
	return team.SubstituteSlot(n - 1)
}
