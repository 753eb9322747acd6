// Command simulate runs scripted rotations headlessly and prints per-player
// time totals, showing how evenly the queue spreads field time across squad
// sizes and topologies.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/beggan78/dif-coach/clock"
	"github.com/beggan78/dif-coach/match"
	"github.com/beggan78/dif-coach/team"
	"github.com/beggan78/dif-coach/transition"
)

func main() {
	format := flag.Int("format", 5, "match format: 5 or 7 per side")
	squad := flag.Int("squad", 7, "squad size including goalie")
	pairs := flag.Bool("pairs", false, "use pair rotation")
	layout := flag.String("layout", "", "formation layout name")
	rotations := flag.Int("rotations", 12, "number of substitutions to simulate")
	interval := flag.Duration("interval", 150*time.Second, "time between substitutions")
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

	provider := clock.NewMockTimeProvider(time.Date(2026, 4, 18, 10, 0, 0, 0, time.UTC))
	mc := clock.New(provider)

	roster := make([]match.Player, cfg.SquadSize)
	for i := range roster {
		roster[i] = match.Player{
			ID:   match.PlayerID(uuid.NewString()),
			Name: fmt.Sprintf("Player %d", i+1),
		}
	}
	st, err := match.NewLineup(cfg, roster, mc.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for i := 0; i < *rotations; i++ {
		provider.Advance(*interval)
		out, err := transition.Substitution(st, mc.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "rotation %d: %v\n", i+1, err)
			os.Exit(1)
		}
		st = out.State
		mc.ResetSubTimer()
	}
	provider.Advance(*interval)

	now := mc.Now()
	type line struct {
		name    string
		seconds int64
	}
	var lines []line
	for _, p := range st.Players {
		if p.Stats.Status == match.StatusGoalie {
			continue
		}
		lines = append(lines, line{p.Name, p.Stats.TotalOutfieldSeconds(false, now)})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].name < lines[j].name })

	var min, max int64
	for i, l := range lines {
		if i == 0 || l.seconds < min {
			min = l.seconds
		}
		if l.seconds > max {
			max = l.seconds
		}
		fmt.Printf("%-12s %6ds\n", l.name, l.seconds)
	}
	cycle := int64(*interval / time.Second)
	fmt.Printf("\nrotations=%d interval=%s spread=%ds (max one cycle: %ds)\n",
		*rotations, *interval, max-min, cycle)
}
