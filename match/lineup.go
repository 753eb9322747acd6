package match

import (
	"fmt"
	"time"

	"github.com/beggan78/dif-coach/team"
)

// NewLineup builds the opening GameState from a roster in selection order:
// goalie first, then the field slots in layout order, then the bench in
// substitute order. Pairs topology expects defender before attacker within
// each pair. Stints open at now for the goalie and everyone on the field.
func NewLineup(cfg team.Config, roster []Player, now time.Time) (GameState, error) {
	if len(roster) != cfg.SquadSize {
		return GameState{}, fmt.Errorf("%w: roster has %d players, squad size is %d",
			team.ErrInvalidConfig, len(roster), cfg.SquadSize)
	}

	st := GameState{
		Config:  cfg,
		Players: make(map[PlayerID]Player, len(roster)),
		Period:  1,
	}

	goalie := roster[0]
	goalie.Stats = PlayerStats{
		Status:  StatusGoalie,
		Role:    team.RoleNone,
		PairKey: team.SlotGoalie,
	}.WithStintOpened(now)
	st.Players[goalie.ID] = goalie
	st.Formation.Goalie = goalie.ID

	if cfg.Topology == team.TopologyPairs {
		return pairsLineup(st, cfg, roster, now)
	}
	return individualLineup(st, cfg, roster, now)
}

func individualLineup(st GameState, cfg team.Config, roster []Player, now time.Time) (GameState, error) {
	st.Formation.Field = make(map[team.SlotID]PlayerID, len(cfg.Layout.Field))
	idx := 1
	for _, fs := range cfg.Layout.Field {
		p := roster[idx]
		p.Stats = PlayerStats{
			Status:  StatusOnField,
			Role:    fs.Role,
			PairKey: fs.ID,
		}.WithStintOpened(now)
		st.Players[p.ID] = p
		st.Formation.Field[fs.ID] = p.ID
		st.Queue.Order = append(st.Queue.Order, p.ID)
		idx++
	}
	for i := 0; idx < len(roster); i, idx = i+1, idx+1 {
		p := roster[idx]
		p.Stats = PlayerStats{
			Status:  StatusSubstitute,
			Role:    team.RoleNone,
			PairKey: team.SubstituteSlot(i + 1),
		}
		st.Players[p.ID] = p
		st.Formation.Subs = append(st.Formation.Subs, p.ID)
	}
	if len(st.Queue.Order) > 0 {
		st.Queue.NextOut = st.Queue.Order[0]
	}
	if len(st.Queue.Order) > 1 {
		st.Queue.NextNextOut = st.Queue.Order[1]
	}
	return st, nil
}

func pairsLineup(st GameState, cfg team.Config, roster []Player, now time.Time) (GameState, error) {
	st.Formation.Pairs = make(map[team.SlotID]Pair, len(cfg.FieldPairs)+len(cfg.SubPairs))
	idx := 1
	place := func(slot team.SlotID, onField bool) {
		def, att := roster[idx], roster[idx+1]
		idx += 2

		status := StatusSubstitute
		if onField {
			status = StatusOnField
		}
		def.Stats = PlayerStats{Status: status, Role: team.RoleDefender, PairKey: slot}
		att.Stats = PlayerStats{Status: status, Role: team.RoleAttacker, PairKey: slot}
		if onField {
			def.Stats = def.Stats.WithStintOpened(now)
			att.Stats = att.Stats.WithStintOpened(now)
			st.Queue.Order = append(st.Queue.Order, def.ID, att.ID)
		}
		st.Players[def.ID] = def
		st.Players[att.ID] = att
		st.Formation.Pairs[slot] = Pair{Defender: def.ID, Attacker: att.ID}
	}
	for _, slot := range cfg.FieldPairs {
		place(slot, true)
	}
	for _, slot := range cfg.SubPairs {
		place(slot, false)
	}
	if len(cfg.FieldPairs) > 0 {
		st.Queue.NextPairOut = cfg.FieldPairs[0]
	}
	return st, nil
}
