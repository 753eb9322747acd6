package team

import "fmt"

// Topology selects the unit of rotation for a match
type Topology int

const (
	// TopologyIndividual rotates outfield players one slot at a time
	TopologyIndividual Topology = iota

	// TopologyPairs rotates bonded defender+attacker pairs as single units
	TopologyPairs
)

// String returns the topology name for messages and debugging
func (t Topology) String() string {
	switch t {
	case TopologyIndividual:
		return "individual"
	case TopologyPairs:
		return "pairs"
	default:
		return "unknown"
	}
}

// Format identifies the match format (players per side including goalie)
type Format int

const (
	Format5v5 Format = 5
	Format7v7 Format = 7
)

// Role is a player's tactical role while occupying a slot
type Role int

const (
	RoleNone Role = iota
	RoleDefender
	RoleMidfielder
	RoleAttacker
)

// String returns the role name
func (r Role) String() string {
	switch r {
	case RoleDefender:
		return "defender"
	case RoleMidfielder:
		return "midfielder"
	case RoleAttacker:
		return "attacker"
	default:
		return "none"
	}
}

// Config describes the team setup for one match.
// Immutable for the duration of the match; all slot validity derives from it.
type Config struct {
	Format    Format
	SquadSize int
	Topology  Topology
	Layout    Layout

	// Substitute slots in priority order; substitute_1 is next in
	SubSlots []SlotID

	// Pair slots, pairs topology only
	FieldPairs []SlotID
	SubPairs   []SlotID
}

// NewConfig builds and validates a team configuration.
// Individual topology derives substitute slots from squad size; pairs topology
// is fixed to the 7-player 5v5 setup (two field pairs, one substitute pair).
func NewConfig(format Format, squadSize int, topology Topology, layoutName string) (Config, error) {
	switch topology {
	case TopologyPairs:
		if format != Format5v5 || squadSize != PairsSquadSize {
			return Config{}, fmt.Errorf("%w: pairs topology requires 5v5 with %d players, got format %d squad %d",
				ErrInvalidConfig, PairsSquadSize, format, squadSize)
		}
		return Config{
			Format:     format,
			SquadSize:  squadSize,
			Topology:   topology,
			FieldPairs: []SlotID{SlotLeftPair, SlotRightPair},
			SubPairs:   []SlotID{SlotSubPair},
		}, nil

	case TopologyIndividual:
		layout, err := LookupLayout(format, layoutName)
		if err != nil {
			return Config{}, err
		}
		subCount := squadSize - len(layout.Field) - 1 // one goalie
		if subCount < 0 || subCount > MaxSubstitutes {
			return Config{}, fmt.Errorf("%w: squad %d leaves %d substitute slots for layout %s",
				ErrInvalidConfig, squadSize, subCount, layout.Name)
		}
		subs := make([]SlotID, subCount)
		for i := range subs {
			subs[i] = SubstituteSlot(i + 1)
		}
		return Config{
			Format:    format,
			SquadSize: squadSize,
			Topology:  topology,
			Layout:    layout,
			SubSlots:  subs,
		}, nil

	default:
		return Config{}, fmt.Errorf("%w: topology %d", ErrInvalidConfig, topology)
	}
}

// OutfieldSlots returns the field slots rotated through, excluding the goalie
func (c Config) OutfieldSlots() []SlotID {
	if c.Topology == TopologyPairs {
		return c.FieldPairs
	}
	ids := make([]SlotID, len(c.Layout.Field))
	for i, fs := range c.Layout.Field {
		ids[i] = fs.ID
	}
	return ids
}

// RoleFor returns the tactical role attached to a field slot
func (c Config) RoleFor(slot SlotID) Role {
	for _, fs := range c.Layout.Field {
		if fs.ID == slot {
			return fs.Role
		}
	}
	return RoleNone
}

// SupportsInactive reports whether this configuration supports parking
// substitutes as inactive. Pairs topology rotates whole pairs and has no
// individual substitute ordering to park players in.
func (c Config) SupportsInactive() bool {
	return c.Topology == TopologyIndividual
}
