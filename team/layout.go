package team

import (
	"errors"
	"fmt"
)

// SlotID names a position in the active formation or a substitute-ordering slot
type SlotID string

// Field slots shared by the individual layouts
const (
	SlotGoalie SlotID = "goalie"

	SlotDefender       SlotID = "defender"
	SlotLeftDefender   SlotID = "leftDefender"
	SlotCenterDefender SlotID = "centerDefender"
	SlotRightDefender  SlotID = "rightDefender"
	SlotLeftMid        SlotID = "leftMid"
	SlotCenterMid      SlotID = "centerMid"
	SlotRightMid       SlotID = "rightMid"
	SlotAttacker       SlotID = "attacker"
	SlotLeftAttacker   SlotID = "leftAttacker"
	SlotCenterAttacker SlotID = "centerAttacker"
	SlotRightAttacker  SlotID = "rightAttacker"
)

// Pair slots, pairs topology only
const (
	SlotLeftPair  SlotID = "leftPair"
	SlotRightPair SlotID = "rightPair"
	SlotSubPair   SlotID = "subPair"
)

const (
	// PairsSquadSize is the only squad size supported by pairs topology:
	// goalie + two field pairs + one substitute pair
	PairsSquadSize = 7

	// MaxSubstitutes bounds the individual substitute ordering
	MaxSubstitutes = 5
)

// ErrInvalidConfig reports a format/squad/layout combination that cannot be played
var ErrInvalidConfig = errors.New("invalid team configuration")

// SubstituteSlot returns the n-th substitute-ordering slot, 1-based.
// substitute_1 is the foremost slot (next in).
func SubstituteSlot(n int) SlotID {
	return SlotID(fmt.Sprintf("substitute_%d", n))
}

// FieldSlot binds a slot identifier to the role played from it
type FieldSlot struct {
	ID   SlotID
	Role Role
}

// Layout is a named arrangement of outfield slots.
// Valid slot sets are data, not code; transition logic never hardcodes them.
type Layout struct {
	Name  string
	Field []FieldSlot
}

var layouts = map[Format][]Layout{
	Format5v5: {
		{Name: "2-2", Field: []FieldSlot{
			{SlotLeftDefender, RoleDefender},
			{SlotRightDefender, RoleDefender},
			{SlotLeftAttacker, RoleAttacker},
			{SlotRightAttacker, RoleAttacker},
		}},
		{Name: "1-2-1", Field: []FieldSlot{
			{SlotDefender, RoleDefender},
			{SlotLeftMid, RoleMidfielder},
			{SlotRightMid, RoleMidfielder},
			{SlotAttacker, RoleAttacker},
		}},
	},
	Format7v7: {
		{Name: "2-2-2", Field: []FieldSlot{
			{SlotLeftDefender, RoleDefender},
			{SlotRightDefender, RoleDefender},
			{SlotLeftMid, RoleMidfielder},
			{SlotRightMid, RoleMidfielder},
			{SlotLeftAttacker, RoleAttacker},
			{SlotRightAttacker, RoleAttacker},
		}},
		{Name: "2-3-1", Field: []FieldSlot{
			{SlotLeftDefender, RoleDefender},
			{SlotRightDefender, RoleDefender},
			{SlotLeftMid, RoleMidfielder},
			{SlotCenterMid, RoleMidfielder},
			{SlotRightMid, RoleMidfielder},
			{SlotAttacker, RoleAttacker},
		}},
		{Name: "3-3", Field: []FieldSlot{
			{SlotLeftDefender, RoleDefender},
			{SlotCenterDefender, RoleDefender},
			{SlotRightDefender, RoleDefender},
			{SlotLeftAttacker, RoleAttacker},
			{SlotCenterAttacker, RoleAttacker},
			{SlotRightAttacker, RoleAttacker},
		}},
	},
}

// LookupLayout resolves a layout by format and name.
// An empty name selects the first (default) layout for the format.
func LookupLayout(format Format, name string) (Layout, error) {
	available, ok := layouts[format]
	if !ok {
		return Layout{}, fmt.Errorf("%w: unsupported format %d", ErrInvalidConfig, format)
	}
	if name == "" {
		return available[0], nil
	}
	for _, l := range available {
		if l.Name == name {
			return l, nil
		}
	}
	return Layout{}, fmt.Errorf("%w: no layout %q for format %d", ErrInvalidConfig, name, format)
}

// LayoutNames lists the layouts available for a format
func LayoutNames(format Format) []string {
	available := layouts[format]
	names := make([]string, len(available))
	for i, l := range available {
		names[i] = l.Name
	}
	return names
}
