package transition

import "errors"

// User-facing rejections. The board renders these as toast messages and closes
// any open selection dialog; none of them change state.
var (
	ErrUnsupportedTopology = errors.New("operation not available for this formation type")
	ErrNoActiveSubstitutes = errors.New("no active substitute available")
	ErrNoEligiblePlayer    = errors.New("no on-field player eligible to rotate off")
	ErrNoUndoRecord        = errors.New("nothing to undo")
	ErrUnknownPlayer       = errors.New("unknown player")
	ErrUnknownSlot         = errors.New("unknown slot")
	ErrPlayerNotOnField    = errors.New("player is not on the field")
	ErrNotSubstitute       = errors.New("only substitutes can be toggled inactive")
	ErrPlayerInactive      = errors.New("player is marked inactive")
	ErrAlreadyGoalie       = errors.New("player is already the goalie")
)
