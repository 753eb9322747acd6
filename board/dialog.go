package board

import (
	"github.com/gdamore/tcell/v2"
)

// SelectResult represents dialog outcome
type SelectResult uint8

const (
	SelectPending SelectResult = iota
	SelectChosen
	SelectCancelled
)

// Option is one selectable entry; ID is a player or slot identifier
type Option struct {
	ID    string
	Label string
}

// SelectState holds a modal selection dialog: which player to switch with,
// which player to put in goal, which substitute to park. The engine treats
// the chosen identifier purely as an input.
type SelectState struct {
	Title   string
	Options []Option
	Index   int
	Result  SelectResult
}

// NewSelectState creates dialog state over the given options
func NewSelectState(title string, options []Option) *SelectState {
	return &SelectState{Title: title, Options: options}
}

// Chosen returns the selected option id, valid once Result is SelectChosen
func (d *SelectState) Chosen() string {
	if d.Result != SelectChosen || len(d.Options) == 0 {
		return ""
	}
	return d.Options[d.Index].ID
}

// HandleKey processes input, returns true if the dialog should close
func (d *SelectState) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		if d.Index > 0 {
			d.Index--
		}
		return false
	case tcell.KeyDown:
		if d.Index < len(d.Options)-1 {
			d.Index++
		}
		return false
	case tcell.KeyEnter:
		if len(d.Options) == 0 {
			d.Result = SelectCancelled
			return true
		}
		d.Result = SelectChosen
		return true
	case tcell.KeyEscape:
		d.Result = SelectCancelled
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			if d.Index > 0 {
				d.Index--
			}
		case 'j':
			if d.Index < len(d.Options)-1 {
				d.Index++
			}
		case 'q':
			d.Result = SelectCancelled
			return true
		}
	}
	return false
}

// Draw renders the dialog centered on screen
func (d *SelectState) Draw(screen tcell.Screen) {
	w, h := screen.Size()
	boxW := len(d.Title) + 4
	for _, o := range d.Options {
		if len(o.Label)+6 > boxW {
			boxW = len(o.Label) + 6
		}
	}
	boxH := len(d.Options) + 4
	x0 := (w - boxW) / 2
	y0 := (h - boxH) / 2

	border := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	fill := tcell.StyleDefault
	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			screen.SetContent(x, y, ' ', nil, fill)
		}
	}
	drawText(screen, x0+2, y0+1, border.Bold(true), d.Title)
	for i, o := range d.Options {
		style := fill
		prefix := "  "
		if i == d.Index {
			style = fill.Reverse(true)
			prefix = "> "
		}
		drawText(screen, x0+2, y0+3+i, style, prefix+o.Label)
	}
}
