package pkg

import "github.com/gdamore/tcell/v2"

type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionSelect
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

type Keybinding struct {
	k tcell.Key
	r rune
	m tcell.ModMask

	a Action
}

var keybindings = []*Keybinding{
	{k: tcell.KeyUp, a: ActionUp},
	{k: tcell.KeyRune, r: 'k', a: ActionUp},
	{k: tcell.KeyRune, r: 'K', a: ActionUp},
	{k: tcell.KeyDown, a: ActionDown},
	{k: tcell.KeyRune, r: 'j', a: ActionDown},
	{k: tcell.KeyRune, r: 'J', a: ActionDown},
	{k: tcell.KeyLeft, a: ActionLeft},
	{k: tcell.KeyRune, r: 'h', a: ActionLeft},
	{k: tcell.KeyRune, r: 'H', a: ActionLeft},
	{k: tcell.KeyRight, a: ActionRight},
	{k: tcell.KeyRune, r: 'l', a: ActionRight},
	{k: tcell.KeyRune, r: 'L', a: ActionRight},
	{k: tcell.KeyEnter, a: ActionSelect},
	{k: tcell.KeyRune, r: ' ', a: ActionSelect},
	{k: tcell.KeyEscape, a: ActionQuit},
	{k: tcell.KeyCtrlC, a: ActionQuit},
	{k: tcell.KeyRune, r: 'q', a: ActionQuit},
	{k: tcell.KeyRune, r: 'Q', a: ActionQuit},
}

// ActionFor resolves a key press against the keybinding table.
func ActionFor(ev *tcell.EventKey) Action {
	k := ev.Key()
	r := ev.Rune()

	for _, bind := range keybindings {
		if (bind.k != 0 && bind.k != k) || (bind.r != 0 && bind.r != r) || (bind.m != 0 && bind.m != ev.Modifiers()) {
			continue
		}
		return bind.a
	}
	return ActionNone
}
