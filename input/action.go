// Package input turns terminal events into game actions and pumps
// them to the frame loop over a buffered channel
package input

import (
	"github.com/gdamore/tcell/v2"
)

// ActionKind classifies a player intent
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionQuit
	ActionJump
	ActionDuck
	ActionReplay
	ActionSelect
	ActionResize
)

// Action is one decoded player intent
// Index carries the roster position for ActionSelect
type Action struct {
	Kind  ActionKind
	Index int
}

// Translate decodes a terminal event into an action
// Unmapped events return ok false
func Translate(ev tcell.Event) (Action, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Action{Kind: ActionResize}, true
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return Action{Kind: ActionQuit}, true
		case tcell.KeyUp:
			return Action{Kind: ActionJump}, true
		case tcell.KeyDown:
			return Action{Kind: ActionDuck}, true
		case tcell.KeyRune:
			return translateRune(ev.Rune())
		}
	}
	return Action{}, false
}

func translateRune(r rune) (Action, bool) {
	switch {
	case r == ' ':
		return Action{Kind: ActionJump}, true
	case r == 'q' || r == 'Q':
		return Action{Kind: ActionQuit}, true
	case r == 'r' || r == 'R':
		return Action{Kind: ActionReplay}, true
	case r >= '1' && r <= '9':
		return Action{Kind: ActionSelect, Index: int(r - '1')}, true
	}
	return Action{}, false
}
