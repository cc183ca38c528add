package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/serpent/engine"
)

// Action discriminates semantic game actions
type Action uint8

const (
	ActionNone Action = iota

	// System-level actions
	ActionQuit        // q, ESC, Ctrl+C
	ActionTogglePause // p, Space
	ActionToggleMute  // m
	ActionRestart     // r (after death)

	// Movement
	ActionTurn // hjkl, wasd, arrows
)

// Command is one translated input event. Direction is meaningful only
// for ActionTurn.
type Command struct {
	Action    Action
	Direction engine.Direction
}

// Translate maps a terminal event to an abstract game command. Unmapped
// events produce ActionNone.
func Translate(ev tcell.Event) Command {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return Command{}
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Action: ActionQuit}
	case tcell.KeyUp:
		return Command{Action: ActionTurn, Direction: engine.DirUp}
	case tcell.KeyDown:
		return Command{Action: ActionTurn, Direction: engine.DirDown}
	case tcell.KeyLeft:
		return Command{Action: ActionTurn, Direction: engine.DirLeft}
	case tcell.KeyRight:
		return Command{Action: ActionTurn, Direction: engine.DirRight}
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q', 'Q':
			return Command{Action: ActionQuit}
		case 'p', ' ':
			return Command{Action: ActionTogglePause}
		case 'm':
			return Command{Action: ActionToggleMute}
		case 'r':
			return Command{Action: ActionRestart}
		case 'k', 'w':
			return Command{Action: ActionTurn, Direction: engine.DirUp}
		case 'j', 's':
			return Command{Action: ActionTurn, Direction: engine.DirDown}
		case 'h', 'a':
			return Command{Action: ActionTurn, Direction: engine.DirLeft}
		case 'l', 'd':
			return Command{Action: ActionTurn, Direction: engine.DirRight}
		}
	}
	return Command{}
}
