package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/serpent/engine"
)

func keyEvent(key tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

func TestTranslateMovementKeys(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want engine.Direction
	}{
		{keyEvent(tcell.KeyUp, 0), engine.DirUp},
		{keyEvent(tcell.KeyDown, 0), engine.DirDown},
		{keyEvent(tcell.KeyLeft, 0), engine.DirLeft},
		{keyEvent(tcell.KeyRight, 0), engine.DirRight},
		{keyEvent(tcell.KeyRune, 'k'), engine.DirUp},
		{keyEvent(tcell.KeyRune, 'j'), engine.DirDown},
		{keyEvent(tcell.KeyRune, 'h'), engine.DirLeft},
		{keyEvent(tcell.KeyRune, 'l'), engine.DirRight},
		{keyEvent(tcell.KeyRune, 'w'), engine.DirUp},
		{keyEvent(tcell.KeyRune, 'a'), engine.DirLeft},
	}
	for _, c := range cases {
		cmd := Translate(c.ev)
		if cmd.Action != ActionTurn || cmd.Direction != c.want {
			t.Errorf("Translate(%v/%q) = %+v, want turn %v",
				c.ev.Key(), c.ev.Rune(), cmd, c.want)
		}
	}
}

func TestTranslateSystemKeys(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{keyEvent(tcell.KeyEscape, 0), ActionQuit},
		{keyEvent(tcell.KeyCtrlC, 0), ActionQuit},
		{keyEvent(tcell.KeyRune, 'q'), ActionQuit},
		{keyEvent(tcell.KeyRune, 'p'), ActionTogglePause},
		{keyEvent(tcell.KeyRune, ' '), ActionTogglePause},
		{keyEvent(tcell.KeyRune, 'm'), ActionToggleMute},
		{keyEvent(tcell.KeyRune, 'r'), ActionRestart},
	}
	for _, c := range cases {
		if cmd := Translate(c.ev); cmd.Action != c.want {
			t.Errorf("Translate(%v/%q) = %+v, want action %v",
				c.ev.Key(), c.ev.Rune(), cmd, c.want)
		}
	}
}

func TestTranslateUnmappedEvent(t *testing.T) {
	if cmd := Translate(keyEvent(tcell.KeyRune, 'z')); cmd.Action != ActionNone {
		t.Errorf("unmapped rune = %+v, want ActionNone", cmd)
	}
	if cmd := Translate(tcell.NewEventResize(80, 24)); cmd.Action != ActionNone {
		t.Errorf("resize event = %+v, want ActionNone", cmd)
	}
}
