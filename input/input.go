// Package input translates terminal key events into editor codes.
package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/texter/layout"
)

// FromKey maps a key event to the code the editor understands. Printable
// runes pass through unchanged. It reports false for keys with no code, such
// as function keys or modified shortcuts.
func FromKey(ev *tcell.EventKey) (rune, bool) {
	if ev == nil {
		return 0, false
	}

	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return layout.Backspace, true
	case tcell.KeyEnter:
		return layout.Newline, true
	case tcell.KeyTab:
		return '\t', true
	case tcell.KeyUp:
		return layout.CursorUp, true
	case tcell.KeyDown:
		return layout.CursorDown, true
	case tcell.KeyLeft:
		return layout.CursorLeft, true
	case tcell.KeyRight:
		return layout.CursorRight, true
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return 0, false
		}
		if r := ev.Rune(); unicode.IsPrint(r) {
			return r, true
		}
	}
	return 0, false
}

// Codes converts a batch of events, dropping those without a code.
func Codes(events []*tcell.EventKey) []rune {
	out := make([]rune, 0, len(events))
	for _, ev := range events {
		if r, ok := FromKey(ev); ok {
			out = append(out, r)
		}
	}
	return out
}
