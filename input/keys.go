package input

import "github.com/gdamore/tcell/v2"

func (h *Handler) key(ev *tcell.EventKey) Action {
	if h.entry.Active() {
		return h.entryKey(ev)
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch ev.Rune() {
	case 'q':
		return ActionQuit
	case ']':
		h.palette.Next()
	case '[':
		h.palette.Prev()
	case '#':
		h.entry.Begin()
	case 'c':
		h.trail.Clear()
	default:
		return ActionNone
	}
	return ActionRedraw
}

// entryKey routes keys to the hex editor; Ctrl-C still quits
func (h *Handler) entryKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEscape:
		h.entry.Abort()
	case tcell.KeyEnter:
		h.entry.Commit()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		h.entry.Backspace()
	case tcell.KeyRune:
		h.entry.Type(ev.Rune())
	default:
		return ActionNone
	}
	return ActionRedraw
}
