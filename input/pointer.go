// Package input translates terminal events into pointer and color-selection actions
package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/led-trail/render"
)

// Action tells the caller what follow-up an event needs
type Action int

const (
	ActionNone Action = iota
	ActionRedraw
	ActionResize
	ActionQuit
)

// Trail receives pointer events
type Trail interface {
	PointerMove(x, y float64, bounds render.Rect)
	PointerLeave()
	Clear()
}

// View exposes the grid's layout and the pointer glyph
type View interface {
	Layout() render.Rect
	Bounds() render.Rect
	SetPointer(x, y int, visible bool)
}

// Palette cycles preset colors
type Palette interface {
	Next() string
	Prev() string
}

// HexEntry is an in-progress typed color
type HexEntry interface {
	Active() bool
	Begin()
	Type(r rune)
	Backspace()
	Commit() string
	Abort()
}

// Handler owns pointer leave detection; a terminal reports no leave event,
// so leaving is the first motion outside the grid or a focus loss
type Handler struct {
	trail   Trail
	view    View
	palette Palette
	entry   HexEntry

	inside bool
}

// NewHandler wires event translation to its targets
func NewHandler(trail Trail, view View, palette Palette, entry HexEntry) *Handler {
	return &Handler{trail: trail, view: view, palette: palette, entry: entry}
}

// Inside reports whether the pointer is currently over the grid
func (h *Handler) Inside() bool {
	return h.inside
}

// HandleEvent processes one terminal event
func (h *Handler) HandleEvent(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		return h.pointer(x, y)

	case *tcell.EventFocus:
		if !ev.Focused {
			h.view.SetPointer(0, 0, false)
			h.leave()
			return ActionRedraw
		}

	case *tcell.EventResize:
		h.view.Layout()
		return ActionResize

	case *tcell.EventKey:
		return h.key(ev)
	}
	return ActionNone
}

func (h *Handler) pointer(x, y int) Action {
	h.view.SetPointer(x, y, true)

	b := h.view.Bounds()
	if !b.Contains(x, y) {
		h.leave()
		return ActionRedraw
	}

	h.inside = true
	h.trail.PointerMove(float64(x-b.X), float64(y-b.Y), b)
	return ActionRedraw
}

func (h *Handler) leave() {
	if !h.inside {
		return
	}
	h.inside = false
	h.trail.PointerLeave()
}
