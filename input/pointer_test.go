package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/led-trail/render"
	"github.com/lixenwraith/led-trail/selector"
)

type moveCall struct {
	x, y   float64
	bounds render.Rect
}

type fakeTrail struct {
	moves  []moveCall
	leaves int
	clears int
}

func (f *fakeTrail) PointerMove(x, y float64, b render.Rect) {
	f.moves = append(f.moves, moveCall{x, y, b})
}
func (f *fakeTrail) PointerLeave() { f.leaves++ }
func (f *fakeTrail) Clear()        { f.clears++ }

type fakeView struct {
	bounds   render.Rect
	layouts  int
	px, py   int
	pvisible bool
}

func (v *fakeView) Layout() render.Rect { v.layouts++; return v.bounds }
func (v *fakeView) Bounds() render.Rect { return v.bounds }
func (v *fakeView) SetPointer(x, y int, visible bool) {
	v.px, v.py, v.pvisible = x, y, visible
}

func newTestHandler() (*Handler, *fakeTrail, *fakeView, *selector.ColorSelector) {
	tr := &fakeTrail{}
	view := &fakeView{bounds: render.Rect{X: 10, Y: 5, Width: 60, Height: 12}}
	sel := selector.New("")
	h := NewHandler(tr, view, selector.NewPalette(sel), selector.NewHexInput(sel))
	return h, tr, view, sel
}

func mouseAt(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestMouseInsideGridMovesPointer(t *testing.T) {
	h, tr, view, _ := newTestHandler()

	if got := h.HandleEvent(mouseAt(13, 7)); got != ActionRedraw {
		t.Errorf("Expected redraw, got %v", got)
	}
	if len(tr.moves) != 1 {
		t.Fatalf("Expected one move, got %d", len(tr.moves))
	}
	m := tr.moves[0]
	if m.x != 3 || m.y != 2 || m.bounds != view.bounds {
		t.Errorf("Move not relative to grid origin: %+v", m)
	}
	if !view.pvisible || view.px != 13 || view.py != 7 {
		t.Errorf("Pointer glyph not updated: (%d,%d) visible=%v", view.px, view.py, view.pvisible)
	}
	if !h.Inside() {
		t.Error("Handler should track pointer inside")
	}
}

func TestLeaveEmittedOncePerExit(t *testing.T) {
	h, tr, _, _ := newTestHandler()

	h.HandleEvent(mouseAt(0, 0))
	if tr.leaves != 0 {
		t.Error("Motion outside without prior entry should not leave")
	}

	h.HandleEvent(mouseAt(20, 8))
	h.HandleEvent(mouseAt(0, 0))
	h.HandleEvent(mouseAt(1, 0))
	if tr.leaves != 1 {
		t.Errorf("Expected one leave, got %d", tr.leaves)
	}

	h.HandleEvent(mouseAt(20, 8))
	h.HandleEvent(mouseAt(79, 23))
	if tr.leaves != 2 {
		t.Errorf("Re-entry should re-arm leave detection, got %d leaves", tr.leaves)
	}
}

func TestFocusLossLeaves(t *testing.T) {
	h, tr, view, _ := newTestHandler()

	h.HandleEvent(mouseAt(20, 8))
	h.HandleEvent(tcell.NewEventFocus(false))

	if tr.leaves != 1 {
		t.Errorf("Expected leave on focus loss, got %d", tr.leaves)
	}
	if view.pvisible {
		t.Error("Pointer glyph should hide on focus loss")
	}
}

func TestResizeRelayouts(t *testing.T) {
	h, _, view, _ := newTestHandler()

	if got := h.HandleEvent(tcell.NewEventResize(100, 40)); got != ActionResize {
		t.Errorf("Expected resize action, got %v", got)
	}
	if view.layouts != 1 {
		t.Errorf("Expected one layout, got %d", view.layouts)
	}
}

func TestQuitKeys(t *testing.T) {
	h, _, _, _ := newTestHandler()

	for _, ev := range []*tcell.EventKey{
		runeKey('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
	} {
		if got := h.HandleEvent(ev); got != ActionQuit {
			t.Errorf("Key %v should quit, got %v", ev.Name(), got)
		}
	}
}

func TestPaletteKeys(t *testing.T) {
	h, _, _, sel := newTestHandler()
	start := sel.Hex()

	h.HandleEvent(runeKey(']'))
	if sel.Hex() == start {
		t.Error("] should select the next preset")
	}
	h.HandleEvent(runeKey('['))
	if sel.Hex() != start {
		t.Errorf("[ should return to %s, got %s", start, sel.Hex())
	}
}

func TestHexEntryKeys(t *testing.T) {
	h, _, _, sel := newTestHandler()

	h.HandleEvent(runeKey('#'))
	for _, r := range "ff00aa" {
		h.HandleEvent(runeKey(r))
	}
	// 'q' inside entry is not a quit
	if got := h.HandleEvent(runeKey('q')); got == ActionQuit {
		t.Error("q during hex entry must not quit")
	}
	h.HandleEvent(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	h.HandleEvent(runeKey('b'))
	h.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	if sel.Hex() != "#ff00ab" {
		t.Errorf("Expected #ff00ab, got %s", sel.Hex())
	}

	h.HandleEvent(runeKey('#'))
	h.HandleEvent(runeKey('1'))
	if got := h.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); got == ActionQuit {
		t.Error("Escape during entry should abort, not quit")
	}
	if sel.Hex() != "#ff00ab" {
		t.Errorf("Abort changed color to %s", sel.Hex())
	}
}

func TestClearKey(t *testing.T) {
	h, tr, _, _ := newTestHandler()
	h.HandleEvent(runeKey('c'))
	if tr.clears != 1 {
		t.Errorf("Expected immediate clear, got %d", tr.clears)
	}
	if got := h.HandleEvent(runeKey('z')); got != ActionNone {
		t.Errorf("Unbound key should be ignored, got %v", got)
	}
}
