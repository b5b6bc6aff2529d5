package selector

import (
	"testing"

	"github.com/lixenwraith/led-trail/render"
)

func TestColorSelectorDefault(t *testing.T) {
	s := New("")
	if s.Hex() != DefaultColor {
		t.Errorf("Expected %s, got %s", DefaultColor, s.Hex())
	}
}

func TestColorSelectorSetNotifies(t *testing.T) {
	s := New("#000000")

	var seen []string
	s.OnChange(func(hex string) { seen = append(seen, hex) })

	s.Set("#ff0000")
	s.Set("#ff0000")
	s.Set("oops")

	if len(seen) != 2 || seen[0] != "#ff0000" || seen[1] != "oops" {
		t.Errorf("Expected two notifications [#ff0000 oops], got %v", seen)
	}
	if got := render.HexToRGB(s.Hex()); got != render.RGBBlack {
		t.Errorf("Malformed color should decode to black, got %+v", got)
	}
}

func TestPaletteCycles(t *testing.T) {
	s := New("")
	p := NewPalette(s)
	colors := p.Colors()

	if len(colors) != paletteHues+1 {
		t.Fatalf("Expected %d presets, got %d", paletteHues+1, len(colors))
	}
	for _, c := range colors {
		if len(c) != 7 || c[0] != '#' {
			t.Errorf("Preset %q is not #rrggbb", c)
		}
	}

	if got := p.Next(); got != colors[1] || s.Hex() != colors[1] {
		t.Errorf("Next should select %s, got %s (selector %s)", colors[1], got, s.Hex())
	}
	p.Prev()
	if got := p.Prev(); got != colors[len(colors)-1] {
		t.Errorf("Prev should wrap to %s, got %s", colors[len(colors)-1], got)
	}
}

func TestHexInput(t *testing.T) {
	s := New("")
	in := NewHexInput(s)

	in.Type('a')
	if in.Active() || in.Text() != "#" {
		t.Fatal("Typing before Begin should be ignored")
	}

	in.Begin()
	for _, r := range "12zx34ab99" {
		in.Type(r)
	}
	if got := in.Text(); got != "#1234ab" {
		t.Errorf("Expected #1234ab, got %s", got)
	}

	in.Backspace()
	in.Type('c')
	if got := in.Commit(); got != "#1234ac" {
		t.Errorf("Commit returned %s", got)
	}
	if s.Hex() != "#1234ac" {
		t.Errorf("Selector not updated, got %s", s.Hex())
	}
	if in.Active() {
		t.Error("Commit should end the entry")
	}
}

func TestHexInputAbortAndShortCommit(t *testing.T) {
	s := New("#c9ff5e")
	in := NewHexInput(s)

	in.Begin()
	in.Type('f')
	in.Abort()
	if s.Hex() != "#c9ff5e" {
		t.Errorf("Abort changed selector to %s", s.Hex())
	}

	in.Begin()
	in.Type('f')
	in.Type('f')
	in.Type('f')
	in.Commit()
	if s.Hex() != "#fff" {
		t.Errorf("Short entries are committed as typed, got %s", s.Hex())
	}
	if got := render.HexToRGB(s.Hex()); got != render.RGBBlack {
		t.Errorf("Short hex should fall back to black, got %+v", got)
	}
}
