package selector

import (
	"github.com/lucasb-eyer/go-colorful"
)

const (
	paletteHues       = 11
	paletteSaturation = 0.65
	paletteValue      = 1.0
)

// Palette is a ring of preset colors driving a ColorSelector
type Palette struct {
	colors []string
	pos    int
	target *ColorSelector
}

// NewPalette builds the preset ring: DefaultColor followed by evenly spaced hues
// The ring starts on the target's current color when it is one of the presets
func NewPalette(target *ColorSelector) *Palette {
	colors := []string{DefaultColor}
	for i := 0; i < paletteHues; i++ {
		h := float64(i) * 360.0 / paletteHues
		colors = append(colors, colorful.Hsv(h, paletteSaturation, paletteValue).Hex())
	}

	p := &Palette{colors: colors, target: target}
	current := target.Hex()
	for i, c := range colors {
		if c == current {
			p.pos = i
			break
		}
	}
	return p
}

// Colors returns the preset ring
func (p *Palette) Colors() []string {
	return append([]string(nil), p.colors...)
}

// Next selects the following preset
func (p *Palette) Next() string {
	p.pos = (p.pos + 1) % len(p.colors)
	return p.apply()
}

// Prev selects the preceding preset
func (p *Palette) Prev() string {
	p.pos = (p.pos - 1 + len(p.colors)) % len(p.colors)
	return p.apply()
}

func (p *Palette) apply() string {
	c := p.colors[p.pos]
	p.target.Set(c)
	return c
}
