package render

import "fmt"

// Glow parameters of the colored shadow around a lit cell
const (
	GlowAlpha = 0.8
	GlowBlur  = 20
)

// Glow is a semi-transparent colored shadow
type Glow struct {
	Color RGB
	Alpha float64
	Blur  int
}

// GlowFor derives the shadow for a cell lit with c
func GlowFor(c RGB) Glow {
	return Glow{Color: c, Alpha: GlowAlpha, Blur: GlowBlur}
}

// IsZero reports whether the glow is unset
func (g Glow) IsZero() bool {
	return g.Alpha == 0
}

// CSS formats the glow as a box-shadow value, used in debug logs
func (g Glow) CSS() string {
	if g.IsZero() {
		return ""
	}
	return fmt.Sprintf("0 0 %dpx rgba(%d, %d, %d, %g)", g.Blur, g.Color.R, g.Color.G, g.Color.B, g.Alpha)
}

// Tint blends the glow over bg, attenuated by falloff in [0, 1]
func (g Glow) Tint(bg RGB, falloff float64) RGB {
	return Blend(bg, g.Color, g.Alpha*falloff)
}
