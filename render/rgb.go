package render

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/gdamore/tcell/v2"
)

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack    = RGB{0, 0, 0}
	RGBLedBase  = RGB{34, 36, 40}
	RGBPanel    = RGB{12, 12, 16}
	RGBStatusFg = RGB{150, 150, 170}
)

// HexToRGB decodes a "#RRGGBB" string
// Length is counted in UTF-16 code units, as a browser color input reports it, and any
// length other than 7 decodes to black. Each pair is read like parseInt(pair, 16): leading
// whitespace and one sign are skipped, then the longest run of hex digits is used.
// A pair with no digits decodes to 0, and a negative value is clamped to 0
func HexToRGB(hex string) RGB {
	units := utf16.Encode([]rune(hex))
	if len(units) != 7 {
		return RGBBlack
	}
	return RGB{
		R: hexChannel(units[1:3]),
		G: hexChannel(units[3:5]),
		B: hexChannel(units[5:7]),
	}
}

func hexChannel(pair []uint16) uint8 {
	s := strings.TrimLeftFunc(string(utf16.Decode(pair)), unicode.IsSpace)

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && isHexDigit(s[end]) {
		end++
	}
	if end == 0 || negative {
		return 0
	}

	v, err := strconv.ParseUint(s[:end], 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// Hex formats the color as "#rrggbb"
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// TCell converts to a tcell true color value
func (c RGB) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Blend is a linear alpha blend of src over c
// Alpha of 1.0 or 0.0 returns early
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	inv := 1.0 - alpha

	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies all channels by factor
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}
