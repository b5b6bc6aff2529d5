package renderers

// Cursor is the custom pointer drawn in place of the terminal's own
// The hotspot is given in sprite pixels, as for an image cursor
type Cursor struct {
	Glyph    rune
	HotspotX int
	HotspotY int
	SpriteW  int
	SpriteH  int
}

// DefaultCursor is a centered crosshair on a 32x32 sprite
func DefaultCursor() Cursor {
	return Cursor{Glyph: '+', HotspotX: 16, HotspotY: 16, SpriteW: 32, SpriteH: 32}
}

// Offset converts the hotspot to a terminal cell offset from the pointer
// A hotspot inside the sprite keeps the glyph on the pointer cell
func (c Cursor) Offset() (dx, dy int) {
	return hotspotOffset(c.HotspotX, c.SpriteW), hotspotOffset(c.HotspotY, c.SpriteH)
}

func hotspotOffset(hotspot, span int) int {
	if span <= 0 || (hotspot >= 0 && hotspot < span) {
		return 0
	}
	if hotspot < 0 {
		return (-hotspot + span - 1) / span
	}
	return -(hotspot / span)
}
