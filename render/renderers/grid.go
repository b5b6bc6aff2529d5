package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/led-trail/grid"
	"github.com/lixenwraith/led-trail/render"
)

// LED geometry in terminal cells
const (
	CellWidth = 2
	CellGap   = 1
	CellPitch = CellWidth + CellGap

	gapGlowFalloff  = 0.5
	haloGlowFalloff = 0.25
)

// Status is the information shown on the bottom line
type Status struct {
	Color string
	Lit   int
	Phase string
	Entry string // hex entry in progress, empty when inactive
	Sound bool
}

// GridRenderer draws the LED grid, pointer glyph and status line onto a tcell screen
type GridRenderer struct {
	screen tcell.Screen
	grid   *grid.Grid
	cursor Cursor

	bounds render.Rect

	pointerX, pointerY int
	pointerVisible     bool
}

// NewGridRenderer creates a renderer and computes the initial layout
func NewGridRenderer(screen tcell.Screen, g *grid.Grid, cursor Cursor) *GridRenderer {
	r := &GridRenderer{
		screen: screen,
		grid:   g,
		cursor: cursor,
	}
	r.Layout()
	return r
}

// Layout centers the grid in the current screen size and returns its bounding box
func (r *GridRenderer) Layout() render.Rect {
	w, h := r.screen.Size()
	gw := grid.Cols * CellPitch
	gh := grid.Rows

	x := (w - gw) / 2
	// Row 0 is the title, last row is the status line
	y := 1 + (h-2-gh)/2
	if x < 0 {
		x = 0
	}
	if y < 1 {
		y = 1
	}

	r.bounds = render.Rect{X: x, Y: y, Width: gw, Height: gh}
	return r.bounds
}

// Bounds returns the grid's rendered bounding box
func (r *GridRenderer) Bounds() render.Rect {
	return r.bounds
}

// SetPointer records where the pointer glyph is drawn
func (r *GridRenderer) SetPointer(x, y int, visible bool) {
	r.pointerX, r.pointerY = x, y
	r.pointerVisible = visible
}

// LEDOrigin returns the screen position of the LED at (row, col)
func (r *GridRenderer) LEDOrigin(row, col int) (int, int) {
	return r.bounds.X + col*CellPitch, r.bounds.Y + row
}

// Draw renders one full frame
func (r *GridRenderer) Draw(status Status) {
	bg := tcell.StyleDefault.Background(render.RGBPanel.TCell())
	r.screen.Fill(' ', bg)

	r.drawTitle(bg)

	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			r.drawLED(row, col)
			r.drawGap(row, col)
		}
	}

	r.drawPointer()
	r.drawStatus(status, bg)
	r.screen.Show()
}

func (r *GridRenderer) drawTitle(bg tcell.Style) {
	title := "led-trail"
	w, _ := r.screen.Size()
	drawText(r.screen, (w-len(title))/2, 0, title, bg.Foreground(render.RGBStatusFg.TCell()).Bold(true))
}

// ledColor resolves what an LED shows, including halo from vertical neighbors
func (r *GridRenderer) ledColor(row, col int) render.RGB {
	cell := r.grid.Cell(grid.Index(row, col))
	if cell != nil && cell.Lit {
		return render.Blend(render.RGBLedBase, cell.Color, cell.Brightness)
	}

	base := render.RGBLedBase
	for _, dr := range [2]int{-1, 1} {
		if !grid.InBounds(row+dr, col) {
			continue
		}
		n := r.grid.Cell(grid.Index(row+dr, col))
		if n != nil && n.Lit {
			base = n.Glow.Tint(base, haloGlowFalloff)
		}
	}
	return base
}

func (r *GridRenderer) drawLED(row, col int) {
	x, y := r.LEDOrigin(row, col)
	style := tcell.StyleDefault.Background(r.ledColor(row, col).TCell())
	for i := 0; i < CellWidth; i++ {
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
}

// drawGap tints the gap after (row, col) with glow from either side
func (r *GridRenderer) drawGap(row, col int) {
	x, y := r.LEDOrigin(row, col)
	color := render.RGBPanel

	for _, c := range [2]int{col, col + 1} {
		if !grid.InBounds(row, c) {
			continue
		}
		n := r.grid.Cell(grid.Index(row, c))
		if n != nil && n.Lit {
			color = n.Glow.Tint(color, gapGlowFalloff)
		}
	}

	r.screen.SetContent(x+CellWidth, y, ' ', nil, tcell.StyleDefault.Background(color.TCell()))
}

func (r *GridRenderer) drawPointer() {
	if !r.pointerVisible {
		return
	}
	dx, dy := r.cursor.Offset()
	x, y := r.pointerX+dx, r.pointerY+dy

	w, h := r.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}

	_, _, style, _ := r.screen.GetContent(x, y)
	_, bgColor, _ := style.Decompose()
	r.screen.SetContent(x, y, r.cursor.Glyph, nil, tcell.StyleDefault.Background(bgColor).Foreground(tcell.ColorWhite).Bold(true))
}

func (r *GridRenderer) drawStatus(s Status, bg tcell.Style) {
	_, h := r.screen.Size()
	y := h - 1
	x := 1

	swatch := tcell.StyleDefault.Background(render.HexToRGB(s.Color).TCell())
	r.screen.SetContent(x, y, ' ', nil, swatch)
	r.screen.SetContent(x+1, y, ' ', nil, swatch)
	x += 3

	fg := bg.Foreground(render.RGBStatusFg.TCell())
	text := fmt.Sprintf("%s  lit %d  %s", s.Color, s.Lit, s.Phase)
	if s.Sound {
		text += "  sound"
	}
	if s.Entry != "" {
		text += "  color: " + s.Entry + "_"
	} else {
		text += "  [ ] palette  # hex  c clear  q quit"
	}
	drawText(r.screen, x, y, text, fg)
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
