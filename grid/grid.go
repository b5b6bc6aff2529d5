// Package grid holds the fixed LED cell arena
package grid

import "github.com/lixenwraith/led-trail/render"

// Grid dimensions are fixed for the lifetime of the program
const (
	Rows = 12
	Cols = 20
	Size = Rows * Cols
)

// Cell is one illuminable LED
// A cell with Lit == false carries no opacity, color or glow override
type Cell struct {
	Index      int
	Lit        bool
	Brightness float64
	Color      render.RGB
	Glow       render.Glow
}

// Grid owns every cell, addressed by row-major index
type Grid struct {
	cells [Size]Cell
}

// New builds the arena once; cell handles stay valid for the grid's lifetime
func New() *Grid {
	g := &Grid{}
	for i := range g.cells {
		g.cells[i].Index = i
	}
	return g
}

// Index returns the row-major index of (row, col)
func Index(row, col int) int {
	return row*Cols + col
}

// Coords is the inverse of Index
func Coords(index int) (row, col int) {
	return index / Cols, index % Cols
}

// InBounds reports whether (row, col) addresses a cell
func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Cell returns the cell at index, or nil when index is outside the arena
func (g *Grid) Cell(index int) *Cell {
	if index < 0 || index >= Size {
		return nil
	}
	return &g.cells[index]
}

// Reset drops the override on one cell
func (g *Grid) Reset(index int) {
	c := g.Cell(index)
	if c == nil {
		return
	}
	*c = Cell{Index: index}
}

// ResetAll drops every override
func (g *Grid) ResetAll() {
	for i := range g.cells {
		g.cells[i] = Cell{Index: i}
	}
}

// LitCount returns the number of cells currently carrying an override
func (g *Grid) LitCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Lit {
			n++
		}
	}
	return n
}
