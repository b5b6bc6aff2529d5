// Package trail maps recent pointer positions to illuminated grid cells
package trail

import (
	"log"
	"math"
	"sort"
	"time"

	"github.com/lixenwraith/led-trail/engine"
	"github.com/lixenwraith/led-trail/grid"
	"github.com/lixenwraith/led-trail/render"
	"github.com/lixenwraith/led-trail/selector"
)

const (
	// Radius is the neighborhood lit around each trail position
	Radius = 1
	// MinBrightness floors every lit cell's opacity
	// At 1 every lit cell is fully opaque and the decay gradient has no visible effect
	MinBrightness = 1.0
	// TrailLength is the capacity of the position history
	TrailLength = 8
	// LagDelay separates the last pointer move of a burst from the recompute
	LagDelay = 20 * time.Millisecond
	// FadeOutDelay separates pointer leave from clearing
	FadeOutDelay = 1000 * time.Millisecond
)

// Position is a grid coordinate, possibly outside the grid
type Position struct {
	Row, Col int
}

// Phase is the renderer's position in the idle → trailing → fading cycle
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTrailing
	PhaseFading
)

func (p Phase) String() string {
	switch p {
	case PhaseTrailing:
		return "trailing"
	case PhaseFading:
		return "fading"
	default:
		return "idle"
	}
}

// Observer receives lifecycle notifications, used for sound cues
type Observer interface {
	TrailStarted()
	TrailCleared()
}

// Renderer owns the cell overrides, position history and pending timers
// All methods must be called from one goroutine; timer callbacks are routed through the dispatch option
type Renderer struct {
	grid     *grid.Grid
	selector selector.Selector

	history     []Position
	highlighted map[int]struct{}

	lag       *engine.PendingTask
	fade      *engine.PendingTask
	lagDelay  time.Duration
	fadeDelay time.Duration

	onChange  func()
	observer  Observer
	debug     bool
	disposed  bool
	recompute int
}

// Option configures a Renderer
type Option func(*config)

type config struct {
	clock     engine.Clock
	dispatch  engine.Dispatch
	lagDelay  time.Duration
	fadeDelay time.Duration
	onChange  func()
	observer  Observer
	debug     bool
}

// WithClock sets the clock used for lag and fade timers
func WithClock(c engine.Clock) Option {
	return func(cfg *config) { cfg.clock = c }
}

// WithDispatch routes timer callbacks, typically engine.Loop.Post
// Required with a real clock: without it callbacks mutate state on the timer goroutine
func WithDispatch(d engine.Dispatch) Option {
	return func(cfg *config) { cfg.dispatch = d }
}

// WithLagDelay overrides LagDelay
func WithLagDelay(d time.Duration) Option {
	return func(cfg *config) { cfg.lagDelay = d }
}

// WithFadeOutDelay overrides FadeOutDelay
func WithFadeOutDelay(d time.Duration) Option {
	return func(cfg *config) { cfg.fadeDelay = d }
}

// WithOnChange registers a hook called after every visible state change
func WithOnChange(fn func()) Option {
	return func(cfg *config) { cfg.onChange = fn }
}

// WithObserver registers lifecycle notifications
func WithObserver(o Observer) Option {
	return func(cfg *config) { cfg.observer = o }
}

// WithDebugLog logs every lit cell after each recompute
func WithDebugLog(enabled bool) Option {
	return func(cfg *config) { cfg.debug = enabled }
}

// New creates a renderer over g reading the active color from sel
// Defaults are SystemClock and engine.Direct, so timer callbacks run on time.AfterFunc
// goroutines; callers on a real clock must pass WithDispatch(loop.Post) to keep every
// state change on one goroutine. engine.Direct is only safe with engine.MockClock
func New(g *grid.Grid, sel selector.Selector, opts ...Option) *Renderer {
	cfg := config{
		clock:     engine.NewSystemClock(),
		dispatch:  engine.Direct,
		lagDelay:  LagDelay,
		fadeDelay: FadeOutDelay,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Renderer{
		grid:        g,
		selector:    sel,
		history:     make([]Position, 0, TrailLength+1),
		highlighted: make(map[int]struct{}),
		lag:         engine.NewPendingTask(cfg.clock, cfg.dispatch),
		fade:        engine.NewPendingTask(cfg.clock, cfg.dispatch),
		lagDelay:    cfg.lagDelay,
		fadeDelay:   cfg.fadeDelay,
		onChange:    cfg.onChange,
		observer:    cfg.observer,
		debug:       cfg.debug,
	}
}

// ToGrid scales a point inside bounds to a grid coordinate
func ToGrid(x, y float64, bounds render.Rect) Position {
	if bounds.Empty() {
		return Position{Row: -1, Col: -1}
	}
	cellH := float64(bounds.Height) / grid.Rows
	cellW := float64(bounds.Width) / grid.Cols
	return Position{
		Row: int(math.Floor(y / cellH)),
		Col: int(math.Floor(x / cellW)),
	}
}

// RecordPosition appends the grid coordinate under (x, y) to the history
// Coordinates are relative to bounds; out-of-range results are kept and filtered at recompute
func (r *Renderer) RecordPosition(x, y float64, bounds render.Rect) {
	r.history = append(r.history, ToGrid(x, y, bounds))
	if len(r.history) > TrailLength {
		copy(r.history, r.history[1:])
		r.history = r.history[:TrailLength]
	}
}

// Recompute rebuilds the highlighted set from the position history
func (r *Renderer) Recompute() {
	wasIdle := len(r.highlighted) == 0

	r.clearCells()

	next := make(map[int]struct{})
	for i, pos := range r.history {
		brightness := 1 - float64(i)/TrailLength

		for di := -Radius; di <= Radius; di++ {
			for dj := -Radius; dj <= Radius; dj++ {
				row := pos.Row + di
				col := pos.Col + dj
				dist := math.Sqrt(float64(di*di + dj*dj))

				if dist > Radius || !grid.InBounds(row, col) {
					continue
				}

				idx := grid.Index(row, col)
				cell := r.grid.Cell(idx)
				if cell == nil {
					continue
				}
				cell.Brightness = math.Max(MinBrightness, brightness*(1-dist/Radius))
				next[idx] = struct{}{}
			}
		}
	}

	r.highlighted = next
	r.applyColor()
	r.recompute++

	if r.debug {
		r.logCells()
	}

	if wasIdle && len(next) > 0 && r.observer != nil {
		r.observer.TrailStarted()
	}
	r.changed()
}

// applyColor paints every highlighted cell with the selector's current color
func (r *Renderer) applyColor() {
	color := render.HexToRGB(r.selector.Hex())
	glow := render.GlowFor(color)

	for idx := range r.highlighted {
		cell := r.grid.Cell(idx)
		if cell == nil {
			continue
		}
		cell.Lit = true
		cell.Color = color
		cell.Glow = glow
	}
}

// Repaint reapplies the active color without touching geometry
func (r *Renderer) Repaint() {
	if len(r.highlighted) == 0 {
		return
	}
	r.applyColor()
	r.changed()
}

// ScheduleClear arms the fade-out; a pointer move before it fires cancels it
func (r *Renderer) ScheduleClear() {
	if r.disposed {
		return
	}
	r.fade.Schedule(r.fadeDelay, r.Clear)
	r.changed()
}

// Clear drops every override and empties the highlighted set
func (r *Renderer) Clear() {
	hadTrail := len(r.highlighted) > 0

	r.clearCells()
	r.highlighted = make(map[int]struct{})

	if hadTrail && r.observer != nil {
		r.observer.TrailCleared()
	}
	r.changed()
}

// clearCells resets every cell, matching the wholesale reset of each pass
func (r *Renderer) clearCells() {
	r.grid.ResetAll()
}

// PointerMove handles pointer motion at (x, y) relative to bounds
// Any pending fade-out is cancelled and the recompute is debounced by the lag delay
func (r *Renderer) PointerMove(x, y float64, bounds render.Rect) {
	if r.disposed {
		return
	}
	r.fade.Cancel()
	r.lag.Schedule(r.lagDelay, func() {
		r.RecordPosition(x, y, bounds)
		r.Recompute()
	})
}

// PointerLeave handles the pointer leaving the grid
func (r *Renderer) PointerLeave() {
	r.ScheduleClear()
}

// Dispose cancels pending timers; later events are ignored
func (r *Renderer) Dispose() {
	r.disposed = true
	r.lag.Cancel()
	r.fade.Cancel()
}

// Phase derives the current position in the idle → trailing → fading cycle
func (r *Renderer) Phase() Phase {
	switch {
	case r.fade.Pending() && len(r.highlighted) > 0:
		return PhaseFading
	case len(r.highlighted) > 0 || r.lag.Pending():
		return PhaseTrailing
	default:
		return PhaseIdle
	}
}

// History returns a copy of the position history, oldest first
func (r *Renderer) History() []Position {
	return append([]Position(nil), r.history...)
}

// Highlighted returns the illuminated indices in ascending order
func (r *Renderer) Highlighted() []int {
	out := make([]int, 0, len(r.highlighted))
	for idx := range r.highlighted {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// IsHighlighted reports whether idx is illuminated
func (r *Renderer) IsHighlighted(idx int) bool {
	_, ok := r.highlighted[idx]
	return ok
}

// Brightness returns the opacity of a highlighted cell, 0 otherwise
func (r *Renderer) Brightness(idx int) float64 {
	cell := r.grid.Cell(idx)
	if cell == nil || !cell.Lit {
		return 0
	}
	return cell.Brightness
}

// Recomputes returns how many recomputes have run
func (r *Renderer) Recomputes() int {
	return r.recompute
}

func (r *Renderer) changed() {
	if r.onChange != nil {
		r.onChange()
	}
}

// logCells dumps the lit cells at debug level
func (r *Renderer) logCells() {
	for _, idx := range r.Highlighted() {
		c := r.grid.Cell(idx)
		row, col := grid.Coords(idx)
		log.Printf("trail: cell %d (%d,%d) opacity=%.2f bg=%s shadow=%q", idx, row, col, c.Brightness, c.Color.Hex(), c.Glow.CSS())
	}
}
