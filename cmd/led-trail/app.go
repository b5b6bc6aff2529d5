package main

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/led-trail/audio"
	"github.com/lixenwraith/led-trail/config"
	"github.com/lixenwraith/led-trail/engine"
	"github.com/lixenwraith/led-trail/grid"
	"github.com/lixenwraith/led-trail/input"
	"github.com/lixenwraith/led-trail/render/renderers"
	"github.com/lixenwraith/led-trail/selector"
	"github.com/lixenwraith/led-trail/trail"
)

// app holds every component; all of its state is touched from the loop goroutine only
type app struct {
	screen   tcell.Screen
	grid     *grid.Grid
	selector *selector.ColorSelector
	palette  *selector.Palette
	hexInput *selector.HexInput
	view     *renderers.GridRenderer
	trail    *trail.Renderer
	input    *input.Handler
	sound    *audio.SoundManager

	cancel context.CancelFunc
}

// newApp wires components; clock and dispatch are injected so tests can drive time
func newApp(screen tcell.Screen, cfg config.Config, clock engine.Clock, dispatch engine.Dispatch, sound *audio.SoundManager, debug bool) *app {
	a := &app{
		screen: screen,
		grid:   grid.New(),
		sound:  sound,
	}

	a.selector = selector.New(cfg.Color)
	a.palette = selector.NewPalette(a.selector)
	a.hexInput = selector.NewHexInput(a.selector)

	cursor := renderers.Cursor{
		Glyph:    cfg.CursorGlyph(),
		HotspotX: cfg.Cursor.HotspotX,
		HotspotY: cfg.Cursor.HotspotY,
		SpriteW:  cfg.Cursor.SpriteW,
		SpriteH:  cfg.Cursor.SpriteH,
	}
	a.view = renderers.NewGridRenderer(screen, a.grid, cursor)

	a.trail = trail.New(a.grid, a.selector,
		trail.WithClock(clock),
		trail.WithDispatch(dispatch),
		trail.WithLagDelay(cfg.LagDelay()),
		trail.WithFadeOutDelay(cfg.FadeOutDelay()),
		trail.WithOnChange(a.draw),
		trail.WithObserver(sound),
		trail.WithDebugLog(debug),
	)

	a.selector.OnChange(func(hex string) {
		log.Printf("trail: color -> %s", hex)
		a.sound.PlayClick()
		a.trail.Repaint()
	})

	a.input = input.NewHandler(a.trail, a.view, a.palette, a.hexInput)
	return a
}

// handle processes one terminal event, returns false on quit
func (a *app) handle(ev tcell.Event) bool {
	switch a.input.HandleEvent(ev) {
	case input.ActionQuit:
		if a.cancel != nil {
			a.cancel()
		}
		return false
	case input.ActionResize:
		a.screen.Sync()
		a.draw()
	case input.ActionRedraw:
		a.draw()
	}
	return true
}

// applyConfig takes a reloaded file; only the color is live-reloadable
func (a *app) applyConfig(cfg config.Config) {
	a.selector.Set(cfg.Color)
}

func (a *app) status() renderers.Status {
	s := renderers.Status{
		Color: a.selector.Hex(),
		Lit:   len(a.trail.Highlighted()),
		Phase: a.trail.Phase().String(),
		Sound: a.sound.Initialized(),
	}
	if a.hexInput.Active() {
		s.Entry = a.hexInput.Text()
	}
	return s
}

func (a *app) draw() {
	a.view.Draw(a.status())
}

// close cancels pending timers and silences sound
func (a *app) close() {
	a.trail.Dispose()
	a.sound.Cleanup()
}
