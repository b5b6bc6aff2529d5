package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/led-trail/audio"
	"github.com/lixenwraith/led-trail/config"
	"github.com/lixenwraith/led-trail/engine"
)

const (
	logDir      = "logs"
	logFileName = "led-trail.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	configFlag = flag.String("config", config.DefaultPath, "Path to YAML config file")
	colorFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides config)")
	soundFlag  = flag.Bool("sound", false, "Enable sound cues")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/led-trail.log")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *colorFlag != "" {
		cfg.ColorMode = *colorFlag
	}
	if *soundFlag {
		cfg.Sound = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
		os.Exit(1)
	}
	applyColorMode(cfg.ColorMode)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: ensure terminal is restored even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mLED-TRAIL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	sound := audio.NewSoundManager()
	if cfg.Sound {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, runs silent
			log.Printf("audio: initialization failed: %v", err)
		}
	}

	loop := engine.NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := newApp(screen, cfg, engine.NewSystemClock(), loop.Post, sound, *debugFlag)
	a.cancel = cancel
	defer a.close()

	if w, err := config.NewWatcher(*configFlag); err != nil {
		log.Printf("config: live reload disabled: %v", err)
	} else {
		defer w.Close()
		go func() {
			for {
				select {
				case cfg, ok := <-w.Updates:
					if !ok {
						return
					}
					log.Printf("config: reloaded %s", *configFlag)
					loop.Post(func() { a.applyConfig(cfg) })
				case err, ok := <-w.Errors:
					if !ok {
						return
					}
					log.Printf("config: watch error: %v", err)
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// Input polling; PollEvent returns nil once the screen is finalized
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			loop.Post(func() { a.handle(ev) })
		}
	}()

	loop.Post(a.draw)
	log.Printf("led-trail started, config=%s color=%s", *configFlag, cfg.Color)
	loop.Run(ctx)
}

// applyColorMode steers tcell's color detection before the screen is created
func applyColorMode(mode string) {
	switch mode {
	case config.ColorMode256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorModeTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}
}

// setupLogging routes the standard logger to logs/led-trail.log when debug is set
// and discards it otherwise; an oversized log is rotated aside with a timestamp
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("led-trail-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
