// Package audio plays optional sound cues for the trail
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	clickFreq     = 1320.0
	clickDuration = 40 * time.Millisecond
)

// SoundManager owns the speaker and the looping trail hum
// Every method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	hum         *beep.Ctrl
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates an uninitialized manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; callers treat failure as "run silent"
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.hum != nil {
		speaker.Lock()
		sm.hum.Paused = true
		speaker.Unlock()
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.hum = nil
	sm.initialized = false
}

// Initialized reports whether sound is live
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayTrail starts the hum, unless already playing
func (sm *SoundManager) PlayTrail() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if sm.hum != nil {
		sm.hum.Paused = false
		return
	}

	sm.hum = &beep.Ctrl{Streamer: NewHumGenerator(sampleRate)}
	sm.mixer.Add(sm.hum)
}

// StopTrail pauses the hum
func (sm *SoundManager) StopTrail() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.hum == nil {
		return
	}

	speaker.Lock()
	sm.hum.Paused = true
	speaker.Unlock()
}

// PlayClick plays a short blip, used on color change
func (sm *SoundManager) PlayClick() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(NewClickStreamer(sampleRate))
	speaker.Unlock()
}

// TrailStarted starts the hum when a trail lights up
func (sm *SoundManager) TrailStarted() { sm.PlayTrail() }

// TrailCleared stops the hum once the grid goes dark
func (sm *SoundManager) TrailCleared() { sm.StopTrail() }

// HumGenerator is an endless soft drone with a slow swell
type HumGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// NewHumGenerator creates a hum with a 2 second swell cycle
func NewHumGenerator(sr beep.SampleRate) *HumGenerator {
	return &HumGenerator{
		sr:      sr,
		samples: sr.N(time.Second * 2),
	}
}

func (g *HumGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		cyclePos := float64(g.pos%g.samples) / float64(g.samples)
		freq := 110 + 20*math.Sin(cyclePos*math.Pi)
		amplitude := 0.08 * (0.6 + 0.4*math.Sin(cyclePos*math.Pi*2))
		sample := amplitude * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *HumGenerator) Err() error {
	return nil
}

// NewClickStreamer returns a finite sine blip with a linear decay
func NewClickStreamer(sr beep.SampleRate) beep.Streamer {
	total := sr.N(clickDuration)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			t := float64(pos) / float64(sr)
			env := 1 - float64(pos)/float64(total)
			v := 0.2 * env * math.Sin(2*math.Pi*clickFreq*t)
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}
