// Package selector supplies the active illumination color
package selector

import "sync"

// DefaultColor is the LED color before any selection
const DefaultColor = "#c9ff5e"

// Selector exposes the currently chosen color as a hex string
type Selector interface {
	Hex() string
}

// ColorSelector holds the active color
// Values are stored as given; malformed strings decode to black at render time
type ColorSelector struct {
	mu       sync.RWMutex
	hex      string
	onChange []func(hex string)
}

// New creates a selector holding initial, or DefaultColor when initial is empty
func New(initial string) *ColorSelector {
	if initial == "" {
		initial = DefaultColor
	}
	return &ColorSelector{hex: initial}
}

// Hex returns the active color
func (s *ColorSelector) Hex() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hex
}

// Set replaces the active color and notifies listeners
func (s *ColorSelector) Set(hex string) {
	s.mu.Lock()
	if s.hex == hex {
		s.mu.Unlock()
		return
	}
	s.hex = hex
	listeners := append([]func(string){}, s.onChange...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(hex)
	}
}

// OnChange registers a listener called after every effective change
func (s *ColorSelector) OnChange(fn func(hex string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}
