package selector

import "strings"

const hexDigits = 6

// HexInput is a line editor for typing a color
// It commits "#" plus whatever digits were typed, without further validation
type HexInput struct {
	active bool
	buf    []rune
	target *ColorSelector
}

// NewHexInput creates an inactive editor bound to target
func NewHexInput(target *ColorSelector) *HexInput {
	return &HexInput{target: target}
}

// Active reports whether an entry is in progress
func (h *HexInput) Active() bool {
	return h.active
}

// Begin starts a new entry, discarding any partial one
func (h *HexInput) Begin() {
	h.active = true
	h.buf = h.buf[:0]
}

// Type appends a hex digit, ignoring other runes and anything past six digits
func (h *HexInput) Type(r rune) {
	if !h.active || len(h.buf) >= hexDigits {
		return
	}
	if strings.ContainsRune("0123456789abcdefABCDEF", r) {
		h.buf = append(h.buf, r)
	}
}

// Backspace removes the last digit
func (h *HexInput) Backspace() {
	if h.active && len(h.buf) > 0 {
		h.buf = h.buf[:len(h.buf)-1]
	}
}

// Commit ends the entry and pushes the typed color to the selector
func (h *HexInput) Commit() string {
	if !h.active {
		return ""
	}
	value := h.Text()
	h.active = false
	h.buf = h.buf[:0]
	h.target.Set(value)
	return value
}

// Abort ends the entry without changing the selector
func (h *HexInput) Abort() {
	h.active = false
	h.buf = h.buf[:0]
}

// Text returns the entry as typed so far, including the leading '#'
func (h *HexInput) Text() string {
	return "#" + string(h.buf)
}
