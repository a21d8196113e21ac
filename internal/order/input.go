package order

import (
	"regexp"
	"strconv"
	"sync"
)

// Grammar for an amount under edit: optional digits, optionally a decimal
// point with up to 2 digits. Empty is allowed.
var amountPattern = regexp.MustCompile(`^\d*\.?\d{0,2}$`)

// AmountInput is the text buffer holding a candidate order amount. Edits that
// violate the grammar are dropped silently and the buffer keeps its previous
// value; malformed input is never reported as an error.
type AmountInput struct {
	mu    sync.Mutex
	value string
}

// SetText applies one edit. It reports whether the new text was accepted.
func (a *AmountInput) SetText(text string) bool {
	if !amountPattern.MatchString(text) {
		return false
	}
	a.mu.Lock()
	a.value = text
	a.mu.Unlock()
	return true
}

// Commit reformats a non-empty, parseable buffer to exactly 2 decimal places.
// It corresponds to the input losing focus. An empty or unparseable buffer is
// left unchanged.
func (a *AmountInput) Commit() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.value == "" {
		return
	}
	v, err := strconv.ParseFloat(a.value, 64)
	if err != nil {
		return
	}
	a.value = strconv.FormatFloat(v, 'f', 2, 64)
}

// Value returns the current buffer contents.
func (a *AmountInput) Value() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.value
}
