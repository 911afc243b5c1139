// Package display holds the in-memory regions a page shows: the input
// field, helper text, error text and result card. Each region is a single
// slot; writes overwrite, never append.
package display

import (
	"sync"

	"pokecard/internal/models"
)

// Text is a single-valued text region.
type Text struct {
	mu   sync.RWMutex
	text string
}

// SetText overwrites the region.
func (t *Text) SetText(s string) {
	t.mu.Lock()
	t.text = s
	t.mu.Unlock()
}

// Text returns the current content.
func (t *Text) Text() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.text
}

// Result is the card region. It holds at most one card.
type Result struct {
	mu   sync.RWMutex
	card *models.Card
}

// Replace removes the current card and shows card; nil leaves the region empty.
func (r *Result) Replace(card *models.Card) {
	r.mu.Lock()
	r.card = card
	r.mu.Unlock()
}

// Card returns the current card, or nil when the region is empty.
func (r *Result) Card() *models.Card {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.card
}

// Page bundles the four regions of one open lookup page.
type Page struct {
	Input  Text
	Helper Text
	Error  Text
	Result Result
}

// State is a point-in-time copy of a page's regions for rendering.
type State struct {
	Input  string
	Helper string
	Error  string
	Card   *models.Card
}

// Snapshot copies the current content of every region.
func (p *Page) Snapshot() State {
	return State{
		Input:  p.Input.Text(),
		Helper: p.Helper.Text(),
		Error:  p.Error.Text(),
		Card:   p.Result.Card(),
	}
}
