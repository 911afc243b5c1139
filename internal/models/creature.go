package models

// Creature is one catalog entry as returned by a successful lookup.
type Creature struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Height int    `json:"height"`
	Weight int    `json:"weight"`
	// Types and Abilities keep the catalog's order.
	Types     []string `json:"types"`
	Abilities []string `json:"abilities"`
	// SpriteURL is empty when the catalog has no front sprite.
	SpriteURL string `json:"sprite_url,omitempty"`
}
