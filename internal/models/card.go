package models

// Section labels shown above the badge lists.
const (
	TypesLabel     = "Type(s):"
	AbilitiesLabel = "Abilities:"
)

// Card is the display projection of exactly one Creature.
// A nil *Card means the result region is empty.
type Card struct {
	Title     string   `json:"title"`
	Stats     string   `json:"stats"`
	Types     []string `json:"types"`
	Abilities []string `json:"abilities"`
	Image     Image    `json:"image"`
}

// Image is the sprite element of a card.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}
