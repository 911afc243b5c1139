package catalog

import "pokecard/internal/models"

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// creatureResponse is the subset of the catalog payload the card needs.
type creatureResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Height int    `json:"height"`
	Weight int    `json:"weight"`
	Types  []struct {
		Slot int           `json:"slot"`
		Type namedResource `json:"type"`
	} `json:"types"`
	Abilities []struct {
		Ability  namedResource `json:"ability"`
		IsHidden bool          `json:"is_hidden"`
		Slot     int           `json:"slot"`
	} `json:"abilities"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
	} `json:"sprites"`
}

func (r *creatureResponse) toCreature() *models.Creature {
	c := &models.Creature{
		ID:        r.ID,
		Name:      r.Name,
		Height:    r.Height,
		Weight:    r.Weight,
		Types:     make([]string, 0, len(r.Types)),
		Abilities: make([]string, 0, len(r.Abilities)),
	}
	for _, t := range r.Types {
		c.Types = append(c.Types, t.Type.Name)
	}
	for _, a := range r.Abilities {
		c.Abilities = append(c.Abilities, a.Ability.Name)
	}
	if r.Sprites.FrontDefault != nil {
		c.SpriteURL = *r.Sprites.FrontDefault
	}
	return c
}
