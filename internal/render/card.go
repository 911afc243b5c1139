// Package render projects catalog records into display cards.
package render

import (
	"fmt"
	"slices"

	"pokecard/internal/models"
)

// Card builds the display card for a creature. A nil creature yields a nil
// card, which clears the result region. The projection performs no
// validation; callers pass records from a successful fetch.
func Card(c *models.Creature) *models.Card {
	if c == nil {
		return nil
	}
	return &models.Card{
		Title:     fmt.Sprintf("%s (#%d)", c.Name, c.ID),
		Stats:     fmt.Sprintf("Height: %d | Weight: %d", c.Height, c.Weight),
		Types:     slices.Clone(c.Types),
		Abilities: slices.Clone(c.Abilities),
		Image: models.Image{
			Src: c.SpriteURL,
			Alt: c.Name + " sprite",
		},
	}
}
