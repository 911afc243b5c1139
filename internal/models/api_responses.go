package models

// LookupResponse is the JSON API payload for a successful lookup.
type LookupResponse struct {
	Query    string    `json:"query"`
	Creature *Creature `json:"creature"`
	Card     *Card     `json:"card"`
}
