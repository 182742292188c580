package models

// Player is the in-game state of one seat. ID is the socket connection id
// the player joined the lobby with. Balance may go negative, there is no
// bankruptcy rule.
type Player struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	Position   int    `json:"position"`
	Balance    int    `json:"balance"`
	Properties []int  `json:"properties"`
}

// Owns reports whether the player owns the tile at the given board index.
func (p *Player) Owns(index int) bool {
	for _, idx := range p.Properties {
		if idx == index {
			return true
		}
	}
	return false
}
