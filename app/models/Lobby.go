package models

// LobbySlot is one occupied seat in the lobby. A free seat is a nil entry
// in the slot array so the client sees the same array shape on every update.
type LobbySlot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
	Color string `json:"color"`
	Score int    `json:"score"`
}
