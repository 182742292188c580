package game

// Emitter is the slice of the realtime transport the engine needs. The
// sockets package implements it over socket.io; tests use a recording fake.
type Emitter interface {
	// Broadcast sends an event to every connected client.
	Broadcast(event string, args ...interface{})
	// ToPlayer sends an event to a single player's connection. Unknown
	// player ids are dropped silently.
	ToPlayer(playerID string, event string, args ...interface{})
}

// Event payloads mirrored by the client.

type MovedEvent struct {
	PlayerID    string `json:"playerId"`
	NewPosition int    `json:"newPosition"`
	DiceResult  []int  `json:"diceResult"`
}

type TurnChangeEvent struct {
	CurrentPlayerID string `json:"currentPlayerId"`
	TimeLeft        int    `json:"timeLeft"`
}

type CardDrawnEvent struct {
	PlayerID string `json:"playerId"`
	Type     string `json:"type"`
	Text     string `json:"text"`
}

type BuyOfferEvent struct {
	TileIndex int    `json:"tileIndex"`
	Price     int    `json:"price"`
	Name      string `json:"name"`
}
