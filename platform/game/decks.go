package game

import "github.com/campusopoly/backend/app/models"

// The two action-card decks. Entries are fixed, draws are uniform with
// replacement, so the same card can come up twice in a row.
var (
	chanceDeck = []models.Card{
		{Text: "You won the math contest: collect 100 $", Action: models.CardMoney, Value: 100},
		{Text: "Your parents send you 150 $", Action: models.CardMoney, Value: 150},
		{Text: "The bank partnership pays off: collect 50 $", Action: models.CardMoney, Value: 50},
		{Text: "Pay your re-enrollment fee: 150 $", Action: models.CardMoney, Value: -150},
		{Text: "Campus security caught you after the party: pay 20 $", Action: models.CardMoney, Value: -20},
		{Text: "Caught cutting the cafeteria line: pay 15 $", Action: models.CardMoney, Value: -15},
		{Text: "Skipped one lecture too many: go back 3 tiles", Action: models.CardMoveRelative, Value: -3},
		{Text: "The night patrol got you! Go to the Bungalow, do not pass Start", Action: models.CardJail},
		{Text: "Advance to the nearest gate", Action: models.CardNearestRailroad},
		{Text: "The bell rings. Report to room B208", Action: models.CardMoveTo, Value: 39},
	}

	communityDeck = []models.Card{
		{Text: "Go to the front desk and collect 200 $", Action: models.CardMoveTo, Value: 0},
		{Text: "Return to the darkness of As204", Action: models.CardMoveTo, Value: 1},
		{Text: "The night patrol picks you up. Go to the Bungalow, do not pass Start", Action: models.CardJail},
		{Text: "Bookkeeping error in your favor: collect 200 $", Action: models.CardMoney, Value: 200},
		{Text: "You scan with your own account: collect 100 $", Action: models.CardMoney, Value: 100},
		{Text: "The pastry sale went well: collect 50 $", Action: models.CardMoney, Value: 50},
		{Text: "You busk at the Foy. Every player gives you 10 $", Action: models.CardGlobalCollect, Value: 10},
		{Text: "You won the card tournament: collect 10 $", Action: models.CardMoney, Value: 10},
		{Text: "Buy a round at the Foy party: pay 50 $", Action: models.CardMoney, Value: -50},
		{Text: "Your deposit bounced: pay 50 $", Action: models.CardMoney, Value: -50},
		{Text: "Run to the nearest gate (collect 200 $ if you pass Start)", Action: models.CardNearestRailroad},
	}
)

// deckFor maps a card tile type to its deck and display name.
func deckFor(tileType string) ([]models.Card, string) {
	if tileType == models.TileChance {
		return chanceDeck, "Churros"
	}
	return communityDeck, "Foy"
}
