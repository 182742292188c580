package game

import (
	"fmt"

	"github.com/campusopoly/backend/app/models"
	"github.com/sirupsen/logrus"
)

// resolveLandingLocked decides what happens on the tile the player just
// settled on. A replay landing is one caused by a card effect; it can pay
// rent or trigger a buy offer but never draws another card, so card chains
// always terminate.
func (s *Session) resolveLandingLocked(p *models.Player, diceTotal int, replay bool) {
	tile, ok := s.catalog.ByIndex(p.Position)
	if !ok {
		return
	}

	s.log.WithFields(logrus.Fields{
		"player": p.Name,
		"tile":   tile.Name,
		"type":   tile.Type,
	}).Debug("landed")

	if (tile.Type == models.TileChance || tile.Type == models.TileCommunity) && !replay {
		s.drawCardLocked(p, tile)
		return
	}

	owner := s.ownerOfLocked(p.Position)

	if owner != nil && owner.ID != p.ID {
		rent := 0
		if tile.Rent != nil {
			rent = *tile.Rent
		}

		switch tile.Type {
		case models.TileRailroad:
			if n := s.countOwnedLocked(owner, models.TileRailroad); n > 0 {
				rent = RailroadRent * n
			}
		case models.TileUtility:
			multiplier := 4
			if s.countOwnedLocked(owner, models.TileUtility) == 2 {
				multiplier = 10
			}
			rent = diceTotal * multiplier
			s.emitter.Broadcast("game:notification",
				fmt.Sprintf("💡 Variable rent (dice: %d x %d)", diceTotal, multiplier))
		}

		p.Balance -= rent
		owner.Balance += rent

		s.emitter.Broadcast("game:notification",
			fmt.Sprintf("💸 %s pays %d $ rent to %s for %s", p.Name, rent, owner.Name, tile.Name))
		s.emitter.Broadcast("game:init_state", s.snapshotLocked())
		return
	}

	if owner == nil && tile.Purchasable() && p.Balance >= *tile.Price {
		// Advisory only: HandleBuy re-checks everything.
		s.emitter.ToPlayer(p.ID, "game:allow_buy", BuyOfferEvent{
			TileIndex: tile.Index,
			Price:     *tile.Price,
			Name:      tile.Name,
		})
	}
}

// drawCardLocked draws from the deck matching the tile, announces the card
// and applies its effect after a short reading delay. The turn clock holds
// until the effect has applied.
func (s *Session) drawCardLocked(p *models.Player, tile *models.Tile) {
	deck, deckName := deckFor(tile.Type)
	card := deck[s.rng.Intn(len(deck))]

	s.emitter.Broadcast("game:notification",
		fmt.Sprintf("🃏 %s draws a %s card: %q", p.Name, deckName, card.Text))
	s.emitter.Broadcast("game:card_drawn", CardDrawnEvent{
		PlayerID: p.ID,
		Type:     tile.Type,
		Text:     card.Text,
	})

	s.effectPending = true
	s.after(s.timing.EffectDelay, func() {
		s.effectPending = false
		s.applyCardLocked(p, card)
	})
}
