package game

import (
	"fmt"
	"strings"

	"github.com/campusopoly/backend/app/models"
)

const jailKeyword = "Bungalow"

var jailMessage = fmt.Sprintf("🚓 Off to the %s!", jailKeyword)

// applyCardLocked mutates player state for one drawn card. Effects that
// reposition the player re-resolve the landing as a replay, so a second
// card is never drawn in the same chain.
func (s *Session) applyCardLocked(p *models.Player, card models.Card) {
	msg := ""

	switch card.Action {
	case models.CardMoney:
		p.Balance += card.Value
		if card.Value >= 0 {
			msg = fmt.Sprintf("💰 Gained %d $", card.Value)
		} else {
			msg = fmt.Sprintf("💸 Lost %d $", -card.Value)
		}

	case models.CardGlobalCollect:
		collected := 0
		for _, other := range s.players {
			if other.ID == p.ID {
				continue
			}
			other.Balance -= card.Value
			collected += card.Value
		}
		p.Balance += collected
		msg = fmt.Sprintf("💰 %s collected %d $ from the other players!", p.Name, collected)

	case models.CardMoveRelative:
		p.Position = (p.Position + card.Value + BoardSize) % BoardSize
		s.broadcastCardMoveLocked(p)
		s.resolveLandingLocked(p, 0, true)

	case models.CardMoveTo:
		if card.Value == JailIndex {
			// The jail tile itself has no effect, skip resolution.
			p.Position = JailIndex
			msg = jailMessage
			s.broadcastCardMoveLocked(p)
		} else {
			if card.Value < p.Position {
				p.Balance += Salary
				msg = fmt.Sprintf("💰 %s passes Start and collects %d $", p.Name, Salary)
			}
			p.Position = card.Value
			s.broadcastCardMoveLocked(p)
			s.resolveLandingLocked(p, 0, true)
		}

	case models.CardJail:
		p.Position = JailIndex
		s.broadcastCardMoveLocked(p)
		msg = jailMessage

	case models.CardNearestRailroad:
		next := -1
		for _, r := range railroadIndexes {
			if r > p.Position {
				next = r
				break
			}
		}
		if next == -1 {
			next = railroadIndexes[0]
			p.Balance += Salary
			msg = fmt.Sprintf("💰 %s passes Start on the way to the gate!", p.Name)
		}
		p.Position = next
		s.broadcastCardMoveLocked(p)
		s.resolveLandingLocked(p, 0, true)
	}

	// A dedicated jail message already fired, keep it out of the feed.
	if msg != "" && !strings.Contains(msg, jailKeyword) {
		s.emitter.Broadcast("game:notification", msg)
	}
	s.emitter.Broadcast("game:init_state", s.snapshotLocked())
}

func (s *Session) broadcastCardMoveLocked(p *models.Player) {
	s.emitter.Broadcast("game:moved", MovedEvent{
		PlayerID:    p.ID,
		NewPosition: p.Position,
		DiceResult:  []int{},
	})
}
